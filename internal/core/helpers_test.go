package core

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tim-tx/cello-utils/internal/policies"
	"github.com/tim-tx/cello-utils/internal/types"
)

var fixedClock = func() time.Time {
	return time.Date(2024, time.March, 5, 9, 7, 3, 0, time.UTC)
}

func newTestEnv(strict bool) StageEnv {
	return StageEnv{
		Policy:      policies.NewDuplicatePolicy(strict),
		Diagnostics: &Diagnostics{},
		Clock:       fixedClock,
	}
}

func newTable(file string, header []string, rows ...[]string) types.Table {
	return types.Table{File: file, Header: header, Rows: rows}
}

func warningCodes(env StageEnv) []types.WarningCode {
	var codes []types.WarningCode
	for _, warning := range env.Diagnostics.Warnings() {
		codes = append(codes, warning.Code)
	}
	return codes
}

func documentJSON(t *testing.T, doc *types.Document) []map[string]any {
	t.Helper()
	payload, err := json.Marshal(doc)
	require.NoError(t, err)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(payload, &out))
	return out
}
