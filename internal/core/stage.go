package core

import (
	"context"
	"fmt"
	"time"

	"github.com/tim-tx/cello-utils/internal/ports"
	"github.com/tim-tx/cello-utils/internal/types"
)

// StageEnv carries what every stage function shares during one run.
type StageEnv struct {
	Policy      ports.DuplicatePolicyPort
	Diagnostics *Diagnostics
	Clock       func() time.Time
}

func (e StageEnv) now() time.Time {
	if e.Clock == nil {
		return time.Now()
	}
	return e.Clock()
}

// duplicate applies the policy to a key that reappeared at row. Reject
// yields a DuplicateKeyError; the other actions warn and let the caller
// keep or drop the entry.
func (e StageEnv) duplicate(ctx context.Context, where types.DuplicateContext, row Row, kind types.Kind, key string, detail string) (types.DuplicateAction, error) {
	action := e.Policy.Action(where)
	switch action {
	case types.DuplicateReject:
		return action, &DuplicateKeyError{File: row.File, Row: row.Line, Kind: kind, Key: key}
	case types.DuplicateKeep:
		e.Diagnostics.Warn(ctx, types.WarningDuplicateGate, row.File, row.Line, "%s %q repeated, keeping both", kind, key)
	default:
		e.Diagnostics.Warn(ctx, types.WarningDuplicateTolerated, row.File, row.Line, "%s, skipping", detail)
	}
	return action, nil
}

func cassetteKey(gateName string, variable string) string {
	return fmt.Sprintf("%s/%s", gateName, variable)
}
