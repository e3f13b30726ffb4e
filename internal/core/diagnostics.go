package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tim-tx/cello-utils/internal/types"
)

// Diagnostics collects the recoverable warnings of one run.
type Diagnostics struct {
	warnings []types.Warning
}

func (d *Diagnostics) Warn(ctx context.Context, code types.WarningCode, file string, row int, format string, args ...any) {
	warning := types.Warning{
		Code:    code,
		File:    file,
		Row:     row,
		Message: fmt.Sprintf(format, args...),
	}
	d.warnings = append(d.warnings, warning)
	log.Ctx(ctx).Warn().
		Str("code", string(code)).
		Str("file", file).
		Int("row", row).
		Msg(warning.Message)
}

func (d *Diagnostics) Warnings() []types.Warning {
	return append([]types.Warning(nil), d.warnings...)
}

func (d *Diagnostics) Len() int {
	return len(d.warnings)
}
