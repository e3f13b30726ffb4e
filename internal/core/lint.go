package core

import (
	"context"

	"github.com/tim-tx/cello-utils/internal/types"
)

// Lint warns about names that one collection uses but no other defines:
// gates without a response function, gate parts for unknown gates, and
// cassette parts or promoters that are not parts.
func Lint(ctx context.Context, doc *types.Document, diagnostics *Diagnostics) {
	for _, c := range doc.OfKind(types.KindGates) {
		gate := c.(*types.Gate)
		if _, ok := doc.Lookup(types.KindResponseFunctions, gate.GateName); !ok {
			diagnostics.Warn(ctx, types.WarningUnresolvedReference, "", 0,
				"gate %q has no response function", gate.GateName)
		}
	}
	for _, c := range doc.OfKind(types.KindGateParts) {
		wiring := c.(*types.GateParts)
		if _, ok := doc.Lookup(types.KindGates, wiring.GateName); !ok {
			diagnostics.Warn(ctx, types.WarningUnresolvedReference, "", 0,
				"gate parts given for unknown gate %q", wiring.GateName)
		}
		for _, cassette := range wiring.ExpressionCassettes {
			for _, part := range cassette.CassetteParts {
				if _, ok := doc.Lookup(types.KindParts, part); !ok {
					diagnostics.Warn(ctx, types.WarningUnresolvedReference, "", 0,
						"gate %q variable %q uses unknown part %q", wiring.GateName, cassette.MapsToVariable, part)
				}
			}
		}
		if wiring.Promoter == "" {
			continue
		}
		if _, ok := doc.Lookup(types.KindParts, wiring.Promoter); !ok {
			diagnostics.Warn(ctx, types.WarningUnresolvedReference, "", 0,
				"gate %q uses unknown promoter %q", wiring.GateName, wiring.Promoter)
		}
	}
}
