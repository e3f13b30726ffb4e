package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tim-tx/cello-utils/internal/adapters"
)

// Validate assembles and lints the inputs without writing anything.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	built, err := s.assemble(ctx, req.AssembleRequest, adapters.NoopMetricsAdapter{})
	if err != nil {
		return ValidateResult{}, err
	}
	log.Ctx(ctx).Debug().Str("document", built.name).Msg("inputs validated")
	return ValidateResult{
		Name:        built.name,
		Collections: built.doc.Len(),
		Report:      built.report,
	}, nil
}
