package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/tim-tx/cello-utils/internal/policies"
	"github.com/tim-tx/cello-utils/internal/types"
)

type ManifestValidator struct{}

func NewManifestValidator() ManifestValidator {
	return ManifestValidator{}
}

func (v ManifestValidator) ValidateManifest(ctx context.Context, manifest types.BuildManifest) error {
	if manifest.APIVersion == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("api_version must be set")
	}
	if manifest.APIVersion != types.ManifestAPIVersion {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported api_version %s", manifest.APIVersion))
	}
	if manifest.Kind != types.ManifestKind {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("manifest kind must be %s", types.ManifestKind))
	}
	if manifest.Inputs.MotifLibrary != "" && manifest.Inputs.StdMotifLibrary {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("inputs.motif_library and inputs.std_motif_library are mutually exclusive")
	}
	if _, err := v.Policy(manifest, false); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().Str("manifest", manifest.Metadata.Name).Msg("manifest validated")
	return nil
}

// Policy derives the run's duplicate policy from the manifest. strict
// comes from the command line and only ever tightens the manifest.
func (v ManifestValidator) Policy(manifest types.BuildManifest, strict bool) (policies.DuplicatePolicy, error) {
	return policies.NewDuplicatePolicy(strict || manifest.Strict).WithOverrides(manifest.Duplicates)
}
