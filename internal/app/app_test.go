package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tim-tx/cello-utils/internal/adapters"
	"github.com/tim-tx/cello-utils/internal/types"
)

func fixturePath(t *testing.T, name string) string {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	return filepath.Join(root, "testdata", "eco1", name)
}

func newTestService() Service {
	fixed := func() time.Time { return time.Date(2024, 3, 5, 9, 7, 3, 0, time.UTC) }
	service := NewService()
	service.Clock = fixed
	service.Catalog = adapters.SQLiteCatalogAdapter{Clock: fixed}
	return service
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func errorMsg(t *testing.T, err error) string {
	t.Helper()
	var builder *errbuilder.ErrBuilder
	require.ErrorAs(t, err, &builder)
	return builder.Msg
}

const duplicateGates = `gate_name,gate_type
A1_AmtR,NOR
A1_AmtR,NOR
B1_BetI,NOR
`

func TestValidateAppWithManifest(t *testing.T) {
	service := newTestService()
	result, err := service.Validate(t.Context(), ValidateRequest{
		AssembleRequest: AssembleRequest{ManifestPath: fixturePath(t, "manifest.yaml")},
	})
	require.NoError(t, err)
	if diff := cmp.Diff("Eco1C1G1T1", result.Name); diff != "" {
		t.Fatalf("unexpected document name (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(20, result.Collections); diff != "" {
		t.Fatalf("unexpected collection count (-want +got):\n%s", diff)
	}
	require.Empty(t, result.Report.Warnings)
}

func TestValidateAppFlagsOverrideManifest(t *testing.T) {
	service := newTestService()
	result, err := service.Validate(t.Context(), ValidateRequest{
		AssembleRequest: AssembleRequest{
			ManifestPath: fixturePath(t, "manifest.yaml"),
			Inputs:       types.Inputs{Gates: writeInput(t, duplicateGates)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 21, result.Collections)
	require.Equal(t, 1, result.Report.WarningCount(types.WarningDuplicateGate))
}

func TestValidateAppStrictRejectsDuplicates(t *testing.T) {
	service := newTestService()
	_, err := service.Validate(t.Context(), ValidateRequest{
		AssembleRequest: AssembleRequest{
			ManifestPath: fixturePath(t, "manifest.yaml"),
			Inputs:       types.Inputs{Gates: writeInput(t, duplicateGates)},
			Strict:       true,
		},
	})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
	require.Contains(t, errorMsg(t, err), "A1_AmtR")
}

func TestValidateAppMissingInputs(t *testing.T) {
	service := newTestService()
	_, err := service.Validate(t.Context(), ValidateRequest{
		AssembleRequest: AssembleRequest{
			Inputs: types.Inputs{Header: fixturePath(t, "header.csv")},
		},
	})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	require.Contains(t, errorMsg(t, err), "gates")
}

func TestValidateAppReportsMotifLibraryUnsupported(t *testing.T) {
	service := newTestService()
	_, err := service.Validate(t.Context(), ValidateRequest{
		AssembleRequest: AssembleRequest{
			ManifestPath: fixturePath(t, "manifest.yaml"),
			Inputs:       types.Inputs{StdMotifLibrary: true},
		},
	})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	message := errorMsg(t, err)
	require.True(t, strings.HasPrefix(message, "not implemented"), message)
}

func TestBuildAppWritesDocumentCatalogAndMetrics(t *testing.T) {
	dir := t.TempDir()
	service := newTestService()
	req := BuildRequest{
		AssembleRequest: AssembleRequest{ManifestPath: fixturePath(t, "manifest.yaml")},
		OutputPath:      filepath.Join(dir, "Eco1C1G1T1.UCF.json"),
		CatalogPath:     filepath.Join(dir, "catalog.db"),
		MetricsTextfile: filepath.Join(dir, "ucf.prom"),
	}

	result, err := service.Build(t.Context(), req)
	require.NoError(t, err)
	require.Equal(t, 20, result.Collections)
	require.NotNil(t, result.Catalog)
	if diff := cmp.Diff("Eco1C1G1T1", result.Catalog.Name); diff != "" {
		t.Fatalf("unexpected catalog name (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(req.OutputPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "[\n"))

	metrics, err := os.ReadFile(req.MetricsTextfile)
	require.NoError(t, err)
	require.Contains(t, string(metrics), `ucf_collections{kind="gates"} 2`)

	listed, err := service.CatalogList(t.Context(), CatalogListRequest{DBPath: req.CatalogPath})
	require.NoError(t, err)
	require.Len(t, listed.Documents, 1)
	require.Equal(t, 20, listed.Documents[0].Collections)

	shown, err := service.CatalogShow(t.Context(), CatalogShowRequest{DBPath: req.CatalogPath, Name: "Eco1C1G1T1"})
	require.NoError(t, err)
	require.Len(t, shown.Entries, 20)
	require.Equal(t, types.KindHeader, shown.Entries[0].Kind)
	require.Equal(t, types.KindGateToxicity, shown.Entries[15].Kind)
	require.Equal(t, "A1_AmtR/x", shown.Entries[15].Key)

	_, err = service.Build(t.Context(), req)
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
}

func TestBuildAppRejectsCatalogNameWithoutPath(t *testing.T) {
	service := newTestService()
	_, err := service.Build(t.Context(), BuildRequest{
		AssembleRequest: AssembleRequest{ManifestPath: fixturePath(t, "manifest.yaml")},
		OutputPath:      filepath.Join(t.TempDir(), "ucf.json"),
		CatalogName:     "named",
	})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestCatalogShowRequiresName(t *testing.T) {
	service := newTestService()
	_, err := service.CatalogShow(t.Context(), CatalogShowRequest{DBPath: filepath.Join(t.TempDir(), "catalog.db")})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestMergeInputsPrefersOverrides(t *testing.T) {
	base := types.Inputs{Header: "a/header.csv", Gates: "a/gates.csv", StdMotifLibrary: true}
	override := types.Inputs{Gates: " b/gates.csv ", Parts: "b/parts.csv"}

	got := mergeInputs(base, override)
	want := types.Inputs{
		Header:          "a/header.csv",
		Gates:           "b/gates.csv",
		Parts:           "b/parts.csv",
		StdMotifLibrary: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected merged inputs (-want +got):\n%s", diff)
	}
}
