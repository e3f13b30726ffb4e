package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tim-tx/cello-utils/internal/types"
)

func TestFindOrCreateReturnsExisting(t *testing.T) {
	doc := types.NewDocument()
	first, created := FindOrCreate(t.Context(), doc, types.KindGateParts, "G1", func() *types.GateParts {
		return types.NewGateParts("G1")
	})
	require.True(t, created)
	first.Promoter = "pA"

	again, created := FindOrCreate(t.Context(), doc, types.KindGateParts, "G1", func() *types.GateParts {
		t.Fatal("factory must not run for an existing key")
		return nil
	})
	require.False(t, created)
	require.Same(t, first, again)
	require.Equal(t, 1, doc.Len())
}

func TestFindOrCreatePreservesInsertionOrder(t *testing.T) {
	doc := types.NewDocument()
	for _, name := range []string{"B", "A", "B", "C"} {
		FindOrCreate(t.Context(), doc, types.KindParts, name, func() *types.Part { return types.NewPart(name) })
	}
	var names []string
	for _, c := range doc.Collections() {
		names = append(names, c.Key())
	}
	if diff := cmp.Diff([]string{"B", "A", "C"}, names); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestFindOrCreateSingleton(t *testing.T) {
	doc := types.NewDocument()
	first := FindOrCreateSingleton(t.Context(), doc, types.KindEugeneRules, types.NewEugeneRules)
	second := FindOrCreateSingleton(t.Context(), doc, types.KindEugeneRules, types.NewEugeneRules)
	require.Same(t, first, second)
	require.Len(t, doc.OfKind(types.KindEugeneRules), 1)
}

func TestAppendCytometryKeepsSequencesAligned(t *testing.T) {
	histogram := types.NewGateCytometry("G1")
	AppendCytometry(histogram, "x", 1, 0.5, 10)
	AppendCytometry(histogram, "y", 1, 0.5, 3)
	AppendCytometry(histogram, "x", 1, 0.6, 11)

	require.Len(t, histogram.CytometryData, 2)
	for _, point := range histogram.CytometryData {
		require.Equal(t, len(point.OutputBins), len(point.OutputCounts))
	}
	if diff := cmp.Diff([]float64{10, 11}, histogram.CytometryData[0].OutputCounts); diff != "" {
		t.Fatalf("unexpected counts (-want +got):\n%s", diff)
	}
}
