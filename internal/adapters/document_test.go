package adapters

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tim-tx/cello-utils/internal/types"
)

func sampleDocument() *types.Document {
	doc := types.NewDocument()
	header := types.NewHeader()
	header.Version = "Eco1C1G1T1"
	doc.Append(header)
	gate := types.NewGate("A1_AmeR")
	gate.GateType = "NOR"
	doc.Append(gate)
	fn := types.NewResponseFunction("A1_AmeR")
	fn.Equation = "ymin+(ymax-ymin)/(1.0+(x/K)^n)"
	fn.Parameters = append(fn.Parameters, types.Parameter{Name: "ymax", Value: 3.8})
	doc.Append(fn)
	part := types.NewPart("pAmeR")
	part.Type = "promoter"
	part.DNASequence = "GATTCG<&>"
	doc.Append(part)
	return doc
}

func TestDocumentFileAdapterWritesStdout(t *testing.T) {
	var out bytes.Buffer
	adapter := DocumentFileAdapter{Stdout: &out}

	require.NoError(t, adapter.WriteDocument(t.Context(), sampleDocument(), ""))

	text := out.String()
	require.True(t, strings.HasPrefix(text, "[\n    {\n        \"collection\": \"header\",\n"), text)
	require.Contains(t, text, `"dnasequence": "GATTCG<&>"`)
	require.True(t, strings.HasSuffix(text, "]\n"))
}

func TestDocumentFileAdapterWritesFileAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "ucf.json")
	adapter := DocumentFileAdapter{Stdout: &bytes.Buffer{}}

	require.NoError(t, adapter.WriteDocument(t.Context(), sampleDocument(), path))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "ucf.json", entries[0].Name())
}

func TestDocumentRoundTripThroughReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ucf.json")
	require.NoError(t, DocumentFileAdapter{}.WriteDocument(t.Context(), sampleDocument(), path))

	document, err := NewDocumentReaderAdapter().ReadDocument(t.Context(), path)
	require.NoError(t, err)
	require.Len(t, document, 4)

	var kinds []string
	for _, element := range document {
		record, ok := element.(map[string]any)
		require.True(t, ok)
		kind, ok := record["collection"].(string)
		require.True(t, ok)
		require.True(t, types.Kind(kind).Known(), kind)
		kinds = append(kinds, kind)
	}
	if diff := cmp.Diff([]string{"header", "gates", "response_functions", "parts"}, kinds); diff != "" {
		t.Fatalf("unexpected kinds (-want +got):\n%s", diff)
	}
}

func TestDocumentReaderRejectsNonList(t *testing.T) {
	path := writeFile(t, t.TempDir(), "ucf.json", `{"collection": "header"}`)
	_, err := NewDocumentReaderAdapter().ReadDocument(t.Context(), path)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestJSONPathQueryAdapter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ucf.json")
	require.NoError(t, DocumentFileAdapter{}.WriteDocument(t.Context(), sampleDocument(), path))
	document, err := NewDocumentReaderAdapter().ReadDocument(t.Context(), path)
	require.NoError(t, err)

	matches, err := NewJSONPathQueryAdapter().Query(t.Context(), document, `$[?(@.collection == 'response_functions')].parameters[*].name`)
	require.NoError(t, err)
	if diff := cmp.Diff([]any{"ymax"}, matches); diff != "" {
		t.Fatalf("unexpected matches (-want +got):\n%s", diff)
	}

	_, err = NewJSONPathQueryAdapter().Query(t.Context(), document, "$[?(@.collection ==")
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestSQLiteCatalogAdapterStoreListLoad(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	adapter := SQLiteCatalogAdapter{Clock: func() time.Time {
		return time.Date(2024, time.March, 5, 9, 7, 3, 0, time.UTC)
	}}

	stored, err := adapter.Store(t.Context(), dbPath, "Eco1C1G1T1", sampleDocument())
	require.NoError(t, err)
	require.Equal(t, 4, stored.Collections)

	_, err = adapter.Store(t.Context(), dbPath, "Eco1C1G1T1", sampleDocument())
	require.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))

	documents, err := adapter.List(t.Context(), dbPath)
	require.NoError(t, err)
	if diff := cmp.Diff([]types.CatalogDocument{stored}, documents); diff != "" {
		t.Fatalf("unexpected listing (-want +got):\n%s", diff)
	}

	entries, err := adapter.Load(t.Context(), dbPath, "Eco1C1G1T1")
	require.NoError(t, err)
	require.Len(t, entries, 4)
	require.Equal(t, types.KindResponseFunctions, entries[2].Kind)
	require.Equal(t, "A1_AmeR", entries[2].Key)
	require.Contains(t, string(entries[2].Record), `"equation":"ymin+(ymax-ymin)/(1.0+(x/K)^n)"`)

	_, err = adapter.Load(t.Context(), dbPath, "missing")
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestSQLiteCatalogAdapterMissingDatabase(t *testing.T) {
	_, err := NewSQLiteCatalogAdapter().List(t.Context(), filepath.Join(t.TempDir(), "none.db"))
	require.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestTextfileMetricsAdapterFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ucf.prom")
	metrics := NewMetricsAdapter(path)
	metrics.ObserveStage("parts", 3, 2*time.Millisecond)
	metrics.CountWarning(types.WarningDuplicateTolerated)
	metrics.SetCollections(types.KindParts, 2)
	require.NoError(t, metrics.Flush(t.Context()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, `ucf_stage_rows_total{stage="parts"} 3`)
	require.Contains(t, text, `ucf_warnings_total{code="duplicate_tolerated"} 1`)
	require.Contains(t, text, `ucf_collections{kind="parts"} 2`)
	require.Contains(t, text, `ucf_stage_duration_seconds_count{stage="parts"} 1`)
}

func TestNoopMetricsAdapter(t *testing.T) {
	metrics := NewMetricsAdapter("")
	metrics.ObserveStage("parts", 1, time.Second)
	require.NoError(t, metrics.Flush(t.Context()))
}
