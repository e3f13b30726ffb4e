package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"github.com/tim-tx/cello-utils/internal/types"
)

// FindOrCreate returns the collection identified by kind and key. When the
// document has none, factory builds one and it is appended in order. The
// second result reports whether the collection was created.
func FindOrCreate[T types.Collection](ctx context.Context, doc *types.Document, kind types.Kind, key string, factory func() T) (T, bool) {
	assert.NotEmpty(ctx, string(kind), "collection kind must be set")
	if existing, ok := doc.Lookup(kind, key); ok {
		typed, ok := existing.(T)
		if !ok {
			panic(fmt.Sprintf("collection %s/%q has type %T", kind, key, existing))
		}
		return typed, false
	}
	created := factory()
	doc.Append(created)
	return created, true
}

// FindOrCreateSingleton locates the only collection of a singleton kind.
func FindOrCreateSingleton[T types.Collection](ctx context.Context, doc *types.Document, kind types.Kind, factory func() T) T {
	collection, _ := FindOrCreate(ctx, doc, kind, "", factory)
	return collection
}

// AppendCytometry adds one bin/count pair to the (variable, input) point of
// a cytometry collection, creating the point on first use.
func AppendCytometry(collection *types.GateCytometry, variable string, input float64, bin float64, count float64) {
	idx := collection.Point(variable, input)
	point := &collection.CytometryData[idx]
	point.OutputBins = append(point.OutputBins, bin)
	point.OutputCounts = append(point.OutputCounts, count)
}

// AppendToxicity adds one input/growth pair to a toxicity curve.
func AppendToxicity(collection *types.GateToxicity, input float64, growth float64) {
	collection.Input = append(collection.Input, input)
	collection.Growth = append(collection.Growth, growth)
}
