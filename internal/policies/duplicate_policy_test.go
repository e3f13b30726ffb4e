package policies

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tim-tx/cello-utils/internal/types"
)

func TestDuplicatePolicyDefaults(t *testing.T) {
	policy := NewDuplicatePolicy(false)

	got := map[types.DuplicateContext]types.DuplicateAction{}
	for _, context := range types.DuplicateContexts {
		got[context] = policy.Action(context)
	}
	want := map[types.DuplicateContext]types.DuplicateAction{
		types.DuplicateGate:             types.DuplicateKeep,
		types.DuplicateResponseFunction: types.DuplicateReject,
		types.DuplicateCassette:         types.DuplicateTolerate,
		types.DuplicatePromoter:         types.DuplicateTolerate,
		types.DuplicatePart:             types.DuplicateTolerate,
		types.DuplicateMetadataKey:      types.DuplicateTolerate,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected default actions (-want +got):\n%s", diff)
	}
}

func TestDuplicatePolicyStrictRejectsEverything(t *testing.T) {
	policy := NewDuplicatePolicy(true)
	for _, context := range types.DuplicateContexts {
		require.Equal(t, types.DuplicateReject, policy.Action(context), context)
	}
}

func TestDuplicatePolicyOverrides(t *testing.T) {
	policy, err := NewDuplicatePolicy(true).WithOverrides(map[string]string{
		"parts": "tolerate",
		"gates": "Keep",
	})
	require.NoError(t, err)
	require.Equal(t, types.DuplicateTolerate, policy.Action(types.DuplicatePart))
	require.Equal(t, types.DuplicateKeep, policy.Action(types.DuplicateGate))
	require.Equal(t, types.DuplicateReject, policy.Action(types.DuplicateCassette))
}

func TestDuplicatePolicyOverrideDoesNotLeak(t *testing.T) {
	base := NewDuplicatePolicy(false)
	_, err := base.Override("parts", "reject")
	require.NoError(t, err)
	require.Equal(t, types.DuplicateTolerate, base.Action(types.DuplicatePart))
}

func TestDuplicatePolicyRejectsInvalidOverrides(t *testing.T) {
	cases := []struct {
		name    string
		entries map[string]string
	}{
		{name: "unknown context", entries: map[string]string{"motifs": "reject"}},
		{name: "unknown action", entries: map[string]string{"parts": "ignore"}},
		{name: "response functions must reject", entries: map[string]string{"response_functions": "tolerate"}},
		{name: "keep only for gates", entries: map[string]string{"parts": "keep"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDuplicatePolicy(false).WithOverrides(tc.entries)
			require.Error(t, err)
			require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}
