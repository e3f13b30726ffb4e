package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/tim-tx/cello-utils/internal/types"
)

func TestRowCellTrimsAndPads(t *testing.T) {
	row := NewRow("t.csv", 4, []string{" a ", "b"})
	require.Equal(t, "a", row.Cell(0))
	require.Equal(t, "", row.Cell(5))
	require.Equal(t, "", row.Cell(-1))
}

func TestRowRequireStringMissing(t *testing.T) {
	row := NewRow("t.csv", 7, []string{"", "x"})
	_, err := row.RequireStringFor("off_threshold", "x", 0)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	if diff := cmp.Diff(MissingFieldError{File: "t.csv", Row: 7, Field: "off_threshold", Owner: "x"}, *missing); diff != "" {
		t.Fatalf("unexpected error (-want +got):\n%s", diff)
	}
	require.Equal(t, "t.csv:7: no off_threshold specified for x", err.Error())
}

func TestRowRequireFloat(t *testing.T) {
	tests := []struct {
		value   string
		want    float64
		wantErr bool
	}{
		{value: "1.5", want: 1.5},
		{value: "-2e-3", want: -0.002},
		{value: " 4 ", want: 4},
		{value: "abc", wantErr: true},
		{value: "NaN", wantErr: true},
		{value: "inf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := NewRow("t.csv", 2, []string{tt.value}).RequireFloat("value", 0)
			if tt.wantErr {
				var invalid *InvalidNumberError
				require.True(t, errors.As(err, &invalid), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestRowRequireMaxInstances(t *testing.T) {
	tests := []struct {
		value   string
		want    types.MaxInstances
		wantErr bool
	}{
		{value: "3", want: types.MaxInstances{Count: 3}},
		{value: "0", want: types.MaxInstances{Count: 0}},
		{value: "True", want: types.MaxInstances{IsBool: true, Allowed: true}},
		{value: "false", want: types.MaxInstances{IsBool: true}},
		{value: "-1", wantErr: true},
		{value: "many", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := NewRow("t.csv", 2, []string{tt.value}).RequireMaxInstances("max_instances", 0)
			if tt.wantErr {
				var invalid *InvalidValueError
				require.True(t, errors.As(err, &invalid), "got %v", err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected value (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRowsSkipsBlankRecords(t *testing.T) {
	table := types.Table{
		File:   "t.csv",
		Header: []string{"a"},
		Rows:   [][]string{{"x"}, {"", " "}, {}, {"y"}},
		Lines:  []int{2, 3, 4, 6},
	}
	got := rows(table)
	require.Len(t, got, 2)
	require.Equal(t, 2, got[0].Line)
	require.Equal(t, 6, got[1].Line)
}
