package types

import (
	"reflect"
	"testing"
)

func TestRangeLen(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want int
	}{
		{"single counter", Range{From: 4, To: 4}, 1},
		{"small block", Range{From: 1, To: 5}, 5},
		{"offset block", Range{From: 9, To: 13}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMergeRanges(t *testing.T) {
	tests := []struct {
		name   string
		ranges []Range
		want   []Range
	}{
		{
			name:   "empty input",
			ranges: nil,
			want:   nil,
		},
		{
			name:   "single range",
			ranges: []Range{{1, 5}},
			want:   []Range{{1, 5}},
		},
		{
			name:   "adjacent ranges merge",
			ranges: []Range{{1, 5}, {6, 8}},
			want:   []Range{{1, 8}},
		},
		{
			name:   "gap is preserved",
			ranges: []Range{{1, 5}, {9, 11}},
			want:   []Range{{1, 5}, {9, 11}},
		},
		{
			name:   "chain of adjacent ranges collapses",
			ranges: []Range{{1, 2}, {3, 3}, {4, 7}},
			want:   []Range{{1, 7}},
		},
		{
			name:   "mixed adjacency",
			ranges: []Range{{1, 2}, {3, 5}, {9, 10}, {11, 13}},
			want:   []Range{{1, 5}, {9, 13}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := append([]Range(nil), tt.ranges...)
			got := MergeRanges(tt.ranges)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeRanges() = %v, want %v", got, tt.want)
			}
			// The input sequence must survive the merge untouched.
			if !reflect.DeepEqual(tt.ranges, input) {
				t.Errorf("input mutated: %v, want %v", tt.ranges, input)
			}
		})
	}
}
