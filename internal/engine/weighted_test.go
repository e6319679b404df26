package engine

import (
	"errors"
	"testing"
)

func TestWeightedPickInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		items   []string
		weights []float64
	}{
		{name: "empty items", items: nil, weights: nil},
		{name: "more weights than items", items: []string{"a"}, weights: []float64{1, 2}},
		{name: "fewer weights than items", items: []string{"a", "b"}, weights: []float64{1}},
	}

	r := NewSeeded(1, 1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WeightedPick(r, tt.items, tt.weights)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("WeightedPick() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestWeightedPickAlwaysReturnsMember(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	weights := []float64{8, 5, 2, 0.75}
	valid := map[string]bool{"a": true, "b": true, "c": true, "d": true}

	r := NewSeeded(3, 9)
	for i := 0; i < 2000; i++ {
		got, err := WeightedPick(r, items, weights)
		if err != nil {
			t.Fatalf("WeightedPick() error = %v", err)
		}
		if !valid[got] {
			t.Fatalf("WeightedPick() = %q, not a member of items", got)
		}
	}
}

func TestWeightedPickDistributionFollowsWeights(t *testing.T) {
	items := []string{"common", "uncommon", "rare"}
	weights := []float64{5, 3, 1}

	r := NewSeeded(11, 17)
	counts := map[string]int{}
	total := 9000
	for i := 0; i < total; i++ {
		got, err := WeightedPick(r, items, weights)
		if err != nil {
			t.Fatalf("WeightedPick() error = %v", err)
		}
		counts[got]++
	}

	c, u, rr := counts["common"], counts["uncommon"], counts["rare"]
	if !(c > u && u > rr) {
		t.Fatalf("unexpected ordering c=%d u=%d r=%d", c, u, rr)
	}
	// Generous bounds around the 5:3:1 ratios.
	ratioCU := float64(c) / float64(u)
	if ratioCU < 1.3 || ratioCU > 2.2 {
		t.Fatalf("common:uncommon ratio out of bounds: %.2f", ratioCU)
	}
	ratioUR := float64(u) / float64(rr)
	if ratioUR < 2.0 || ratioUR > 4.5 {
		t.Fatalf("uncommon:rare ratio out of bounds: %.2f", ratioUR)
	}
}

func TestWeightedPickZeroSumFallsBackToUniform(t *testing.T) {
	items := []string{"a", "b", "c"}
	weights := []float64{0, 0, 0}

	r := NewSeeded(5, 5)
	counts := map[string]int{}
	total := 6000
	for i := 0; i < total; i++ {
		got, err := WeightedPick(r, items, weights)
		if err != nil {
			t.Fatalf("WeightedPick() error = %v", err)
		}
		counts[got]++
	}

	for _, item := range items {
		share := float64(counts[item]) / float64(total)
		if share < 0.25 || share > 0.42 {
			t.Errorf("item %q drawn with share %.3f, want roughly 1/3", item, share)
		}
	}
}

func TestWeightedPickClampsNegativeWeights(t *testing.T) {
	items := []string{"poisoned", "fine"}
	weights := []float64{-100, 1}

	r := NewSeeded(7, 13)
	for i := 0; i < 1000; i++ {
		got, err := WeightedPick(r, items, weights)
		if err != nil {
			t.Fatalf("WeightedPick() error = %v", err)
		}
		if got != "fine" {
			t.Fatalf("negative-weight item drawn on trial %d", i)
		}
	}
}
