package shuffle

import (
	"reflect"
	"sort"
	"testing"
)

func TestSeeded_GoldenOrder(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		seed  int64
		want  []int
	}{
		{"seven seats seed 42", []int{0, 1, 2, 3, 4, 5, 6}, 42, []int{6, 5, 2, 3, 4, 1, 0}},
		{"ten with date seed", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1161695554, []int{3, 0, 4, 6, 2, 5, 7, 8, 9, 1}},
		{"zero seed rotates", []int{0, 1, 2, 3, 4, 5, 6}, 0, []int{1, 2, 3, 4, 5, 6, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Seeded(tt.items, tt.seed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Seeded(%v, %d) = %v, want %v", tt.items, tt.seed, got, tt.want)
			}
		})
	}
}

func TestSeeded_Letters(t *testing.T) {
	got := Seeded([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}, 1)
	want := []string{"h", "f", "d", "i", "a", "g", "c", "b", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSeeded_Deterministic(t *testing.T) {
	items := []string{"ana", "ben", "cho", "dev", "eli", "fay", "gus", "hal"}
	for seed := int64(0); seed < 200; seed++ {
		first := Seeded(items, seed*7919)
		second := Seeded(items, seed*7919)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("seed %d produced %v then %v", seed*7919, first, second)
		}
	}
}

func TestSeeded_IsPermutation(t *testing.T) {
	items := []int{5, 3, 3, 9, 1, 0, 7, 7, 2}
	want := append([]int(nil), items...)
	sort.Ints(want)

	for seed := int64(1); seed < 500; seed += 13 {
		got := Seeded(items, seed)
		if len(got) != len(items) {
			t.Fatalf("seed %d: length %d, want %d", seed, len(got), len(items))
		}
		sort.Ints(got)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("seed %d: multiset changed: %v", seed, got)
		}
	}
}

func TestSeeded_DoesNotMutateInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	Seeded(items, 99)
	if !reflect.DeepEqual(items, []int{1, 2, 3, 4, 5}) {
		t.Errorf("input mutated: %v", items)
	}
}

func TestSeeded_SmallInputs(t *testing.T) {
	if got := Seeded([]int{}, 10); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
	if got := Seeded[int](nil, 10); len(got) != 0 {
		t.Errorf("expected empty result for nil, got %v", got)
	}
	if got := Seeded([]int{4}, 10); !reflect.DeepEqual(got, []int{4}) {
		t.Errorf("expected single element unchanged, got %v", got)
	}
}

func TestSeeded_DistinctSeedsRarelyCollide(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	pairs, collisions := 0, 0
	for k := int64(0); k < 300; k++ {
		k1 := 1000003 + k*104729
		k2 := k1 + 7777
		pairs++
		if reflect.DeepEqual(Seeded(items, k1), Seeded(items, k2)) {
			collisions++
		}
	}
	if collisions*100 > pairs {
		t.Errorf("%d of %d seed pairs produced the same order", collisions, pairs)
	}
}

func TestSeeded_NormalizesOutOfRangeSeeds(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6}
	if !reflect.DeepEqual(Seeded(items, 42+Modulus), Seeded(items, 42)) {
		t.Errorf("seed above modulus should fold onto its residue")
	}
	if !reflect.DeepEqual(Seeded(items, 42-Modulus), Seeded(items, 42)) {
		t.Errorf("negative seed should fold onto its residue")
	}
}

func TestRandomSeed_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		s := RandomSeed()
		if s < 0 || s >= Modulus {
			t.Fatalf("seed %d out of range", s)
		}
	}
}
