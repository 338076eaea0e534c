package rng

import "testing"

func TestDeterministic(t *testing.T) {
	rng1 := New(42)
	rng2 := New(42)

	for i := 0; i < 20; i++ {
		a := rng1.Roll(100)
		b := rng2.Roll(100)
		if a != b {
			t.Fatalf("roll %d: got %d and %d from same seed", i, a, b)
		}
	}
}

func TestRoll_Range(t *testing.T) {
	rng := New(99)

	for i := 0; i < 1000; i++ {
		r := rng.Roll(6)
		if r < 1 || r > 6 {
			t.Fatalf("roll out of range [1,6]: got %d", r)
		}
	}
}

func TestPick_Range(t *testing.T) {
	rng := New(7)

	for i := 0; i < 1000; i++ {
		p := rng.Pick(5)
		if p < 0 || p > 4 {
			t.Fatalf("pick out of range [0,5): got %d", p)
		}
	}
}

func TestChance_Extremes(t *testing.T) {
	rng := New(1)

	for i := 0; i < 100; i++ {
		if rng.Chance(0) {
			t.Fatal("Chance(0) should never be true")
		}
		if !rng.Chance(1) {
			t.Fatal("Chance(1) should always be true")
		}
	}
}

func TestWeightedSelect_Deterministic(t *testing.T) {
	rng1 := New(42)
	rng2 := New(42)
	weights := []int{70, 20, 10}

	for i := 0; i < 20; i++ {
		a := rng1.WeightedSelect(weights)
		b := rng2.WeightedSelect(weights)
		if a != b {
			t.Fatalf("selection %d: got %d and %d from same seed", i, a, b)
		}
		if a < 0 || a > 2 {
			t.Fatalf("selection out of range: %d", a)
		}
	}
}
