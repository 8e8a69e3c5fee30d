package random

import "testing"

func TestNewRng_SeededReplay(t *testing.T) {
	a, err := NewRng(42)
	if err != nil {
		t.Fatalf("NewRng(42) error = %v", err)
	}
	b, err := NewRng(42)
	if err != nil {
		t.Fatalf("NewRng(42) error = %v", err)
	}

	for i := 0; i < 10; i++ {
		if got, want := a.Int63(), b.Int63(); got != want {
			t.Fatalf("draw %d = %d, want %d", i, got, want)
		}
	}
}

func TestNewRng_ZeroSeedDiverges(t *testing.T) {
	a, err := NewRng(0)
	if err != nil {
		t.Fatalf("NewRng(0) error = %v", err)
	}
	b, err := NewRng(0)
	if err != nil {
		t.Fatalf("NewRng(0) error = %v", err)
	}

	if a.Int63() == b.Int63() {
		t.Fatal("two unseeded generators drew the same first value")
	}
}
