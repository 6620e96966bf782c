package model

import "testing"

func TestHashTracksState(t *testing.T) {
	a := newTestBoard(t, 3, 3, Synchronous, Coordinates{X: 1, Y: 1})
	b := newTestBoard(t, 3, 3, Synchronous, Coordinates{X: 1, Y: 1})
	if a.Hash() != b.Hash() {
		t.Fatal("expected equal boards to hash equally")
	}
	if err := a.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if a.Hash() == b.Hash() {
		t.Fatal("expected hash to change with the cells")
	}
}

func TestHistoryDetectsBlinker(t *testing.T) {
	b := newTestBoard(t, 5, 5, Synchronous,
		Coordinates{X: 1, Y: 2}, Coordinates{X: 2, Y: 2}, Coordinates{X: 3, Y: 2},
	)
	h := NewHistory(0)

	var stagnant []bool
	for range 4 {
		hash := b.Hash()
		stagnant = append(stagnant, h.IsStagnant(hash))
		h.Record(hash)
		if err := b.Update(); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	want := []bool{false, false, true, true}
	for i := range want {
		if stagnant[i] != want[i] {
			t.Fatalf("step %d: expected stagnant=%v, got %v", i, want[i], stagnant[i])
		}
	}
}

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(2)
	for _, hash := range []string{"a", "b", "c"} {
		h.Record(hash)
	}
	if h.Len() != 2 {
		t.Fatalf("expected 2 hashes, got %d", h.Len())
	}
	if h.IsStagnant("a") {
		t.Fatal("expected oldest hash to be dropped")
	}
	if !h.IsStagnant("b") || !h.IsStagnant("c") {
		t.Fatal("expected recent hashes to be remembered")
	}

	h.Reset()
	if h.Len() != 0 || h.IsStagnant("c") {
		t.Fatal("expected reset to forget every hash")
	}
}
