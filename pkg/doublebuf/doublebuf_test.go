package doublebuf

import "testing"

type page struct {
	vals []int
}

func TestReadWriteNeverAlias(t *testing.T) {
	db := New(func() *page { return &page{vals: make([]int, 4)} })

	for i := 0; i < 7; i++ {
		if db.Read() == db.Write() {
			t.Fatalf("after %d swaps Read and Write return the same slot", i)
		}
		db.Swap()
	}
}

func TestSwapParity(t *testing.T) {
	db := New(func() *page { return &page{vals: make([]int, 1)} })
	first := db.Read()

	db.Swap()
	if db.Read() == first {
		t.Fatal("one swap should move Read to the other slot")
	}
	db.Swap()
	if db.Read() != first {
		t.Fatal("two swaps should restore the original read slot")
	}
}

func TestSwapMovesNoData(t *testing.T) {
	db := New(func() *page { return &page{vals: make([]int, 2)} })

	db.Write().vals[0] = 42
	written := db.Write()
	db.Swap()

	if db.Read() != written {
		t.Fatal("swap should promote the written slot to the read slot")
	}
	if got := db.Read().vals[0]; got != 42 {
		t.Fatalf("read slot lost written value, got %d", got)
	}
}

func TestSlotsConstructedIndependently(t *testing.T) {
	db := New(func() *page { return &page{vals: make([]int, 3)} })

	db.Write().vals[1] = 9
	if db.Read().vals[1] != 0 {
		t.Fatal("writing one slot must not affect the other")
	}
}
