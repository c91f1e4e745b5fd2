// Package doublebuf provides a generic two-generation buffer: one slot is
// read while the other is written, and a swap exchanges their roles without
// moving data.
package doublebuf

type slot uint8

const (
	slotA slot = iota
	slotB
)

// DoubleBuf holds two identically-constructed instances of T and a selector
// deciding which one is currently the read generation.
type DoubleBuf[T any] struct {
	sel slot
	a   T
	b   T
}

// New constructs both slots by calling construct twice, so they start with
// identical (but independent) state. Slot A is the initial read generation.
func New[T any](construct func() T) *DoubleBuf[T] {
	return &DoubleBuf[T]{a: construct(), b: construct()}
}

// Read returns the slot holding the previous, fully-written generation.
// Callers may read it freely while a compute pass targets the write slot.
func (d *DoubleBuf[T]) Read() T {
	if d.sel == slotA {
		return d.a
	}
	return d.b
}

// Write returns the scratch slot the next generation is written into. It
// becomes the read slot after Swap.
func (d *DoubleBuf[T]) Write() T {
	if d.sel == slotA {
		return d.b
	}
	return d.a
}

// Swap flips the selector, promoting the write slot to the read slot. It
// re-labels the slots only; no data is copied. The caller must ensure any
// in-flight pass over the slots has completed first.
func (d *DoubleBuf[T]) Swap() {
	if d.sel == slotA {
		d.sel = slotB
		return
	}
	d.sel = slotA
}
