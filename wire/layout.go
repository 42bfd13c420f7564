package wire

import "fmt"

// Field is one fixed-size field in an entity's wire layout: its name,
// its width in bytes, and its offset from the start of the fixed region.
type Field struct {
	Name   string
	Size   int
	Offset int
}

// Layout is the ordered table of fixed-size fields at the front of an
// entity's wire form. Tables are authored once per entity, next to the
// offset constants the codec actually uses. Internal consistency
// (contiguous, gap-free offsets) is a construction-time discipline:
// it is asserted by tests via Validate, not re-checked on every call.
type Layout []Field

// BaseSize returns the total byte length of the fixed region: the sum
// of all field sizes.
func (l Layout) BaseSize() int {
	size := 0
	for _, f := range l {
		size += f.Size
	}
	return size
}

// Validate checks that the table starts at offset zero and that each
// field begins exactly where the previous one ends, so the fixed
// region has no gaps and no overlaps.
func (l Layout) Validate() error {
	next := 0
	for _, f := range l {
		if f.Size <= 0 {
			return fmt.Errorf("layout field %q: non-positive size %d", f.Name, f.Size)
		}
		if f.Offset != next {
			return fmt.Errorf("layout field %q: offset %d, want %d", f.Name, f.Offset, next)
		}
		next += f.Size
	}
	return nil
}
