package autocuber

// Grid coordinates are integer triples in {-1,0,1}^3. The origin is the
// cube's immovable core; the remaining 26 coordinates are the slots the
// movable pieces occupy.

// NumSlots is the number of raw grid slots, including the core.
const NumSlots = 27

// CoreSlot is the slot of the immovable core at the origin.
const CoreSlot = 13

// SlotOf maps a grid coordinate to its slot index in [0, 27).
// Each component must be in {-1, 0, 1}; anything else is a programming
// error.
func SlotOf(x, y, z int) int {
	return 9*(x+1) + 3*(y+1) + (z + 1)
}

// CoordOf is the exact inverse of SlotOf: it recovers the grid coordinate
// from a slot index using balanced base-3 decomposition.
func CoordOf(slot int) (x, y, z int) {
	return slot/9 - 1, slot/3%3 - 1, slot%3 - 1
}
