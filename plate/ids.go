package plate

// IDAllocator hands out plate and screw ids for a single stage construction
// Ids start at 1 and are never reused within one allocator
type IDAllocator struct {
	nextPlate int
	nextScrew int
}

func NewIDAllocator() *IDAllocator {
	return &IDAllocator{nextPlate: 1, nextScrew: 1}
}

func (a *IDAllocator) PlateID() int {
	id := a.nextPlate
	a.nextPlate++
	return id
}

func (a *IDAllocator) ScrewID() int {
	id := a.nextScrew
	a.nextScrew++
	return id
}
