package fair

// Hall is one exhibition hall's capacity record within a fair.
type Hall struct {
	FairID     int
	HallID     int
	Name       string
	CapacityM2 int
	BookedM2   int
}

// RemainingM2 is the area still free for new stands.
func (h Hall) RemainingM2() int {
	return h.CapacityM2 - h.BookedM2
}
