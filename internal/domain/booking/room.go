package booking

type Room struct {
	ID       string
	Name     string
	Capacity int
}

func NewRoom(id, name string, capacity int) Room {
	return Room{ID: id, Name: name, Capacity: capacity}
}

// TotalCapacity sums the occupants the given rooms can hold.
func TotalCapacity(rooms []Room) int {
	total := 0
	for _, r := range rooms {
		total += r.Capacity
	}
	return total
}
