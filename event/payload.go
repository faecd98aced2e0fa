package event

// MovePayload is the requested player displacement
type MovePayload struct {
	DX, DY int
}

// FirePayload is the aim point in field coordinates
type FirePayload struct {
	X, Y int
}
