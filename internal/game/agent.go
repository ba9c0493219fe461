package game

// Generator chooses where the next tile appears.
type Generator interface {
	// Generate returns the placement for the next tile. ok is false when the
	// generator has no placement to offer, typically because the board is full.
	// Implementations must not modify s.
	Generate(s *State) (p Placement, ok bool, err error)
}

// Player chooses the next move.
type Player interface {
	// Play returns the next direction. ok is false when no move is available.
	// Implementations must not modify s.
	Play(s *State) (dir Direction, ok bool, err error)
}

// Viewer is notified after every change to a game's state.
type Viewer interface {
	// Update receives a snapshot the viewer may keep.
	Update(s *State)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(s *State) (Placement, bool, error)

// Generate calls f(s).
func (f GeneratorFunc) Generate(s *State) (Placement, bool, error) {
	return f(s)
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(s *State) (Direction, bool, error)

// Play calls f(s).
func (f PlayerFunc) Play(s *State) (Direction, bool, error) {
	return f(s)
}

// ViewerFunc adapts a function to the Viewer interface.
type ViewerFunc func(s *State)

// Update calls f(s).
func (f ViewerFunc) Update(s *State) {
	f(s)
}
