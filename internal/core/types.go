package core

// Size describes the dimensions of a game grid.
type Size struct {
	W int
	H int
}

// Cell classes stored in a game's render buffer. Renderers map these
// through a palette; games must not emit any other values.
const (
	ClassEmpty uint8 = iota
	ClassBody
	ClassHead
	ClassFood
)

// Game defines the minimal contract a grid game must implement.
type Game interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Steerable is implemented by games that accept player direction input.
// A game without it drives itself.
type Steerable interface {
	Steer(Direction)
}

// Status is one label/value line a game reports for display.
type Status struct {
	Label string
	Value string
}

// StatusProvider exposes status lines for the HUD and terminal footer.
type StatusProvider interface {
	Status() []Status
}

// Factory constructs a Game using an optional configuration map.
type Factory func(cfg map[string]string) Game

var games = map[string]Factory{}

// Register adds a game factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	games[name] = f
}

// Games exposes the registry of available game factories.
func Games() map[string]Factory {
	return games
}
