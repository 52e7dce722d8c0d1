package config

// ScreenID is the viewer's top-level state.
type ScreenID int

const (
	ScreenLoading ScreenID = iota
	ScreenGame
)

func (s ScreenID) String() string {
	switch s {
	case ScreenLoading:
		return "loading"
	case ScreenGame:
		return "game"
	}
	return "unknown"
}
