package component

type Player struct {
	// Speed is applied per axis, so diagonals move faster than straight lines.
	Speed float64
}

var PlayerComponent = NewComponent[Player]()
