package game

import "strconv"

// Action is either a knight offset from the mover's location, or an absolute
// cell index while the mover's token is unplaced.
type Action int

// Knight offsets for a board with row stride meta.STRIDE (13).
const (
	NNE Action = 27
	ENE Action = 15
	ESE Action = -11
	SSE Action = -25
	SSW Action = -27
	WSW Action = -15
	WNW Action = 11
	NNW Action = 25
)

// Directions lists the knight offsets in enumeration order.
var Directions = []Action{NNE, ENE, ESE, SSE, SSW, WSW, WNW, NNW}

var directionNames = map[Action]string{
	NNE: "NNE", ENE: "ENE", ESE: "ESE", SSE: "SSE",
	SSW: "SSW", WSW: "WSW", WNW: "WNW", NNW: "NNW",
}

func (a Action) String() string {
	if name, ok := directionNames[a]; ok {
		return name
	}
	return "cell " + strconv.Itoa(int(a))
}
