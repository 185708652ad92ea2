// meta/meta.go
package meta

import "time"

// WIDTH and HEIGHT define the playable board size.
const WIDTH = 11
const HEIGHT = 9

// STRIDE is the row stride of a cell index, including the two sentinel columns.
const STRIDE = WIDTH + 2

// SIZE is the number of addressable cells (the last row omits its sentinels).
const SIZE = STRIDE*HEIGHT - 2

// DEPTH_LIMIT defines the deepest iterative deepening pass.
const DEPTH_LIMIT = 2

// OPENING_PLIES defines how many plies are played randomly.
const OPENING_PLIES = 2

// TIME_LIMIT defines the wall clock budget per move.
const TIME_LIMIT = 150 * time.Millisecond

// MAX_PLIES caps a game. Isolation always terminates before the board fills.
const MAX_PLIES = SIZE
