package game

// Snapshot is the JSON form of an Isolation position.
type Snapshot struct {
	PlyCount int    `json:"ply_count"`
	Locs     [2]int `json:"locs"`
	Blocked  []int  `json:"blocked"`
}

func (s Isolation) Snapshot() Snapshot {
	blank := blankBoard()
	blocked := []int{}
	for cell := 0; cell < len(blank)*64; cell++ {
		if blank.isOpen(cell) && !s.board.isOpen(cell) {
			blocked = append(blocked, cell)
		}
	}
	return Snapshot{PlyCount: s.plyCount, Locs: s.locs, Blocked: blocked}
}

func (sn Snapshot) Isolation() (Isolation, error) {
	return NewIsolationAt(sn.PlyCount, sn.Locs, sn.Blocked...)
}
