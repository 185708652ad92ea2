package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration    time.Duration
	Nodes       int
	Evaluations int
	Cutoffs     int
	Depth       int // Deepest fully completed iterative deepening pass
}

type MoveMetric struct {
	Step         int
	Player       int // Player ID
	Action       int
	Elapsed      time.Duration
	Publications int
	TimedOut     bool
	SearchMetric
}

type GameMetric struct {
	StartingAgent string
	Winner        string
	Loser         string
	Forfeit       bool
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

// Collector is written by the search goroutine and may be read by the caller
// at any time, so every field is atomic.
type Collector interface {
	Start()
	AddNode()
	AddEvaluation()
	AddCutoff()
	CompleteDepth(depth int)
	Complete() SearchMetric
}

type collector struct {
	startTime   atomic.Int64
	endTime     atomic.Int64 // When the last depth completed
	nodes       atomic.Int64
	evaluations atomic.Int64
	cutoffs     atomic.Int64
	depth       atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime.Store(time.Now().UnixNano())
	m.endTime.Store(0)
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
	m.depth.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) CompleteDepth(depth int) {
	m.endTime.Store(time.Now().UnixNano())
	m.depth.Store(int32(depth))
}

func (m *collector) Complete() SearchMetric {
	// Duration ends at the last completed depth; before the first one it is
	// the time elapsed so far.
	var duration time.Duration
	if start := m.startTime.Load(); start != 0 {
		if end := m.endTime.Load(); end != 0 {
			duration = time.Duration(end - start)
		} else {
			duration = time.Since(time.Unix(0, start))
		}
	}
	return SearchMetric{
		Duration:    duration,
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		Depth:       int(m.depth.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  {}
func (m *dummyCollector) AddNode()                {}
func (m *dummyCollector) AddEvaluation()          {}
func (m *dummyCollector) AddCutoff()              {}
func (m *dummyCollector) CompleteDepth(depth int) {}
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
