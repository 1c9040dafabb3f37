package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy    string
	Column      int
	Duration    time.Duration
	Evaluations int // positions scored or probed for a win
}

type MoveMetric struct {
	Step   int
	Player string // Player symbol
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string // Player symbol
	Winner         string // Player symbol, "" on a tie
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers the metrics of a single move search.
type Collector interface {
	Start(strategy string)
	AddEvaluation()
	Complete(column int) SearchMetric
}

type collector struct {
	strategy    string
	startTime   time.Time
	evaluations atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
	m.evaluations.Store(0)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) Complete(column int) SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Column:      column,
		Duration:    time.Since(m.startTime),
		Evaluations: int(m.evaluations.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)            {}
func (m *dummyCollector) AddEvaluation()                   {}
func (m *dummyCollector) Complete(column int) SearchMetric { return SearchMetric{} }
