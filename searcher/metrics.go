package searcher

import "time"

// MoveMetrics summarizes one call to FindAction.
type MoveMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Episodes     int
	FullPlayouts int // rollouts that reached a terminal state
	TreeReused   bool
}

type MetricsCollector interface {
	Start()
	AddEpisode()
	AddFullPlayout()
	SetTreeReused(reused bool)
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime    time.Time
	episodes     int
	fullPlayouts int
	treeReused   bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.episodes = 0
	m.fullPlayouts = 0
}

func (m *metricsCollector) AddEpisode() {
	m.episodes++
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *metricsCollector) SetTreeReused(reused bool) {
	m.treeReused = reused
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		FullPlayouts: m.fullPlayouts,
		TreeReused:   m.treeReused,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                    {}
func (m *noMetricsCollector) AddEpisode()               {}
func (m *noMetricsCollector) AddFullPlayout()           {}
func (m *noMetricsCollector) SetTreeReused(reused bool) {}
func (m *noMetricsCollector) Complete() MoveMetrics     { return MoveMetrics{} }
