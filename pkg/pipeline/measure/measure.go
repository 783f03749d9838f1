package measure

import (
	"sync"
)

// DefaultMeasure is an in-memory Measure, safe for concurrent use.
type DefaultMeasure struct {
	mu    sync.RWMutex
	steps map[string]Metric
}

// NewDefaultMeasure creates an empty measure.
func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		steps: make(map[string]Metric),
	}
}

// AddMetric registers the metric of a step.
func (m *DefaultMeasure) AddMetric(name string, concurrent int) Metric {
	if concurrent < 1 {
		concurrent = 1
	}
	mt := &DefaultMetric{
		allTransports: make(map[string]*TransportInfo),
		concurrent:    concurrent,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps[name] = mt

	return mt
}

// GetMetric returns the metric of a step, or nil.
func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.steps[name]
}

// AllMetrics returns a copy of the metrics by step name.
func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make(map[string]Metric, len(m.steps))
	for name, mt := range m.steps {
		res[name] = mt
	}

	return res
}

var _ Measure = (*DefaultMeasure)(nil)
