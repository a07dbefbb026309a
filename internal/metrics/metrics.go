package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu                 sync.RWMutex
	PersonasGenerated  int64
	QuestionsProcessed int64
	QuestionsSucceeded int64
	QuestionsErrored   int64
	APICallsTotal      int64
	APICallsSuccessful int64
	LastUpdateTime     time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementPersonasGenerated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersonasGenerated++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementQuestionsProcessed(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuestionsProcessed++
	if success {
		m.QuestionsSucceeded++
	} else {
		m.QuestionsErrored++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAPICall(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.APICallsTotal++
	if success {
		m.APICallsSuccessful++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Metrics{
		PersonasGenerated:  m.PersonasGenerated,
		QuestionsProcessed: m.QuestionsProcessed,
		QuestionsSucceeded: m.QuestionsSucceeded,
		QuestionsErrored:   m.QuestionsErrored,
		APICallsTotal:      m.APICallsTotal,
		APICallsSuccessful: m.APICallsSuccessful,
		LastUpdateTime:     m.LastUpdateTime,
	}
}
