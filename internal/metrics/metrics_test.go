package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	m.IncrementPersonasGenerated()
	m.IncrementQuestionsProcessed(true)
	m.IncrementQuestionsProcessed(true)
	m.IncrementQuestionsProcessed(false)
	m.IncrementAPICall(true)
	m.IncrementAPICall(false)

	snapshot := m.GetSnapshot()
	require.Equal(t, int64(1), snapshot.PersonasGenerated)
	require.Equal(t, int64(3), snapshot.QuestionsProcessed)
	require.Equal(t, int64(2), snapshot.QuestionsSucceeded)
	require.Equal(t, int64(1), snapshot.QuestionsErrored)
	require.Equal(t, int64(2), snapshot.APICallsTotal)
	require.Equal(t, int64(1), snapshot.APICallsSuccessful)
	require.False(t, snapshot.LastUpdateTime.IsZero())
}
