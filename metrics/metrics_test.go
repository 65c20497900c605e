package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/virjilakrum/igloo/state"
)

func TestCountersRecordAndReadBack(t *testing.T) {
	Init()

	before, err := GetCounterValue(BlocksSyncedName)
	require.NoError(t, err)

	BlockSynced()
	BlockSynced()

	after, err := GetCounterValue(BlocksSyncedName)
	require.NoError(t, err)
	assert.Equal(t, before+2, after)
}

func TestDumpTextRendersRegisteredMetrics(t *testing.T) {
	Init()

	StaleBatchDropped()
	EngineSubmitFailed()
	ReorgDetected(3)
	PendingBatches(7)
	PayloadDerived(string(state.PayloadSourceInstant))

	dump, err := DumpText()
	require.NoError(t, err)
	assert.True(t, strings.Contains(dump, StaleBatchesName))
	assert.True(t, strings.Contains(dump, EngineFailuresName))
	assert.True(t, strings.Contains(dump, ReorgsName))
	assert.True(t, strings.Contains(dump, PendingBatchesName))
	assert.True(t, strings.Contains(dump, PayloadsDerivedName))
}

func TestRecordingUnknownMetricIsSafe(t *testing.T) {
	// Recording helpers ignore names that were never registered, so
	// components can record unconditionally.
	assert.NotPanics(t, func() {
		CounterInc("igloo_never_registered_total")
		GaugeSet("igloo_never_registered", 1)
		HistogramObserve("igloo_never_registered_seconds", 0.5)
	})
}
