package metrics

import (
	"bytes"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

const (
	prefix = "igloo_"

	// BlocksSyncedName counts L1 blocks fully derived and applied.
	BlocksSyncedName = prefix + "blocks_synced_total"
	// PayloadsDerivedName counts derived payload attributes per source.
	PayloadsDerivedName = prefix + "payloads_derived_total"
	// PendingBatchesName gauges DA batches still accumulating frames.
	PendingBatchesName = prefix + "pending_batches"
	// StaleBatchesName counts DA batches dropped past the staleness horizon.
	StaleBatchesName = prefix + "stale_batches_total"
	// EngineFailuresName counts failed engine submissions.
	EngineFailuresName = prefix + "engine_failures_total"
	// ReorgsName counts detected L1 reorgs.
	ReorgsName = prefix + "reorgs_total"
	// ReorgDepthName gauges the depth of the last detected reorg.
	ReorgDepthName = prefix + "reorg_depth"
	// AdvanceDurationName observes the duration of runner advances.
	AdvanceDurationName = prefix + "advance_duration_seconds"
	// PoolSizeName gauges pending transactions in the pool.
	PoolSizeName = prefix + "pool_size"

	// sourceLabel distinguishes instant from da payloads.
	sourceLabel = "source"
)

func registerIglooMetrics() {
	RegisterCounters(
		prometheus.CounterOpts{Name: BlocksSyncedName, Help: "Total number of L1 blocks fully derived and applied"},
		prometheus.CounterOpts{Name: StaleBatchesName, Help: "Total number of DA batches dropped past the staleness horizon"},
		prometheus.CounterOpts{Name: EngineFailuresName, Help: "Total number of failed engine submissions"},
		prometheus.CounterOpts{Name: ReorgsName, Help: "Total number of detected L1 reorgs"},
	)
	RegisterCounterVecs(
		CounterVecOpts{
			CounterOpts: prometheus.CounterOpts{Name: PayloadsDerivedName, Help: "Total number of derived payload attributes per source"},
			Labels:      []string{sourceLabel},
		},
	)
	RegisterGauges(
		prometheus.GaugeOpts{Name: PendingBatchesName, Help: "DA batches still accumulating frames"},
		prometheus.GaugeOpts{Name: ReorgDepthName, Help: "Depth of the last detected L1 reorg"},
		prometheus.GaugeOpts{Name: PoolSizeName, Help: "Pending transactions in the pool"},
	)
	RegisterHistograms(
		prometheus.HistogramOpts{Name: AdvanceDurationName, Help: "Duration of runner advances in seconds"},
	)
}

// BlockSynced marks one L1 block fully derived and applied.
func BlockSynced() {
	CounterInc(BlocksSyncedName)
}

// PayloadDerived marks one derived attribute of the given source.
func PayloadDerived(source string) {
	CounterVecInc(PayloadsDerivedName, source)
}

// PendingBatches updates the pending DA batch gauge.
func PendingBatches(count int) {
	GaugeSet(PendingBatchesName, float64(count))
}

// StaleBatchDropped marks one DA batch discarded as stale.
func StaleBatchDropped() {
	CounterInc(StaleBatchesName)
}

// EngineSubmitFailed marks one failed engine submission.
func EngineSubmitFailed() {
	CounterInc(EngineFailuresName)
}

// ReorgDetected marks one detected reorg of the given depth.
func ReorgDetected(depth uint64) {
	CounterInc(ReorgsName)
	GaugeSet(ReorgDepthName, float64(depth))
}

// AdvanceTime records the duration of one runner advance.
func AdvanceTime(start time.Time) {
	HistogramObserve(AdvanceDurationName, time.Since(start).Seconds())
}

// PoolSize updates the pool size gauge.
func PoolSize(count int) {
	GaugeSet(PoolSizeName, float64(count))
}

// GetCounterValue reads back the current value of a counter.
func GetCounterValue(name string) (float64, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return 0, err
	}
	for _, mf := range families {
		if mf.GetName() != name || mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range mf.GetMetric() {
			return m.GetCounter().GetValue(), nil
		}
	}
	return 0, nil
}

// DumpText renders every gathered metric in the prometheus text format.
func DumpText() (string, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := expfmt.NewEncoder(&buf, expfmt.FmtText)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
