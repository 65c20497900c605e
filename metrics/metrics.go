// Package metrics exposes the node's prometheus instrumentation. A small
// generic layer guards every operation behind Init so components can record
// unconditionally, plus the igloo metric definitions and helpers.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/virjilakrum/igloo/log"
)

var (
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer

	initOnce    sync.Once
	initialized bool

	counters     map[string]prometheus.Counter
	counterVecs  map[string]*prometheus.CounterVec
	gauges       map[string]prometheus.Gauge
	histograms   map[string]prometheus.Histogram
	metricsMutex sync.Mutex
)

// Init sets up the registry. Recording before Init is a no-op.
func Init() {
	initOnce.Do(func() {
		registry := prometheus.NewRegistry()
		registerer = registry
		gatherer = registry

		counters = make(map[string]prometheus.Counter)
		counterVecs = make(map[string]*prometheus.CounterVec)
		gauges = make(map[string]prometheus.Gauge)
		histograms = make(map[string]prometheus.Histogram)
		initialized = true

		registerIglooMetrics()
	})
}

// Handler returns the scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// RegisterCounters registers the provided counter options.
func RegisterCounters(opts ...prometheus.CounterOpts) {
	if !initialized {
		return
	}
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	for _, o := range opts {
		if _, ok := counters[o.Name]; ok {
			continue
		}
		c := prometheus.NewCounter(o)
		if err := registerer.Register(c); err != nil {
			log.Errorf("failed to register counter %s: %v", o.Name, err)
			continue
		}
		counters[o.Name] = c
	}
}

// RegisterCounterVecs registers the provided counter vec options.
func RegisterCounterVecs(vecs ...CounterVecOpts) {
	if !initialized {
		return
	}
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	for _, v := range vecs {
		if _, ok := counterVecs[v.Name]; ok {
			continue
		}
		c := prometheus.NewCounterVec(v.CounterOpts, v.Labels)
		if err := registerer.Register(c); err != nil {
			log.Errorf("failed to register counter vec %s: %v", v.Name, err)
			continue
		}
		counterVecs[v.Name] = c
	}
}

// RegisterGauges registers the provided gauge options.
func RegisterGauges(opts ...prometheus.GaugeOpts) {
	if !initialized {
		return
	}
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	for _, o := range opts {
		if _, ok := gauges[o.Name]; ok {
			continue
		}
		g := prometheus.NewGauge(o)
		if err := registerer.Register(g); err != nil {
			log.Errorf("failed to register gauge %s: %v", o.Name, err)
			continue
		}
		gauges[o.Name] = g
	}
}

// RegisterHistograms registers the provided histogram options.
func RegisterHistograms(opts ...prometheus.HistogramOpts) {
	if !initialized {
		return
	}
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	for _, o := range opts {
		if _, ok := histograms[o.Name]; ok {
			continue
		}
		h := prometheus.NewHistogram(o)
		if err := registerer.Register(h); err != nil {
			log.Errorf("failed to register histogram %s: %v", o.Name, err)
			continue
		}
		histograms[o.Name] = h
	}
}

// CounterVecOpts bundles counter vec options with its labels.
type CounterVecOpts struct {
	prometheus.CounterOpts
	Labels []string
}

// CounterInc increments the counter with the given name.
func CounterInc(name string) {
	if !initialized {
		return
	}
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	if c, ok := counters[name]; ok {
		c.Inc()
	}
}

// CounterAdd adds the given value to the counter with the given name.
func CounterAdd(name string, value float64) {
	if !initialized {
		return
	}
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	if c, ok := counters[name]; ok {
		c.Add(value)
	}
}

// CounterVecInc increments the counter vec with the given name and label.
func CounterVecInc(name string, label string) {
	if !initialized {
		return
	}
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	if c, ok := counterVecs[name]; ok {
		c.WithLabelValues(label).Inc()
	}
}

// GaugeSet sets the gauge with the given name.
func GaugeSet(name string, value float64) {
	if !initialized {
		return
	}
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	if g, ok := gauges[name]; ok {
		g.Set(value)
	}
}

// HistogramObserve records an observation into the histogram with the given
// name.
func HistogramObserve(name string, value float64) {
	if !initialized {
		return
	}
	metricsMutex.Lock()
	defer metricsMutex.Unlock()

	if h, ok := histograms[name]; ok {
		h.Observe(value)
	}
}
