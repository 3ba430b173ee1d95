// Copyright 2025 ColQuery, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics defines the Prometheus metrics of the aggregation core.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ScannedRows counts rows fed into aggregation, across all workers.
	ScannedRows = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "colquery",
			Subsystem: "aggregate",
			Name:      "scanned_rows_total",
			Help:      "Counter of rows scanned by aggregation workers.",
		})

	// ScannedBatches counts batches fed into aggregation.
	ScannedBatches = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "colquery",
			Subsystem: "aggregate",
			Name:      "scanned_batches_total",
			Help:      "Counter of batches scanned by aggregation workers.",
		})

	// ActiveScanWorkers tracks the number of currently running scan
	// workers.
	ActiveScanWorkers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "colquery",
			Subsystem: "aggregate",
			Name:      "active_scan_workers",
			Help:      "Gauge of currently running aggregation scan workers.",
		})

	// MergeDuration observes the duration of the reduction phase.
	MergeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "colquery",
			Subsystem: "aggregate",
			Name:      "merge_duration_seconds",
			Help:      "Bucketed histogram of partial-result reduction time.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 2, 20),
		})
)

// Register registers all metrics of this package with r.
func Register(r prometheus.Registerer) {
	r.MustRegister(ScannedRows)
	r.MustRegister(ScannedBatches)
	r.MustRegister(ActiveScanWorkers)
	r.MustRegister(MergeDuration)
}
