// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Values of the outcome label besides the failure kinds.
const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// Values of the flag label.
const (
	flagOutsideValidity = "outside_validity"
	flagSelfSigned      = "self_signed"
	flagDomainMismatch  = "domain_mismatch"
)

var (
	// checksTotal counts inspections by outcome.
	// Labels: outcome (ok or the failure kind)
	checksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ssl_checker_checks_total",
			Help: "Total number of certificate checks grouped by outcome",
		},
		[]string{"outcome"},
	)

	// checkDuration tracks the wall time of an inspection, handshake included.
	// Buckets: 0.05s, 0.1s, 0.25s, 0.5s, 1s, 2.5s, 5s, 10s, 15s
	checkDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ssl_checker_check_duration_seconds",
			Help:    "Duration of certificate checks in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
	)

	// reportsTotal counts completed reports carrying a notable flag.
	// Labels: flag (outside_validity, self_signed, domain_mismatch)
	reportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ssl_checker_reports_total",
			Help: "Total number of certificate reports grouped by flag",
		},
		[]string{"flag"},
	)
)
