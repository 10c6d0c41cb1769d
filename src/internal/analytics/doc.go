// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package analytics counts certificate inspections.
//
// A [Recorder] keeps the totals served by the analytics endpoint and mirrors
// every observation into Prometheus collectors registered with the default
// registry, so the same numbers are available under /metrics.
//
// Only completed inspections move the analytics totals. Failed inspections
// are visible in the metrics only, labelled with the stage that failed.
package analytics
