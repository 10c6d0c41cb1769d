// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package analytics

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/inspect"
)

// RevocationRevoked is the revocation status counted as revoked.
const RevocationRevoked = "Revoked"

// Snapshot is a point-in-time copy of the totals.
type Snapshot struct {
	TotalChecks     uint64 `json:"total_checks"`
	InvalidCerts    uint64 `json:"invalid_certs"`
	SelfSignedCerts uint64 `json:"self_signed_certs"`
	RevokedCerts    uint64 `json:"revoked_certs"`
}

// Recorder accumulates inspection outcomes. It is safe for concurrent use.
type Recorder struct {
	total      atomic.Uint64
	invalid    atomic.Uint64
	selfSigned atomic.Uint64
	revoked    atomic.Uint64
}

// Default is the process-wide recorder shared by every surface.
var Default = New()

// New returns an empty Recorder.
func New() *Recorder { return &Recorder{} }

// Record records the result of one inspection: rep when err is nil,
// otherwise the failure.
func (r *Recorder) Record(rep *inspect.Report, err error, d time.Duration) {
	if err != nil || rep == nil {
		r.RecordFailure(err, d)
		return
	}
	r.RecordReport(rep, d)
}

// RecordReport records a completed inspection.
func (r *Recorder) RecordReport(rep *inspect.Report, d time.Duration) {
	r.total.Add(1)
	if rep.Invalid() {
		r.invalid.Add(1)
	}
	if rep.SelfSigned {
		r.selfSigned.Add(1)
		reportsTotal.WithLabelValues(flagSelfSigned).Inc()
	}
	if strings.EqualFold(rep.RevocationStatus, RevocationRevoked) {
		r.revoked.Add(1)
	}
	if !rep.ValidityStatus {
		reportsTotal.WithLabelValues(flagOutsideValidity).Inc()
	}
	if !rep.ValidForDomain {
		reportsTotal.WithLabelValues(flagDomainMismatch).Inc()
	}

	checksTotal.WithLabelValues(outcomeOK).Inc()
	checkDuration.Observe(d.Seconds())
}

// RecordFailure records an inspection that ended without a report. The
// totals are left alone.
func (r *Recorder) RecordFailure(err error, d time.Duration) {
	checksTotal.WithLabelValues(Outcome(err)).Inc()
	checkDuration.Observe(d.Seconds())
}

// Snapshot returns the current totals.
func (r *Recorder) Snapshot() Snapshot {
	return Snapshot{
		TotalChecks:     r.total.Load(),
		InvalidCerts:    r.invalid.Load(),
		SelfSignedCerts: r.selfSigned.Load(),
		RevokedCerts:    r.revoked.Load(),
	}
}

// Outcome returns the outcome label for err: "ok" for nil, the failure kind
// for pipeline errors and "error" for anything else.
func Outcome(err error) string {
	if err == nil {
		return outcomeOK
	}
	if kind, ok := inspect.KindOf(err); ok {
		return kind.String()
	}
	return outcomeError
}
