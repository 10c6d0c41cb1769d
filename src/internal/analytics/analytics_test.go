// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package analytics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/inspect"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func report(validity, forDomain, selfSigned bool, revocation string) *inspect.Report {
	return &inspect.Report{
		ValidityStatus:   validity,
		ValidForDomain:   forDomain,
		SelfSigned:       selfSigned,
		RevocationStatus: revocation,
	}
}

func TestRecorder_Snapshot(t *testing.T) {
	tests := []struct {
		name     string
		reports  []*inspect.Report
		failures []error
		expected Snapshot
	}{
		{
			name:     "Empty",
			expected: Snapshot{},
		},
		{
			name: "Valid Reports",
			reports: []*inspect.Report{
				report(true, true, false, inspect.RevocationNotImplemented),
				report(true, true, false, inspect.RevocationNotImplemented),
			},
			expected: Snapshot{TotalChecks: 2},
		},
		{
			name: "Invalid And Self Signed",
			reports: []*inspect.Report{
				report(false, true, false, inspect.RevocationNotImplemented),
				report(true, false, true, inspect.RevocationNotImplemented),
				report(false, false, true, inspect.RevocationNotImplemented),
			},
			expected: Snapshot{TotalChecks: 3, InvalidCerts: 3, SelfSignedCerts: 2},
		},
		{
			name:     "Revoked",
			reports:  []*inspect.Report{report(true, true, false, "revoked")},
			expected: Snapshot{TotalChecks: 1, RevokedCerts: 1},
		},
		{
			name: "Failures Do Not Move Totals",
			reports: []*inspect.Report{
				report(true, true, false, inspect.RevocationNotImplemented),
			},
			failures: []error{
				&inspect.Error{Kind: inspect.KindTLSHandshake},
				errors.New("boom"),
			},
			expected: Snapshot{TotalChecks: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			for _, rep := range tt.reports {
				r.Record(rep, nil, time.Millisecond)
			}
			for _, err := range tt.failures {
				r.Record(nil, err, time.Millisecond)
			}
			assert.Equal(t, tt.expected, r.Snapshot())
		})
	}
}

func TestRecorder_Concurrent(t *testing.T) {
	r := New()

	const workers = 20
	const perWorker = 50

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for range perWorker {
				r.RecordReport(report(false, true, true, inspect.RevocationNotImplemented), time.Millisecond)
			}
		}()
	}
	wg.Wait()

	snap := r.Snapshot()
	assert.Equal(t, uint64(workers*perWorker), snap.TotalChecks)
	assert.Equal(t, uint64(workers*perWorker), snap.InvalidCerts)
	assert.Equal(t, uint64(workers*perWorker), snap.SelfSignedCerts)
}

func TestRecorder_Metrics(t *testing.T) {
	r := New()

	okBefore := counterValue(t, checksTotal.WithLabelValues(outcomeOK))
	tlsBefore := counterValue(t, checksTotal.WithLabelValues(inspect.KindTLSHandshake.String()))
	outsideBefore := counterValue(t, reportsTotal.WithLabelValues(flagOutsideValidity))
	mismatchBefore := counterValue(t, reportsTotal.WithLabelValues(flagDomainMismatch))
	selfSignedBefore := counterValue(t, reportsTotal.WithLabelValues(flagSelfSigned))

	r.RecordReport(report(false, false, true, inspect.RevocationNotImplemented), 10*time.Millisecond)
	r.RecordFailure(&inspect.Error{Kind: inspect.KindTLSHandshake}, 20*time.Millisecond)

	assert.Equal(t, okBefore+1, counterValue(t, checksTotal.WithLabelValues(outcomeOK)))
	assert.Equal(t, tlsBefore+1, counterValue(t, checksTotal.WithLabelValues(inspect.KindTLSHandshake.String())))
	assert.Equal(t, outsideBefore+1, counterValue(t, reportsTotal.WithLabelValues(flagOutsideValidity)))
	assert.Equal(t, mismatchBefore+1, counterValue(t, reportsTotal.WithLabelValues(flagDomainMismatch)))
	assert.Equal(t, selfSignedBefore+1, counterValue(t, reportsTotal.WithLabelValues(flagSelfSigned)))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "InvalidHostname", Outcome(&inspect.Error{Kind: inspect.KindInvalidHostname}))
	assert.Equal(t, "TransportConnectFailed", Outcome(inspect.ErrTransportConnect))
	assert.Equal(t, "error", Outcome(errors.New("other")))
}

func TestRecorder_OutsideValidity(t *testing.T) {
	tests := []struct {
		name string
		rep  *inspect.Report
		want float64
	}{
		{
			name: "Expired",
			rep:  &inspect.Report{ExpirationDate: "2001-01-01T00:00:00Z", ValidForDomain: true},
			want: 1,
		},
		{
			name: "Not Yet Valid",
			rep:  &inspect.Report{ExpirationDate: "2099-01-01T00:00:00Z", ValidForDomain: true},
			want: 1,
		},
		{
			name: "Indeterminate Window",
			rep:  &inspect.Report{ExpirationDate: inspect.InvalidDate, ValidForDomain: true},
			want: 1,
		},
		{
			name: "Within Window",
			rep:  &inspect.Report{ValidityStatus: true, ExpirationDate: "2099-01-01T00:00:00Z", ValidForDomain: true},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := counterValue(t, reportsTotal.WithLabelValues(flagOutsideValidity))
			New().RecordReport(tt.rep, time.Millisecond)
			assert.Equal(t, before+tt.want, counterValue(t, reportsTotal.WithLabelValues(flagOutsideValidity)))
		})
	}
}
