// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/ssl-checker/src/internal/analytics"
	"github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/inspect"
	"github.com/H0llyW00dzZ/ssl-checker/src/logger"
)

type fakeChecker struct {
	report *inspect.Report
	err    error
	calls  atomic.Int32
	domain atomic.Value
}

func (f *fakeChecker) Inspect(_ context.Context, domain string) (*inspect.Report, error) {
	f.calls.Add(1)
	f.domain.Store(domain)
	return f.report, f.err
}

var okReport = &inspect.Report{
	ValidityStatus:   true,
	ExpirationDate:   "2027-01-01T00:00:00Z",
	Issuer:           "CN=Example CA",
	Subject:          "CN=example.com",
	ValidForDomain:   true,
	RevocationStatus: inspect.RevocationNotImplemented,
}

func newTestServer(t *testing.T, checker Checker, opts Options) (*Server, *analytics.Recorder) {
	t.Helper()

	if opts.Analytics == nil {
		opts.Analytics = analytics.New()
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewJSONLogger(io.Discard, true)
	}
	s, err := New(checker, opts)
	require.NoError(t, err)
	return s, opts.Analytics
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/check_certificate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCheckCertificate_Success(t *testing.T) {
	checker := &fakeChecker{report: okReport}
	s, recorder := newTestServer(t, checker, Options{})

	rec := post(t, s.Handler(), `{"domain": "example.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "example.com", checker.domain.Load())

	var fields map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fields))
	assert.Len(t, fields, 8)
	assert.Equal(t, true, fields["validity_status"])
	assert.Equal(t, "Not implemented", fields["revocation_status"])

	assert.Equal(t, analytics.Snapshot{TotalChecks: 1}, recorder.Snapshot())
}

func TestCheckCertificate_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Malformed JSON", body: `{"domain":`},
		{name: "Not An Object", body: `["example.com"]`},
		{name: "Missing Domain", body: `{}`},
		{name: "Empty Domain", body: `{"domain": ""}`},
		{name: "Domain Not A String", body: `{"domain": 42}`},
		{name: "Domain Too Long", body: `{"domain": "` + strings.Repeat("a", 254) + `"}`},
		{name: "Body Too Large", body: `{"domain": "example.com", "pad": "` + strings.Repeat("x", maxBodyBytes) + `"}`},
		{name: "Empty Body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := &fakeChecker{report: okReport}
			s, recorder := newTestServer(t, checker, Options{})

			rec := post(t, s.Handler(), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, msgInvalidBody, rec.Body.String())
			assert.Zero(t, checker.calls.Load(), "checker must not run")
			assert.Equal(t, analytics.Snapshot{}, recorder.Snapshot())
		})
	}
}

func TestCheckCertificate_PipelineFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Invalid Hostname",
			err:      &inspect.Error{Kind: inspect.KindInvalidHostname, Host: "bad host", Err: errors.New("whitespace")},
			expected: "Invalid hostname",
		},
		{
			name:     "Transport",
			err:      &inspect.Error{Kind: inspect.KindTransportConnect, Host: "example.com", Err: errors.New("connection refused")},
			expected: "TCP connect error: connection refused",
		},
		{
			name:     "TLS",
			err:      &inspect.Error{Kind: inspect.KindTLSHandshake, Host: "example.com", Err: errors.New("unknown authority")},
			expected: "TLS connect error: unknown authority",
		},
		{
			name:     "No Certificates",
			err:      &inspect.Error{Kind: inspect.KindNoCertificates, Host: "example.com"},
			expected: "No certificate found",
		},
		{
			name:     "Parse",
			err:      &inspect.Error{Kind: inspect.KindCertificateParse, Host: "example.com", Err: errors.New("asn1")},
			expected: "Failed to parse certificate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, recorder := newTestServer(t, &fakeChecker{err: tt.err}, Options{})

			rec := post(t, s.Handler(), `{"domain": "example.com"}`)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tt.expected, rec.Body.String())
			assert.Equal(t, analytics.Snapshot{}, recorder.Snapshot(), "failures do not count as checks")
		})
	}
}

func TestCheckCertificate_Busy(t *testing.T) {
	checker := &fakeChecker{report: okReport}
	s, _ := newTestServer(t, checker, Options{MaxConcurrentChecks: 1})

	require.NoError(t, s.sem.Acquire(context.Background(), 1))
	defer s.sem.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req := httptest.NewRequest(http.MethodPost, "/check_certificate", strings.NewReader(`{"domain": "example.com"}`)).WithContext(ctx)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Zero(t, checker.calls.Load())
}

func TestRoutes(t *testing.T) {
	s, recorder := newTestServer(t, &fakeChecker{report: &inspect.Report{SelfSigned: true}}, Options{})
	require.Equal(t, http.StatusOK, post(t, s.Handler(), `{"domain": "example.com"}`).Code)

	tests := []struct {
		name     string
		method   string
		path     string
		status   int
		contains string
	}{
		{name: "Analytics", method: http.MethodGet, path: "/analytics", status: http.StatusOK, contains: `"total_checks":1`},
		{name: "Healthz", method: http.MethodGet, path: "/healthz", status: http.StatusOK, contains: "ok"},
		{name: "Metrics", method: http.MethodGet, path: "/metrics", status: http.StatusOK, contains: "ssl_checker_checks_total"},
		{name: "Wrong Method", method: http.MethodGet, path: "/check_certificate", status: http.StatusMethodNotAllowed},
		{name: "Unknown Route", method: http.MethodGet, path: "/nope", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
		})
	}

	var snap analytics.Snapshot
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analytics", nil))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, recorder.Snapshot(), snap)
	assert.Equal(t, uint64(1), snap.InvalidCerts)
	assert.Equal(t, uint64(1), snap.SelfSignedCerts)
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name     string
		origins  []string
		origin   string
		expected string
	}{
		{name: "Any Origin", origins: nil, origin: "http://localhost:3000", expected: "*"},
		{name: "Allowed Origin", origins: []string{"https://ui.example.com"}, origin: "https://ui.example.com", expected: "https://ui.example.com"},
		{name: "Rejected Origin", origins: []string{"https://ui.example.com"}, origin: "https://evil.example.com", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestServer(t, &fakeChecker{report: okReport}, Options{AllowedOrigins: tt.origins})

			req := httptest.NewRequest(http.MethodOptions, "/check_certificate", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()
			s.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNew_NilChecker(t *testing.T) {
	_, err := New(nil, Options{})
	assert.Error(t, err)
}

func TestServe_GracefulShutdown(t *testing.T) {
	s, _ := newTestServer(t, &fakeChecker{report: okReport}, Options{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestListenAndServe_BadAddress(t *testing.T) {
	s, _ := newTestServer(t, &fakeChecker{report: okReport}, Options{Address: "256.0.0.1:-1"})

	err := s.ListenAndServe(context.Background())
	assert.ErrorContains(t, err, "failed to listen")
}
