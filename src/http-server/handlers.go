// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/H0llyW00dzZ/ssl-checker/src/internal/analytics"
	"github.com/H0llyW00dzZ/ssl-checker/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/inspect"
)

const (
	msgInvalidBody = "Invalid request body"
	msgBusy        = "Server busy"
)

// handleCheckCertificate inspects the domain named in the request body and
// answers with its certificate report.
func (s *Server) handleCheckCertificate(w http.ResponseWriter, r *http.Request) {
	body, err := gc.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.log.Printf("check_certificate: read body: %v", err)
		writeText(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := validate(s.schema, body); err != nil {
		s.log.Printf("check_certificate: %v", err)
		writeText(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	var req checkRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeText(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	ctx := r.Context()
	if err := s.sem.Acquire(ctx, 1); err != nil {
		s.log.Printf("check_certificate domain=%s outcome=cancelled: %v", req.Domain, err)
		writeText(w, http.StatusServiceUnavailable, msgBusy)
		return
	}
	defer s.sem.Release(1)

	start := time.Now()
	report, err := s.checker.Inspect(ctx, req.Domain)
	elapsed := time.Since(start)
	s.analytics.Record(report, err, elapsed)

	s.log.Printf("check_certificate domain=%s outcome=%s duration=%s",
		req.Domain, analytics.Outcome(err), elapsed.Round(time.Millisecond))

	if err != nil {
		writeText(w, http.StatusInternalServerError, inspect.Describe(err))
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// handleAnalytics answers with the current analytics totals.
func (s *Server) handleAnalytics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.analytics.Snapshot())
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ok")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeText(w, http.StatusInternalServerError, "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
