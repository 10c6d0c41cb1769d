// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import (
	"context"
	"crypto/x509"
	"time"
)

// Inspector runs the full pipeline for one domain at a time. It holds no
// per-request state and is safe for concurrent use.
type Inspector struct {
	executor   *Executor
	revocation RevocationChecker
	evaluator  *Evaluator
	now        func() time.Time
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithRoots replaces the compiled-in trust anchors.
func WithRoots(pool *x509.CertPool) Option {
	return func(in *Inspector) { in.executor.Roots = pool }
}

// WithPort connects to port instead of 443.
func WithPort(port int) Option {
	return func(in *Inspector) { in.executor.Port = port }
}

// WithConnectTimeout bounds the TCP connect.
func WithConnectTimeout(d time.Duration) Option {
	return func(in *Inspector) { in.executor.ConnectTimeout = d }
}

// WithHandshakeTimeout bounds the TLS handshake.
func WithHandshakeTimeout(d time.Duration) Option {
	return func(in *Inspector) { in.executor.HandshakeTimeout = d }
}

// WithClock sets the source of "now" used for the validity check.
func WithClock(now func() time.Time) Option {
	return func(in *Inspector) {
		if now != nil {
			in.now = now
		}
	}
}

// WithRevocationChecker sets the revocation collaborator.
func WithRevocationChecker(rc RevocationChecker) Option {
	return func(in *Inspector) { in.revocation = rc }
}

// New creates an Inspector. Without options it verifies against the
// compiled-in roots on port 443 with the default timeouts.
func New(opts ...Option) *Inspector {
	in := &Inspector{
		executor: &Executor{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(in)
	}
	in.evaluator = NewEvaluator(in.revocation)
	return in
}

// Evaluator returns the evaluator used for the last stage, for callers that
// evaluate certificates they already hold.
func (in *Inspector) Evaluator() *Evaluator { return in.evaluator }

// Now returns the current time according to the inspector's clock.
func (in *Inspector) Now() time.Time { return in.now() }

// Inspect connects to domain, verifies its certificate chain and evaluates
// the leaf certificate.
//
// Any failure aborts the inspection and is returned as an [*Error]; a
// non-nil report is always complete.
func (in *Inspector) Inspect(ctx context.Context, domain string) (*Report, error) {
	session, err := in.executor.Handshake(ctx, domain)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	der, err := session.LeafDER()
	if err != nil {
		return nil, err
	}

	return in.evaluator.Evaluate(der, session.ServerName(), in.now())
}
