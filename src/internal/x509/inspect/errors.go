// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHostname indicates that the requested domain cannot be used as a TLS server name.
	ErrInvalidHostname = errors.New("inspect: invalid hostname")

	// ErrTransportConnect indicates that the TCP connection could not be established.
	ErrTransportConnect = errors.New("inspect: transport connect failed")

	// ErrTLSHandshake indicates a failed TLS handshake, including chain verification failures.
	ErrTLSHandshake = errors.New("inspect: TLS handshake failed")

	// ErrNoCertificates indicates that the peer completed the handshake without presenting a certificate.
	ErrNoCertificates = errors.New("inspect: no certificates presented")

	// ErrCertificateParse indicates that the leaf certificate could not be parsed.
	ErrCertificateParse = errors.New("inspect: failed to parse certificate")
)

// Kind classifies a pipeline failure by the stage that produced it.
type Kind int

const (
	// KindInvalidHostname is returned before any I/O happens.
	KindInvalidHostname Kind = iota + 1
	// KindTransportConnect covers unreachable, refused and timed out connections.
	KindTransportConnect
	// KindTLSHandshake covers protocol negotiation and certificate verification.
	KindTLSHandshake
	// KindNoCertificates is an empty peer chain.
	KindNoCertificates
	// KindCertificateParse is a malformed leaf encoding.
	KindCertificateParse
)

// String returns the name of the kind, suitable for metric labels.
func (k Kind) String() string {
	switch k {
	case KindInvalidHostname:
		return "InvalidHostname"
	case KindTransportConnect:
		return "TransportConnectFailed"
	case KindTLSHandshake:
		return "TlsHandshakeFailed"
	case KindNoCertificates:
		return "NoCertificatesPresented"
	case KindCertificateParse:
		return "CertificateParseError"
	default:
		return "Unknown"
	}
}

// Message returns the short human-readable message shown to users.
func (k Kind) Message() string {
	switch k {
	case KindInvalidHostname:
		return "Invalid hostname"
	case KindTransportConnect:
		return "TCP connect error"
	case KindTLSHandshake:
		return "TLS connect error"
	case KindNoCertificates:
		return "No certificate found"
	case KindCertificateParse:
		return "Failed to parse certificate"
	default:
		return "Certificate check failed"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidHostname:
		return ErrInvalidHostname
	case KindTransportConnect:
		return ErrTransportConnect
	case KindTLSHandshake:
		return ErrTLSHandshake
	case KindNoCertificates:
		return ErrNoCertificates
	case KindCertificateParse:
		return ErrCertificateParse
	default:
		return nil
	}
}

// Error is the error returned by every pipeline stage.
//
// It matches the sentinel of its kind with [errors.Is] and also unwraps to
// the underlying cause, so callers can test for both:
//
//	if errors.Is(err, inspect.ErrTLSHandshake) { ... }
//	var verr *tls.CertificateVerificationError
//	if errors.As(err, &verr) { ... }
type Error struct {
	Kind Kind
	Host string
	Err  error
}

func newError(kind Kind, host string, err error) *Error {
	return &Error{Kind: kind, Host: host, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%v (%s)", e.Kind.sentinel(), e.Host)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the kind sentinel and the cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// KindOf reports the kind of a pipeline error. The second result is false
// when err did not come out of the pipeline.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	for k := KindInvalidHostname; k <= KindCertificateParse; k++ {
		if errors.Is(err, k.sentinel()) {
			return k, true
		}
	}
	return 0, false
}

// Describe renders err the way it is shown to users: the kind message, and
// for network failures the cause as well.
func Describe(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		if k, ok := KindOf(err); ok {
			return k.Message()
		}
		return err.Error()
	}

	switch e.Kind {
	case KindTransportConnect, KindTLSHandshake:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Kind.Message(), e.Err)
		}
	}
	return e.Kind.Message()
}
