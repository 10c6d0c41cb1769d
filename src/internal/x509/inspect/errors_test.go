// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect_test

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/inspect"
)

func TestError(t *testing.T) {
	cause := syscall.ECONNREFUSED

	tests := []struct {
		name     string
		err      *inspect.Error
		sentinel error
		message  string
		describe string
	}{
		{
			name:     "InvalidHostname",
			err:      &inspect.Error{Kind: inspect.KindInvalidHostname, Host: "bad host", Err: errors.New("whitespace")},
			sentinel: inspect.ErrInvalidHostname,
			message:  "Invalid hostname",
			describe: "Invalid hostname",
		},
		{
			name:     "TransportConnect",
			err:      &inspect.Error{Kind: inspect.KindTransportConnect, Host: "example.com", Err: cause},
			sentinel: inspect.ErrTransportConnect,
			message:  "TCP connect error",
			describe: "TCP connect error: " + cause.Error(),
		},
		{
			name:     "TLSHandshake",
			err:      &inspect.Error{Kind: inspect.KindTLSHandshake, Host: "example.com", Err: errors.New("bad certificate")},
			sentinel: inspect.ErrTLSHandshake,
			message:  "TLS connect error",
			describe: "TLS connect error: bad certificate",
		},
		{
			name:     "NoCertificates",
			err:      &inspect.Error{Kind: inspect.KindNoCertificates, Host: "example.com"},
			sentinel: inspect.ErrNoCertificates,
			message:  "No certificate found",
			describe: "No certificate found",
		},
		{
			name:     "CertificateParse",
			err:      &inspect.Error{Kind: inspect.KindCertificateParse, Host: "example.com", Err: errors.New("asn1: truncated")},
			sentinel: inspect.ErrCertificateParse,
			message:  "Failed to parse certificate",
			describe: "Failed to parse certificate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("check failed: %w", tt.err)

			assert.ErrorIs(t, wrapped, tt.sentinel)
			if tt.err.Err != nil {
				assert.ErrorIs(t, wrapped, tt.err.Err)
			}

			kind, ok := inspect.KindOf(wrapped)
			assert.True(t, ok)
			assert.Equal(t, tt.err.Kind, kind)
			assert.Equal(t, tt.message, kind.Message())
			assert.Equal(t, tt.describe, inspect.Describe(wrapped))
			assert.Contains(t, tt.err.Error(), tt.err.Host)
		})
	}
}

func TestError_KindsAreDistinct(t *testing.T) {
	sentinels := []error{
		inspect.ErrInvalidHostname,
		inspect.ErrTransportConnect,
		inspect.ErrTLSHandshake,
		inspect.ErrNoCertificates,
		inspect.ErrCertificateParse,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}

	err := &inspect.Error{Kind: inspect.KindTLSHandshake}
	assert.NotErrorIs(t, err, inspect.ErrTransportConnect)
}

func TestKindOf_Foreign(t *testing.T) {
	_, ok := inspect.KindOf(errors.New("something else"))
	assert.False(t, ok)

	kind, ok := inspect.KindOf(fmt.Errorf("wrapped: %w", inspect.ErrNoCertificates))
	assert.True(t, ok)
	assert.Equal(t, inspect.KindNoCertificates, kind)

	assert.Equal(t, "something else", inspect.Describe(errors.New("something else")))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "InvalidHostname", inspect.KindInvalidHostname.String())
	assert.Equal(t, "TransportConnectFailed", inspect.KindTransportConnect.String())
	assert.Equal(t, "TlsHandshakeFailed", inspect.KindTLSHandshake.String())
	assert.Equal(t, "NoCertificatesPresented", inspect.KindNoCertificates.String())
	assert.Equal(t, "CertificateParseError", inspect.KindCertificateParse.String())
	assert.Equal(t, "Unknown", inspect.Kind(0).String())
}
