// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/ssl-checker/src/internal/testutil"
	x509certs "github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/certs"
)

const (
	invalidPEM = `
-----BEGIN INVALID-----
MIIEmTCCBD+gAwIBAgIRANFjRCmF+Y2bUYHbhxwkEpowCgYIKoZIzj0EAwIwgY8x
-----END INVALID-----
`

	invalidCERT = `
-----BEGIN CERTIFICATE-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAz6e5VV5F8rF2sFJ0Q4vA
-----END CERTIFICATE-----
`
)

func TestDecode(t *testing.T) {
	issued := testutil.SelfSigned(t, testutil.CertOptions{
		CommonName: "decode.test",
		DNSNames:   []string{"decode.test"},
	})
	decoder := x509certs.New()
	pemData := issued.PEM()

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "PEM", input: pemData},
		{name: "DER", input: issued.DER},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cert, err := decoder.Decode(tt.input)
			require.NoError(t, err, "Decode() error")
			assert.True(t, cert.Equal(issued.Cert), "decoded certificate does not match original")
			assert.Equal(t, "decode.test", cert.Subject.CommonName)
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected error
	}{
		{
			name:     "Invalid PEM Block",
			input:    []byte(invalidPEM),
			expected: x509certs.ErrInvalidBlockType,
		},
		{
			name:     "Invalid Certificate",
			input:    []byte(invalidCERT),
			expected: x509certs.ErrParseCertificate,
		},
		{
			name:     "Garbage DER",
			input:    []byte("not a certificate"),
			expected: x509certs.ErrParseCertificate,
		},
		{
			name:     "Empty",
			input:    nil,
			expected: x509certs.ErrEmptyInput,
		},
	}

	decoder := x509certs.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decoder.Decode(tt.input)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestIsPEM(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected bool
	}{
		{name: "Valid PEM", input: []byte(invalidCERT), expected: true},
		{name: "Not PEM", input: []byte("not a pem block"), expected: false},
		{name: "Empty Input", input: []byte(""), expected: false},
		{name: "DER bytes", input: []byte{0x30, 0x82, 0x01, 0x23}, expected: false},
	}

	decoder := x509certs.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decoder.IsPEM(tt.input))
		})
	}
}

func TestDecodeMultiple(t *testing.T) {
	ca := testutil.NewAuthority(t, "Multi CA")
	leaf := ca.Issue(t, testutil.CertOptions{CommonName: "multi.test", DNSNames: []string{"multi.test"}})

	decoder := x509certs.New()
	bundle := append(leaf.PEM(), ca.PEM()...)

	tests := []struct {
		name        string
		input       []byte
		expectCount int
		expectError error
	}{
		{name: "PEM bundle", input: bundle, expectCount: 2},
		{name: "Concatenated DER", input: append(append([]byte(nil), leaf.DER...), ca.DER...), expectCount: 2},
		{name: "Invalid PEM Type", input: []byte(invalidPEM), expectError: x509certs.ErrInvalidBlockType},
		{name: "Invalid Certificate Data", input: []byte(invalidCERT), expectError: x509certs.ErrParseCertificate},
		{name: "Garbage DER", input: []byte("not a certificate"), expectError: x509certs.ErrParseCertificate},
		{name: "Empty", input: nil, expectError: x509certs.ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			certs, err := decoder.DecodeMultiple(tt.input)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Len(t, certs, tt.expectCount)
			assert.True(t, certs[0].Equal(leaf.Cert), "leaf must come first")
		})
	}
}

func TestParseCertificate_UnreadableSAN(t *testing.T) {
	san := testutil.UnreadableSAN(t, "example.com")
	der := testutil.SelfSignedDER(t, testutil.CertOptions{
		CommonName:      "example.com",
		Organization:    "Lenient Parse",
		ExtraExtensions: []pkix.Extension{san},
	})

	_, strictErr := x509.ParseCertificate(der)
	require.Error(t, strictErr, "the standard parser must reject this certificate")

	cert, err := x509certs.ParseCertificate(der)
	require.NoError(t, err)

	assert.Equal(t, der, cert.Raw)
	assert.Equal(t, "example.com", cert.Subject.CommonName)
	assert.Equal(t, []string{"Lenient Parse"}, cert.Subject.Organization)
	assert.Empty(t, cert.DNSNames)

	var found *pkix.Extension
	for i := range cert.Extensions {
		if cert.Extensions[i].Id.Equal(x509certs.OIDSubjectAltName) {
			found = &cert.Extensions[i]
		}
	}
	require.NotNil(t, found, "the original SAN extension must be kept")
	assert.Equal(t, san.Value, found.Value)

	// extensions other than the SAN survive the re-parse
	assert.NotZero(t, cert.KeyUsage&x509.KeyUsageDigitalSignature)
	assert.Contains(t, cert.ExtKeyUsage, x509.ExtKeyUsageServerAuth)
}

func TestParseCertificate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{name: "Garbage", input: []byte("not a certificate")},
		{name: "Empty", input: nil},
		{name: "Trailing Data", input: append(testutil.SelfSignedDER(t, testutil.CertOptions{CommonName: "t.test"}), 0x00)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := x509certs.ParseCertificate(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestDecode_UnreadableSAN(t *testing.T) {
	der := testutil.SelfSignedDER(t, testutil.CertOptions{
		CommonName:      "example.com",
		ExtraExtensions: []pkix.Extension{testutil.UnreadableSAN(t, "example.com")},
	})
	pemData := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	decoder := x509certs.New()

	cert, err := decoder.Decode(pemData)
	require.NoError(t, err)
	assert.Equal(t, der, cert.Raw)

	certs, err := decoder.DecodeMultiple(pemData)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, der, certs[0].Raw)
}
