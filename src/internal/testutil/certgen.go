// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package testutil generates certificates and TLS endpoints for tests.
package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// CertOptions describes a certificate to generate.
type CertOptions struct {
	CommonName   string
	Organization string
	DNSNames     []string
	IPAddresses  []net.IP
	NotBefore    time.Time
	NotAfter     time.Time
	IsCA         bool
	// ExtraExtensions are copied into the certificate verbatim and take
	// precedence over the extensions derived from the fields above.
	ExtraExtensions []pkix.Extension
}

// Issued is a generated certificate together with its key.
type Issued struct {
	Cert *x509.Certificate
	DER  []byte
	Key  *ecdsa.PrivateKey
}

// TLSCertificate returns the pair usable in a tls.Config.
func (i *Issued) TLSCertificate() tls.Certificate {
	return tls.Certificate{
		Certificate: [][]byte{i.DER},
		PrivateKey:  i.Key,
		Leaf:        i.Cert,
	}
}

// PEM returns the certificate as a PEM CERTIFICATE block.
func (i *Issued) PEM() []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: i.DER})
}

// Pool returns a cert pool holding only this certificate.
func (i *Issued) Pool() *x509.CertPool {
	pool := x509.NewCertPool()
	pool.AddCert(i.Cert)
	return pool
}

func (o CertOptions) withDefaults() CertOptions {
	if o.NotBefore.IsZero() {
		o.NotBefore = time.Now().Add(-time.Hour)
	}
	if o.NotAfter.IsZero() {
		o.NotAfter = time.Now().Add(24 * time.Hour)
	}
	return o
}

func (o CertOptions) template(tb testing.TB) *x509.Certificate {
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	if err != nil {
		tb.Fatalf("serial: %v", err)
	}

	subject := pkix.Name{CommonName: o.CommonName}
	if o.Organization != "" {
		subject.Organization = []string{o.Organization}
	}

	tmpl := &x509.Certificate{
		SerialNumber: serial,
		Subject:      subject,
		NotBefore:    o.NotBefore,
		NotAfter:     o.NotAfter,
		DNSNames:     o.DNSNames,
		IPAddresses:  o.IPAddresses,
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},

		ExtraExtensions: o.ExtraExtensions,
	}
	if o.IsCA {
		tmpl.IsCA = true
		tmpl.BasicConstraintsValid = true
		tmpl.KeyUsage |= x509.KeyUsageCertSign
		tmpl.ExtKeyUsage = nil
	}
	return tmpl
}

func newKey(tb testing.TB) *ecdsa.PrivateKey {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		tb.Fatalf("generate key: %v", err)
	}
	return key
}

func create(tb testing.TB, tmpl, parent *x509.Certificate, key *ecdsa.PrivateKey, signer *ecdsa.PrivateKey) *Issued {
	der, err := x509.CreateCertificate(rand.Reader, tmpl, parent, &key.PublicKey, signer)
	if err != nil {
		tb.Fatalf("create certificate: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		tb.Fatalf("parse certificate: %v", err)
	}
	return &Issued{Cert: cert, DER: der, Key: key}
}

// SelfSigned generates a certificate signed by its own key.
func SelfSigned(tb testing.TB, opts CertOptions) *Issued {
	tb.Helper()

	tmpl := opts.withDefaults().template(tb)
	key := newKey(tb)
	return create(tb, tmpl, tmpl, key, key)
}

// SelfSignedDER generates a self-signed certificate and returns only its DER
// encoding. It does not parse the result, so it can produce certificates
// the standard parser rejects.
func SelfSignedDER(tb testing.TB, opts CertOptions) []byte {
	tb.Helper()

	tmpl := opts.withDefaults().template(tb)
	key := newKey(tb)
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		tb.Fatalf("create certificate: %v", err)
	}
	return der
}

// Authority is a throwaway certificate authority.
type Authority struct {
	*Issued
}

// NewAuthority generates a self-signed CA certificate.
func NewAuthority(tb testing.TB, commonName string) *Authority {
	tb.Helper()

	return &Authority{Issued: SelfSigned(tb, CertOptions{
		CommonName:   commonName,
		Organization: "SSL Checker Test CA",
		NotBefore:    time.Now().Add(-48 * time.Hour),
		NotAfter:     time.Now().Add(365 * 24 * time.Hour),
		IsCA:         true,
	})}
}

// Issue generates a certificate signed by the authority.
func (a *Authority) Issue(tb testing.TB, opts CertOptions) *Issued {
	tb.Helper()

	tmpl := opts.withDefaults().template(tb)
	return create(tb, tmpl, a.Cert, newKey(tb), a.Key)
}

// NewTLSServer starts an HTTPS test server presenting leaf and returns it
// with the port it listens on.
func NewTLSServer(tb testing.TB, leaf *Issued) (*httptest.Server, int) {
	tb.Helper()

	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	srv.TLS = &tls.Config{Certificates: []tls.Certificate{leaf.TLSCertificate()}}
	srv.StartTLS()
	tb.Cleanup(srv.Close)

	return srv, srv.Listener.Addr().(*net.TCPAddr).Port
}

// ClosedPort returns a local TCP port with nothing listening on it.
func ClosedPort(tb testing.TB) int {
	tb.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("listen: %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()
	return port
}
