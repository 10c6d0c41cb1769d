// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import (
	"crypto/x509"
	"time"

	x509certs "github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/certs"
)

// Evaluator turns a leaf certificate into a [Report].
//
// Evaluation is a pure function of the certificate, the hostname and the
// supplied time; two evaluations with equal inputs give equal reports.
type Evaluator struct {
	revocation RevocationChecker
	decoder    *x509certs.Decoder
}

// NewEvaluator returns an Evaluator that asks rc for the revocation status.
// A nil rc selects [Placeholder].
func NewEvaluator(rc RevocationChecker) *Evaluator {
	if rc == nil {
		rc = Placeholder{}
	}
	return &Evaluator{
		revocation: rc,
		decoder:    x509certs.New(),
	}
}

// Evaluate parses the DER encoding of a leaf certificate and evaluates it.
// A malformed encoding is a KindCertificateParse error and no report. An
// unreadable Subject Alternative Name entry is not: it only affects
// ValidForDomain.
func (e *Evaluator) Evaluate(der []byte, hostname string, now time.Time) (*Report, error) {
	cert, err := x509certs.ParseCertificate(der)
	if err != nil {
		return nil, newError(KindCertificateParse, hostname, err)
	}
	return e.EvaluateCertificate(cert, hostname, now), nil
}

// EvaluateEncoded evaluates the first certificate found in data, which may be
// PEM, DER or a PKCS#7 bundle.
func (e *Evaluator) EvaluateEncoded(data []byte, hostname string, now time.Time) (*Report, error) {
	cert, err := e.decoder.Decode(data)
	if err != nil {
		return nil, newError(KindCertificateParse, hostname, err)
	}
	return e.EvaluateCertificate(cert, hostname, now), nil
}

// EvaluateBundle evaluates every certificate found in data, in the order
// they appear. data may be a PEM bundle, concatenated DER or PKCS#7.
func (e *Evaluator) EvaluateBundle(data []byte, hostname string, now time.Time) ([]*Report, error) {
	certs, err := e.decoder.DecodeMultiple(data)
	if err != nil {
		return nil, newError(KindCertificateParse, hostname, err)
	}
	if len(certs) == 0 {
		return nil, newError(KindCertificateParse, hostname, x509certs.ErrParseCertificate)
	}

	reports := make([]*Report, 0, len(certs))
	for _, cert := range certs {
		reports = append(reports, e.EvaluateCertificate(cert, hostname, now))
	}
	return reports, nil
}

// EvaluateCertificate evaluates an already parsed certificate.
//
// Missing or unreadable extensions never fail the evaluation; the fields
// derived from them fall back to false.
func (e *Evaluator) EvaluateCertificate(cert *x509.Certificate, hostname string, now time.Time) *Report {
	if name, err := ServerName(hostname); err == nil {
		hostname = name
	}

	issuer := cert.Issuer.String()
	subject := cert.Subject.String()

	report := &Report{
		ExpirationDate:   InvalidDate,
		Issuer:           issuer,
		Subject:          subject,
		CAValid:          cert.BasicConstraintsValid && cert.IsCA,
		SelfSigned:       issuer == subject,
		RevocationStatus: e.revocation.Status(cert),
	}

	if notBefore, notAfter, ok := validityWindow(cert); ok {
		report.ExpirationDate = notAfter.UTC().Format(time.RFC3339)
		report.ValidityStatus = !now.Before(notBefore) && !now.After(notAfter)
	}

	if names, ok := sanDNSNames(cert); ok {
		report.ValidForDomain = matchDNSName(names, hostname)
	}

	return report
}

// validityWindow returns the validity bounds of cert, or false when they
// cannot be trusted as timestamps: unset, outside the years X.509 can
// express, or with not-after before not-before.
func validityWindow(cert *x509.Certificate) (notBefore, notAfter time.Time, ok bool) {
	notBefore, notAfter = cert.NotBefore, cert.NotAfter

	switch {
	case notBefore.IsZero(), notAfter.IsZero():
		return notBefore, notAfter, false
	case notBefore.Year() < 1, notAfter.Year() > 9999:
		return notBefore, notAfter, false
	case notAfter.Before(notBefore):
		return notBefore, notAfter, false
	}

	return notBefore, notAfter, true
}
