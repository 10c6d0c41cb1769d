// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var (
	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrEmptyInput indicates that no bytes were supplied.
	ErrEmptyInput = errors.New("x509certs: empty input")
)

// Decoder decodes [X.509] certificates supplied as PEM, DER or PKCS#7.
//
// [X.509]: https://grokipedia.com/page/X.509
type Decoder struct {
	certBlockType string
}

// New creates a new Decoder with default settings.
func New() *Decoder {
	return &Decoder{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (d *Decoder) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// Decode decodes a single certificate from data.
//
// PEM input must carry a CERTIFICATE block; its payload is then handled like
// raw input. Raw input is tried as DER first and as a PKCS#7 bundle second,
// in which case the first certificate of the bundle is returned.
func (d *Decoder) Decode(data []byte) (*x509.Certificate, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	if d.IsPEM(data) {
		block, _ := pem.Decode(data)
		if block.Type != d.certBlockType {
			return nil, ErrInvalidBlockType
		}
		data = block.Bytes
	}

	cert, err := ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	certs, err := parsePKCS7(data)
	if err != nil {
		return nil, err
	}
	return certs[0], nil
}

// DecodeMultiple decodes every certificate in data, in order: a PEM bundle,
// concatenated DER certificates or a PKCS#7 bundle.
func (d *Decoder) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	if !d.IsPEM(data) {
		if certs, ok := parseConcatenated(data); ok {
			return certs, nil
		}
		return parsePKCS7(data)
	}

	var certs []*x509.Certificate
	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != d.certBlockType {
			return nil, ErrInvalidBlockType
		}

		cert, err := ParseCertificate(block.Bytes)
		if err != nil {
			return nil, ErrParseCertificate
		}

		certs = append(certs, cert)
		data = rest
	}

	return certs, nil
}

// parseConcatenated splits data into DER certificates laid end to end.
func parseConcatenated(data []byte) ([]*x509.Certificate, bool) {
	input := cryptobyte.String(data)

	var certs []*x509.Certificate
	for !input.Empty() {
		var element cryptobyte.String
		if !input.ReadASN1Element(&element, cryptobyte_asn1.SEQUENCE) {
			return nil, false
		}
		cert, err := ParseCertificate(element)
		if err != nil {
			return nil, false
		}
		certs = append(certs, cert)
	}
	return certs, len(certs) > 0
}

// parsePKCS7 returns the certificates of a PKCS#7 bundle using Cloudflare's
// library.
func parsePKCS7(data []byte) ([]*x509.Certificate, error) {
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParseCertificate
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}
	return p.Content.SignedData.Certificates, nil
}
