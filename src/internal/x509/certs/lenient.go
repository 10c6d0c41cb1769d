// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// OIDSubjectAltName identifies the Subject Alternative Name extension.
var OIDSubjectAltName = asn1.ObjectIdentifier{2, 5, 29, 17}

// extensions [3] EXPLICIT Extensions
var tagExtensions = cryptobyte_asn1.Tag(3).Constructed().ContextSpecific()

// ParseCertificate parses a single DER certificate.
//
// The standard parser rejects a certificate outright when its Subject
// Alternative Name extension holds an entry it cannot read. In that case
// the certificate is parsed again without the extension, and the original
// extension bytes are put back into Extensions so callers can walk them
// themselves. Raw keeps the bytes that were supplied. Any other parse
// failure is returned unchanged.
func ParseCertificate(der []byte) (*x509.Certificate, error) {
	cert, err := x509.ParseCertificate(der)
	if err == nil {
		return cert, nil
	}

	stripped, san, ok := withoutSAN(der)
	if !ok {
		return nil, err
	}

	cert, rerr := x509.ParseCertificate(stripped)
	if rerr != nil {
		return nil, err
	}

	cert.Raw = der
	cert.Extensions = append(cert.Extensions, san)
	return cert, nil
}

// withoutSAN re-encodes a certificate with its Subject Alternative Name
// extension removed. The signature no longer covers the result; it is only
// ever used for parsing. ok is false when der has no such extension or its
// outer structure cannot be walked.
func withoutSAN(der []byte) (stripped []byte, san pkix.Extension, ok bool) {
	input := cryptobyte.String(der)

	var certificate cryptobyte.String
	if !input.ReadASN1(&certificate, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, san, false
	}

	var tbs cryptobyte.String
	if !certificate.ReadASN1(&tbs, cryptobyte_asn1.SEQUENCE) {
		return nil, san, false
	}
	// signatureAlgorithm and signatureValue are copied through untouched
	trailer := []byte(certificate)

	var (
		fields [][]byte
		kept   [][]byte
		found  bool
	)
	for !tbs.Empty() {
		var (
			field cryptobyte.String
			tag   cryptobyte_asn1.Tag
		)
		if !tbs.ReadAnyASN1Element(&field, &tag) {
			return nil, san, false
		}
		if tag != tagExtensions {
			fields = append(fields, field)
			continue
		}

		var explicit, exts cryptobyte.String
		if !field.ReadASN1(&explicit, tagExtensions) || !explicit.ReadASN1(&exts, cryptobyte_asn1.SEQUENCE) {
			return nil, san, false
		}
		for !exts.Empty() {
			var ext cryptobyte.String
			if !exts.ReadASN1Element(&ext, cryptobyte_asn1.SEQUENCE) {
				return nil, san, false
			}
			if found || !readSAN(ext, &san) {
				kept = append(kept, ext)
				continue
			}
			found = true
		}
	}
	if !found {
		return nil, san, false
	}

	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
			for _, field := range fields {
				b.AddBytes(field)
			}
			if len(kept) == 0 {
				return
			}
			b.AddASN1(tagExtensions, func(b *cryptobyte.Builder) {
				b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
					for _, ext := range kept {
						b.AddBytes(ext)
					}
				})
			})
		})
		b.AddBytes(trailer)
	})

	stripped, err := b.Bytes()
	if err != nil {
		return nil, san, false
	}
	return stripped, san, true
}

// readSAN decodes ext into san when it is the Subject Alternative Name
// extension.
func readSAN(ext cryptobyte.String, san *pkix.Extension) bool {
	var (
		body  cryptobyte.String
		oid   asn1.ObjectIdentifier
		value cryptobyte.String
	)
	if !ext.ReadASN1(&body, cryptobyte_asn1.SEQUENCE) || !body.ReadASN1ObjectIdentifier(&oid) {
		return false
	}
	if !oid.Equal(OIDSubjectAltName) {
		return false
	}

	critical := false
	if body.PeekASN1Tag(cryptobyte_asn1.BOOLEAN) && !body.ReadASN1Boolean(&critical) {
		return false
	}
	if !body.ReadASN1(&value, cryptobyte_asn1.OCTET_STRING) {
		return false
	}

	*san = pkix.Extension{Id: oid, Critical: critical, Value: []byte(value)}
	return true
}
