// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import (
	"crypto/x509"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"

	x509certs "github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/certs"
)

// dNSName [2] IA5String, implicitly tagged
var tagDNSName = cryptobyte_asn1.Tag(2).ContextSpecific()

// sanDNSNames returns the dNSName entries of the Subject Alternative Name
// extension. The second result is false when the extension is absent.
func sanDNSNames(cert *x509.Certificate) ([]string, bool) {
	for _, ext := range cert.Extensions {
		if ext.Id.Equal(x509certs.OIDSubjectAltName) {
			return parseSANDNSNames(ext.Value), true
		}
	}
	return nil, false
}

// parseSANDNSNames walks a GeneralNames sequence and collects dNSName
// entries. It is best effort: entries that cannot be read are skipped and a
// broken sequence ends the walk with whatever was collected so far.
func parseSANDNSNames(der []byte) []string {
	input := cryptobyte.String(der)

	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) {
		return nil
	}

	var names []string
	for !seq.Empty() {
		var (
			value cryptobyte.String
			tag   cryptobyte_asn1.Tag
		)
		if !seq.ReadAnyASN1(&value, &tag) {
			break
		}
		if tag != tagDNSName {
			continue
		}
		if name := string(value); isIA5(name) {
			names = append(names, name)
		}
	}
	return names
}

func isIA5(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// matchDNSName reports whether host equals one of names.
//
// The comparison is exact except for ASCII case. Wildcard entries only match
// a host that is literally the same string; no label expansion happens.
func matchDNSName(names []string, host string) bool {
	for _, name := range names {
		if strings.EqualFold(name, host) {
			return true
		}
	}
	return false
}
