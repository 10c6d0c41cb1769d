// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package testutil

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"testing"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

var oidSubjectAltName = asn1.ObjectIdentifier{2, 5, 29, 17}

// RawSAN builds a Subject Alternative Name extension whose dNSName entries
// are written byte for byte, without any validity check.
func RawSAN(tb testing.TB, dnsNames ...[]byte) pkix.Extension {
	tb.Helper()

	b := cryptobyte.NewBuilder(nil)
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, name := range dnsNames {
			b.AddASN1(cryptobyte_asn1.Tag(2).ContextSpecific(), func(b *cryptobyte.Builder) {
				b.AddBytes(name)
			})
		}
	})
	value, err := b.Bytes()
	if err != nil {
		tb.Fatalf("build SAN: %v", err)
	}
	return pkix.Extension{Id: oidSubjectAltName, Value: value}
}

// UnreadableSAN returns a Subject Alternative Name extension holding names
// followed by one dNSName entry that is not an IA5String.
func UnreadableSAN(tb testing.TB, names ...string) pkix.Extension {
	tb.Helper()

	entries := make([][]byte, 0, len(names)+1)
	for _, name := range names {
		entries = append(entries, []byte(name))
	}
	entries = append(entries, []byte{0xff})
	return RawSAN(tb, entries...)
}
