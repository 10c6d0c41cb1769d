// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import "crypto/x509"

// RevocationNotImplemented is the status reported while no live revocation
// checking exists.
const RevocationNotImplemented = "Not implemented"

// RevocationChecker reports the revocation status of a certificate.
type RevocationChecker interface {
	Status(cert *x509.Certificate) string
}

// Placeholder is the RevocationChecker used by default. It never touches the
// network and always answers [RevocationNotImplemented].
type Placeholder struct{}

// Status implements RevocationChecker.
func (Placeholder) Status(*x509.Certificate) string { return RevocationNotImplemented }
