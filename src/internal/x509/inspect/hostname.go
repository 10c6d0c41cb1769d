// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"golang.org/x/net/idna"
)

const (
	maxHostnameLength = 253
	maxLabelLength    = 63
)

var (
	errEmptyHostname   = errors.New("hostname is empty")
	errHostnameSyntax  = errors.New("hostname must not contain a scheme, port, path or whitespace")
	errHostnameTooLong = errors.New("hostname is longer than 253 characters")
)

// ServerName converts a caller-supplied domain into the name sent in the TLS
// SNI extension and verified against the peer certificate.
//
// IP literals are returned in canonical form. Domain names go through IDNA
// lookup processing, so the result is lowercase ASCII with internationalized
// labels in punycode; one trailing dot is dropped. Anything else, including a
// scheme, a port or a path, is rejected.
func ServerName(domain string) (string, error) {
	if domain == "" {
		return "", errEmptyHostname
	}

	if ip := net.ParseIP(domain); ip != nil {
		return ip.String(), nil
	}

	if strings.ContainsAny(domain, "/:@?#[]\\ \t\r\n") {
		return "", errHostnameSyntax
	}

	host := strings.TrimSuffix(domain, ".")
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("hostname %q: %w", domain, err)
	}

	if len(ascii) > maxHostnameLength {
		return "", errHostnameTooLong
	}
	for _, label := range strings.Split(ascii, ".") {
		if label == "" || len(label) > maxLabelLength {
			return "", fmt.Errorf("hostname %q: label length must be between 1 and %d", domain, maxLabelLength)
		}
	}

	return ascii, nil
}
