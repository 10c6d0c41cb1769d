// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package truststore

import (
	"crypto/x509"
	"fmt"
	"sync"

	"github.com/certifi/gocertifi"
)

// load parses the compiled-in bundle. It runs at most once per process.
var load = sync.OnceValue(func() *x509.CertPool {
	pool, err := gocertifi.CACerts()
	if err != nil {
		// the bundle is compiled into the binary; failing here is a build defect
		panic(fmt.Sprintf("truststore: failed to load compiled-in roots: %v", err))
	}
	return pool
})

// Roots returns the process-wide pool of trusted root authorities built from
// the compiled-in Mozilla bundle. The first call builds the pool; every later
// call returns the same value.
//
// The returned pool must be treated as read-only. It is safe to share between
// goroutines as long as nobody calls AddCert on it.
//
// Thread Safety: Safe for concurrent use.
func Roots() *x509.CertPool { return load() }
