// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package truststore provides the set of root authorities used to verify
// remote peers. The roots come from the [Mozilla CA bundle] compiled into the
// binary, so building the set does no network or disk I/O and gives the same
// answer on every host regardless of its system trust store.
//
// [Mozilla CA bundle]: https://github.com/certifi/gocertifi
package truststore
