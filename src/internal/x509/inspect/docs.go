// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package inspect implements the certificate inspection pipeline.
//
// A single inspection runs four stages in order:
//   - the trust store supplies the roots the peer is verified against,
//   - the Executor resolves the hostname to a TLS server name, connects to
//     port 443 and performs the handshake, each step under its own timeout,
//   - the Session hands out the DER bytes of the leaf certificate,
//   - the Evaluator parses those bytes and produces a [Report].
//
// Every stage failure ends the inspection with an [*Error] whose Kind tells
// the caller which stage failed. There are no retries and no partial reports.
package inspect
