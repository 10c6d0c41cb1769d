// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs decodes [X.509] certificates from the formats people
// usually have on disk: [PEM], DER and [PKCS7] bundles. The checker uses it
// for offline inspection of certificate files, and [ParseCertificate] for
// every certificate it evaluates, including the one a TLS peer presents.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
