// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inspect

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/H0llyW00dzZ/ssl-checker/src/internal/x509/truststore"
)

const (
	// DefaultPort is the standard HTTPS port.
	DefaultPort = 443
	// DefaultConnectTimeout bounds the TCP connect.
	DefaultConnectTimeout = 5 * time.Second
	// DefaultHandshakeTimeout bounds the TLS handshake.
	DefaultHandshakeTimeout = 10 * time.Second
)

// Executor opens a TLS session to a remote host.
//
// The zero value verifies against [truststore.Roots] on port 443 with the
// default timeouts.
type Executor struct {
	Roots            *x509.CertPool // Trust anchors; nil means the compiled-in bundle
	Port             int            // Remote port; 0 means 443
	ConnectTimeout   time.Duration  // Upper bound for the TCP connect
	HandshakeTimeout time.Duration  // Upper bound for the TLS handshake
}

func (x *Executor) roots() *x509.CertPool {
	if x.Roots != nil {
		return x.Roots
	}
	return truststore.Roots()
}

func (x *Executor) port() int {
	if x.Port > 0 {
		return x.Port
	}
	return DefaultPort
}

func (x *Executor) connectTimeout() time.Duration {
	if x.ConnectTimeout > 0 {
		return x.ConnectTimeout
	}
	return DefaultConnectTimeout
}

func (x *Executor) handshakeTimeout() time.Duration {
	if x.HandshakeTimeout > 0 {
		return x.HandshakeTimeout
	}
	return DefaultHandshakeTimeout
}

// Handshake connects to hostname and completes a verified TLS handshake.
//
// Exactly one connection attempt is made. The hostname is validated before
// any I/O; the TCP connect and the handshake each run under their own
// timeout and under ctx. The returned Session owns the connection and must
// be closed by the caller.
//
// Errors are [*Error] values of kind KindInvalidHostname,
// KindTransportConnect or KindTLSHandshake.
func (x *Executor) Handshake(ctx context.Context, hostname string) (*Session, error) {
	serverName, err := ServerName(hostname)
	if err != nil {
		return nil, newError(KindInvalidHostname, hostname, err)
	}

	addr := net.JoinHostPort(serverName, strconv.Itoa(x.port()))

	dialer := &net.Dialer{Timeout: x.connectTimeout()}
	raw, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, newError(KindTransportConnect, serverName, err)
	}

	conn := tls.Client(raw, &tls.Config{
		RootCAs:    x.roots(),
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	})

	hctx, cancel := context.WithTimeout(ctx, x.handshakeTimeout())
	defer cancel()

	if err := conn.HandshakeContext(hctx); err != nil {
		_ = raw.Close()
		return nil, newError(KindTLSHandshake, serverName, err)
	}

	return &Session{
		serverName: serverName,
		state:      conn.ConnectionState(),
		closer:     conn,
	}, nil
}

// Session is a completed TLS handshake. It belongs to one inspection.
type Session struct {
	serverName string
	state      tls.ConnectionState
	closer     io.Closer
}

// ServerName returns the name the handshake was verified against.
func (s *Session) ServerName() string { return s.serverName }

// LeafDER returns the raw encoding of the leaf certificate.
func (s *Session) LeafDER() ([]byte, error) {
	peers := s.state.PeerCertificates
	if len(peers) == 0 {
		return nil, newError(KindNoCertificates, s.serverName, nil)
	}
	return peers[0].Raw, nil
}

// Close closes the underlying connection.
func (s *Session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
