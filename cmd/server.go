package main

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/larkbridge-io/options-api/internal/cert"
	"github.com/larkbridge-io/options-api/internal/config"
)

// serviceName is baked into generated self-signed certificates.
const serviceName = "lark-options-api"

func newServer(cfg *config.Config, handler http.Handler) (*http.Server, error) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	if cfg.TLS.Enabled() {
		tlsConfig, err := buildTLSConfig(cfg)
		if err != nil {
			return nil, err
		}
		srv.TLSConfig = tlsConfig
	}

	return srv, nil
}

func buildTLSConfig(cfg *config.Config) (*tls.Config, error) {
	var tlsCert tls.Certificate
	var err error

	if cfg.TLS.HasCerts() {
		tlsCert, err = tls.LoadX509KeyPair(cfg.TLS.Cert, cfg.TLS.Key)
		if err != nil {
			return nil, fmt.Errorf("loading TLS certificate: %w", err)
		}
	} else if cfg.TLS.SelfSigned {
		tlsCert, err = cert.Generate(serviceName)
		if err != nil {
			return nil, fmt.Errorf("generating self-signed certificate: %w", err)
		}
	}

	//nolint:gosec // G402: MinVersion is configurable via --tls-min-version flag (default: TLS 1.2)
	return &tls.Config{
		Certificates: []tls.Certificate{tlsCert},
		MinVersion:   cfg.TLS.MinVersion.Value(),
	}, nil
}

func listenAndServe(srv *http.Server) error {
	if srv.TLSConfig != nil {
		return srv.ListenAndServeTLS("", "")
	}
	return srv.ListenAndServe()
}
