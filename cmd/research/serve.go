package main

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"

	// Packages
	httphandler "github.com/mutablelogic/go-research/pkg/httphandler"
	manager "github.com/mutablelogic/go-research/pkg/manager"
	version "github.com/mutablelogic/go-research/pkg/version"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
	openapihttphandler "github.com/mutablelogic/go-server/pkg/openapi/httphandler"
	prometheus "github.com/prometheus/client_golang/prometheus"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServeCommand struct {
	OpenAPI bool `name:"openapi" help:"Serve the OpenAPI specification at {prefix}/openapi.{json,yaml,html}" default:"true" negatable:""`

	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ServeCommand) Run(ctx *Globals) error {
	versionTag := version.Version()

	// Create the manager
	manager, err := ctx.Manager()
	if err != nil {
		return err
	}

	// Create the TLS config if TLS options are provided
	tlsConfig, err := cmd.tlsConfig()
	if err != nil {
		return err
	}

	// Create the server, which serves requests from its own mux
	httpserver, err := httpserver.New(ctx.HTTP.Addr, tlsConfig)
	if err != nil {
		return err
	}

	// Create the HTTP router on the mux of the server
	if _, err := cmd.router(ctx, httpserver.Router(), manager, prometheus.DefaultGatherer); err != nil {
		return err
	}

	// Run the server
	ctx.log.Info().Str("addr", ctx.HTTP.Addr).Str("version", versionTag).Msgf("%s started", ctx.execName)
	if err := httpserver.Run(ctx.ctx); err != nil {
		return err
	}

	// Return success
	ctx.log.Info().Msgf("%s stopped", ctx.execName)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// router creates the HTTP router on the mux and registers the handlers
func (cmd *ServeCommand) router(ctx *Globals, mux *http.ServeMux, manager *manager.Manager, gatherer prometheus.Gatherer) (*httprouter.Router, error) {
	router, err := httprouter.NewRouter(ctx.ctx, mux, ctx.HTTP.Prefix, ctx.HTTP.Origin, "Deep Research", version.Version())
	if err != nil {
		return nil, err
	} else if err := httphandler.RegisterHandlers(manager, router, gatherer); err != nil {
		return nil, err
	}
	if cmd.OpenAPI {
		if err := openapihttphandler.RegisterHandler(router); err != nil {
			return nil, err
		}
	}
	return router, nil
}

func (cmd *ServeCommand) tlsConfig() (*tls.Config, error) {
	if cmd.TLS.CertFile == "" && cmd.TLS.KeyFile == "" {
		return nil, nil
	}
	var pemData [][]byte
	if cmd.TLS.CertFile != "" {
		certData, err := os.ReadFile(cmd.TLS.CertFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read TLS certificate: %w", err)
		}
		pemData = append(pemData, certData)
	}
	if cmd.TLS.KeyFile != "" {
		keyData, err := os.ReadFile(cmd.TLS.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read TLS key: %w", err)
		}
		pemData = append(pemData, keyData)
	}
	tlsConfig, err := httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS config: %w", err)
	}
	return tlsConfig, nil
}
