package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	// Packages
	manager "github.com/mutablelogic/go-research/pkg/manager"
	session "github.com/mutablelogic/go-research/pkg/session"
	prometheus "github.com/prometheus/client_golang/prometheus"
	zerolog "github.com/rs/zerolog"
	assert "github.com/stretchr/testify/assert"
)

func Test_serve_001(t *testing.T) {
	// The router is created on a mux, which then serves the handlers and
	// the OpenAPI specification
	assert := assert.New(t)
	t.Setenv(session.CredentialEnv, "")
	g := Globals{
		Config: filepath.Join(t.TempDir(), "missing.yaml"),
		ctx:    context.Background(),
		log:    zerolog.Nop(),
	}
	g.HTTP.Prefix = "/"
	m, err := g.Manager(manager.WithRegisterer(prometheus.NewRegistry()))
	if !assert.NoError(err) {
		t.FailNow()
	}

	mux := http.NewServeMux()
	cmd := ServeCommand{OpenAPI: true}
	router, err := cmd.router(&g, mux, m, prometheus.NewRegistry())
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.NotNil(router.Spec())

	server := httptest.NewServer(mux)
	defer server.Close()

	get := func(path string) (int, string) {
		resp, err := http.Get(server.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(body)
	}

	code, body := get("/model")
	assert.Equal(http.StatusOK, code)
	assert.Contains(body, "deep-research")

	code, body = get("/openapi.json")
	assert.Equal(http.StatusOK, code)
	assert.Contains(body, `"/research"`)

	code, _ = get("/metrics")
	assert.Equal(http.StatusOK, code)

	code, _ = get("/missing")
	assert.Equal(http.StatusNotFound, code)
}
