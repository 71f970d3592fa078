package httpprobe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/plugreg/modules/probe"
	"github.com/vk/plugreg/registry"
)

func TestProbe_RegistersItself(t *testing.T) {
	t.Parallel()

	var found bool
	for _, p := range registry.All[probe.Probe]() {
		if registry.ImplName(p) == "http" {
			found = true
		}
	}
	require.True(t, found, "the http probe must be registered during package init")
}

func TestProbe_Check_OK(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := &Probe{cfg: Config{URL: srv.URL, Timeout: "2s"}}
	res, err := p.Check(context.Background())
	require.NoError(t, err)
	assert.Contains(t, res.Summary, "200")
	assert.Equal(t, "200 OK", res.Details["status"])
}

func TestProbe_Check_ErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := &Probe{cfg: Config{URL: srv.URL, Timeout: "2s"}}
	_, err := p.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestProbe_Check_BadTimeoutFallsBack(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	// An unparseable timeout must not fail the probe.
	p := &Probe{cfg: Config{URL: srv.URL, Timeout: "not-a-duration"}}
	_, err := p.Check(context.Background())
	require.NoError(t, err)
}
