package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	opts := Opts{Config: "non-existent-config.yml"}

	err := run(ctx, opts, "people")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	tmpFile, err := os.CreateTemp(t.TempDir(), "invalid-config-*.yml")
	require.NoError(t, err)

	_, err = tmpFile.WriteString("invalid: yaml: content: [")
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err = run(ctx, Opts{Config: tmpFile.Name()}, "people")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Setenv("DB_PATH", t.TempDir())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "testdata/test_config.yml"}, "bogus")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown command "bogus"`)
}

func TestRun_PeopleMissingEntitiesFile(t *testing.T) {
	t.Setenv("DB_PATH", t.TempDir())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := Opts{Config: "testdata/test_config.yml", File: "no-such-people.md", Format: "json"}
	err := run(ctx, opts, "people")
	require.Error(t, err)
	require.Contains(t, err.Error(), "entities file")
}

func TestRun_ServerStartStop(t *testing.T) {
	t.Setenv("DB_PATH", t.TempDir())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- run(ctx, Opts{Config: "testdata/test_config.yml"}, "server")
	}()

	// wait for server to start
	time.Sleep(500 * time.Millisecond)

	resp, err := http.Get("http://127.0.0.1:18766/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-serverErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Error("server shutdown timeout")
	}
}

func TestSetupLog(t *testing.T) {
	t.Run("default mode", func(t *testing.T) {
		setupLog(false)
	})
	t.Run("debug mode with secret", func(t *testing.T) {
		setupLog(true, "super-secret")
	})
}
