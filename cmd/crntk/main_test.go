package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crntk/generate"
	"github.com/katalvlaran/crntk/internal/config"
	"github.com/katalvlaran/crntk/internal/logging"
	"github.com/katalvlaran/crntk/internal/metrics"
)

const michaelisMenten = "E + S <-> ES -> E + P\n"

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func networkFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "net.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestAnalyze_Text(t *testing.T) {
	out, _, err := execute(t, "", "analyze", "--color", "never", networkFile(t, michaelisMenten))
	require.NoError(t, err)
	assert.Contains(t, out, "deficiency: 0\n")
	assert.Contains(t, out, "conservation laws (2):\n  E + ES\n  ES + P + S\n")
}

func TestAnalyze_StdinJSON(t *testing.T) {
	out, _, err := execute(t, michaelisMenten, "analyze", "-o", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.EqualValues(t, 2, got["rank"])
	assert.Equal(t, false, got["weakly_reversible"])
}

func TestAnalyze_Errors(t *testing.T) {
	_, _, err := execute(t, "", "analyze", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "A + 2 -> B", "analyze")
	assert.ErrorContains(t, err, "line 1")

	_, _, err = execute(t, michaelisMenten, "analyze", "-o", "xml")
	assert.ErrorContains(t, err, "output.format")
}

func TestClaws(t *testing.T) {
	out, errOut, err := execute(t, "", "claws", "--color", "never", networkFile(t, michaelisMenten))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "conservation laws (2):\n  E + ES\n  ES + P + S\nddm: passes 2"), out)
	assert.Contains(t, errOut, "constraints pending")
}

func TestClaws_QuietYAML(t *testing.T) {
	out, errOut, err := execute(t, michaelisMenten, "claws", "-q", "-o", "yaml")
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Contains(t, out, "text: E + ES")
	assert.Contains(t, out, "passes: 2")
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "crntk.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: yaml\n  color: never\n"), 0o600))

	out, _, err := execute(t, michaelisMenten, "--config", cfgPath, "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "deficiency: 0")
	assert.Contains(t, out, "species:\n")

	// flags win over the file
	out, _, err = execute(t, michaelisMenten, "--config", cfgPath, "-o", "text", "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "species (4):")
}

func TestApp_ServiceBackends(t *testing.T) {
	for _, backend := range []string{config.CacheNone, config.CacheMemory, config.CacheRedis} {
		t.Run(backend, func(t *testing.T) {
			cfg := config.Default()
			cfg.Cache.Backend = backend
			cfg.Cache.Redis.Addr = "127.0.0.1:0"
			a := &app{cfg: cfg, log: logging.NewNop()}

			svc, ping := a.service(metrics.Nop())
			require.NotNil(t, svc)
			assert.Equal(t, backend == config.CacheRedis, ping != nil)
		})
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--log-level", "error", "serve", "--addr", "127.0.0.1:0"})
	cmd.SetOut(&bytes.Buffer{})

	errc := make(chan error, 1)
	go func() { errc <- cmd.ExecuteContext(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestGenerate(t *testing.T) {
	out, _, err := execute(t, "", "generate", "enzyme", "2", "--prefix", "S")
	require.NoError(t, err)
	assert.Equal(t, "S0 + S4 <-> S2\nS1 + S4 <-> S3\n", out)

	// generated text feeds straight back into analyze
	out, _, err = execute(t, out, "claws", "-q", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "conservation laws (3):")

	_, _, err = execute(t, "", "generate", "blob", "3")
	assert.ErrorContains(t, err, "unknown shape")
	_, _, err = execute(t, "", "generate", "chain", "1")
	assert.ErrorIs(t, err, generate.ErrTooFewSpecies)
}
