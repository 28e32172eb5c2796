package cli

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/product-pages/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderFragment(t *testing.T) {
	out, err := execute(t, "render", "42")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Details about Product 42</h1>\n", out)
}

func TestRenderEmptyID(t *testing.T) {
	out, err := execute(t, "render", "")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Details about Product </h1>\n", out)
}

func TestRenderWithLayoutUsesConfigTitle(t *testing.T) {
	t.Setenv("SITE_TITLE", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site_title: Shop\n"), 0o644))

	out, err := execute(t, "--config", path, "render", "<x>", "--layout")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Shop</title>")
	assert.Contains(t, out, "<h1>Details about Product &lt;x&gt;</h1>")
}

func TestRenderRequiresOneArg(t *testing.T) {
	_, err := execute(t, "render")
	require.Error(t, err)
}

func TestRenderBadConfig(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "render", "1")
	require.Error(t, err)
}

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestRunServeShutsDownOnCancel(t *testing.T) {
	cfg := config.Load()
	cfg.HTTPAddr = freeAddr(t)
	cfg.LogLevel = "error"
	cfg.ShutdownTimeout = 2 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, cfg) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddr + "/products/7")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
