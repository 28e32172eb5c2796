package integration

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/product-pages/internal/config"
	httpapi "github.com/fairyhunter13/product-pages/internal/http"
	"github.com/fairyhunter13/product-pages/internal/obs"
)

// baseURL targets BASE_URL when set (a deployed instance), otherwise an
// in-process server.
func baseURL(t testing.TB) string {
	t.Helper()
	if v := os.Getenv("BASE_URL"); v != "" {
		return strings.TrimSuffix(v, "/")
	}
	obs.InitLoggerTo(io.Discard, "error")
	app := httpapi.NewApp(config.Load())
	srv := httptest.NewServer(httpapi.NewRouter(app))
	t.Cleanup(srv.Close)
	return srv.URL
}

func fetch(t testing.TB, u string) (int, http.Header, string) {
	t.Helper()
	resp, err := http.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, string(b)
}

func TestIntegration_ProductDetailPage(t *testing.T) {
	u := baseURL(t)
	code, hdr, body := fetch(t, u+"/products/42")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, strings.HasPrefix(hdr.Get("Content-Type"), "text/html"))
	assert.Contains(t, body, "<h1>Details about Product 42</h1>")
	assert.NotEmpty(t, hdr.Get("X-Request-Id"))
}

func TestIntegration_IdentifiersEchoedVerbatim(t *testing.T) {
	u := baseURL(t)
	cases := map[string]string{
		"sku-001":  "Details about Product sku-001",
		"<b>bold":  "Details about Product &lt;b&gt;bold",
		"café":     "Details about Product café",
		"100%":     "Details about Product 100%",
		"a&b":      "Details about Product a&amp;b",
		"O'Reilly": "Details about Product O&#39;Reilly",
	}
	for id, want := range cases {
		t.Run(id, func(t *testing.T) {
			code, _, body := fetch(t, u+"/products/"+url.PathEscape(id)+"?partial=1")
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, "<h1>"+want+"</h1>", body)
		})
	}
}

func TestIntegration_UnknownRoute(t *testing.T) {
	u := baseURL(t)
	code, _, body := fetch(t, u+"/catalog")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body, "could not be found")
}

func TestIntegration_OpenAPIAndVarsEndpoints(t *testing.T) {
	u := baseURL(t)
	for _, p := range []string{"/openapi.yaml", "/docs", "/debug/vars", "/debug/metrics", "/healthz"} {
		code, _, _ := fetch(t, u+p)
		assert.Equal(t, http.StatusOK, code, p)
	}
}

func TestIntegration_ConcurrentRequestsIndependent(t *testing.T) {
	u := baseURL(t)
	const n = 64
	var wg sync.WaitGroup
	errs := make(chan string, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := strings.Repeat("z", i+1)
			resp, err := http.Get(u + "/products/" + id + "?partial=1")
			if err != nil {
				errs <- err.Error()
				return
			}
			defer resp.Body.Close()
			b, _ := io.ReadAll(resp.Body)
			if !bytes.Equal(b, []byte("<h1>Details about Product "+id+"</h1>")) {
				errs <- "unexpected body: " + string(b)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func BenchmarkProductPage(b *testing.B) {
	u := baseURL(b)
	client := &http.Client{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resp, err := client.Get(u + "/products/bench")
		if err != nil {
			b.Fatal(err)
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
