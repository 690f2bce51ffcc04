package util

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func proxyFor(t *testing.T, fn func(*http.Request) (*url.URL, error), rawURL string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, rawURL, nil)
	u, err := fn(req)
	if err != nil {
		t.Fatalf("proxy func: %v", err)
	}
	if u == nil {
		return ""
	}
	return u.String()
}

func TestNewProxyFunc_SchemeSelection(t *testing.T) {
	fn := NewProxyFunc("http://proxy.internal:3128", "http://sproxy.internal:3129", "")

	if got := proxyFor(t, fn, "http://example.org/page"); got != "http://proxy.internal:3128" {
		t.Errorf("http proxy = %q", got)
	}
	if got := proxyFor(t, fn, "https://example.org/page"); got != "http://sproxy.internal:3129" {
		t.Errorf("https proxy = %q", got)
	}
}

func TestNewProxyFunc_NoProxyBypassesHostAndSubdomains(t *testing.T) {
	fn := NewProxyFunc("http://proxy.internal:3128", "", "example.org, other.test")

	if got := proxyFor(t, fn, "http://example.org/page"); got != "" {
		t.Errorf("bypassed host got proxy %q", got)
	}
	if got := proxyFor(t, fn, "http://api.example.org/page"); got != "" {
		t.Errorf("bypassed subdomain got proxy %q", got)
	}
	if got := proxyFor(t, fn, "http://notexample.org/page"); got != "http://proxy.internal:3128" {
		t.Errorf("unrelated host proxy = %q", got)
	}
}
