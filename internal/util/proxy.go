// Package util holds small shared helpers: proxy selection, rate limiting
// and robots.txt checks for outbound HTTP.
package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc builds a proxy selector for outbound requests. Explicit
// proxy URLs take precedence over the standard environment variables, and
// hosts listed in noProxy (comma separated, subdomains included) bypass
// the proxy entirely.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	bypass := splitHostList(noProxy)
	return func(req *http.Request) (*url.URL, error) {
		host := req.URL.Hostname()
		for _, b := range bypass {
			if host == b || strings.HasSuffix(host, "."+b) {
				return nil, nil
			}
		}
		proxy := httpProxy
		if req.URL.Scheme == "https" && httpsProxy != "" {
			proxy = httpsProxy
		}
		if proxy == "" {
			return http.ProxyFromEnvironment(req)
		}
		return url.Parse(proxy)
	}
}

func splitHostList(list string) []string {
	var hosts []string
	for _, h := range strings.Split(list, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
