// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how request scheme is resolved.
//
// X-Forwarded-Proto is only honored when TrustForwardedProto is set.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPS reports whether a request should be treated as HTTPS.
func IsHTTPS(r *http.Request, policy SchemePolicy) bool {
	return Scheme(r, policy) == "https"
}

// Scheme resolves "http" or "https" for r.
func Scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme)); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// IsSameOrigin reports whether origin (an Origin or Referer header value)
// names the same scheme, host and port as r.
func IsSameOrigin(r *http.Request, origin string, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	parsed, err := url.Parse(strings.TrimSpace(origin))
	if err != nil || parsed.Host == "" {
		return false
	}
	scheme := Scheme(r, policy)
	originScheme := strings.ToLower(parsed.Scheme)
	// Websocket clients may send ws/wss origins.
	switch originScheme {
	case "ws":
		originScheme = "http"
	case "wss":
		originScheme = "https"
	}
	if originScheme != scheme {
		return false
	}
	host, port := hostParts(r.Host)
	if host == "" || strings.ToLower(parsed.Hostname()) != host {
		return false
	}
	return withDefaultPort(parsed.Port(), originScheme) == withDefaultPort(port, scheme)
}

// HasSameOriginProof reports whether Origin or Referer proves same-origin.
func HasSameOriginProof(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		return IsSameOrigin(r, origin, policy)
	}
	if referer := strings.TrimSpace(r.Header.Get("Referer")); referer != "" {
		return IsSameOrigin(r, referer, policy)
	}
	return false
}

func withDefaultPort(port string, scheme string) string {
	if port != "" {
		return port
	}
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func hostParts(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
