package crawler

import (
	"fmt"
	"net/url"
	"strings"
)

// Normalize canonicalizes a URL so dedup on the seen-set is reliable:
// lowercase scheme and host, default ports stripped, fragment dropped,
// and a trailing slash removed from an otherwise-empty path. Normalize is
// idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("normalize %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("normalize %q: missing scheme or host", raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(stripDefaultPort(u.Scheme, u.Host))
	u.Fragment = ""
	if u.Path == "/" {
		u.Path = ""
	}

	return u.String(), nil
}

func stripDefaultPort(scheme, host string) string {
	switch scheme {
	case "http":
		return strings.TrimSuffix(host, ":80")
	case "https":
		return strings.TrimSuffix(host, ":443")
	default:
		return host
	}
}

// IsInternal reports whether candidate belongs to the same host as
// scopeHost — exact host match, the same test the teacher's
// ShouldFollowLink/URLQueue.Push apply (a deliberate limitation: a
// subdomain such as docs.example.com is NOT internal to example.com).
func IsInternal(candidate, scopeHost string) bool {
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return strings.EqualFold(u.Host, scopeHost)
}
