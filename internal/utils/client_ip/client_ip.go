package utils

import (
	"net"
	"net/http"
	"strings"
)

// FromRequest resolves the caller address, preferring proxy headers
// over the raw connection peer.
func FromRequest(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// the first entry is the originating client
		parts := strings.Split(forwarded, ",")

		ip := strings.TrimSpace(parts[0])
		if ip != "" {
			return ip
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
