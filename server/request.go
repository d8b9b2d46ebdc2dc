package server

import (
	"net"
	"net/http"

	"github.com/caredirectory/go-admin-auth/auth"
)

// httpRequest adapts *http.Request to the narrow auth.Request surface.
type httpRequest struct {
	r *http.Request
}

// AdaptRequest wraps an HTTP request for the authentication facade.
func AdaptRequest(r *http.Request) auth.Request {
	return httpRequest{r: r}
}

func (h httpRequest) Header(name string) string {
	return h.r.Header.Get(name)
}

func (h httpRequest) QueryParam(name string) string {
	return h.r.URL.Query().Get(name)
}

// ClientAddress strips the ephemeral port so the rate-limit identity is
// stable across connections from the same host.
func (h httpRequest) ClientAddress() string {
	host, _, err := net.SplitHostPort(h.r.RemoteAddr)
	if err != nil {
		return h.r.RemoteAddr
	}
	return host
}

func (h httpRequest) ClientAgent() string {
	return h.r.UserAgent()
}
