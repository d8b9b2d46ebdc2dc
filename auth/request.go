package auth

// Request is the narrow capability surface this subsystem needs from an
// inbound request. The host HTTP layer adapts its own request type; the
// subsystem never depends on a full framework request.
type Request interface {
	// Header returns the named request header value, or "" if absent.
	Header(name string) string
	// QueryParam returns the named URL query parameter, or "" if absent.
	QueryParam(name string) string
	// ClientAddress returns the caller's network address, used as the
	// rate-limit identity and recorded on minted sessions.
	ClientAddress() string
	// ClientAgent returns the caller's user-agent string.
	ClientAgent() string
}
