package common

import "net/http"

// LoginCredentials holds basic auth details for the engine API.
// The zero value means anonymous access.
type LoginCredentials struct {
	Username string
	Password string
}

// Apply attaches the credentials to an outgoing request, if any are set.
func (c *LoginCredentials) Apply(req *http.Request) {
	if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}
}
