package client

import (
	"net/http"
	"strings"
	"time"

	"github.com/orchbench/orchbench/internal/common"
)

const defaultRequestTimeout = 60 * time.Second

// ApiConnectionDetails describes how to reach the execution engine's
// management API. Values are typically bound from command line flags or the
// persistent config file, see command_line.go.
type ApiConnectionDetails struct {
	EngineUrl      string
	BasicAuth      common.LoginCredentials
	RequestTimeout time.Duration
}

func (d *ApiConnectionDetails) baseUrl() string {
	url := d.EngineUrl
	if !strings.Contains(url, "://") {
		url = "http://" + url
	}
	return strings.TrimSuffix(url, "/")
}

// CreateApiConnection builds the http client used for all calls to the
// engine. The request timeout bounds a single submit call end to end; the
// scheduler treats a timeout like any other per-item submission failure.
func CreateApiConnection(details *ApiConnectionDetails) *http.Client {
	timeout := details.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &http.Client{Timeout: timeout}
}
