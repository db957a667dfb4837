package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/orchbench/orchbench/internal/common/orcherrors"
)

// SubmitClient starts new orchestration instances on the execution engine.
type SubmitClient interface {
	// Submit asks the engine to accept a new instance of the named workload.
	// It returns nil once the engine has acknowledged acceptance; it must be
	// called at most once per instance id.
	Submit(ctx context.Context, instanceId string, workloadName string) error
}

type httpSubmitClient struct {
	details    *ApiConnectionDetails
	httpClient *http.Client
}

// NewSubmitClient returns a SubmitClient backed by the engine's HTTP
// management API.
func NewSubmitClient(details *ApiConnectionDetails) SubmitClient {
	return &httpSubmitClient{
		details:    details,
		httpClient: CreateApiConnection(details),
	}
}

// WithSubmitClient runs action with a submit client for the given connection
// details.
func WithSubmitClient(details *ApiConnectionDetails, action func(SubmitClient) error) error {
	return action(NewSubmitClient(details))
}

func (c *httpSubmitClient) Submit(ctx context.Context, instanceId string, workloadName string) error {
	submitUrl := fmt.Sprintf("%s/v1/orchestrations/%s/%s",
		c.details.baseUrl(), url.PathEscape(workloadName), url.PathEscape(instanceId))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, submitUrl, strings.NewReader(""))
	if err != nil {
		return errors.Wrapf(err, "creating submit request for instance %s", instanceId)
	}
	c.details.BasicAuth.Apply(req)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "submitting instance %s", instanceId)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return nil
	case res.StatusCode == http.StatusConflict:
		return errors.WithStack(&orcherrors.ErrAlreadyExists{
			Type:  "orchestration",
			Value: instanceId,
		})
	default:
		body, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return errors.WithStack(&orcherrors.ErrSubmissionRejected{
			InstanceId: instanceId,
			StatusCode: res.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		})
	}
}
