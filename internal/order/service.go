package order

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"alanya-store/pkg"
)

// Submitter posts an order payload to the intake endpoint. Any non-success
// outcome is reported as a single submission error kind; callers decide
// whether the user may retry.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) error
}

type DefaultSubmitter struct {
	url    string
	client *http.Client
}

func NewDefaultSubmitter(url string, client *http.Client) Submitter {
	return &DefaultSubmitter{
		url:    url,
		client: client,
	}
}

func (d *DefaultSubmitter) Submit(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &pkg.ErrSubmission{
			Cause: "failed to encode payload",
			Err:   err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return &pkg.ErrSubmission{
			Cause: "failed to build request",
			Err:   err,
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		slog.Error("Failed to submit order", "error", err)
		return &pkg.ErrSubmission{
			Cause: "request failed",
			Err:   err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("Order intake returned non-success status", "status", resp.StatusCode)
		return &pkg.ErrSubmission{
			Cause:  "unexpected status",
			Status: resp.StatusCode,
		}
	}

	return nil
}
