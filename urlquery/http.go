package urlquery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

// call sends a wire request and decodes the JSON response into out. The
// service speaks a single-endpoint protocol: every procedure is a POST to
// BaseURL whose body names the procedure in its "method" field. Failed sends
// are one-shot; any retry policy is a caller concern.
func (c *Client) call(ctx context.Context, wire wireRequest, out any, co *callOptions) error {
	raw, err := c.post(ctx, wire, co)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{URL: c.BaseURL, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// post performs one HTTP round trip and returns the response body.
func (c *Client) post(ctx context.Context, wire wireRequest, co *callOptions) ([]byte, error) {
	res, err := c.send(ctx, wire, co)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{URL: c.BaseURL, Timeout: isTimeout(err), Err: err}
	}
	return raw, nil
}

// send performs the request/response exchange and status handling. On success
// the response body is still open; callers own closing it.
func (c *Client) send(ctx context.Context, wire wireRequest, co *callOptions) (*http.Response, error) {
	body, err := json.Marshal(wire)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	for k, vs := range co.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	method := wire.wireMethod()
	if c.Logger != nil {
		c.Logger("request", map[string]any{"method": method, "url": c.BaseURL})
	}
	for _, h := range c.BeforeHooks {
		h(req)
	}

	res, err := c.HTTPClient.Do(req)
	if c.Logger != nil {
		c.Logger("response", map[string]any{"method": method, "url": c.BaseURL, "status": statusOf(res)})
	}
	for _, h := range c.AfterHooks {
		h(res, nil, err)
	}
	if err != nil {
		return nil, &TransportError{URL: c.BaseURL, Timeout: isTimeout(err), Err: err}
	}
	if res.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(res.Body)
		res.Body.Close()
		return nil, parseAPIError(res.StatusCode, raw)
	}
	return res, nil
}

// statusOf returns the HTTP status code or zero if the response is nil.
func statusOf(res *http.Response) int {
	if res == nil {
		return 0
	}
	return res.StatusCode
}

// parseAPIError captures the server message from an error body when present.
func parseAPIError(code int, b []byte) *APIError {
	apiErr := &APIError{StatusCode: code, Body: string(b)}
	var msg struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(b, &msg) == nil {
		if msg.Message != "" {
			apiErr.Message = msg.Message
		} else if msg.Error != "" {
			apiErr.Message = msg.Error
		}
	}
	return apiErr
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
