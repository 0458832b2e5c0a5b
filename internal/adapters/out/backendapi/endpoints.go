package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrRouteNotFound is the one condition that lets a request advance to the
// next candidate path. Any other failure surfaces immediately.
var ErrRouteNotFound = errors.New("route not found")

const maxErrorBodyBytes = 4 << 10

// StatusError carries a non-2xx backend response verbatim so operators see
// the platform's own message instead of a paraphrase.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned status %d", e.Code)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Code, e.Body)
}

// Unwrap matches ErrRouteNotFound for 404 responses, making the fallback
// predicate an errors.Is check.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return ErrRouteNotFound
	}
	return nil
}

// Candidate paths per operation. Deployments of the platform differ in where
// they mount these routes; candidates are walked in order and a path is
// skipped only when the route itself is absent.
func submitOrderCandidates() []string {
	return []string{"/orders", "/orders-legacy"}
}

func restaurantCandidates(restaurantID int64) []string {
	return []string{
		fmt.Sprintf("/restaurants/%d", restaurantID),
		fmt.Sprintf("/legacy/restaurants/%d", restaurantID),
	}
}

// send walks the candidate paths in order, advancing only past a
// route-not-found response. The last error is returned when every candidate
// is exhausted.
func (c *Client) send(
	ctx context.Context,
	method string,
	candidates []string,
	query url.Values,
	header http.Header,
	reqBody any,
	respBody any,
) error {
	var payload []byte
	if reqBody != nil {
		var err error
		payload, err = json.Marshal(reqBody)
		if err != nil {
			return err
		}
	}

	var lastErr error
	for _, path := range candidates {
		err := c.sendOnce(ctx, method, path, query, header, payload, respBody)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrRouteNotFound) {
			return err
		}
		lastErr = err
	}
	return lastErr
}

func (c *Client) sendOnce(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	header http.Header,
	payload []byte,
	respBody any,
) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if respBody == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(respBody)
}
