// Package fetch is a thin net/http wrapper that turns a URL into its raw,
// undecoded response body plus the charset the response declares, leaving
// decoding and retry/backoff policy to the caller.
package fetch

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"
)

// Result is a fetched document: its body (caller must Close it) and the
// charset reported by the response's Content-Type header, if any.
type Result struct {
	Body     io.ReadCloser
	Encoding string
}

// Get issues a GET request for rawURL and returns its body unread, along
// with whatever charset the Content-Type header declares.
func Get(rawURL string, timeout time.Duration) (*Result, error) {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	encoding := ""
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if _, params, err := mime.ParseMediaType(ct); err == nil {
			encoding = params["charset"]
		}
	}

	return &Result{Body: resp.Body, Encoding: encoding}, nil
}
