package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP operations with imgur-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Streaming downloads that never buffer a whole body in memory
//   - File size retrieval via HEAD requests
//
// A single Client is shared by every download task. It is read-only after
// construction, so concurrent use needs no synchronization, and the
// underlying http.Client reuses connections across tasks.
//
// Example usage:
//
//	client := NewClient("imgur-downloader")
//
//	// Fetch a small body in full
//	body, err := client.Get(ctx, apiURL)
//
//	// Stream a media item
//	stream, size, err := client.OpenStream(ctx, mediaURL)
//	if err == nil {
//	    defer stream.Close()
//	    io.Copy(file, stream)
//	}
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client.
//
// The client is configured with:
//   - 60 second timeout for metadata requests
//   - the given User-Agent header on every request
//
// Media streams are opened with a separate transport-level timeout only, so
// large downloads are not cut off mid-body.
func NewClient(userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		userAgent: userAgent,
	}
}

// ProgressWriter wraps a writer to track download progress.
//
// Use this to monitor large downloads by providing an OnUpdate callback
// that receives the current bytes written and total expected bytes.
//
// Example:
//
//	pw := &ProgressWriter{
//	    Writer: file,
//	    Total:  expectedSize,
//	    OnUpdate: func(written, total int64) {
//	        fmt.Printf("%d / %d bytes\n", written, total)
//	    },
//	}
//	io.Copy(pw, stream)
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes.
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with current progress.
	// Parameters are (bytesWritten, totalExpected).
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 2xx
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// OpenStream performs a GET request and returns the response body as a
// stream, along with the Content-Length if the server reported one
// (-1 otherwise).
//
// The caller owns the returned ReadCloser and must close it. The body is
// consumed lazily; nothing beyond the response headers is buffered here.
//
// Returns an error if the connection cannot be established or the response
// status is not 2xx. Such a failure concerns one media item only; the
// download coordinator isolates it from sibling downloads.
func (c *Client) OpenStream(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	// The shared client's timeout covers the whole request including the
	// body read, which would abort large media mid-transfer. Use a client
	// without an overall deadline for streams; ctx still cancels it.
	streamClient := &http.Client{Transport: c.httpClient.Transport}

	resp, err := streamClient.Do(req)
	if err != nil {
		return nil, 0, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return resp.Body, resp.ContentLength, nil
}

// ContentLength returns the size of the resource at the given URL via a
// HEAD request.
//
// This is useful for verifying the size reported in album metadata, which
// is sometimes incorrect.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 2xx
//   - The server doesn't return a Content-Length header
func (c *Client) ContentLength(ctx context.Context, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	if resp.ContentLength < 0 {
		return 0, fmt.Errorf("no Content-Length header for %s", url)
	}

	return resp.ContentLength, nil
}
