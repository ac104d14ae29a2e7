// Package http provides an HTTP client configured for imgur API and media
// requests.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Streaming media downloads
//   - File size retrieval via HEAD requests
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient("imgur-downloader")
//
//	// Fetch album metadata
//	body, err := client.Get(ctx, metadataURL)
//
//	// Stream a media item without buffering it in memory
//	stream, size, err := client.OpenStream(ctx, mediaURL)
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress
// tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    expectedSize,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
