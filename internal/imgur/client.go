package imgur

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	httpclient "github.com/handiism/imgur-downloader/internal/http"
	"github.com/handiism/imgur-downloader/internal/imgur/dto"
	"github.com/handiism/imgur-downloader/internal/model"
)

// Error kinds surfaced by this package. All of them are fatal for a run:
// without album metadata there is nothing to download.
var (
	// ErrInvalidAlbumRef reports that user input could not be mapped to an
	// album id. It occurs before any network access.
	ErrInvalidAlbumRef = errors.New("invalid album reference")

	// ErrAlbumFetch reports that the metadata request itself failed
	// (connection error or non-success HTTP status).
	ErrAlbumFetch = errors.New("album metadata fetch failed")

	// ErrAlbumDecode reports that the metadata response body could not be
	// decoded into the expected schema.
	ErrAlbumDecode = errors.New("album metadata decode failed")
)

// Client fetches album metadata from the imgur API.
//
// A Client issues exactly one request per FetchAlbum call; there is no
// retry or backoff at this layer. The base URL is configurable so tests
// can stand up a local server.
//
// Example usage:
//
//	client := imgur.NewClient(httpClient, "https://api.imgur.com", clientID)
//	album, err := client.FetchAlbum(ctx, id, pathConfig)
type Client struct {
	http     *httpclient.Client
	baseURL  string
	clientID string
}

// NewClient creates a new metadata client.
func NewClient(http *httpclient.Client, baseURL, clientID string) *Client {
	return &Client{
		http:     http,
		baseURL:  baseURL,
		clientID: clientID,
	}
}

// FetchAlbum retrieves the metadata for the given album id and converts it
// into a model.Album with destination paths computed.
//
// Failure modes:
//   - request failure or non-success status: wrapped ErrAlbumFetch
//   - malformed or unexpected-schema body: wrapped ErrAlbumDecode
//
// Both abort the whole run; there is no partial-metadata fallback.
func (c *Client) FetchAlbum(ctx context.Context, id model.AlbumID, pathCfg *model.PathConfig) (*model.Album, error) {
	url := fmt.Sprintf("%s/post/v1/albums/%s?client_id=%s&include=media", c.baseURL, id, c.clientID)

	body, err := c.http.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w for id %s: %v", ErrAlbumFetch, id, err)
	}

	var jsonAlbum dto.JSONAlbum
	if err := json.Unmarshal(body, &jsonAlbum); err != nil {
		return nil, fmt.Errorf("%w for id %s: %v", ErrAlbumDecode, id, err)
	}

	return jsonAlbum.ToAlbum(id, pathCfg), nil
}
