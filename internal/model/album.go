package model

import "path/filepath"

// AlbumID is a validated imgur album identifier.
//
// An AlbumID is always a non-empty string of ASCII alphanumeric characters.
// It is produced once from user input (see internal/imgur.ExtractAlbumID),
// never mutated, and doubles as both the API request parameter and the name
// of the destination directory.
type AlbumID string

// Album represents an imgur album with its media items and computed
// destination directory.
//
// The media slice preserves the ordering declared by the imgur API. That
// order is semantically significant: it is the sole key for on-disk file
// names, so it must be stable for the skip/resume behavior to work across
// repeated runs.
//
// Example:
//
//	cfg := &PathConfig{DownloadsPath: "."}
//	album := NewAlbum("vNOUshX", cfg)
//	// album.Path = "vNOUshX"
type Album struct {
	// ID is the validated album identifier.
	ID AlbumID

	// Media contains the album's items in API order.
	Media []*Media

	// Path is the computed local directory path where media files will be
	// saved. This is automatically set by NewAlbum based on
	// PathConfig.DownloadsPath.
	Path string
}

// PathConfig holds path settings for albums.
type PathConfig struct {
	// DownloadsPath is the base directory under which album directories are
	// created. The album directory itself is always named after the album id.
	DownloadsPath string
}

// NewAlbum creates a new Album with its destination directory computed from
// the config. Media items are appended separately (see NewMedia) once the
// item count is known, since file names depend on it.
func NewAlbum(id AlbumID, cfg *PathConfig) *Album {
	return &Album{
		ID:   id,
		Path: filepath.Join(cfg.DownloadsPath, string(id)),
	}
}
