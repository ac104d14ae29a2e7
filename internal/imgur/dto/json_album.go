package dto

import "github.com/handiism/imgur-downloader/internal/model"

// JSONAlbum represents the deserialized album response from the imgur API.
//
// Only the media list is consumed; other fields of the response are
// ignored. The order of the media array is preserved, since it determines
// on-disk file names.
type JSONAlbum struct {
	Media []JSONMedia `json:"media"`
}

// JSONMedia represents one media descriptor within an album response.
type JSONMedia struct {
	// URL is the direct location of the media bytes.
	URL string `json:"url"`

	// Ext is the file extension without a leading dot, e.g. "jpg".
	Ext string `json:"ext"`

	// Size is the byte size as reported by imgur. Known to be stale or
	// plain wrong for some items.
	Size int64 `json:"size"`
}

// ToAlbum converts a JSONAlbum to a model.Album with computed paths.
func (ja *JSONAlbum) ToAlbum(id model.AlbumID, pathCfg *model.PathConfig) *model.Album {
	album := model.NewAlbum(id, pathCfg)

	count := len(ja.Media)
	for i, jm := range ja.Media {
		album.Media = append(album.Media, model.NewMedia(album, i, count, jm.URL, jm.Ext, jm.Size))
	}

	return album
}
