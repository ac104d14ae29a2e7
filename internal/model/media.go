package model

import (
	"fmt"
	"path/filepath"
)

// Media represents a single downloadable item within an album.
//
// Media carries the remote location, the file extension reported by the API
// (used verbatim, no normalization) and the expected byte size. The local
// file path is computed once at construction via FileName, using the item's
// position in the album.
//
// Example:
//
//	album := NewAlbum("vNOUshX", &PathConfig{DownloadsPath: "."})
//	media := NewMedia(album, 0, 11, url, "jpg", 1024)
//	// media.Path = "vNOUshX/00.jpg"
type Media struct {
	// Album is a reference to the parent album.
	Album *Album

	// Index is the zero-based position within the album. Together with the
	// album's item count it determines the destination file name.
	Index int

	// URL is the remote location to download the media bytes from.
	URL string

	// Ext is the file extension as reported by the API, without a leading
	// dot. It is used verbatim in the file name.
	Ext string

	// Size is the byte size reported by the API. The reported value is
	// sometimes incorrect, which can cause false skips or needless
	// re-downloads; see the skip decision in internal/download.
	Size int64

	// Path is the computed local file path where the item will be saved.
	Path string
}

// NewMedia creates a new Media with its destination path computed.
//
// count is the total number of items in the album and must be known up
// front, since the amount of zero padding in file names depends on it.
func NewMedia(album *Album, index, count int, url, ext string, size int64) *Media {
	return &Media{
		Album: album,
		Index: index,
		URL:   url,
		Ext:   ext,
		Size:  size,
		Path:  filepath.Join(album.Path, FileName(index, count, ext)),
	}
}

// FileName computes the destination file name for the item at the given
// position in an album of count items.
//
// The index is rendered in decimal, left-padded with zeros to the width
// needed for the largest index (count-1), then the extension is appended
// after a literal dot. This guarantees that lexicographic ordering of file
// names equals numeric ordering of indices for any album size:
//
//	FileName(0, 11, "jpg")  // "00.jpg"
//	FileName(10, 11, "png") // "10.png"
//
// FileName panics if index is outside [0, count); callers guarantee the
// range by construction, so a violation is a programming error rather than
// a recoverable failure.
func FileName(index, count int, ext string) string {
	if index < 0 || index >= count {
		panic(fmt.Sprintf("model: media index %d out of range for %d items", index, count))
	}
	width := decimalDigits(count - 1)
	return fmt.Sprintf("%0*d.%s", width, index, ext)
}

// decimalDigits returns the number of digits in the decimal representation
// of n. Zero has one digit by convention.
func decimalDigits(n int) int {
	if n == 0 {
		return 1
	}
	digits := 0
	for ; n > 0; n /= 10 {
		digits++
	}
	return digits
}
