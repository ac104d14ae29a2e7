package imgur

import (
	"fmt"
	"strings"

	"github.com/handiism/imgur-downloader/internal/model"
)

// ExtractAlbumID maps a user-supplied album reference to a validated album
// id.
//
// The reference is either a bare id or a URL whose final path segment is an
// id:
//
//	ExtractAlbumID("vNOUshX")                          // "vNOUshX"
//	ExtractAlbumID("https://imgur.com/a/vNOUshX")      // "vNOUshX"
//	ExtractAlbumID("https://imgur.com/gallery/vNOUshX") // "vNOUshX"
//
// A whole-string match is tried first; otherwise the substring after the
// last "/" is validated. No network access, no case normalization, no
// percent-decoding. A reference ending in "/" leaves an empty final segment
// and is rejected; that is deliberate, not an oversight.
//
// Returns ErrInvalidAlbumRef (wrapped) if no valid id can be extracted.
func ExtractAlbumID(s string) (model.AlbumID, error) {
	if isASCIIAlphanumeric(s) && s != "" {
		return model.AlbumID(s), nil
	}

	if i := strings.LastIndex(s, "/"); i != -1 {
		tail := s[i+1:]
		if isASCIIAlphanumeric(tail) && tail != "" {
			return model.AlbumID(tail), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidAlbumRef, s)
}

// isASCIIAlphanumeric reports whether every byte of s is an ASCII letter or
// digit. The empty string vacuously qualifies; callers check for emptiness
// separately.
func isASCIIAlphanumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		default:
			return false
		}
	}
	return true
}
