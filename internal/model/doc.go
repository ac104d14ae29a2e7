// Package model defines the core data structures used throughout
// the imgur-downloader application.
//
// # Album
//
// Album represents an imgur album with its ordered media items and the
// computed destination directory:
//
//	album := model.NewAlbum("vNOUshX", pathConfig)
//	fmt.Println(album.Path) // Where the album directory will be created
//
// # Media
//
// Media represents a single item within an album:
//
//	media := model.NewMedia(album, 0, 11, url, "jpg", 1024)
//	fmt.Println(media.Path) // Full path where the item will be saved
//
// # File naming
//
// Items are named after their zero-based position in the album, left-padded
// with zeros so that lexicographic and numeric orderings agree:
//
//	model.FileName(0, 11, "jpg")  // "00.jpg"
//	model.FileName(10, 11, "gif") // "10.gif"
//
// Naming is fully deterministic for a given metadata order, which is what
// makes the skip-if-already-downloaded check stable across runs.
package model
