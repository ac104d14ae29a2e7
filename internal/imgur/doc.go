// Package imgur provides functionality to resolve album references and
// fetch album metadata from the imgur API.
//
// The package handles two main use cases:
//
//  1. Mapping user input (a bare id or a URL) to a validated album id
//  2. Fetching and decoding album metadata into the model types
//
// # Album Reference Extraction
//
// Use ExtractAlbumID to turn a command-line argument into an album id:
//
//	id, err := imgur.ExtractAlbumID("https://imgur.com/a/vNOUshX")
//	if err != nil {
//	    log.Fatal(err) // ErrInvalidAlbumRef
//	}
//	fmt.Println(id) // "vNOUshX"
//
// # Metadata Fetching
//
// Use Client to fetch the album's media list:
//
//	client := imgur.NewClient(httpClient, "https://api.imgur.com", clientID)
//	album, err := client.FetchAlbum(ctx, id, pathConfig)
//
// # API Data Format
//
// The metadata endpoint returns JSON of the shape
//
//	{"media": [{"url": "...", "ext": "jpg", "size": 12345}, ...]}
//
// decoded by the dto subpackage. Metadata failures are fatal to a run;
// they are distinguishable via errors.Is against ErrAlbumFetch and
// ErrAlbumDecode.
package imgur
