package imgur

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpclient "github.com/handiism/imgur-downloader/internal/http"
	"github.com/handiism/imgur-downloader/internal/model"
)

func TestExtractAlbumID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.AlbumID
		wantErr bool
	}{
		{
			name:  "bare id",
			input: "aA1b",
			want:  "aA1b",
		},
		{
			name:  "gallery url",
			input: "https://imgur.com/gallery/vNOUshX",
			want:  "vNOUshX",
		},
		{
			name:  "album url",
			input: "https://imgur.com/a/vNOUshX",
			want:  "vNOUshX",
		},
		{
			name:  "bare numeric id",
			input: "123456",
			want:  "123456",
		},
		{
			name:  "case preserved",
			input: "https://example.com/a/AbC9",
			want:  "AbC9",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "trailing slash",
			input:   "https://imgur.com/a/vNOUshX/",
			wantErr: true,
		},
		{
			name:    "invalid characters and no valid tail",
			input:   "not an id!",
			wantErr: true,
		},
		{
			name:    "tail with invalid characters",
			input:   "https://imgur.com/a/bad-id",
			wantErr: true,
		},
		{
			name:    "only slashes",
			input:   "///",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractAlbumID(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ExtractAlbumID(%q) = %q, want error", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidAlbumRef) {
					t.Errorf("error %v is not ErrInvalidAlbumRef", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ExtractAlbumID(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ExtractAlbumID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClient_FetchAlbum(t *testing.T) {
	const albumJSON = `{
		"media": [
			{"url": "https://i.imgur.com/first.jpg", "ext": "jpg", "size": 100},
			{"url": "https://i.imgur.com/second.png", "ext": "png", "size": 200}
		]
	}`

	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(albumJSON)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(httpclient.NewClient("test"), server.URL, "testclientid")
	album, err := client.FetchAlbum(context.Background(), "vNOUshX", &model.PathConfig{DownloadsPath: "."})
	if err != nil {
		t.Fatalf("FetchAlbum failed: %v", err)
	}

	if gotPath != "/post/v1/albums/vNOUshX" {
		t.Errorf("request path = %q, want %q", gotPath, "/post/v1/albums/vNOUshX")
	}
	if gotQuery != "client_id=testclientid&include=media" {
		t.Errorf("request query = %q, want %q", gotQuery, "client_id=testclientid&include=media")
	}

	if album.ID != "vNOUshX" {
		t.Errorf("album.ID = %q, want %q", album.ID, "vNOUshX")
	}
	if len(album.Media) != 2 {
		t.Fatalf("media count = %d, want 2", len(album.Media))
	}
	if album.Media[0].URL != "https://i.imgur.com/first.jpg" {
		t.Errorf("Media[0].URL = %q", album.Media[0].URL)
	}
	if album.Media[0].Size != 100 || album.Media[1].Size != 200 {
		t.Errorf("sizes = %d, %d, want 100, 200", album.Media[0].Size, album.Media[1].Size)
	}
	if album.Media[1].Index != 1 {
		t.Errorf("Media[1].Index = %d, want 1", album.Media[1].Index)
	}
}

func TestClient_FetchAlbum_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(httpclient.NewClient("test"), server.URL, "testclientid")
	_, err := client.FetchAlbum(context.Background(), "missing1", &model.PathConfig{DownloadsPath: "."})

	if err == nil {
		t.Fatal("expected error for 404 response")
	}
	if !errors.Is(err, ErrAlbumFetch) {
		t.Errorf("error %v is not ErrAlbumFetch", err)
	}
}

func TestClient_FetchAlbum_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("<html>not json</html>")); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(httpclient.NewClient("test"), server.URL, "testclientid")
	_, err := client.FetchAlbum(context.Background(), "vNOUshX", &model.PathConfig{DownloadsPath: "."})

	if err == nil {
		t.Fatal("expected error for malformed body")
	}
	if !errors.Is(err, ErrAlbumDecode) {
		t.Errorf("error %v is not ErrAlbumDecode", err)
	}
}

func TestClient_FetchAlbum_EmptyAlbum(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(`{"media": []}`)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(httpclient.NewClient("test"), server.URL, "testclientid")
	album, err := client.FetchAlbum(context.Background(), "empty1", &model.PathConfig{DownloadsPath: "."})
	if err != nil {
		t.Fatalf("FetchAlbum failed: %v", err)
	}
	if len(album.Media) != 0 {
		t.Errorf("media count = %d, want 0", len(album.Media))
	}
}
