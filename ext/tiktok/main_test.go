package tiktok

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"loady/enums"
	"loady/models"
)

func newLookupServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if r.URL.Query().Get("url") == "" {
				t.Error("missing url query parameter")
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		},
	))
	t.Cleanup(srv.Close)
	return srv
}

func newResolveContext() *models.ResolveContext {
	return &models.ResolveContext{
		Context:   context.Background(),
		RawText:   "https://www.tiktok.com/@user/video/123",
		Extractor: Extractor,
	}
}

func TestSingleVideo(t *testing.T) {
	srv := newLookupServer(t, `{"code":0,"data":{"play":"/v.mp4"}}`)

	items, err := MediaListFromAPI(newResolveContext(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Type != enums.MediaTypeVideo {
		t.Fatalf("expected video, got %s", items[0].Type)
	}
	if items[0].URL != srv.URL+"/v.mp4" {
		t.Fatalf("relative play URL not resolved: %s", items[0].URL)
	}
}

func TestCarouselTakesPrecedenceOverPlay(t *testing.T) {
	srv := newLookupServer(t, `{
		"code": 0,
		"data": {
			"images": ["/a.jpg", "https://cdn.example.com/b.jpg"],
			"music": {"play_url": "/m.mp3", "title": "track", "author": "artist"},
			"play": "/v.mp4"
		}
	}`)

	items, err := MediaListFromAPI(newResolveContext(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 2 photos + 1 audio, got %d items", len(items))
	}
	if items[0].Type != enums.MediaTypePhoto || items[0].URL != srv.URL+"/a.jpg" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].URL != "https://cdn.example.com/b.jpg" {
		t.Fatalf("absolute image URL must pass through unchanged: %s", items[1].URL)
	}
	audio := items[2]
	if audio.Type != enums.MediaTypeAudio || audio.URL != srv.URL+"/m.mp3" {
		t.Fatalf("unexpected audio item: %+v", audio)
	}
	if audio.Title.ValueOrZero() != "track" || audio.Performer.ValueOrZero() != "artist" {
		t.Fatalf("music metadata not carried: %+v", audio)
	}
	for _, item := range items {
		if item.Type == enums.MediaTypeVideo {
			t.Fatal("carousel response must not emit the play video")
		}
	}
}

func TestCarouselMusicAsString(t *testing.T) {
	srv := newLookupServer(t, `{
		"code": 0,
		"data": {
			"images": ["/a.jpg"],
			"music": "/m.mp3"
		}
	}`)

	items, err := MediaListFromAPI(newResolveContext(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected photo + audio, got %d items", len(items))
	}
	if items[1].Type != enums.MediaTypeAudio || items[1].URL != srv.URL+"/m.mp3" {
		t.Fatalf("unexpected audio item: %+v", items[1])
	}
	if items[1].Title.Valid {
		t.Fatal("string-form music carries no metadata")
	}
}

func TestCarouselSkipsNonStringImages(t *testing.T) {
	srv := newLookupServer(t, `{
		"code": 0,
		"data": {
			"images": ["/a.jpg", {"url": "/b.jpg"}, 42]
		}
	}`)

	items, err := MediaListFromAPI(newResolveContext(), srv.Client(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("only string entries should be emitted, got %d items", len(items))
	}
}

func TestErrorCode(t *testing.T) {
	srv := newLookupServer(t, `{"code":-1,"msg":"url parsing failed"}`)

	if _, err := MediaListFromAPI(newResolveContext(), srv.Client(), srv.URL); err == nil {
		t.Fatal("expected error for non-zero code")
	}
}

func TestUnrecognizedShape(t *testing.T) {
	srv := newLookupServer(t, `{"code":0,"data":{"something":"else"}}`)

	if _, err := MediaListFromAPI(newResolveContext(), srv.Client(), srv.URL); err == nil {
		t.Fatal("expected error for response without media fields")
	}
}

func TestInvalidJSON(t *testing.T) {
	srv := newLookupServer(t, `<html>rate limited</html>`)

	if _, err := MediaListFromAPI(newResolveContext(), srv.Client(), srv.URL); err == nil {
		t.Fatal("expected error for non-json response")
	}
}

func TestAssetURL(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/v.mp4", "https://www.tikwm.com/v.mp4"},
		{"https://cdn.example.com/v.mp4", "https://cdn.example.com/v.mp4"},
		{"http://cdn.example.com/v.mp4", "http://cdn.example.com/v.mp4"},
	}
	for _, tc := range cases {
		if got := AssetURL("https://www.tikwm.com", tc.path); got != tc.want {
			t.Errorf("AssetURL(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
