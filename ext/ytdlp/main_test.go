package ytdlp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"loady/enums"
	"loady/models"
)

func newInfoServer(t *testing.T, wantReferer string, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/info" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			query := r.URL.Query()
			if query.Get("url") == "" {
				t.Error("missing url query parameter")
			}
			if query.Get("format") != "best" {
				t.Errorf("expected format=best, got %q", query.Get("format"))
			}
			if query.Get("download") != "false" {
				t.Errorf("expected download=false, got %q", query.Get("download"))
			}
			if got := r.Header.Get("Referer"); got != wantReferer {
				t.Errorf("expected referer %q, got %q", wantReferer, got)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(body))
		},
	))
	t.Cleanup(srv.Close)
	return srv
}

func TestYouTubeBestFormat(t *testing.T) {
	srv := newInfoServer(t, "", `{"url":"https://cdn.example.com/x.mp4","title":"some video"}`)

	ctx := &models.ResolveContext{
		Context:   context.Background(),
		RawText:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Extractor: YouTubeExtractor,
	}
	items, err := BestFormatURL(ctx, srv.Client(), srv.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Type != enums.MediaTypeVideo {
		t.Fatalf("expected one video item, got %+v", items)
	}
	if items[0].URL != "https://cdn.example.com/x.mp4" {
		t.Fatalf("unexpected URL: %s", items[0].URL)
	}
}

func TestLinkedInSendsReferer(t *testing.T) {
	srv := newInfoServer(t, linkedinReferer, `{"url":"https://cdn.example.com/x.mp4"}`)

	ctx := &models.ResolveContext{
		Context:   context.Background(),
		RawText:   "https://www.linkedin.com/posts/someone_activity-123",
		Extractor: LinkedInExtractor,
	}
	items, err := BestFormatURL(ctx, srv.Client(), srv.URL, linkedinReferer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one item, got %d", len(items))
	}
}

func TestMissingDirectURL(t *testing.T) {
	srv := newInfoServer(t, "", `{"title":"live stream"}`)

	ctx := &models.ResolveContext{
		Context:   context.Background(),
		RawText:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Extractor: YouTubeExtractor,
	}
	items, err := BestFormatURL(ctx, srv.Client(), srv.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty result, got %+v", items)
	}
}

func TestExtractorFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
	))
	t.Cleanup(srv.Close)

	ctx := &models.ResolveContext{
		Context:   context.Background(),
		RawText:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Extractor: YouTubeExtractor,
	}
	if _, err := BestFormatURL(ctx, srv.Client(), srv.URL, ""); err == nil {
		t.Fatal("expected error for backend failure")
	}
}
