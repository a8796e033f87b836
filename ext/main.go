package ext

import (
	"loady/ext/instagram"
	"loady/ext/tiktok"
	"loady/ext/ytdlp"
	"loady/models"
)

// List holds every registered extractor. order matters: Match
// returns the first entry that claims the URL.
var List = []*models.Extractor{
	tiktok.Extractor,
	instagram.Extractor,
	ytdlp.YouTubeExtractor,
	ytdlp.LinkedInExtractor,
}
