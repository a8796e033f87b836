package instagram

type PostResponse struct {
	Status string `json:"status"`
	Post   *Post  `json:"post"`
}

type Post struct {
	Shortcode  string       `json:"shortcode"`
	MediaCount int          `json:"media_count"`
	IsVideo    bool         `json:"is_video"`
	VideoURL   string       `json:"video_url"`
	DisplayURL string       `json:"display_url"`
	Children   []*ChildNode `json:"children"`
}

type ChildNode struct {
	IsVideo    bool   `json:"is_video"`
	VideoURL   string `json:"video_url"`
	DisplayURL string `json:"display_url"`
}
