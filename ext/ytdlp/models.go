package ytdlp

type InfoResponse struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}
