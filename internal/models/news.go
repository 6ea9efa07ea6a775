package models

// NewsItem is a headline shown next to a quote.
type NewsItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Source  string `json:"source"`
	Time    string `json:"time"`
	URL     string `json:"url"`
}
