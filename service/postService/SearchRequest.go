package postService

// SearchRequest - case-insensitive substring filters. Empty filters match everything
type SearchRequest struct {
	Title   string
	Content string
}
