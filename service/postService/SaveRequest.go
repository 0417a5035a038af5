package postService

// SaveRequest - fields of a new post. Both are expected to be validated by the caller
type SaveRequest struct {
	Title   string
	Content string
}
