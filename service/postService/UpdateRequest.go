package postService

// UpdateRequest - partial update of the post with the given ID
// nil fields keep their current value
type UpdateRequest struct {
	ID      int
	Title   *string
	Content *string
}
