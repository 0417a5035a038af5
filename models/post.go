package models

// Post - represents blog post
// @ID - ID assigned by the store
// @Title - title
// @Content - content
type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatePostRequest - represents post creation request
// Fields are pointers so that a missing field can be told apart from an empty one
type CreatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// UpdatePostRequest - represents post update request
// Only non-nil fields are applied to the post
type UpdatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
