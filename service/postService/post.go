package postService

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/blinky-z/PostsAPI/models"
)

// ErrNotFound - returned when there is no post with the requested ID
var ErrNotFound = errors.New("post not found")

// Store - in-memory ordered collection of posts
// All exported methods are safe for concurrent use. Posts are returned by value,
// so callers never share memory with the store
type Store struct {
	mu     sync.RWMutex
	posts  []models.Post
	lastID int
}

// DefaultPosts - posts the server starts with
func DefaultPosts() []models.Post {
	return []models.Post{
		{ID: 1, Title: "First post", Content: "This is the first post."},
		{ID: 2, Title: "Second post", Content: "This is the second post about Flask."},
		{ID: 3, Title: "A post about Python", Content: "Python is a versatile language."},
	}
}

// NewStore - creates a store holding the given posts in the given order
// The next assigned ID is the max of the seeded IDs plus one
func NewStore(seed ...models.Post) *Store {
	s := &Store{posts: make([]models.Post, 0, len(seed))}
	for _, post := range seed {
		s.posts = append(s.posts, post)
		if post.ID > s.lastID {
			s.lastID = post.ID
		}
	}
	return s
}

// indexOf - position of the post with the given ID or -1. Caller must hold the lock
func (s *Store) indexOf(id int) int {
	for i := range s.posts {
		if s.posts[i].ID == id {
			return i
		}
	}
	return -1
}

func notFound(id int) error {
	return fmt.Errorf("post %d: %w", id, ErrNotFound)
}

// List - retrieves all posts in insertion order
func (s *Store) List() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

// Search - retrieves posts matching every non-empty filter of the request
func (s *Store) Search(request *SearchRequest) []models.Post {
	title := strings.ToLower(request.Title)
	content := strings.ToLower(request.Content)

	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.Post, 0)
	for _, post := range s.posts {
		if title != "" && !strings.Contains(strings.ToLower(post.Title), title) {
			continue
		}
		if content != "" && !strings.Contains(strings.ToLower(post.Content), content) {
			continue
		}
		posts = append(posts, post)
	}
	return posts
}

// GetByID - retrieves post with the given ID
func (s *Store) GetByID(id int) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Post{}, notFound(id)
	}
	return s.posts[i], nil
}

// ExistsByID - checks if post with the given ID exists
func (s *Store) ExistsByID(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.indexOf(id) >= 0
}

// Save - saves a new post at the end of the collection
// returns the created post with its assigned ID
func (s *Store) Save(request *SaveRequest) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	// IDs of deleted posts are never handed out again
	s.lastID++
	createdPost := models.Post{
		ID:      s.lastID,
		Title:   request.Title,
		Content: request.Content,
	}
	s.posts = append(s.posts, createdPost)
	return createdPost
}

// Update - replaces the fields set in the request
// returns the updated post
func (s *Store) Update(request *UpdateRequest) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(request.ID)
	if i < 0 {
		return models.Post{}, notFound(request.ID)
	}

	if request.Title != nil {
		s.posts[i].Title = *request.Title
	}
	if request.Content != nil {
		s.posts[i].Content = *request.Content
	}
	return s.posts[i], nil
}

// DeleteByID - removes post with the given ID
func (s *Store) DeleteByID(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	s.posts = append(s.posts[:i], s.posts[i+1:]...)
	return nil
}
