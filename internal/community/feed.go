// ABOUTME: In-memory community feed of posts with likes and comments
// ABOUTME: Not persisted across restarts; seeded with demo data at startup

package community

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rinconada/ceibas-hub/internal/identity"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("not found")

// Comment is a reply under a feed post
type Comment struct {
	ID        string         `json:"id"`
	Author    *identity.User `json:"author"`
	Content   string         `json:"content"`
	Timestamp string         `json:"timestamp"`
}

// Post is a feed announcement
type Post struct {
	ID        string         `json:"id"`
	Author    *identity.User `json:"author"`
	Content   string         `json:"content"`
	Timestamp string         `json:"timestamp"`
	Likes     int            `json:"likes"`
	Comments  []*Comment     `json:"comments"`
	ImageURL  string         `json:"imageUrl,omitempty"`
	VideoURL  string         `json:"videoUrl,omitempty"`
}

// FeedStore holds the community feed, newest post first
type FeedStore struct {
	mu    sync.RWMutex
	posts []*Post
}

// NewFeedStore creates an empty feed
func NewFeedStore() *FeedStore {
	return &FeedStore{}
}

// AddPost prepends a new post by the given author. Content is assumed
// pre-validated (non-blank) by the caller.
func (f *FeedStore) AddPost(author *identity.User, content string) *Post {
	f.mu.Lock()
	defer f.mu.Unlock()

	post := &Post{
		ID:        uuid.New().String(),
		Author:    author,
		Content:   strings.TrimSpace(content),
		Timestamp: "Ahora mismo",
		Comments:  []*Comment{},
	}
	f.posts = append([]*Post{post}, f.posts...)
	return post
}

// LikePost increments a post's like counter
func (f *FeedStore) LikePost(id string) (*Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, err := f.findLocked(id)
	if err != nil {
		return nil, err
	}
	post.Likes++
	return post, nil
}

// AddComment appends a comment to a post
func (f *FeedStore) AddComment(postID string, author *identity.User, content string) (*Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, err := f.findLocked(postID)
	if err != nil {
		return nil, err
	}

	comment := &Comment{
		ID:        uuid.New().String(),
		Author:    author,
		Content:   strings.TrimSpace(content),
		Timestamp: "Ahora mismo",
	}
	post.Comments = append(post.Comments, comment)
	return comment, nil
}

// Posts returns the feed, newest first
func (f *FeedStore) Posts() []*Post {
	f.mu.RLock()
	defer f.mu.RUnlock()

	posts := make([]*Post, len(f.posts))
	copy(posts, f.posts)
	return posts
}

// seed installs prebuilt posts, keeping the given order.
func (f *FeedStore) seed(posts []*Post) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.posts = posts
}

// findLocked returns the post with the given id. Must be called with mu held.
func (f *FeedStore) findLocked(id string) (*Post, error) {
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrNotFound
}
