package repositories

import (
	"strings"

	"github.com/anonto42/picgram/internal/models"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(req models.CreatePostRequest) (*models.PostView, error)
	GetPost(id string) (*models.PostView, error)
	GetPostsByUserID(userID string) ([]models.PostView, error)
	DeletePost(id string) error
}

// CreatePost stores a post and indexes it under its owner and each of its hashtags.
func (s *MemoryStore) CreatePost(req models.CreatePostRequest) (*models.PostView, error) {
	if !req.MediaType.Valid() {
		return nil, invalid("post", "media type must be image or video")
	}
	if strings.TrimSpace(req.MediaURL) == "" {
		return nil, invalid("post", "media url must not be blank")
	}
	tags := ExtractHashtags(req.Caption)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[req.UserID]; !ok {
		return nil, notFound("user", req.UserID)
	}

	post := &models.Post{
		ID:        s.newID(),
		UserID:    req.UserID,
		MediaURL:  req.MediaURL,
		MediaType: req.MediaType,
		Caption:   req.Caption,
		Hashtags:  tags,
		CreatedAt: s.now(),
		Seq:       s.nextSeq(),
	}
	s.posts[post.ID] = post
	addTo(s.userPosts, post.UserID, post.ID, post.Seq)
	for _, tag := range tags {
		addTo(s.hashtagPosts, tag, post.ID, post.Seq)
	}

	return s.viewLocked(post), nil
}

// GetPost retrieves a post by ID
func (s *MemoryStore) GetPost(id string) (*models.PostView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, notFound("post", id)
	}
	return s.viewLocked(post), nil
}

// GetPostsByUserID returns every post owned by the user, newest first.
func (s *MemoryStore) GetPostsByUserID(userID string) ([]models.PostView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, notFound("user", userID)
	}
	return s.viewsLocked(s.postsLocked(s.userPosts[userID])), nil
}

// DeletePost removes a post and everything hanging off it: the owner's post set, its
// comments, its hashtag buckets and its likers. All of it happens under one write lock.
func (s *MemoryStore) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return notFound("post", id)
	}

	removeFrom(s.userPosts, post.UserID, id)

	commentIDs := s.postComments[id]
	for _, cid := range commentIDs {
		delete(s.comments, cid)
	}
	delete(s.postComments, id)

	for _, tag := range post.Hashtags {
		removeFrom(s.hashtagPosts, tag, id)
	}

	likers := len(s.likes[id])
	delete(s.likes, id)
	delete(s.posts, id)

	s.logger.Debug("post deleted",
		"post_id", id,
		"comments", len(commentIDs),
		"likes", likers,
		"hashtags", len(post.Hashtags),
	)
	return nil
}

func (s *MemoryStore) viewLocked(post *models.Post) *models.PostView {
	p := *post
	p.Hashtags = append([]string(nil), post.Hashtags...)
	if p.Hashtags == nil {
		p.Hashtags = []string{}
	}
	return &models.PostView{
		Post:         p,
		LikeCount:    len(s.likes[post.ID]),
		CommentCount: len(s.postComments[post.ID]),
	}
}

func (s *MemoryStore) viewsLocked(posts []*models.Post) []models.PostView {
	out := make([]models.PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, *s.viewLocked(p))
	}
	return out
}

// postsLocked resolves a set of post ids, newest first.
func (s *MemoryStore) postsLocked(ids stampedSet) []*models.Post {
	posts := make([]*models.Post, 0, len(ids))
	for id := range ids {
		if p, ok := s.posts[id]; ok {
			posts = append(posts, p)
		}
	}
	newestFirst(posts)
	return posts
}
