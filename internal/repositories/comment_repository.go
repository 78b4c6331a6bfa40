package repositories

import (
	"strings"

	"github.com/anonto42/picgram/internal/models"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(postID string, req models.CreateCommentRequest) (*models.Comment, error)
	GetComment(id string) (*models.Comment, error)
	GetCommentsByPostID(postID string) ([]models.Comment, error)
	DeleteComment(id string) error
}

// CreateComment appends a comment to the post's comment list.
func (s *MemoryStore) CreateComment(postID string, req models.CreateCommentRequest) (*models.Comment, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, invalid("comment", "comment text must not be blank")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[postID]; !ok {
		return nil, notFound("post", postID)
	}
	if _, ok := s.users[req.UserID]; !ok {
		return nil, notFound("user", req.UserID)
	}

	comment := &models.Comment{
		ID:        s.newID(),
		UserID:    req.UserID,
		PostID:    postID,
		Text:      req.Text,
		CreatedAt: s.now(),
		Seq:       s.nextSeq(),
	}
	s.comments[comment.ID] = comment
	s.postComments[postID] = append(s.postComments[postID], comment.ID)

	c := *comment
	return &c, nil
}

// GetComment retrieves a comment by ID
func (s *MemoryStore) GetComment(id string) (*models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comment, ok := s.comments[id]
	if !ok {
		return nil, notFound("comment", id)
	}
	c := *comment
	return &c, nil
}

// GetCommentsByPostID returns the post's comments oldest first.
func (s *MemoryStore) GetCommentsByPostID(postID string) ([]models.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.posts[postID]; !ok {
		return nil, notFound("post", postID)
	}
	ids := s.postComments[postID]
	out := make([]models.Comment, 0, len(ids))
	for _, id := range ids {
		if c, ok := s.comments[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

// DeleteComment removes the comment and splices it out of its post's list,
// leaving the remaining comments in their original order.
func (s *MemoryStore) DeleteComment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return notFound("comment", id)
	}

	ids := s.postComments[comment.PostID]
	for i, cid := range ids {
		if cid == id {
			s.postComments[comment.PostID] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	if len(s.postComments[comment.PostID]) == 0 {
		delete(s.postComments, comment.PostID)
	}
	delete(s.comments, id)
	return nil
}
