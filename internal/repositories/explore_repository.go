package repositories

import (
	"sort"

	"github.com/anonto42/picgram/internal/models"
)

// ExploreRepository groups the derived, read-only views: the personal feed and the
// global discovery lists.
type ExploreRepository interface {
	Feed(userID string) ([]models.PostView, error)
	Explore(limit int) []models.PostView
	ExploreByHashtag(tag string) []models.PostView
	TrendingHashtags() []models.HashtagCount
}

// Feed returns the posts of everyone userID follows, newest first. The user's own
// posts never appear, even if the follow graph were to contain a self edge.
func (s *MemoryStore) Feed(userID string) ([]models.PostView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[userID]; !ok {
		return nil, notFound("user", userID)
	}

	var posts []*models.Post
	for followee := range s.following[userID] {
		if followee == userID {
			continue
		}
		for id := range s.userPosts[followee] {
			if p, ok := s.posts[id]; ok {
				posts = append(posts, p)
			}
		}
	}
	newestFirst(posts)
	return s.viewsLocked(posts), nil
}

// Explore returns the most recent posts across the store. A non-positive limit means
// the default; anything above the ceiling is clamped.
func (s *MemoryStore) Explore(limit int) []models.PostView {
	limit = s.exploreLimit(limit)

	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]*models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	newestFirst(posts)
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return s.viewsLocked(posts)
}

func (s *MemoryStore) exploreLimit(limit int) int {
	switch {
	case limit <= 0:
		return s.exploreDefault
	case limit > s.exploreMax:
		return s.exploreMax
	default:
		return limit
	}
}

// ExploreByHashtag looks tag up exactly as given; "Go" and "go" are different tags.
func (s *MemoryStore) ExploreByHashtag(tag string) []models.PostView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.viewsLocked(s.postsLocked(s.hashtagPosts[tag]))
}

// TrendingHashtags ranks tags by post count, highest first, breaking ties by tag in
// ascending byte order.
func (s *MemoryStore) TrendingHashtags() []models.HashtagCount {
	s.mu.RLock()
	counts := make([]models.HashtagCount, 0, len(s.hashtagPosts))
	for tag, ids := range s.hashtagPosts {
		if len(ids) == 0 {
			continue
		}
		counts = append(counts, models.HashtagCount{Tag: tag, Count: len(ids)})
	}
	s.mu.RUnlock()

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Tag < counts[j].Tag
	})
	if len(counts) > s.trendingSize {
		counts = counts[:s.trendingSize]
	}
	return counts
}
