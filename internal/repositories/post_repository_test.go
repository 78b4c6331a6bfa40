package repositories

import (
	"testing"
	"time"

	"github.com/anonto42/picgram/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	s, _ := newTestStore(t)
	alice := mustUser(t, s, "alice")

	p, err := s.CreatePost(models.CreatePostRequest{
		UserID:    alice.ID,
		MediaURL:  "http://vid.test/v.mp4",
		MediaType: models.MediaVideo,
		Caption:   "#a #a #A",
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, p.UserID)
	assert.Equal(t, models.MediaVideo, p.MediaType)
	assert.Equal(t, []string{"a", "A"}, p.Hashtags)
	assert.Zero(t, p.LikeCount)
	assert.Zero(t, p.CommentCount)

	got, err := s.GetPost(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestCreatePost_NoTags(t *testing.T) {
	s, _ := newTestStore(t)
	alice := mustUser(t, s, "alice")

	p := mustPost(t, s, alice.ID, "no tags here")
	assert.NotNil(t, p.Hashtags)
	assert.Empty(t, p.Hashtags)

	ids := postIDs(s.Explore(20))
	assert.Contains(t, ids, p.ID)
}

func TestCreatePost_Errors(t *testing.T) {
	s, _ := newTestStore(t)
	alice := mustUser(t, s, "alice")

	_, err := s.CreatePost(models.CreatePostRequest{UserID: "missing", MediaURL: "u", MediaType: models.MediaImage})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.CreatePost(models.CreatePostRequest{UserID: alice.ID, MediaURL: "u", MediaType: "gif"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreatePost(models.CreatePostRequest{UserID: alice.ID, MediaURL: " ", MediaType: models.MediaImage})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetPost_ReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	alice := mustUser(t, s, "alice")
	p := mustPost(t, s, alice.ID, "#x #y")

	p.Hashtags[0] = "mutated"

	got, err := s.GetPost(p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got.Hashtags)
	assert.Len(t, s.ExploreByHashtag("x"), 1)
}

func TestGetPostsByUserID_NewestFirst(t *testing.T) {
	s, clock := newTestStore(t)
	alice := mustUser(t, s, "alice")
	bob := mustUser(t, s, "bob")

	first := mustPost(t, s, alice.ID, "first")
	clock.Advance(time.Second)
	mustPost(t, s, bob.ID, "bob's")
	second := mustPost(t, s, alice.ID, "second")
	// same timestamp as second: creation order decides
	third := mustPost(t, s, alice.ID, "third")

	posts, err := s.GetPostsByUserID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, postIDs(posts))

	_, err = s.GetPostsByUserID("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	carol := mustUser(t, s, "carol")
	posts, err = s.GetPostsByUserID(carol.ID)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestDeletePost_Cascades(t *testing.T) {
	s, _ := newTestStore(t)
	alice := mustUser(t, s, "alice")
	bob := mustUser(t, s, "bob")

	post := mustPost(t, s, alice.ID, "#go #solo")
	other := mustPost(t, s, alice.ID, "#go")
	require.NoError(t, s.Like(post.ID, bob.ID))
	require.NoError(t, s.Like(other.ID, bob.ID))
	c1, err := s.CreateComment(post.ID, models.CreateCommentRequest{UserID: bob.ID, Text: "nice"})
	require.NoError(t, err)
	c2, err := s.CreateComment(post.ID, models.CreateCommentRequest{UserID: alice.ID, Text: "thanks"})
	require.NoError(t, err)
	kept, err := s.CreateComment(other.ID, models.CreateCommentRequest{UserID: bob.ID, Text: "also nice"})
	require.NoError(t, err)

	require.NoError(t, s.DeletePost(post.ID))

	_, err = s.GetPost(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetCommentsByPostID(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.GetLikers(post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	for _, c := range []*models.Comment{c1, c2} {
		_, err = s.GetComment(c.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	}

	assert.Equal(t, []string{other.ID}, postIDs(s.ExploreByHashtag("go")))
	assert.Empty(t, s.ExploreByHashtag("solo"))
	for _, tc := range s.TrendingHashtags() {
		assert.NotEqual(t, "solo", tc.Tag, "empty bucket should be dropped")
	}

	profile, err := s.GetProfile(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.PostCount)

	// the sibling post is untouched
	got, err := s.GetPost(other.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikeCount)
	assert.Equal(t, 1, got.CommentCount)
	_, err = s.GetComment(kept.ID)
	assert.NoError(t, err)

	s.mu.RLock()
	_, hasLikes := s.likes[post.ID]
	_, hasComments := s.postComments[post.ID]
	s.mu.RUnlock()
	assert.False(t, hasLikes)
	assert.False(t, hasComments)
}

func TestDeletePost_NotFound(t *testing.T) {
	s, _ := newTestStore(t)
	alice := mustUser(t, s, "alice")
	post := mustPost(t, s, alice.ID, "x")

	assert.ErrorIs(t, s.DeletePost("missing"), ErrNotFound)
	require.NoError(t, s.DeletePost(post.ID))
	assert.ErrorIs(t, s.DeletePost(post.ID), ErrNotFound)
}

func postIDs(posts []models.PostView) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}
