package repositories

import (
	"testing"

	"github.com/anonto42/picgram/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateUser(t *testing.T) {
	s, clock := newTestStore(t)

	u, err := s.CreateUser(models.CreateUserRequest{
		Username:      "alice",
		DisplayName:   "Alice",
		Bio:           "hello",
		ProfilePicURL: "http://pic.test/a.png",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "Alice", u.DisplayName)
	assert.Equal(t, "hello", u.Bio)
	assert.Equal(t, "http://pic.test/a.png", u.ProfilePicURL)
	assert.Equal(t, clock.Now(), u.CreatedAt)
	assert.Zero(t, u.FollowerCount)
	assert.Zero(t, u.FollowingCount)
	assert.Zero(t, u.PostCount)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s, _ := newTestStore(t)
	mustUser(t, s, "alice")

	_, err := s.CreateUser(models.CreateUserRequest{Username: "alice", DisplayName: "Other"})
	assert.ErrorIs(t, err, ErrConflict)

	// comparison is case-sensitive
	_, err = s.CreateUser(models.CreateUserRequest{Username: "Alice", DisplayName: "Other"})
	assert.NoError(t, err)
}

func TestCreateUser_Blank(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.CreateUser(models.CreateUserRequest{Username: "  ", DisplayName: "x"})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = s.CreateUser(models.CreateUserRequest{Username: "x", DisplayName: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateUser_IDsAreNeverReused(t *testing.T) {
	s, _ := newTestStore(t)
	seen := map[string]bool{}
	for _, name := range []string{"a", "b", "c", "d"} {
		u := mustUser(t, s, name)
		assert.False(t, seen[u.ID])
		seen[u.ID] = true
	}
}

func TestGetUser_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.GetUser("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var serr *StoreError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "user", serr.Entity)
	assert.Equal(t, "missing", serr.ID)
	assert.Equal(t, "user not found (user missing)", err.Error())
}

func TestGetUser_ReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)
	alice := mustUser(t, s, "alice")

	u, err := s.GetUser(alice.ID)
	require.NoError(t, err)
	u.DisplayName = "mutated"

	again, err := s.GetUser(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", again.DisplayName)
}

func TestUpdateUser(t *testing.T) {
	s, _ := newTestStore(t)
	alice := mustUser(t, s, "alice")

	u, err := s.UpdateUser(alice.ID, models.UpdateUserRequest{Bio: strPtr("new bio")})
	require.NoError(t, err)
	assert.Equal(t, "new bio", u.Bio)
	assert.Equal(t, "alice", u.DisplayName, "nil fields are untouched")
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, alice.ID, u.ID)

	u, err = s.UpdateUser(alice.ID, models.UpdateUserRequest{
		DisplayName:   strPtr("Alice A."),
		ProfilePicURL: strPtr("http://pic.test/new.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice A.", u.DisplayName)
	assert.Equal(t, "http://pic.test/new.png", u.ProfilePicURL)
	assert.Equal(t, "new bio", u.Bio)

	_, err = s.UpdateUser(alice.ID, models.UpdateUserRequest{DisplayName: strPtr(" ")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.UpdateUser("missing", models.UpdateUserRequest{Bio: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProfile_Counts(t *testing.T) {
	s, _ := newTestStore(t)
	alice := mustUser(t, s, "alice")
	bob := mustUser(t, s, "bob")
	carol := mustUser(t, s, "carol")

	require.NoError(t, s.Follow(alice.ID, bob.ID))
	require.NoError(t, s.Follow(carol.ID, bob.ID))
	require.NoError(t, s.Follow(bob.ID, alice.ID))
	mustPost(t, s, bob.ID, "one")
	mustPost(t, s, bob.ID, "two")

	p, err := s.GetProfile(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.FollowerCount)
	assert.Equal(t, 1, p.FollowingCount)
	assert.Equal(t, 2, p.PostCount)

	_, err = s.GetProfile("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
