package repositories

import (
	"strings"

	"github.com/anonto42/picgram/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(req models.CreateUserRequest) (*models.UserProfile, error)
	GetUser(id string) (*models.User, error)
	GetProfile(id string) (*models.UserProfile, error)
	UpdateUser(id string, req models.UpdateUserRequest) (*models.UserProfile, error)
}

// CreateUser registers a new user. Usernames are unique for the lifetime of the store
// and compared byte for byte.
func (s *MemoryStore) CreateUser(req models.CreateUserRequest) (*models.UserProfile, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, invalid("user", "username must not be blank")
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, invalid("user", "display name must not be blank")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.usernames[req.Username]; taken {
		return nil, conflict("user", "", "username already taken")
	}

	user := &models.User{
		ID:            s.newID(),
		Username:      req.Username,
		DisplayName:   req.DisplayName,
		Bio:           req.Bio,
		ProfilePicURL: req.ProfilePicURL,
		CreatedAt:     s.now(),
		Seq:           s.nextSeq(),
	}
	s.users[user.ID] = user
	s.usernames[user.Username] = user.ID

	return s.profileLocked(user), nil
}

// GetUser returns a copy of the user record.
func (s *MemoryStore) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	u := *user
	return &u, nil
}

// GetProfile returns the user with follower, following and post counts.
func (s *MemoryStore) GetProfile(id string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	return s.profileLocked(user), nil
}

// UpdateUser changes the display name, bio and profile picture. Only non-nil fields are applied.
func (s *MemoryStore) UpdateUser(id string, req models.UpdateUserRequest) (*models.UserProfile, error) {
	if req.DisplayName != nil && strings.TrimSpace(*req.DisplayName) == "" {
		return nil, invalid("user", "display name must not be blank")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, notFound("user", id)
	}
	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.ProfilePicURL != nil {
		user.ProfilePicURL = *req.ProfilePicURL
	}
	return s.profileLocked(user), nil
}

func (s *MemoryStore) profileLocked(user *models.User) *models.UserProfile {
	return &models.UserProfile{
		User:           *user,
		FollowerCount:  len(s.followers[user.ID]),
		FollowingCount: len(s.following[user.ID]),
		PostCount:      len(s.userPosts[user.ID]),
	}
}

// profilesLocked resolves ids to profiles, skipping any that no longer exist.
func (s *MemoryStore) profilesLocked(ids []string) []models.UserProfile {
	out := make([]models.UserProfile, 0, len(ids))
	for _, id := range ids {
		if user, ok := s.users[id]; ok {
			out = append(out, *s.profileLocked(user))
		}
	}
	return out
}
