package repositories

import (
	"log/slog"
	"sync"
	"time"

	"github.com/anonto42/picgram/internal/models"
	"github.com/google/uuid"
)

const (
	DefaultExploreLimit = 20
	MaxExploreLimit     = 100
	DefaultTrendingSize = 10
)

// Options tunes a MemoryStore. Zero values fall back to the package defaults.
type Options struct {
	ExploreDefaultLimit int
	ExploreMaxLimit     int
	TrendingSize        int
	Logger              *slog.Logger
	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

// MemoryStore is the process-wide social graph: entity tables plus the relationship
// indices derived from them. All mutations take the write lock, all queries the read
// lock, so a reader never sees half of a cascading delete.
type MemoryStore struct {
	mu sync.RWMutex

	users    map[string]*models.User
	posts    map[string]*models.Post
	comments map[string]*models.Comment

	usernames    map[string]string     // username -> user id
	following    map[string]stampedSet // user -> followees
	followers    map[string]stampedSet // user -> followers
	userPosts    map[string]stampedSet // user -> owned posts
	likes        map[string]stampedSet // post -> likers
	postComments map[string][]string   // post -> comment ids, oldest first
	hashtagPosts map[string]stampedSet // tag -> posts

	seq uint64

	exploreDefault int
	exploreMax     int
	trendingSize   int
	logger         *slog.Logger
	now            func() time.Time
	newID          func() string
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts Options) *MemoryStore {
	s := &MemoryStore{
		exploreDefault: opts.ExploreDefaultLimit,
		exploreMax:     opts.ExploreMaxLimit,
		trendingSize:   opts.TrendingSize,
		logger:         opts.Logger,
		now:            opts.Now,
		newID:          opts.NewID,
	}
	if s.exploreDefault <= 0 {
		s.exploreDefault = DefaultExploreLimit
	}
	if s.exploreMax <= 0 {
		s.exploreMax = MaxExploreLimit
	}
	if s.exploreDefault > s.exploreMax {
		s.exploreDefault = s.exploreMax
	}
	if s.trendingSize <= 0 {
		s.trendingSize = DefaultTrendingSize
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.NewString() }
	}
	s.clear()
	return s
}

// Reset wipes every table and index. It excludes all other operations while it runs.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clear()
	s.logger.Info("store reset")
}

// clear must be called with the write lock held (or before the store is shared).
// The sequence counter is not rewound so stamps stay unique across resets.
func (s *MemoryStore) clear() {
	s.users = make(map[string]*models.User)
	s.posts = make(map[string]*models.Post)
	s.comments = make(map[string]*models.Comment)
	s.usernames = make(map[string]string)
	s.following = make(map[string]stampedSet)
	s.followers = make(map[string]stampedSet)
	s.userPosts = make(map[string]stampedSet)
	s.likes = make(map[string]stampedSet)
	s.postComments = make(map[string][]string)
	s.hashtagPosts = make(map[string]stampedSet)
}

func (s *MemoryStore) nextSeq() uint64 {
	s.seq++
	return s.seq
}

var (
	_ UserRepository    = (*MemoryStore)(nil)
	_ PostRepository    = (*MemoryStore)(nil)
	_ CommentRepository = (*MemoryStore)(nil)
	_ FollowRepository  = (*MemoryStore)(nil)
	_ LikeRepository    = (*MemoryStore)(nil)
	_ ExploreRepository = (*MemoryStore)(nil)
)
