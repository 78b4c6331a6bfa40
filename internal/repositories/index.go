package repositories

import (
	"sort"

	"github.com/anonto42/picgram/internal/models"
)

// stampedSet is a set of ids that remembers when each member joined, so it can be
// listed in insertion order without paying for ordered removal.
type stampedSet map[string]uint64

func (s stampedSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

// ordered returns the members oldest-first.
func (s stampedSet) ordered() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return s[ids[i]] < s[ids[j]] })
	return ids
}

// addTo inserts id into idx[key], creating the bucket on first use.
func addTo(idx map[string]stampedSet, key, id string, stamp uint64) {
	set, ok := idx[key]
	if !ok {
		set = make(stampedSet)
		idx[key] = set
	}
	set[id] = stamp
}

// removeFrom deletes id from idx[key] and drops the bucket once it is empty.
func removeFrom(idx map[string]stampedSet, key, id string) {
	set, ok := idx[key]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(idx, key)
	}
}

// newestFirst orders posts by creation time descending; equal timestamps fall back
// to the creation sequence so the later post wins.
func newestFirst(posts []*models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Seq > b.Seq
	})
}
