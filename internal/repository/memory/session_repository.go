package memory

import (
	"time"

	"dr-dine-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps per-session assistant state in memory. Sessions
// expire after an hour of inactivity; expired entries are purged every ten
// minutes.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(1*time.Hour, 10*time.Minute),
	}
}

func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
