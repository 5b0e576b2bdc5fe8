package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/job-board/internal/listview"
)

const sessionCookie = "jobboard_session"

// session is one visitor's controller
type session struct {
	ctrl     *listview.Controller
	mount    sync.Once
	lastSeen time.Time
}

// ensureMounted runs the initial fetch exactly once
func (s *session) ensureMounted(ctx context.Context) {
	s.mount.Do(func() {
		s.ctrl.Mount(ctx)
	})
}

// sessionStore maps session ids to controllers; idle sessions are evicted lazily
type sessionStore struct {
	mu    sync.Mutex
	items map[string]*session
	ttl   time.Duration
	now   func() time.Time
	newID func() string

	newController func() *listview.Controller
}

func newSessionStore(ttl time.Duration, newController func() *listview.Controller) *sessionStore {
	return &sessionStore{
		items:         make(map[string]*session),
		ttl:           ttl,
		now:           time.Now,
		newID:         uuid.NewString,
		newController: newController,
	}
}

// lookup returns the live session for id and refreshes its idle timer
func (s *sessionStore) lookup(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.expired(sess, now) {
		delete(s.items, id)
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

// create starts a new session after evicting idle ones
func (s *sessionStore) create() (string, *session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, sess := range s.items {
		if s.expired(sess, now) {
			delete(s.items, id)
		}
	}

	id := s.newID()
	sess := &session{ctrl: s.newController(), lastSeen: now}
	s.items[id] = sess
	return id, sess
}

func (s *sessionStore) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
