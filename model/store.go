package model

import (
	"sync"
	"time"
)

// Store is the process-wide mapping from call SID to session. Sessions
// are created lazily on first reference and never deleted; they are
// abandoned when the process ends. Mutations are serialized under a
// single lock, which is plenty at call-center volumes.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// GetOrCreate returns a snapshot of the session for callSID, creating
// an empty record if this is the first reference. Looking up an
// unknown call id is never an error.
func (st *Store) GetOrCreate(callSID string) Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return *st.getOrCreateLocked(callSID)
}

// Update applies mutate to the session for callSID under the store
// lock, creating the session first if needed, and returns the
// resulting snapshot.
func (st *Store) Update(callSID string, mutate func(*Session)) Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := st.getOrCreateLocked(callSID)
	mutate(s)
	s.UpdatedAt = time.Now()
	return *s
}

// Len reports the number of sessions held.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) getOrCreateLocked(callSID string) *Session {
	if s, ok := st.sessions[callSID]; ok {
		return s
	}
	now := time.Now()
	s := &Session{
		CallSID:   callSID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	st.sessions[callSID] = s
	return s
}
