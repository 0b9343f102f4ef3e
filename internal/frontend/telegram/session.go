package telegram

import (
	"sync"

	"github.com/reelgrid/reelgrid/internal/browse"
)

// sessionManager manages per-chat browsing state and access control.
type sessionManager struct {
	mu       sync.Mutex
	sessions map[int64]*browse.State
	allowed  map[int64]bool // nil or empty = allow all
}

// newSessionManager creates a session manager.
// If allowedUserIDs is empty, all users are allowed.
func newSessionManager(allowedUserIDs []int64) *sessionManager {
	allowed := make(map[int64]bool, len(allowedUserIDs))
	for _, id := range allowedUserIDs {
		allowed[id] = true
	}
	return &sessionManager{
		sessions: make(map[int64]*browse.State),
		allowed:  allowed,
	}
}

// isAllowed checks if a user is authorized to use the bot.
func (sm *sessionManager) isAllowed(userID int64) bool {
	if len(sm.allowed) == 0 {
		return true
	}
	return sm.allowed[userID]
}

// getOrCreate returns the browsing state for a chat, creating it on first use.
func (sm *sessionManager) getOrCreate(chatID int64) *browse.State {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if s, ok := sm.sessions[chatID]; ok {
		return s
	}
	s := browse.NewState()
	sm.sessions[chatID] = s
	return s
}

// reset clears a chat's session, returning it to trending page 1.
func (sm *sessionManager) reset(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, chatID)
}
