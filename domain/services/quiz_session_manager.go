package services

import (
	"sync"
	"time"

	"tokenbot/domain/entities"

	"github.com/google/uuid"
)

// QuizSessionManager owns the live-session table: at most one session per
// guild, inserted on start and removed on resolution. All mutations happen
// under one lock, so the answer race and the expiry timer observe a single
// point of truth: whoever removes the session performs the side effects,
// and every later event is a no-op.
type QuizSessionManager struct {
	mu       sync.Mutex
	sessions map[int64]*entities.QuizSession
}

// NewQuizSessionManager creates an empty session manager
func NewQuizSessionManager() *QuizSessionManager {
	return &QuizSessionManager{
		sessions: make(map[int64]*entities.QuizSession),
	}
}

// StartSession opens a session for the guild. Returns ErrQuizAlreadyActive
// if one is already live.
func (m *QuizSessionManager) StartSession(guildID, starterDiscordID int64, question *entities.QuizQuestion) (*entities.QuizSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, live := m.sessions[guildID]; live {
		return nil, entities.ErrQuizAlreadyActive
	}

	session := &entities.QuizSession{
		ID:               uuid.NewString(),
		GuildID:          guildID,
		StarterDiscordID: starterDiscordID,
		Question:         question.Question,
		Answer:           question.Answer,
		CreatedAt:        time.Now(),
	}
	m.sessions[guildID] = session
	return session, nil
}

// ActiveSession returns the live session for the guild, or nil
func (m *QuizSessionManager) ActiveSession(guildID int64) *entities.QuizSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[guildID]
}

// ClaimWin resolves the live session if the submission matches its answer.
// The first matching caller removes the session and gets the resolution;
// concurrent matches and anything after resolution return nil.
func (m *QuizSessionManager) ClaimWin(guildID, userDiscordID int64, submission string) *entities.QuizResolution {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, live := m.sessions[guildID]
	if !live || !session.MatchesAnswer(submission) {
		return nil
	}

	delete(m.sessions, guildID)
	return &entities.QuizResolution{
		Session:         session,
		Kind:            entities.QuizResolvedByAnswer,
		WinnerDiscordID: userDiscordID,
		ResolvedAt:      time.Now(),
	}
}

// Abort removes the identified session without resolving it. Used when
// persistence fails after a start already inserted the session, so the guild
// is not stuck behind a session nobody was told about. A stale abort (the
// session already resolved, or a newer one replaced it) is a no-op.
func (m *QuizSessionManager) Abort(guildID int64, sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, live := m.sessions[guildID]
	if !live || session.ID != sessionID {
		return false
	}

	delete(m.sessions, guildID)
	return true
}

// Reinstate puts a claimed session back into the live table. Used when
// persistence fails after ClaimWin already removed the session, so the quiz
// stays answerable and its expiry timer can still resolve it. Refused if a
// newer session has since gone live for the guild.
func (m *QuizSessionManager) Reinstate(session *entities.QuizSession) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, live := m.sessions[session.GuildID]; live {
		return false
	}

	m.sessions[session.GuildID] = session
	return true
}

// ClaimTimeout resolves the session by expiry if the identified session is
// still live. A stale timer firing after an answer already resolved the
// session (or after a newer session started) returns nil.
func (m *QuizSessionManager) ClaimTimeout(guildID int64, sessionID string) *entities.QuizResolution {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, live := m.sessions[guildID]
	if !live || session.ID != sessionID {
		return nil
	}

	delete(m.sessions, guildID)
	return &entities.QuizResolution{
		Session:    session,
		Kind:       entities.QuizResolvedByTimeout,
		ResolvedAt: time.Now(),
	}
}
