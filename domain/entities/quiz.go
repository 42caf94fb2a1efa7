package entities

import (
	"strings"
	"time"
)

// QuizQuestion is a trivia question from the persisted question bank
type QuizQuestion struct {
	ID       int64  `db:"id"`
	Question string `db:"question"`
	Answer   string `db:"answer"`
}

// QuizSession is a live trivia challenge scoped to one guild. At most one
// session exists per guild at any time; it resolves on the first matching
// answer or on timeout, whichever comes first.
type QuizSession struct {
	ID               string
	GuildID          int64
	StarterDiscordID int64
	Question         string
	Answer           string
	CreatedAt        time.Time
}

// MatchesAnswer reports whether a submission answers the question.
// Matching is lenient: trimmed, case-insensitive, and accepting substring
// containment in either direction ("I think it's paris" matches "paris").
func (q *QuizSession) MatchesAnswer(submission string) bool {
	candidate := strings.ToLower(strings.TrimSpace(submission))
	expected := strings.ToLower(strings.TrimSpace(q.Answer))
	if candidate == "" || expected == "" {
		return false
	}
	return candidate == expected ||
		strings.Contains(candidate, expected) ||
		strings.Contains(expected, candidate)
}

// QuizResolutionKind distinguishes the two terminal transitions of a session
type QuizResolutionKind string

const (
	QuizResolvedByAnswer  QuizResolutionKind = "answer"
	QuizResolvedByTimeout QuizResolutionKind = "timeout"
)

// QuizResolution records how a session ended
type QuizResolution struct {
	Session         *QuizSession
	Kind            QuizResolutionKind
	WinnerDiscordID int64 // set only for QuizResolvedByAnswer
	ResolvedAt      time.Time
}
