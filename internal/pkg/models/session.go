package models

import (
	"crypto/subtle"
	"time"
)

// SessionState represents the lifecycle state of an escort session
type SessionState string

const (
	SessionStateRequested SessionState = "REQUESTED"
	SessionStateAccepted  SessionState = "ACCEPTED"
	SessionStateActive    SessionState = "ACTIVE"
	SessionStateCompleted SessionState = "COMPLETED"
	SessionStateAborted   SessionState = "ABORTED"
)

var allowedTransitions = map[SessionState][]SessionState{
	SessionStateRequested: {SessionStateAccepted, SessionStateAborted},
	SessionStateAccepted:  {SessionStateActive, SessionStateAborted},
	SessionStateActive:    {SessionStateCompleted, SessionStateAborted},
	SessionStateCompleted: nil,
	SessionStateAborted:   nil,
}

// NonTerminalStates lists the states in which a session still binds its users
var NonTerminalStates = []SessionState{
	SessionStateRequested,
	SessionStateAccepted,
	SessionStateActive,
}

// Valid reports whether s is one of the five known states
func (s SessionState) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Terminal reports whether no further transition is possible from s
func (s SessionState) Terminal() bool {
	return s == SessionStateCompleted || s == SessionStateAborted
}

// CanTransitionTo reports whether to is an allowed successor of s
func (s SessionState) CanTransitionTo(to SessionState) bool {
	for _, next := range allowedTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Session is a bound pairing of two intents with per-side capability tokens
type Session struct {
	ID                 string       `json:"id" db:"id"`
	IntentAID          string       `json:"intent_a_id" db:"intent_a_id"`
	IntentBID          string       `json:"intent_b_id" db:"intent_b_id"`
	UserAID            string       `json:"user_a_id" db:"user_a_id"`
	UserBID            string       `json:"user_b_id" db:"user_b_id"`
	State              SessionState `json:"state" db:"state"`
	TokenA             string       `json:"-" db:"token_a"`
	TokenB             string       `json:"-" db:"token_b"`
	StartedAt          *time.Time   `json:"started_at" db:"started_at"`
	EndsAt             *time.Time   `json:"ends_at" db:"ends_at"`
	MaxDurationMinutes int          `json:"max_duration_minutes" db:"max_duration_minutes"`
	SOSAt              *time.Time   `json:"sos_at" db:"sos_at"`
	CreatedAt          time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at" db:"updated_at"`
}

// SideForToken resolves which side a presented token authorizes
func (s *Session) SideForToken(token string) (Side, bool) {
	if token == "" {
		return "", false
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.TokenA)) == 1 {
		return SideA, true
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.TokenB)) == 1 {
		return SideB, true
	}
	return "", false
}

// SideForUser resolves which side a user is on
func (s *Session) SideForUser(userID string) (Side, bool) {
	switch userID {
	case s.UserAID:
		return SideA, true
	case s.UserBID:
		return SideB, true
	}
	return "", false
}

// TokenFor returns the token of the given side
func (s *Session) TokenFor(side Side) string {
	if side == SideA {
		return s.TokenA
	}
	return s.TokenB
}

// Parties returns both user ids
func (s *Session) Parties() []string {
	return []string{s.UserAID, s.UserBID}
}

// Overrun reports whether an ACTIVE session has used up its time budget at now
func (s *Session) Overrun(now time.Time) bool {
	if s.State != SessionStateActive || s.StartedAt == nil {
		return false
	}
	deadline := s.StartedAt.Add(time.Duration(s.MaxDurationMinutes) * time.Minute)
	return !now.Before(deadline)
}

// RoutePoints is the origin/destination pair of one side's intent
type RoutePoints struct {
	Origin      Point `json:"origin"`
	Destination Point `json:"destination"`
}

// SessionView is a session as returned to one of its parties.
// Only the caller's own token is included.
type SessionView struct {
	*Session
	MySide  Side         `json:"my_side,omitempty"`
	MyToken string       `json:"my_token,omitempty"`
	RouteA  *RoutePoints `json:"route_a,omitempty"`
	RouteB  *RoutePoints `json:"route_b,omitempty"`
}

// NewSessionView builds the view of session for userID
func NewSessionView(session *Session, userID string) *SessionView {
	view := &SessionView{Session: session}
	if side, ok := session.SideForUser(userID); ok {
		view.MySide = side
		view.MyToken = session.TokenFor(side)
	}
	return view
}

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	IntentAID          string `json:"intent_a_id"`
	IntentBID          string `json:"intent_b_id"`
	MaxDurationMinutes int    `json:"max_duration_minutes"`
}

// SOSEvent is published when a party raises an emergency flag
type SOSEvent struct {
	SessionID string    `json:"session_id"`
	Side      Side      `json:"side"`
	UserAID   string    `json:"user_a_id"`
	UserBID   string    `json:"user_b_id"`
	State     string    `json:"state"`
	At        time.Time `json:"at"`
}
