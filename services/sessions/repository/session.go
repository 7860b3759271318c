package repository

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/database"
	"github.com/piresc/lastmile/internal/pkg/models"
)

const sessionColumns = `id, intent_a_id, intent_b_id, user_a_id, user_b_id, state,
	token_a, token_b, started_at, ends_at, max_duration_minutes, sos_at, created_at, updated_at`

// SessionRepo implements the session repository on PostgreSQL
type SessionRepo struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sqlx.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

func nonTerminalStates() pq.StringArray {
	out := make(pq.StringArray, 0, len(models.NonTerminalStates))
	for _, s := range models.NonTerminalStates {
		out = append(out, string(s))
	}
	return out
}

// CreateSession inserts a session after checking, under advisory locks on
// both users, that neither is already bound to a live session.
func (r *SessionRepo) CreateSession(ctx context.Context, session *models.Session) (*models.Session, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, database.MapError(err, "begin transaction")
	}
	defer tx.Rollback()

	users := []string{session.UserAID, session.UserBID}
	sort.Strings(users)
	for _, userID := range users {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, userID); err != nil {
			return nil, database.MapError(err, "lock session party")
		}
	}

	var busy int
	err = tx.GetContext(ctx, &busy, `
		SELECT COUNT(*) FROM sessions
		WHERE state = ANY($1)
		  AND (user_a_id = ANY($2) OR user_b_id = ANY($2))`,
		nonTerminalStates(), pq.Array(users))
	if err != nil {
		return nil, database.MapError(err, "count live sessions")
	}
	if busy > 0 {
		return nil, apperror.Conflict("a party already has a session in progress")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		session.ID, session.IntentAID, session.IntentBID, session.UserAID, session.UserBID, session.State,
		session.TokenA, session.TokenB, session.StartedAt, session.EndsAt, session.MaxDurationMinutes,
		session.SOSAt, session.CreatedAt, session.UpdatedAt)
	if err != nil {
		return nil, database.MapError(err, "insert session")
	}

	if err := tx.Commit(); err != nil {
		return nil, database.MapError(err, "commit session")
	}
	return session, nil
}

// GetSession retrieves a session by ID
func (r *SessionRepo) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	var s models.Session
	err := r.db.GetContext(ctx, &s, `SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("session %s not found", sessionID)
		}
		return nil, database.MapError(err, "get session")
	}
	return &s, nil
}

// ListActiveByUser returns the non-terminal sessions userID is a party of
func (r *SessionRepo) ListActiveByUser(ctx context.Context, userID string) ([]*models.Session, error) {
	var out []*models.Session
	err := r.db.SelectContext(ctx, &out, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE (user_a_id = $1 OR user_b_id = $1) AND state = ANY($2)
		ORDER BY created_at DESC`, userID, nonTerminalStates())
	if err != nil {
		return nil, database.MapError(err, "list sessions")
	}
	return out, nil
}

// GetRoutePoints loads origin and destination of the given intents
func (r *SessionRepo) GetRoutePoints(ctx context.Context, intentIDs []string) (map[string]models.RoutePoints, error) {
	out := make(map[string]models.RoutePoints, len(intentIDs))
	if len(intentIDs) == 0 {
		return out, nil
	}

	var rows []models.IntentDTO
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, origin_lat, origin_lng, dest_lat, dest_lng
		FROM intents
		WHERE id = ANY($1)`, pq.Array(intentIDs))
	if err != nil {
		return nil, database.MapError(err, "load route points")
	}

	for _, row := range rows {
		out[row.ID] = models.RoutePoints{
			Origin:      models.Point{Lat: row.OriginLat, Lng: row.OriginLng},
			Destination: models.Point{Lat: row.DestLat, Lng: row.DestLng},
		}
	}
	return out, nil
}

// UpdateState applies a transition only if the row is still in state from.
// Entering ACTIVE stamps started_at and the scheduled end once.
func (r *SessionRepo) UpdateState(ctx context.Context, sessionID string, from, to models.SessionState, now time.Time) (*models.Session, error) {
	var s models.Session
	err := r.db.GetContext(ctx, &s, `
		UPDATE sessions
		SET state = $3::text,
		    started_at = CASE WHEN $3::text = 'ACTIVE' THEN COALESCE(started_at, $4::timestamptz) ELSE started_at END,
		    ends_at = CASE WHEN $3::text = 'ACTIVE'
		        THEN COALESCE(ends_at, COALESCE(started_at, $4::timestamptz) + make_interval(mins => max_duration_minutes))
		        ELSE ends_at END,
		    updated_at = $4::timestamptz
		WHERE id = $1 AND state = $2
		RETURNING `+sessionColumns,
		sessionID, from, to, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.Conflict("session %s is no longer %s", sessionID, from)
		}
		return nil, database.MapError(err, "update session state")
	}
	return &s, nil
}

// MarkSOS stamps sos_at
func (r *SessionRepo) MarkSOS(ctx context.Context, sessionID string, now time.Time) (*models.Session, error) {
	var s models.Session
	err := r.db.GetContext(ctx, &s, `
		UPDATE sessions SET sos_at = $2, updated_at = $2
		WHERE id = $1
		RETURNING `+sessionColumns, sessionID, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("session %s not found", sessionID)
		}
		return nil, database.MapError(err, "mark sos")
	}
	return &s, nil
}

// ListOverrun returns ACTIVE sessions past their time budget
func (r *SessionRepo) ListOverrun(ctx context.Context, now time.Time) ([]*models.Session, error) {
	var out []*models.Session
	err := r.db.SelectContext(ctx, &out, `
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE state = 'ACTIVE'
		  AND started_at IS NOT NULL
		  AND started_at + make_interval(mins => max_duration_minutes) <= $1
		ORDER BY started_at`, now)
	if err != nil {
		return nil, database.MapError(err, "list overrun sessions")
	}
	return out, nil
}

// CreateRating stores a rating. A second rating by the same rater for the
// same session is a Conflict.
func (r *SessionRepo) CreateRating(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ratings (id, rater_id, ratee_id, session_id, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rating.ID, rating.RaterID, rating.RateeID, rating.SessionID, rating.Score, rating.CreatedAt)
	if err != nil {
		return nil, database.MapError(err, "insert rating")
	}
	return rating, nil
}
