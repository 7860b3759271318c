package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/database"
	"github.com/piresc/lastmile/internal/pkg/models"
)

const intentColumns = `id, user_id, origin_lat, origin_lng, dest_lat, dest_lng,
	start_time, end_time, expires_at, created_at`

const sessionColumns = `id, intent_a_id, intent_b_id, user_a_id, user_b_id, state,
	token_a, token_b, started_at, ends_at, max_duration_minutes, sos_at, created_at, updated_at`

// IntentRepo implements the intent repository on PostgreSQL
type IntentRepo struct {
	db *sqlx.DB
}

// NewIntentRepository creates a new intent repository
func NewIntentRepository(db *sqlx.DB) *IntentRepo {
	return &IntentRepo{db: db}
}

// CreateIntent inserts intent while holding a transaction scoped advisory
// lock on the owner, so two concurrent creates for one user serialize and
// the second one observes the first.
func (r *IntentRepo) CreateIntent(ctx context.Context, intent *models.Intent) (*models.Intent, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, database.MapError(err, "begin transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, intent.UserID); err != nil {
		return nil, database.MapError(err, "lock intent owner")
	}

	var active int
	err = tx.GetContext(ctx, &active,
		`SELECT COUNT(*) FROM intents WHERE user_id = $1 AND expires_at > $2`,
		intent.UserID, intent.CreatedAt)
	if err != nil {
		return nil, database.MapError(err, "count active intents")
	}
	if active > 0 {
		return nil, apperror.Conflict("user already has an active intent")
	}

	dto := intent.ToDTO()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO intents (`+intentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		dto.ID, dto.UserID, dto.OriginLat, dto.OriginLng, dto.DestLat, dto.DestLng,
		dto.StartTime, dto.EndTime, dto.ExpiresAt, dto.CreatedAt)
	if err != nil {
		return nil, database.MapError(err, "insert intent")
	}

	if err := tx.Commit(); err != nil {
		return nil, database.MapError(err, "commit intent")
	}
	return intent, nil
}

// GetIntent retrieves an intent by ID
func (r *IntentRepo) GetIntent(ctx context.Context, intentID string) (*models.Intent, error) {
	var dto models.IntentDTO
	err := r.db.GetContext(ctx, &dto, `SELECT `+intentColumns+` FROM intents WHERE id = $1`, intentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("intent %s not found", intentID)
		}
		return nil, database.MapError(err, "get intent")
	}
	return dto.ToIntent(), nil
}

// ListActiveByOwner returns the unexpired intents of userID, newest first
func (r *IntentRepo) ListActiveByOwner(ctx context.Context, userID string, now time.Time) ([]*models.Intent, error) {
	var dtos []models.IntentDTO
	err := r.db.SelectContext(ctx, &dtos, `
		SELECT `+intentColumns+`
		FROM intents
		WHERE user_id = $1 AND expires_at > $2
		ORDER BY created_at DESC`, userID, now)
	if err != nil {
		return nil, database.MapError(err, "list intents")
	}

	out := make([]*models.Intent, 0, len(dtos))
	for i := range dtos {
		out = append(out, dtos[i].ToIntent())
	}
	return out, nil
}

// DeleteIntent removes the intent and the sessions referencing it in one
// transaction
func (r *IntentRepo) DeleteIntent(ctx context.Context, intentID string) ([]*models.Session, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, database.MapError(err, "begin transaction")
	}
	defer tx.Rollback()

	var removed []*models.Session
	err = tx.SelectContext(ctx, &removed, `
		DELETE FROM sessions
		WHERE intent_a_id = $1 OR intent_b_id = $1
		RETURNING `+sessionColumns, intentID)
	if err != nil {
		return nil, database.MapError(err, "delete sessions of intent")
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM intents WHERE id = $1`, intentID)
	if err != nil {
		return nil, database.MapError(err, "delete intent")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return nil, apperror.NotFound("intent %s not found", intentID)
	}

	if err := tx.Commit(); err != nil {
		return nil, database.MapError(err, "commit intent delete")
	}
	return removed, nil
}
