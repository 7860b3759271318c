package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/database"
	"github.com/piresc/lastmile/internal/pkg/models"
)

// MatchRepo implements the match repository on PostgreSQL
type MatchRepo struct {
	db *sqlx.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *sqlx.DB) *MatchRepo {
	return &MatchRepo{db: db}
}

type sourceRow struct {
	models.IntentDTO
	Name       *string `db:"name"`
	AvatarURL  *string `db:"avatar_url"`
	HasVehicle bool    `db:"has_vehicle"`
}

// GetSource loads the source intent and its owner
func (r *MatchRepo) GetSource(ctx context.Context, intentID string) (*models.Intent, *models.UserProfile, error) {
	var row sourceRow
	err := r.db.GetContext(ctx, &row, `
		SELECT i.id, i.user_id, i.origin_lat, i.origin_lng, i.dest_lat, i.dest_lng,
		       i.start_time, i.end_time, i.expires_at, i.created_at,
		       u.name, u.avatar_url, u.has_vehicle
		FROM intents i
		JOIN users u ON u.id = i.user_id
		WHERE i.id = $1`, intentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, apperror.NotFound("intent %s not found", intentID)
		}
		return nil, nil, database.MapError(err, "load source intent")
	}

	owner := &models.UserProfile{
		ID:         row.UserID,
		Name:       row.Name,
		AvatarURL:  row.AvatarURL,
		HasVehicle: row.HasVehicle,
	}
	return row.IntentDTO.ToIntent(), owner, nil
}

// FindCandidates runs the candidate pool query. The origin filter is a
// bounding box; callers apply the exact radius.
// haversineMeters is the great-circle distance from the intent origin to
// ($13, $14). The bounding box above only narrows the scan.
const haversineMeters = `(6371000 * 2 * asin(least(1, sqrt(
		power(sin(radians(i.origin_lat - $13::float8) / 2), 2) +
		cos(radians($13::float8)) * cos(radians(i.origin_lat)) *
		power(sin(radians(i.origin_lng - $14::float8) / 2), 2)))))`

func (r *MatchRepo) FindCandidates(ctx context.Context, q models.CandidateQuery) ([]*models.CandidateRow, error) {
	nonTerminal := make([]string, 0, len(models.NonTerminalStates))
	for _, s := range models.NonTerminalStates {
		nonTerminal = append(nonTerminal, string(s))
	}

	var rows []*models.CandidateRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT i.id, i.user_id, u.name, u.avatar_url, u.has_vehicle,
		       i.origin_lat, i.origin_lng, i.dest_lat, i.dest_lng, i.created_at
		FROM intents i
		JOIN users u ON u.id = i.user_id
		WHERE i.id <> $1
		  AND i.user_id <> $2
		  AND i.expires_at > $3
		  AND i.origin_lat BETWEEN $4 AND $5
		  AND i.origin_lng BETWEEN $6 AND $7
		  AND NOT EXISTS (
		      SELECT 1 FROM sessions s
		      WHERE s.state = ANY($8)
		        AND (s.intent_a_id = i.id OR s.intent_b_id = i.id))
		  AND ($9::timestamptz IS NULL OR $10::timestamptz IS NULL
		       OR i.start_time IS NULL OR i.end_time IS NULL
		       OR (i.start_time <= $10 AND i.end_time >= $9))
		  AND (NOT $11 OR u.has_vehicle = false)
		  AND ($12::timestamptz IS NULL OR i.created_at >= $12)
		  AND `+haversineMeters+` <= $15
		ORDER BY i.created_at DESC
		LIMIT $16`,
		q.SourceIntentID, q.SourceUserID, q.Now,
		q.MinLat, q.MaxLat, q.MinLng, q.MaxLng,
		pq.Array(nonTerminal),
		q.WindowStart, q.WindowEnd,
		q.WalkersOnly,
		q.CreatedAfter,
		q.Center.Lat, q.Center.Lng, q.RadiusM,
		q.Limit)
	if err != nil {
		return nil, database.MapError(err, "query match candidates")
	}
	return rows, nil
}

// MeanRatings aggregates received scores for userIDs
func (r *MatchRepo) MeanRatings(ctx context.Context, userIDs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		RateeID string  `db:"ratee_id"`
		Avg     float64 `db:"avg_score"`
	}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT ratee_id, AVG(score)::float8 AS avg_score
		FROM ratings
		WHERE ratee_id = ANY($1)
		GROUP BY ratee_id`, pq.Array(userIDs))
	if err != nil {
		return nil, database.MapError(err, "aggregate ratings")
	}

	for _, row := range rows {
		out[row.RateeID] = row.Avg
	}
	return out, nil
}
