package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/logger"
	"github.com/piresc/lastmile/internal/pkg/metrics"
	"github.com/piresc/lastmile/internal/pkg/models"
	"github.com/piresc/lastmile/internal/utils"
)

// FindMatches builds the candidate list for sourceIntentID
func (uc *MatchUC) FindMatches(ctx context.Context, sourceIntentID string, limit int) ([]*models.MatchCandidate, error) {
	start := time.Now()
	defer func() { metrics.MatchLatency.Observe(time.Since(start).Seconds()) }()

	if limit <= 0 || limit > uc.cfg.Match.PoolLimit {
		limit = uc.cfg.Match.PoolLimit
	}

	source, owner, err := uc.matchRepo.GetSource(ctx, sourceIntentID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return []*models.MatchCandidate{}, nil
		}
		return nil, err
	}

	now := uc.now().UTC()
	q := uc.baseQuery(source, owner, now, limit)
	q.MinLat, q.MaxLat, q.MinLng, q.MaxLng = utils.BoundingBox(source.Origin, uc.cfg.Match.OriginRadiusM)
	q.Center, q.RadiusM = source.Origin, uc.cfg.Match.OriginRadiusM
	q.WindowStart, q.WindowEnd = source.StartTime, source.EndTime

	rows, err := uc.matchRepo.FindCandidates(ctx, q)
	if err != nil {
		return nil, err
	}

	candidates := make([]*models.MatchCandidate, 0, len(rows))
	byIntent := make(map[string]*models.MatchCandidate, len(rows))
	for _, row := range rows {
		origin := models.Point{Lat: row.OriginLat, Lng: row.OriginLng}
		if utils.HaversineMeters(source.Origin, origin) > uc.cfg.Match.OriginRadiusM {
			continue
		}
		c := uc.toCandidate(source, row)
		candidates = append(candidates, c)
		byIntent[c.IntentID] = c
	}

	sameStop, err := uc.sameStopRows(ctx, source, owner, now, limit)
	if err != nil {
		return nil, err
	}
	for _, row := range sameStop {
		if c, ok := byIntent[row.IntentID]; ok {
			c.SameStop = true
			continue
		}
		c := uc.toCandidate(source, row)
		c.SameStop = true
		c.BuddyScore = uc.cfg.Match.SameStopScore
		c.ScoreFixed = true
		candidates = append(candidates, c)
		byIntent[c.IntentID] = c
	}

	if err := uc.attachRatings(ctx, candidates); err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Matches computed",
		logger.String("intent_id", sourceIntentID),
		logger.Int("candidates", len(candidates)),
		logger.Int("same_stop", len(sameStop)))

	return candidates, nil
}

func (uc *MatchUC) baseQuery(source *models.Intent, owner *models.UserProfile, now time.Time, limit int) models.CandidateQuery {
	return models.CandidateQuery{
		SourceIntentID: source.ID,
		SourceUserID:   source.UserID,
		Now:            now,
		WalkersOnly:    owner.HasVehicle,
		Limit:          limit,
	}
}

// sameStopRows returns fresh intents whose origin sits at the stop nearest
// to the source origin. No stop nearby means no rows.
func (uc *MatchUC) sameStopRows(
	ctx context.Context,
	source *models.Intent,
	owner *models.UserProfile,
	now time.Time,
	limit int,
) ([]*models.CandidateRow, error) {
	if uc.stops == nil {
		return nil, nil
	}
	radius := uc.cfg.Match.StopRadiusM
	stop, ok := uc.stops.Nearest(source.Origin, radius)
	if !ok {
		return nil, nil
	}

	since := now.Add(-uc.cfg.Match.SameStopRecency)
	q := uc.baseQuery(source, owner, now, limit)
	q.MinLat, q.MaxLat, q.MinLng, q.MaxLng = utils.BoundingBox(stop.Point(), radius)
	q.Center, q.RadiusM = stop.Point(), radius
	q.CreatedAfter = &since

	rows, err := uc.matchRepo.FindCandidates(ctx, q)
	if err != nil {
		return nil, err
	}

	out := rows[:0]
	for _, row := range rows {
		if utils.HaversineMeters(stop.Point(), models.Point{Lat: row.OriginLat, Lng: row.OriginLng}) <= radius {
			out = append(out, row)
		}
	}
	return out, nil
}

func (uc *MatchUC) toCandidate(source *models.Intent, row *models.CandidateRow) *models.MatchCandidate {
	origin := models.Point{Lat: row.OriginLat, Lng: row.OriginLng}
	dest := models.Point{Lat: row.DestLat, Lng: row.DestLng}
	return &models.MatchCandidate{
		IntentID:          row.IntentID,
		UserID:            row.UserID,
		Name:              row.Name,
		AvatarURL:         row.AvatarURL,
		HasVehicle:        row.HasVehicle,
		Origin:            origin,
		Destination:       dest,
		RouteOverlapScore: utils.Round1(utils.RouteOverlapScore(source.Origin, source.Destination, origin, dest)),
		CreatedAt:         row.CreatedAt,
	}
}

func (uc *MatchUC) attachRatings(ctx context.Context, candidates []*models.MatchCandidate) error {
	if len(candidates) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(candidates))
	userIDs := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.UserID]; ok {
			continue
		}
		seen[c.UserID] = struct{}{}
		userIDs = append(userIDs, c.UserID)
	}

	ratings, err := uc.matchRepo.MeanRatings(ctx, userIDs)
	if err != nil {
		return err
	}
	for _, c := range candidates {
		if avg, ok := ratings[c.UserID]; ok {
			rounded := utils.Round1(avg)
			c.PastRatingAvg = &rounded
		}
	}
	return nil
}
