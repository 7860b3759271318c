package usecase

import (
	"context"

	"github.com/piresc/lastmile/internal/pkg/apperror"
	"github.com/piresc/lastmile/internal/pkg/metrics"
	"github.com/piresc/lastmile/internal/pkg/models"
)

// AuthorizeChannel checks that token belongs to an ACTIVE session
func (uc *SessionUC) AuthorizeChannel(ctx context.Context, sessionID, token string) (models.Side, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if session.State != models.SessionStateActive {
		return "", apperror.Conflict("session %s is not active", sessionID)
	}
	side, ok := session.SideForToken(token)
	if !ok {
		return "", apperror.Forbidden("token does not match session %s", sessionID)
	}
	return side, nil
}

// ReportLocation stores the position of the side token speaks for. The
// session is re-checked on every report, under the same lock as transitions
// so a write cannot land after a terminal state cleared the key.
func (uc *SessionUC) ReportLocation(ctx context.Context, sessionID, token string, lat, lng float64) error {
	unlock := uc.locks.Lock(sessionID)
	defer unlock()

	side, err := uc.AuthorizeChannel(ctx, sessionID, token)
	if err != nil {
		metrics.LocationReports.WithLabelValues("rejected").Inc()
		return err
	}
	if !(models.Point{Lat: lat, Lng: lng}).Valid() {
		metrics.LocationReports.WithLabelValues("invalid").Inc()
		return apperror.Validation("location is out of range")
	}

	loc := models.SideLocation{Lat: lat, Lng: lng, Timestamp: uc.now().UTC()}
	if err := uc.locationRepo.StoreLocation(ctx, sessionID, side, loc); err != nil {
		metrics.LocationReports.WithLabelValues("error").Inc()
		return err
	}
	metrics.LocationReports.WithLabelValues("ok").Inc()
	return nil
}

// ReadLocations returns the unexpired positions of a session
func (uc *SessionUC) ReadLocations(ctx context.Context, sessionID string) (map[models.Side]models.SideLocation, error) {
	return uc.locationRepo.GetLocations(ctx, sessionID)
}

// ReadLocationsForUser returns positions to a party of an ACTIVE session
func (uc *SessionUC) ReadLocationsForUser(ctx context.Context, userID, sessionID string) (map[models.Side]models.SideLocation, error) {
	session, err := uc.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, ok := session.SideForUser(userID); !ok {
		return nil, apperror.Forbidden("not a party of session %s", sessionID)
	}
	if session.State != models.SessionStateActive {
		return nil, apperror.Conflict("session %s is not active", sessionID)
	}
	return uc.ReadLocations(ctx, sessionID)
}
