package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"activitysignup/internal/domain"
)

type activityCatalogRepository struct {
	DB *sql.DB
}

// NewActivityCatalogRepository returns a catalog source backed by the activities
// tables. It only reads; roster changes made at runtime are never written back.
func NewActivityCatalogRepository(db *sql.DB) domain.ActivityCatalogSource {
	return &activityCatalogRepository{DB: db}
}

func (r *activityCatalogRepository) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	catalog, byID, err := r.loadActivities(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.loadParticipants(ctx, byID); err != nil {
		return nil, err
	}
	return catalog, nil
}

func (r *activityCatalogRepository) loadActivities(ctx context.Context) (domain.Catalog, map[string]*domain.Activity, error) {
	query := `
		SELECT id, name, description, schedule, max_participants
		FROM activities
		ORDER BY position, name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	catalog := domain.Catalog{}
	byID := make(map[string]*domain.Activity)
	for rows.Next() {
		var id string
		a := domain.NewActivity("", "", "", 0)
		if err := rows.Scan(&id, &a.Name, &a.Description, &a.Schedule, &a.MaxParticipants); err != nil {
			return nil, nil, fmt.Errorf("scan activity: %w", err)
		}
		byID[id] = a
		catalog = append(catalog, a)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate activities: %w", err)
	}
	return catalog, byID, nil
}

func (r *activityCatalogRepository) loadParticipants(ctx context.Context, byID map[string]*domain.Activity) error {
	query := `
		SELECT activity_id, email
		FROM activity_participants
		ORDER BY activity_id, position
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var activityID, email string
		if err := rows.Scan(&activityID, &email); err != nil {
			return fmt.Errorf("scan participant: %w", err)
		}
		a, ok := byID[activityID]
		if !ok || a.HasParticipant(email) {
			continue
		}
		a.Participants = append(a.Participants, email)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate participants: %w", err)
	}
	return nil
}
