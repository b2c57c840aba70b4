package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityCatalogRepository_LoadCatalog(t *testing.T) {
	ctx := context.Background()
	activityCols := []string{"id", "name", "description", "schedule", "max_participants"}
	participantCols := []string{"activity_id", "email"}

	tests := []struct {
		name       string
		mock       func(mock sqlmock.Sqlmock)
		wantErr    string
		wantNames  []string
		wantRoster map[string][]string
	}{
		{
			name: "success keeps order and skips orphan and duplicate participants",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, description, schedule, max_participants\s+FROM activities`).
					WillReturnRows(sqlmock.NewRows(activityCols).
						AddRow("a1", "Chess Club", "Strategy", "Fridays", 12).
						AddRow("a2", "Gym Class", "Sports", "Mondays", 30))
				mock.ExpectQuery(`SELECT activity_id, email\s+FROM activity_participants`).
					WillReturnRows(sqlmock.NewRows(participantCols).
						AddRow("a1", "michael@mergington.edu").
						AddRow("a1", "daniel@mergington.edu").
						AddRow("a1", "michael@mergington.edu").
						AddRow("a9", "ghost@mergington.edu"))
			},
			wantNames: []string{"Chess Club", "Gym Class"},
			wantRoster: map[string][]string{
				"Chess Club": {"michael@mergington.edu", "daniel@mergington.edu"},
				"Gym Class":  {},
			},
		},
		{
			name: "activities query error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM activities`).WillReturnError(errors.New("connection refused"))
			},
			wantErr: "query activities: connection refused",
		},
		{
			name: "participants query error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM activities`).
					WillReturnRows(sqlmock.NewRows(activityCols).AddRow("a1", "Chess Club", "Strategy", "Fridays", 12))
				mock.ExpectQuery(`FROM activity_participants`).WillReturnError(errors.New("timeout"))
			},
			wantErr: "query participants: timeout",
		},
		{
			name: "empty tables",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM activities`).WillReturnRows(sqlmock.NewRows(activityCols))
				mock.ExpectQuery(`FROM activity_participants`).WillReturnRows(sqlmock.NewRows(participantCols))
			},
			wantNames:  []string{},
			wantRoster: map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewActivityCatalogRepository(db)

			catalog, err := repo.LoadCatalog(ctx)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantNames, catalog.Names())
				for name, roster := range tt.wantRoster {
					require.NotNil(t, catalog.Get(name), name)
					assert.Equal(t, roster, catalog.Get(name).Participants, name)
				}
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
