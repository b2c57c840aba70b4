package telemetry

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"activitysignup/internal/domain"
)

type stubRepo struct {
	catalog domain.Catalog
}

func (s *stubRepo) List(ctx context.Context) (domain.Catalog, error) { return s.catalog, nil }
func (s *stubRepo) AddParticipant(ctx context.Context, activityName, email string) error {
	return nil
}
func (s *stubRepo) RemoveParticipant(ctx context.Context, activityName, email string) error {
	return nil
}

func TestRosterCollector(t *testing.T) {
	chess := domain.NewActivity("Chess Club", "", "", 12)
	chess.Participants = []string{"a@example.com", "b@example.com"}
	repo := &stubRepo{catalog: domain.Catalog{chess, domain.NewActivity("Gym Class", "", "", 30)}}

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(NewRosterCollector(repo)))

	expected := `
# HELP activity_max_participants Configured maximum participant count of an activity.
# TYPE activity_max_participants gauge
activity_max_participants{activity="Chess Club"} 12
activity_max_participants{activity="Gym Class"} 30
# HELP activity_participants Current number of participants signed up for an activity.
# TYPE activity_participants gauge
activity_participants{activity="Chess Club"} 2
activity_participants{activity="Gym Class"} 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
}

func TestRosterChangesTotal(t *testing.T) {
	before := testutil.ToFloat64(RosterChangesTotal.WithLabelValues("signup", OutcomeConflict))
	RosterChangesTotal.WithLabelValues("signup", OutcomeConflict).Inc()
	require.Equal(t, before+1, testutil.ToFloat64(RosterChangesTotal.WithLabelValues("signup", OutcomeConflict)))
}
