package fpl

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func int64ptr(v int64) *int64 { return &v }

// fixtureHandler serves /fixtures/ from the unscoped list and
// /fixtures/?event=N from the scoped one, mirroring the two upstream views.
func fixtureHandler(t *testing.T, unscoped, scoped []Fixture) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fixtures/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("event") != "" {
			writeJSON(t, w, scoped)
			return
		}
		writeJSON(t, w, unscoped)
	})
}

func TestGetFixture_TwoHopResolution(t *testing.T) {
	t.Parallel()

	match := Fixture{
		ID:         65,
		Event:      int64ptr(7),
		TeamH:      14,
		TeamA:      3,
		TeamHScore: int64ptr(2),
		TeamAScore: int64ptr(1),
		Finished:   true,
	}
	unscoped := []Fixture{
		{ID: 64, Event: int64ptr(7), TeamH: 1, TeamA: 2},
		match,
		{ID: 66, Event: int64ptr(8), TeamH: 5, TeamA: 6},
	}
	scoped := []Fixture{
		{ID: 64, Event: int64ptr(7), TeamH: 1, TeamA: 2},
		match,
	}

	client := newTestClient(t, fixtureHandler(t, unscoped, scoped))

	fixture, err := client.GetFixture(context.Background(), 65)
	require.NoError(t, err)
	require.NotNil(t, fixture)
	require.Equal(t, int64(65), fixture.ID)

	// Both fetched representations agree on teams and score.
	require.Equal(t, match.TeamH, fixture.TeamH)
	require.Equal(t, match.TeamA, fixture.TeamA)
	require.Equal(t, *match.TeamHScore, *fixture.TeamHScore)
	require.Equal(t, *match.TeamAScore, *fixture.TeamAScore)
}

func TestGetFixture_UnassignedGameweek(t *testing.T) {
	t.Parallel()

	unscoped := []Fixture{
		{ID: 65, Event: nil, TeamH: 14, TeamA: 3}, // postponed, no gameweek yet
	}
	client := newTestClient(t, fixtureHandler(t, unscoped, nil))

	_, err := client.GetFixture(context.Background(), 65)
	if !errors.Is(err, ErrUnresolvedGameweek) {
		t.Fatalf("expected ErrUnresolvedGameweek, got %v", err)
	}
}

func TestGetFixture_UnknownID(t *testing.T) {
	t.Parallel()

	unscoped := []Fixture{
		{ID: 1, Event: int64ptr(1), TeamH: 1, TeamA: 2},
	}
	client := newTestClient(t, fixtureHandler(t, unscoped, nil))

	_, err := client.GetFixture(context.Background(), 9999)
	if !errors.Is(err, ErrUnresolvedGameweek) {
		t.Fatalf("expected ErrUnresolvedGameweek, got %v", err)
	}
	if !strings.Contains(err.Error(), "fixture_id=9999") {
		t.Fatalf("expected fixture id in error, got %q", err.Error())
	}
}

func TestGetFixture_VanishedFromGameweekList(t *testing.T) {
	t.Parallel()

	unscoped := []Fixture{
		{ID: 65, Event: int64ptr(7), TeamH: 14, TeamA: 3},
	}
	scoped := []Fixture{
		{ID: 64, Event: int64ptr(7), TeamH: 1, TeamA: 2},
	}
	client := newTestClient(t, fixtureHandler(t, unscoped, scoped))

	_, err := client.GetFixture(context.Background(), 65)
	if !errors.Is(err, ErrFixtureVanished) {
		t.Fatalf("expected ErrFixtureVanished, got %v", err)
	}
	if errors.Is(err, ErrUnresolvedGameweek) {
		t.Fatalf("vanished and unresolved must stay distinct: %v", err)
	}
}

func TestGetGameweekFixtures_SendsEventQuery(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("event"); got != "12" {
			t.Errorf("unexpected event query: %q", got)
		}
		writeJSON(t, w, []Fixture{{ID: 120, Event: int64ptr(12)}})
	}))

	fixtures, err := client.GetGameweekFixtures(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	require.Equal(t, int64(120), fixtures[0].ID)
}

func TestGetFixtures_All(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("unexpected query on unscoped fixture list: %q", r.URL.RawQuery)
		}
		writeJSON(t, w, []Fixture{
			{ID: 1, Event: int64ptr(1)},
			{ID: 2, Event: nil},
		})
	}))

	fixtures, err := client.GetFixtures(context.Background())
	require.NoError(t, err)
	require.Len(t, fixtures, 2)
	require.Nil(t, fixtures[1].Event)
}
