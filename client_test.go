package fpl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(ClientConfig{
		HTTPClient: srv.Client(),
		BaseURL:    srv.URL,
	})
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()

	raw, err := sonic.Marshal(v)
	if err != nil {
		t.Fatalf("marshal test payload: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}

func TestGetJSON_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(ClientConfig{HTTPClient: srv.Client(), BaseURL: srv.URL})
	srv.Close()

	_, err := client.GetFixtures(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if !strings.Contains(err.Error(), "/fixtures/") {
		t.Fatalf("expected endpoint in error, got %q", err.Error())
	}
}

func TestGetJSON_StatusFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))

	_, err := client.GetUser(context.Background(), 42)
	if !errors.Is(err, ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
	if !strings.Contains(err.Error(), "status=404") {
		t.Fatalf("expected status code in error, got %q", err.Error())
	}
}

func TestGetJSON_DecodeFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": "definitely-not-a-number"`))
	}))

	_, err := client.GetUser(context.Background(), 42)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if errors.Is(err, ErrBadStatus) || errors.Is(err, ErrTransport) {
		t.Fatalf("decode failure must not match other kinds: %v", err)
	}
}

func TestGetUser_ReturnsRequestedID(t *testing.T) {
	t.Parallel()

	const userID int64 = 5489342
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/entry/5489342/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, User{ID: userID, PlayerFirstName: "Erling", PlayerLastName: "Haaland"})
	}))

	user, err := client.GetUser(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, userID, user.ID)
}

func TestGetLiveGameweek_FetchedFreshEveryCall(t *testing.T) {
	t.Parallel()

	var calls int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/event/7/live/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, LiveGameweek{Elements: []LiveElement{
			{ID: 1, Stats: LiveStats{TotalPoints: 12, GoalsScored: 2}},
		}})
	}))

	for i := 0; i < 2; i++ {
		live, err := client.GetLiveGameweek(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, live.Elements, 1)
		require.Equal(t, int64(12), live.Elements[0].Stats.TotalPoints)
	}
	require.Equal(t, 2, calls, "live data must never be cached")
}

func TestGetClassicLeague(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/leagues-classic/753276/standings/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, ClassicLeague{
			League: LeagueInfo{ID: 753276, Name: "Office League"},
			Standings: Standings{Results: []LeagueResult{
				{Rank: 1, Entry: 100, EntryName: "Top Side", Total: 1204},
				{Rank: 2, Entry: 200, EntryName: "Runner Up", Total: 1190},
			}},
		})
	}))

	league, err := client.GetClassicLeague(context.Background(), 753276)
	require.NoError(t, err)
	require.Equal(t, "Office League", league.League.Name)
	require.Len(t, league.Standings.Results, 2)
	require.Equal(t, int64(100), league.Standings.Results[0].Entry)
}

func TestGetH2HLeague(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/leagues-h2h-matches/league/288399/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, H2HLeague{Results: []H2HResult{
			{ID: 1, Entry1Entry: 10, Entry2Entry: 20, Entry1Points: 55, Entry2Points: 43},
		}})
	}))

	league, err := client.GetH2HLeague(context.Background(), 288399)
	require.NoError(t, err)
	require.Len(t, league.Results, 1)
	require.Equal(t, int64(55), league.Results[0].Entry1Points)
}

func TestGetUserPicks(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/entry/5489342/event/14/picks/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		picks := make([]Pick, 0, 15)
		for i := 1; i <= 15; i++ {
			picks = append(picks, Pick{Element: int64(i), Position: int64(i), Multiplier: 1})
		}
		picks[0].IsCaptain = true
		picks[0].Multiplier = 2
		writeJSON(t, w, UserPicks{
			EntryHistory: EntryHistory{Event: 14, Points: 61},
			Picks:        picks,
		})
	}))

	picks, err := client.GetUserPicks(context.Background(), 5489342, 14)
	require.NoError(t, err)
	require.Len(t, picks.Picks, 15)
	require.True(t, picks.Picks[0].IsCaptain)
	require.Equal(t, int64(61), picks.EntryHistory.Points)
}

func TestGetUserTransfers(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/entry/5489342/transfers/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, []Transfer{
			{ElementIn: 302, ElementOut: 17, Entry: 5489342, Event: 9, Time: "2025-10-17T10:04:00Z"},
			{ElementIn: 44, ElementOut: 81, Entry: 5489342, Event: 12, Time: "2025-11-07T18:30:00Z"},
		})
	}))

	transfers, err := client.GetUserTransfers(context.Background(), 5489342)
	require.NoError(t, err)
	require.Len(t, transfers, 2)
	require.Equal(t, int64(302), transfers[0].ElementIn)
}

func TestNewClient_Defaults(t *testing.T) {
	t.Parallel()

	client := New()
	if client.baseURL != defaultBaseURL {
		t.Fatalf("unexpected base url: %s", client.baseURL)
	}
	if client.httpClient == nil || client.httpClient.Timeout != defaultTimeout {
		t.Fatalf("expected default http client with %s timeout", defaultTimeout)
	}

	trimmed := NewClient(ClientConfig{BaseURL: "https://example.test/api/"})
	if trimmed.baseURL != "https://example.test/api" {
		t.Fatalf("expected trailing slash trimmed, got %s", trimmed.baseURL)
	}
}
