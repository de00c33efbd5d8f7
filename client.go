// Package fpl is a read-only client for the Fantasy Premier League API.
// It exposes typed accessors for users, teams, players, fixtures, gameweeks
// and leagues on top of the fixed set of public JSON endpoints.
package fpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fantasy-tools/fpl-go/internal/platform/logging"
	"github.com/fantasy-tools/fpl-go/internal/platform/resilience"
)

const (
	defaultBaseURL = "https://fantasy.premierleague.com/api"
	defaultTimeout = 20 * time.Second
	maxBodyBytes   = 6 << 20
)

// ClientConfig carries construction options. The zero value is usable:
// default base URL, instrumented default transport, nop logger.
type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client talks to the FPL API. It holds one HTTP client for all calls and a
// lazily populated bootstrap-static snapshot shared by the team, player and
// gameweek accessors. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger

	mu        sync.RWMutex
	bootstrap *BootstrapStatic
	flight    resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// New returns a Client with default configuration.
func New() *Client {
	return NewClient(ClientConfig{})
}

// getJSON performs one GET against path and decodes the body into target.
// Failures map onto exactly one of ErrTransport, ErrBadStatus or ErrDecode,
// checked in that order; no retries, no transformation further up the stack.
func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	raw, err := c.executeGet(ctx, path)
	if err != nil {
		c.logger.WarnContext(ctx, "fpl request failed", "endpoint", path, "error", err)
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		err = fmt.Errorf("%w: GET %s: %v", ErrDecode, path, err)
		c.logger.WarnContext(ctx, "fpl response decode failed", "endpoint", path, "error", err)
		return err
	}

	return nil
}

func (c *Client) executeGet(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %v", ErrTransport, path, err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrTransport, path, err)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return nil, fmt.Errorf("%w: GET %s: read response body: %v", ErrTransport, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: GET %s: status=%d", ErrBadStatus, path, resp.StatusCode)
	}

	// The buffer goes back to the pool; hand the caller its own copy.
	return append([]byte(nil), buf.B...), nil
}

// GetUser fetches one manager's profile by entry id.
func (c *Client) GetUser(ctx context.Context, userID int64) (User, error) {
	var out User
	if err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/", userID), &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// GetLiveGameweek fetches live per-player stats for one gameweek. Live data
// changes while matches run, so it is never cached.
func (c *Client) GetLiveGameweek(ctx context.Context, gameweekID int64) (LiveGameweek, error) {
	var out LiveGameweek
	if err := c.getJSON(ctx, fmt.Sprintf("/event/%d/live/", gameweekID), &out); err != nil {
		return LiveGameweek{}, err
	}
	return out, nil
}

// GetClassicLeague fetches one page of classic-league standings.
func (c *Client) GetClassicLeague(ctx context.Context, leagueID int64) (ClassicLeague, error) {
	var out ClassicLeague
	if err := c.getJSON(ctx, fmt.Sprintf("/leagues-classic/%d/standings/", leagueID), &out); err != nil {
		return ClassicLeague{}, err
	}
	return out, nil
}

// GetH2HLeague fetches head-to-head match results for one league.
func (c *Client) GetH2HLeague(ctx context.Context, leagueID int64) (H2HLeague, error) {
	var out H2HLeague
	if err := c.getJSON(ctx, fmt.Sprintf("/leagues-h2h-matches/league/%d/", leagueID), &out); err != nil {
		return H2HLeague{}, err
	}
	return out, nil
}

// GetUserPicks fetches one manager's squad picks for one gameweek.
func (c *Client) GetUserPicks(ctx context.Context, userID, gameweekID int64) (UserPicks, error) {
	var out UserPicks
	if err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/event/%d/picks/", userID, gameweekID), &out); err != nil {
		return UserPicks{}, err
	}
	return out, nil
}

// GetUserTransfers fetches one manager's full transfer history.
func (c *Client) GetUserTransfers(ctx context.Context, userID int64) ([]Transfer, error) {
	var out []Transfer
	if err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/transfers/", userID), &out); err != nil {
		return nil, err
	}
	return out, nil
}
