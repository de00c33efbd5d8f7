package fpl

import (
	"context"
	"fmt"
)

// Fixture is one scheduled match. Event is nil for fixtures not yet assigned
// to a gameweek (postponed or newly rescheduled matches).
type Fixture struct {
	Code                 int64         `json:"code"`
	Event                *int64        `json:"event"`
	Finished             bool          `json:"finished"`
	FinishedProvisional  bool          `json:"finished_provisional"`
	ID                   int64         `json:"id"`
	KickoffTime          *string       `json:"kickoff_time"`
	Minutes              int64         `json:"minutes"`
	ProvisionalStartTime bool          `json:"provisional_start_time"`
	Started              *bool         `json:"started"`
	TeamA                int64         `json:"team_a"`
	TeamAScore           *int64        `json:"team_a_score"`
	TeamH                int64         `json:"team_h"`
	TeamHScore           *int64        `json:"team_h_score"`
	Stats                []FixtureStat `json:"stats"`
	TeamHDifficulty      int64         `json:"team_h_difficulty"`
	TeamADifficulty      int64         `json:"team_a_difficulty"`
	PulseID              int64         `json:"pulse_id"`
}

// FixtureStat is one stat category (goals, cards, bonus, ...) with per-player
// values for the away and home sides.
type FixtureStat struct {
	Identifier string             `json:"identifier"`
	A          []FixtureStatValue `json:"a"`
	H          []FixtureStatValue `json:"h"`
}

type FixtureStatValue struct {
	Value   int64 `json:"value"`
	Element int64 `json:"element"`
}

// GetFixtures fetches every fixture of the season.
func (c *Client) GetFixtures(ctx context.Context) ([]Fixture, error) {
	var out []Fixture
	if err := c.getJSON(ctx, "/fixtures/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetGameweekFixtures fetches the fixtures of one gameweek.
func (c *Client) GetGameweekFixtures(ctx context.Context, gameweekID int64) ([]Fixture, error) {
	var out []Fixture
	if err := c.getJSON(ctx, fmt.Sprintf("/fixtures/?event=%d", gameweekID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetFixture fetches one fixture by id. The API has no per-fixture endpoint,
// so this runs two hops: locate the fixture in the unscoped list to learn its
// gameweek, then pick it out of that gameweek's list. Fails with
// ErrUnresolvedGameweek when the first hop cannot name a gameweek and with
// ErrFixtureVanished when the second hop contradicts the first. Both hops
// must succeed; neither is retried with the other's data.
func (c *Client) GetFixture(ctx context.Context, fixtureID int64) (*Fixture, error) {
	all, err := c.GetFixtures(ctx)
	if err != nil {
		return nil, err
	}

	var gameweekID int64
	found := false
	for i := range all {
		if all[i].ID != fixtureID {
			continue
		}
		if all[i].Event == nil {
			return nil, fmt.Errorf("%w: fixture_id=%d has no gameweek assigned", ErrUnresolvedGameweek, fixtureID)
		}
		gameweekID = *all[i].Event
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("%w: fixture_id=%d not in fixture list", ErrUnresolvedGameweek, fixtureID)
	}

	scoped, err := c.GetGameweekFixtures(ctx, gameweekID)
	if err != nil {
		return nil, err
	}
	for i := range scoped {
		if scoped[i].ID == fixtureID {
			fixture := scoped[i]
			return &fixture, nil
		}
	}

	return nil, fmt.Errorf("%w: fixture_id=%d gameweek_id=%d", ErrFixtureVanished, fixtureID, gameweekID)
}
