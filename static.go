package fpl

import "context"

const bootstrapFlightKey = "bootstrap-static"

// GetBootstrapStatic returns the static reference snapshot (gameweeks, teams,
// players and auxiliary tables), fetching it at most once per Client.
// Concurrent first calls collapse into a single upstream request; a failed
// fetch leaves the slot empty so the next call retries. The fetch runs under
// the context of whichever caller initiates it, so cancelling that context
// fails every caller waiting on the same flight; a subsequent call retries.
// The returned snapshot is shared and callers must treat it as read-only.
func (c *Client) GetBootstrapStatic(ctx context.Context) (*BootstrapStatic, error) {
	if bs := c.cachedBootstrap(); bs != nil {
		return bs, nil
	}

	out, err, _ := c.flight.Do(bootstrapFlightKey, func() (any, error) {
		if bs := c.cachedBootstrap(); bs != nil {
			return bs, nil
		}

		var decoded BootstrapStatic
		if err := c.getJSON(ctx, "/bootstrap-static/", &decoded); err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.bootstrap = &decoded
		c.mu.Unlock()
		return &decoded, nil
	})
	if err != nil {
		return nil, err
	}

	return out.(*BootstrapStatic), nil
}

func (c *Client) cachedBootstrap() *BootstrapStatic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bootstrap
}

// GetAllTeams returns every team in snapshot order.
func (c *Client) GetAllTeams(ctx context.Context) ([]Team, error) {
	bs, err := c.GetBootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	return bs.Teams, nil
}

// GetTeam returns the team with the given id, or (nil, nil) when no such
// team exists. Duplicate ids resolve to the first match in snapshot order.
func (c *Client) GetTeam(ctx context.Context, teamID int64) (*Team, error) {
	bs, err := c.GetBootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bs.Teams {
		if bs.Teams[i].ID == teamID {
			return &bs.Teams[i], nil
		}
	}
	return nil, nil
}

// GetTeams returns the teams whose ids are in teamIDs, in snapshot order,
// silently omitting ids with no match. An empty id set means all teams.
func (c *Client) GetTeams(ctx context.Context, teamIDs []int64) ([]Team, error) {
	bs, err := c.GetBootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	return filterByID(bs.Teams, teamIDs, func(t Team) int64 { return t.ID }), nil
}

// GetAllPlayers returns every player in snapshot order.
func (c *Client) GetAllPlayers(ctx context.Context) ([]Player, error) {
	bs, err := c.GetBootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	return bs.Elements, nil
}

// GetPlayer returns the player with the given id, or (nil, nil) when absent.
func (c *Client) GetPlayer(ctx context.Context, playerID int64) (*Player, error) {
	bs, err := c.GetBootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bs.Elements {
		if bs.Elements[i].ID == playerID {
			return &bs.Elements[i], nil
		}
	}
	return nil, nil
}

// GetPlayers returns the players whose ids are in playerIDs, in snapshot
// order. An empty id set means all players.
func (c *Client) GetPlayers(ctx context.Context, playerIDs []int64) ([]Player, error) {
	bs, err := c.GetBootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	return filterByID(bs.Elements, playerIDs, func(p Player) int64 { return p.ID }), nil
}

// GetStaticGameweeks returns the season's gameweek summaries in snapshot
// order. These are the scheduling records from bootstrap-static, not live
// scoring; see GetLiveGameweek for the latter.
func (c *Client) GetStaticGameweeks(ctx context.Context) ([]Event, error) {
	bs, err := c.GetBootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	return bs.Events, nil
}

// GetStaticGameweek returns the gameweek summary with the given id, or
// (nil, nil) when absent.
func (c *Client) GetStaticGameweek(ctx context.Context, gameweekID int64) (*Event, error) {
	bs, err := c.GetBootstrapStatic(ctx)
	if err != nil {
		return nil, err
	}
	for i := range bs.Events {
		if bs.Events[i].ID == gameweekID {
			return &bs.Events[i], nil
		}
	}
	return nil, nil
}

// filterByID keeps the records whose id is in ids, preserving record order
// regardless of how ids are ordered. An empty id set selects everything: a
// whole-collection request, not an empty match.
func filterByID[T any](records []T, ids []int64, idOf func(T) int64) []T {
	if len(ids) == 0 {
		return records
	}

	wanted := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	out := make([]T, 0, len(ids))
	for _, record := range records {
		if _, ok := wanted[idOf(record)]; ok {
			out = append(out, record)
		}
	}
	return out
}
