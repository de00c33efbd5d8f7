package fpl

import "encoding/json"

// ClassicLeague is one page of classic-league standings.
type ClassicLeague struct {
	NewEntries      NewEntries `json:"new_entries"`
	LastUpdatedData string     `json:"last_updated_data"`
	League          LeagueInfo `json:"league"`
	Standings       Standings  `json:"standings"`
}

type NewEntries struct {
	HasNext bool              `json:"has_next"`
	Page    int64             `json:"page"`
	Results []json.RawMessage `json:"results"`
}

type LeagueInfo struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Created     string          `json:"created"`
	Closed      bool            `json:"closed"`
	MaxEntries  json.RawMessage `json:"max_entries"`
	LeagueType  string          `json:"league_type"`
	Scoring     string          `json:"scoring"`
	AdminEntry  int64           `json:"admin_entry"`
	StartEvent  int64           `json:"start_event"`
	CodePrivacy string          `json:"code_privacy"`
	HasCup      bool            `json:"has_cup"`
	CupLeague   json.RawMessage `json:"cup_league"`
	Rank        json.RawMessage `json:"rank"`
}

type Standings struct {
	HasNext bool           `json:"has_next"`
	Page    int64          `json:"page"`
	Results []LeagueResult `json:"results"`
}

type LeagueResult struct {
	ID         int64  `json:"id"`
	EventTotal int64  `json:"event_total"`
	PlayerName string `json:"player_name"`
	Rank       int64  `json:"rank"`
	LastRank   int64  `json:"last_rank"`
	RankSort   int64  `json:"rank_sort"`
	Total      int64  `json:"total"`
	Entry      int64  `json:"entry"`
	EntryName  string `json:"entry_name"`
}

// H2HLeague is one page of head-to-head match results.
type H2HLeague struct {
	HasNext bool        `json:"has_next"`
	Page    int64       `json:"page"`
	Results []H2HResult `json:"results"`
}

type H2HResult struct {
	ID               int64           `json:"id"`
	Entry1Entry      int64           `json:"entry_1_entry"`
	Entry1Name       string          `json:"entry_1_name"`
	Entry1PlayerName string          `json:"entry_1_player_name"`
	Entry1Points     int64           `json:"entry_1_points"`
	Entry1Win        int64           `json:"entry_1_win"`
	Entry1Draw       int64           `json:"entry_1_draw"`
	Entry1Loss       int64           `json:"entry_1_loss"`
	Entry1Total      int64           `json:"entry_1_total"`
	Entry2Entry      int64           `json:"entry_2_entry"`
	Entry2Name       string          `json:"entry_2_name"`
	Entry2PlayerName string          `json:"entry_2_player_name"`
	Entry2Points     int64           `json:"entry_2_points"`
	Entry2Win        int64           `json:"entry_2_win"`
	Entry2Draw       int64           `json:"entry_2_draw"`
	Entry2Loss       int64           `json:"entry_2_loss"`
	Entry2Total      int64           `json:"entry_2_total"`
	IsKnockout       bool            `json:"is_knockout"`
	League           int64           `json:"league"`
	Winner           json.RawMessage `json:"winner"`
	SeedValue        json.RawMessage `json:"seed_value"`
	Event            int64           `json:"event"`
	Tiebreak         json.RawMessage `json:"tiebreak"`
	IsBye            bool            `json:"is_bye"`
	KnockoutName     string          `json:"knockout_name"`
}

// UserPicks is one manager's squad for one gameweek.
type UserPicks struct {
	ActiveChip    json.RawMessage   `json:"active_chip"`
	AutomaticSubs []json.RawMessage `json:"automatic_subs"`
	EntryHistory  EntryHistory      `json:"entry_history"`
	Picks         []Pick            `json:"picks"`
}

type EntryHistory struct {
	Event              int64 `json:"event"`
	Points             int64 `json:"points"`
	TotalPoints        int64 `json:"total_points"`
	Rank               int64 `json:"rank"`
	RankSort           int64 `json:"rank_sort"`
	OverallRank        int64 `json:"overall_rank"`
	Bank               int64 `json:"bank"`
	Value              int64 `json:"value"`
	EventTransfers     int64 `json:"event_transfers"`
	EventTransfersCost int64 `json:"event_transfers_cost"`
	PointsOnBench      int64 `json:"points_on_bench"`
}

type Pick struct {
	Element       int64 `json:"element"`
	Position      int64 `json:"position"`
	Multiplier    int64 `json:"multiplier"`
	IsCaptain     bool  `json:"is_captain"`
	IsViceCaptain bool  `json:"is_vice_captain"`
}
