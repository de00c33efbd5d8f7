package fpl

import "encoding/json"

// User is one manager's profile ("entry" in API terms).
type User struct {
	ID                          int64           `json:"id"`
	JoinedTime                  string          `json:"joined_time"`
	StartedEvent                int64           `json:"started_event"`
	FavouriteTeam               int64           `json:"favourite_team"`
	PlayerFirstName             string          `json:"player_first_name"`
	PlayerLastName              string          `json:"player_last_name"`
	PlayerRegionID              int64           `json:"player_region_id"`
	PlayerRegionName            string          `json:"player_region_name"`
	PlayerRegionISOCodeShort    string          `json:"player_region_iso_code_short"`
	PlayerRegionISOCodeLong     string          `json:"player_region_iso_code_long"`
	SummaryOverallPoints        int64           `json:"summary_overall_points"`
	SummaryOverallRank          int64           `json:"summary_overall_rank"`
	SummaryEventPoints          int64           `json:"summary_event_points"`
	SummaryEventRank            *int64          `json:"summary_event_rank"`
	CurrentEvent                int64           `json:"current_event"`
	Leagues                     Leagues         `json:"leagues"`
	Name                        string          `json:"name"`
	NameChangeBlocked           bool            `json:"name_change_blocked"`
	Kit                         json.RawMessage `json:"kit"`
	LastDeadlineBank            int64           `json:"last_deadline_bank"`
	LastDeadlineValue           int64           `json:"last_deadline_value"`
	LastDeadlineTotalTransfers  int64           `json:"last_deadline_total_transfers"`
}

// Leagues lists the leagues a manager is a member of.
type Leagues struct {
	Classic    []LeagueMembership `json:"classic"`
	H2H        []json.RawMessage  `json:"h2h"`
	Cup        Cup                `json:"cup"`
	CupMatches []json.RawMessage  `json:"cup_matches"`
}

type LeagueMembership struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	ShortName      *string         `json:"short_name"`
	Created        string          `json:"created"`
	Closed         bool            `json:"closed"`
	Rank           json.RawMessage `json:"rank"`
	MaxEntries     json.RawMessage `json:"max_entries"`
	LeagueType     string          `json:"league_type"`
	Scoring        string          `json:"scoring"`
	AdminEntry     *int64          `json:"admin_entry"`
	StartEvent     int64           `json:"start_event"`
	EntryCanLeave  bool            `json:"entry_can_leave"`
	EntryCanAdmin  bool            `json:"entry_can_admin"`
	EntryCanInvite bool            `json:"entry_can_invite"`
	HasCup         bool            `json:"has_cup"`
	CupLeague      json.RawMessage `json:"cup_league"`
	CupQualified   json.RawMessage `json:"cup_qualified"`
	EntryRank      int64           `json:"entry_rank"`
	EntryLastRank  int64           `json:"entry_last_rank"`
}

type Cup struct {
	Matches   []json.RawMessage `json:"matches"`
	Status    CupStatus         `json:"status"`
	CupLeague json.RawMessage   `json:"cup_league"`
}

type CupStatus struct {
	QualificationEvent   json.RawMessage `json:"qualification_event"`
	QualificationNumbers json.RawMessage `json:"qualification_numbers"`
	QualificationRank    json.RawMessage `json:"qualification_rank"`
	QualificationState   json.RawMessage `json:"qualification_state"`
}

// Transfer is one completed transfer in a manager's history.
type Transfer struct {
	ElementIn      int64  `json:"element_in"`
	ElementInCost  int64  `json:"element_in_cost"`
	ElementOut     int64  `json:"element_out"`
	ElementOutCost int64  `json:"element_out_cost"`
	Entry          int64  `json:"entry"`
	Event          int64  `json:"event"`
	Time           string `json:"time"`
}
