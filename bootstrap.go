package fpl

import "encoding/json"

// BootstrapStatic is the competition-wide reference dataset: every gameweek
// summary, team and player for the season plus auxiliary tables. Fetched from
// one endpoint and memoized on the Client (see GetBootstrapStatic).
//
// Fields the upstream leaves loosely typed are carried as json.RawMessage so
// schema drift there never breaks decoding.
type BootstrapStatic struct {
	Events       []Event      `json:"events"`
	GameSettings GameSettings `json:"game_settings"`
	Phases       []Phase      `json:"phases"`
	Teams        []Team       `json:"teams"`
	TotalPlayers int64        `json:"total_players"`
	Elements     []Player     `json:"elements"`
	ElementStats []PlayerStat `json:"element_stats"`
	ElementTypes []PlayerType `json:"element_types"`
}

// Event is one gameweek's summary record. The API calls gameweeks "events".
type Event struct {
	ID                     int64           `json:"id"`
	Name                   string          `json:"name"`
	DeadlineTime           string          `json:"deadline_time"`
	AverageEntryScore      int64           `json:"average_entry_score"`
	Finished               bool            `json:"finished"`
	DataChecked            bool            `json:"data_checked"`
	HighestScoringEntry    *int64          `json:"highest_scoring_entry"`
	DeadlineTimeEpoch      int64           `json:"deadline_time_epoch"`
	DeadlineTimeGameOffset int64           `json:"deadline_time_game_offset"`
	HighestScore           *int64          `json:"highest_score"`
	IsPrevious             bool            `json:"is_previous"`
	IsCurrent              bool            `json:"is_current"`
	IsNext                 bool            `json:"is_next"`
	CupLeaguesCreated      bool            `json:"cup_leagues_created"`
	H2HKoMatchesCreated    bool            `json:"h2h_ko_matches_created"`
	ChipPlays              []ChipPlay      `json:"chip_plays"`
	MostSelected           *int64          `json:"most_selected"`
	MostTransferredIn      *int64          `json:"most_transferred_in"`
	TopElement             *int64          `json:"top_element"`
	TopElementInfo         *TopElementInfo `json:"top_element_info"`
	TransfersMade          int64           `json:"transfers_made"`
	MostCaptained          *int64          `json:"most_captained"`
	MostViceCaptained      *int64          `json:"most_vice_captained"`
}

type ChipPlay struct {
	ChipName  string `json:"chip_name"`
	NumPlayed int64  `json:"num_played"`
}

type TopElementInfo struct {
	ID     int64 `json:"id"`
	Points int64 `json:"points"`
}

type GameSettings struct {
	LeagueJoinPrivateMax         int64             `json:"league_join_private_max"`
	LeagueJoinPublicMax          int64             `json:"league_join_public_max"`
	LeagueMaxSizePublicClassic   int64             `json:"league_max_size_public_classic"`
	LeagueMaxSizePublicH2H       int64             `json:"league_max_size_public_h2h"`
	LeagueMaxSizePrivateH2H      int64             `json:"league_max_size_private_h2h"`
	LeagueMaxKoRoundsPrivateH2H  int64             `json:"league_max_ko_rounds_private_h2h"`
	LeaguePrefixPublic           string            `json:"league_prefix_public"`
	LeaguePointsH2HWin           int64             `json:"league_points_h2h_win"`
	LeaguePointsH2HLose          int64             `json:"league_points_h2h_lose"`
	LeaguePointsH2HDraw          int64             `json:"league_points_h2h_draw"`
	LeagueKoFirstInsteadOfRandom bool              `json:"league_ko_first_instead_of_random"`
	CupStartEventID              json.RawMessage   `json:"cup_start_event_id"`
	CupStopEventID               json.RawMessage   `json:"cup_stop_event_id"`
	CupQualifyingMethod          json.RawMessage   `json:"cup_qualifying_method"`
	CupType                      json.RawMessage   `json:"cup_type"`
	SquadSquadplay               int64             `json:"squad_squadplay"`
	SquadSquadsize               int64             `json:"squad_squadsize"`
	SquadTeamLimit               int64             `json:"squad_team_limit"`
	SquadTotalSpend              int64             `json:"squad_total_spend"`
	UICurrencyMultiplier         int64             `json:"ui_currency_multiplier"`
	UIUseSpecialShirts           bool              `json:"ui_use_special_shirts"`
	UISpecialShirtExclusions     []json.RawMessage `json:"ui_special_shirt_exclusions"`
	StatsFormDays                int64             `json:"stats_form_days"`
	SysViceCaptainEnabled        bool              `json:"sys_vice_captain_enabled"`
	TransfersCap                 int64             `json:"transfers_cap"`
	TransfersSellOnFee           float64           `json:"transfers_sell_on_fee"`
	LeagueH2HTiebreakStats       []string          `json:"league_h2h_tiebreak_stats"`
	Timezone                     string            `json:"timezone"`
}

// Phase is a named slice of the season (e.g. a calendar month) spanning a
// contiguous run of gameweeks.
type Phase struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	StartEvent int64  `json:"start_event"`
	StopEvent  int64  `json:"stop_event"`
}

type Team struct {
	Code                int64           `json:"code"`
	Draw                int64           `json:"draw"`
	Form                json.RawMessage `json:"form"`
	ID                  int64           `json:"id"`
	Loss                int64           `json:"loss"`
	Name                string          `json:"name"`
	Played              int64           `json:"played"`
	Points              int64           `json:"points"`
	Position            int64           `json:"position"`
	ShortName           string          `json:"short_name"`
	Strength            int64           `json:"strength"`
	TeamDivision        json.RawMessage `json:"team_division"`
	Unavailable         bool            `json:"unavailable"`
	Win                 int64           `json:"win"`
	StrengthOverallHome int64           `json:"strength_overall_home"`
	StrengthOverallAway int64           `json:"strength_overall_away"`
	StrengthAttackHome  int64           `json:"strength_attack_home"`
	StrengthAttackAway  int64           `json:"strength_attack_away"`
	StrengthDefenceHome int64           `json:"strength_defence_home"`
	StrengthDefenceAway int64           `json:"strength_defence_away"`
	PulseID             int64           `json:"pulse_id"`
}

// Player is one element in the bootstrap-static dataset. The upstream sends
// several numeric-looking fields as strings (form, ict_index, expected_*);
// they are kept as strings rather than second-guessed.
type Player struct {
	ChanceOfPlayingNextRound           *int64          `json:"chance_of_playing_next_round"`
	ChanceOfPlayingThisRound           *int64          `json:"chance_of_playing_this_round"`
	Code                               int64           `json:"code"`
	CostChangeEvent                    int64           `json:"cost_change_event"`
	CostChangeEventFall                int64           `json:"cost_change_event_fall"`
	CostChangeStart                    int64           `json:"cost_change_start"`
	CostChangeStartFall                int64           `json:"cost_change_start_fall"`
	DreamteamCount                     int64           `json:"dreamteam_count"`
	ElementType                        int64           `json:"element_type"`
	EpNext                             string          `json:"ep_next"`
	EpThis                             string          `json:"ep_this"`
	EventPoints                        int64           `json:"event_points"`
	FirstName                          string          `json:"first_name"`
	Form                               string          `json:"form"`
	ID                                 int64           `json:"id"`
	InDreamteam                        bool            `json:"in_dreamteam"`
	News                               string          `json:"news"`
	NewsAdded                          *string         `json:"news_added"`
	NowCost                            int64           `json:"now_cost"`
	Photo                              string          `json:"photo"`
	PointsPerGame                      string          `json:"points_per_game"`
	SecondName                         string          `json:"second_name"`
	SelectedByPercent                  string          `json:"selected_by_percent"`
	Special                            bool            `json:"special"`
	SquadNumber                        json.RawMessage `json:"squad_number"`
	Status                             string          `json:"status"`
	Team                               int64           `json:"team"`
	TeamCode                           int64           `json:"team_code"`
	TotalPoints                        int64           `json:"total_points"`
	TransfersIn                        int64           `json:"transfers_in"`
	TransfersInEvent                   int64           `json:"transfers_in_event"`
	TransfersOut                       int64           `json:"transfers_out"`
	TransfersOutEvent                  int64           `json:"transfers_out_event"`
	ValueForm                          string          `json:"value_form"`
	ValueSeason                        string          `json:"value_season"`
	WebName                            string          `json:"web_name"`
	Minutes                            int64           `json:"minutes"`
	GoalsScored                        int64           `json:"goals_scored"`
	Assists                            int64           `json:"assists"`
	CleanSheets                        int64           `json:"clean_sheets"`
	GoalsConceded                      int64           `json:"goals_conceded"`
	OwnGoals                           int64           `json:"own_goals"`
	PenaltiesSaved                     int64           `json:"penalties_saved"`
	PenaltiesMissed                    int64           `json:"penalties_missed"`
	YellowCards                        int64           `json:"yellow_cards"`
	RedCards                           int64           `json:"red_cards"`
	Saves                              int64           `json:"saves"`
	Bonus                              int64           `json:"bonus"`
	BPS                                int64           `json:"bps"`
	Influence                          string          `json:"influence"`
	Creativity                         string          `json:"creativity"`
	Threat                             string          `json:"threat"`
	ICTIndex                           string          `json:"ict_index"`
	Starts                             int64           `json:"starts"`
	ExpectedGoals                      string          `json:"expected_goals"`
	ExpectedAssists                    string          `json:"expected_assists"`
	ExpectedGoalInvolvements           string          `json:"expected_goal_involvements"`
	ExpectedGoalsConceded              string          `json:"expected_goals_conceded"`
	InfluenceRank                      int64           `json:"influence_rank"`
	InfluenceRankType                  int64           `json:"influence_rank_type"`
	CreativityRank                     int64           `json:"creativity_rank"`
	CreativityRankType                 int64           `json:"creativity_rank_type"`
	ThreatRank                         int64           `json:"threat_rank"`
	ThreatRankType                     int64           `json:"threat_rank_type"`
	ICTIndexRank                       int64           `json:"ict_index_rank"`
	ICTIndexRankType                   int64           `json:"ict_index_rank_type"`
	CornersAndIndirectFreekicksOrder   *int64          `json:"corners_and_indirect_freekicks_order"`
	CornersAndIndirectFreekicksText    string          `json:"corners_and_indirect_freekicks_text"`
	DirectFreekicksOrder               *int64          `json:"direct_freekicks_order"`
	DirectFreekicksText                string          `json:"direct_freekicks_text"`
	PenaltiesOrder                     *int64          `json:"penalties_order"`
	PenaltiesText                      string          `json:"penalties_text"`
	ExpectedGoalsPer90                 float64         `json:"expected_goals_per_90"`
	SavesPer90                         float64         `json:"saves_per_90"`
	ExpectedAssistsPer90               float64         `json:"expected_assists_per_90"`
	ExpectedGoalInvolvementsPer90      float64         `json:"expected_goal_involvements_per_90"`
	ExpectedGoalsConcededPer90         float64         `json:"expected_goals_conceded_per_90"`
	GoalsConcededPer90                 float64         `json:"goals_conceded_per_90"`
	NowCostRank                        int64           `json:"now_cost_rank"`
	NowCostRankType                    int64           `json:"now_cost_rank_type"`
	FormRank                           int64           `json:"form_rank"`
	FormRankType                       int64           `json:"form_rank_type"`
	PointsPerGameRank                  int64           `json:"points_per_game_rank"`
	PointsPerGameRankType              int64           `json:"points_per_game_rank_type"`
	SelectedRank                       int64           `json:"selected_rank"`
	SelectedRankType                   int64           `json:"selected_rank_type"`
	StartsPer90                        float64         `json:"starts_per_90"`
	CleanSheetsPer90                   float64         `json:"clean_sheets_per_90"`
}

// PlayerStat labels one stat column of the elements table.
type PlayerStat struct {
	Label string `json:"label"`
	Name  string `json:"name"`
}

// PlayerType is a squad position (goalkeeper, defender, ...) with its squad
// selection rules.
type PlayerType struct {
	ID                 int64   `json:"id"`
	PluralName         string  `json:"plural_name"`
	PluralNameShort    string  `json:"plural_name_short"`
	SingularName       string  `json:"singular_name"`
	SingularNameShort  string  `json:"singular_name_short"`
	SquadSelect        int64   `json:"squad_select"`
	SquadMinPlay       int64   `json:"squad_min_play"`
	SquadMaxPlay       int64   `json:"squad_max_play"`
	UIShirtSpecific    bool    `json:"ui_shirt_specific"`
	SubPositionsLocked []int64 `json:"sub_positions_locked"`
	ElementCount       int64   `json:"element_count"`
}
