package fpl

// LiveGameweek carries live per-player statistics for one gameweek. Unlike
// the bootstrap snapshot this data changes while matches are running, so
// GetLiveGameweek always hits the network.
type LiveGameweek struct {
	Elements []LiveElement `json:"elements"`
}

type LiveElement struct {
	ID      int64         `json:"id"`
	Stats   LiveStats     `json:"stats"`
	Explain []LiveExplain `json:"explain"`
}

type LiveStats struct {
	Minutes                  int64  `json:"minutes"`
	GoalsScored              int64  `json:"goals_scored"`
	Assists                  int64  `json:"assists"`
	CleanSheets              int64  `json:"clean_sheets"`
	GoalsConceded            int64  `json:"goals_conceded"`
	OwnGoals                 int64  `json:"own_goals"`
	PenaltiesSaved           int64  `json:"penalties_saved"`
	PenaltiesMissed          int64  `json:"penalties_missed"`
	YellowCards              int64  `json:"yellow_cards"`
	RedCards                 int64  `json:"red_cards"`
	Saves                    int64  `json:"saves"`
	Bonus                    int64  `json:"bonus"`
	BPS                      int64  `json:"bps"`
	Influence                string `json:"influence"`
	Creativity               string `json:"creativity"`
	Threat                   string `json:"threat"`
	ICTIndex                 string `json:"ict_index"`
	Starts                   int64  `json:"starts"`
	ExpectedGoals            string `json:"expected_goals"`
	ExpectedAssists          string `json:"expected_assists"`
	ExpectedGoalInvolvements string `json:"expected_goal_involvements"`
	ExpectedGoalsConceded    string `json:"expected_goals_conceded"`
	TotalPoints              int64  `json:"total_points"`
	InDreamteam              bool   `json:"in_dreamteam"`
}

// LiveExplain breaks a player's points down per fixture.
type LiveExplain struct {
	Fixture int64             `json:"fixture"`
	Stats   []LiveExplainStat `json:"stats"`
}

type LiveExplainStat struct {
	Identifier string `json:"identifier"`
	Points     int64  `json:"points"`
	Value      int64  `json:"value"`
}
