package model

// Result is either a *LeagueResult or a *TournamentResult, depending on the type of
// the game it belongs to.
type Result interface {
	ResultGameID() int32
	ResultType() GameType
}

type LeagueResult struct {
	GameID int32              `json:"gameId"`
	Teams  []LeagueTeamResult `json:"teams"`
}

type LeagueTeamResult struct {
	TeamID   int32 `json:"teamId"`
	Rank     int32 `json:"rank"`
	Score    int32 `json:"score"`
	Win      int32 `json:"win"`
	Lose     int32 `json:"lose"`
	Draw     int32 `json:"draw"`
	Goal     int32 `json:"goal"`
	LostGoal int32 `json:"lostGoal"`
}

func (r *LeagueResult) ResultGameID() int32  { return r.GameID }
func (r *LeagueResult) ResultType() GameType { return GAME_LEAGUE }

type TournamentResult struct {
	GameID int32            `json:"gameId"`
	Ranks  []TournamentRank `json:"ranks"`
}

type TournamentRank struct {
	TeamID int32 `json:"teamId"`
	Rank   int32 `json:"rank"`
}

func (r *TournamentResult) ResultGameID() int32  { return r.GameID }
func (r *TournamentResult) ResultType() GameType { return GAME_TOURNAMENT }
