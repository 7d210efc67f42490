package model

import "time"

type MatchResult string

const (
	RESULT_LEFT_WIN  MatchResult = "left_win"
	RESULT_RIGHT_WIN MatchResult = "right_win"
	RESULT_DRAW      MatchResult = "draw"
)

type MatchStatus string

const (
	STATUS_STANDBY     MatchStatus = "standby"
	STATUS_IN_PROGRESS MatchStatus = "in_progress"
	STATUS_FINISHED    MatchStatus = "finished"
	STATUS_CANCELLED   MatchStatus = "cancelled"
)

type Match struct {
	ID          int32       `json:"id"`
	GameID      int32       `json:"gameId"`
	SportID     int32       `json:"sportId"`
	LocationID  int32       `json:"locationId"`
	Location    string      `json:"location"`
	StartAt     time.Time   `json:"startAt"`
	LeftTeamID  int32       `json:"leftTeamId"`
	RightTeamID int32       `json:"rightTeamId"`
	LeftScore   int32       `json:"leftScore"`
	RightScore  int32       `json:"rightScore"`
	Result      MatchResult `json:"result"`
	Status      MatchStatus `json:"status"`
	Note        string      `json:"note"`
	JudgeTeamID *int32      `json:"judgeTeamId"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Involves returns true if the team plays on either side of the match.
func (m *Match) Involves(teamID int32) bool {
	return m.LeftTeamID == teamID || m.RightTeamID == teamID
}

// Opponent returns the team playing against teamID. The second return value is false
// when teamID is not part of the match.
func (m *Match) Opponent(teamID int32) (int32, bool) {
	switch teamID {
	case m.LeftTeamID:
		return m.RightTeamID, true
	case m.RightTeamID:
		return m.LeftTeamID, true
	default:
		return 0, false
	}
}

type MatchInput struct {
	GameID      int32       `json:"gameId"`
	SportID     int32       `json:"sportId"`
	LocationID  int32       `json:"locationId"`
	StartAt     time.Time   `json:"startAt"`
	LeftTeamID  int32       `json:"leftTeamId"`
	RightTeamID int32       `json:"rightTeamId"`
	LeftScore   int32       `json:"leftScore"`
	RightScore  int32       `json:"rightScore"`
	Result      MatchResult `json:"result"`
	Status      MatchStatus `json:"status"`
	Note        string      `json:"note"`
	JudgeTeamID *int32      `json:"judgeTeamId"`
}
