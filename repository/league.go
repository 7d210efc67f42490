package repository

import (
	"slices"

	"github.com/Sports-day/sports-day-demo/model"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

// CalculateLeagueResult builds league standings from the finished matches of a
// game. Teams are ordered by points, then goal difference, then goals scored. Teams
// that tie on all three share a rank.
func CalculateLeagueResult(gameID int32, teamIDs []int32, matches []model.Match) *model.LeagueResult {
	rows := make(map[int32]*model.LeagueTeamResult, len(teamIDs))
	order := make([]int32, 0, len(teamIDs))
	row := func(id int32) *model.LeagueTeamResult {
		r, ok := rows[id]
		if !ok {
			r = &model.LeagueTeamResult{TeamID: id}
			rows[id] = r
			order = append(order, id)
		}
		return r
	}
	for _, id := range teamIDs {
		row(id)
	}

	for _, m := range matches {
		if m.Status != model.STATUS_FINISHED {
			continue
		}
		left, right := row(m.LeftTeamID), row(m.RightTeamID)
		left.Goal += m.LeftScore
		left.LostGoal += m.RightScore
		right.Goal += m.RightScore
		right.LostGoal += m.LeftScore

		switch matchResult(m) {
		case model.RESULT_LEFT_WIN:
			left.Win++
			right.Lose++
		case model.RESULT_RIGHT_WIN:
			right.Win++
			left.Lose++
		default:
			left.Draw++
			right.Draw++
		}
	}

	res := &model.LeagueResult{GameID: gameID, Teams: make([]model.LeagueTeamResult, 0, len(order))}
	for _, id := range order {
		r := rows[id]
		r.Score = r.Win*pointsWin + r.Draw*pointsDraw
		res.Teams = append(res.Teams, *r)
	}

	slices.SortStableFunc(res.Teams, compareStanding)
	for i := range res.Teams {
		if i > 0 && compareStanding(res.Teams[i-1], res.Teams[i]) == 0 {
			res.Teams[i].Rank = res.Teams[i-1].Rank
		} else {
			res.Teams[i].Rank = int32(i + 1)
		}
	}
	return res
}

func matchResult(m model.Match) model.MatchResult {
	if m.Result != "" {
		return m.Result
	}
	switch {
	case m.LeftScore > m.RightScore:
		return model.RESULT_LEFT_WIN
	case m.LeftScore < m.RightScore:
		return model.RESULT_RIGHT_WIN
	default:
		return model.RESULT_DRAW
	}
}

func compareStanding(a, b model.LeagueTeamResult) int {
	if a.Score != b.Score {
		return int(b.Score - a.Score)
	}
	if d := (b.Goal - b.LostGoal) - (a.Goal - a.LostGoal); d != 0 {
		return int(d)
	}
	return int(b.Goal - a.Goal)
}
