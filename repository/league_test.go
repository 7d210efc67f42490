package repository

import (
	"testing"

	"github.com/Sports-day/sports-day-demo/model"
)

func TestCalculateLeagueResult(t *testing.T) {
	finished := func(l, r, ls, rs int32) model.Match {
		return model.Match{LeftTeamID: l, RightTeamID: r, LeftScore: ls, RightScore: rs, Status: model.STATUS_FINISHED}
	}
	matches := []model.Match{
		finished(1, 2, 3, 0),
		finished(3, 4, 1, 1),
		finished(2, 3, 2, 2),
		finished(4, 1, 2, 1),
		{LeftTeamID: 1, RightTeamID: 3, LeftScore: 9, Status: model.STATUS_IN_PROGRESS},
	}

	res := CalculateLeagueResult(10, []int32{1, 2, 3, 4, 5, 6}, matches)
	if res.GameID != 10 {
		t.Errorf("expected game id 10, got %d", res.GameID)
	}

	expected := []struct {
		teamID int32
		rank   int32
		score  int32
	}{
		{teamID: 4, rank: 1, score: 4},
		{teamID: 1, rank: 2, score: 3},
		{teamID: 3, rank: 3, score: 2},
		{teamID: 2, rank: 4, score: 1},
		{teamID: 5, rank: 5, score: 0},
		{teamID: 6, rank: 5, score: 0},
	}
	if len(res.Teams) != len(expected) {
		t.Fatalf("expected %d teams, got %d", len(expected), len(res.Teams))
	}
	for i, e := range expected {
		a := res.Teams[i]
		if a.TeamID != e.teamID || a.Rank != e.rank || a.Score != e.score {
			t.Errorf("teams[%d] - expected: %+v, got: %+v", i, e, a)
		}
	}
}
