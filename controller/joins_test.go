package controller

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Sports-day/sports-day-demo/model"
)

func TestFilterTeamGames(t *testing.T) {
	games := []model.Game{{ID: 30}, {ID: 10}, {ID: 20}}

	tests := map[string]struct {
		entered []int32
		ex      []int32
	}{
		"keeps games order": {entered: []int32{10, 30}, ex: []int32{30, 10}},
		"unknown game":      {entered: []int32{99}, ex: []int32{}},
		"nothing entered":   {entered: nil, ex: []int32{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			team := &model.Team{ID: 1, EnteredGameIDs: tc.entered}
			if got := gameIDs(FilterTeamGames(team, games)); !reflect.DeepEqual(got, tc.ex) {
				t.Errorf("expected %v, got %v", tc.ex, got)
			}
		})
	}
}

func TestEnteredGames_noDuplicates(t *testing.T) {
	teams := []model.Team{
		{ID: 1, EnteredGameIDs: []int32{20, 10}},
		{ID: 2, EnteredGameIDs: []int32{10, 20}},
		{ID: 3, EnteredGameIDs: []int32{40}},
	}
	games := []model.Game{{ID: 10}, {ID: 20}, {ID: 30}, {ID: 40}}

	if got := gameIDs(EnteredGames(teams, games)); !reflect.DeepEqual(got, []int32{10, 20, 40}) {
		t.Errorf("expected [10 20 40], got %v", got)
	}
	if got := EnteredGames(nil, games); len(got) != 0 {
		t.Errorf("expected no games without teams, got %v", got)
	}
}

func TestSportOfTeams(t *testing.T) {
	sports := []model.Sport{
		{ID: 1, GameIDs: []int32{10, 20}},
		{ID: 2, GameIDs: []int32{30}},
	}

	s, err := SportOfTeams(sports, []model.Team{{ID: 4, EnteredGameIDs: []int32{30, 10}}})
	if err != nil || s.ID != 1 {
		t.Errorf("expected the first sport in sports order, got %v, %v", s, err)
	}

	s, err = SportOfTeams(sports, []model.Team{{ID: 5, EnteredGameIDs: []int32{30}}})
	if err != nil || s.ID != 2 {
		t.Errorf("expected sport 2, got %v, %v", s, err)
	}

	if _, err := SportOfTeams(sports, []model.Team{{ID: 6, EnteredGameIDs: []int32{50}}}); !errors.Is(err, ErrNoSport) {
		t.Errorf("expected ErrNoSport, got %v", err)
	}
}

func TestTeamMatches(t *testing.T) {
	matches := []model.Match{
		{ID: 1, LeftTeamID: 1, RightTeamID: 2},
		{ID: 2, LeftTeamID: 3, RightTeamID: 4},
		{ID: 3, LeftTeamID: 4, RightTeamID: 1},
		{ID: 4, LeftTeamID: 2, RightTeamID: 5},
	}
	teams := []model.Team{{ID: 1}, {ID: 5}}

	if got := matchIDs(TeamMatches(matches, teams)); !reflect.DeepEqual(got, []int32{1, 3, 4}) {
		t.Errorf("expected matches [1 3 4], got %v", got)
	}
}

func TestSortByWeight(t *testing.T) {
	games := []model.Game{{ID: 1, Weight: 10}, {ID: 2, Weight: 30}, {ID: 3, Weight: 10}, {ID: 4, Weight: 20}}

	if got := gameIDs(SortByWeight(games)); !reflect.DeepEqual(got, []int32{2, 4, 1, 3}) {
		t.Errorf("expected [2 4 1 3], got %v", got)
	}
	if games[0].ID != 1 {
		t.Errorf("the input must not be reordered")
	}
}

func TestBuildSchedule(t *testing.T) {
	start := time.Date(2024, time.May, 24, 9, 0, 0, 0, time.UTC)
	matches := []model.Match{
		{ID: 1, LeftTeamID: 1, RightTeamID: 3, StartAt: start.Add(2 * time.Hour), Location: "体育館"},
		{ID: 2, LeftTeamID: 4, RightTeamID: 2, StartAt: start, Location: "グラウンドA"},
		{ID: 3, LeftTeamID: 1, RightTeamID: 2, StartAt: start.Add(time.Hour)},
	}
	myTeams := []model.Team{{ID: 1}, {ID: 2}}
	allTeams := []model.Team{
		{ID: 1, Name: "1-1 Aチーム"},
		{ID: 2, Name: "1-1 Bチーム"},
		{ID: 3, Name: "1-2 Aチーム"},
		{ID: 4, Name: "2-1 Cチーム"},
	}

	got := BuildSchedule(matches, myTeams, allTeams)
	ex := []ScheduleEntry{
		{Match: matches[1], TeamID: 2, OpponentID: 4, Opponent: "Cチーム", StartAt: start, Location: "グラウンドA"},
		{Match: matches[2], TeamID: 1, OpponentID: 2, Opponent: "Bチーム", StartAt: start.Add(time.Hour)},
		{Match: matches[0], TeamID: 1, OpponentID: 3, Opponent: "Aチーム", StartAt: start.Add(2 * time.Hour), Location: "体育館"},
	}
	if !reflect.DeepEqual(got, ex) {
		t.Errorf("expected %+v, got %+v", ex, got)
	}
}

func TestFanOut_keepsOrder(t *testing.T) {
	items := []int{5, 4, 3, 2, 1}
	var inflight, peak atomic.Int32

	got, err := fanOut(context.Background(), 2, items, func(ctx context.Context, i int) (int, error) {
		n := inflight.Add(1)
		defer inflight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		// Later items finish first.
		time.Sleep(time.Duration(i) * 5 * time.Millisecond)
		return i * 10, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{50, 40, 30, 20, 10}) {
		t.Errorf("expected results in input order, got %v", got)
	}
	if p := peak.Load(); p > 2 {
		t.Errorf("expected at most 2 calls in flight, got %d", p)
	}
}

func TestFanOut_firstErrorCancels(t *testing.T) {
	errBoom := errors.New("boom")
	got, err := fanOut(context.Background(), 3, []int{1, 2, 3}, func(ctx context.Context, i int) (int, error) {
		if i == 1 {
			return 0, errBoom
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(5 * time.Second):
			return i, nil
		}
	})
	if !errors.Is(err, errBoom) || got != nil {
		t.Errorf("expected the first error and no results, got %v, %v", got, err)
	}
}
