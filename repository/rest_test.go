package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/Sports-day/sports-day-demo/platforms/sportsday"
	"github.com/Sports-day/sports-day-demo/testutils"
)

func newTestREST(t *testing.T) (Repository, *testutils.FakeSportsDayServer) {
	server := testutils.NewFakeSportsDayServer()
	t.Cleanup(server.Close)
	return NewREST(sportsday.NewForTest(server.URL())), server
}

func TestREST_getGames(t *testing.T) {
	repo, _ := newTestREST(t)

	games, err := repo.GetGames(context.Background())
	if err != nil {
		t.Fatalf("error getting games: %v", err)
	}
	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}

	expected := []struct {
		id  int32
		typ model.GameType
	}{
		{id: 10, typ: model.GAME_LEAGUE},
		{id: 20, typ: model.GAME_TOURNAMENT},
		{id: 30, typ: model.GameType("swiss")},
	}
	for i, e := range expected {
		if games[i].ID != e.id || games[i].Type != e.typ {
			t.Errorf("games[%d] - expected: %d/%s, got: %d/%s", i, e.id, e.typ, games[i].ID, games[i].Type)
		}
	}
}

func TestREST_relations(t *testing.T) {
	repo, _ := newTestREST(t)
	ctx := context.Background()

	matches, err := repo.GetGameMatches(ctx, 10)
	if err != nil {
		t.Fatalf("error getting game matches: %v", err)
	}
	ids := make([]int32, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	if len(ids) != 3 || ids[0] != 100 || ids[1] != 101 || ids[2] != 102 {
		t.Errorf("unexpected game matches: %v", ids)
	}

	teams, err := repo.GetUserTeams(ctx, 1)
	if err != nil {
		t.Fatalf("error getting user teams: %v", err)
	}
	if len(teams) != 2 || teams[0].ID != 1 || teams[1].ID != 2 {
		t.Errorf("unexpected user teams: %v", teams)
	}

	empty, err := repo.GetUserTeams(ctx, 9)
	if err != nil {
		t.Fatalf("error getting user teams: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected an empty, non-nil list, got %v", empty)
	}
}

func TestREST_results(t *testing.T) {
	repo, server := newTestREST(t)
	ctx := context.Background()

	league, err := repo.GetLeagueResult(ctx, 10)
	if err != nil {
		t.Fatalf("error getting league result: %v", err)
	}
	if league.GameID != 10 || len(league.Teams) != 4 || league.Teams[0].TeamID != 1 {
		t.Errorf("unexpected league result: %+v", league)
	}

	tournament, err := repo.GetTournamentResult(ctx, 20)
	if err != nil {
		t.Fatalf("error getting tournament result: %v", err)
	}
	if tournament.GameID != 20 || len(tournament.Ranks) != 2 || tournament.Ranks[0].TeamID != 3 {
		t.Errorf("unexpected tournament result: %+v", tournament)
	}

	if n := server.Requests(http.MethodGet, "/games/10/result/tournament"); n != 0 {
		t.Errorf("expected no tournament request for game 10, got %d", n)
	}
}

func TestREST_notFound(t *testing.T) {
	repo, _ := newTestREST(t)

	_, err := repo.GetGame(context.Background(), 12345)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestREST_serverError(t *testing.T) {
	repo, server := newTestREST(t)
	server.Fail("/teams", http.StatusBadGateway)

	_, err := repo.GetTeams(context.Background())
	if err == nil {
		t.Fatalf("expected an error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Errorf("a 502 should not be reported as not found: %v", err)
	}

	var se *sportsday.StatusError
	if !errors.As(err, &se) || se.StatusCode != http.StatusBadGateway {
		t.Errorf("expected the status error to be wrapped, got %v", err)
	}
}

func TestREST_writes(t *testing.T) {
	repo, server := newTestREST(t)
	ctx := context.Background()

	s, err := repo.CreateSport(ctx, model.SportInput{Name: "卓球", Weight: 3})
	if err != nil {
		t.Fatalf("error creating sport: %v", err)
	}
	if s.ID != 999 || s.Name != "卓球" || s.Weight != 3 {
		t.Errorf("unexpected created sport: %+v", s)
	}

	s, err = repo.UpdateSport(ctx, 1, model.SportInput{Name: "フットサル"})
	if err != nil {
		t.Fatalf("error updating sport: %v", err)
	}
	if s.ID != 1 || s.Name != "フットサル" {
		t.Errorf("unexpected updated sport: %+v", s)
	}

	if err := repo.DeleteSport(ctx, 1); err != nil {
		t.Errorf("error deleting sport: %v", err)
	}

	a, err := repo.SetMicrosoftAccountRole(ctx, model.AccountMe, model.ROLE_USER)
	if err != nil {
		t.Fatalf("error setting role: %v", err)
	}
	if a.Role != model.ROLE_USER {
		t.Errorf("expected role USER, got %s", a.Role)
	}

	if err := repo.LinkMicrosoftAccount(ctx, model.AccountID(1), 2); err != nil {
		t.Errorf("error linking account: %v", err)
	}
	if err := repo.LinkLaterMicrosoftAccount(ctx, model.AccountMe); err != nil {
		t.Errorf("error linking account later: %v", err)
	}
	if err := repo.UnlinkMicrosoftAccount(ctx, model.AccountMe); err != nil {
		t.Errorf("error unlinking account: %v", err)
	}

	checks := []struct {
		method string
		path   string
	}{
		{method: http.MethodPost, path: "/sports"},
		{method: http.MethodPut, path: "/sports/1"},
		{method: http.MethodDelete, path: "/sports/1"},
		{method: http.MethodPut, path: "/microsoft-accounts/me/role"},
		{method: http.MethodPost, path: "/microsoft-accounts/1/link"},
		{method: http.MethodPost, path: "/microsoft-accounts/me/link-later"},
		{method: http.MethodDelete, path: "/microsoft-accounts/me/link"},
	}
	for _, c := range checks {
		if n := server.Requests(c.method, c.path); n != 1 {
			t.Errorf("%s %s - expected 1 request, got %d", c.method, c.path, n)
		}
	}
}
