package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/Sports-day/sports-day-demo/containers"
	"github.com/Sports-day/sports-day-demo/model"
	"github.com/Sports-day/sports-day-demo/repository"
	"github.com/itbasis/go-clock"
)

// A test global db instance to use for all of the tests instead of setting up a new one each time.
var testDB DB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	container := containers.NewDBContainer()

	clock := clock.New()

	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if container != nil {
				container.Shutdown()
			}
			fmt.Println("panic")
		}
	}()

	var err error
	testDB, err = New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		fmt.Printf("error connecting to db: %v", err)
		os.Exit(-1)
	}

	if err := testDB.Seed(context.Background(), repository.DefaultFixtures()); err != nil {
		fmt.Printf("error seeding db: %v", err)
		os.Exit(-1)
	}

	code := m.Run()
	testDB.Close()
	container.Shutdown()
	os.Exit(code)
}

func TestDB_seededRelations(t *testing.T) {
	ctx := context.Background()

	g, err := testDB.GetGame(ctx, 10)
	assertFatalf(t, err == nil, "error getting game: %v", err)
	assertEquals(t, "game.Type", model.GAME_LEAGUE, g.Type)
	assertTrue(t, "game.EnteredTeamIDs", slices.Equal([]int32{1, 2, 3}, g.EnteredTeamIDs))

	s, err := testDB.GetSport(ctx, 1)
	assertFatalf(t, err == nil, "error getting sport: %v", err)
	assertTrue(t, "sport.GameIDs", slices.Equal([]int32{10, 20}, s.GameIDs))

	teams, err := testDB.GetUserTeams(ctx, 1)
	assertFatalf(t, err == nil, "error getting user teams: %v", err)
	assertEquals(t, "len(teams)", 2, len(teams))
	assertEquals(t, "teams[0].ID", int32(1), teams[0].ID)
	assertTrue(t, "teams[1].UserIDs", slices.Equal([]int32{1, 2}, teams[1].UserIDs))

	matches, err := testDB.GetGameMatches(ctx, 10)
	assertFatalf(t, err == nil, "error getting game matches: %v", err)
	assertEquals(t, "len(matches)", 3, len(matches))
	assertTrue(t, "matches[2].JudgeTeamID", matches[2].JudgeTeamID != nil && *matches[2].JudgeTeamID == 2)
	assertTrue(t, "matches[0].JudgeTeamID", matches[0].JudgeTeamID == nil)
}

func TestDB_sportCRUD(t *testing.T) {
	ctx := context.Background()

	s, err := testDB.CreateSport(ctx, model.SportInput{Name: "卓球", Description: "第二体育館", Weight: 2})
	assertFatalf(t, err == nil, "error creating sport: %v", err)
	assertTrue(t, "sport.ID", s.ID > 2)
	assertEquals(t, "sport.Name", "卓球", s.Name)
	assertTrue(t, "sport.GameIDs", s.GameIDs != nil && len(s.GameIDs) == 0)

	s, err = testDB.UpdateSport(ctx, s.ID, model.SportInput{Name: "卓球", Description: "体育館", Weight: 7})
	assertFatalf(t, err == nil, "error updating sport: %v", err)
	assertEquals(t, "sport.Weight", int32(7), s.Weight)
	assertEquals(t, "sport.Description", "体育館", s.Description)

	err = testDB.DeleteSport(ctx, s.ID)
	assertFatalf(t, err == nil, "error deleting sport: %v", err)

	_, err = testDB.GetSport(ctx, s.ID)
	assertTrue(t, "deleted sport not found", errors.Is(err, repository.ErrNotFound))

	err = testDB.DeleteSport(ctx, s.ID)
	assertTrue(t, "deleting twice not found", errors.Is(err, repository.ErrNotFound))
}

func TestDB_gameLifecycle(t *testing.T) {
	ctx := context.Background()

	team, err := testDB.CreateTeam(ctx, model.TeamInput{Name: "2-1 Aチーム", ClassID: 1})
	assertFatalf(t, err == nil, "error creating team: %v", err)

	g, err := testDB.CreateGame(ctx, model.GameInput{Name: "綱引き", SportID: 2, Type: model.GAME_TOURNAMENT, Weight: 5})
	assertFatalf(t, err == nil, "error creating game: %v", err)
	assertEquals(t, "game.Type", model.GAME_TOURNAMENT, g.Type)

	err = testDB.EnterTeam(ctx, g.ID, team.ID)
	assertFatalf(t, err == nil, "error entering team: %v", err)
	err = testDB.EnterTeam(ctx, g.ID, 9999)
	assertTrue(t, "entering unknown team", errors.Is(err, repository.ErrNotFound))

	err = testDB.SaveTournamentRanks(ctx, g.ID, []model.TournamentRank{{TeamID: team.ID, Rank: 1}})
	assertFatalf(t, err == nil, "error saving ranks: %v", err)

	res, err := testDB.GetTournamentResult(ctx, g.ID)
	assertFatalf(t, err == nil, "error getting tournament result: %v", err)
	assertEquals(t, "len(res.Ranks)", 1, len(res.Ranks))
	assertEquals(t, "res.Ranks[0].TeamID", team.ID, res.Ranks[0].TeamID)

	_, err = testDB.GetLeagueResult(ctx, g.ID)
	assertTrue(t, "league result of a tournament", errors.Is(err, model.ErrUnsupportedGameType))

	start := time.Date(2024, time.May, 24, 15, 0, 0, 0, time.UTC)
	m, err := testDB.CreateMatch(ctx, model.MatchInput{GameID: g.ID, SportID: 2, StartAt: start, LeftTeamID: team.ID, RightTeamID: 1, Status: model.STATUS_STANDBY})
	assertFatalf(t, err == nil, "error creating match: %v", err)
	assertTrue(t, "match.StartAt", m.StartAt.Equal(start))

	m, err = testDB.UpdateMatch(ctx, m.ID, model.MatchInput{GameID: g.ID, SportID: 2, StartAt: start, LeftTeamID: team.ID, RightTeamID: 1, LeftScore: 3, Result: model.RESULT_LEFT_WIN, Status: model.STATUS_FINISHED})
	assertFatalf(t, err == nil, "error updating match: %v", err)
	assertEquals(t, "match.Status", model.STATUS_FINISHED, m.Status)

	err = testDB.DeleteGame(ctx, g.ID)
	assertFatalf(t, err == nil, "error deleting game: %v", err)

	_, err = testDB.GetMatch(ctx, m.ID)
	assertTrue(t, "matches are deleted with their game", errors.Is(err, repository.ErrNotFound))

	team, err = testDB.GetTeam(ctx, team.ID)
	assertFatalf(t, err == nil, "error getting team: %v", err)
	assertEquals(t, "len(team.EnteredGameIDs)", 0, len(team.EnteredGameIDs))
}

func TestDB_leagueResult(t *testing.T) {
	res, err := testDB.GetLeagueResult(context.Background(), 10)
	assertFatalf(t, err == nil, "error getting league result: %v", err)
	assertEquals(t, "len(res.Teams)", 3, len(res.Teams))
	assertEquals(t, "res.Teams[0].TeamID", int32(1), res.Teams[0].TeamID)
	assertEquals(t, "res.Teams[0].Score", int32(3), res.Teams[0].Score)
}

func TestDB_accounts(t *testing.T) {
	ctx := context.Background()

	_, err := testDB.GetMicrosoftAccount(ctx, model.AccountMe)
	assertTrue(t, "me without session", errors.Is(err, ErrNoSession))

	name := "jiro"
	a := &model.MicrosoftAccount{Email: "jiro@example.com", Name: "Jiro", MailAccountName: &name}
	err = testDB.AddMicrosoftAccount(ctx, a)
	assertFatalf(t, err == nil, "error adding account: %v", err)
	assertEquals(t, "a.Role", model.ROLE_USER, a.Role)

	ref := model.AccountID(a.ID)
	a, err = testDB.SetMicrosoftAccountRole(ctx, ref, model.ROLE_ADMIN)
	assertFatalf(t, err == nil, "error setting role: %v", err)
	assertEquals(t, "a.Role", model.ROLE_ADMIN, a.Role)
	assertTrue(t, "a.MailAccountName", a.MailAccountName != nil && *a.MailAccountName == "jiro")

	err = testDB.LinkMicrosoftAccount(ctx, ref, 9999)
	assertTrue(t, "linking unknown user", errors.Is(err, repository.ErrNotFound))

	err = testDB.LinkMicrosoftAccount(ctx, ref, 3)
	assertFatalf(t, err == nil, "error linking account: %v", err)
	a, _ = testDB.GetMicrosoftAccount(ctx, ref)
	assertTrue(t, "a.IsLinked()", a.IsLinked() && *a.UserID == 3)

	err = testDB.UnlinkMicrosoftAccount(ctx, ref)
	assertFatalf(t, err == nil, "error unlinking account: %v", err)
	err = testDB.LinkLaterMicrosoftAccount(ctx, ref)
	assertFatalf(t, err == nil, "error setting link later: %v", err)
	a, _ = testDB.GetMicrosoftAccount(ctx, ref)
	assertTrue(t, "unlinked", !a.IsLinked())
	assertTrue(t, "a.LinkLater", a.LinkLater)

	err = testDB.DeleteMicrosoftAccount(ctx, ref)
	assertFatalf(t, err == nil, "error deleting account: %v", err)
}

func TestDB_relationsOfUnknownParents(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{name: "GetGameMatches", call: func() error { _, err := testDB.GetGameMatches(ctx, 9999); return err }},
		{name: "GetGameEntries", call: func() error { _, err := testDB.GetGameEntries(ctx, 9999); return err }},
		{name: "GetTeamUsers", call: func() error { _, err := testDB.GetTeamUsers(ctx, 9999); return err }},
		{name: "GetUserTeams", call: func() error { _, err := testDB.GetUserTeams(ctx, 9999); return err }},
		{name: "GetClassUsers", call: func() error { _, err := testDB.GetClassUsers(ctx, 9999); return err }},
		{name: "UpdateTeam", call: func() error { _, err := testDB.UpdateTeam(ctx, 9999, model.TeamInput{}); return err }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			assertTrue(t, tc.name, errors.Is(err, repository.ErrNotFound))
		})
	}
}

func assertFatalf(t *testing.T, c bool, f string, args ...any) {
	if !c {
		t.Fatalf(f, args...)
	}
}

func assertEquals(t *testing.T, field string, expected, actual any) {
	if expected != actual {
		t.Errorf("%s - expected: '%v', got: '%v'", field, expected, actual)
	}
}

func assertTrue(t *testing.T, field string, cond bool) {
	if !cond {
		t.Errorf("%s - expected to be true but it was false", field)
	}
}
