package controller

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/Sports-day/sports-day-demo/model"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoSport error = errors.New("none of the teams plays in a sport")
)

// FilterTeamGames keeps the games the team has entered.
func FilterTeamGames(team *model.Team, games []model.Game) []model.Game {
	out := make([]model.Game, 0)
	for _, g := range games {
		if team.HasEntered(g.ID) {
			out = append(out, g)
		}
	}
	return out
}

// EnteredGames keeps the games entered by any of the teams. Every game is returned
// once, in the order of games.
func EnteredGames(teams []model.Team, games []model.Game) []model.Game {
	out := make([]model.Game, 0)
	for _, g := range games {
		if slices.ContainsFunc(teams, func(t model.Team) bool { return t.HasEntered(g.ID) }) {
			out = append(out, g)
		}
	}
	return out
}

// SportOfTeams returns the first sport that has a game entered by one of the teams.
func SportOfTeams(sports []model.Sport, teams []model.Team) (*model.Sport, error) {
	for _, s := range sports {
		for _, t := range teams {
			if slices.ContainsFunc(t.EnteredGameIDs, s.HasGame) {
				return &s, nil
			}
		}
	}
	return nil, ErrNoSport
}

// SportGames keeps the games that belong to the sport.
func SportGames(sport *model.Sport, games []model.Game) []model.Game {
	out := make([]model.Game, 0)
	for _, g := range games {
		if sport.HasGame(g.ID) {
			out = append(out, g)
		}
	}
	return out
}

// TeamMatches keeps the matches in which one of the teams plays on either side.
func TeamMatches(matches []model.Match, teams []model.Team) []model.Match {
	out := make([]model.Match, 0)
	for _, m := range matches {
		if slices.ContainsFunc(teams, func(t model.Team) bool { return m.Involves(t.ID) }) {
			out = append(out, m)
		}
	}
	return out
}

// SortByWeight returns a copy of games with the heaviest first. Games with the same
// weight keep their order.
func SortByWeight(games []model.Game) []model.Game {
	out := slices.Clone(games)
	slices.SortStableFunc(out, func(a, b model.Game) int {
		return int(b.Weight) - int(a.Weight)
	})
	return out
}

type ScheduleEntry struct {
	Match model.Match `json:"match"`
	// The viewer's team. When two of the viewer's teams meet, it is the left one.
	TeamID     int32     `json:"teamId"`
	OpponentID int32     `json:"opponentId"`
	Opponent   string    `json:"opponent"`
	StartAt    time.Time `json:"startAt"`
	Location   string    `json:"location"`
}

// BuildSchedule turns the matches of my teams into schedule entries sorted by start
// time. allTeams is only used to look up the opponent's name.
func BuildSchedule(matches []model.Match, myTeams, allTeams []model.Team) []ScheduleEntry {
	names := make(map[int32]string, len(allTeams))
	for _, t := range allTeams {
		names[t.ID] = t.DisplayName()
	}

	out := make([]ScheduleEntry, 0, len(matches))
	for _, m := range matches {
		for _, t := range myTeams {
			opponent, found := m.Opponent(t.ID)
			if !found {
				continue
			}
			out = append(out, ScheduleEntry{
				Match:      m,
				TeamID:     t.ID,
				OpponentID: opponent,
				Opponent:   names[opponent],
				StartAt:    m.StartAt,
				Location:   m.Location,
			})
			break
		}
	}

	slices.SortStableFunc(out, func(a, b ScheduleEntry) int {
		return a.StartAt.Compare(b.StartAt)
	})
	return out
}

// fanOut calls fn for every item with at most limit calls in flight. The first
// error cancels the rest. Results keep the order of items.
func fanOut[I, O any](ctx context.Context, limit int, items []I, fn func(ctx context.Context, item I) (O, error)) ([]O, error) {
	out := make([]O, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			o, err := fn(ctx, item)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
