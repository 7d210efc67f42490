package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sports-day/sports-day-demo/fetch"
	"github.com/Sports-day/sports-day-demo/model"
)

// MyViews are the loaders of everything a viewer sees about themselves. They share
// their dependencies: waiting on several of them fetches the viewer's teams once.
// Nothing is fetched until one of them is started or waited on. A viewer whose teams
// play in no sport has a nil Sport and no sport matches.
type MyViews struct {
	Viewer model.Viewer

	Teams        *fetch.Loader[[]model.Team]
	Games        *fetch.Loader[[]model.Game]
	GameResults  *fetch.Loader[[]model.Result]
	Sport        *fetch.Loader[*model.Sport]
	SportMatches *fetch.Loader[[]model.Match]
	Schedule     *fetch.Loader[[]ScheduleEntry]
}

func (c *controller) My(ctx context.Context, viewer model.Viewer) *MyViews {
	v := &MyViews{Viewer: viewer}
	v.Teams = c.myTeams(ctx, viewer)
	v.Games = c.myTeamGames(ctx, viewer, v.Teams)
	v.GameResults = c.myGameResults(ctx, viewer, v.Games)
	v.Sport = c.mySport(ctx, viewer, v.Teams)
	v.SportMatches = c.mySportMatches(ctx, viewer, v.Sport, v.Teams)
	v.Schedule = c.mySchedule(ctx, viewer, v.SportMatches, v.Teams)
	return v
}

func (c *controller) myTeams(ctx context.Context, viewer model.Viewer) *fetch.Loader[[]model.Team] {
	return fetch.New(ctx, func(ctx context.Context) ([]model.Team, error) {
		return c.f.Users.Teams(ctx, viewer.UserID)
	}, c.opts("teams of user %d", viewer.UserID)...)
}

func (c *controller) myTeamGames(ctx context.Context, viewer model.Viewer, teams *fetch.Loader[[]model.Team]) *fetch.Loader[[]model.Game] {
	return fetch.After(ctx, teams,
		func(ctx context.Context, teams []model.Team) ([]model.Game, error) {
			games, err := c.f.Games.Index(ctx)
			if err != nil {
				return nil, fmt.Errorf("error getting games: %w", err)
			}
			return EnteredGames(teams, games), nil
		}, c.opts("games of user %d", viewer.UserID)...)
}

func (c *controller) myGameResults(ctx context.Context, viewer model.Viewer, games *fetch.Loader[[]model.Game]) *fetch.Loader[[]model.Result] {
	return fetch.After(ctx, games,
		func(ctx context.Context, games []model.Game) ([]model.Result, error) {
			return fanOut(ctx, c.concurrency, games, func(ctx context.Context, g model.Game) (model.Result, error) {
				return getResultAdapter(g.Type, c).getResult(ctx, g.ID)
			})
		}, c.opts("results of user %d", viewer.UserID)...)
}

// mySport settles with no data when none of the teams plays in a sport.
func (c *controller) mySport(ctx context.Context, viewer model.Viewer, teams *fetch.Loader[[]model.Team]) *fetch.Loader[*model.Sport] {
	return fetch.After(ctx, teams,
		func(ctx context.Context, teams []model.Team) (*model.Sport, error) {
			sports, err := c.f.Sports.Index(ctx)
			if err != nil {
				return nil, fmt.Errorf("error getting sports: %w", err)
			}
			sport, err := SportOfTeams(sports, teams)
			if errors.Is(err, ErrNoSport) {
				return nil, nil
			}
			return sport, err
		}, c.opts("sport of user %d", viewer.UserID)...)
}

func (c *controller) mySportMatches(ctx context.Context, viewer model.Viewer, sport *fetch.Loader[*model.Sport], teams *fetch.Loader[[]model.Team]) *fetch.Loader[[]model.Match] {
	return fetch.After2(ctx, sport, teams,
		func(ctx context.Context, sport *model.Sport, teams []model.Team) ([]model.Match, error) {
			if sport == nil {
				return []model.Match{}, nil
			}
			games, err := c.f.Games.Index(ctx)
			if err != nil {
				return nil, fmt.Errorf("error getting games: %w", err)
			}

			perGame, err := fanOut(ctx, c.concurrency, SportGames(sport, games), func(ctx context.Context, g model.Game) ([]model.Match, error) {
				matches, err := c.f.Games.Matches(ctx, g.ID)
				if err != nil {
					return nil, fmt.Errorf("error getting matches of game %d: %w", g.ID, err)
				}
				return TeamMatches(matches, teams), nil
			})
			if err != nil {
				return nil, err
			}

			out := make([]model.Match, 0)
			for _, matches := range perGame {
				out = append(out, matches...)
			}
			return out, nil
		}, c.opts("sport matches of user %d", viewer.UserID)...)
}

func (c *controller) mySchedule(ctx context.Context, viewer model.Viewer, matches *fetch.Loader[[]model.Match], teams *fetch.Loader[[]model.Team]) *fetch.Loader[[]ScheduleEntry] {
	return fetch.After2(ctx, matches, teams,
		func(ctx context.Context, matches []model.Match, myTeams []model.Team) ([]ScheduleEntry, error) {
			allTeams, err := c.f.Teams.Index(ctx)
			if err != nil {
				return nil, fmt.Errorf("error getting teams: %w", err)
			}
			return BuildSchedule(matches, myTeams, allTeams), nil
		}, c.opts("schedule of user %d", viewer.UserID)...)
}
