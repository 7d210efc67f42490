package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sports-day/sports-day-demo/factory"
	"github.com/Sports-day/sports-day-demo/fetch"
	"github.com/Sports-day/sports-day-demo/model"
	"github.com/itbasis/go-clock"
)

// C builds the loaders behind every view of the dashboard without worrying about any
// web layers. Loaders are bound to the ctx they are created with, cancelling it
// tears down a loader together with the dependencies created for it.
type C interface {
	Games(ctx context.Context) *fetch.Loader[[]model.Game]
	Game(ctx context.Context, id int32) *fetch.Loader[*model.Game]
	GameMatches(ctx context.Context, id int32) *fetch.Loader[[]model.Match]
	GameEntries(ctx context.Context, id int32) *fetch.Loader[[]model.Team]
	Matches(ctx context.Context) *fetch.Loader[[]model.Match]
	Match(ctx context.Context, id int32) *fetch.Loader[*model.Match]
	Teams(ctx context.Context) *fetch.Loader[[]model.Team]
	Team(ctx context.Context, id int32) *fetch.Loader[*model.Team]
	Sports(ctx context.Context) *fetch.Loader[[]model.Sport]
	Sport(ctx context.Context, id int32) *fetch.Loader[*model.Sport]

	// Games the team has entered, in the order of Games.
	TeamGames(ctx context.Context, teamID int32) *fetch.Loader[[]model.Game]
	// The league or tournament result of a game, depending on its type.
	GameResult(ctx context.Context, gameID int32) *fetch.Loader[model.Result]

	// My creates the "my ..." loaders of a viewer.
	My(ctx context.Context, viewer model.Viewer) *MyViews

	// Factories are used for writes. Writes do not refresh existing loaders.
	Factories() *factory.Set
}

type controller struct {
	clock       clock.Clock
	f           *factory.Set
	concurrency int
}

// New creates a controller. concurrency bounds the per-item fetches a single loader
// runs at the same time.
func New(clock clock.Clock, f *factory.Set, concurrency int) (C, error) {
	if f == nil {
		return nil, errors.New("factory set must be provided")
	}
	if concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1, got: %d", concurrency)
	}

	c := &controller{
		clock:       clock,
		f:           f,
		concurrency: concurrency,
	}
	return c, nil
}

func (c *controller) Factories() *factory.Set {
	return c.f
}

func (c *controller) opts(format string, args ...any) []fetch.Option {
	return []fetch.Option{
		fetch.WithName(fmt.Sprintf(format, args...)),
		fetch.WithClock(c.clock),
	}
}

func (c *controller) Games(ctx context.Context) *fetch.Loader[[]model.Game] {
	return fetch.New(ctx, c.f.Games.Index, c.opts("games")...)
}

func (c *controller) Game(ctx context.Context, id int32) *fetch.Loader[*model.Game] {
	return fetch.New(ctx, func(ctx context.Context) (*model.Game, error) {
		return c.f.Games.Show(ctx, id)
	}, c.opts("game %d", id)...)
}

func (c *controller) GameMatches(ctx context.Context, id int32) *fetch.Loader[[]model.Match] {
	return fetch.New(ctx, func(ctx context.Context) ([]model.Match, error) {
		return c.f.Games.Matches(ctx, id)
	}, c.opts("matches of game %d", id)...)
}

func (c *controller) GameEntries(ctx context.Context, id int32) *fetch.Loader[[]model.Team] {
	return fetch.New(ctx, func(ctx context.Context) ([]model.Team, error) {
		return c.f.Games.Entries(ctx, id)
	}, c.opts("entries of game %d", id)...)
}

func (c *controller) Matches(ctx context.Context) *fetch.Loader[[]model.Match] {
	return fetch.New(ctx, c.f.Matches.Index, c.opts("matches")...)
}

func (c *controller) Match(ctx context.Context, id int32) *fetch.Loader[*model.Match] {
	return fetch.New(ctx, func(ctx context.Context) (*model.Match, error) {
		return c.f.Matches.Show(ctx, id)
	}, c.opts("match %d", id)...)
}

func (c *controller) Teams(ctx context.Context) *fetch.Loader[[]model.Team] {
	return fetch.New(ctx, c.f.Teams.Index, c.opts("teams")...)
}

func (c *controller) Team(ctx context.Context, id int32) *fetch.Loader[*model.Team] {
	return fetch.New(ctx, func(ctx context.Context) (*model.Team, error) {
		return c.f.Teams.Show(ctx, id)
	}, c.opts("team %d", id)...)
}

func (c *controller) Sports(ctx context.Context) *fetch.Loader[[]model.Sport] {
	return fetch.New(ctx, c.f.Sports.Index, c.opts("sports")...)
}

func (c *controller) Sport(ctx context.Context, id int32) *fetch.Loader[*model.Sport] {
	return fetch.New(ctx, func(ctx context.Context) (*model.Sport, error) {
		return c.f.Sports.Show(ctx, id)
	}, c.opts("sport %d", id)...)
}

// TeamGames fetches the team and then the games on every cycle.
func (c *controller) TeamGames(ctx context.Context, teamID int32) *fetch.Loader[[]model.Game] {
	return fetch.New(ctx, func(ctx context.Context) ([]model.Game, error) {
		team, err := c.f.Teams.Show(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("error getting team %d: %w", teamID, err)
		}
		games, err := c.f.Games.Index(ctx)
		if err != nil {
			return nil, fmt.Errorf("error getting games: %w", err)
		}
		return FilterTeamGames(team, games), nil
	}, c.opts("games of team %d", teamID)...)
}

func (c *controller) GameResult(ctx context.Context, gameID int32) *fetch.Loader[model.Result] {
	return fetch.After(ctx, c.Game(ctx, gameID),
		func(ctx context.Context, g *model.Game) (model.Result, error) {
			return getResultAdapter(g.Type, c).getResult(ctx, g.ID)
		}, c.opts("result of game %d", gameID)...)
}
