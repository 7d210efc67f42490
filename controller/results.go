package controller

import (
	"context"
	"fmt"

	"github.com/Sports-day/sports-day-demo/model"
)

// Every game type has an adapter that knows which result to fetch for it. Types
// without one get a nilResultAdapter.
type resultAdapter interface {
	getResult(ctx context.Context, gameID int32) (model.Result, error)
}

func getResultAdapter(t model.GameType, c *controller) resultAdapter {
	switch t {
	case model.GAME_LEAGUE:
		return &leagueAdapter{c}
	case model.GAME_TOURNAMENT:
		return &tournamentAdapter{c}
	default:
		return &nilResultAdapter{err: fmt.Errorf("%w: '%s'", model.ErrUnsupportedGameType, t)}
	}
}

type leagueAdapter struct {
	c *controller
}

func (a *leagueAdapter) getResult(ctx context.Context, gameID int32) (model.Result, error) {
	r, err := a.c.f.Games.LeagueResult(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("error getting league result of game %d: %w", gameID, err)
	}
	return r, nil
}

type tournamentAdapter struct {
	c *controller
}

func (a *tournamentAdapter) getResult(ctx context.Context, gameID int32) (model.Result, error) {
	r, err := a.c.f.Games.TournamentResult(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("error getting tournament result of game %d: %w", gameID, err)
	}
	return r, nil
}

// nilResultAdapter exists so that an adapter can always be returned. The error is
// reported by the loader instead of leaving the result unresolved.
type nilResultAdapter struct {
	err error
}

func (a *nilResultAdapter) getResult(ctx context.Context, gameID int32) (model.Result, error) {
	return nil, a.err
}
