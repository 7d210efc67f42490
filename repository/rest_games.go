package repository

import (
	"context"

	"github.com/Sports-day/sports-day-demo/model"
)

func (r *restRepository) GetGames(ctx context.Context) ([]model.Game, error) {
	return getList[model.Game](ctx, r.client, "/games")
}

func (r *restRepository) GetGame(ctx context.Context, id int32) (*model.Game, error) {
	return getOne[model.Game](ctx, r.client, "/games/%d", id)
}

func (r *restRepository) DeleteGame(ctx context.Context, id int32) error {
	return del(ctx, r.client, "/games/%d", id)
}

func (r *restRepository) CreateGame(ctx context.Context, in model.GameInput) (*model.Game, error) {
	return post[model.Game](ctx, r.client, in, "/games")
}

func (r *restRepository) UpdateGame(ctx context.Context, id int32, in model.GameInput) (*model.Game, error) {
	return put[model.Game](ctx, r.client, in, "/games/%d", id)
}

func (r *restRepository) GetGameMatches(ctx context.Context, id int32) ([]model.Match, error) {
	return getList[model.Match](ctx, r.client, "/games/%d/matches", id)
}

func (r *restRepository) GetGameEntries(ctx context.Context, id int32) ([]model.Team, error) {
	return getList[model.Team](ctx, r.client, "/games/%d/entries", id)
}

func (r *restRepository) GetLeagueResult(ctx context.Context, id int32) (*model.LeagueResult, error) {
	return getOne[model.LeagueResult](ctx, r.client, "/games/%d/result/league", id)
}

func (r *restRepository) GetTournamentResult(ctx context.Context, id int32) (*model.TournamentResult, error) {
	return getOne[model.TournamentResult](ctx, r.client, "/games/%d/result/tournament", id)
}
