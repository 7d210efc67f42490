package repository

import (
	"context"

	"github.com/Sports-day/sports-day-demo/model"
)

func (r *restRepository) GetSports(ctx context.Context) ([]model.Sport, error) {
	return getList[model.Sport](ctx, r.client, "/sports")
}

func (r *restRepository) GetSport(ctx context.Context, id int32) (*model.Sport, error) {
	return getOne[model.Sport](ctx, r.client, "/sports/%d", id)
}

func (r *restRepository) DeleteSport(ctx context.Context, id int32) error {
	return del(ctx, r.client, "/sports/%d", id)
}

func (r *restRepository) CreateSport(ctx context.Context, in model.SportInput) (*model.Sport, error) {
	return post[model.Sport](ctx, r.client, in, "/sports")
}

func (r *restRepository) UpdateSport(ctx context.Context, id int32, in model.SportInput) (*model.Sport, error) {
	return put[model.Sport](ctx, r.client, in, "/sports/%d", id)
}

func (r *restRepository) GetClasses(ctx context.Context) ([]model.Class, error) {
	return getList[model.Class](ctx, r.client, "/classes")
}

func (r *restRepository) GetClass(ctx context.Context, id int32) (*model.Class, error) {
	return getOne[model.Class](ctx, r.client, "/classes/%d", id)
}

func (r *restRepository) DeleteClass(ctx context.Context, id int32) error {
	return del(ctx, r.client, "/classes/%d", id)
}

func (r *restRepository) CreateClass(ctx context.Context, in model.ClassInput) (*model.Class, error) {
	return post[model.Class](ctx, r.client, in, "/classes")
}

func (r *restRepository) UpdateClass(ctx context.Context, id int32, in model.ClassInput) (*model.Class, error) {
	return put[model.Class](ctx, r.client, in, "/classes/%d", id)
}

func (r *restRepository) GetClassUsers(ctx context.Context, id int32) ([]model.User, error) {
	return getList[model.User](ctx, r.client, "/classes/%d/users", id)
}

func (r *restRepository) GetImages(ctx context.Context) ([]model.Image, error) {
	return getList[model.Image](ctx, r.client, "/images")
}

func (r *restRepository) GetImage(ctx context.Context, id int32) (*model.Image, error) {
	return getOne[model.Image](ctx, r.client, "/images/%d", id)
}

func (r *restRepository) DeleteImage(ctx context.Context, id int32) error {
	return del(ctx, r.client, "/images/%d", id)
}

func (r *restRepository) CreateImage(ctx context.Context, in model.ImageInput) (*model.Image, error) {
	return post[model.Image](ctx, r.client, in, "/images")
}

func (r *restRepository) GetMatches(ctx context.Context) ([]model.Match, error) {
	return getList[model.Match](ctx, r.client, "/matches")
}

func (r *restRepository) GetMatch(ctx context.Context, id int32) (*model.Match, error) {
	return getOne[model.Match](ctx, r.client, "/matches/%d", id)
}

func (r *restRepository) DeleteMatch(ctx context.Context, id int32) error {
	return del(ctx, r.client, "/matches/%d", id)
}

func (r *restRepository) CreateMatch(ctx context.Context, in model.MatchInput) (*model.Match, error) {
	return post[model.Match](ctx, r.client, in, "/matches")
}

func (r *restRepository) UpdateMatch(ctx context.Context, id int32, in model.MatchInput) (*model.Match, error) {
	return put[model.Match](ctx, r.client, in, "/matches/%d", id)
}

func (r *restRepository) GetTeams(ctx context.Context) ([]model.Team, error) {
	return getList[model.Team](ctx, r.client, "/teams")
}

func (r *restRepository) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	return getOne[model.Team](ctx, r.client, "/teams/%d", id)
}

func (r *restRepository) DeleteTeam(ctx context.Context, id int32) error {
	return del(ctx, r.client, "/teams/%d", id)
}

func (r *restRepository) CreateTeam(ctx context.Context, in model.TeamInput) (*model.Team, error) {
	return post[model.Team](ctx, r.client, in, "/teams")
}

func (r *restRepository) UpdateTeam(ctx context.Context, id int32, in model.TeamInput) (*model.Team, error) {
	return put[model.Team](ctx, r.client, in, "/teams/%d", id)
}

func (r *restRepository) GetTeamUsers(ctx context.Context, id int32) ([]model.User, error) {
	return getList[model.User](ctx, r.client, "/teams/%d/users", id)
}

func (r *restRepository) GetUsers(ctx context.Context) ([]model.User, error) {
	return getList[model.User](ctx, r.client, "/users")
}

func (r *restRepository) GetUser(ctx context.Context, id int32) (*model.User, error) {
	return getOne[model.User](ctx, r.client, "/users/%d", id)
}

func (r *restRepository) DeleteUser(ctx context.Context, id int32) error {
	return del(ctx, r.client, "/users/%d", id)
}

func (r *restRepository) CreateUser(ctx context.Context, in model.UserInput) (*model.User, error) {
	return post[model.User](ctx, r.client, in, "/users")
}

func (r *restRepository) UpdateUser(ctx context.Context, id int32, in model.UserInput) (*model.User, error) {
	return put[model.User](ctx, r.client, in, "/users/%d", id)
}

func (r *restRepository) GetUserTeams(ctx context.Context, id int32) ([]model.Team, error) {
	return getList[model.Team](ctx, r.client, "/users/%d/teams", id)
}
