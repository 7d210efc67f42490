package mockrepository

import (
	"context"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/Sports-day/sports-day-demo/repository"
	"github.com/stretchr/testify/mock"
)

// Repository is a testify mock of repository.Repository.
type Repository struct {
	mock.Mock
}

var _ repository.Repository = (*Repository)(nil)

func one[T any](args mock.Arguments) (*T, error) {
	var v *T
	if args.Get(0) != nil {
		v = args.Get(0).(*T)
	}
	return v, args.Error(1)
}

func list[T any](args mock.Arguments) ([]T, error) {
	var v []T
	if args.Get(0) != nil {
		v = args.Get(0).([]T)
	}
	return v, args.Error(1)
}

func (r *Repository) GetSports(ctx context.Context) ([]model.Sport, error) {
	return list[model.Sport](r.Called(ctx))
}

func (r *Repository) GetSport(ctx context.Context, id int32) (*model.Sport, error) {
	return one[model.Sport](r.Called(ctx, id))
}

func (r *Repository) DeleteSport(ctx context.Context, id int32) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}

func (r *Repository) CreateSport(ctx context.Context, in model.SportInput) (*model.Sport, error) {
	return one[model.Sport](r.Called(ctx, in))
}

func (r *Repository) UpdateSport(ctx context.Context, id int32, in model.SportInput) (*model.Sport, error) {
	return one[model.Sport](r.Called(ctx, id, in))
}

func (r *Repository) GetClasses(ctx context.Context) ([]model.Class, error) {
	return list[model.Class](r.Called(ctx))
}

func (r *Repository) GetClass(ctx context.Context, id int32) (*model.Class, error) {
	return one[model.Class](r.Called(ctx, id))
}

func (r *Repository) DeleteClass(ctx context.Context, id int32) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}

func (r *Repository) CreateClass(ctx context.Context, in model.ClassInput) (*model.Class, error) {
	return one[model.Class](r.Called(ctx, in))
}

func (r *Repository) UpdateClass(ctx context.Context, id int32, in model.ClassInput) (*model.Class, error) {
	return one[model.Class](r.Called(ctx, id, in))
}

func (r *Repository) GetClassUsers(ctx context.Context, id int32) ([]model.User, error) {
	return list[model.User](r.Called(ctx, id))
}

func (r *Repository) GetImages(ctx context.Context) ([]model.Image, error) {
	return list[model.Image](r.Called(ctx))
}

func (r *Repository) GetImage(ctx context.Context, id int32) (*model.Image, error) {
	return one[model.Image](r.Called(ctx, id))
}

func (r *Repository) DeleteImage(ctx context.Context, id int32) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}

func (r *Repository) CreateImage(ctx context.Context, in model.ImageInput) (*model.Image, error) {
	return one[model.Image](r.Called(ctx, in))
}

func (r *Repository) GetMicrosoftAccounts(ctx context.Context) ([]model.MicrosoftAccount, error) {
	return list[model.MicrosoftAccount](r.Called(ctx))
}

func (r *Repository) GetMicrosoftAccount(ctx context.Context, ref model.AccountRef) (*model.MicrosoftAccount, error) {
	return one[model.MicrosoftAccount](r.Called(ctx, ref))
}

func (r *Repository) DeleteMicrosoftAccount(ctx context.Context, ref model.AccountRef) error {
	args := r.Called(ctx, ref)
	return args.Error(0)
}

func (r *Repository) SetMicrosoftAccountRole(ctx context.Context, ref model.AccountRef, role model.Role) (*model.MicrosoftAccount, error) {
	return one[model.MicrosoftAccount](r.Called(ctx, ref, role))
}

func (r *Repository) LinkMicrosoftAccount(ctx context.Context, ref model.AccountRef, userID int32) error {
	args := r.Called(ctx, ref, userID)
	return args.Error(0)
}

func (r *Repository) UnlinkMicrosoftAccount(ctx context.Context, ref model.AccountRef) error {
	args := r.Called(ctx, ref)
	return args.Error(0)
}

func (r *Repository) LinkLaterMicrosoftAccount(ctx context.Context, ref model.AccountRef) error {
	args := r.Called(ctx, ref)
	return args.Error(0)
}

func (r *Repository) GetGames(ctx context.Context) ([]model.Game, error) {
	return list[model.Game](r.Called(ctx))
}

func (r *Repository) GetGame(ctx context.Context, id int32) (*model.Game, error) {
	return one[model.Game](r.Called(ctx, id))
}

func (r *Repository) DeleteGame(ctx context.Context, id int32) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}

func (r *Repository) CreateGame(ctx context.Context, in model.GameInput) (*model.Game, error) {
	return one[model.Game](r.Called(ctx, in))
}

func (r *Repository) UpdateGame(ctx context.Context, id int32, in model.GameInput) (*model.Game, error) {
	return one[model.Game](r.Called(ctx, id, in))
}

func (r *Repository) GetGameMatches(ctx context.Context, id int32) ([]model.Match, error) {
	return list[model.Match](r.Called(ctx, id))
}

func (r *Repository) GetGameEntries(ctx context.Context, id int32) ([]model.Team, error) {
	return list[model.Team](r.Called(ctx, id))
}

func (r *Repository) GetLeagueResult(ctx context.Context, id int32) (*model.LeagueResult, error) {
	return one[model.LeagueResult](r.Called(ctx, id))
}

func (r *Repository) GetTournamentResult(ctx context.Context, id int32) (*model.TournamentResult, error) {
	return one[model.TournamentResult](r.Called(ctx, id))
}

func (r *Repository) GetMatches(ctx context.Context) ([]model.Match, error) {
	return list[model.Match](r.Called(ctx))
}

func (r *Repository) GetMatch(ctx context.Context, id int32) (*model.Match, error) {
	return one[model.Match](r.Called(ctx, id))
}

func (r *Repository) DeleteMatch(ctx context.Context, id int32) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}

func (r *Repository) CreateMatch(ctx context.Context, in model.MatchInput) (*model.Match, error) {
	return one[model.Match](r.Called(ctx, in))
}

func (r *Repository) UpdateMatch(ctx context.Context, id int32, in model.MatchInput) (*model.Match, error) {
	return one[model.Match](r.Called(ctx, id, in))
}

func (r *Repository) GetTeams(ctx context.Context) ([]model.Team, error) {
	return list[model.Team](r.Called(ctx))
}

func (r *Repository) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	return one[model.Team](r.Called(ctx, id))
}

func (r *Repository) DeleteTeam(ctx context.Context, id int32) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}

func (r *Repository) CreateTeam(ctx context.Context, in model.TeamInput) (*model.Team, error) {
	return one[model.Team](r.Called(ctx, in))
}

func (r *Repository) UpdateTeam(ctx context.Context, id int32, in model.TeamInput) (*model.Team, error) {
	return one[model.Team](r.Called(ctx, id, in))
}

func (r *Repository) GetTeamUsers(ctx context.Context, id int32) ([]model.User, error) {
	return list[model.User](r.Called(ctx, id))
}

func (r *Repository) GetUsers(ctx context.Context) ([]model.User, error) {
	return list[model.User](r.Called(ctx))
}

func (r *Repository) GetUser(ctx context.Context, id int32) (*model.User, error) {
	return one[model.User](r.Called(ctx, id))
}

func (r *Repository) DeleteUser(ctx context.Context, id int32) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}

func (r *Repository) CreateUser(ctx context.Context, in model.UserInput) (*model.User, error) {
	return one[model.User](r.Called(ctx, in))
}

func (r *Repository) UpdateUser(ctx context.Context, id int32, in model.UserInput) (*model.User, error) {
	return one[model.User](r.Called(ctx, id, in))
}

func (r *Repository) GetUserTeams(ctx context.Context, id int32) ([]model.Team, error) {
	return list[model.Team](r.Called(ctx, id))
}
