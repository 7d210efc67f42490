package repository

import (
	"context"
	"errors"

	"github.com/Sports-day/sports-day-demo/model"
)

var (
	ErrNotFound error = errors.New("not found")
)

type SportRepository interface {
	GetSports(ctx context.Context) ([]model.Sport, error)
	GetSport(ctx context.Context, id int32) (*model.Sport, error)
	DeleteSport(ctx context.Context, id int32) error
	CreateSport(ctx context.Context, in model.SportInput) (*model.Sport, error)
	UpdateSport(ctx context.Context, id int32, in model.SportInput) (*model.Sport, error)
}

type ClassRepository interface {
	GetClasses(ctx context.Context) ([]model.Class, error)
	GetClass(ctx context.Context, id int32) (*model.Class, error)
	DeleteClass(ctx context.Context, id int32) error
	CreateClass(ctx context.Context, in model.ClassInput) (*model.Class, error)
	UpdateClass(ctx context.Context, id int32, in model.ClassInput) (*model.Class, error)
	GetClassUsers(ctx context.Context, id int32) ([]model.User, error)
}

type ImageRepository interface {
	GetImages(ctx context.Context) ([]model.Image, error)
	GetImage(ctx context.Context, id int32) (*model.Image, error)
	DeleteImage(ctx context.Context, id int32) error
	CreateImage(ctx context.Context, in model.ImageInput) (*model.Image, error)
}

type MicrosoftAccountRepository interface {
	GetMicrosoftAccounts(ctx context.Context) ([]model.MicrosoftAccount, error)
	GetMicrosoftAccount(ctx context.Context, ref model.AccountRef) (*model.MicrosoftAccount, error)
	DeleteMicrosoftAccount(ctx context.Context, ref model.AccountRef) error
	SetMicrosoftAccountRole(ctx context.Context, ref model.AccountRef, role model.Role) (*model.MicrosoftAccount, error)
	LinkMicrosoftAccount(ctx context.Context, ref model.AccountRef, userID int32) error
	UnlinkMicrosoftAccount(ctx context.Context, ref model.AccountRef) error
	LinkLaterMicrosoftAccount(ctx context.Context, ref model.AccountRef) error
}

type GameRepository interface {
	GetGames(ctx context.Context) ([]model.Game, error)
	GetGame(ctx context.Context, id int32) (*model.Game, error)
	DeleteGame(ctx context.Context, id int32) error
	CreateGame(ctx context.Context, in model.GameInput) (*model.Game, error)
	UpdateGame(ctx context.Context, id int32, in model.GameInput) (*model.Game, error)
	// Matches of the game in the order the backend returns them.
	GetGameMatches(ctx context.Context, id int32) ([]model.Match, error)
	// Teams entered into the game.
	GetGameEntries(ctx context.Context, id int32) ([]model.Team, error)
	GetLeagueResult(ctx context.Context, id int32) (*model.LeagueResult, error)
	GetTournamentResult(ctx context.Context, id int32) (*model.TournamentResult, error)
}

type MatchRepository interface {
	GetMatches(ctx context.Context) ([]model.Match, error)
	GetMatch(ctx context.Context, id int32) (*model.Match, error)
	DeleteMatch(ctx context.Context, id int32) error
	CreateMatch(ctx context.Context, in model.MatchInput) (*model.Match, error)
	UpdateMatch(ctx context.Context, id int32, in model.MatchInput) (*model.Match, error)
}

type TeamRepository interface {
	GetTeams(ctx context.Context) ([]model.Team, error)
	GetTeam(ctx context.Context, id int32) (*model.Team, error)
	DeleteTeam(ctx context.Context, id int32) error
	CreateTeam(ctx context.Context, in model.TeamInput) (*model.Team, error)
	UpdateTeam(ctx context.Context, id int32, in model.TeamInput) (*model.Team, error)
	GetTeamUsers(ctx context.Context, id int32) ([]model.User, error)
}

type UserRepository interface {
	GetUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int32) (*model.User, error)
	DeleteUser(ctx context.Context, id int32) error
	CreateUser(ctx context.Context, in model.UserInput) (*model.User, error)
	UpdateUser(ctx context.Context, id int32, in model.UserInput) (*model.User, error)
	GetUserTeams(ctx context.Context, id int32) ([]model.Team, error)
}

// Repository is implemented by every storage strategy: the live REST API, the
// in-memory fixtures and postgres.
type Repository interface {
	SportRepository
	ClassRepository
	ImageRepository
	MicrosoftAccountRepository
	GameRepository
	MatchRepository
	TeamRepository
	UserRepository
}
