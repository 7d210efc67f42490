package db

import (
	"context"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/Sports-day/sports-day-demo/repository"
)

// DB is the postgres repository strategy. Besides the repository operations it can
// write the relations the sports-day API only exposes read-only.
type DB interface {
	repository.Repository

	EnterTeam(ctx context.Context, gameID, teamID int32) error
	AddTeamUser(ctx context.Context, teamID, userID int32) error
	// Replaces the ranks of a tournament game.
	SaveTournamentRanks(ctx context.Context, gameID int32, ranks []model.TournamentRank) error
	AddMicrosoftAccount(ctx context.Context, a *model.MicrosoftAccount) error

	// Loads fixtures with their ids into empty tables.
	Seed(ctx context.Context, f repository.Fixtures) error
	Close()
}
