package db

import (
	"context"
	"fmt"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/Sports-day/sports-day-demo/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const gameColumns = `g.id, g.name, g.description, g.sport_id, g.type, g.calculation_type, g.weight,
	ARRAY(SELECT e.team_id FROM game_entries e WHERE e.game_id = g.id ORDER BY e.team_id),
	g.created, g.updated`

func (db *postgresDB) GetGames(ctx context.Context) ([]model.Game, error) {
	const query = `SELECT ` + gameColumns + ` FROM games g ORDER BY g.id`
	return queryList(ctx, db, "games", query, nil, scanGame)
}

func (db *postgresDB) GetGame(ctx context.Context, id int32) (*model.Game, error) {
	const query = `SELECT ` + gameColumns + ` FROM games g WHERE g.id=@id`
	return queryOne(ctx, db, "game", id, query, pgx.NamedArgs{"id": id}, scanGame)
}

func (db *postgresDB) DeleteGame(ctx context.Context, id int32) error {
	const query = `DELETE FROM games WHERE id=@id`
	return db.exec(ctx, "game", id, query, pgx.NamedArgs{"id": id})
}

func (db *postgresDB) CreateGame(ctx context.Context, in model.GameInput) (*model.Game, error) {
	const query = `INSERT INTO games (name, description, sport_id, type, calculation_type, weight, created, updated)
		VALUES (@name, @description, @sportID, @type, @calculationType, @weight, @now, @now) RETURNING id`

	id, err := db.insert(ctx, "game", query, namedArgsForGame(in, db.now()))
	if err != nil {
		return nil, err
	}
	return db.GetGame(ctx, id)
}

func (db *postgresDB) UpdateGame(ctx context.Context, id int32, in model.GameInput) (*model.Game, error) {
	const query = `UPDATE games
		SET name=@name,
			description=@description,
			sport_id=@sportID,
			type=@type,
			calculation_type=@calculationType,
			weight=@weight,
			updated=@now
		WHERE id=@id`

	args := namedArgsForGame(in, db.now())
	args["id"] = id
	if err := db.exec(ctx, "game", id, query, args); err != nil {
		return nil, err
	}
	return db.GetGame(ctx, id)
}

func (db *postgresDB) GetGameMatches(ctx context.Context, id int32) ([]model.Match, error) {
	if err := db.exists(ctx, "games", id); err != nil {
		return nil, err
	}
	const query = `SELECT ` + matchColumns + ` FROM matches m WHERE m.game_id=@id ORDER BY m.id`
	return queryList(ctx, db, "game matches", query, pgx.NamedArgs{"id": id}, scanMatch)
}

func (db *postgresDB) GetGameEntries(ctx context.Context, id int32) ([]model.Team, error) {
	if err := db.exists(ctx, "games", id); err != nil {
		return nil, err
	}
	const query = `SELECT ` + teamColumns + ` FROM teams t
		JOIN game_entries e ON e.team_id = t.id
		WHERE e.game_id=@id ORDER BY t.id`
	return queryList(ctx, db, "game entries", query, pgx.NamedArgs{"id": id}, scanTeam)
}

// GetLeagueResult computes the standings from the finished matches of the game.
func (db *postgresDB) GetLeagueResult(ctx context.Context, id int32) (*model.LeagueResult, error) {
	g, err := db.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Type != model.GAME_LEAGUE {
		return nil, fmt.Errorf("game %d is not a league: %w", id, model.ErrUnsupportedGameType)
	}

	matches, err := db.GetGameMatches(ctx, id)
	if err != nil {
		return nil, err
	}
	return repository.CalculateLeagueResult(id, g.EnteredTeamIDs, matches), nil
}

func (db *postgresDB) GetTournamentResult(ctx context.Context, id int32) (*model.TournamentResult, error) {
	g, err := db.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.Type != model.GAME_TOURNAMENT {
		return nil, fmt.Errorf("game %d is not a tournament: %w", id, model.ErrUnsupportedGameType)
	}

	const query = `SELECT team_id, rank FROM tournament_ranks WHERE game_id=@id ORDER BY rank, team_id`
	ranks, err := queryList(ctx, db, "tournament ranks", query, pgx.NamedArgs{"id": id}, func(row pgx.Row) (*model.TournamentRank, error) {
		var r model.TournamentRank
		if err := row.Scan(&r.TeamID, &r.Rank); err != nil {
			return nil, err
		}
		return &r, nil
	})
	if err != nil {
		return nil, err
	}
	return &model.TournamentResult{GameID: id, Ranks: ranks}, nil
}

func (db *postgresDB) EnterTeam(ctx context.Context, gameID, teamID int32) error {
	const query = `INSERT INTO game_entries (game_id, team_id) VALUES (@gameID, @teamID)
		ON CONFLICT DO NOTHING`

	_, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"gameID": gameID, "teamID": teamID})
	if isForeignKeyViolation(err) {
		return fmt.Errorf("game %d or team %d %w", gameID, teamID, repository.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("error entering team %d into game %d: %w", teamID, gameID, err)
	}
	return nil
}

func (db *postgresDB) SaveTournamentRanks(ctx context.Context, gameID int32, ranks []model.TournamentRank) error {
	const deleteRanks = `DELETE FROM tournament_ranks WHERE game_id=@gameID`
	const insertRank = `INSERT INTO tournament_ranks (game_id, team_id, rank) VALUES (@gameID, @teamID, @rank)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, deleteRanks, pgx.NamedArgs{"gameID": gameID}); err != nil {
		return fmt.Errorf("error clearing tournament ranks for game %d: %w", gameID, err)
	}
	for _, r := range ranks {
		args := pgx.NamedArgs{
			"gameID": gameID,
			"teamID": r.TeamID,
			"rank":   r.Rank,
		}
		if _, err := tx.Exec(ctx, insertRank, args); err != nil {
			return fmt.Errorf("error inserting tournament rank: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting tournament ranks transaction: %w", err)
	}
	return nil
}

func namedArgsForGame(in model.GameInput, now pgtype.Timestamptz) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":            in.Name,
		"description":     in.Description,
		"sportID":         in.SportID,
		"type":            &DBGameType{gameType: in.Type},
		"calculationType": in.CalculationType,
		"weight":          in.Weight,
		"now":             now,
	}
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var g model.Game
	var gameType DBGameType
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Description,
		&g.SportID,
		&gameType,
		&g.CalculationType,
		&g.Weight,
		&g.EnteredTeamIDs,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}
	g.Type = gameType.gameType
	g.CreatedAt = created.Time
	g.UpdatedAt = updated.Time
	return &g, nil
}
