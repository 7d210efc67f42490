package db

import (
	"context"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const matchColumns = `m.id, m.game_id, m.sport_id, m.location_id, m.location, m.start_at,
	m.left_team_id, m.right_team_id, m.left_score, m.right_score, m.result, m.status,
	m.note, m.judge_team_id, m.created, m.updated`

func (db *postgresDB) GetMatches(ctx context.Context) ([]model.Match, error) {
	const query = `SELECT ` + matchColumns + ` FROM matches m ORDER BY m.id`
	return queryList(ctx, db, "matches", query, nil, scanMatch)
}

func (db *postgresDB) GetMatch(ctx context.Context, id int32) (*model.Match, error) {
	const query = `SELECT ` + matchColumns + ` FROM matches m WHERE m.id=@id`
	return queryOne(ctx, db, "match", id, query, pgx.NamedArgs{"id": id}, scanMatch)
}

func (db *postgresDB) DeleteMatch(ctx context.Context, id int32) error {
	const query = `DELETE FROM matches WHERE id=@id`
	return db.exec(ctx, "match", id, query, pgx.NamedArgs{"id": id})
}

func (db *postgresDB) CreateMatch(ctx context.Context, in model.MatchInput) (*model.Match, error) {
	if err := db.exists(ctx, "games", in.GameID); err != nil {
		return nil, err
	}
	const query = `INSERT INTO matches (
		game_id,
		sport_id,
		location_id,
		start_at,
		left_team_id,
		right_team_id,
		left_score,
		right_score,
		result,
		status,
		note,
		judge_team_id,
		created,
		updated
	) VALUES (
		@gameID,
		@sportID,
		@locationID,
		@startAt,
		@leftTeamID,
		@rightTeamID,
		@leftScore,
		@rightScore,
		@result,
		@status,
		@note,
		@judgeTeamID,
		@now,
		@now
	) RETURNING id`

	id, err := db.insert(ctx, "match", query, namedArgsForMatch(in, db.now()))
	if err != nil {
		return nil, err
	}
	return db.GetMatch(ctx, id)
}

func (db *postgresDB) UpdateMatch(ctx context.Context, id int32, in model.MatchInput) (*model.Match, error) {
	const query = `UPDATE matches
		SET game_id=@gameID,
			sport_id=@sportID,
			location_id=@locationID,
			start_at=@startAt,
			left_team_id=@leftTeamID,
			right_team_id=@rightTeamID,
			left_score=@leftScore,
			right_score=@rightScore,
			result=@result,
			status=@status,
			note=@note,
			judge_team_id=@judgeTeamID,
			updated=@now
		WHERE id=@id`

	args := namedArgsForMatch(in, db.now())
	args["id"] = id
	if err := db.exec(ctx, "match", id, query, args); err != nil {
		return nil, err
	}
	return db.GetMatch(ctx, id)
}

func namedArgsForMatch(in model.MatchInput, now pgtype.Timestamptz) pgx.NamedArgs {
	return pgx.NamedArgs{
		"gameID":     in.GameID,
		"sportID":    in.SportID,
		"locationID": in.LocationID,
		"startAt": pgtype.Timestamptz{
			Time:             in.StartAt.UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
		"leftTeamID":  in.LeftTeamID,
		"rightTeamID": in.RightTeamID,
		"leftScore":   in.LeftScore,
		"rightScore":  in.RightScore,
		"result":      string(in.Result),
		"status":      string(in.Status),
		"note":        in.Note,
		"judgeTeamID": in.JudgeTeamID,
		"now":         now,
	}
}

func scanMatch(row pgx.Row) (*model.Match, error) {
	var m model.Match
	var result, status string
	var startAt, created, updated pgtype.Timestamptz
	err := row.Scan(
		&m.ID,
		&m.GameID,
		&m.SportID,
		&m.LocationID,
		&m.Location,
		&startAt,
		&m.LeftTeamID,
		&m.RightTeamID,
		&m.LeftScore,
		&m.RightScore,
		&result,
		&status,
		&m.Note,
		&m.JudgeTeamID,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}
	m.Result = model.MatchResult(result)
	m.Status = model.MatchStatus(status)
	m.StartAt = startAt.Time
	m.CreatedAt = created.Time
	m.UpdatedAt = updated.Time
	return &m, nil
}
