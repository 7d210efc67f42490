package db

import (
	"context"
	"fmt"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/Sports-day/sports-day-demo/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const teamColumns = `t.id, t.name, t.description, t.class_id,
	ARRAY(SELECT tu.user_id FROM team_users tu WHERE tu.team_id = t.id ORDER BY tu.user_id),
	ARRAY(SELECT e.game_id FROM game_entries e WHERE e.team_id = t.id ORDER BY e.game_id),
	t.created, t.updated`

func (db *postgresDB) GetTeams(ctx context.Context) ([]model.Team, error) {
	const query = `SELECT ` + teamColumns + ` FROM teams t ORDER BY t.id`
	return queryList(ctx, db, "teams", query, nil, scanTeam)
}

func (db *postgresDB) GetTeam(ctx context.Context, id int32) (*model.Team, error) {
	const query = `SELECT ` + teamColumns + ` FROM teams t WHERE t.id=@id`
	return queryOne(ctx, db, "team", id, query, pgx.NamedArgs{"id": id}, scanTeam)
}

func (db *postgresDB) DeleteTeam(ctx context.Context, id int32) error {
	const query = `DELETE FROM teams WHERE id=@id`
	return db.exec(ctx, "team", id, query, pgx.NamedArgs{"id": id})
}

func (db *postgresDB) CreateTeam(ctx context.Context, in model.TeamInput) (*model.Team, error) {
	const query = `INSERT INTO teams (name, description, class_id, created, updated)
		VALUES (@name, @description, @classID, @now, @now) RETURNING id`

	id, err := db.insert(ctx, "team", query, namedArgsForTeam(in, db.now()))
	if err != nil {
		return nil, err
	}
	return db.GetTeam(ctx, id)
}

func (db *postgresDB) UpdateTeam(ctx context.Context, id int32, in model.TeamInput) (*model.Team, error) {
	const query = `UPDATE teams
		SET name=@name,
			description=@description,
			class_id=@classID,
			updated=@now
		WHERE id=@id`

	args := namedArgsForTeam(in, db.now())
	args["id"] = id
	if err := db.exec(ctx, "team", id, query, args); err != nil {
		return nil, err
	}
	return db.GetTeam(ctx, id)
}

func (db *postgresDB) GetTeamUsers(ctx context.Context, id int32) ([]model.User, error) {
	if err := db.exists(ctx, "teams", id); err != nil {
		return nil, err
	}
	const query = `SELECT ` + userColumns + ` FROM users u
		JOIN team_users tu ON tu.user_id = u.id
		WHERE tu.team_id=@id ORDER BY u.id`
	return queryList(ctx, db, "team users", query, pgx.NamedArgs{"id": id}, scanUser)
}

func (db *postgresDB) AddTeamUser(ctx context.Context, teamID, userID int32) error {
	const query = `INSERT INTO team_users (team_id, user_id) VALUES (@teamID, @userID)
		ON CONFLICT DO NOTHING`

	_, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"teamID": teamID, "userID": userID})
	if isForeignKeyViolation(err) {
		return fmt.Errorf("team %d or user %d %w", teamID, userID, repository.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("error adding user %d to team %d: %w", userID, teamID, err)
	}
	return nil
}

func namedArgsForTeam(in model.TeamInput, now pgtype.Timestamptz) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":        in.Name,
		"description": in.Description,
		"classID":     in.ClassID,
		"now":         now,
	}
}

func scanTeam(row pgx.Row) (*model.Team, error) {
	var t model.Team
	var created, updated pgtype.Timestamptz
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.ClassID, &t.UserIDs, &t.EnteredGameIDs, &created, &updated)
	if err != nil {
		return nil, err
	}
	t.CreatedAt = created.Time
	t.UpdatedAt = updated.Time
	return &t, nil
}
