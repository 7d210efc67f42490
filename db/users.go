package db

import (
	"context"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `u.id, u.name, u.email, u.gender, u.class_id,
	ARRAY(SELECT tu.team_id FROM team_users tu WHERE tu.user_id = u.id ORDER BY tu.team_id),
	u.created, u.updated`

func (db *postgresDB) GetUsers(ctx context.Context) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users u ORDER BY u.id`
	return queryList(ctx, db, "users", query, nil, scanUser)
}

func (db *postgresDB) GetUser(ctx context.Context, id int32) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users u WHERE u.id=@id`
	return queryOne(ctx, db, "user", id, query, pgx.NamedArgs{"id": id}, scanUser)
}

func (db *postgresDB) DeleteUser(ctx context.Context, id int32) error {
	const query = `DELETE FROM users WHERE id=@id`
	return db.exec(ctx, "user", id, query, pgx.NamedArgs{"id": id})
}

func (db *postgresDB) CreateUser(ctx context.Context, in model.UserInput) (*model.User, error) {
	const query = `INSERT INTO users (name, email, gender, class_id, created, updated)
		VALUES (@name, @email, @gender, @classID, @now, @now) RETURNING id`

	id, err := db.insert(ctx, "user", query, namedArgsForUser(in, db.now()))
	if err != nil {
		return nil, err
	}
	return db.GetUser(ctx, id)
}

func (db *postgresDB) UpdateUser(ctx context.Context, id int32, in model.UserInput) (*model.User, error) {
	const query = `UPDATE users
		SET name=@name,
			email=@email,
			gender=@gender,
			class_id=@classID,
			updated=@now
		WHERE id=@id`

	args := namedArgsForUser(in, db.now())
	args["id"] = id
	if err := db.exec(ctx, "user", id, query, args); err != nil {
		return nil, err
	}
	return db.GetUser(ctx, id)
}

func (db *postgresDB) GetUserTeams(ctx context.Context, id int32) ([]model.Team, error) {
	if err := db.exists(ctx, "users", id); err != nil {
		return nil, err
	}
	const query = `SELECT ` + teamColumns + ` FROM teams t
		JOIN team_users tu ON tu.team_id = t.id
		WHERE tu.user_id=@id ORDER BY t.id`
	return queryList(ctx, db, "user teams", query, pgx.NamedArgs{"id": id}, scanTeam)
}

func namedArgsForUser(in model.UserInput, now pgtype.Timestamptz) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":    in.Name,
		"email":   in.Email,
		"gender":  string(in.Gender),
		"classID": in.ClassID,
		"now":     now,
	}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	var gender string
	var created, updated pgtype.Timestamptz
	err := row.Scan(&u.ID, &u.Name, &u.Email, &gender, &u.ClassID, &u.TeamIDs, &created, &updated)
	if err != nil {
		return nil, err
	}
	u.Gender = model.Gender(gender)
	u.CreatedAt = created.Time
	u.UpdatedAt = updated.Time
	return &u, nil
}
