package db

import (
	"context"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const classColumns = `c.id, c.name, c.description, c.group_id, c.created, c.updated`

func (db *postgresDB) GetClasses(ctx context.Context) ([]model.Class, error) {
	const query = `SELECT ` + classColumns + ` FROM classes c ORDER BY c.id`
	return queryList(ctx, db, "classes", query, nil, scanClass)
}

func (db *postgresDB) GetClass(ctx context.Context, id int32) (*model.Class, error) {
	const query = `SELECT ` + classColumns + ` FROM classes c WHERE c.id=@id`
	return queryOne(ctx, db, "class", id, query, pgx.NamedArgs{"id": id}, scanClass)
}

func (db *postgresDB) DeleteClass(ctx context.Context, id int32) error {
	const query = `DELETE FROM classes WHERE id=@id`
	return db.exec(ctx, "class", id, query, pgx.NamedArgs{"id": id})
}

func (db *postgresDB) CreateClass(ctx context.Context, in model.ClassInput) (*model.Class, error) {
	const query = `INSERT INTO classes (name, description, group_id, created, updated)
		VALUES (@name, @description, @groupID, @now, @now) RETURNING id`

	id, err := db.insert(ctx, "class", query, namedArgsForClass(in, db.now()))
	if err != nil {
		return nil, err
	}
	return db.GetClass(ctx, id)
}

func (db *postgresDB) UpdateClass(ctx context.Context, id int32, in model.ClassInput) (*model.Class, error) {
	const query = `UPDATE classes
		SET name=@name,
			description=@description,
			group_id=@groupID,
			updated=@now
		WHERE id=@id`

	args := namedArgsForClass(in, db.now())
	args["id"] = id
	if err := db.exec(ctx, "class", id, query, args); err != nil {
		return nil, err
	}
	return db.GetClass(ctx, id)
}

func (db *postgresDB) GetClassUsers(ctx context.Context, id int32) ([]model.User, error) {
	if err := db.exists(ctx, "classes", id); err != nil {
		return nil, err
	}
	const query = `SELECT ` + userColumns + ` FROM users u WHERE u.class_id=@id ORDER BY u.id`
	return queryList(ctx, db, "class users", query, pgx.NamedArgs{"id": id}, scanUser)
}

func namedArgsForClass(in model.ClassInput, now pgtype.Timestamptz) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":        in.Name,
		"description": in.Description,
		"groupID":     in.GroupID,
		"now":         now,
	}
}

func scanClass(row pgx.Row) (*model.Class, error) {
	var c model.Class
	var created, updated pgtype.Timestamptz
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.GroupID, &created, &updated)
	if err != nil {
		return nil, err
	}
	c.CreatedAt = created.Time
	c.UpdatedAt = updated.Time
	return &c, nil
}
