package db

import (
	"context"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const sportColumns = `s.id, s.name, s.description, s.weight,
	ARRAY(SELECT g.id FROM games g WHERE g.sport_id = s.id ORDER BY g.id),
	s.created, s.updated`

func (db *postgresDB) GetSports(ctx context.Context) ([]model.Sport, error) {
	const query = `SELECT ` + sportColumns + ` FROM sports s ORDER BY s.id`
	return queryList(ctx, db, "sports", query, nil, scanSport)
}

func (db *postgresDB) GetSport(ctx context.Context, id int32) (*model.Sport, error) {
	const query = `SELECT ` + sportColumns + ` FROM sports s WHERE s.id=@id`
	return queryOne(ctx, db, "sport", id, query, pgx.NamedArgs{"id": id}, scanSport)
}

func (db *postgresDB) DeleteSport(ctx context.Context, id int32) error {
	const query = `DELETE FROM sports WHERE id=@id`
	return db.exec(ctx, "sport", id, query, pgx.NamedArgs{"id": id})
}

func (db *postgresDB) CreateSport(ctx context.Context, in model.SportInput) (*model.Sport, error) {
	const query = `INSERT INTO sports (name, description, weight, created, updated)
		VALUES (@name, @description, @weight, @now, @now) RETURNING id`

	id, err := db.insert(ctx, "sport", query, namedArgsForSport(in, db.now()))
	if err != nil {
		return nil, err
	}
	return db.GetSport(ctx, id)
}

func (db *postgresDB) UpdateSport(ctx context.Context, id int32, in model.SportInput) (*model.Sport, error) {
	const query = `UPDATE sports
		SET name=@name,
			description=@description,
			weight=@weight,
			updated=@now
		WHERE id=@id`

	args := namedArgsForSport(in, db.now())
	args["id"] = id
	if err := db.exec(ctx, "sport", id, query, args); err != nil {
		return nil, err
	}
	return db.GetSport(ctx, id)
}

func namedArgsForSport(in model.SportInput, now pgtype.Timestamptz) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":        in.Name,
		"description": in.Description,
		"weight":      in.Weight,
		"now":         now,
	}
}

func scanSport(row pgx.Row) (*model.Sport, error) {
	var s model.Sport
	var created, updated pgtype.Timestamptz
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Weight, &s.GameIDs, &created, &updated)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = created.Time
	s.UpdatedAt = updated.Time
	return &s, nil
}
