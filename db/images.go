package db

import (
	"context"
	"fmt"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const imageColumns = `i.id, i.name, i.attachment, i.created, i.created_by`

func (db *postgresDB) GetImages(ctx context.Context) ([]model.Image, error) {
	const query = `SELECT ` + imageColumns + ` FROM images i ORDER BY i.id`
	return queryList(ctx, db, "images", query, nil, scanImage)
}

func (db *postgresDB) GetImage(ctx context.Context, id int32) (*model.Image, error) {
	const query = `SELECT ` + imageColumns + ` FROM images i WHERE i.id=@id`
	return queryOne(ctx, db, "image", id, query, pgx.NamedArgs{"id": id}, scanImage)
}

func (db *postgresDB) DeleteImage(ctx context.Context, id int32) error {
	const query = `DELETE FROM images WHERE id=@id`
	return db.exec(ctx, "image", id, query, pgx.NamedArgs{"id": id})
}

// CreateImage stores the image without an owner since there is no signed in user.
func (db *postgresDB) CreateImage(ctx context.Context, in model.ImageInput) (*model.Image, error) {
	const query = `INSERT INTO images (name, attachment, created)
		VALUES (@name, @attachment, @now) RETURNING id`

	attachment := in.Attachment
	if attachment == "" {
		attachment = fmt.Sprintf("images/%s", uuid.NewString())
	}
	args := pgx.NamedArgs{
		"name":       in.Name,
		"attachment": attachment,
		"now":        db.now(),
	}
	id, err := db.insert(ctx, "image", query, args)
	if err != nil {
		return nil, err
	}
	return db.GetImage(ctx, id)
}

func scanImage(row pgx.Row) (*model.Image, error) {
	var i model.Image
	var created pgtype.Timestamptz
	err := row.Scan(&i.ID, &i.Name, &i.Attachment, &created, &i.CreatedBy)
	if err != nil {
		return nil, err
	}
	i.CreatedAt = created.Time
	return &i, nil
}
