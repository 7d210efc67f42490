package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/Sports-day/sports-day-demo/repository"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// The postgres strategy has no signed in session to resolve "me" against.
	ErrNoSession error = errors.New("no signed in microsoft account")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) Close() {
	db.pool.Close()
}

func (db *postgresDB) now() pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             db.clock.Now().UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}

// insert runs an INSERT ... RETURNING id statement.
func (db *postgresDB) insert(ctx context.Context, kind, query string, args pgx.NamedArgs) (int32, error) {
	var id int32
	if err := db.pool.QueryRow(ctx, query, args).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting %s: %w", kind, err)
	}
	return id, nil
}

// exec runs an UPDATE or DELETE and reports ErrNotFound when no row matched.
func (db *postgresDB) exec(ctx context.Context, kind string, id any, query string, args pgx.NamedArgs) error {
	tag, err := db.pool.Exec(ctx, query, args)
	if err != nil {
		return fmt.Errorf("error writing %s %v: %w", kind, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %v %w", kind, id, repository.ErrNotFound)
	}
	return nil
}

func readErr(err error, kind string, id any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v %w", kind, id, repository.ErrNotFound)
	}
	return fmt.Errorf("error reading %s %v: %w", kind, id, err)
}

func queryOne[T any](ctx context.Context, db *postgresDB, kind string, id any, query string, args pgx.NamedArgs, scan func(pgx.Row) (*T, error)) (*T, error) {
	res, err := scan(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		return nil, readErr(err, kind, id)
	}
	return res, nil
}

func queryList[T any](ctx context.Context, db *postgresDB, kind string, query string, args pgx.NamedArgs, scan func(pgx.Row) (*T, error)) ([]T, error) {
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", kind, err)
	}
	defer rows.Close()

	results := make([]T, 0, 8)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning %s: %w", kind, err)
		}
		results = append(results, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", kind, err)
	}
	return results, nil
}

// exists checks a parent row before a relationship query so that an unknown id is
// reported as not found instead of an empty list.
func (db *postgresDB) exists(ctx context.Context, table string, id int32) error {
	var ok bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id=@id)", table)
	if err := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(&ok); err != nil {
		return fmt.Errorf("error checking %s %d: %w", table, id, err)
	}
	if !ok {
		return fmt.Errorf("%s %d %w", table, id, repository.ErrNotFound)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

type DBGameType struct {
	gameType model.GameType
}

func (t *DBGameType) ScanText(v pgtype.Text) error {
	t.gameType = model.ParseGameType(v.String)
	return nil
}

func (t *DBGameType) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(t.gameType),
		Valid:  true,
	}, nil
}

type DBRole struct {
	role model.Role
}

func (r *DBRole) ScanText(v pgtype.Text) error {
	r.role = model.ParseRole(v.String)
	return nil
}

func (r *DBRole) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(r.role),
		Valid:  true,
	}, nil
}
