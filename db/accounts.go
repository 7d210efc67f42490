package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Sports-day/sports-day-demo/model"
	"github.com/Sports-day/sports-day-demo/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const accountColumns = `a.id, a.email, a.name, a.mail_account_name, a.role, a.user_id,
	a.link_later, a.first_login, a.last_login`

// accountID resolves a reference to a numeric id. "me" cannot be resolved without a
// session.
func accountID(ref model.AccountRef) (int32, error) {
	if ref == model.AccountMe {
		return 0, ErrNoSession
	}
	id, err := strconv.ParseInt(ref.String(), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid microsoft account id '%s': %w", ref, err)
	}
	return int32(id), nil
}

func (db *postgresDB) GetMicrosoftAccounts(ctx context.Context) ([]model.MicrosoftAccount, error) {
	const query = `SELECT ` + accountColumns + ` FROM microsoft_accounts a ORDER BY a.id`
	return queryList(ctx, db, "microsoft accounts", query, nil, scanAccount)
}

func (db *postgresDB) GetMicrosoftAccount(ctx context.Context, ref model.AccountRef) (*model.MicrosoftAccount, error) {
	id, err := accountID(ref)
	if err != nil {
		return nil, err
	}
	const query = `SELECT ` + accountColumns + ` FROM microsoft_accounts a WHERE a.id=@id`
	return queryOne(ctx, db, "microsoft account", id, query, pgx.NamedArgs{"id": id}, scanAccount)
}

func (db *postgresDB) DeleteMicrosoftAccount(ctx context.Context, ref model.AccountRef) error {
	id, err := accountID(ref)
	if err != nil {
		return err
	}
	const query = `DELETE FROM microsoft_accounts WHERE id=@id`
	return db.exec(ctx, "microsoft account", id, query, pgx.NamedArgs{"id": id})
}

func (db *postgresDB) SetMicrosoftAccountRole(ctx context.Context, ref model.AccountRef, role model.Role) (*model.MicrosoftAccount, error) {
	if role == model.ROLE_UNKNOWN {
		return nil, errors.New("role must be ADMIN or USER")
	}
	id, err := accountID(ref)
	if err != nil {
		return nil, err
	}
	const query = `UPDATE microsoft_accounts SET role=@role WHERE id=@id`
	args := pgx.NamedArgs{
		"id":   id,
		"role": &DBRole{role: role},
	}
	if err := db.exec(ctx, "microsoft account", id, query, args); err != nil {
		return nil, err
	}
	return db.GetMicrosoftAccount(ctx, ref)
}

func (db *postgresDB) LinkMicrosoftAccount(ctx context.Context, ref model.AccountRef, userID int32) error {
	id, err := accountID(ref)
	if err != nil {
		return err
	}
	const query = `UPDATE microsoft_accounts SET user_id=@userID, link_later=FALSE WHERE id=@id`
	err = db.exec(ctx, "microsoft account", id, query, pgx.NamedArgs{"id": id, "userID": userID})
	if isForeignKeyViolation(err) {
		return fmt.Errorf("user %d %w", userID, repository.ErrNotFound)
	}
	return err
}

func (db *postgresDB) UnlinkMicrosoftAccount(ctx context.Context, ref model.AccountRef) error {
	id, err := accountID(ref)
	if err != nil {
		return err
	}
	const query = `UPDATE microsoft_accounts SET user_id=NULL WHERE id=@id`
	return db.exec(ctx, "microsoft account", id, query, pgx.NamedArgs{"id": id})
}

func (db *postgresDB) LinkLaterMicrosoftAccount(ctx context.Context, ref model.AccountRef) error {
	id, err := accountID(ref)
	if err != nil {
		return err
	}
	const query = `UPDATE microsoft_accounts SET link_later=TRUE WHERE id=@id`
	return db.exec(ctx, "microsoft account", id, query, pgx.NamedArgs{"id": id})
}

// AddMicrosoftAccount records an account on its first login. The new id is set on a.
func (db *postgresDB) AddMicrosoftAccount(ctx context.Context, a *model.MicrosoftAccount) error {
	if a == nil {
		return errors.New("AddMicrosoftAccount - account is nil")
	}
	const query = `INSERT INTO microsoft_accounts (
		email,
		name,
		mail_account_name,
		role,
		user_id,
		link_later,
		first_login,
		last_login
	) VALUES (
		@email,
		@name,
		@mailAccountName,
		@role,
		@userID,
		@linkLater,
		@now,
		@now
	) RETURNING id`

	role := a.Role
	if role == model.ROLE_UNKNOWN {
		role = model.ROLE_USER
	}
	now := db.now()
	args := pgx.NamedArgs{
		"email":           a.Email,
		"name":            a.Name,
		"mailAccountName": a.MailAccountName,
		"role":            &DBRole{role: role},
		"userID":          a.UserID,
		"linkLater":       a.LinkLater,
		"now":             now,
	}
	id, err := db.insert(ctx, "microsoft account", query, args)
	if err != nil {
		return err
	}

	a.ID = id
	a.Role = role
	a.FirstLogin = now.Time
	a.LastLogin = now.Time
	return nil
}

func scanAccount(row pgx.Row) (*model.MicrosoftAccount, error) {
	var a model.MicrosoftAccount
	var role DBRole
	var firstLogin, lastLogin pgtype.Timestamptz
	err := row.Scan(
		&a.ID,
		&a.Email,
		&a.Name,
		&a.MailAccountName,
		&role,
		&a.UserID,
		&a.LinkLater,
		&firstLogin,
		&lastLogin)
	if err != nil {
		return nil, err
	}
	a.Role = role.role
	a.FirstLogin = firstLogin.Time
	a.LastLogin = lastLogin.Time
	return &a, nil
}
