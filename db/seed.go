package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Sports-day/sports-day-demo/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var seededTables = []string{
	"sports",
	"classes",
	"users",
	"images",
	"microsoft_accounts",
	"teams",
	"games",
	"matches",
}

func (db *postgresDB) Seed(ctx context.Context, f repository.Fixtures) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	exec := func(kind, query string, args pgx.NamedArgs) error {
		if _, err := tx.Exec(ctx, query, args); err != nil {
			return fmt.Errorf("error seeding %s: %w", kind, err)
		}
		return nil
	}

	sportOf := make(map[int32]int32)
	for _, s := range f.Sports {
		for _, g := range s.GameIDs {
			sportOf[g] = s.ID
		}
		err := exec("sport", `INSERT INTO sports (id, name, description, weight, created, updated)
			VALUES (@id, @name, @description, @weight, @created, @updated)`, pgx.NamedArgs{
			"id":          s.ID,
			"name":        s.Name,
			"description": s.Description,
			"weight":      s.Weight,
			"created":     timestamptz(s.CreatedAt),
			"updated":     timestamptz(s.UpdatedAt),
		})
		if err != nil {
			return err
		}
	}

	for _, c := range f.Classes {
		err := exec("class", `INSERT INTO classes (id, name, description, group_id, created, updated)
			VALUES (@id, @name, @description, @groupID, @created, @updated)`, pgx.NamedArgs{
			"id":          c.ID,
			"name":        c.Name,
			"description": c.Description,
			"groupID":     c.GroupID,
			"created":     timestamptz(c.CreatedAt),
			"updated":     timestamptz(c.UpdatedAt),
		})
		if err != nil {
			return err
		}
	}

	for _, u := range f.Users {
		err := exec("user", `INSERT INTO users (id, name, email, gender, class_id, created, updated)
			VALUES (@id, @name, @email, @gender, @classID, @created, @updated)`, pgx.NamedArgs{
			"id":      u.ID,
			"name":    u.Name,
			"email":   u.Email,
			"gender":  string(u.Gender),
			"classID": u.ClassID,
			"created": timestamptz(u.CreatedAt),
			"updated": timestamptz(u.UpdatedAt),
		})
		if err != nil {
			return err
		}
	}

	for _, i := range f.Images {
		err := exec("image", `INSERT INTO images (id, name, attachment, created, created_by)
			VALUES (@id, @name, @attachment, @created, @createdBy)`, pgx.NamedArgs{
			"id":         i.ID,
			"name":       i.Name,
			"attachment": i.Attachment,
			"created":    timestamptz(i.CreatedAt),
			"createdBy":  i.CreatedBy,
		})
		if err != nil {
			return err
		}
	}

	for _, a := range f.Accounts {
		err := exec("microsoft account", `INSERT INTO microsoft_accounts
			(id, email, name, mail_account_name, role, user_id, link_later, first_login, last_login)
			VALUES (@id, @email, @name, @mailAccountName, @role, @userID, @linkLater, @firstLogin, @lastLogin)`, pgx.NamedArgs{
			"id":              a.ID,
			"email":           a.Email,
			"name":            a.Name,
			"mailAccountName": a.MailAccountName,
			"role":            &DBRole{role: a.Role},
			"userID":          a.UserID,
			"linkLater":       a.LinkLater,
			"firstLogin":      timestamptz(a.FirstLogin),
			"lastLogin":       timestamptz(a.LastLogin),
		})
		if err != nil {
			return err
		}
	}

	for _, t := range f.Teams {
		err := exec("team", `INSERT INTO teams (id, name, description, class_id, created, updated)
			VALUES (@id, @name, @description, @classID, @created, @updated)`, pgx.NamedArgs{
			"id":          t.ID,
			"name":        t.Name,
			"description": t.Description,
			"classID":     t.ClassID,
			"created":     timestamptz(t.CreatedAt),
			"updated":     timestamptz(t.UpdatedAt),
		})
		if err != nil {
			return err
		}
	}

	const addMember = `INSERT INTO team_users (team_id, user_id) VALUES (@teamID, @userID) ON CONFLICT DO NOTHING`
	for _, t := range f.Teams {
		for _, u := range t.UserIDs {
			if err := exec("team user", addMember, pgx.NamedArgs{"teamID": t.ID, "userID": u}); err != nil {
				return err
			}
		}
	}
	for _, u := range f.Users {
		for _, t := range u.TeamIDs {
			if err := exec("team user", addMember, pgx.NamedArgs{"teamID": t, "userID": u.ID}); err != nil {
				return err
			}
		}
	}

	for _, g := range f.Games {
		sportID := g.SportID
		if sportID == 0 {
			sportID = sportOf[g.ID]
		}
		err := exec("game", `INSERT INTO games (id, name, description, sport_id, type, calculation_type, weight, created, updated)
			VALUES (@id, @name, @description, @sportID, @type, @calculationType, @weight, @created, @updated)`, pgx.NamedArgs{
			"id":              g.ID,
			"name":            g.Name,
			"description":     g.Description,
			"sportID":         sportID,
			"type":            &DBGameType{gameType: g.Type},
			"calculationType": g.CalculationType,
			"weight":          g.Weight,
			"created":         timestamptz(g.CreatedAt),
			"updated":         timestamptz(g.UpdatedAt),
		})
		if err != nil {
			return err
		}
	}

	const addEntry = `INSERT INTO game_entries (game_id, team_id) VALUES (@gameID, @teamID) ON CONFLICT DO NOTHING`
	for _, t := range f.Teams {
		for _, g := range t.EnteredGameIDs {
			if err := exec("game entry", addEntry, pgx.NamedArgs{"gameID": g, "teamID": t.ID}); err != nil {
				return err
			}
		}
	}
	for _, g := range f.Games {
		for _, t := range g.EnteredTeamIDs {
			if err := exec("game entry", addEntry, pgx.NamedArgs{"gameID": g.ID, "teamID": t}); err != nil {
				return err
			}
		}
	}

	for _, m := range f.Matches {
		err := exec("match", `INSERT INTO matches (id, game_id, sport_id, location_id, location, start_at,
				left_team_id, right_team_id, left_score, right_score, result, status, note, judge_team_id,
				created, updated)
			VALUES (@id, @gameID, @sportID, @locationID, @location, @startAt,
				@leftTeamID, @rightTeamID, @leftScore, @rightScore, @result, @status, @note, @judgeTeamID,
				@created, @updated)`, pgx.NamedArgs{
			"id":          m.ID,
			"gameID":      m.GameID,
			"sportID":     m.SportID,
			"locationID":  m.LocationID,
			"location":    m.Location,
			"startAt":     timestamptz(m.StartAt),
			"leftTeamID":  m.LeftTeamID,
			"rightTeamID": m.RightTeamID,
			"leftScore":   m.LeftScore,
			"rightScore":  m.RightScore,
			"result":      string(m.Result),
			"status":      string(m.Status),
			"note":        m.Note,
			"judgeTeamID": m.JudgeTeamID,
			"created":     timestamptz(m.CreatedAt),
			"updated":     timestamptz(m.UpdatedAt),
		})
		if err != nil {
			return err
		}
	}

	for _, r := range f.TournamentResults {
		for _, rank := range r.Ranks {
			err := exec("tournament rank", `INSERT INTO tournament_ranks (game_id, team_id, rank)
				VALUES (@gameID, @teamID, @rank)`, pgx.NamedArgs{
				"gameID": r.GameID,
				"teamID": rank.TeamID,
				"rank":   rank.Rank,
			})
			if err != nil {
				return err
			}
		}
	}

	// Explicit ids do not advance the serial sequences.
	for _, table := range seededTables {
		query := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE(MAX(id), 0) + 1, false) FROM %[1]s`, table)
		if _, err := tx.Exec(ctx, query); err != nil {
			return fmt.Errorf("error resetting %s sequence: %w", table, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting seed transaction: %w", err)
	}
	return nil
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{
		Time:             t.UTC(),
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}
