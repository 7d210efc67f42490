// Package factory is the entry point for entity operations. Each entity kind has a
// factory with the same Index/Show/Create/Update/Delete shape plus its relation
// queries, backed by whichever repository strategy was configured.
package factory

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sports-day/sports-day-demo/config"
	"github.com/Sports-day/sports-day-demo/db"
	"github.com/Sports-day/sports-day-demo/platforms/sportsday"
	"github.com/Sports-day/sports-day-demo/repository"
	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidInput error = errors.New("invalid input")
)

type Set struct {
	Sports            *SportFactory
	Classes           *ClassFactory
	Images            *ImageFactory
	MicrosoftAccounts *MicrosoftAccountFactory
	Games             *GameFactory
	Matches           *MatchFactory
	Teams             *TeamFactory
	Users             *UserFactory

	close func()
}

// New wraps any repository.
func New(repo repository.Repository) *Set {
	return &Set{
		Sports:            &SportFactory{repo: repo},
		Classes:           &ClassFactory{repo: repo},
		Images:            &ImageFactory{repo: repo},
		MicrosoftAccounts: &MicrosoftAccountFactory{repo: repo},
		Games:             &GameFactory{repo: repo},
		Matches:           &MatchFactory{repo: repo},
		Teams:             &TeamFactory{repo: repo},
		Users:             &UserFactory{repo: repo},
		close:             func() {},
	}
}

// Open creates the repository strategy selected in cfg.
func Open(ctx context.Context, cfg *config.Config, clock clock.Clock) (*Set, error) {
	logger := zerolog.Ctx(ctx)

	switch cfg.Repository {
	case config.REPOSITORY_LIVE:
		creds := sportsday.Credentials{
			Token:        cfg.SportsDayToken,
			ClientID:     cfg.SportsDayClientID,
			ClientSecret: cfg.SportsDayClientSecret,
			TokenURL:     cfg.SportsDayTokenURL,
		}
		client, err := sportsday.New(cfg.SportsDayURL, sportsday.NewHTTPClient(ctx, creds, cfg.RequestTimeout))
		if err != nil {
			return nil, fmt.Errorf("error creating sports-day client: %w", err)
		}
		logger.Info().Str("url", cfg.SportsDayURL).Msg("using the live sports-day repository")
		return New(repository.NewREST(client)), nil

	case config.REPOSITORY_MOCK:
		logger.Info().Msg("using the in-memory repository")
		return New(repository.NewMemory(repository.DefaultFixtures(), clock)), nil

	case config.REPOSITORY_POSTGRES:
		d, err := db.New(ctx, cfg.PostgresConnString, clock)
		if err != nil {
			return nil, fmt.Errorf("cannot connect to DB: %w", err)
		}
		logger.Info().Msg("using the postgres repository")
		s := New(d)
		s.close = d.Close
		return s, nil

	default:
		return nil, fmt.Errorf("unknown repository strategy '%s'", cfg.Repository)
	}
}

// Close releases the resources of the repository, if it holds any.
func (s *Set) Close() {
	s.close()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
