package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/Sports-day/sports-day-demo/config"
	"github.com/Sports-day/sports-day-demo/controller"
	"github.com/Sports-day/sports-day-demo/factory"
	"github.com/Sports-day/sports-day-demo/web"
	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Info().Str("config", cfg.Redacted()).Msg("starting sports-day")

	ctx := log.Logger.WithContext(context.Background())
	clock := clock.New()

	factories, err := factory.Open(ctx, cfg, clock)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening repository")
	}
	defer factories.Close()

	ctrl, err := controller.New(clock, factories, cfg.FetchConcurrency)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating a new controller")
	}

	server, err := web.NewServer(cfg, ctrl)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating new web server")
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Error().Msg("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Info().Msg("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
