package web

import (
	"net/http"
	"time"

	"github.com/Sports-day/sports-day-demo/config"
	"github.com/Sports-day/sports-day-demo/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(hlog.AccessHandler(accessLog))
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped. Loaders created for the request are
	// abandoned with it.
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/", gameListHandler(ctrl, render))
	r.With(viewer(render, true)).Get("/schedule", scheduleHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		r.Route("/games", func(r chi.Router) {
			r.Get("/", gamesHandler(ctrl, render))
			r.Route("/{gameID:\\d+}", func(r chi.Router) {
				r.Get("/", gameHandler(ctrl, render))
				r.Get("/matches", gameMatchesHandler(ctrl, render))
				r.Get("/entries", gameEntriesHandler(ctrl, render))
				r.Get("/result", gameResultHandler(ctrl, render))
			})
		})
		r.Get("/teams/{teamID:\\d+}/games", teamGamesHandler(ctrl, render))
		r.Get("/matches", matchesHandler(ctrl, render))
		r.Get("/matches/{matchID:\\d+}", matchHandler(ctrl, render))

		r.Route("/me", func(r chi.Router) {
			r.Use(viewer(render, false))
			r.Get("/teams", myTeamsHandler(ctrl, render))
			r.Get("/games", myGamesHandler(ctrl, render))
			r.Get("/results", myResultsHandler(ctrl, render))
			r.Get("/sport", mySportHandler(ctrl, render))
			r.Get("/sport/matches", mySportMatchesHandler(ctrl, render))
			r.Get("/schedule", myScheduleHandler(ctrl, render))
		})

		if cfg.AdminEnabled() {
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.BasicAuth("sports-day", map[string]string{cfg.AdminUser: cfg.AdminPassword}))
				adminRoutes(r, ctrl, render)
			})
		}
	})

	return r
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("request_id", middleware.GetReqID(r.Context())).
		Str("method", r.Method).
		Stringer("url", r.URL).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}
