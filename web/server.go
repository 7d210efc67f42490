package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/Sports-day/sports-day-demo/config"
	"github.com/Sports-day/sports-day-demo/controller"
	"github.com/Sports-day/sports-day-demo/model"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

func NewServer(cfg *config.Config, ctrl controller.C) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render, cfg)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatal().Err(err).Msg("fatal error shutting down server")
		}
	}()

	log.Info().Str("addr", s.server.Addr).Msg("web server is listening")
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("fatal error with server")
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"date":     dateFormatter,
				"clock":    clockFormatter,
				"gameType": gameTypeFormatter,
			},
		},
	})
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.Format("2006-01-02")
}

// clockFormatter shows the time of day of a match, matches never span days.
func clockFormatter(t time.Time) string {
	if t.IsZero() {
		return "未定"
	}
	return t.Format("15:04")
}

func gameTypeFormatter(t model.GameType) string {
	switch t {
	case model.GAME_LEAGUE:
		return "リーグ"
	case model.GAME_TOURNAMENT:
		return "トーナメント"
	default:
		return string(t)
	}
}
