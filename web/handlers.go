package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Sports-day/sports-day-demo/controller"
	"github.com/Sports-day/sports-day-demo/db"
	"github.com/Sports-day/sports-day-demo/factory"
	"github.com/Sports-day/sports-day-demo/fetch"
	"github.com/Sports-day/sports-day-demo/model"
	"github.com/Sports-day/sports-day-demo/platforms/sportsday"
	"github.com/Sports-day/sports-day-demo/repository"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

// Responses use the same envelope as the sports-day API.
type envelope struct {
	Data any `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
}

func renderError(w http.ResponseWriter, render *render.Render, status int, err error) {
	render.JSON(w, status, errorBody{Error: err.Error()})
}

func errorStatus(err error) int {
	var statusErr *sportsday.StatusError
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, controller.ErrNoSport):
		return http.StatusNotFound
	case errors.Is(err, factory.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnsupportedGameType):
		return http.StatusUnprocessableEntity
	case errors.Is(err, db.ErrNoSession):
		return http.StatusNotImplemented
	case errors.As(err, &statusErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// serveLoader waits for l and writes its data, or the error of its last cycle.
// The loader is closed once the response is written.
func serveLoader[T any](w http.ResponseWriter, r *http.Request, render *render.Render, l *fetch.Loader[T]) {
	defer l.Close()

	s, err := l.Wait(r.Context())
	if err != nil {
		status := http.StatusServiceUnavailable
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		renderError(w, render, status, err)
		return
	}
	if s.Err != nil {
		renderError(w, render, errorStatus(s.Err), s.Err)
		return
	}
	render.JSON(w, http.StatusOK, envelope{Data: s.Data})
}

func idParam(r *http.Request, name string) (int32, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: error parsing %s: %w", factory.ErrInvalidInput, name, err)
	}
	return int32(id), nil
}

// withID parses the id URL parameter before calling next.
func withID(render *render.Render, name string, next func(w http.ResponseWriter, r *http.Request, id int32)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r, name)
		if err != nil {
			renderError(w, render, http.StatusBadRequest, err)
			return
		}
		next(w, r, id)
	}
}

func gamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveLoader(w, r, render, ctrl.Games(r.Context()))
	}
}

func gameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return withID(render, "gameID", func(w http.ResponseWriter, r *http.Request, id int32) {
		serveLoader(w, r, render, ctrl.Game(r.Context(), id))
	})
}

func gameMatchesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return withID(render, "gameID", func(w http.ResponseWriter, r *http.Request, id int32) {
		serveLoader(w, r, render, ctrl.GameMatches(r.Context(), id))
	})
}

func gameEntriesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return withID(render, "gameID", func(w http.ResponseWriter, r *http.Request, id int32) {
		serveLoader(w, r, render, ctrl.GameEntries(r.Context(), id))
	})
}

func gameResultHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return withID(render, "gameID", func(w http.ResponseWriter, r *http.Request, id int32) {
		serveLoader(w, r, render, ctrl.GameResult(r.Context(), id))
	})
}

func teamGamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return withID(render, "teamID", func(w http.ResponseWriter, r *http.Request, id int32) {
		serveLoader(w, r, render, ctrl.TeamGames(r.Context(), id))
	})
}

func matchesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveLoader(w, r, render, ctrl.Matches(r.Context()))
	}
}

func matchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return withID(render, "matchID", func(w http.ResponseWriter, r *http.Request, id int32) {
		serveLoader(w, r, render, ctrl.Match(r.Context(), id))
	})
}

type viewerKey struct{}

// viewer reads the viewer from the X-User-Id header, or the user query parameter,
// and puts it in the request context.
func viewer(render *render.Render, html bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User-Id")
			if raw == "" {
				raw = r.URL.Query().Get("user")
			}

			id, err := strconv.ParseInt(raw, 10, 32)
			if err != nil || id <= 0 {
				msg := "a viewer is required, set the X-User-Id header or the user parameter"
				if html {
					render.HTML(w, http.StatusBadRequest, "400", msg)
				} else {
					renderError(w, render, http.StatusBadRequest, errors.New(msg))
				}
				return
			}

			ctx := context.WithValue(r.Context(), viewerKey{}, model.Viewer{UserID: int32(id)})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func my(ctrl controller.C, r *http.Request) *controller.MyViews {
	v, _ := r.Context().Value(viewerKey{}).(model.Viewer)
	return ctrl.My(r.Context(), v)
}

func myTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveLoader(w, r, render, my(ctrl, r).Teams)
	}
}

func myGamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveLoader(w, r, render, my(ctrl, r).Games)
	}
}

func myResultsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveLoader(w, r, render, my(ctrl, r).GameResults)
	}
}

// mySportHandler answers 404 for a viewer whose teams play in no sport.
func mySportHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := my(ctrl, r).Sport
		defer l.Close()

		s, err := l.Wait(r.Context())
		if err == nil && s.Err == nil && s.Data == nil {
			renderError(w, render, http.StatusNotFound, controller.ErrNoSport)
			return
		}
		serveLoader(w, r, render, l)
	}
}

func mySportMatchesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveLoader(w, r, render, my(ctrl, r).SportMatches)
	}
}

func myScheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveLoader(w, r, render, my(ctrl, r).Schedule)
	}
}
