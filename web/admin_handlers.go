package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Sports-day/sports-day-demo/controller"
	"github.com/Sports-day/sports-day-demo/factory"
	"github.com/Sports-day/sports-day-demo/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

// adminRoutes exposes the factories. Writes go straight to the repository and
// do not refresh any loader.
func adminRoutes(r chi.Router, ctrl controller.C, render *render.Render) {
	f := ctrl.Factories()

	r.Route("/sports", func(r chi.Router) {
		r.Get("/", listHandler(render, f.Sports.Index))
		r.Post("/", createHandler(render, f.Sports.Create))
		r.Get("/{id:\\d+}", showHandler(render, f.Sports.Show))
		r.Put("/{id:\\d+}", updateHandler(render, f.Sports.Update))
		r.Delete("/{id:\\d+}", deleteHandler(render, f.Sports.Delete))
	})

	r.Route("/classes", func(r chi.Router) {
		r.Get("/", listHandler(render, f.Classes.Index))
		r.Post("/", createHandler(render, f.Classes.Create))
		r.Get("/{id:\\d+}", showHandler(render, f.Classes.Show))
		r.Put("/{id:\\d+}", updateHandler(render, f.Classes.Update))
		r.Delete("/{id:\\d+}", deleteHandler(render, f.Classes.Delete))
		r.Get("/{id:\\d+}/users", relationHandler(render, f.Classes.Users))
	})

	r.Route("/images", func(r chi.Router) {
		r.Get("/", listHandler(render, f.Images.Index))
		r.Post("/", createHandler(render, f.Images.Create))
		r.Get("/{id:\\d+}", showHandler(render, f.Images.Show))
		r.Delete("/{id:\\d+}", deleteHandler(render, f.Images.Delete))
	})

	r.Route("/games", func(r chi.Router) {
		r.Post("/", createHandler(render, f.Games.Create))
		r.Put("/{id:\\d+}", updateHandler(render, f.Games.Update))
		r.Delete("/{id:\\d+}", deleteHandler(render, f.Games.Delete))
	})

	r.Route("/matches", func(r chi.Router) {
		r.Post("/", createHandler(render, f.Matches.Create))
		r.Put("/{id:\\d+}", updateHandler(render, f.Matches.Update))
		r.Delete("/{id:\\d+}", deleteHandler(render, f.Matches.Delete))
	})

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", listHandler(render, f.Teams.Index))
		r.Post("/", createHandler(render, f.Teams.Create))
		r.Get("/{id:\\d+}", showHandler(render, f.Teams.Show))
		r.Put("/{id:\\d+}", updateHandler(render, f.Teams.Update))
		r.Delete("/{id:\\d+}", deleteHandler(render, f.Teams.Delete))
		r.Get("/{id:\\d+}/users", relationHandler(render, f.Teams.Users))
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", listHandler(render, f.Users.Index))
		r.Post("/", createHandler(render, f.Users.Create))
		r.Get("/{id:\\d+}", showHandler(render, f.Users.Show))
		r.Put("/{id:\\d+}", updateHandler(render, f.Users.Update))
		r.Delete("/{id:\\d+}", deleteHandler(render, f.Users.Delete))
		r.Get("/{id:\\d+}/teams", relationHandler(render, f.Users.Teams))
	})

	r.Route("/microsoft-accounts", func(r chi.Router) {
		accounts := f.MicrosoftAccounts
		r.Get("/", listHandler(render, accounts.Index))
		r.Route("/{ref:(me|\\d+)}", func(r chi.Router) {
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				a, err := accounts.Show(r.Context(), accountRef(r))
				respond(w, render, http.StatusOK, a, err)
			})
			r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
				respondNoContent(w, render, accounts.Delete(r.Context(), accountRef(r)))
			})
			r.Put("/role", func(w http.ResponseWriter, r *http.Request) {
				var in struct {
					Role string `json:"role"`
				}
				if !decode(w, r, render, &in) {
					return
				}
				a, err := accounts.SetRole(r.Context(), accountRef(r), model.ParseRole(in.Role))
				respond(w, render, http.StatusOK, a, err)
			})
			r.Post("/link", func(w http.ResponseWriter, r *http.Request) {
				var in struct {
					UserID int32 `json:"userId"`
				}
				if !decode(w, r, render, &in) {
					return
				}
				respondNoContent(w, render, accounts.LinkUser(r.Context(), accountRef(r), in.UserID))
			})
			r.Delete("/link", func(w http.ResponseWriter, r *http.Request) {
				respondNoContent(w, render, accounts.UnlinkUser(r.Context(), accountRef(r)))
			})
			r.Post("/link-later", func(w http.ResponseWriter, r *http.Request) {
				respondNoContent(w, render, accounts.LinkLater(r.Context(), accountRef(r)))
			})
		})
	})
}

func accountRef(r *http.Request) model.AccountRef {
	return model.AccountRef(chi.URLParam(r, "ref"))
}

func respond(w http.ResponseWriter, render *render.Render, status int, v any, err error) {
	if err != nil {
		renderError(w, render, errorStatus(err), err)
		return
	}
	render.JSON(w, status, envelope{Data: v})
}

func respondNoContent(w http.ResponseWriter, render *render.Render, err error) {
	if err != nil {
		renderError(w, render, errorStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decode(w http.ResponseWriter, r *http.Request, render *render.Render, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		renderError(w, render, http.StatusBadRequest, fmt.Errorf("%w: error decoding request body: %w", factory.ErrInvalidInput, err))
		return false
	}
	return true
}

func listHandler[T any](render *render.Render, index func(ctx context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := index(r.Context())
		respond(w, render, http.StatusOK, v, err)
	}
}

func showHandler[T any](render *render.Render, show func(ctx context.Context, id int32) (*T, error)) http.HandlerFunc {
	return withID(render, "id", func(w http.ResponseWriter, r *http.Request, id int32) {
		v, err := show(r.Context(), id)
		respond(w, render, http.StatusOK, v, err)
	})
}

func relationHandler[T any](render *render.Render, related func(ctx context.Context, id int32) ([]T, error)) http.HandlerFunc {
	return withID(render, "id", func(w http.ResponseWriter, r *http.Request, id int32) {
		v, err := related(r.Context(), id)
		respond(w, render, http.StatusOK, v, err)
	})
}

func createHandler[I, T any](render *render.Render, create func(ctx context.Context, in I) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in I
		if !decode(w, r, render, &in) {
			return
		}
		v, err := create(r.Context(), in)
		respond(w, render, http.StatusCreated, v, err)
	}
}

func updateHandler[I, T any](render *render.Render, update func(ctx context.Context, id int32, in I) (*T, error)) http.HandlerFunc {
	return withID(render, "id", func(w http.ResponseWriter, r *http.Request, id int32) {
		var in I
		if !decode(w, r, render, &in) {
			return
		}
		v, err := update(r.Context(), id, in)
		respond(w, render, http.StatusOK, v, err)
	})
}

func deleteHandler(render *render.Render, del func(ctx context.Context, id int32) error) http.HandlerFunc {
	return withID(render, "id", func(w http.ResponseWriter, r *http.Request, id int32) {
		respondNoContent(w, render, del(r.Context(), id))
	})
}
