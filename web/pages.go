package web

import (
	"net/http"

	"github.com/Sports-day/sports-day-demo/controller"
	"github.com/unrolled/render"
)

// gameListHandler renders every game, the heaviest first.
func gameListHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := ctrl.Games(r.Context())
		defer l.Close()

		s, err := l.Wait(r.Context())
		if err == nil {
			err = s.Err
		}
		if err != nil {
			renderErrorPage(w, render, err)
			return
		}

		render.HTML(w, http.StatusOK, "games", controller.SortByWeight(s.Data))
	}
}

func scheduleHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := my(ctrl, r)
		defer v.Schedule.Close()

		s, err := v.Schedule.Wait(r.Context())
		if err == nil {
			err = s.Err
		}
		if err != nil {
			renderErrorPage(w, render, err)
			return
		}

		data := map[string]any{
			"viewer":  v.Viewer,
			"entries": s.Data,
		}
		render.HTML(w, http.StatusOK, "schedule", data)
	}
}

// renderErrorPage renders the 404 page for anything that does not exist and the
// 500 page for everything else.
func renderErrorPage(w http.ResponseWriter, render *render.Render, err error) {
	if errorStatus(err) == http.StatusNotFound {
		render.HTML(w, http.StatusNotFound, "404", err.Error())
		return
	}
	render.HTML(w, http.StatusInternalServerError, "500", err.Error())
}
