package main

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/montplusa/atropos/pkg/ai/minimax"
	"github.com/montplusa/atropos/pkg/game"
)

const maxBoardBytes = 64 << 10

func newRouter(cfg minimax.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "ok")
	})
	r.Post("/move", moveHandler(cfg))
	return r
}

// moveHandler reads an encoded board from the body and answers "(c,x,y,z)".
func moveHandler(cfg minimax.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBoardBytes))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		state, err := game.ParseState(strings.TrimSpace(string(body)))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		m, err := minimax.New(cfg, nil).ChooseMove(state)
		switch {
		case errors.Is(err, game.ErrIllegalPlacement):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		case m.IsDummy():
			http.Error(w, "no playable cell left", http.StatusUnprocessableEntity)
			return
		}

		log.Debug().
			Str("request-id", middleware.GetReqID(r.Context())).
			Str("move", m.String()).
			Msg("move-served")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, m.String())
	}
}
