package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"qarks-assistant/internal/app"
	"qarks-assistant/internal/assistant"
	"qarks-assistant/internal/httputil"
	"qarks-assistant/internal/knowledge"
	"qarks-assistant/internal/web"
)

const maxFormBytes = 1 << 20

type answerRequest struct {
	Question string `json:"question" validate:"required"`
}

type answerResponse struct {
	Answer string `json:"answer"`
	Error  string `json:"error,omitempty"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Build(ctx)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	renderer, err := web.NewRenderer()
	if err != nil {
		deps.Log.Error("failed to load templates", "err", err)
		os.Exit(1)
	}
	asst := assistant.New(knowledge.Default(), deps.LLM, deps.Log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", deps.Config.Port),
		Handler:           newRouter(deps, asst, renderer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("assistant listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		deps.Log.Error("server stopped", "err", err)
	}
	if deps.Store != nil {
		if err := deps.Store.Close(); err != nil {
			deps.Log.Warn("failed to close document store", "err", err)
		}
	}
}

func newRouter(deps app.Deps, asst *assistant.Assistant, renderer *web.Renderer) *chi.Mux {
	r := httputil.NewRouter(deps.Log, time.Duration(deps.Config.RequestTimeout)*time.Second)

	r.Get("/", pageHandler(deps, asst, renderer))
	r.Post("/ask", askHandler(deps, asst, renderer))
	r.Post("/api/answer", answerHandler(deps, asst))
	r.Get("/healthz", httputil.HealthHandler(deps))
	r.Get("/readyz", httputil.ReadyHandler(deps))
	return r
}

// pageHandler renders the page. The summary is regenerated on every request.
func pageHandler(deps app.Deps, asst *assistant.Assistant, renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := web.NewPage(asst.Knowledge(), deps.Notices)
		page.SetSummary(asst.Summarize(r.Context()))
		writePage(deps, w, renderer, page)
	}
}

// askHandler re-renders the page, summary included, and answers the submitted
// question. An empty question only produces a warning.
func askHandler(deps app.Deps, asst *assistant.Assistant, renderer *web.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			httputil.Fail(deps.Log, w, "invalid form", err, http.StatusBadRequest)
			return
		}
		question := r.PostFormValue("question")

		ctx := r.Context()
		page := web.NewPage(asst.Knowledge(), deps.Notices)
		page.SetSummary(asst.Summarize(ctx))
		page.Question = question

		res, err := asst.Answer(ctx, question)
		switch {
		case errors.Is(err, assistant.ErrEmptyQuestion):
			page.WarnEmptyQuestion()
		case err != nil:
			httputil.Fail(deps.Log, w, "failed to answer question", err, http.StatusInternalServerError)
			return
		default:
			page.SetAnswer(res)
		}
		writePage(deps, w, renderer, page)
	}
}

// answerHandler is the JSON variant of askHandler: one generation call, no summary.
func answerHandler(deps app.Deps, asst *assistant.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req answerRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFormBytes)).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		res, err := asst.Answer(r.Context(), req.Question)
		if err != nil {
			httputil.Fail(deps.Log, w, "failed to answer question", err, http.StatusBadRequest)
			return
		}
		resp := answerResponse{Answer: res.Text}
		if res.Notice != nil {
			resp.Error = res.Notice.Message
		}
		httputil.WriteJSON(w, http.StatusOK, resp)
	}
}

func writePage(deps app.Deps, w http.ResponseWriter, renderer *web.Renderer, page web.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.Render(w, page); err != nil {
		httputil.Fail(deps.Log, w, "failed to render page", err, http.StatusInternalServerError)
	}
}
