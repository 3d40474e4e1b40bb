// Package assistant wraps the generative client behind a narrow boundary that
// turns every failure into a fixed fallback answer plus a user-visible notice.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"qarks-assistant/internal/knowledge"
	"qarks-assistant/internal/llm"
	"qarks-assistant/internal/notice"
	"qarks-assistant/internal/prompt"
)

// Fallback is shown in place of a response whenever generation fails.
const Fallback = "No se pudo generar la respuesta. Por favor, revisa tu clave de API."

// ErrEmptyQuestion is returned by Answer when no question was supplied.
var ErrEmptyQuestion = errors.New("question is required")

// Result is the outcome of one generation call. Notice is set only on failure.
type Result struct {
	Text   string
	Notice *notice.Notice
}

// Failed reports whether the result carries the fallback text.
func (r Result) Failed() bool { return r.Notice != nil }

type questionInput struct {
	Question string `validate:"required"`
}

// Assistant composes prompts over a knowledge base and sends them to an LLM.
type Assistant struct {
	kb       knowledge.Base
	client   llm.Client
	log      *slog.Logger
	validate *validator.Validate
}

// New returns an Assistant over kb. A nil log discards output.
func New(kb knowledge.Base, client llm.Client, log *slog.Logger) *Assistant {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Assistant{
		kb:       kb,
		client:   client,
		log:      log,
		validate: validator.New(),
	}
}

// Knowledge returns the knowledge base the assistant answers from.
func (a *Assistant) Knowledge() knowledge.Base { return a.kb }

// Generate calls the client exactly once. Errors never escape: they become
// the Fallback text and an error notice.
func (a *Assistant) Generate(ctx context.Context, p string) Result {
	id := uuid.New()
	log := a.log.With("generation_id", id, "prompt_chars", len(p))
	log.Debug("generation started")

	text, err := a.client.Generate(ctx, p)
	if err != nil {
		log.Error("generation failed", "err", err)
		n := notice.Error(fmt.Sprintf("Error al generar contenido con Gemini: %v", err))
		return Result{Text: Fallback, Notice: &n}
	}
	log.Info("generation finished", "response_chars", len(text))
	return Result{Text: text}
}

// Summarize generates the project summary from every document.
func (a *Assistant) Summarize(ctx context.Context) Result {
	return a.Generate(ctx, prompt.Summary(a.kb))
}

// Answer generates an answer to question. An empty question is rejected with
// ErrEmptyQuestion before any call is made. The question is passed through
// unmodified otherwise.
func (a *Assistant) Answer(ctx context.Context, question string) (Result, error) {
	if err := a.validate.Struct(questionInput{Question: question}); err != nil {
		return Result{}, ErrEmptyQuestion
	}
	return a.Generate(ctx, prompt.Question(a.kb, question)), nil
}
