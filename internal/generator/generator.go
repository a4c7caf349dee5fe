// Package generator produces the assistant's answer: a streamed model call
// with tiered failover ending in a deterministic canned response. Nothing
// in this package ever returns an error to its caller; the contract is
// "always produce an answer".
package generator

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/SHRA1M/Rag-chatbot/internal/models"
	"github.com/SHRA1M/Rag-chatbot/internal/prompt"
)

// EmitFunc receives display-ready partial answers while a response streams.
// The last call always carries the complete cleaned answer.
type EmitFunc func(partial string)

// DefaultThrottle bounds how often partials are emitted, to keep the
// consuming UI from redrawing on every token.
const DefaultThrottle = 50 * time.Millisecond

// Generator drives the answer tiers: primary model, backup model, static
// fallback.
type Generator struct {
	client   ModelClient
	primary  string
	backup   string
	throttle time.Duration
}

// New builds a Generator. client may be nil when no credential is
// configured; every query then answers via the static fallback. A negative
// throttle selects the default; zero disables throttling.
func New(client ModelClient, primary, backup string, throttle time.Duration) *Generator {
	if throttle < 0 {
		throttle = DefaultThrottle
	}
	return &Generator{
		client:   client,
		primary:  primary,
		backup:   backup,
		throttle: throttle,
	}
}

// Generate answers one query. The primary model is tried first; any call or
// stream failure moves straight to the backup with the identical payload
// (no retry within a tier), and if that fails too, the canned fallback for
// the question's category is returned. emit may be nil. Each call runs to
// completion or failure independently; cancelling ctx abandons the model
// call.
func (g *Generator) Generate(ctx context.Context, turns []models.Turn, question string, lang prompt.Language, emit EmitFunc) string {
	if g.client == nil {
		return g.static(question, lang, emit)
	}

	for _, model := range []string{g.primary, g.backup} {
		answer, err := g.stream(ctx, model, turns, lang, emit)
		if err != nil {
			log.Warn().Err(err).Str("model", model).Msg("model call failed")
			continue
		}
		return answer
	}

	log.Warn().Msg("all model tiers failed, using static fallback")
	return g.static(question, lang, emit)
}

func (g *Generator) stream(ctx context.Context, model string, turns []models.Turn, lang prompt.Language, emit EmitFunc) (string, error) {
	var buffer strings.Builder
	lastEmit := time.Now()

	full, err := g.client.Stream(ctx, model, turns, func(delta string) error {
		buffer.WriteString(delta)
		if emit != nil && time.Since(lastEmit) >= g.throttle {
			emit(Clean(buffer.String(), lang))
			lastEmit = time.Now()
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	final := Clean(full, lang)
	if emit != nil {
		emit(final)
	}
	return final, nil
}

func (g *Generator) static(question string, lang prompt.Language, emit EmitFunc) string {
	answer := FallbackResponse(question, lang)
	if emit != nil {
		emit(answer)
	}
	return answer
}
