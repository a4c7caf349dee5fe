// Package rag wires retrieval, prompt composition and generation into the
// serving boundary the UI layer calls.
package rag

import (
	"context"

	"github.com/SHRA1M/Rag-chatbot/internal/conversation"
	"github.com/SHRA1M/Rag-chatbot/internal/generator"
	"github.com/SHRA1M/Rag-chatbot/internal/models"
	"github.com/SHRA1M/Rag-chatbot/internal/prompt"
	"github.com/SHRA1M/Rag-chatbot/internal/retriever"
)

// Assistant answers questions over the knowledge base. The caller owns the
// conversation log and passes it into every call; the Assistant itself
// holds no session state and may serve many sessions concurrently.
type Assistant struct {
	retriever *retriever.Retriever
	generator *generator.Generator
}

func New(r *retriever.Retriever, g *generator.Generator) *Assistant {
	return &Assistant{retriever: r, generator: g}
}

// Answer runs the full query path and returns the final cleaned answer,
// appending both the question and the answer to conv. It never fails:
// every error on the way degrades to a usable response.
func (a *Assistant) Answer(ctx context.Context, conv *conversation.Log, question string, uiLanguage prompt.Language) string {
	return a.AnswerStream(ctx, conv, question, uiLanguage, nil)
}

// AnswerStream is Answer with partial delivery: emit observes the cleaned
// answer as it grows, ending with the value AnswerStream returns.
func (a *Assistant) AnswerStream(ctx context.Context, conv *conversation.Log, question string, uiLanguage prompt.Language, emit generator.EmitFunc) string {
	conv.Append(models.Turn{Role: models.RoleUser, Content: question})

	lang := prompt.ResponseLanguage(question, uiLanguage)

	chunks := a.retriever.Retrieve(ctx, conv.All(), question)
	texts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		texts = append(texts, c.Content)
	}

	turns := prompt.Compose(conv.All(), texts, question, lang)
	answer := a.generator.Generate(ctx, turns, question, lang, emit)

	conv.Append(models.Turn{Role: models.RoleAssistant, Content: answer})
	return answer
}

// Greeting resets the session and seeds it with the opening message for the
// given language, returning that message. Called on session start and on
// every language switch.
func (a *Assistant) Greeting(conv *conversation.Log, uiLanguage prompt.Language) string {
	conv.Clear()
	greeting := prompt.Greeting(uiLanguage)
	conv.Append(models.Turn{Role: models.RoleAssistant, Content: greeting})
	return greeting
}
