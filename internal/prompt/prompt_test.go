package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SHRA1M/Rag-chatbot/internal/models"
)

func TestResponseLanguage(t *testing.T) {
	tests := []struct {
		name     string
		question string
		uiLang   Language
		want     Language
	}{
		{"arabic question overrides english ui", "مرحبا كيف حالك", English, Arabic},
		{"english question with arabic ui", "hello", Arabic, Arabic},
		{"english question with english ui", "hello", English, English},
		{"mixed text counts as arabic", "what is خدمة?", English, Arabic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResponseLanguage(tt.question, tt.uiLang))
		})
	}
}

func TestComposeShape(t *testing.T) {
	history := []models.Turn{
		{Role: models.RoleAssistant, Content: "greeting"},
		{Role: models.RoleUser, Content: "what do you offer?"},
	}
	chunks := []string{"first chunk", "second chunk"}

	turns := Compose(history, chunks, "how much does it cost?", English)
	require.Len(t, turns, len(history)+2)

	// History replayed verbatim, in order.
	assert.Equal(t, history[0], turns[0])
	assert.Equal(t, history[1], turns[1])

	// The question turn carries the guardrails, the ranked context and the
	// language directive.
	q := turns[len(turns)-2]
	assert.Equal(t, models.RoleUser, q.Role)
	assert.Contains(t, q.Content, "ONLY the information in the CONTEXT")
	assert.Contains(t, q.Content, "first chunk\nsecond chunk")
	assert.Contains(t, q.Content, "how much does it cost?")
	assert.Contains(t, q.Content, "Answer in English only")

	// Trailing system instruction with the scope limits.
	sys := turns[len(turns)-1]
	assert.Equal(t, models.RoleSystem, sys.Role)
	assert.Contains(t, sys.Content, "NO LEGAL ADVICE")
	assert.Contains(t, sys.Content, "No emojis")
}

func TestComposeBoundsHistory(t *testing.T) {
	var history []models.Turn
	for i := 0; i < 9; i++ {
		history = append(history, models.Turn{Role: models.RoleUser, Content: strings.Repeat("x", i+1)})
	}

	turns := Compose(history, nil, "q", English)
	require.Len(t, turns, HistoryWindow+2)
	// Oldest turns dropped, most recent kept.
	assert.Equal(t, history[len(history)-HistoryWindow], turns[0])
}

func TestComposeArabic(t *testing.T) {
	turns := Compose(nil, nil, "ما هي خدماتكم؟", Arabic)
	require.Len(t, turns, 2)
	assert.Contains(t, turns[0].Content, "Answer in Arabic only")
	assert.Contains(t, turns[1].Content, "بالعربية فقط")
}

func TestGreeting(t *testing.T) {
	assert.Contains(t, Greeting(English), "Digital Protection")
	assert.Contains(t, Greeting(Arabic), "مرحبا")
	assert.Contains(t, Greeting(Arabic), `<div class="arabic-text">`)
}

func TestWrapRTLIdempotent(t *testing.T) {
	once := WrapRTL("مرحبا")
	assert.Equal(t, `<div class="arabic-text">مرحبا</div>`, once)
	assert.Equal(t, once, WrapRTL(once))
}
