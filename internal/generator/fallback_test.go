package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SHRA1M/Rag-chatbot/internal/prompt"
)

func TestFallbackCategories(t *testing.T) {
	tests := []struct {
		name     string
		question string
		lang     prompt.Language
		want     string
	}{
		{"services en", "What services do you offer?", prompt.English, fallbackEN["services"]},
		{"pricing en", "How much does it cost?", prompt.English, fallbackEN["pricing"]},
		{"location en", "Where are you located?", prompt.English, fallbackEN["location"]},
		{"default en", "Tell me a story", prompt.English, fallbackEN["default"]},
		{"services ar", "ما هي خدماتكم؟", prompt.Arabic, fallbackAR["services"]},
		{"pricing ar", "كم السعر؟", prompt.Arabic, fallbackAR["pricing"]},
		{"location ar", "اين موقعكم؟", prompt.Arabic, fallbackAR["location"]},
		{"default ar", "مرحبا", prompt.Arabic, fallbackAR["default"]},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FallbackResponse(tc.question, tc.lang))
		})
	}
}

func TestFallbackAlwaysCarriesContact(t *testing.T) {
	for name, answer := range fallbackEN {
		assert.Contains(t, answer, "info@dp-technologies.net", "en %s", name)
	}
	for name, answer := range fallbackAR {
		assert.Contains(t, answer, "info@dp-technologies.net", "ar %s", name)
	}
}

func TestFallbackPriorityOrder(t *testing.T) {
	// Mentions both services and pricing; services is checked first.
	got := FallbackResponse("what is the price of your services?", prompt.English)
	assert.Equal(t, fallbackEN["services"], got)
}

func TestFallbackCaseInsensitive(t *testing.T) {
	got := FallbackResponse("WHERE ARE YOU?", prompt.English)
	assert.Equal(t, fallbackEN["location"], got)
}

func TestFallbackArabicHowMuch(t *testing.T) {
	// "كم" alone marks a quantity question.
	got := FallbackResponse("كم تكلفة المشروع", prompt.Arabic)
	assert.Equal(t, fallbackAR["pricing"], got)
}
