// Package prompt routes the response language and builds the model request
// out of history, retrieved context and the guardrail instructions.
package prompt

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/rs/zerolog/log"

	"github.com/SHRA1M/Rag-chatbot/internal/models"
)

// Language of the user interface and of a composed answer.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// HistoryWindow is how many prior turns are replayed to the model verbatim.
const HistoryWindow = 5

var arabicRange = regexp.MustCompile(`[\x{0600}-\x{06FF}\x{0750}-\x{077F}\x{08A0}-\x{08FF}]`)

// ContainsArabic reports whether text holds Arabic-range codepoints.
func ContainsArabic(text string) bool {
	return arabicRange.MatchString(text)
}

// ResponseLanguage decides the language the answer must use: Arabic when
// the question itself contains Arabic, or when the session language is
// Arabic; English otherwise. Pure function of its inputs.
func ResponseLanguage(question string, uiLanguage Language) Language {
	if ContainsArabic(question) || uiLanguage == Arabic {
		return Arabic
	}
	return English
}

// Compose builds the model request: the most recent history turns verbatim,
// the context-grounded question as the final user turn, and the system
// instructions trailing. contextChunks must already be in retrieval rank
// order; they are joined by newline.
func Compose(history []models.Turn, contextChunks []string, question string, lang Language) []models.Turn {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}

	turns := make([]models.Turn, 0, len(history)+2)
	turns = append(turns, history...)
	turns = append(turns, models.Turn{
		Role:    models.RoleUser,
		Content: enforcedPrompt(contextChunks, question, lang),
	})
	turns = append(turns, models.Turn{
		Role:    models.RoleSystem,
		Content: systemInstructions(lang),
	})

	logTokenCount(turns)
	return turns
}

func enforcedPrompt(chunks []string, question string, lang Language) string {
	language := "English"
	if lang == Arabic {
		language = "Arabic"
	}
	return fmt.Sprintf(`Answer the question using ONLY the information in the CONTEXT below.

RULES:
1. NO emojis
2. Give a COMPLETE answer using the context - include all relevant details
3. Only say "contact us" for pricing questions or if info is truly not in context
4. Answer in %s only

CONTEXT:
%s

QUESTION:
%s

ANSWER:`, language, strings.Join(chunks, "\n"), question)
}

func systemInstructions(lang Language) string {
	base := SystemInstructionsEN
	if lang == Arabic {
		base = SystemInstructionsAR
	}
	return base + "\n\nREMEMBER: Answer using the context provided. No emojis."
}

// Greeting returns the canned session-opening message.
func Greeting(lang Language) string {
	if lang == Arabic {
		return GreetingAR
	}
	return GreetingEN
}

const (
	rtlOpen  = `<div class="arabic-text">`
	rtlClose = `</div>`
)

// WrapRTL puts text into the right-to-left container the UI styles for
// Arabic. Already-wrapped text is returned unchanged.
func WrapRTL(text string) string {
	if strings.HasPrefix(text, rtlOpen) {
		return text
	}
	return rtlOpen + text + rtlClose
}

var (
	encoderOnce sync.Once
	encoder     *tiktoken.Tiktoken
)

// logTokenCount reports the size of the composed request. Best-effort: the
// encoder needs its vocabulary downloaded once, and a failure only costs
// the log line.
func logTokenCount(turns []models.Turn) {
	encoderOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			log.Debug().Err(err).Msg("token encoder unavailable")
			return
		}
		encoder = enc
	})
	if encoder == nil {
		return
	}
	total := 0
	for _, t := range turns {
		total += len(encoder.Encode(t.Content, nil, nil))
	}
	log.Debug().Int("tokens", total).Int("turns", len(turns)).Msg("composed model request")
}
