package generator

import (
	"regexp"
	"strings"

	"github.com/SHRA1M/Rag-chatbot/internal/prompt"
)

// Label prefixes the models keep producing despite instructions, stripped
// wherever they appear.
var labels = []string{
	"Direct answer:", "Key Points:", "Key Considerations:", "Next Step:",
	"Response:", "Answer:",
	"الاجابة:", "النقاط الرئيسية:", "الخطوة التالية:",
}

var emojiPattern = regexp.MustCompile(`[\x{1F600}-\x{1F64F}` +
	`\x{1F300}-\x{1F5FF}` +
	`\x{1F680}-\x{1F6FF}` +
	`\x{1F1E0}-\x{1F1FF}` +
	`\x{2702}-\x{27B0}` +
	`\x{24C2}-\x{1F251}]+`)

// Clean normalises a model answer for display: label prefixes and emoji are
// removed, runs of three or more newlines collapse to a blank line, the
// result is trimmed, and Arabic answers are wrapped in the right-to-left
// container exactly once. Cleaning an already-clean string is a no-op, so
// it is safe to apply to both streamed partials and the final answer.
func Clean(answer string, lang prompt.Language) string {
	for _, label := range labels {
		answer = strings.ReplaceAll(answer, label, "")
	}
	answer = emojiPattern.ReplaceAllString(answer, "")
	for strings.Contains(answer, "\n\n\n") {
		answer = strings.ReplaceAll(answer, "\n\n\n", "\n\n")
	}
	answer = strings.TrimSpace(answer)
	if lang == prompt.Arabic {
		answer = prompt.WrapRTL(answer)
	}
	return answer
}
