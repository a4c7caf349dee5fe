package generator

import (
	"strings"

	"github.com/SHRA1M/Rag-chatbot/internal/prompt"
)

// Canned answers for when no model tier is reachable. Every entry carries
// the contact address so the user always has a way forward.
var fallbackEN = map[string]string{
	"services": "We offer cybersecurity and compliance services including GDPR, ISO 27701, CBJ compliance, security assessments, and identity management. Contact us at info@dp-technologies.net for details.",
	"pricing":  "Pricing depends on the scope of your project. We offer fixed-price, time and materials, and retainer options. Contact info@dp-technologies.net for a quote.",
	"location": "We are located in Amman, Jordan. Contact us at info@dp-technologies.net or +962 790 552 879.",
	"default":  "Thank you for your message. For detailed assistance, please contact our team at info@dp-technologies.net or +962 790 552 879.",
}

var fallbackAR = map[string]string{
	"services": "نقدم خدمات الامن السيبراني والامتثال بما في ذلك GDPR و ISO 27701 والبنك المركزي الاردني وتقييمات الامن. تواصل معنا على info@dp-technologies.net",
	"pricing":  "التسعير يعتمد على نطاق مشروعك. نقدم خيارات السعر الثابت والوقت والمواد والاشتراك. تواصل معنا على info@dp-technologies.net للحصول على عرض سعر.",
	"location": "نحن في عمان، الاردن. تواصل معنا على info@dp-technologies.net او +962 790 552 879",
	"default":  "شكرا لرسالتك. للمساعدة التفصيلية، يرجى التواصل مع فريقنا على info@dp-technologies.net او +962 790 552 879",
}

// Keyword vocabulary per category. Order matters: the first matching
// category wins (services, then pricing, then location), and matching is a
// plain substring scan with no stemming.
var fallbackCategories = []struct {
	name     string
	keywords []string
}{
	{"services", []string{"service", "خدم", "offer", "تقدم"}},
	{"pricing", []string{"price", "cost", "سعر", "تكلف", "كم"}},
	{"location", []string{"where", "location", "اين", "موقع"}},
}

// FallbackResponse picks the canned answer for the question's category by
// case-insensitive substring match. It never touches the network and never
// fails.
func FallbackResponse(question string, lang prompt.Language) string {
	table := fallbackEN
	if lang == prompt.Arabic {
		table = fallbackAR
	}

	lower := strings.ToLower(question)
	for _, cat := range fallbackCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return table[cat.name]
			}
		}
	}
	return table["default"]
}
