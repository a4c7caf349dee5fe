// Command chat is a terminal front end for the assistant. It owns the
// session: the conversation log, the active language, and the display
// cadence of streamed partials. Everything else lives behind the Assistant.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SHRA1M/Rag-chatbot/internal/config"
	"github.com/SHRA1M/Rag-chatbot/internal/conversation"
	"github.com/SHRA1M/Rag-chatbot/internal/embedding"
	"github.com/SHRA1M/Rag-chatbot/internal/generator"
	"github.com/SHRA1M/Rag-chatbot/internal/index"
	"github.com/SHRA1M/Rag-chatbot/internal/prompt"
	"github.com/SHRA1M/Rag-chatbot/internal/rag"
	"github.com/SHRA1M/Rag-chatbot/internal/retriever"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.WarnLevel)

	configPath := flag.String("config", configFilePath, "Path to the config file")
	startLang := flag.String("lang", "en", "Initial UI language (en or ar)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	if !cfg.GenerationEnabled() {
		log.Warn().Msg("GROQ_API_KEY not set, every answer will use the canned fallback")
	}

	assistant := buildAssistant(cfg)

	conv := conversation.New()
	lang := prompt.Language(*startLang)
	if lang != prompt.Arabic {
		lang = prompt.English
	}

	fmt.Println(assistant.Greeting(conv, lang))
	fmt.Println("(/lang switches language, /quit exits)")

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line {
		case "/quit", "/exit":
			return
		case "/lang":
			if lang == prompt.English {
				lang = prompt.Arabic
			} else {
				lang = prompt.English
			}
			fmt.Println(assistant.Greeting(conv, lang))
			continue
		}

		answer := assistant.AnswerStream(ctx, conv, line, lang, func(partial string) {
			fmt.Print("\r\033[2K" + lastLine(partial))
		})
		fmt.Print("\r\033[2K")
		fmt.Println(answer)
	}
}

// buildAssistant assembles the serving pipeline. A missing index or
// embedder disables retrieval; a missing credential disables generation;
// neither stops the process from answering.
func buildAssistant(cfg *config.Config) *rag.Assistant {
	var searcher retriever.Searcher
	ix, err := index.Open(cfg.Index.Path, cfg.Index.Collection, cfg.Index.Archive)
	if err != nil {
		// ErrUnavailable and everything else mean the same thing here:
		// answer without context rather than refuse to start.
		log.Warn().Err(err).Msg("retrieval disabled")
	} else {
		searcher = ix
	}

	var embedder embedding.Embedder
	if searcher != nil {
		e, err := embedding.New(&cfg.Embedding)
		if err != nil {
			log.Warn().Err(err).Msg("embedder unavailable, retrieval disabled")
			searcher = nil
		} else {
			embedder = e
		}
	}

	client, err := generator.NewClient(&cfg.LLM)
	if err != nil {
		log.Warn().Err(err).Msg("model client unavailable, using canned fallbacks")
		client = nil
	}

	r := retriever.New(embedder, searcher, cfg.Retrieval.TopK, cfg.Retrieval.HistoryWindow)
	g := generator.New(client, cfg.LLM.Model, cfg.LLM.BackupModel, generator.DefaultThrottle)
	return rag.New(r, g)
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
