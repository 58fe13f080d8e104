// Package mockapi serves a local stand-in for the text-processing service.
// It scores words by length and returns canned translations, which is enough
// to drive the reader without the real language backend.
package mockapi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/f3rmion/wordahead/internal/wordahead"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"
)

const mockNote = "Mock data - real translation API not yet integrated"

// Server is the mock service.
type Server struct {
	app *fiber.App
	log *zap.Logger
}

// Options configures the mock service.
type Options struct {
	AllowedOrigins string
	Logger         *zap.Logger
}

// New builds the fiber app with all routes registered.
func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	origins := opts.AllowedOrigins
	if origins == "" {
		origins = "*"
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "wordahead-mock",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	s := &Server{app: app, log: log.With(zap.String("component", "mockapi"))}
	s.registerRoutes()
	return s
}

// App exposes the fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.log.Info("mock service listening", zap.String("addr", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")
	api.Get("/health", s.health)
	api.Post("/process-text", s.processText)
	api.Get("/translate/word/:word", s.translateWord)
	api.Post("/translate/sentence", s.translateSentence)
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(wordahead.Health{
		Status:           "healthy",
		GPTSMAvailable:   false,
		OpenAIConfigured: false,
	})
}

type processTextRequest struct {
	Text *string `json:"text"`
}

type processTextResponse struct {
	Words     []wordahead.WordAnnotation `json:"words"`
	UsingMock bool                       `json:"using_mock"`
	Warning   string                     `json:"warning"`
}

func (s *Server) processText(c *fiber.Ctx) error {
	var req processTextRequest
	if err := c.BodyParser(&req); err != nil || req.Text == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No text provided"})
	}

	text := strings.TrimSpace(*req.Text)
	if text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Empty text"})
	}

	words := ScoreWords(text)
	s.log.Info("processed text", zap.Int("words", len(words)))

	return c.JSON(processTextResponse{
		Words:     words,
		UsingMock: true,
		Warning:   "Using mock data - GP-TSM not available",
	})
}

func (s *Server) translateWord(c *fiber.Ctx) error {
	word, err := url.PathUnescape(c.Params("word"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry := Lookup(word)
	return c.JSON(fiber.Map{
		"word":              word,
		"translation":       entry.Translation,
		"transliteration":   entry.Transliteration,
		"root":              entry.Root,
		"cefr_level":        entry.CEFRLevel,
		"example_sentences": entry.ExampleSentences,
		"note":              mockNote,
	})
}

type translateSentenceRequest struct {
	Sentence string `json:"sentence"`
}

func (s *Server) translateSentence(c *fiber.Ctx) error {
	var req translateSentenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(wordahead.SentenceTranslation{
		English:         req.Sentence,
		Hebrew:          "[Hebrew translation]",
		Transliteration: "[Transliteration]",
		Note:            mockNote,
	})
}

// ScoreWords splits text on whitespace and assigns importance by the length
// of the word without trailing punctuation.
func ScoreWords(text string) []wordahead.WordAnnotation {
	fields := strings.Fields(text)
	words := make([]wordahead.WordAnnotation, 0, len(fields))
	for _, f := range fields {
		imp := importanceForLength(len([]rune(strings.Trim(f, ".,!?;:"))))
		words = append(words, wordahead.WordAnnotation{
			Word:       f,
			Importance: imp,
			Opacity:    OpacityFor(imp),
		})
	}
	return words
}

func importanceForLength(n int) wordahead.Importance {
	switch {
	case n > 10:
		return wordahead.ImportanceHighest
	case n > 7:
		return wordahead.ImportanceHigh
	case n > 5:
		return wordahead.ImportanceMedium
	case n > 3:
		return wordahead.ImportanceLow
	default:
		return wordahead.ImportanceLowest
	}
}

// OpacityFor maps an importance to the legend opacity, 0.5 when unknown.
func OpacityFor(imp wordahead.Importance) float64 {
	for _, e := range wordahead.Legend {
		if e.Importance == imp {
			return e.Opacity
		}
	}
	return 0.5
}

var cannedTranslations = map[string]wordahead.WordAnnotation{
	"deforestation": {
		Translation:     "כריתת יערות",
		Transliteration: "kriitat ye'arot",
		Root:            "forest (יער) + de- (prefix)",
		CEFRLevel:       "C1",
		ExampleSentences: []wordahead.ExampleSentence{{
			English: "Deforestation is a major environmental issue.",
			Hebrew:  "כריתת יערות היא בעיה סביבתית גדולה.",
		}},
	},
	"forest": {
		Translation:     "יער",
		Transliteration: "ya'ar",
		Root:            "forest",
		CEFRLevel:       "A2",
		ExampleSentences: []wordahead.ExampleSentence{{
			English: "We walked through the forest.",
			Hebrew:  "הלכנו דרך היער.",
		}},
	},
}

// Lookup returns the canned translation for word, or a generic entry.
func Lookup(word string) wordahead.WordAnnotation {
	key := strings.Trim(strings.ToLower(word), ".,!?;:")
	if entry, ok := cannedTranslations[key]; ok {
		return entry
	}
	return wordahead.WordAnnotation{
		Translation:     fmt.Sprintf("[%s]", word),
		Transliteration: fmt.Sprintf("[%s]", word),
		Root:            wordahead.UnknownRoot,
		CEFRLevel:       wordahead.DefaultCEFRLevel,
		ExampleSentences: []wordahead.ExampleSentence{{
			English: fmt.Sprintf("This is an example with %s.", word),
			Hebrew:  fmt.Sprintf("זו דוגמה עם %s.", word),
		}},
	}
}
