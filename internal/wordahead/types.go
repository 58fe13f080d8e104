// Package wordahead provides the core types shared by the reader, the API
// client and the terminal UI.
package wordahead

import (
	"encoding/json"
	"fmt"
)

// Importance is the 0-4 salience score the analysis service assigns to a word.
type Importance int

const (
	ImportanceLowest  Importance = 0
	ImportanceLow     Importance = 1
	ImportanceMedium  Importance = 2
	ImportanceHigh    Importance = 3
	ImportanceHighest Importance = 4
)

// Bucket clamps the importance into one of the five display buckets.
func (i Importance) Bucket() Importance {
	if i < ImportanceLowest {
		return ImportanceLowest
	}
	if i > ImportanceHighest {
		return ImportanceHighest
	}
	return i
}

// Class returns the categorical style class for the importance bucket.
func (i Importance) Class() string {
	return fmt.Sprintf("importance-%d", i.Bucket())
}

// ExampleSentence is a bilingual usage example.
type ExampleSentence struct {
	English string `json:"english" yaml:"english"`
	Hebrew  string `json:"hebrew" yaml:"hebrew"`
}

// WordAnnotation is the per-word record returned by the analysis service.
// Opacity is rendered as received; it is never derived from Importance.
type WordAnnotation struct {
	Word             string            `json:"word"`
	Importance       Importance        `json:"importance"`
	Opacity          float64           `json:"opacity"`
	CEFRLevel        string            `json:"cefr_level,omitempty"`
	Root             string            `json:"root,omitempty"`
	Translation      string            `json:"translation,omitempty"`
	Transliteration  string            `json:"transliteration,omitempty"`
	ExampleSentences []ExampleSentence `json:"example_sentences,omitempty"`
	Note             string            `json:"note,omitempty"`
}

// Display fallbacks for fields the service has not filled in yet.
const (
	TranslationPlaceholder = "Loading translation..."
	DefaultCEFRLevel       = "B1"
	UnknownRoot            = "Unknown"
)

// DisplayTranslation returns the translation or the loading placeholder.
func (w WordAnnotation) DisplayTranslation() string {
	if w.Translation == "" {
		return TranslationPlaceholder
	}
	return w.Translation
}

// DisplayCEFR returns the CEFR level badge text.
func (w WordAnnotation) DisplayCEFR() string {
	if w.CEFRLevel == "" {
		return DefaultCEFRLevel
	}
	return w.CEFRLevel
}

// DisplayRoot returns the root or "Unknown".
func (w WordAnnotation) DisplayRoot() string {
	if w.Root == "" {
		return UnknownRoot
	}
	return w.Root
}

// Patch is a raw JSON object whose fields overwrite a WordAnnotation.
// Keys are kept as received so that only present fields are applied.
type Patch map[string]json.RawMessage

// Merge applies the patch as a shallow overwrite: every top-level key present
// in the patch replaces the annotation's field of the same name, including
// explicit nulls. Unknown keys are ignored.
func Merge(base WordAnnotation, patch Patch) (WordAnnotation, error) {
	if len(patch) == 0 {
		return base, nil
	}

	raw, err := json.Marshal(base)
	if err != nil {
		return base, fmt.Errorf("encoding annotation: %w", err)
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return base, fmt.Errorf("decoding annotation: %w", err)
	}
	for k, v := range patch {
		fields[k] = v
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return base, fmt.Errorf("encoding merged annotation: %w", err)
	}

	var out WordAnnotation
	if err := json.Unmarshal(merged, &out); err != nil {
		return base, fmt.Errorf("decoding merged annotation: %w", err)
	}
	return out, nil
}

// LegendEntry is one row of the static importance legend.
type LegendEntry struct {
	Importance Importance
	Opacity    float64
	Label      string
}

// Legend enumerates the canonical opacity of each importance level, highest
// first. It documents the scale; rendering always uses the annotation's own
// opacity.
var Legend = []LegendEntry{
	{Importance: ImportanceHighest, Opacity: 1.0, Label: "Most important"},
	{Importance: ImportanceHigh, Opacity: 0.75, Label: "Important"},
	{Importance: ImportanceMedium, Opacity: 0.5, Label: "Medium"},
	{Importance: ImportanceLow, Opacity: 0.35, Label: "Less important"},
	{Importance: ImportanceLowest, Opacity: 0.25, Label: "Least important"},
}

// SentenceTranslation is the response of the sentence translation endpoint.
type SentenceTranslation struct {
	English         string `json:"english"`
	Hebrew          string `json:"hebrew"`
	Transliteration string `json:"transliteration"`
	Note            string `json:"note,omitempty"`
}

// Health is the analysis service health report.
type Health struct {
	Status           string `json:"status"`
	GPTSMAvailable   bool   `json:"gp_tsm_available"`
	OpenAIConfigured bool   `json:"openai_configured"`
}
