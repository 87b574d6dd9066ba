// ABOUTME: Translation from wire exercise objects to flat suggestions.
// ABOUTME: Strips HTML descriptions and infers a difficulty rating.
package suggest

import (
	"strings"

	"golang.org/x/net/html"
)

// Difficulty is a coarse rating inferred from how much of the body and
// how much equipment an exercise involves.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Suggestion is the flat, presentation-ready shape of one exercise.
// Suggestions are never persisted locally.
type Suggestion struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Muscles     []string   `json:"muscles,omitempty"`
	Equipment   []string   `json:"equipment,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	ImageURL    string     `json:"image_url,omitempty"`
}

// toSuggestion flattens a wire exercise object.
func toSuggestion(e exerciseInfo) Suggestion {
	return Suggestion{
		ID:          e.ID,
		Name:        strings.TrimSpace(e.Name),
		Description: stripHTML(e.Description),
		Category:    e.Category.Name,
		Muscles:     names(append(append([]namedObject{}, e.Muscles...), e.MusclesSecondary...)),
		Equipment:   names(e.Equipment),
		Difficulty:  inferDifficulty(e),
		ImageURL:    mainImage(e.Images),
	}
}

// inferDifficulty rates an exercise by the number of muscles it works
// plus the equipment it needs. The service provides no explicit rating.
func inferDifficulty(e exerciseInfo) Difficulty {
	score := len(e.Muscles) + len(e.MusclesSecondary) + len(e.Equipment)
	switch {
	case score <= 1:
		return Beginner
	case score <= 3:
		return Intermediate
	default:
		return Advanced
	}
}

// mainImage picks the main image URL, falling back to the first image.
func mainImage(images []exerciseImage) string {
	for _, img := range images {
		if img.IsMain {
			return img.Image
		}
	}
	if len(images) > 0 {
		return images[0].Image
	}
	return ""
}

func names(objects []namedObject) []string {
	if len(objects) == 0 {
		return nil
	}
	out := make([]string, 0, len(objects))
	for _, o := range objects {
		if o.Name != "" {
			out = append(out, o.Name)
		}
	}
	return out
}

// stripHTML extracts the text content of an HTML fragment and collapses
// whitespace. Descriptions from the service are HTML-bearing.
func stripHTML(fragment string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(tokenizer.Text())
			b.WriteByte(' ')
		}
	}
}
