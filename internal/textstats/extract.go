// Package textstats convierte respuestas abiertas en tablas de frecuencia de
// palabras para las nubes de palabras.
package textstats

import (
	_ "embed"
	"sort"
	"strings"
	"unicode"

	"github.com/james-bowman/nlp"
	"golang.org/x/text/unicode/norm"

	"moda-survey/internal/domain"
)

//go:embed stopwords_pt.txt
var stopwordsPT string

// PortugueseStopwords devuelve la lista de stopwords embebida.
func PortugueseStopwords() []string {
	return strings.Fields(stopwordsPT)
}

// Extractor tokeniza texto libre y descarta stopwords.
type Extractor struct {
	stopwords map[string]struct{}
}

func NewExtractor(stopwords []string) *Extractor {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return &Extractor{stopwords: set}
}

// NewPortugueseExtractor usa la lista de stopwords en portugues.
func NewPortugueseExtractor() *Extractor {
	return NewExtractor(PortugueseStopwords())
}

// keepRune acepta letras ASCII, el rango Latin-1 À-ÿ y espacios.
func keepRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 0xC0 && r <= 0xFF:
		return true
	case unicode.IsSpace(r):
		return true
	}
	return false
}

// Clean pasa a minusculas y elimina puntuacion y cualquier caracter fuera del
// alfabeto.
func Clean(text string) string {
	text = strings.ToLower(norm.NFC.String(text))
	return strings.Map(func(r rune) rune {
		if keepRune(r) {
			return r
		}
		return -1
	}, text)
}

// wordTokeniser implementa nlp.Tokeniser: limpia el texto, separa por
// espacios y descarta stopwords y exclusiones de la pregunta.
type wordTokeniser struct {
	stopwords map[string]struct{}
	excluded  map[string]struct{}
}

func (t wordTokeniser) ForEachIn(input string, process func(token string)) {
	for _, word := range strings.Fields(Clean(input)) {
		if _, ok := t.stopwords[word]; ok {
			continue
		}
		if _, ok := t.excluded[word]; ok {
			continue
		}
		process(word)
	}
}

func (t wordTokeniser) Tokenise(input string) []string {
	var out []string
	t.ForEachIn(input, func(token string) {
		out = append(out, token)
	})
	return out
}

func (e *Extractor) tokeniser(exclude []string) wordTokeniser {
	excluded := make(map[string]struct{}, len(exclude))
	for _, w := range exclude {
		excluded[strings.ToLower(w)] = struct{}{}
	}
	return wordTokeniser{stopwords: e.stopwords, excluded: excluded}
}

// Tokens limpia el texto, separa por espacios y quita stopwords y exclusiones.
func (e *Extractor) Tokens(text string, exclude []string) []string {
	return e.tokeniser(exclude).Tokenise(text)
}

// Count cuenta terminos sobre todas las respuestas con un CountVectoriser y
// suma la matriz termino-documento por fila. Orden: conteo descendente,
// empates por primera aparicion. Respuestas vacias se ignoran.
func (e *Extractor) Count(texts []string, exclude []string) []domain.TermFrequency {
	docs := make([]string, 0, len(texts))
	for _, text := range texts {
		if strings.TrimSpace(text) != "" {
			docs = append(docs, text)
		}
	}
	out := []domain.TermFrequency{}
	if len(docs) == 0 {
		return out
	}

	vectoriser := nlp.NewCountVectoriser()
	vectoriser.Tokeniser = e.tokeniser(exclude)
	vectoriser.Fit(docs...)
	if len(vectoriser.Vocabulary) == 0 {
		return out
	}
	termsByDoc, err := vectoriser.Transform(docs...)
	if err != nil {
		return out
	}

	// El indice del vocabulario sigue el orden de primera aparicion.
	terms := make([]string, len(vectoriser.Vocabulary))
	for term, idx := range vectoriser.Vocabulary {
		terms[idx] = term
	}
	_, cols := termsByDoc.Dims()
	for idx, term := range terms {
		var total float64
		for j := 0; j < cols; j++ {
			total += termsByDoc.At(idx, j)
		}
		out = append(out, domain.TermFrequency{Term: term, Count: int(total)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// Top recorta a los n terminos mas frecuentes. n <= 0 devuelve todo.
func Top(terms []domain.TermFrequency, n int) []domain.TermFrequency {
	if n <= 0 || n >= len(terms) {
		return terms
	}
	return terms[:n]
}
