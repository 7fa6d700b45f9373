// Package scoring codifica respuestas de la encuesta en codigos ordinales y
// calcula el indice de circularidad.
package scoring

import "strings"

// Codigos de frecuencia de compra de segunda mano.
const (
	SecondhandNever      = 0
	SecondhandOccasional = 1
	SecondhandFrequent   = 2
)

// FrequencyRule asocia un conjunto de palabras clave a un codigo.
// Una regla sin palabras clave siempre coincide.
type FrequencyRule struct {
	Name     string
	Keywords []string
	Code     int
}

func (r FrequencyRule) matches(text string) bool {
	if len(r.Keywords) == 0 {
		return true
	}
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// SecondhandRules se evalua en orden; la primera regla que coincide gana.
// La ultima regla es el fallback: texto no reconocido cuenta como ocasional.
var SecondhandRules = []FrequencyRule{
	{Name: "never", Keywords: []string{"nunca"}, Code: SecondhandNever},
	{Name: "occasional", Keywords: []string{"ocas", "às", "as vez", "eventual"}, Code: SecondhandOccasional},
	{Name: "frequent", Keywords: []string{"freq", "sempre"}, Code: SecondhandFrequent},
	{Name: "fallback", Code: SecondhandOccasional},
}

func normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// EncodeYesNo devuelve 1 si la respuesta empieza con "s" (sim), 0 en otro caso.
// Una respuesta vacia se trata como ausente.
func EncodeYesNo(answer string) int {
	t := normalize(answer)
	if strings.HasPrefix(t, "s") {
		return 1
	}
	return 0
}

// EncodeSecondhandFrequency clasifica la frecuencia de compra de segunda mano
// en {0,1,2}. Respuesta ausente -> 0.
func EncodeSecondhandFrequency(answer string) int {
	return ClassifyFrequency(answer, SecondhandRules)
}

// ClassifyFrequency aplica las reglas en orden. Sin coincidencia devuelve 0.
func ClassifyFrequency(answer string, rules []FrequencyRule) int {
	t := normalize(answer)
	if t == "" {
		return 0
	}
	for _, rule := range rules {
		if rule.matches(t) {
			return rule.Code
		}
	}
	return 0
}
