package scoring

import "moda-survey/internal/domain"

const (
	MinIndex = 0
	MaxIndex = 3

	UndefinedLabel = "(Indefinido)"
)

// Labels del indice de circularidad, de menor a mayor practica.
var Labels = map[int]string{
	0: "Baixa (nenhuma prática)",
	1: "Ocasional (pouca prática)",
	2: "Média (práticas esporádicas)",
	3: "Alta (práticas frequentes)",
}

// OrderedLabels devuelve los labels en orden ascendente de indice.
func OrderedLabels() []string {
	out := make([]string, 0, len(Labels))
	for i := MinIndex; i <= MaxIndex; i++ {
		out = append(out, Labels[i])
	}
	return out
}

// Label mapea un indice a su label; fuera de rango -> UndefinedLabel.
func Label(index int) string {
	if label, ok := Labels[index]; ok {
		return label
	}
	return UndefinedLabel
}

// Clamp limita el valor al rango [MinIndex, MaxIndex].
func Clamp(v int) int {
	if v < MinIndex {
		return MinIndex
	}
	if v > MaxIndex {
		return MaxIndex
	}
	return v
}

// CompositeIndex suma reforma + marca sustentable + segunda mano, limita a
// [0,3] y devuelve el indice con su label.
func CompositeIndex(repair, brand, secondhand string) (int, string) {
	idx := Clamp(EncodeYesNo(repair) + EncodeYesNo(brand) + EncodeSecondhandFrequency(secondhand))
	return idx, Label(idx)
}

// Columns indica que pregunta canonica alimenta cada componente del indice.
type Columns struct {
	Repair     string
	Brand      string
	Secondhand string
}

// ScoreResponses calcula el indice por encuestado. Una columna inexistente
// se comporta como una columna sin respuestas.
func ScoreResponses(responses []domain.Response, cols Columns) []domain.RespondentScore {
	out := make([]domain.RespondentScore, 0, len(responses))
	for _, r := range responses {
		repair, _ := r.Answer(cols.Repair)
		brand, _ := r.Answer(cols.Brand)
		secondhand, _ := r.Answer(cols.Secondhand)

		score := domain.RespondentScore{
			Position:   r.Position,
			Repair:     EncodeYesNo(repair),
			Brand:      EncodeYesNo(brand),
			Secondhand: EncodeSecondhandFrequency(secondhand),
		}
		score.Index = Clamp(score.Repair + score.Brand + score.Secondhand)
		score.Label = Label(score.Index)
		out = append(out, score)
	}
	return out
}
