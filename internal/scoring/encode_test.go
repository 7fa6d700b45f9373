package scoring

import "testing"

func TestEncodeYesNo(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   int
	}{
		{name: "absent", answer: "", want: 0},
		{name: "sim", answer: "Sim", want: 1},
		{name: "nao", answer: "Não", want: 0},
		{name: "padded lower", answer: "   sim, ja fiz ", want: 1},
		{name: "talvez", answer: "Talvez", want: 0},
		{name: "blank", answer: "   ", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeYesNo(tt.answer)
			if got != tt.want {
				t.Fatalf("EncodeYesNo(%q) = %d; want %d", tt.answer, got, tt.want)
			}
			if got != 0 && got != 1 {
				t.Fatalf("EncodeYesNo(%q) out of range: %d", tt.answer, got)
			}
		})
	}
}

func TestEncodeSecondhandFrequency(t *testing.T) {
	tests := []struct {
		answer string
		want   int
	}{
		{answer: "", want: 0},
		{answer: "Nunca", want: 0},
		{answer: "  NUNCA comprei ", want: 0},
		{answer: "Ocasionalmente", want: 1},
		{answer: "Às vezes", want: 1},
		{answer: "as vezes", want: 1},
		{answer: "Eventualmente", want: 1},
		{answer: "Frequentemente", want: 2},
		{answer: "Sempre", want: 2},
		{answer: "Sim", want: 1},
		{answer: "Raramente", want: 1},
	}

	for _, tt := range tests {
		if got := EncodeSecondhandFrequency(tt.answer); got != tt.want {
			t.Fatalf("EncodeSecondhandFrequency(%q) = %d; want %d", tt.answer, got, tt.want)
		}
	}
}

func TestSecondhandRulesEndWithFallback(t *testing.T) {
	last := SecondhandRules[len(SecondhandRules)-1]
	if len(last.Keywords) != 0 || last.Code != SecondhandOccasional {
		t.Fatalf("expected explicit occasional fallback rule, got %+v", last)
	}
}

func TestClassifyFrequency_NoRulesMatch(t *testing.T) {
	rules := []FrequencyRule{{Name: "never", Keywords: []string{"nunca"}, Code: 0}}
	if got := ClassifyFrequency("sempre", rules); got != 0 {
		t.Fatalf("expected 0 without fallback rule, got %d", got)
	}
}
