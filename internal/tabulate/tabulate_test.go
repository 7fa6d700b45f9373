package tabulate

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"moda-survey/internal/domain"
)

func TestFrequency_CountsAndOrder(t *testing.T) {
	values := []string{"Mensalmente", " Raramente ", "", "Mensalmente", "Raramente", "Semanalmente", "Mensalmente"}

	got := Frequency("freq", values)
	want := domain.FrequencyTable{
		Question: "freq",
		Total:    7,
		Rows: []domain.FrequencyRow{
			{Category: "Mensalmente", Count: 3, Percent: 42.9},
			{Category: "Raramente", Count: 2, Percent: 28.6},
			{Category: NoAnswer, Count: 1, Percent: 14.3},
			{Category: "Semanalmente", Count: 1, Percent: 14.3},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Frequency mismatch (-want +got):\n%s", diff)
	}
}

func TestFrequency_SumsMatchView(t *testing.T) {
	inputs := [][]string{
		{"a", "b", "c"},
		{"a", "a", "a", "b", "b", "c", "", ""},
		{"x", "y", "y", "z", "z", "z", "w", "w", "w", "w", "v"},
	}
	for _, values := range inputs {
		table := Frequency("q", values)
		var count int
		var pct float64
		for _, row := range table.Rows {
			count += row.Count
			pct += row.Percent
		}
		if count != len(values) {
			t.Fatalf("counts sum to %d; want %d", count, len(values))
		}
		if math.Abs(pct-100) > 0.2 {
			t.Fatalf("percents sum to %.2f; want 100 +/- 0.2", pct)
		}
	}
}

func TestFrequency_Empty(t *testing.T) {
	table := Frequency("q", nil)
	if table.Total != 0 || len(table.Rows) != 0 {
		t.Fatalf("expected empty table, got %+v", table)
	}
}

func TestCrosstabAndRowPercent(t *testing.T) {
	rows := []string{"Sim", "Sim", "Não", "Sim", ""}
	cols := []string{"Alta", "Baixa", "Baixa", "Alta", "Alta"}

	ct := Crosstab("impacto", "indice", rows, cols)
	want := domain.Crosstab{
		RowQuestion:    "impacto",
		ColumnQuestion: "indice",
		Rows:           []string{NoAnswer, "Não", "Sim"},
		Columns:        []string{"Alta", "Baixa"},
		Values: [][]float64{
			{1, 0},
			{0, 1},
			{2, 1},
		},
	}
	if diff := cmp.Diff(want, ct); diff != "" {
		t.Fatalf("Crosstab mismatch (-want +got):\n%s", diff)
	}

	pct := RowPercent(ct)
	if diff := cmp.Diff([]float64{66.7, 33.3}, pct.Values[2]); diff != "" {
		t.Fatalf("RowPercent mismatch (-want +got):\n%s", diff)
	}
	if ct.Values[2][0] != 2 {
		t.Fatalf("RowPercent must not mutate the input crosstab")
	}
}

func TestColumn_AbsentIsEmpty(t *testing.T) {
	responses := []domain.Response{
		{Answers: map[string]string{"q": "Sim"}},
		{Answers: map[string]string{}},
	}
	got := Column(responses, "q")
	if diff := cmp.Diff([]string{"Sim", ""}, got); diff != "" {
		t.Fatalf("Column mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	table := Frequency("q", []string{"Sim", "Sim", "Não"})
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\ufeffCategoria,Contagem,%\n") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "Sim,2,66.7\n") || !strings.Contains(out, "Não,1,33.3\n") {
		t.Fatalf("unexpected body: %q", out)
	}
}
