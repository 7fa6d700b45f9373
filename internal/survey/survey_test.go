package survey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"moda-survey/internal/domain"
)

const sampleCSV = "\ufeffCarimbo,Qual é a sua faixa etária?,Qual é o seu gênero?,\"Com que frequência você\ncompra roupas novas? \",Você compra roupas de segunda mão (ex: brechós/desapegos)?,Você já reformou alguma peça de roupa antiga para torná-la mais atual?\n" +
	"1,18 a 24,Feminino,Mensalmente,Frequentemente,Sim\n" +
	"2,25 a 34,Masculino,Raramente,Nunca,Não\n" +
	"3,18 a 24,,  Mensalmente ,Às vezes,\n" +
	",,,,,\n"

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "Com que frequência você compra roupas novas?", NormalizeHeader(" Com que frequência você\ncompra roupas novas? "))
	assert.Equal(t, "Cidade", NormalizeHeader("\ufeffCidade"))
}

func TestCanonicalize_RenamesAndReportsMissing(t *testing.T) {
	cat := DefaultCatalog()
	headers := []string{"Carimbo", "Você compra roupas de segunda mão?", "Quanto você gasta por mês com roupas"}

	got, missing := Canonicalize(headers, cat)
	assert.Equal(t, "Carimbo", got[0])
	assert.Equal(t, cat.Header(KeySecondhand), got[1])
	assert.Equal(t, cat.Header(KeySpending), got[2])
	assert.Contains(t, missing, cat.Header(KeyPurchaseFrequency))
	assert.NotContains(t, missing, cat.Header(KeySecondhand))
	assert.True(t, strings.HasPrefix(MissingWarning(missing), MissingWarningPrefix))
	assert.Equal(t, "", MissingWarning(nil))
}

func TestCanonicalize_QuestionBindsOnce(t *testing.T) {
	cat := DefaultCatalog()
	got, _ := Canonicalize([]string{"Qual é o seu gênero?", "Gênero (repetido)"}, cat)
	assert.Equal(t, cat.Header(KeyGender), got[0])
	assert.Equal(t, "Gênero (repetido)", got[1])
}

func TestLoad_CSV(t *testing.T) {
	cat := DefaultCatalog()
	parsed, err := Load(strings.NewReader(sampleCSV), "moda.csv", "", cat)
	require.NoError(t, err)

	require.Len(t, parsed.Responses, 3)
	assert.Equal(t, "Carimbo", parsed.Columns[0])
	assert.Equal(t, cat.Header(KeyPurchaseFrequency), parsed.Columns[3])

	third := parsed.Responses[2]
	assert.Equal(t, 2, third.Position)
	freq, ok := third.Answer(cat.Header(KeyPurchaseFrequency))
	assert.True(t, ok)
	assert.Equal(t, "Mensalmente", freq)
	_, ok = third.Answer(cat.Header(KeyGender))
	assert.False(t, ok, "empty cell must be an absent answer")

	assert.Contains(t, parsed.Missing, cat.Header(KeySDG))
}

func TestLoad_XLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Qual é o seu gênero?", "Você já reformou alguma peça de roupa?"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Feminino", "Sim"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"Masculino"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	cat := DefaultCatalog()
	parsed, err := Load(buf, "moda.xlsx", "", cat)
	require.NoError(t, err)
	require.Len(t, parsed.Responses, 2)
	repair, ok := parsed.Responses[0].Answer(cat.Header(KeyRepair))
	assert.True(t, ok)
	assert.Equal(t, "Sim", repair)
	_, ok = parsed.Responses[1].Answer(cat.Header(KeyRepair))
	assert.False(t, ok)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	_, err := Load(strings.NewReader("x"), "moda.pdf", "", DefaultCatalog())
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_UnreadableSpreadsheet(t *testing.T) {
	_, err := Load(strings.NewReader("this is not a zip file"), "moda.xlsx", "", DefaultCatalog())
	assert.ErrorIs(t, err, ErrUnreadableFile)

	f := excelize.NewFile()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())
	_, err = Load(buf, "moda.xlsx", "Respostas", DefaultCatalog())
	assert.ErrorIs(t, err, ErrUnreadableFile)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(nil, DefaultCatalog())
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func sampleDataset(t *testing.T) (domain.Dataset, Catalog) {
	t.Helper()
	cat := DefaultCatalog()
	parsed, err := Load(strings.NewReader(sampleCSV), "moda.csv", "", cat)
	require.NoError(t, err)
	return domain.Dataset{ID: "ds", Columns: parsed.Columns, Missing: parsed.Missing, Responses: parsed.Responses}, cat
}

func TestFilter(t *testing.T) {
	ds, cat := sampleDataset(t)

	assert.Len(t, Filter(ds, cat, nil), 3)
	assert.Len(t, Filter(ds, cat, domain.Selection{KeyAgeRange: {"18 a 24"}}), 2)
	assert.Len(t, Filter(ds, cat, domain.Selection{KeyAgeRange: {"18 a 24"}, KeyGender: {"Feminino", "Masculino"}}), 1)
	assert.Len(t, Filter(ds, cat, domain.Selection{KeyAgeRange: {"99+"}}), 0)
	assert.Len(t, Filter(ds, cat, domain.Selection{KeyIncome: {"Até 1 salário"}}), 3, "filters on missing columns are ignored")
	assert.Len(t, Filter(ds, cat, domain.Selection{"unknown": {"x"}}), 3)
	assert.Len(t, ds.Responses, 3, "dataset must not be mutated")
}

func TestOptions(t *testing.T) {
	ds, cat := sampleDataset(t)

	opts := Options(ds, cat)
	byKey := make(map[string][]string)
	for _, o := range opts {
		byKey[o.Key] = o.Values
	}
	assert.Equal(t, []string{"18 a 24", "25 a 34"}, byKey[KeyAgeRange])
	assert.Equal(t, []string{"Feminino", "Masculino"}, byKey[KeyGender])
	assert.Empty(t, byKey[KeyCity])
}

func TestParseCatalog(t *testing.T) {
	raw := []byte(`
questions:
  - key: repair
    header: Reformou?
    match: [reformou]
    kind: categorical
    required: true
  - key: motivation
    header: Motivação
    kind: free_text
    exclude: [roupas]
`)
	cat, err := ParseCatalog(raw)
	require.NoError(t, err)
	assert.Equal(t, "Reformou?", cat.Header(KeyRepair))
	q, ok := cat.Question(KeyMotivation)
	require.True(t, ok)
	assert.Equal(t, []string{"roupas"}, q.Exclude)

	_, err = ParseCatalog([]byte("questions:\n  - key: a\n    header: A\n  - key: a\n    header: B\n"))
	assert.Error(t, err)
}

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, DefaultCatalog().Validate())
}
