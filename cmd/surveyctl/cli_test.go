package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const cliCSV = "Qual é o seu gênero?,Qual a sua cidade e estado?,Com que frequência você compra roupas novas?,Você compra roupas de segunda mão?,Você já reformou alguma peça?,Você conhece marcas de moda sustentável?,O que te motiva a comprar roupas novas?\n" +
	"Feminino,Presidente Prudente - SP,Mensalmente,Nunca,Sim,Não,Estilo e conforto\n" +
	"Masculino,presidente prudente,Raramente,Frequentemente,Sim,Sim,Necessidade\n" +
	"Feminino,Álvares Machado,Mensalmente,Às vezes,Não,Não,Estilo\n"

func writeSurvey(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moda.csv")
	require.NoError(t, os.WriteFile(path, []byte(cliCSV), 0o644))
	return path
}

// execute corre el comando raiz con flags limpios y devuelve stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	logger = zap.NewNop()
	catalogFile, sheetName, dataFile = "", "", "moda.xlsx"
	wordsQuestion, wordsTop, wordsByGender = "motivation", 30, false
	tabulateQuestion, tabulateCSV = "frequency", false
	indexDetail = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// tableRows extrae las celdas de cada fila de las tablas impresas.
func tableRows(out string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "│") {
			continue
		}
		var cells []string
		for _, cell := range strings.Split(line, "│") {
			if cell = strings.TrimSpace(cell); cell != "" {
				cells = append(cells, cell)
			}
		}
		rows = append(rows, cells)
	}
	return rows
}

func TestCitiesFromSurvey(t *testing.T) {
	path := writeSurvey(t)
	out, err := execute(t, "", "cities", "--file", path)
	require.NoError(t, err)

	assert.Contains(t, tableRows(out), []string{"Presidente Prudente", "2"})
	assert.Contains(t, out, "Cidades distintas: 2")
	assert.Contains(t, out, "Total de respostas: 3")
	assert.Contains(t, out, "Sem coordenadas: Álvares Machado")
}

func TestCitiesFromStdin(t *testing.T) {
	out, err := execute(t, "Assis/SP\nassis\n  \nOurinhos\n", "cities", "-")
	require.NoError(t, err)

	rows := tableRows(out)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, []string{"Cidade", "Contagem"}, rows[0])
	assert.Equal(t, "Assis", rows[1][0])
	assert.Contains(t, out, "Cidades distintas: 2")
}

func TestWords(t *testing.T) {
	path := writeSurvey(t)
	out, err := execute(t, "", "words", "--file", path, "--top", "1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Termo", "Contagem"}, {"estilo", "2"}}, tableRows(out))

	out, err = execute(t, "", "words", "--file", path, "--by-gender")
	require.NoError(t, err)
	assert.Contains(t, out, "== Feminino ==")
	assert.Contains(t, out, "== Masculino ==")
	assert.NotContains(t, out, " e ")

	_, err = execute(t, "", "words", "--file", path, "--question", "gender")
	assert.Error(t, err)
}

func TestIndex(t *testing.T) {
	path := writeSurvey(t)
	out, err := execute(t, "", "index", "--file", path, "--detail")
	require.NoError(t, err)

	assert.Contains(t, out, "Ocasional (pouca prática)")
	assert.Contains(t, out, "66.7")
	assert.Contains(t, out, "Alta (práticas frequentes)")
}

func TestTabulate(t *testing.T) {
	path := writeSurvey(t)
	out, err := execute(t, "", "tabulate", "--file", path, "--question", "secondhand")
	require.NoError(t, err)
	assert.Contains(t, out, "Nunca")
	assert.Contains(t, out, "33.3")

	out, err = execute(t, "", "tabulate", "--file", path, "--csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\ufeffCategoria,Contagem,%\n"))
	assert.Contains(t, out, "Mensalmente,2,66.7")

	_, err = execute(t, "", "tabulate", "--file", path, "--question", "nope")
	assert.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	_, err := execute(t, "", "index", "--file", filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	out, err := execute(t, "", "token", "--subject", "analyst")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(strings.TrimSpace(out), "."))
}

func TestTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := execute(t, "", "token", "--subject", "analyst")
	assert.Error(t, err)
}
