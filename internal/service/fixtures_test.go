package service

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"moda-survey/internal/domain"
	"moda-survey/internal/repository"
	"moda-survey/internal/survey"
)

// surveyCSV trae las columnas del indice, filtros y una pregunta abierta.
const surveyCSV = "Qual é o seu gênero?,Qual a sua cidade e estado?,Com que frequência você compra roupas novas?,Quanto você gasta por mês?,Você compra roupas de segunda mão?,Você acredita que o consumo de moda impacta o meio ambiente?,Você já reformou alguma peça?,Você conhece marcas de moda sustentável?,Você relaciona com os Objetivos de Desenvolvimento Sustentável?,O que te motiva a comprar roupas novas?,Você conhece o conceito de moda circular?\n" +
	"Feminino,Presidente Prudente - SP,Mensalmente,Até R$100,Nunca,Sim,Sim,Não,Sim,Necessidade e estilo,Sim\n" +
	"Masculino,presidente prudente,Raramente,Até R$100,Frequentemente,Sim,Sim,Sim,Não,Promoção e necessidade,Não\n" +
	"Feminino,Álvares Machado,Mensalmente,R$100 a R$300,Às vezes,Não,Não,Não,,Estilo,Sim\n"

func newTestDatasetService(t *testing.T) (*DatasetService, domain.Dataset) {
	t.Helper()
	svc := NewDatasetService(repository.NewMemoryDatasetRepository(), survey.DefaultCatalog(), zap.NewNop())
	ds, err := svc.Import(context.Background(), "moda", "moda.csv", "", strings.NewReader(surveyCSV))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	return svc, ds
}
