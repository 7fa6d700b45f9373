package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"go.uber.org/zap"

	"moda-survey/internal/domain"
	"moda-survey/internal/geo"
	"moda-survey/internal/scoring"
	"moda-survey/internal/survey"
	"moda-survey/internal/tabulate"
	"moda-survey/internal/textstats"
)

var (
	ErrUnknownTable    = errors.New("unknown table")
	ErrUnknownQuestion = errors.New("unknown free-text question")
)

// DefaultTopTerms es la cantidad de palabras devueltas si no se pide otra.
const DefaultTopTerms = 30

// GroupByGender agrupa las palabras por genero del encuestado.
const GroupByGender = "gender"

// tableAliases mapea los nombres cortos de tabla a claves del catalogo.
var tableAliases = map[string]string{
	"frequency":  survey.KeyPurchaseFrequency,
	"spending":   survey.KeySpending,
	"secondhand": survey.KeySecondhand,
	"sdg":        survey.KeySDG,
}

// exportNames son los nombres de archivo de las descargas CSV.
var exportNames = map[string]string{
	survey.KeyPurchaseFrequency: "tabela_frequencia_compra",
	survey.KeySpending:          "tabela_faixa_gasto",
	survey.KeySecondhand:        "tabela_segunda_mao",
	survey.KeySDG:               "tabela_ods",
}

// CircularityReport es el indice por encuestado y su distribucion.
type CircularityReport struct {
	DatasetID    string                   `json:"dataset_id"`
	Scores       []domain.RespondentScore `json:"scores"`
	Distribution domain.FrequencyTable    `json:"distribution"`
}

// WordsReport son los terminos de una pregunta abierta.
type WordsReport struct {
	DatasetID string             `json:"dataset_id"`
	Question  string             `json:"question"`
	Groups    []domain.TermGroup `json:"groups"`
}

// DashboardService calcula las secciones del dashboard sobre una vista
// filtrada. Cada llamada parte del dataset guardado; no hay estado de filtro
// compartido entre requests.
type DashboardService struct {
	datasets  *DatasetService
	catalog   survey.Catalog
	cache     SummaryCache
	extractor *textstats.Extractor
	gazetteer geo.Gazetteer
	logger    *zap.Logger
}

func NewDashboardService(
	datasets *DatasetService,
	cache SummaryCache,
	extractor *textstats.Extractor,
	gazetteer geo.Gazetteer,
	logger *zap.Logger,
) *DashboardService {
	if cache == nil {
		cache = NewNoopSummaryCache()
	}
	if extractor == nil {
		extractor = textstats.NewPortugueseExtractor()
	}
	if gazetteer == nil {
		gazetteer = geo.DefaultGazetteer()
	}
	return &DashboardService{
		datasets:  datasets,
		catalog:   datasets.Catalog(),
		cache:     cache,
		extractor: extractor,
		gazetteer: gazetteer,
		logger:    logger,
	}
}

func (s *DashboardService) view(ctx context.Context, datasetID string, sel domain.Selection) (domain.Dataset, []domain.Response, error) {
	ds, err := s.datasets.Get(ctx, datasetID)
	if err != nil {
		return domain.Dataset{}, nil, err
	}
	return ds, survey.Filter(ds, s.catalog, sel), nil
}

func (s *DashboardService) column(view []domain.Response, key string) []string {
	return tabulate.Column(view, s.catalog.Header(key))
}

func (s *DashboardService) frequency(view []domain.Response, key string) domain.FrequencyTable {
	return tabulate.Frequency(s.catalog.Header(key), s.column(view, key))
}

func (s *DashboardService) scoringColumns() scoring.Columns {
	return scoring.Columns{
		Repair:     s.catalog.Header(survey.KeyRepair),
		Brand:      s.catalog.Header(survey.KeySustainableBrand),
		Secondhand: s.catalog.Header(survey.KeySecondhand),
	}
}

// Options lista los valores de cada filtro.
func (s *DashboardService) Options(ctx context.Context, datasetID string) ([]survey.FilterOption, error) {
	ds, err := s.datasets.Get(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	return survey.Options(ds, s.catalog), nil
}

// Dashboard calcula todas las secciones para la seleccion. El resultado se
// cachea por dataset y seleccion.
func (s *DashboardService) Dashboard(ctx context.Context, datasetID string, sel domain.Selection) (domain.Dashboard, error) {
	ds, err := s.datasets.Get(ctx, datasetID)
	if err != nil {
		return domain.Dashboard{}, err
	}

	key := SelectionCacheKey(ds.ID, "dashboard", sel)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached domain.Dashboard
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		s.logger.Warn("discarding undecodable cached dashboard", zap.String("key", key))
	}

	view := survey.Filter(ds, s.catalog, sel)
	dash := s.buildDashboard(ds, view)

	if raw, err := json.Marshal(dash); err == nil {
		s.cache.Set(ctx, key, raw)
	}
	return dash, nil
}

func (s *DashboardService) buildDashboard(ds domain.Dataset, view []domain.Response) domain.Dashboard {
	dash := domain.Dashboard{
		DatasetID:         ds.ID,
		Respondents:       len(view),
		PurchaseFrequency: s.frequency(view, survey.KeyPurchaseFrequency),
		Spending:          s.frequency(view, survey.KeySpending),
		Secondhand:        s.frequency(view, survey.KeySecondhand),
		SDG:               s.frequency(view, survey.KeySDG),
		Habits:            s.habits(ds, view),
	}
	if warning := survey.MissingWarning(ds.Missing); warning != "" {
		dash.Warnings = append(dash.Warnings, warning)
	}

	dash.FrequencyBySpending = tabulate.Crosstab(
		s.catalog.Header(survey.KeyPurchaseFrequency),
		s.catalog.Header(survey.KeySpending),
		s.column(view, survey.KeyPurchaseFrequency),
		s.column(view, survey.KeySpending),
	)

	scores := scoring.ScoreResponses(view, s.scoringColumns())
	labels := make([]string, len(scores))
	for i, sc := range scores {
		labels[i] = sc.Label
	}
	dash.ImpactByPractice = tabulate.RowPercent(tabulate.Crosstab(
		s.catalog.Header(survey.KeyImpact),
		"Índice de Circularidade",
		s.column(view, survey.KeyImpact),
		labels,
	))
	return dash
}

// habits calcula la proporcion de "sim" en cada pregunta de habito presente.
func (s *DashboardService) habits(ds domain.Dataset, view []domain.Response) []domain.HabitShare {
	out := []domain.HabitShare{}
	for _, q := range s.catalog.ByKind(survey.KindHabit) {
		if !ds.HasColumn(q.Header) {
			continue
		}
		share := domain.HabitShare{Question: q.Header, Total: len(view)}
		for _, r := range view {
			answer, _ := r.Answer(q.Header)
			share.Yes += scoring.EncodeYesNo(answer)
		}
		if share.Total > 0 {
			share.Percent = tabulate.Round1(float64(share.Yes) / float64(share.Total) * 100)
		}
		out = append(out, share)
	}
	return out
}

// ResolveTable traduce el nombre de tabla a una clave de pregunta tabulable.
func (s *DashboardService) ResolveTable(name string) (string, error) {
	key := name
	if alias, ok := tableAliases[name]; ok {
		key = alias
	}
	q, ok := s.catalog.Question(key)
	if !ok || q.Kind == survey.KindFreeText {
		return "", ErrUnknownTable
	}
	return key, nil
}

// Table tabula una pregunta categorica de la vista filtrada.
func (s *DashboardService) Table(ctx context.Context, datasetID, name string, sel domain.Selection) (domain.FrequencyTable, error) {
	key, err := s.ResolveTable(name)
	if err != nil {
		return domain.FrequencyTable{}, err
	}
	_, view, err := s.view(ctx, datasetID, sel)
	if err != nil {
		return domain.FrequencyTable{}, err
	}
	return s.frequency(view, key), nil
}

// ExportTable escribe la tabla como CSV y devuelve el nombre de archivo sugerido.
func (s *DashboardService) ExportTable(ctx context.Context, w io.Writer, datasetID, name string, sel domain.Selection) (string, error) {
	table, err := s.Table(ctx, datasetID, name, sel)
	if err != nil {
		return "", err
	}
	key, _ := s.ResolveTable(name)
	filename, ok := exportNames[key]
	if !ok {
		filename = "tabela_" + key
	}
	if err := tabulate.WriteCSV(w, table); err != nil {
		return "", err
	}
	return filename + ".csv", nil
}

// Circularity calcula el indice por encuestado.
func (s *DashboardService) Circularity(ctx context.Context, datasetID string, sel domain.Selection) (CircularityReport, error) {
	ds, view, err := s.view(ctx, datasetID, sel)
	if err != nil {
		return CircularityReport{}, err
	}
	scores := scoring.ScoreResponses(view, s.scoringColumns())
	labels := make([]string, len(scores))
	for i, sc := range scores {
		labels[i] = sc.Label
	}
	return CircularityReport{
		DatasetID:    ds.ID,
		Scores:       scores,
		Distribution: tabulate.Frequency("Índice de Circularidade", labels),
	}, nil
}

// Words extrae terminos de una pregunta abierta, opcionalmente por genero.
// Grupos sin terminos se omiten.
func (s *DashboardService) Words(ctx context.Context, datasetID, questionKey, groupBy string, top int, sel domain.Selection) (WordsReport, error) {
	q, ok := s.catalog.Question(questionKey)
	if !ok || q.Kind != survey.KindFreeText {
		return WordsReport{}, ErrUnknownQuestion
	}
	if top <= 0 {
		top = DefaultTopTerms
	}
	ds, view, err := s.view(ctx, datasetID, sel)
	if err != nil {
		return WordsReport{}, err
	}

	report := WordsReport{DatasetID: ds.ID, Question: q.Header, Groups: []domain.TermGroup{}}
	if groupBy != GroupByGender {
		terms := s.extractor.Count(tabulate.Column(view, q.Header), q.Exclude)
		if len(terms) > 0 {
			report.Groups = append(report.Groups, domain.TermGroup{Terms: textstats.Top(terms, top)})
		}
		return report, nil
	}

	genderHeader := s.catalog.Header(survey.KeyGender)
	var order []string
	byGender := make(map[string][]string)
	for _, r := range view {
		gender, ok := r.Answer(genderHeader)
		if !ok {
			continue
		}
		if _, seen := byGender[gender]; !seen {
			order = append(order, gender)
		}
		text, _ := r.Answer(q.Header)
		byGender[gender] = append(byGender[gender], text)
	}
	for _, gender := range order {
		terms := s.extractor.Count(byGender[gender], q.Exclude)
		if len(terms) == 0 {
			continue
		}
		report.Groups = append(report.Groups, domain.TermGroup{Group: gender, Terms: textstats.Top(terms, top)})
	}
	return report, nil
}

// Cities cuenta encuestados por ciudad y arma el mapa.
func (s *DashboardService) Cities(ctx context.Context, datasetID string, sel domain.Selection) (domain.CityMap, error) {
	_, view, err := s.view(ctx, datasetID, sel)
	if err != nil {
		return domain.CityMap{}, err
	}
	counts := geo.CountCities(s.column(view, survey.KeyCity))
	return geo.BuildMap(counts, s.gazetteer), nil
}
