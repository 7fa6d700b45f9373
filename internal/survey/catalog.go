// Package survey carga planillas de la encuesta, normaliza los encabezados
// contra un catalogo de preguntas y filtra respuestas.
package survey

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tipos de pregunta.
const (
	KindCategorical = "categorical"
	KindFilter      = "filter"
	KindFreeText    = "free_text"
	KindHabit       = "habit"
)

// Claves de las preguntas conocidas.
const (
	KeyPurchaseFrequency = "purchase_frequency"
	KeySpending          = "spending"
	KeySecondhand        = "secondhand"
	KeyImpact            = "impact"
	KeyRepair            = "repair"
	KeySustainableBrand  = "sustainable_brand"
	KeySDG               = "sdg"
	KeyAgeRange          = "age_range"
	KeyGender            = "gender"
	KeyIncome            = "income"
	KeyCity              = "city"
	KeyMotivation        = "motivation"
	KeyConscious         = "conscious"
	KeyBrands            = "brands"
	KeyCircularConcept   = "circular_concept"
	KeyRental            = "rental"
	KeyPayMore           = "pay_more"
	KeyChannel           = "channel"
)

// Question describe una columna del formulario.
type Question struct {
	Key      string   `yaml:"key" json:"key"`
	Header   string   `yaml:"header" json:"header"`
	Match    []string `yaml:"match" json:"match,omitempty"`
	Kind     string   `yaml:"kind" json:"kind"`
	Required bool     `yaml:"required" json:"required"`
	Exclude  []string `yaml:"exclude" json:"exclude,omitempty"`
}

// matches es verdadero si el encabezado contiene todas las subcadenas.
func (q Question) matches(header string) bool {
	if len(q.Match) == 0 {
		return false
	}
	h := strings.ToLower(header)
	for _, m := range q.Match {
		if !strings.Contains(h, strings.ToLower(m)) {
			return false
		}
	}
	return true
}

// Catalog es la lista ordenada de preguntas; el orden define prioridad al
// renombrar columnas.
type Catalog struct {
	Questions []Question `yaml:"questions" json:"questions"`
}

// Question busca por clave.
func (c Catalog) Question(key string) (Question, bool) {
	for _, q := range c.Questions {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}

// Header devuelve el encabezado canonico de la clave, o "" si no existe.
func (c Catalog) Header(key string) string {
	q, _ := c.Question(key)
	return q.Header
}

// ByKind filtra preguntas por tipo, respetando el orden del catalogo.
func (c Catalog) ByKind(kind string) []Question {
	var out []Question
	for _, q := range c.Questions {
		if q.Kind == kind {
			out = append(out, q)
		}
	}
	return out
}

// Validate exige claves y encabezados no vacios y claves unicas.
func (c Catalog) Validate() error {
	if len(c.Questions) == 0 {
		return fmt.Errorf("catalog has no questions")
	}
	seen := make(map[string]struct{}, len(c.Questions))
	for i, q := range c.Questions {
		if strings.TrimSpace(q.Key) == "" || strings.TrimSpace(q.Header) == "" {
			return fmt.Errorf("question %d: key and header are required", i)
		}
		if _, dup := seen[q.Key]; dup {
			return fmt.Errorf("question %q declared twice", q.Key)
		}
		seen[q.Key] = struct{}{}
	}
	return nil
}

// LoadCatalog lee un catalogo yaml.
func LoadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(raw)
}

// ResolveCatalog usa el catalogo yaml si hay ruta; si no, el catalogo por defecto.
func ResolveCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalog(path)
}

// ParseCatalog decodifica y valida un catalogo yaml.
func ParseCatalog(raw []byte) (Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(raw, &cat); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}

// DefaultCatalog refleja el formulario "Consumo de Moda".
func DefaultCatalog() Catalog {
	return Catalog{Questions: []Question{
		{Key: KeyPurchaseFrequency, Header: "Com que frequência você compra roupas novas?", Match: []string{"frequência", "roupas novas"}, Kind: KindCategorical, Required: true},
		{Key: KeySpending, Header: "Quanto você gasta, em média, com roupas por mês?", Match: []string{"gasta"}, Kind: KindCategorical, Required: true},
		{Key: KeySecondhand, Header: "Você compra roupas de segunda mão (ex: brechós/desapegos)?", Match: []string{"segunda mão"}, Kind: KindCategorical, Required: true},
		{Key: KeyImpact, Header: "Você acredita que o consumo de moda impacta o meio ambiente?", Match: []string{"impacta o meio ambiente"}, Kind: KindCategorical, Required: true},
		{Key: KeyRepair, Header: "Você já reformou alguma peça de roupa antiga para torná-la mais atual?", Match: []string{"reformou"}, Kind: KindCategorical, Required: true},
		{Key: KeySustainableBrand, Header: "Você já comprou ou conhece marcas que promovem moda sustentável?", Match: []string{"moda sustentável"}, Kind: KindCategorical, Required: true},
		{Key: KeySDG, Header: "Você relaciona suas escolhas de vestuário com os Objetivos de Desenvolvimento Sustentável (ODS)?", Match: []string{"objetivos de desenvolvimento sustentável"}, Kind: KindCategorical, Required: true},
		{Key: KeyAgeRange, Header: "Qual é a sua faixa etária?", Match: []string{"faixa etária"}, Kind: KindFilter},
		{Key: KeyGender, Header: "Qual é o seu gênero?", Match: []string{"gênero"}, Kind: KindFilter},
		{Key: KeyIncome, Header: "Qual é sua faixa de renda mensal?", Match: []string{"faixa de renda"}, Kind: KindFilter},
		{Key: KeyCity, Header: "Qual a sua cidade e estado?", Match: []string{"cidade"}, Kind: KindFilter},
		{
			Key:     KeyMotivation,
			Header:  "O que te motiva a comprar roupas novas? (Ex: necessidade, estilo, promoção, rede social, entre outros)",
			Match:   []string{"motiva"},
			Kind:    KindFreeText,
			Exclude: []string{"roupas", "comprar", "ex", "promoção"},
		},
		{
			Key:     KeyConscious,
			Header:  "Você se considera um(a) consumidor(a) consciente? Por quê?",
			Match:   []string{"consciente"},
			Kind:    KindFreeText,
			Exclude: []string{"consumidor", "consumidora", "porque"},
		},
		{
			Key:    KeyBrands,
			Header: "Qual ou quais são as marcas de roupas que você mais gosta de comprar?",
			Match:  []string{"marcas de roupas"},
			Kind:   KindFreeText,
			Exclude: []string{
				"roupas", "comprar", "marcas", "gosto", "marca", "compro", "preferência", "ligo",
				"qualidade", "bem", "específica", "roupa", "sei", "uso", "sim",
			},
		},
		{Key: KeyCircularConcept, Header: "Você conhece o conceito de moda circular?", Match: []string{"moda circular"}, Kind: KindHabit},
		{Key: KeyRental, Header: "Você costuma alugar roupas para eventos ou ocasiões especiais?", Match: []string{"alugar"}, Kind: KindHabit},
		{Key: KeyPayMore, Header: "Você estaria disposto(a) a pagar mais por roupas feitas de forma sustentável ou com materiais reciclados?", Match: []string{"pagar mais"}, Kind: KindHabit},
		{Key: KeyChannel, Header: "Você gosta de comprar as suas roupas em lojas físicas ou pela internet?", Match: []string{"lojas físicas"}, Kind: KindCategorical},
	}}
}
