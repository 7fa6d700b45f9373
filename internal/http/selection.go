package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"moda-survey/internal/domain"
	"moda-survey/internal/survey"
)

// selectionKeys son los filtros aceptados como query params repetibles.
var selectionKeys = []string{
	survey.KeyAgeRange,
	survey.KeyGender,
	survey.KeyIncome,
	survey.KeyCity,
}

// selectionFromQuery arma la seleccion a partir de ?gender=a&gender=b...
// Valores vacios se descartan.
func selectionFromQuery(c *gin.Context) domain.Selection {
	sel := domain.Selection{}
	for _, key := range selectionKeys {
		for _, v := range c.QueryArray(key) {
			if v = strings.TrimSpace(v); v != "" {
				sel[key] = append(sel[key], v)
			}
		}
	}
	return sel
}
