package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"moda-survey/internal/domain"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported survey file format")
	ErrEmptyFile         = errors.New("survey file has no header row")
	ErrUnreadableFile    = errors.New("survey file could not be read")
)

// Parsed es el resultado de leer una planilla: encabezados canonicos,
// columnas requeridas ausentes y respuestas.
type Parsed struct {
	Columns   []string
	Missing   []string
	Responses []domain.Response
}

// ReadCSV lee todas las filas; tolera filas de largo variable y comillas sueltas.
func ReadCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv: %v", ErrUnreadableFile, err)
	}
	return records, nil
}

// ReadXLSX lee la hoja indicada, o la primera si sheet es "".
func ReadXLSX(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open xlsx: %v", ErrUnreadableFile, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyFile
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", ErrUnreadableFile, sheet, err)
	}
	return rows, nil
}

// ReadTable elige el lector segun la extension del archivo.
func ReadTable(r io.Reader, filename, sheet string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return ReadCSV(r)
	case ".xlsx", ".xlsm":
		return ReadXLSX(r, sheet)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// Parse convierte filas crudas en respuestas. Celdas vacias son respuestas
// ausentes; las filas completamente vacias se descartan.
func Parse(records [][]string, cat Catalog) (Parsed, error) {
	if len(records) == 0 {
		return Parsed{}, ErrEmptyFile
	}
	columns, missing := Canonicalize(records[0], cat)

	parsed := Parsed{Columns: columns, Missing: missing}
	for _, row := range records[1:] {
		answers := make(map[string]string)
		for i, cell := range row {
			if i >= len(columns) || columns[i] == "" {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			answers[columns[i]] = cell
		}
		if len(answers) == 0 {
			continue
		}
		parsed.Responses = append(parsed.Responses, domain.Response{
			Position: len(parsed.Responses),
			Answers:  answers,
		})
	}
	return parsed, nil
}

// Load lee y parsea una planilla desde un reader.
func Load(r io.Reader, filename, sheet string, cat Catalog) (Parsed, error) {
	records, err := ReadTable(r, filename, sheet)
	if err != nil {
		return Parsed{}, err
	}
	return Parse(records, cat)
}

// LoadFile abre el archivo y lo parsea.
func LoadFile(path, sheet string, cat Catalog) (Parsed, error) {
	f, err := os.Open(path)
	if err != nil {
		return Parsed{}, fmt.Errorf("open survey file: %w", err)
	}
	defer f.Close()
	return Load(f, filepath.Base(path), sheet, cat)
}
