// Package content loads decks of items and the study-set catalog.
package content

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"github.com/julianstephens/flipdeck/internal/constants"
	"github.com/julianstephens/flipdeck/internal/logger"
	"github.com/julianstephens/flipdeck/internal/models"
)

type loadOptions struct {
	sheet string
}

type Option func(*loadOptions)

// WithSheet selects the worksheet read from .xlsx decks
func WithSheet(name string) Option {
	return func(o *loadOptions) {
		o.sheet = name
	}
}

// LoadItems reads a deck file. The format follows the extension: .tsv and
// .txt are tab separated, .csv is comma separated, .xlsx is a workbook and
// .html reads the first table. Every format uses the columns
// id, prompt, answer and an optional note.
func LoadItems(path string, opts ...Option) ([]models.Item, error) {
	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}

	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tsv", ".txt":
		rows, err = readTSV(path)
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx":
		rows, err = readXLSX(path, o.sheet)
	case ".html", ".htm":
		rows, err = readHTML(path)
	default:
		return nil, fmt.Errorf("unsupported deck format %q", ext)
	}
	if err != nil {
		return nil, err
	}

	items := ParseRows(rows)
	logger.Debug("Loaded deck", "path", path, "rows", len(rows), "items", len(items))
	return items, nil
}

// ParseRows turns raw rows into items. Rows with fewer than three fields
// or a non-numeric id are skipped, which also drops header rows. When an
// id repeats the first row wins.
func ParseRows(rows [][]string) []models.Item {
	items := make([]models.Item, 0, len(rows))
	seen := make(map[int]bool, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			logger.Debug("Skipping row without numeric id", "row", i+1)
			continue
		}
		if seen[id] {
			logger.Warn("Duplicate item id, keeping the first", "id", id, "row", i+1)
			continue
		}
		seen[id] = true

		item := models.Item{
			ID:     id,
			Prompt: strings.TrimSpace(row[1]),
			Answer: strings.TrimSpace(row[2]),
		}
		if len(row) > 3 {
			item.Note = strings.TrimSpace(row[3])
		}
		items = append(items, item)
	}
	return items
}

func readTSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck: %w", err)
	}
	defer f.Close()
	return splitTSV(f)
}

func splitTSV(r io.Reader) ([][]string, error) {
	var rows [][]string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV deck: %w", err)
	}
	return rows, nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		sheet = constants.DefaultDeckSheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readHTML(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck: %w", err)
	}
	defer f.Close()
	return tableRows(f)
}

// tableRows collects the cell text of every row in the first <table>
func tableRows(r io.Reader) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML deck: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table found in HTML deck")
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		rows = append(rows, cells)
	})
	return rows, nil
}
