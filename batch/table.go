// Package batch handles uploaded CSV tables for the bulk scoring flow:
// parsing, geography indicator derivation, required-column validation, and
// merging the API's predictions back onto the original rows.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/helabhl/bank-churn-mlops/models"
)

// RequiredColumns are the feature columns every batch must provide, either
// directly or via a Geography column that gets expanded into the two
// indicator columns.
var RequiredColumns = []string{
	"CreditScore",
	"Age",
	"Tenure",
	"Balance",
	"NumOfProducts",
	"HasCrCard",
	"IsActiveMember",
	"EstimatedSalary",
	"Geography_Germany",
	"Geography_Spain",
}

// PreviewRows is how many leading rows the dashboard shows after an upload.
const PreviewRows = 5

// Table is an in-memory CSV table. Column order is preserved so the merged
// download looks like the upload with result columns appended.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Parse reads a CSV with a header row. Every data row must have the same
// number of cells as the header.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file is empty")
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	return &Table{Columns: header, Rows: records[1:]}, nil
}

// ColumnIndex returns the position of a named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Preview returns a table holding at most n leading rows.
func (t *Table) Preview(n int) *Table {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// DeriveGeography expands a categorical Geography column into the
// Geography_Germany and Geography_Spain indicator columns. If the indicator
// columns already exist they are overwritten from the category; if no
// Geography column is present the table is returned untouched.
func (t *Table) DeriveGeography() *Table {
	geoIdx := t.ColumnIndex("Geography")
	if geoIdx < 0 {
		return t
	}

	out := &Table{Columns: append([]string{}, t.Columns...)}
	germanyIdx := out.ColumnIndex("Geography_Germany")
	if germanyIdx < 0 {
		out.Columns = append(out.Columns, "Geography_Germany")
		germanyIdx = len(out.Columns) - 1
	}
	spainIdx := out.ColumnIndex("Geography_Spain")
	if spainIdx < 0 {
		out.Columns = append(out.Columns, "Geography_Spain")
		spainIdx = len(out.Columns) - 1
	}

	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(out.Columns))
		copy(cells, row)
		germany, spain := models.EncodeGeography(strings.TrimSpace(row[geoIdx]))
		cells[germanyIdx] = strconv.Itoa(germany)
		cells[spainIdx] = strconv.Itoa(spain)
		out.Rows[i] = cells
	}
	return out
}

// MissingColumns reports which required columns the table lacks, sorted.
func (t *Table) MissingColumns() []string {
	var missing []string
	for _, col := range RequiredColumns {
		if t.ColumnIndex(col) < 0 {
			missing = append(missing, col)
		}
	}
	sort.Strings(missing)
	return missing
}

// Records converts every row into the prediction API payload shape. The
// whole batch fails on the first cell that does not parse; partial
// submission is never attempted.
func (t *Table) Records() ([]models.CustomerRecord, error) {
	if missing := t.MissingColumns(); len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	idx := make(map[string]int, len(RequiredColumns))
	for _, col := range RequiredColumns {
		idx[col] = t.ColumnIndex(col)
	}

	records := make([]models.CustomerRecord, 0, len(t.Rows))
	for i, row := range t.Rows {
		p := rowParser{row: row, idx: idx}
		rec := models.CustomerRecord{
			CreditScore:      p.intCell("CreditScore"),
			Age:              p.intCell("Age"),
			Tenure:           p.intCell("Tenure"),
			Balance:          p.floatCell("Balance"),
			NumOfProducts:    p.intCell("NumOfProducts"),
			HasCrCard:        p.intCell("HasCrCard"),
			IsActiveMember:   p.intCell("IsActiveMember"),
			EstimatedSalary:  p.floatCell("EstimatedSalary"),
			GeographyGermany: p.intCell("Geography_Germany"),
			GeographySpain:   p.intCell("Geography_Spain"),
		}
		if p.err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, p.err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// rowParser converts cells of one row, remembering the first failure so the
// record literal above stays flat.
type rowParser struct {
	row []string
	idx map[string]int
	err error
}

func (p *rowParser) cell(col string) string {
	return strings.TrimSpace(p.row[p.idx[col]])
}

func (p *rowParser) intCell(col string) int {
	if p.err != nil {
		return 0
	}
	v, err := parseIntCell(p.cell(col))
	if err != nil {
		p.err = fmt.Errorf("column %s: %w", col, err)
	}
	return v
}

func (p *rowParser) floatCell(col string) float64 {
	if p.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(p.cell(col), 64)
	if err != nil {
		p.err = fmt.Errorf("column %s: %w", col, err)
	}
	return v
}

// Merge appends the prediction columns to the original table, row i of the
// predictions against row i of the table.
func Merge(original *Table, predictions []models.PredictionResult) (*Table, error) {
	if len(predictions) != len(original.Rows) {
		return nil, fmt.Errorf("got %d predictions for %d rows", len(predictions), len(original.Rows))
	}

	merged := &Table{
		Columns: append(append([]string{}, original.Columns...), "churn_probability", "prediction", "risk_level"),
		Rows:    make([][]string, len(original.Rows)),
	}
	for i, row := range original.Rows {
		p := predictions[i]
		merged.Rows[i] = append(append([]string{}, row...),
			strconv.FormatFloat(p.ChurnProbability, 'f', -1, 64),
			strconv.Itoa(p.Prediction),
			p.RiskLevel,
		)
	}
	return merged, nil
}

// CSV renders the table back into comma-separated text for download.
func (t *Table) CSV() (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(t.Columns); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		return "", fmt.Errorf("write csv rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func parseIntCell(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		// Tolerate "1.0" style cells that spreadsheet tools produce.
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, err
		}
		return int(f), nil
	}
	return v, nil
}
