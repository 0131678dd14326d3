package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Exporter writes built reports into Dir. Filenames carry the report stem
// plus an HHmmss timestamp so repeated exports never collide.
type Exporter struct {
	Dir string
}

func NewExporter(dir string) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{Dir: dir}
}

func (e *Exporter) path(r *Report, ext string) (string, error) {
	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	stamp := time.Now().Format("150405")
	name := fmt.Sprintf("%s_%s.%s", r.FileStem, stamp, ext)
	path := filepath.Join(e.Dir, name)
	// two exports within the same second get a numeric suffix
	for n := 1; ; n++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s_%s_%d.%s", r.FileStem, stamp, n, ext)
		path = filepath.Join(e.Dir, name)
	}
	return path, nil
}

// ExportCSV writes the report as comma-separated values with a header row.
func (e *Exporter) ExportCSV(r *Report) (string, error) {
	path, err := e.path(r, "csv")
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(r.Headers); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, row := range r.Rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}

// ExportText writes the report as a human-readable fixed-width table with
// a title line, dashed rules and a trailing total line.
func (e *Exporter) ExportText(r *Report) (string, error) {
	path, err := e.path(r, "txt")
	if err != nil {
		return "", err
	}

	widths := columnWidths(r)
	var sb strings.Builder

	rule := strings.Repeat("-", ruleWidth(widths))
	sb.WriteString("--- " + r.Title + " ---\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(formatRow(r.Headers, widths) + "\n")
	sb.WriteString(rule + "\n")
	for _, row := range r.Rows {
		sb.WriteString(formatRow(row, widths) + "\n")
	}
	sb.WriteString(rule + "\n")
	sb.WriteString("TOTAL: " + r.Total.StringFixed(2) + "\n")

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write text report: %w", err)
	}
	return path, nil
}

// ExportXLSX writes the report as a spreadsheet.
func (e *Exporter) ExportXLSX(r *Report) (string, error) {
	path, err := e.path(r, "xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	const sheet = "Sheet1"

	for i, h := range r.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return "", fmt.Errorf("set header: %w", err)
		}
	}
	for ri, row := range r.Rows {
		for ci, val := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return "", fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, val); err != nil {
				return "", fmt.Errorf("set cell: %w", err)
			}
		}
	}

	// total line under the table
	totalCell, err := excelize.CoordinatesToCellName(1, len(r.Rows)+3)
	if err != nil {
		return "", fmt.Errorf("total cell: %w", err)
	}
	if err := f.SetCellValue(sheet, totalCell, "TOTAL: "+r.Total.StringFixed(2)); err != nil {
		return "", fmt.Errorf("set total: %w", err)
	}

	for i := range r.Headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return "", fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, 18); err != nil {
			return "", fmt.Errorf("set col width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save xlsx: %w", err)
	}
	return path, nil
}

// Recent returns up to n exported report files in Dir, newest first.
func (e *Exporter) Recent(n int) ([]string, error) {
	entries, err := os.ReadDir(e.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read report dir: %w", err)
	}

	type file struct {
		name string
		mod  time.Time
	}
	var files []file
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "Report_") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".csv" && ext != ".txt" && ext != ".xlsx" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, file{name: entry.Name(), mod: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].mod.After(files[j].mod) })

	if n > 0 && len(files) > n {
		files = files[:n]
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.name)
	}
	return names, nil
}

func columnWidths(r *Report) []int {
	widths := make([]int, len(r.Headers))
	for i, h := range r.Headers {
		widths[i] = len(h)
	}
	for _, row := range r.Rows {
		for i, val := range row {
			if i < len(widths) && len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}
	return widths
}

func ruleWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	// " | " between columns
	if len(widths) > 1 {
		total += 3 * (len(widths) - 1)
	}
	return total
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, val := range cells {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		parts[i] = fmt.Sprintf("%-*s", w, val)
	}
	return strings.TrimRight(strings.Join(parts, " | "), " ")
}
