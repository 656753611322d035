package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"pickarb/internal/errors"
)

var moneyRe = regexp.MustCompile(`[^0-9.]`)

// CleanMoney parses a salary string that may carry currency symbols,
// commas, or footnote characters. Everything but digits and the decimal
// point is stripped; an empty result parses as zero.
func CleanMoney(value string) float64 {
	cleaned := moneyRe.ReplaceAllString(value, "")
	if cleaned == "" {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

// table is a parsed CSV file with case-insensitive header lookup.
type table struct {
	columns map[string]int
	rows    [][]string
}

// readTable reads a whole CSV file into memory. The pipeline is a batch
// transform over full snapshots, so there is no streaming path.
func readTable(path string) (*table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("source file %s", path))
		}
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read %s", path), err)
	}
	if len(records) == 0 {
		return nil, errors.NewParsingError(fmt.Sprintf("%s has no header row", path), nil)
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[normalizeHeader(name)] = i
	}

	return &table{columns: columns, rows: records[1:]}, nil
}

// col returns the index of the first matching column name, or -1.
func (t *table) col(names ...string) int {
	for _, name := range names {
		if idx, ok := t.columns[normalizeHeader(name)]; ok {
			return idx
		}
	}
	return -1
}

// field returns the trimmed cell at idx, or "" when the row is short.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func normalizeHeader(name string) string {
	// Leading BOM shows up when the file was exported for Excel.
	name = strings.TrimPrefix(name, "\uFEFF")
	return strings.ToLower(strings.TrimSpace(name))
}
