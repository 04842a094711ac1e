package repositories

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/yigit/coursefinder/internal/pkg/apperrors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// recordReader replays already tokenised rows to gocsv
type recordReader struct {
	records [][]string
	pos     int
}

func (r *recordReader) Read() ([]string, error) {
	if r.pos >= len(r.records) {
		return nil, io.EOF
	}
	rec := r.records[r.pos]
	r.pos++
	return rec, nil
}

func (r *recordReader) ReadAll() ([][]string, error) {
	rest := r.records[r.pos:]
	r.pos = len(r.records)
	return rest, nil
}

// readTable reads a comma-separated file, trims header names and checks that
// every required column is present. Data rows are padded or cut to the header width.
func readTable(path, source string, required []string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewNotFoundError(path, err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	r := csv.NewReader(bytes.NewReader(raw))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", source, err)
	}

	if len(records) == 0 {
		return nil, &apperrors.SchemaError{Source: source, Missing: sortedCopy(required)}
	}

	header := records[0]
	present := make(map[string]struct{}, len(header))
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
		present[header[i]] = struct{}{}
	}

	var missing []string
	for _, name := range required {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &apperrors.SchemaError{Source: source, Missing: missing}
	}

	width := len(header)
	for i := 1; i < len(records); i++ {
		row := records[i]
		switch {
		case len(row) < width:
			records[i] = append(row, make([]string, width-len(row))...)
		case len(row) > width:
			records[i] = row[:width]
		}
	}
	return records, nil
}

// decodeTable unmarshals rows produced by readTable into out (a pointer to a slice)
func decodeTable(records [][]string, source string, out interface{}) error {
	if err := gocsv.UnmarshalCSV(&recordReader{records: records}, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", source, err)
	}
	return nil
}

func sortedCopy(names []string) []string {
	out := append([]string(nil), names...)
	sort.Strings(out)
	return out
}
