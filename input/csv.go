package input

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pivolan/stats_preprocess/domain/models"
)

const Separator = ','

var ErrEmptyCSV = errors.New("csv has no rows")

var jsonNumber = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?$`)

// ReadCSV turns a CSV export into a record set. Empty cells become missing values,
// numeric cells become numbers, true/false become booleans and the rest stays text.
func ReadCSV(r io.Reader) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = Separator
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	firstRow, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyCSV
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	analysis := AnalyzeHeaders(firstRow)

	var records []models.Record
	if analysis.FirstRowIsData {
		records = append(records, csvRecord(analysis.Headers, firstRow))
	}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", len(records)+2, err)
		}
		records = append(records, csvRecord(analysis.Headers, row))
	}
	return records, nil
}

// ReadCSVFile reads a possibly compressed CSV file.
func ReadCSVFile(path string) ([]models.Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	records, err := ReadCSV(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// csvRecord maps cells to headers. Cells beyond the header are dropped and short rows
// leave the trailing columns missing.
func csvRecord(headers []string, row []string) models.Record {
	r := models.NewRecord()
	for i, header := range headers {
		if i >= len(row) {
			r.Set(header, nil)
			continue
		}
		r.Set(header, csvValue(row[i]))
	}
	return r
}

func csvValue(cell string) interface{} {
	s := strings.TrimSpace(cell)
	switch {
	case s == "":
		return nil
	case s == "true":
		return true
	case s == "false":
		return false
	}
	if jsonNumber.MatchString(s) {
		n := json.Number(s)
		if _, err := n.Float64(); err == nil {
			return n
		}
	}
	return cell
}
