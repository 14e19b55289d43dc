package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gofinances/backend/internal/importer"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var (
	errIncompleteRecord = errors.New("the record has empty fields")
	errInvalidValue     = errors.New("the value is not a non-negative decimal")
)

// Parse reads transactions from a comma separated file with the columns
// title, type, value and category. The first line is a header and is skipped.
//
// Records that are incomplete or malformed are dropped. Only errors reading
// from f are returned.
func Parse(f io.Reader) ([]importer.Candidate, error) {
	reader := csv.NewReader(f)

	// Records with missing columns are dropped individually instead of
	// failing the whole file
	reader.FieldsPerRecord = -1

	// We can reuse the array in the background to improve performance
	reader.ReuseRecord = true

	candidates := make([]importer.Candidate, 0)

	// Skip the first line
	_, err := reader.Read()
	if err == io.EOF {
		return candidates, nil
	}
	if err != nil && !isParseError(err) {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if isParseError(err) {
			log.Debug().Err(err).Msg("dropping malformed CSV record")
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("could not read line in CSV: %w", err)
		}

		candidate, err := parseRecord(record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			log.Debug().Err(err).Int("line", line).Msg("dropping CSV record")
			continue
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// parseRecord converts a record to a Candidate.
func parseRecord(record []string) (importer.Candidate, error) {
	fields := make([]string, columns)
	for i := 0; i < columns && i < len(record); i++ {
		fields[i] = strings.TrimSpace(record[i])
	}

	if slices.Contains(fields, "") {
		return importer.Candidate{}, errIncompleteRecord
	}

	value, err := decimal.NewFromString(fields[Value])
	if err != nil || value.IsNegative() {
		return importer.Candidate{}, fmt.Errorf("%w: %s", errInvalidValue, fields[Value])
	}

	return importer.Candidate{
		Title:    fields[Title],
		Type:     fields[Type],
		Value:    value,
		Category: fields[Category],
	}, nil
}

func isParseError(err error) bool {
	var parseError *csv.ParseError
	return errors.As(err, &parseError)
}
