// Package roster loads the list of companies to screen from a CSV file.
package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Subject is one company to screen.
type Subject struct {
	CompanyID   string
	CompanyName string
	Country     string
}

// Load reads subjects from a CSV file with a header row. Column names are
// matched case-insensitively; company_name is required, company_id and
// country are optional. Rows without a company_id get their zero-based
// data-row index as the identifier. Rows too short to carry a company name
// are skipped with a warning; a single bad row never aborts a load.
func Load(path string, logger *zap.SugaredLogger) ([]Subject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open companies file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read companies file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("companies file %s is empty", path)
	}

	idCol, nameCol, countryCol := -1, -1, -1
	for i, header := range records[0] {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header, "\ufeff"))) {
		case "company_id":
			idCol = i
		case "company_name":
			nameCol = i
		case "country":
			countryCol = i
		}
	}
	if nameCol == -1 {
		return nil, fmt.Errorf("companies file %s has no company_name column", path)
	}

	subjects := make([]Subject, 0, len(records)-1)
	for i, row := range records[1:] {
		if nameCol >= len(row) {
			logger.Warnw("Skipping short roster row", "file", path, "row", i+2)
			continue
		}

		subject := Subject{
			CompanyID:   strconv.Itoa(i),
			CompanyName: row[nameCol],
		}
		if idCol >= 0 && idCol < len(row) && strings.TrimSpace(row[idCol]) != "" {
			subject.CompanyID = strings.TrimSpace(row[idCol])
		}
		if countryCol >= 0 && countryCol < len(row) {
			subject.Country = strings.TrimSpace(row[countryCol])
		}
		subjects = append(subjects, subject)
	}

	logger.Infow("Loaded companies to screen", "file", path, "companies", len(subjects))
	return subjects, nil
}
