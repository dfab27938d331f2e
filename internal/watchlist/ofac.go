package watchlist

import (
	"strings"
)

// Column layout of the OFAC SDN tab-delimited export.
const (
	ofacColUID       = 0
	ofacColLastName  = 1
	ofacColFirstName = 2
	ofacColSDNType   = 3
	ofacColProgram   = 4
	ofacMinColumns   = 5
)

// ParseOFAC parses the OFAC SDN tab-delimited export. Malformed lines are
// skipped; a single bad record must never abort a load.
func ParseOFAC(data []byte) ([]Entity, error) {
	lines := strings.Split(string(data), "\n")

	var entities []Entity
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue // header or blank
		}

		fields := strings.Split(line, "\t")
		if len(fields) < ofacMinColumns {
			continue
		}

		name := strings.TrimSpace(strings.TrimSpace(fields[ofacColLastName]) + " " + strings.TrimSpace(fields[ofacColFirstName]))
		if name == "" {
			continue
		}

		subjectType := TypeEntity
		if strings.EqualFold(strings.TrimSpace(fields[ofacColSDNType]), "individual") {
			subjectType = TypeIndividual
		}

		entities = append(entities, Entity{
			Name:            name,
			ReferenceNumber: strings.TrimSpace(fields[ofacColUID]),
			ListType:        strings.TrimSpace(fields[ofacColProgram]),
			Source:          SourceOFAC,
			Type:            subjectType,
		})
	}

	return entities, nil
}
