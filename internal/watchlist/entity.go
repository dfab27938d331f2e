// Package watchlist loads sanctions lists from their publishing authorities
// and flattens them into canonical per-name records for screening.
package watchlist

// Source identifies the authority that published a sanctions record.
type Source string

const (
	SourceUN   Source = "UN"
	SourceEU   Source = "EU"
	SourceOFAC Source = "OFAC"
)

// SubjectType classifies what kind of party a sanctions record designates.
type SubjectType string

const (
	TypeIndividual SubjectType = "INDIVIDUAL"
	TypeEntity     SubjectType = "ENTITY"
	TypeUnknown    SubjectType = "UNKNOWN"
)

// Entity is one name variant from a sanctions list. A designated party with
// aliases contributes one Entity per alias; the screening engine matches
// each variant independently and never merges them.
type Entity struct {
	Name            string      `json:"name"`
	ReferenceNumber string      `json:"reference_number"`
	ListType        string      `json:"list_type"`
	Source          Source      `json:"source"`
	Type            SubjectType `json:"type"`
}
