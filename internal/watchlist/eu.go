package watchlist

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// euExport mirrors the EU financial sanctions file (FSF) XML export.
type euExport struct {
	XMLName  xml.Name           `xml:"export"`
	Entities []euSanctionEntity `xml:"sanctionEntity"`
}

type euSanctionEntity struct {
	LogicalID   string         `xml:"logicalId,attr"`
	EUReference string         `xml:"euReferenceNumber,attr"`
	SubjectType euSubjectType  `xml:"subjectType"`
	NameAliases []euNameAlias  `xml:"nameAlias"`
	Regulations []euRegulation `xml:"regulation"`
}

type euSubjectType struct {
	Code string `xml:"code,attr"`
}

type euNameAlias struct {
	WholeName string `xml:"wholeName,attr"`
}

type euRegulation struct {
	Programme string `xml:"programme,attr"`
}

// ParseEU parses the EU consolidated financial sanctions XML. Every
// wholeName alias becomes its own record; the EU reference number (falling
// back to the logical id) ties variants of one designation together.
func ParseEU(data []byte) ([]Entity, error) {
	var export euExport
	if err := xml.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse EU sanctions list: %w", err)
	}

	var entities []Entity
	for _, ent := range export.Entities {
		ref := ent.EUReference
		if ref == "" {
			ref = ent.LogicalID
		}

		listType := ""
		if len(ent.Regulations) > 0 {
			listType = ent.Regulations[0].Programme
		}

		subjectType := TypeUnknown
		switch strings.ToLower(ent.SubjectType.Code) {
		case "person":
			subjectType = TypeIndividual
		case "enterprise":
			subjectType = TypeEntity
		}

		for _, alias := range ent.NameAliases {
			name := strings.TrimSpace(alias.WholeName)
			if name == "" {
				continue
			}
			entities = append(entities, Entity{
				Name:            name,
				ReferenceNumber: ref,
				ListType:        listType,
				Source:          SourceEU,
				Type:            subjectType,
			})
		}
	}

	return entities, nil
}
