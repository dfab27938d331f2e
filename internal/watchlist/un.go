package watchlist

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// unList mirrors the UN Security Council consolidated list XML.
type unList struct {
	XMLName     xml.Name       `xml:"CONSOLIDATED_LIST"`
	Individuals []unIndividual `xml:"INDIVIDUALS>INDIVIDUAL"`
	Entities    []unEntity     `xml:"ENTITIES>ENTITY"`
}

type unIndividual struct {
	DataID          string    `xml:"DATAID"`
	FirstName       string    `xml:"FIRST_NAME"`
	SecondName      string    `xml:"SECOND_NAME"`
	ThirdName       string    `xml:"THIRD_NAME"`
	FourthName      string    `xml:"FOURTH_NAME"`
	UNListType      string    `xml:"UN_LIST_TYPE"`
	ReferenceNumber string    `xml:"REFERENCE_NUMBER"`
	Aliases         []unAlias `xml:"INDIVIDUAL_ALIAS"`
}

type unEntity struct {
	DataID          string    `xml:"DATAID"`
	FirstName       string    `xml:"FIRST_NAME"`
	UNListType      string    `xml:"UN_LIST_TYPE"`
	ReferenceNumber string    `xml:"REFERENCE_NUMBER"`
	Aliases         []unAlias `xml:"ENTITY_ALIAS"`
}

type unAlias struct {
	Quality   string `xml:"QUALITY"`
	AliasName string `xml:"ALIAS_NAME"`
}

// ParseUN parses the UN consolidated list XML into canonical records. The
// primary name and every alias become separate records sharing the entry's
// reference number.
func ParseUN(data []byte) ([]Entity, error) {
	var list unList
	if err := xml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse UN consolidated list: %w", err)
	}

	var entities []Entity

	for _, ind := range list.Individuals {
		names := make([]string, 0, 1+len(ind.Aliases))
		full := joinNameParts(ind.FirstName, ind.SecondName, ind.ThirdName, ind.FourthName)
		if full != "" {
			names = append(names, full)
		}
		for _, alias := range ind.Aliases {
			if name := strings.TrimSpace(alias.AliasName); name != "" {
				names = append(names, name)
			}
		}
		for _, name := range names {
			entities = append(entities, Entity{
				Name:            name,
				ReferenceNumber: ind.ReferenceNumber,
				ListType:        ind.UNListType,
				Source:          SourceUN,
				Type:            TypeIndividual,
			})
		}
	}

	for _, ent := range list.Entities {
		names := make([]string, 0, 1+len(ent.Aliases))
		// For entities the UN schema carries the legal name in FIRST_NAME.
		if name := strings.TrimSpace(ent.FirstName); name != "" {
			names = append(names, name)
		}
		for _, alias := range ent.Aliases {
			if name := strings.TrimSpace(alias.AliasName); name != "" {
				names = append(names, name)
			}
		}
		for _, name := range names {
			entities = append(entities, Entity{
				Name:            name,
				ReferenceNumber: ent.ReferenceNumber,
				ListType:        ent.UNListType,
				Source:          SourceUN,
				Type:            TypeEntity,
			})
		}
	}

	return entities, nil
}

func joinNameParts(parts ...string) string {
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return strings.Join(fields, " ")
}
