package gazetteer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/intelligrit/geodis/internal/model"
)

// excludedSubTypes are record sub-types the loader drops, per spec §4.2:
// consumers may assume a present location's parents always resolve, and
// hamlets/villages are too granular to be useful disambiguation targets.
var excludedSubTypes = map[string]bool{
	"hamlet":  true,
	"village": true,
}

// rawRecord mirrors one line of the line-delimited JSON gazetteer source.
type rawRecord struct {
	ID           string                `json:"id"`
	Name         *string               `json:"name"`
	UNLOCODE     string                `json:"unlocode"`
	CountryCode  string                `json:"countryCode"`
	SubType      string                `json:"subType"`
	Translations map[string]string     `json:"translations"`
	OtherNames   []string              `json:"otherNames"`
	Demonym      string                `json:"demonym"`
	Lat          *float64              `json:"lat"`
	Lon          *float64              `json:"lon"`
	Borders      []string              `json:"borders"`
	IsCapital    bool                  `json:"isCapital"`
	AreaKm2      *int                  `json:"areaKm2"`
	Population   *int                  `json:"population"`
	Languages    []string              `json:"languages"`
	AdminDivs    []model.AdminDivision `json:"adminDivisions"`
}

// Load reads a newline-delimited JSON gazetteer file from r, builds
// model.Location records, excludes the records spec §4.2 calls out
// (null name, or subType in {hamlet, village}), and returns a populated
// Dictionary. Malformed lines are skipped rather than aborting the whole
// load — a single dirty record in a multi-million-line source file
// should not prevent disambiguation from running.
func Load(r io.Reader) (*Dictionary, []error) {
	d := New()
	var warnings []error

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var raw rawRecord
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			warnings = append(warnings, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}

		if raw.Name == nil || strings.TrimSpace(*raw.Name) == "" {
			continue
		}
		if excludedSubTypes[strings.ToLower(raw.SubType)] {
			continue
		}

		loc, err := model.NewLocation(model.Location{
			ID:             raw.ID,
			Name:           *raw.Name,
			UNLOCODE:       raw.UNLOCODE,
			CountryCode:    raw.CountryCode,
			SubType:        raw.SubType,
			Translations:   raw.Translations,
			OtherNames:     raw.OtherNames,
			Demonym:        raw.Demonym,
			Lat:            raw.Lat,
			Lon:            raw.Lon,
			Borders:        raw.Borders,
			IsCapital:      raw.IsCapital,
			AreaKm2:        raw.AreaKm2,
			Population:     raw.Population,
			Languages:      raw.Languages,
			AdminDivisions: raw.AdminDivs,
		})
		if err != nil {
			warnings = append(warnings, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}

		d.Add(loc)
	}
	if err := scanner.Err(); err != nil {
		warnings = append(warnings, fmt.Errorf("scanning gazetteer: %w", err))
	}

	return d, warnings
}
