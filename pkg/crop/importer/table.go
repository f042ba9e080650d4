package importer

import (
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
)

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "", "(", "", ")", "").Replace(s)
}

var aliases = map[string][]string{
	"name":     {"name", "crop", "crop_name"},
	"supply":   {"nitrogen_supply", "n_supply", "supply", "nitrogen supply (kg/ha)"},
	"demand":   {"nitrogen_demand", "n_demand", "demand", "nitrogen demand (kg/ha)"},
	"pests":    {"pests", "pest"},
	"diseases": {"diseases", "disease"},
	"interval": {"minimum_repeat_interval_years", "repeat_interval", "interval", "gap", "min_gap_years"},
	"planting": {"planting_date", "planting", "sowing_date"},
	"harvest":  {"harvesting_date", "harvest_date", "harvesting", "harvest"},
}

// fromTable turns a header row plus data rows into crops. Rows with an empty
// name are skipped; a malformed value fails the whole table.
func fromTable(rows [][]string) ([]entities.Crop, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty crop table", apperr.ErrInvalidRequest)
	}
	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	col := map[string]int{}
	for key, names := range aliases {
		col[key] = -1
		for _, n := range names {
			if idx, ok := hmap[norm(n)]; ok {
				col[key] = idx
				break
			}
		}
	}
	if col["name"] == -1 || col["supply"] == -1 || col["demand"] == -1 {
		return nil, fmt.Errorf("%w: crop table needs name, nitrogen_supply and nitrogen_demand columns, found %v",
			apperr.ErrInvalidRequest, rows[0])
	}

	var out []entities.Crop
	for n, rec := range rows[1:] {
		get := func(key string) string {
			idx := col[key]
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		if get("name") == "" {
			continue
		}
		c, err := parseRow(get)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", apperr.ErrInvalidRequest, n+2, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func parseRow(get func(string) string) (entities.Crop, error) {
	c := entities.Crop{
		Name:     get("name"),
		Pests:    datatypes.JSONSlice[string](splitTags(get("pests"))),
		Diseases: datatypes.JSONSlice[string](splitTags(get("diseases"))),
	}
	var err error
	if c.NitrogenSupply, err = parseFloat(get("supply")); err != nil {
		return c, fmt.Errorf("nitrogen_supply: %w", err)
	}
	if c.NitrogenDemand, err = parseFloat(get("demand")); err != nil {
		return c, fmt.Errorf("nitrogen_demand: %w", err)
	}
	if c.MinimumRepeatIntervalYears, err = parseInt(get("interval")); err != nil {
		return c, fmt.Errorf("minimum_repeat_interval_years: %w", err)
	}
	if c.PlantingDate, err = parseDate(get("planting")); err != nil {
		return c, fmt.Errorf("planting_date: %w", err)
	}
	if c.HarvestingDate, err = parseDate(get("harvest")); err != nil {
		return c, fmt.Errorf("harvesting_date: %w", err)
	}
	return c, nil
}
