package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
)

func ReadCSV(r io.Reader) ([]entities.Crop, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: csv: %v", apperr.ErrInvalidRequest, err)
	}
	return fromTable(rows)
}

// ReadXLSX reads the first sheet of a workbook.
func ReadXLSX(r io.Reader) ([]entities.Crop, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx: %v", apperr.ErrInvalidRequest, err)
	}
	defer x.Close()
	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: xlsx has no sheets", apperr.ErrInvalidRequest)
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx sheet %q: %v", apperr.ErrInvalidRequest, sheets[0], err)
	}
	return fromTable(rows)
}

// ReadHTML reads the first <table>. Header cells may be <th> or <td>.
func ReadHTML(r io.Reader) ([]entities.Crop, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: html: %v", apperr.ErrInvalidRequest, err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("%w: html has no table", apperr.ErrInvalidRequest)
	}
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, strings.TrimSpace(cell.Text()))
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})
	return fromTable(rows)
}

type yamlCrop struct {
	Name                       string   `yaml:"name"`
	NitrogenSupply             float64  `yaml:"nitrogen_supply"`
	NitrogenDemand             float64  `yaml:"nitrogen_demand"`
	Pests                      []string `yaml:"pests"`
	Diseases                   []string `yaml:"diseases"`
	MinimumRepeatIntervalYears int      `yaml:"minimum_repeat_interval_years"`
	PlantingDate               string   `yaml:"planting_date"`
	HarvestingDate             string   `yaml:"harvesting_date"`
}

type yamlCatalog struct {
	Crops []yamlCrop `yaml:"crops"`
}

// ReadYAML accepts either a top-level list of crops or a {crops: [...]} document.
func ReadYAML(r io.Reader) ([]entities.Crop, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var list []yamlCrop
	if err := yaml.Unmarshal(raw, &list); err != nil {
		var cat yamlCatalog
		if err2 := yaml.Unmarshal(raw, &cat); err2 != nil {
			return nil, fmt.Errorf("%w: yaml: %v", apperr.ErrInvalidRequest, errors.Join(err, err2))
		}
		list = cat.Crops
	}

	out := make([]entities.Crop, 0, len(list))
	for i, y := range list {
		if strings.TrimSpace(y.Name) == "" {
			continue
		}
		c := entities.Crop{
			Name:                       strings.TrimSpace(y.Name),
			NitrogenSupply:             y.NitrogenSupply,
			NitrogenDemand:             y.NitrogenDemand,
			Pests:                      y.Pests,
			Diseases:                   y.Diseases,
			MinimumRepeatIntervalYears: y.MinimumRepeatIntervalYears,
		}
		if c.PlantingDate, err = parseDate(y.PlantingDate); err != nil {
			return nil, fmt.Errorf("%w: crop %d planting_date: %v", apperr.ErrInvalidRequest, i+1, err)
		}
		if c.HarvestingDate, err = parseDate(y.HarvestingDate); err != nil {
			return nil, fmt.Errorf("%w: crop %d harvesting_date: %v", apperr.ErrInvalidRequest, i+1, err)
		}
		out = append(out, c)
	}
	return out, nil
}
