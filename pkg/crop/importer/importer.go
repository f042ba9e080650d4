// Package importer reads crop reference tables from CSV, XLSX, YAML and HTML.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"rotaplan/entities"
	"rotaplan/pkg/apperr"
)

// Load reads the crops in path, picking the reader from the file extension.
func Load(path string) ([]entities.Crop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var crops []entities.Crop
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		crops, err = ReadCSV(f)
	case ".xlsx":
		crops, err = ReadXLSX(f)
	case ".yaml", ".yml":
		crops, err = ReadYAML(f)
	case ".html", ".htm":
		crops, err = ReadHTML(f)
	default:
		return nil, fmt.Errorf("%w: unsupported crop file type %q", apperr.ErrInvalidRequest, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return crops, nil
}

var dateLayouts = []string{"2006-01-02", "2006/01/02", "01-02-06", "1/2/2006"}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("bad date %q", s)
}

// splitTags accepts "a;b", "a|b" and "a, b".
func splitTags(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '|' || r == ',' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
