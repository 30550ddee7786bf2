// Package cities resolves Flemish city names to postal codes for autofill.
package cities

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Directory maps city names to postal codes. Lookup is an exact,
// case-sensitive match; operators may always override the result.
type Directory struct {
	codes map[string]string
}

// builtinSample is used when no cities file is configured or present.
var builtinSample = map[string]string{
	"Antwerpen":    "2000",
	"Gent":         "9000",
	"Brugge":       "8000",
	"Leuven":       "3000",
	"Kortrijk":     "8500",
	"Hasselt":      "3500",
	"Mechelen":     "2800",
	"Oostende":     "8400",
	"Aalst":        "9300",
	"Roeselare":    "8800",
	"Sint-Niklaas": "9100",
}

// Load reads the directory from a CSV file with a "stad,postcode" header.
// Semicolon-separated files without a header are accepted as well. When the
// path is empty or the file does not exist, the built-in sample is used.
func Load(path string) (*Directory, error) {
	if path == "" {
		return buildSample(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return buildSample(), nil
		}
		return nil, fmt.Errorf("open cities file: %w", err)
	}
	defer f.Close()

	codes, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse cities file: %w", err)
	}
	return &Directory{codes: codes}, nil
}

func buildSample() *Directory {
	codes := make(map[string]string, len(builtinSample))
	for city, pc := range builtinSample {
		codes[city] = pc
	}
	return &Directory{codes: codes}
}

func parse(r io.Reader) (map[string]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := string(data)

	if strings.Contains(text, ";") {
		return parseSemicolon(text), nil
	}
	return parseCSV(text)
}

func parseCSV(text string) (map[string]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	codes := make(map[string]string)
	header := true
	cityCol, pcCol := 0, 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) < 2 {
			continue
		}
		if header {
			header = false
			for i, col := range rec {
				switch strings.TrimSpace(strings.ToLower(col)) {
				case "stad":
					cityCol = i
				case "postcode":
					pcCol = i
				}
			}
			continue
		}
		city := strings.TrimSpace(rec[cityCol])
		pc := strings.TrimSpace(rec[pcCol])
		if city != "" && pc != "" {
			codes[city] = pc
		}
	}
	return codes, nil
}

func parseSemicolon(text string) map[string]string {
	codes := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		parts := strings.Split(strings.TrimSpace(line), ";")
		if len(parts) != 2 {
			continue
		}
		city := strings.TrimSpace(parts[0])
		pc := strings.TrimSpace(parts[1])
		if city != "" && pc != "" {
			codes[city] = pc
		}
	}
	return codes
}

// Lookup returns the postal code for a city name, if known.
func (d *Directory) Lookup(city string) (string, bool) {
	pc, ok := d.codes[city]
	return pc, ok
}

// Autofill returns the postal code for the city when the current field value
// is empty, and the current value otherwise. A miss leaves the field
// untouched rather than clearing it.
func (d *Directory) Autofill(city, current string) string {
	if current != "" {
		return current
	}
	if pc, ok := d.codes[city]; ok {
		return pc
	}
	return current
}

// Names returns the sorted list of known city names for dropdowns.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.codes))
	for city := range d.codes {
		names = append(names, city)
	}
	sort.Strings(names)
	return names
}
