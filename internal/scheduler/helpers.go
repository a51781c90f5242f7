package scheduler

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rhyrak/krsplan/internal/parser"
)

type Configuration struct {
	DepartmentHeader string `json:"department_header"`
	Delimiter        string `json:"delimiter"`
	ExportFile       string `json:"export_file"`
	Timezone         string `json:"timezone"`
	SemesterStart    string `json:"semester_start"`
	Weeks            int    `json:"weeks"`
	ServerAddr       string `json:"server_addr"`
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		DepartmentHeader: parser.DefaultDepartmentHeader,
		Delimiter:        ",",
		ExportFile:       "plan.ics",
		Timezone:         "Asia/Jakarta",
		SemesterStart:    "",
		Weeks:            16, // one semester
		ServerAddr:       ":8080",
	}
}

// LoadConfiguration overlays the JSON file at path onto the defaults.
// A missing file yields the defaults.
func LoadConfiguration(path string) (*Configuration, error) {
	cfg := NewDefaultConfiguration()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return cfg, nil
}

// Location resolves the configured timezone.
func (c *Configuration) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone: %w", err)
	}
	return loc, nil
}

// Start returns the configured semester start, or the Monday of the current
// week when none is set.
func (c *Configuration) Start(loc *time.Location) (time.Time, error) {
	if c.SemesterStart == "" {
		now := time.Now().In(loc)
		offset := (int(now.Weekday()) + 6) % 7
		y, m, d := now.AddDate(0, 0, -offset).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	start, err := time.ParseInLocation("2006-01-02", c.SemesterStart, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid semester start %q: %w", c.SemesterStart, err)
	}
	return start, nil
}

// Rune returns the CSV delimiter as a rune.
func (c *Configuration) Rune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return ','
}

// NewParser builds a catalog parser honoring the configuration.
func (c *Configuration) NewParser() *parser.CatalogParser {
	p := parser.NewCatalogParser()
	p.DepartmentHeader = c.DepartmentHeader
	return p
}
