// Package embedded serves country reference data from a table compiled into
// the binary. It needs no network and backs both the CLI and the default
// service profile.
package embedded

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/protocolo-ceremonial/flagplan/internal/domain/country"
	"github.com/protocolo-ceremonial/flagplan/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ReferenceClient = (*Client)(nil)
	_ ports.HealthChecker   = (*Client)(nil)
)

const dateLayout = "2006-01-02"

//go:embed countries.yaml
var defaultTable []byte

type tableFile struct {
	Countries []countryRecord `yaml:"countries"`
}

type countryRecord struct {
	Code           string `yaml:"code"`
	Name           string `yaml:"name"`
	Flag           string `yaml:"flag"`
	Locale         string `yaml:"locale"`
	PrecedenceRank int    `yaml:"precedence_rank"`
	Seniority      string `yaml:"seniority"`
}

// Client implements ports.ReferenceClient over a parsed, validated table.
type Client struct {
	source    string
	countries []country.Country
}

// New returns a Client over the built-in table.
func New() (*Client, error) {
	return newClient("built-in table", defaultTable)
}

// NewFromFile returns a Client over a table read from path, using the same
// format as the built-in one.
func NewFromFile(path string) (*Client, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reference: read %s: %w", path, err)
	}
	return newClient(path, data)
}

// NewFromReader returns a Client over a table read from r.
func NewFromReader(r io.Reader) (*Client, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reference: read table: %w", err)
	}
	return newClient("reader", data)
}

func newClient(source string, data []byte) (*Client, error) {
	countries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("reference: %s: %w", source, err)
	}
	// Rejects duplicates up front so a bad table fails at startup.
	if _, err := country.NewCatalog(countries); err != nil {
		return nil, fmt.Errorf("reference: %s: %w", source, err)
	}
	return &Client{source: source, countries: countries}, nil
}

// Parse decodes a YAML country table. Seniority dates use the YYYY-MM-DD
// layout; an empty value means the state has no reference date.
func Parse(data []byte) ([]country.Country, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("country table is empty")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file tableFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode country table: %w", err)
	}
	if len(file.Countries) == 0 {
		return nil, fmt.Errorf("country table has no entries")
	}

	out := make([]country.Country, len(file.Countries))
	for i, rec := range file.Countries {
		c, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("country %d (%q): %w", i, rec.Code, err)
		}
		out[i] = c
	}
	return out, nil
}

func (r countryRecord) toDomain() (country.Country, error) {
	c := country.Country{
		Code:           r.Code,
		Name:           r.Name,
		Flag:           r.Flag,
		Locale:         r.Locale,
		PrecedenceRank: r.PrecedenceRank,
	}
	if r.Seniority != "" {
		since, err := time.Parse(dateLayout, r.Seniority)
		if err != nil {
			return country.Country{}, fmt.Errorf("seniority %q: want YYYY-MM-DD", r.Seniority)
		}
		c.Seniority = since
	}
	return c, nil
}

// ListCountries returns a copy of the table in file order.
func (c *Client) ListCountries(_ context.Context) ([]country.Country, error) {
	out := make([]country.Country, len(c.countries))
	copy(out, c.countries)
	return out, nil
}

// Name returns the identifier used in the health registry.
func (c *Client) Name() string {
	return "reference-data"
}

// HealthCheck always succeeds once the table has loaded.
func (c *Client) HealthCheck(_ context.Context) error {
	return nil
}

// Source describes where the table was loaded from.
func (c *Client) Source() string {
	return c.source
}
