package country

import (
	"fmt"
	"strings"

	"github.com/protocolo-ceremonial/flagplan/internal/domain"
)

// Catalog is an immutable lookup of countries by code. It is safe for
// concurrent use.
type Catalog struct {
	byCode map[string]int
	items  []Country
}

// NewCatalog builds a catalog from records in presentation order. It rejects
// invalid records and repeated codes.
func NewCatalog(countries []Country) (*Catalog, error) {
	c := &Catalog{
		byCode: make(map[string]int, len(countries)),
		items:  make([]Country, 0, len(countries)),
	}

	for i := range countries {
		rec := countries[i]
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("country %d (%q): %w", i, rec.Code, err)
		}
		rec.Code = strings.ToUpper(strings.TrimSpace(rec.Code))
		if _, dup := c.byCode[rec.Code]; dup {
			return nil, fmt.Errorf("country %d: %w", i, &domain.ValidationError{
				Fields: map[string]string{"code": fmt.Sprintf("duplicate code %q", rec.Code)},
			})
		}
		c.byCode[rec.Code] = len(c.items)
		c.items = append(c.items, rec)
	}

	return c, nil
}

// Lookup returns the country with the given code, ignoring case and
// surrounding spaces.
func (c *Catalog) Lookup(code string) (Country, bool) {
	i, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Country{}, false
	}
	return c.items[i], true
}

// All returns a copy of every country in presentation order.
func (c *Catalog) All() []Country {
	out := make([]Country, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of countries.
func (c *Catalog) Len() int {
	return len(c.items)
}
