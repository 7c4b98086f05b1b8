// Package country holds the reference records of sovereign states used to
// build protocol actors, and a read-only lookup over them.
package country

import (
	"fmt"
	"strings"
	"time"

	"github.com/protocolo-ceremonial/flagplan/internal/domain"
	"github.com/protocolo-ceremonial/flagplan/internal/domain/protocol"
	"golang.org/x/text/language"
)

// Country is the canonical reference record of a sovereign state.
// PrecedenceRank is zero when the state is absent from the precedence table;
// Seniority is zero when no reference date is recorded.
type Country struct {
	Code           string
	Name           string
	Flag           string
	Locale         string
	PrecedenceRank int
	Seniority      time.Time
}

// Validate checks the record. Returns a *domain.ValidationError with per-field
// details, or nil if all rules pass.
func (c *Country) Validate() error {
	fields := make(map[string]string)

	if code := strings.TrimSpace(c.Code); code == "" {
		fields["code"] = domain.MsgRequired
	} else if len(code) != 2 {
		fields["code"] = fmt.Sprintf("must be a two-letter code, got %q", c.Code)
	}
	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			fields["locale"] = fmt.Sprintf("invalid: %q", c.Locale)
		}
	}
	if c.PrecedenceRank < 0 {
		fields["precedence_rank"] = fmt.Sprintf("must not be negative, got %d", c.PrecedenceRank)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Tag returns the parsed locale, or language.Und when none is recorded.
func (c *Country) Tag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und
	}
	return tag
}

// Actor converts the record into a protocol actor of the given kind.
func (c *Country) Actor(kind protocol.ActorKind) protocol.Actor {
	return protocol.Actor{
		Name: c.Name,
		Kind: kind,
		Code: strings.ToUpper(strings.TrimSpace(c.Code)),
		Flag: c.Flag,
		Seed: protocol.PrecedenceSeed{
			SortName: c.Name,
			Rank:     c.PrecedenceRank,
			Since:    c.Seniority,
		},
	}
}
