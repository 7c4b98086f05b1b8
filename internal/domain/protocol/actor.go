package protocol

import (
	"strings"
	"time"
)

// Actor is a flag-bearing entity in a plan. Code is unique within a plan.
type Actor struct {
	Name string
	Kind ActorKind
	Code string
	Flag string
	Seed PrecedenceSeed
}

// PrecedenceSeed carries the keys each ordering criterion sorts by.
// A zero Rank means the actor is absent from the precedence table and a zero
// Since means it is absent from the seniority table.
type PrecedenceSeed struct {
	SortName string
	Rank     int
	Since    time.Time
}

// HasRank reports whether the actor appears in the precedence table.
func (s PrecedenceSeed) HasRank() bool {
	return s.Rank > 0
}

// HasSince reports whether the actor appears in the seniority table.
func (s PrecedenceSeed) HasSince() bool {
	return !s.Since.IsZero()
}

// sortName returns the name used for collation, falling back to the display name.
func (a Actor) sortName() string {
	if s := strings.TrimSpace(a.Seed.SortName); s != "" {
		return s
	}
	return strings.TrimSpace(a.Name)
}

// Codes of the built-in supranational actors.
const (
	CodeEuropeanUnion = "EU"
	CodeUnitedNations = "UN"
)

// EuropeanUnion returns the synthetic supranational actor injected when the
// European Union flag is requested. Its seniority date is the entry into force
// of the Maastricht Treaty.
func EuropeanUnion() Actor {
	return Actor{
		Name: "Unión Europea",
		Kind: KindSupranational,
		Code: CodeEuropeanUnion,
		Flag: "🇪🇺",
		Seed: PrecedenceSeed{
			SortName: "Unión Europea",
			Rank:     2,
			Since:    time.Date(1993, time.November, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// UnitedNations returns the synthetic supranational actor injected when the
// United Nations flag is requested. Its seniority date is the entry into force
// of the UN Charter.
func UnitedNations() Actor {
	return Actor{
		Name: "Organización de las Naciones Unidas",
		Kind: KindSupranational,
		Code: CodeUnitedNations,
		Flag: "🇺🇳",
		Seed: PrecedenceSeed{
			SortName: "Naciones Unidas",
			Rank:     1,
			Since:    time.Date(1945, time.October, 24, 0, 0, 0, 0, time.UTC),
		},
	}
}
