package protocol

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// institutionalPrefix prefixes the synthetic code of an institutional flag.
const institutionalPrefix = "INST"

// Resolve assembles the flag-bearing actors of an event. The host is always
// first; delegations follow in input order with repeated codes dropped, then
// the European Union, the United Nations and the institutional flag when
// requested. Codes are trimmed and upper-cased, and every actor's Kind is set
// from the role it plays in the event.
//
// Resolve fails with *domain.InvalidInputError when the host is missing, when
// a delegation carries the host's code or no code at all, or when the event,
// venue or criterion is not a known value.
func Resolve(ec EventContext) ([]Actor, error) {
	if err := validateEnums(ec); err != nil {
		return nil, err
	}

	host := ec.Host
	host.Code = normalizeCode(host.Code)
	host.Name = strings.TrimSpace(host.Name)
	if host.Code == "" || host.Name == "" {
		return nil, invalidInput("host missing")
	}
	host.Kind = KindHost

	actors := make([]Actor, 0, len(ec.Delegations)+4)
	actors = append(actors, host)
	seen := map[string]bool{host.Code: true}

	for i, d := range ec.Delegations {
		d.Code = normalizeCode(d.Code)
		if d.Code == "" {
			return nil, invalidInput("delegation %d has no code", i)
		}
		if d.Code == host.Code {
			return nil, invalidInput("host %s cannot also be a guest delegation", host.Code)
		}
		if seen[d.Code] {
			continue
		}
		seen[d.Code] = true
		d.Name = strings.TrimSpace(d.Name)
		if d.Name == "" {
			d.Name = d.Code
		}
		d.Kind = KindDelegation
		actors = append(actors, d)
	}

	if ec.IncludeEU && !seen[CodeEuropeanUnion] {
		seen[CodeEuropeanUnion] = true
		actors = append(actors, EuropeanUnion())
	}
	if ec.IncludeUN && !seen[CodeUnitedNations] {
		seen[CodeUnitedNations] = true
		actors = append(actors, UnitedNations())
	}

	if name := strings.TrimSpace(ec.InstitutionalFlag); name != "" {
		actors = append(actors, Actor{
			Name: name,
			Kind: KindInstitutional,
			Code: institutionalCode(name, seen),
			Seed: PrecedenceSeed{SortName: name},
		})
	}

	return actors, nil
}

func validateEnums(ec EventContext) error {
	if !ec.Event.IsValid() {
		return invalidInput("unknown event type %q", ec.Event)
	}
	if !ec.Venue.IsValid() {
		return invalidInput("unknown venue type %q", ec.Venue)
	}
	if !ec.Criterion.IsValid() {
		return invalidInput("unknown ordering criterion %q", ec.Criterion)
	}
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// institutionalCode derives a stable code from the flag name, suffixing a
// counter when the slug collides with a code already taken.
func institutionalCode(name string, taken map[string]bool) string {
	base := institutionalPrefix
	if slug := Slug(name); slug != "" {
		base += "-" + slug
	}

	code := base
	for n := 2; taken[code]; n++ {
		code = base + "-" + strconv.Itoa(n)
	}
	taken[code] = true
	return code
}

// Slug folds accents and returns the upper-case ASCII words of s joined by
// hyphens: "Universidad de Cádiz" becomes "UNIVERSIDAD-DE-CADIZ".
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range folded {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			pendingDash = true
		}
	}
	return b.String()
}
