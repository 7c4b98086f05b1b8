package protocol

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// RankOptions configures a ranking run.
type RankOptions struct {
	Criterion OrderingCriteria
	Event     EventType
	Locale    language.Tag
}

// Ranked is a guest actor together with its place in the precedence order.
// Precedence is 1-based over guests only; the host is excluded. Warning is
// set when the actor lacks the key the criterion sorts by.
type Ranked struct {
	Actor      Actor
	Precedence int
	Criterion  OrderingCriteria
	Warning    *UnknownActorRankError
}

// Rank orders every non-host actor. Sovereign delegations come first, then
// supranational bodies, then institutional flags; corporate events move
// institutional flags ahead of the delegations. Inside each group the
// criterion decides, with host-locale collation of the sort name and then the
// code as tie-breakers. The sort is stable.
func Rank(actors []Actor, opts RankOptions) ([]Ranked, error) {
	if !opts.Criterion.IsValid() {
		return nil, invalidInput("unknown ordering criterion %q", opts.Criterion)
	}
	if !opts.Event.IsValid() {
		return nil, invalidInput("unknown event type %q", opts.Event)
	}

	// Collators keep internal buffers, so each run owns one.
	col := collate.New(collationLocale(opts.Locale), collate.IgnoreCase)

	guests := make([]Actor, 0, len(actors))
	for _, a := range actors {
		if a.Kind != KindHost {
			guests = append(guests, a)
		}
	}

	slices.SortStableFunc(guests, func(a, b Actor) int {
		if c := cmp.Compare(groupOf(a.Kind, opts.Event), groupOf(b.Kind, opts.Event)); c != 0 {
			return c
		}
		if c := compareByCriterion(a, b, opts.Criterion); c != 0 {
			return c
		}
		if c := col.CompareString(a.sortName(), b.sortName()); c != 0 {
			return c
		}
		return strings.Compare(a.Code, b.Code)
	})

	ranked := make([]Ranked, len(guests))
	for i, g := range guests {
		ranked[i] = Ranked{
			Actor:      g,
			Precedence: i + 1,
			Criterion:  opts.Criterion,
			Warning:    missingKey(g, opts.Criterion),
		}
	}
	return ranked, nil
}

// groupOf returns the ceremonial group of a guest; lower groups go first.
func groupOf(kind ActorKind, event EventType) int {
	if event == EventCorporate {
		switch kind {
		case KindInstitutional:
			return 0
		case KindDelegation:
			return 1
		default:
			return 2
		}
	}
	switch kind {
	case KindDelegation:
		return 0
	case KindSupranational:
		return 1
	default:
		return 2
	}
}

// compareByCriterion compares the criterion key only. Actors holding the key
// precede those without it; two actors without it compare equal so the
// alphabetical fallback decides.
func compareByCriterion(a, b Actor, c OrderingCriteria) int {
	switch c {
	case CriterionAlphabetical:
		return 0
	case CriterionPrecedence:
		return comparePresent(a.Seed.HasRank(), b.Seed.HasRank(), func() int {
			return cmp.Compare(a.Seed.Rank, b.Seed.Rank)
		})
	case CriterionSeniority:
		return comparePresent(a.Seed.HasSince(), b.Seed.HasSince(), func() int {
			return a.Seed.Since.Compare(b.Seed.Since)
		})
	default:
		return 0
	}
}

func comparePresent(aHas, bHas bool, both func() int) int {
	switch {
	case aHas && bHas:
		return both()
	case aHas:
		return -1
	case bHas:
		return 1
	default:
		return 0
	}
}

// missingKey returns a warning when a sovereign or supranational actor has no
// value for the criterion. Institutional flags never appear in the reference
// tables and are not reported.
func missingKey(a Actor, c OrderingCriteria) *UnknownActorRankError {
	if a.Kind != KindDelegation && a.Kind != KindSupranational {
		return nil
	}
	var missing bool
	switch c {
	case CriterionAlphabetical:
		missing = false
	case CriterionPrecedence:
		missing = !a.Seed.HasRank()
	case CriterionSeniority:
		missing = !a.Seed.HasSince()
	}
	if !missing {
		return nil
	}
	return &UnknownActorRankError{Code: a.Code, Name: a.Name, Criterion: c}
}
