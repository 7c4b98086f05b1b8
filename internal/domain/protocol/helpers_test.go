package protocol

import (
	"errors"
	"testing"
	"time"

	"github.com/protocolo-ceremonial/flagplan/internal/domain"
)

var eventDate = time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Synthetic reference table used across the package tests.
var (
	spain   = Actor{Name: "España", Code: "ES", Seed: PrecedenceSeed{Rank: 1, Since: date(1561, time.May, 1)}}
	france  = Actor{Name: "Francia", Code: "FR", Seed: PrecedenceSeed{Rank: 3, Since: date(1659, time.November, 7)}}
	germany = Actor{Name: "Alemania", Code: "DE", Seed: PrecedenceSeed{Rank: 4, Since: date(1871, time.January, 18)}}
	italy   = Actor{Name: "Italia", Code: "IT", Seed: PrecedenceSeed{Rank: 2, Since: date(1861, time.March, 17)}}
	belgium = Actor{Name: "Bélgica", Code: "BE"}
	brazil  = Actor{Name: "Brasil", Code: "BR", Seed: PrecedenceSeed{Since: date(1822, time.September, 7)}}
)

func baseContext() EventContext {
	return EventContext{
		Date:      eventDate,
		Event:     EventBilateral,
		Venue:     VenueIndoor,
		Host:      spain,
		Criterion: CriterionAlphabetical,
	}
}

func requireInvalidInput(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("error = nil, want InvalidInputError")
	}
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("errors.Is(err, ErrInvalidInput) = false, got %v", err)
	}
	var ierr *domain.InvalidInputError
	if !errors.As(err, &ierr) {
		t.Errorf("errors.As(err, *InvalidInputError) = false, got %T", err)
	}
}

func codes[T any](items []T, code func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = code(it)
	}
	return out
}

func actorCodes(actors []Actor) []string {
	return codes(actors, func(a Actor) string { return a.Code })
}

func rankedCodes(ranked []Ranked) []string {
	return codes(ranked, func(r Ranked) string { return r.Actor.Code })
}

func orderCodes(order []PlacementEntry) []string {
	return codes(order, func(e PlacementEntry) string { return e.Actor.Code })
}
