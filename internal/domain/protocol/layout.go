package protocol

import (
	"fmt"
	"slices"
	"strings"
)

// PlacementEntry is one physical flag position. Position is the emitted
// physical slot, 1-based and contiguous; Precedence is the ceremonial rank
// with the host at 1. The two differ for centered layouts and parades.
type PlacementEntry struct {
	Position    int
	Precedence  int
	Actor       Actor
	Description string
}

// Layout maps the host and the ranked guests onto physical positions.
//
// National and corporate events put the host at position 1 followed by the
// guests in precedence order. Bilateral and multilateral events put the host
// at ceil((n+1)/2) and alternate the sovereign guests outward, starting with
// the center-left slot; supranational and institutional flags take the
// outermost slots on the right. Parades reverse the resulting order because
// the flag of highest precedence passes last. Outdoor, indoor and staged
// venues emit the same linear order; row-breaking belongs to the presentation
// layer.
func Layout(host Actor, ranked []Ranked, event EventType, venue VenueType) ([]PlacementEntry, error) {
	if host.Code == "" {
		return nil, invalidInput("no actors to place: host missing")
	}
	if !venue.IsValid() {
		return nil, invalidInput("unknown venue type %q", venue)
	}

	n := len(ranked) + 1

	var slots []int
	switch event {
	case EventNational, EventCorporate:
		slots = linearSlots(n)
	case EventBilateral, EventMultilateral:
		slots = centeredSlots(n, trailingNonSovereign(ranked))
	default:
		return nil, invalidInput("unknown event type %q", event)
	}

	parade := venue == VenueParade
	if parade {
		for i, pos := range slots {
			slots[i] = n + 1 - pos
		}
	}

	hostPos := slots[0]
	entries := make([]PlacementEntry, n)
	for i, pos := range slots {
		e := PlacementEntry{Position: pos, Precedence: i + 1}
		if i == 0 {
			e.Actor = host
			e.Description = hostReason(event, pos, n)
		} else {
			r := ranked[i-1]
			e.Actor = r.Actor
			e.Description = guestReason(r, i+1, hostPos, pos, event)
		}
		if parade {
			e.Description += fmt.Sprintf(" Desfile: orden físico invertido, posición %d con precedencia %d de %d; la bandera de mayor precedencia pasa en último lugar.", pos, i+1, n)
		}
		entries[i] = e
	}

	slices.SortFunc(entries, func(a, b PlacementEntry) int { return a.Position - b.Position })
	return entries, nil
}

// HostPosition returns the host slot for n actors before any venue override.
func HostPosition(event EventType, n int) int {
	switch event {
	case EventBilateral, EventMultilateral:
		return (n + 2) / 2
	default:
		return 1
	}
}

func linearSlots(n int) []int {
	slots := make([]int, n)
	for i := range slots {
		slots[i] = i + 1
	}
	return slots
}

// centeredSlots indexes slots by precedence: slots[0] is the host at the
// center-right position and guests alternate left and right of it, carrying
// on along whichever side still has room. The last outer guests are placed
// at the right end in precedence order, as many as the right side holds.
func centeredSlots(n, outer int) []int {
	h := (n + 2) / 2
	inner := n - min(outer, n-h)
	slots := make([]int, n)
	slots[0] = h

	left, right := h-1, h+1
	preferLeft := true
	for i := 1; i < inner; i++ {
		if (preferLeft && left >= 1) || right > inner {
			slots[i] = left
			left--
		} else {
			slots[i] = right
			right++
		}
		preferLeft = !preferLeft
	}
	for i := inner; i < n; i++ {
		slots[i] = i + 1
	}
	return slots
}

// trailingNonSovereign counts the supranational and institutional guests at
// the end of the ranking.
func trailingNonSovereign(ranked []Ranked) int {
	var n int
	for i := len(ranked) - 1; i >= 0 && ranked[i].Actor.Kind != KindDelegation; i-- {
		n++
	}
	return n
}

// centerSide names a slot relative to the middle of n slots.
func centerSide(pos, n int) string {
	switch {
	case 2*pos == n+1:
		return "central"
	case 2*pos > n+1:
		return "central derecha"
	default:
		return "central izquierda"
	}
}

func hostReason(event EventType, pos, n int) string {
	switch event {
	case EventNational:
		return fmt.Sprintf("País anfitrión: posición %d, lugar de honor del acto nacional.", pos)
	case EventCorporate:
		return fmt.Sprintf("País anfitrión: posición %d, preside el evento corporativo por encima de las banderas institucionales.", pos)
	case EventBilateral, EventMultilateral:
		return fmt.Sprintf("País anfitrión: posición %s (%d de %d) por convención diplomática.", centerSide(pos, n), pos, n)
	default:
		return "País anfitrión."
	}
}

func guestReason(r Ranked, precedence, hostPos, pos int, event EventType) string {
	var b strings.Builder

	switch r.Actor.Kind {
	case KindSupranational:
		b.WriteString("Organismo supranacional: tras las delegaciones soberanas por convención ceremonial")
	case KindInstitutional:
		if event == EventCorporate {
			b.WriteString("Bandera institucional: inmediatamente después del anfitrión en evento corporativo")
		} else {
			b.WriteString("Bandera institucional: tras las banderas oficiales")
		}
	default:
		b.WriteString("Delegación invitada")
	}

	if r.Actor.Kind == KindInstitutional {
		fmt.Fprintf(&b, "; precedencia %d.", precedence)
	} else {
		fmt.Fprintf(&b, "; precedencia %d por %s.", precedence, r.Criterion.label())
	}

	if event == EventBilateral || event == EventMultilateral {
		side := "izquierda"
		if pos > hostPos {
			side = "derecha"
		}
		fmt.Fprintf(&b, " Situada a la %s del anfitrión.", side)
	}

	if r.Warning != nil {
		fmt.Fprintf(&b, " Aviso: sin referencia de %s; ordenada alfabéticamente tras las entidades clasificadas.", r.Warning.Criterion.label())
	}
	return b.String()
}
