package protocol

import (
	"strings"
	"testing"
	"time"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n     int
		event EventType
		want  string
	}{
		{n: 5, event: EventBilateral, want: "Plan con 5 banderas para un encuentro bilateral."},
		{n: 1, event: EventNational, want: "Plan con 1 bandera para un acto nacional."},
		{n: 7, event: EventMultilateral, want: "Plan con 7 banderas para una cumbre multilateral."},
		{n: 2, event: EventCorporate, want: "Plan con 2 banderas para un evento corporativo."},
	}

	for _, tt := range tests {
		if got := summary(tt.n, tt.event); got != tt.want {
			t.Errorf("summary(%d, %s) = %q, want %q", tt.n, tt.event, got, tt.want)
		}
	}
}

func TestCompose_BriefingsCoverEveryCombination(t *testing.T) {
	t.Parallel()

	for _, event := range EventTypes() {
		for _, venue := range VenueTypes() {
			for _, criterion := range Criteria() {
				ec := EventContext{Date: eventDate, Event: event, Venue: venue, Criterion: criterion}
				n := Compose(ec, nil)

				if len(n.Briefings) != 3 {
					t.Fatalf("%s/%s/%s: %d briefings, want 3", event, venue, criterion, len(n.Briefings))
				}
				seen := make(map[string]bool)
				for _, b := range n.Briefings {
					if b.Title == "" || b.Details == "" {
						t.Errorf("%s/%s/%s: empty briefing %+v", event, venue, criterion, b)
					}
					if seen[b.Title] {
						t.Errorf("%s/%s/%s: duplicate briefing %q", event, venue, criterion, b.Title)
					}
					seen[b.Title] = true
				}
			}
		}
	}
}

func TestCompose_VenueBriefings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		venue VenueType
		want  string
	}{
		{venue: VenueOutdoor, want: "horizontal visual"},
		{venue: VenueParade, want: "último lugar"},
		{venue: VenueStage, want: "atril"},
		{venue: VenueIndoor, want: "derecha del público"},
	}

	for _, tt := range tests {
		b := venueBriefing(tt.venue)
		if !strings.Contains(b.Details, tt.want) {
			t.Errorf("venueBriefing(%s).Details = %q, want it to mention %q", tt.venue, b.Details, tt.want)
		}
	}
}

func TestCompose_Milestones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		date      time.Time
		plannedOn time.Time
		wantDates []time.Time
	}{
		{
			name: "full schedule",
			date: eventDate,
			wantDates: []time.Time{
				date(2026, time.October, 19),
				date(2026, time.October, 26),
				date(2026, time.October, 30),
				date(2026, time.November, 1),
				date(2026, time.November, 2),
			},
		},
		{
			name:      "past steps dropped",
			date:      eventDate,
			plannedOn: date(2026, time.October, 28),
			wantDates: []time.Time{
				date(2026, time.October, 30),
				date(2026, time.November, 1),
				date(2026, time.November, 2),
			},
		},
		{
			name:      "planned on a milestone keeps it",
			date:      eventDate,
			plannedOn: time.Date(2026, time.October, 26, 18, 30, 0, 0, time.UTC),
			wantDates: []time.Time{
				date(2026, time.October, 26),
				date(2026, time.October, 30),
				date(2026, time.November, 1),
				date(2026, time.November, 2),
			},
		},
		{
			name:      "event already past keeps event day",
			date:      eventDate,
			plannedOn: date(2026, time.December, 1),
			wantDates: []time.Time{date(2026, time.November, 2)},
		},
		{
			name:      "time of day ignored",
			date:      time.Date(2026, time.November, 2, 3, 0, 0, 0, time.UTC),
			plannedOn: date(2026, time.November, 1),
			wantDates: []time.Time{date(2026, time.November, 1), date(2026, time.November, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := milestones(tt.date, tt.plannedOn)
			if len(got) != len(tt.wantDates) {
				t.Fatalf("len(milestones) = %d, want %d: %+v", len(got), len(tt.wantDates), got)
			}
			for i, m := range got {
				if !m.Date.Equal(tt.wantDates[i]) {
					t.Errorf("milestones[%d].Date = %v, want %v", i, m.Date, tt.wantDates[i])
				}
				if m.Owner == "" || m.Title == "" || m.DateLabel == "" {
					t.Errorf("milestones[%d] incomplete: %+v", i, m)
				}
				if i > 0 && !got[i-1].Date.Before(m.Date) {
					t.Errorf("milestones not strictly ascending at %d", i)
				}
			}
		})
	}
}

func TestCompose_MilestoneOwners(t *testing.T) {
	t.Parallel()

	got := milestones(eventDate, time.Time{})
	want := []string{OwnerProtocol, OwnerLogistics, OwnerTechnical, OwnerProtocol, OwnerTechnical}

	for i, m := range got {
		if m.Owner != want[i] {
			t.Errorf("milestones[%d].Owner = %q, want %q", i, m.Owner, want[i])
		}
	}
}

func TestLongDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Time
		want string
	}{
		{in: date(2026, time.November, 2), want: "lunes, 2 de noviembre de 2026"},
		{in: date(2026, time.October, 18), want: "domingo, 18 de octubre de 2026"},
		{in: date(2027, time.January, 1), want: "viernes, 1 de enero de 2027"},
	}

	for _, tt := range tests {
		if got := LongDate(tt.in); got != tt.want {
			t.Errorf("LongDate(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
