package protocol

import (
	"time"

	"golang.org/x/text/language"
)

// EventContext is the immutable input to a planning run.
//
// Delegations are an unordered set keyed by code; repeated codes are ignored.
// Locale selects the collation used for alphabetical ordering and defaults to
// Spanish when undetermined. PlannedOn is the caller's notion of "today": when
// set, preparatory milestones falling before it are omitted.
type EventContext struct {
	Date              time.Time
	Event             EventType
	Venue             VenueType
	Host              Actor
	Delegations       []Actor
	IncludeEU         bool
	IncludeUN         bool
	InstitutionalFlag string
	Criterion         OrderingCriteria
	Locale            language.Tag
	PlannedOn         time.Time
}

// collationTag returns the locale used for alphabetical ordering.
func (ec EventContext) collationTag() language.Tag {
	return collationLocale(ec.Locale)
}

// collationLocale maps an undetermined tag to Spanish.
func collationLocale(tag language.Tag) language.Tag {
	if tag.IsRoot() {
		return language.Spanish
	}
	return tag
}
