package protocol

// EventType is the ceremonial category of the event.
type EventType string

const (
	EventNational     EventType = "nacional"
	EventBilateral    EventType = "bilateral"
	EventMultilateral EventType = "multilateral"
	EventCorporate    EventType = "corporativo"
)

// EventTypes lists every event type in presentation order.
func EventTypes() []EventType {
	return []EventType{EventNational, EventBilateral, EventMultilateral, EventCorporate}
}

// IsValid returns true if the event type is one of the defined constants.
func (e EventType) IsValid() bool {
	switch e {
	case EventNational, EventBilateral, EventMultilateral, EventCorporate:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (e EventType) String() string {
	return string(e)
}

// VenueType is the physical setting where the flags are displayed.
type VenueType string

const (
	VenueIndoor  VenueType = "interior"
	VenueOutdoor VenueType = "exterior"
	VenueStage   VenueType = "escenario"
	VenueParade  VenueType = "desfile"
)

// VenueTypes lists every venue type in presentation order.
func VenueTypes() []VenueType {
	return []VenueType{VenueIndoor, VenueOutdoor, VenueStage, VenueParade}
}

// IsValid returns true if the venue type is one of the defined constants.
func (v VenueType) IsValid() bool {
	switch v {
	case VenueIndoor, VenueOutdoor, VenueStage, VenueParade:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (v VenueType) String() string {
	return string(v)
}

// OrderingCriteria selects how guests are ranked against each other.
type OrderingCriteria string

const (
	CriterionAlphabetical OrderingCriteria = "alfabetico"
	CriterionPrecedence   OrderingCriteria = "precedencia"
	CriterionSeniority    OrderingCriteria = "antiguedad"
)

// Criteria lists every ordering criterion in presentation order.
func Criteria() []OrderingCriteria {
	return []OrderingCriteria{CriterionAlphabetical, CriterionPrecedence, CriterionSeniority}
}

// IsValid returns true if the criterion is one of the defined constants.
func (c OrderingCriteria) IsValid() bool {
	switch c {
	case CriterionAlphabetical, CriterionPrecedence, CriterionSeniority:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c OrderingCriteria) String() string {
	return string(c)
}

// label is the phrase used in descriptions and briefings.
func (c OrderingCriteria) label() string {
	switch c {
	case CriterionAlphabetical:
		return "orden alfabético (idioma anfitrión)"
	case CriterionPrecedence:
		return "rango de precedencia"
	case CriterionSeniority:
		return "antigüedad de capitales"
	default:
		return string(c)
	}
}

// ActorKind classifies a flag-bearing actor.
type ActorKind string

const (
	KindHost          ActorKind = "host"
	KindDelegation    ActorKind = "delegation"
	KindSupranational ActorKind = "supranational"
	KindInstitutional ActorKind = "institutional"
)

// IsValid returns true if the kind is one of the defined constants.
func (k ActorKind) IsValid() bool {
	switch k {
	case KindHost, KindDelegation, KindSupranational, KindInstitutional:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k ActorKind) String() string {
	return string(k)
}
