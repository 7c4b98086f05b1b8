package protocol

import (
	"fmt"
	"time"
)

// Briefing is a ceremonial instruction for the protocol staff.
type Briefing struct {
	Title   string
	Details string
}

// Milestone is one preparatory step of the timeline. Date is midnight UTC of
// the civil day; DateLabel is its long Spanish form.
type Milestone struct {
	Title     string
	Owner     string
	Date      time.Time
	DateLabel string
}

// Narrative is the text derived from a finished placement.
type Narrative struct {
	Summary    string
	Briefings  []Briefing
	Milestones []Milestone
}

// Roles responsible for the preparatory milestones.
const (
	OwnerProtocol  = "Jefatura de Protocolo"
	OwnerLogistics = "Logística"
	OwnerTechnical = "Equipo técnico"
)

// milestoneSchedule lists offsets in days from the event, earliest first.
// The last entry is always the event day.
var milestoneSchedule = []struct {
	offset int
	title  string
	owner  string
}{
	{-14, "Confirmar delegaciones asistentes y validar el orden de precedencia", OwnerProtocol},
	{-7, "Encargar banderas, mástiles y astas con dimensiones homogéneas", OwnerLogistics},
	{-3, "Montaje y verificación de mástiles, drizas y nivelación", OwnerTechnical},
	{-1, "Ensayo general de izado y revisión del orden de banderas", OwnerProtocol},
	{0, "Revisión final e izado antes de la llegada de las autoridades", OwnerTechnical},
}

// Compose derives the summary, briefings and milestones of a plan. It reads
// the placement without modifying it.
func Compose(ec EventContext, placement []PlacementEntry) Narrative {
	return Narrative{
		Summary:    summary(len(placement), ec.Event),
		Briefings:  briefings(ec),
		Milestones: milestones(ec.Date, ec.PlannedOn),
	}
}

func summary(n int, event EventType) string {
	flags := "banderas"
	if n == 1 {
		flags = "bandera"
	}
	return fmt.Sprintf("Plan con %d %s para %s.", n, flags, eventPhrase(event))
}

func eventPhrase(event EventType) string {
	switch event {
	case EventNational:
		return "un acto nacional"
	case EventBilateral:
		return "un encuentro bilateral"
	case EventMultilateral:
		return "una cumbre multilateral"
	case EventCorporate:
		return "un evento corporativo"
	default:
		return "un acto oficial"
	}
}

// briefings returns one note per decision axis: event, venue and criterion.
func briefings(ec EventContext) []Briefing {
	return []Briefing{
		eventBriefing(ec.Event),
		venueBriefing(ec.Venue),
		criterionBriefing(ec.Criterion, ec.collationTag().String()),
	}
}

func eventBriefing(event EventType) Briefing {
	switch event {
	case EventNational:
		return Briefing{
			Title:   "Izado e himno nacional",
			Details: "Izar la bandera nacional al inicio del acto, coincidiendo con los primeros compases del himno. Ninguna otra bandera se sitúa por encima ni precede a la nacional.",
		}
	case EventBilateral:
		return Briefing{
			Title:   "Simetría bilateral",
			Details: "El anfitrión ocupa la posición central derecha y la delegación de mayor precedencia la central izquierda. Ambas banderas con idéntico tamaño y altura; interpretar primero el himno del país invitado.",
		}
	case EventMultilateral:
		return Briefing{
			Title:   "Izado simultáneo",
			Details: "Todas las banderas se izan y arrían a la vez, con un abanderado por mástil y a una única señal del maestro de ceremonias.",
		}
	case EventCorporate:
		return Briefing{
			Title:   "Banderas oficiales e institucionales",
			Details: "Las banderas oficiales conservan la precedencia sobre las corporativas. La bandera institucional se sitúa junto al anfitrión y nunca lo supera en tamaño ni en altura.",
		}
	default:
		return Briefing{Title: "Acto oficial", Details: "Seguir el orden de banderas indicado."}
	}
}

func venueBriefing(venue VenueType) Briefing {
	switch venue {
	case VenueIndoor:
		return Briefing{
			Title:   "Fondo fijo de sala",
			Details: "Colocar las banderas en astas de pie tras la presidencia, distribuidas desde la derecha del público hacia la izquierda, sin ocultar la señalética del acto.",
		}
	case VenueOutdoor:
		return Briefing{
			Title:   "Igualación de mástiles",
			Details: "Ajustar la altura de los mástiles para conservar la horizontal visual aunque el terreno no sea llano. Si se usan varias filas, cada fila respeta el orden de precedencia indicado.",
		}
	case VenueStage:
		return Briefing{
			Title:   "Escenario con atril",
			Details: "Situar las banderas detrás del atril y dentro del plano de cámara. El atril no debe tapar ningún paño.",
		}
	case VenueParade:
		return Briefing{
			Title:   "Orden de desfile",
			Details: "Las banderas desfilan en el orden físico indicado: la de mayor precedencia pasa en último lugar, precedida por las demás.",
		}
	default:
		return Briefing{Title: "Sede", Details: "Adaptar el montaje a la sede."}
	}
}

func criterionBriefing(c OrderingCriteria, locale string) Briefing {
	switch c {
	case CriterionAlphabetical:
		return Briefing{
			Title:   "Criterio alfabético",
			Details: fmt.Sprintf("Orden alfabético de los nombres según el idioma del anfitrión (%s); a igualdad de nombre decide el código.", locale),
		}
	case CriterionPrecedence:
		return Briefing{
			Title:   "Rango de precedencia",
			Details: "Orden según la tabla oficial de precedencia. Las entidades sin rango asignado se ordenan alfabéticamente tras las clasificadas.",
		}
	case CriterionSeniority:
		return Briefing{
			Title:   "Antigüedad de capitales",
			Details: "Orden por fecha de referencia, de la más antigua a la más reciente. Las entidades sin fecha registrada se ordenan alfabéticamente al final.",
		}
	default:
		return Briefing{Title: "Criterio", Details: "Seguir el orden de precedencia indicado."}
	}
}

// milestones builds the timeline for the civil day of eventDate. Preparatory
// steps before plannedOn are dropped; the event day is always kept.
func milestones(eventDate, plannedOn time.Time) []Milestone {
	day := civilDay(eventDate)
	var today time.Time
	if !plannedOn.IsZero() {
		today = civilDay(plannedOn)
	}

	out := make([]Milestone, 0, len(milestoneSchedule))
	for _, step := range milestoneSchedule {
		date := day.AddDate(0, 0, step.offset)
		if step.offset != 0 && !today.IsZero() && date.Before(today) {
			continue
		}
		out = append(out, Milestone{
			Title:     step.title,
			Owner:     step.owner,
			Date:      date,
			DateLabel: LongDate(date),
		})
	}
	return out
}

func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
