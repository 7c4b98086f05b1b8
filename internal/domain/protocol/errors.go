package protocol

import (
	"fmt"

	"github.com/protocolo-ceremonial/flagplan/internal/domain"
)

// UnknownActorRankError reports an actor missing from the reference table the
// selected criterion sorts by. It is a soft condition: the actor is ordered
// alphabetically after every actor that has the key, the matching entry's
// description carries a warning, and the plan lists it in Warnings.
type UnknownActorRankError struct {
	Code      string
	Name      string
	Criterion OrderingCriteria
}

func (e UnknownActorRankError) Error() string {
	return fmt.Sprintf("actor %s (%s) has no reference value for criterion %s", e.Code, e.Name, e.Criterion)
}

// Notice renders the warning as shown to planners.
func (e UnknownActorRankError) Notice() string {
	return fmt.Sprintf("%s (%s) sin referencia de %s; ordenada alfabéticamente tras las entidades clasificadas.",
		e.Name, e.Code, e.Criterion.label())
}

func invalidInput(format string, args ...any) error {
	return &domain.InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}
