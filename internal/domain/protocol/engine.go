package protocol

// Plan is the output of a planning run. Order is sorted by Position.
// Warnings lists every actor that fell back to alphabetical ordering, in
// precedence order.
type Plan struct {
	Order      []PlacementEntry
	Summary    string
	Briefings  []Briefing
	Milestones []Milestone
	Warnings   []UnknownActorRankError
}

// GeneratePlan runs Resolve, Rank, Layout and Compose in order. Identical
// contexts yield structurally identical plans. The only error is
// *domain.InvalidInputError.
func GeneratePlan(ec EventContext) (*Plan, error) {
	if ec.Date.IsZero() {
		return nil, invalidInput("event date missing")
	}

	actors, err := Resolve(ec)
	if err != nil {
		return nil, err
	}

	ranked, err := Rank(actors, RankOptions{
		Criterion: ec.Criterion,
		Event:     ec.Event,
		Locale:    ec.collationTag(),
	})
	if err != nil {
		return nil, err
	}

	order, err := Layout(actors[0], ranked, ec.Event, ec.Venue)
	if err != nil {
		return nil, err
	}

	var warnings []UnknownActorRankError
	for _, r := range ranked {
		if r.Warning != nil {
			warnings = append(warnings, *r.Warning)
		}
	}

	narrative := Compose(ec, order)
	return &Plan{
		Order:      order,
		Summary:    narrative.Summary,
		Briefings:  narrative.Briefings,
		Milestones: narrative.Milestones,
		Warnings:   warnings,
	}, nil
}
