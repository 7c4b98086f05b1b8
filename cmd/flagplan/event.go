package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/protocolo-ceremonial/flagplan/internal/adapters/http/dto"
)

// eventFile is the YAML description of an event. Keys match the JSON body
// accepted by POST /api/v1/plans.
type eventFile struct {
	Date              string   `yaml:"fecha"`
	Event             string   `yaml:"evento"`
	Venue             string   `yaml:"sede"`
	Host              string   `yaml:"anfitrion"`
	Delegations       []string `yaml:"delegaciones"`
	IncludeEU         bool     `yaml:"incorporarUE"`
	IncludeUN         bool     `yaml:"incorporarONU"`
	InstitutionalFlag string   `yaml:"banderaInstitucional"`
	Criterion         string   `yaml:"criterio"`
}

// readEvent loads the event at path. A path of "-" reads from stdin.
func readEvent(path string, stdin io.Reader) (dto.PlanRequest, error) {
	if path == "-" {
		return decodeEvent(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return dto.PlanRequest{}, fmt.Errorf("opening event file: %w", err)
	}
	defer f.Close()

	return decodeEvent(f)
}

// decodeEvent parses and shape-checks one event. Unknown keys are rejected.
func decodeEvent(r io.Reader) (dto.PlanRequest, error) {
	var ev eventFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ev); err != nil {
		if errors.Is(err, io.EOF) {
			return dto.PlanRequest{}, errors.New("event file is empty")
		}
		return dto.PlanRequest{}, fmt.Errorf("decoding event file: %w", err)
	}

	req := dto.PlanRequest{
		Date:              ev.Date,
		Event:             ev.Event,
		Venue:             ev.Venue,
		Host:              ev.Host,
		Delegations:       ev.Delegations,
		IncludeEU:         ev.IncludeEU,
		IncludeUN:         ev.IncludeUN,
		InstitutionalFlag: ev.InstitutionalFlag,
		Criterion:         ev.Criterion,
	}
	if err := req.Validate(); err != nil {
		return dto.PlanRequest{}, err
	}
	return req, nil
}
