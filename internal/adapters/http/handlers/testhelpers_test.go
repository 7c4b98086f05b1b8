package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/protocolo-ceremonial/flagplan/internal/adapters/http/dto"
	"github.com/protocolo-ceremonial/flagplan/internal/domain/protocol"
)

var eventDay = time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

func validPlanRequest() dto.PlanRequest {
	return dto.PlanRequest{
		Date:        "2026-11-02",
		Event:       "bilateral",
		Venue:       "interior",
		Host:        "ES",
		Delegations: []string{"FR"},
		Criterion:   "alfabetico",
	}
}

func validPlan() *protocol.Plan {
	return &protocol.Plan{
		Order: []protocol.PlacementEntry{
			{Position: 1, Precedence: 2, Actor: protocol.Actor{Name: "Francia", Code: "FR", Kind: protocol.KindDelegation}},
			{Position: 2, Precedence: 1, Actor: protocol.Actor{Name: "España", Code: "ES", Kind: protocol.KindHost}},
		},
		Summary:    "Plan con 2 banderas para un encuentro bilateral.",
		Briefings:  []protocol.Briefing{{Title: "Encuentro bilateral", Details: "Dos mástiles."}},
		Milestones: []protocol.Milestone{{Title: "Evento", Owner: "Jefatura de Protocolo", Date: eventDay, DateLabel: "lunes, 2 de noviembre de 2026"}},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
