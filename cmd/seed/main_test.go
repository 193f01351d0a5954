package main

import (
	"math/rand"
	"testing"

	"leadflow.backend/internal/domain/entities"
)

func TestStatusFor_TerminalStagesAreCorrelated(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20; i++ {
		if got := statusFor(rng, entities.StageClosedWon); got != entities.StatusConverted {
			t.Fatalf("CLOSED_WON must yield CONVERTED, got %s", got)
		}
		if got := statusFor(rng, entities.StageClosedLost); got != entities.StatusRejected {
			t.Fatalf("CLOSED_LOST must yield REJECTED, got %s", got)
		}
		got := statusFor(rng, entities.StageQualified)
		if got != entities.StatusActive && got != entities.StatusInactive {
			t.Fatalf("open stage must yield ACTIVE or INACTIVE, got %s", got)
		}
	}
}

func TestRandomLead_ProducesDistinctValidLeads(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		lead := randomLead(rng, i)
		if lead.Email == "" || lead.FirstName == "" || lead.Company == "" {
			t.Fatalf("incomplete lead: %+v", lead)
		}
		if seen[lead.Email] {
			t.Fatalf("duplicate email generated: %s", lead.Email)
		}
		seen[lead.Email] = true

		if lead.Value < 1000 || lead.Value > 50000 {
			t.Fatalf("value out of range: %f", lead.Value)
		}

		valid := false
		for _, s := range entities.Stages() {
			if lead.Stage == s {
				valid = true
				break
			}
		}
		if !valid {
			t.Fatalf("unknown stage: %s", lead.Stage)
		}
	}
}
