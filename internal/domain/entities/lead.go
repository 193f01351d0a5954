package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Stage is a lead's position in the sales pipeline
type Stage string

const (
	StageNew         Stage = "NEW"
	StageContacted   Stage = "CONTACTED"
	StageQualified   Stage = "QUALIFIED"
	StageProposal    Stage = "PROPOSAL"
	StageNegotiation Stage = "NEGOTIATION"
	StageClosedWon   Stage = "CLOSED_WON"
	StageClosedLost  Stage = "CLOSED_LOST"
)

// Stages lists all pipeline stages in order
func Stages() []Stage {
	return []Stage{
		StageNew, StageContacted, StageQualified, StageProposal,
		StageNegotiation, StageClosedWon, StageClosedLost,
	}
}

// LeadStatus is a lead's lifecycle standing, independent of stage
type LeadStatus string

const (
	StatusActive    LeadStatus = "ACTIVE"
	StatusInactive  LeadStatus = "INACTIVE"
	StatusConverted LeadStatus = "CONVERTED"
	StatusRejected  LeadStatus = "REJECTED"
)

// Statuses lists all lead statuses
func Statuses() []LeadStatus {
	return []LeadStatus{StatusActive, StatusInactive, StatusConverted, StatusRejected}
}

// Lead represents a sales prospect record
type Lead struct {
	ID         string      `json:"id"`
	Email      string      `json:"email"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Phone      string      `json:"phone"`
	Company    string      `json:"company"`
	Position   string      `json:"position"`
	Stage      Stage       `json:"stage"`
	Status     LeadStatus  `json:"status"`
	Source     string      `json:"source"`
	Value      float64     `json:"value"`
	Notes      null.String `json:"notes"`
	AssignedTo null.String `json:"assignedTo"`
	Country    string      `json:"country"`
	City       string      `json:"city"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}
