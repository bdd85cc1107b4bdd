package domain

import (
	"time"
)

// RequestType classifies what kind of help is being asked for
type RequestType string

const (
	RequestTypeMedical  RequestType = "medical"
	RequestTypeRescue   RequestType = "rescue"
	RequestTypeFood     RequestType = "food"
	RequestTypeShelter  RequestType = "shelter"
	RequestTypeSupplies RequestType = "supplies"
	RequestTypeOther    RequestType = "other"
)

// RequestTypes lists all valid request types
var RequestTypes = []RequestType{
	RequestTypeMedical,
	RequestTypeRescue,
	RequestTypeFood,
	RequestTypeShelter,
	RequestTypeSupplies,
	RequestTypeOther,
}

// Urgency represents request severity, ordered critical > high > medium > low
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

// Urgencies lists all valid urgencies in severity order
var Urgencies = []Urgency{
	UrgencyCritical,
	UrgencyHigh,
	UrgencyMedium,
	UrgencyLow,
}

// Status represents the lifecycle state of a help request.
// Requests start active; withdraw/resolve transitions happen outside this
// core and are not enforced as a state machine.
type Status string

const (
	StatusActive    Status = "active"
	StatusWithdrawn Status = "withdrawn"
	StatusResolved  Status = "resolved"
)

// Statuses lists all valid statuses
var Statuses = []Status{
	StatusActive,
	StatusWithdrawn,
	StatusResolved,
}

// HelpRequest is a row from the public help requests view.
// Contact info and the edit token digest never leave the repository layer
// through public read paths.
type HelpRequest struct {
	PublicID       string      `json:"public_id"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	RequestType    RequestType `json:"request_type"`
	Urgency        Urgency     `json:"urgency"`
	PeopleAffected int         `json:"people_affected"`
	Latitude       float64     `json:"latitude"`
	Longitude      float64     `json:"longitude"`
	Status         Status      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// SubmissionInput carries caller-supplied fields for a new help request
type SubmissionInput struct {
	Title          string  `json:"title" form:"title" validate:"required"`
	Description    string  `json:"description" form:"description" validate:"required"`
	RequestType    string  `json:"request_type" form:"request_type" validate:"required,request_type"`
	Urgency        string  `json:"urgency" form:"urgency" validate:"required,request_urgency"`
	PeopleAffected int     `json:"people_affected" form:"people_affected" validate:"required,min=1"`
	Latitude       float64 `json:"latitude" form:"latitude" validate:"min=-90,max=90"`
	Longitude      float64 `json:"longitude" form:"longitude" validate:"min=-180,max=180"`
	ContactNumber  string  `json:"contact_number" form:"contact_number"`
}

// NewHelpRequest is the write-side record for one accepted submission. It
// carries everything the insert needs, including the fields the public view
// never exposes.
type NewHelpRequest struct {
	PublicID        string
	Title           string
	Description     string
	RequestType     RequestType
	Urgency         Urgency
	PeopleAffected  int
	Latitude        float64
	Longitude       float64
	Status          Status
	ContactNumber   string
	ContactLast4    string
	EditTokenDigest string
	CreatedAt       time.Time
}

// SubmissionReceipt is returned to the submitter exactly once.
// EditToken is never persisted in clear form, only its digest.
type SubmissionReceipt struct {
	PublicID  string `json:"public_id"`
	EditToken string `json:"edit_token"`
}

// IsValidRequestType reports whether s is a known request type
func IsValidRequestType(s string) bool {
	for _, t := range RequestTypes {
		if string(t) == s {
			return true
		}
	}
	return false
}

// IsValidUrgency reports whether s is a known urgency
func IsValidUrgency(s string) bool {
	for _, u := range Urgencies {
		if string(u) == s {
			return true
		}
	}
	return false
}

// IsValidStatus reports whether s is a known status
func IsValidStatus(s string) bool {
	for _, st := range Statuses {
		if string(st) == s {
			return true
		}
	}
	return false
}
