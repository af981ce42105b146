// File: forms/forms.go
package forms

import (
	"strings"

	"go-ultimate-hub/models"
	"go-ultimate-hub/services"
)

// LoginForm selects the role to log in as.
type LoginForm struct {
	Role string `json:"role" form:"role" binding:"required,role"`
}

// WinnersForm is the optional podium of a finished tournament.
type WinnersForm struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Third  string `json:"third"`
}

// EventForm creates an event.
type EventForm struct {
	Name           string       `json:"name" binding:"required,min=3"`
	Date           string       `json:"date" binding:"required,isodate"`
	Description    string       `json:"description" binding:"required"`
	VenueID        string       `json:"venueId" binding:"required"`
	OrganizationID string       `json:"organizationId" binding:"required"`
	Type           string       `json:"type" binding:"required,eventtype"`
	Winners        *WinnersForm `json:"winners"`
	Highlights     string       `json:"highlights"`
}

// Input converts the form for the store.
func (f EventForm) Input(createdBy models.UserID) (services.EventInput, error) {
	date, err := models.ParseDate(f.Date)
	if err != nil {
		return services.EventInput{}, err
	}
	in := services.EventInput{
		Name:           strings.TrimSpace(f.Name),
		Date:           date,
		Description:    strings.TrimSpace(f.Description),
		VenueID:        models.VenueID(f.VenueID),
		OrganizationID: models.OrganizationID(f.OrganizationID),
		Type:           models.EventType(f.Type),
		Highlights:     f.Highlights,
		CreatedBy:      createdBy,
	}
	if f.Winners != nil {
		in.Winners = &models.Winners{First: f.Winners.First, Second: f.Winners.Second, Third: f.Winners.Third}
	}
	return in, nil
}

// OrganizationForm creates an organization.
type OrganizationForm struct {
	Name       string   `json:"name" binding:"required,min=2"`
	Organizers []string `json:"organizers" binding:"dive,required"`
}

// Input converts the form. Only the listed organizers are attached.
func (f OrganizationForm) Input() services.OrganizationInput {
	ids := make([]models.UserID, 0, len(f.Organizers))
	for _, o := range f.Organizers {
		ids = append(ids, models.UserID(o))
	}
	return services.OrganizationInput{Name: strings.TrimSpace(f.Name), Organizers: ids}
}

// CoachingCenterForm creates a coaching center.
type CoachingCenterForm struct {
	Name        string   `json:"name" binding:"required"`
	Specialty   string   `json:"specialty" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Lat         float64  `json:"lat" binding:"gte=-90,lte=90"`
	Lng         float64  `json:"lng" binding:"gte=-180,lte=180"`
	Description string   `json:"description"`
	Fee         *float64 `json:"fee" binding:"required,gte=0"`
	Schedule    string   `json:"schedule" binding:"required"`
}

// Input converts the form for the store.
func (f CoachingCenterForm) Input() services.CoachingCenterInput {
	in := services.CoachingCenterInput{
		Name:        strings.TrimSpace(f.Name),
		Specialty:   f.Specialty,
		Location:    f.Location,
		Lat:         f.Lat,
		Lng:         f.Lng,
		Description: f.Description,
		Schedule:    f.Schedule,
	}
	if f.Fee != nil {
		in.Fee = *f.Fee
	}
	return in
}

// AssessmentForm records a life-skills assessment.
type AssessmentForm struct {
	ChildID       string `json:"childId" binding:"required"`
	Date          string `json:"date" binding:"required,isodate"`
	Type          string `json:"type" binding:"required,assessmenttype"`
	Teamwork      int    `json:"teamwork" binding:"required,min=1,max=10"`
	Confidence    int    `json:"confidence" binding:"required,min=1,max=10"`
	Communication int    `json:"communication" binding:"required,min=1,max=10"`
}

// Input converts the form for the store.
func (f AssessmentForm) Input() (services.AssessmentInput, error) {
	date, err := models.ParseDate(f.Date)
	if err != nil {
		return services.AssessmentInput{}, err
	}
	return services.AssessmentInput{
		ChildID: models.ChildID(f.ChildID),
		Date:    date,
		Type:    models.AssessmentType(f.Type),
		Score: models.Score{
			Teamwork:      f.Teamwork,
			Confidence:    f.Confidence,
			Communication: f.Communication,
		},
	}, nil
}

// HomeVisitForm records a home visit.
type HomeVisitForm struct {
	ChildID string `json:"childId" binding:"required"`
	Date    string `json:"date" binding:"required,isodate"`
	Notes   string `json:"notes" binding:"required"`
}

// Input converts the form for the store.
func (f HomeVisitForm) Input() (services.HomeVisitInput, error) {
	date, err := models.ParseDate(f.Date)
	if err != nil {
		return services.HomeVisitInput{}, err
	}
	return services.HomeVisitInput{
		ChildID: models.ChildID(f.ChildID),
		Date:    date,
		Notes:   f.Notes,
	}, nil
}

// AttendanceForm marks a child present at a session.
type AttendanceForm struct {
	ChildID string `json:"childId" binding:"required"`
}

// ParticipantForm registers a participant account.
type ParticipantForm struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// Input converts the form for the auth service.
func (f ParticipantForm) Input() services.ParticipantInput {
	return services.ParticipantInput{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Phone:    f.Phone,
		Location: f.Location,
	}
}

// OrganizerForm registers an organizer account.
type OrganizerForm struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	OrgName string `json:"orgName" binding:"required"`
}

// Input converts the form for the auth service.
func (f OrganizerForm) Input() services.OrganizerInput {
	return services.OrganizerInput{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		OrgName: strings.TrimSpace(f.OrgName),
	}
}

// CoachForm registers a coach account.
type CoachForm struct {
	Name        string   `json:"name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Communities []string `json:"communities" binding:"required,min=1,dive,required"`
}

// Input converts the form for the auth service.
func (f CoachForm) Input() services.CoachInput {
	return services.CoachInput{
		Name:        strings.TrimSpace(f.Name),
		Email:       strings.TrimSpace(f.Email),
		Communities: f.Communities,
	}
}

// ScanForm submits a decoded QR payload from a scanner station. An empty payload is a
// failed check-in, not a validation error.
type ScanForm struct {
	Payload string `json:"payload"`
	Station string `json:"station"`
}

// ImageForm adds a photo to an event album.
type ImageForm struct {
	URL     string `json:"url" binding:"required,url"`
	Caption string `json:"caption"`
}
