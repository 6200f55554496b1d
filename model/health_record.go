package model

import (
	"time"

	"github.com/muhammadheryan/farm-portal/constant"
)

// HealthRecordEntity represents the health_records table entity
type HealthRecordEntity struct {
	ID               string                 `db:"id" json:"id"`
	AnimalID         string                 `db:"animal_id" json:"animal_id"`
	RecordedByID     string                 `db:"recorded_by_id" json:"recorded_by_id"`
	CheckupDate      time.Time              `db:"checkup_date" json:"checkup_date"`
	Temperature      *float64               `db:"temperature" json:"temperature,omitempty"`
	WeightKg         *float64               `db:"weight_kg" json:"weight_kg,omitempty"`
	HeartRate        *int                   `db:"heart_rate" json:"heart_rate,omitempty"`
	RespiratoryRate  *int                   `db:"respiratory_rate" json:"respiratory_rate,omitempty"`
	Symptoms         *string                `db:"symptoms" json:"symptoms,omitempty"`
	Diagnosis        *string                `db:"diagnosis" json:"diagnosis,omitempty"`
	TreatmentGiven   *string                `db:"treatment_given" json:"treatment_given,omitempty"`
	NextCheckupDate  *time.Time             `db:"next_checkup_date" json:"next_checkup_date,omitempty"`
	Recommendations  *string                `db:"recommendations" json:"recommendations,omitempty"`
	OverallCondition *constant.HealthStatus `db:"overall_condition" json:"overall_condition,omitempty"`
	Notes            *string                `db:"notes" json:"notes,omitempty"`
	IsActive         bool                   `db:"is_active" json:"is_active"`
	CreatedAt        time.Time              `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time             `db:"updated_at" json:"updated_at,omitempty"`
}

type CreateHealthRecordRequest struct {
	CheckupDate      *Date    `json:"checkup_date,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty" validate:"omitempty,gt=0"`
	WeightKg         *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0"`
	HeartRate        *int     `json:"heart_rate,omitempty" validate:"omitempty,gt=0"`
	RespiratoryRate  *int     `json:"respiratory_rate,omitempty" validate:"omitempty,gt=0"`
	Symptoms         *string  `json:"symptoms,omitempty"`
	Diagnosis        *string  `json:"diagnosis,omitempty"`
	TreatmentGiven   *string  `json:"treatment_given,omitempty"`
	NextCheckupDate  *Date    `json:"next_checkup_date,omitempty"`
	Recommendations  *string  `json:"recommendations,omitempty"`
	OverallCondition string   `json:"overall_condition,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

type HealthRecordResponse struct {
	Record *HealthRecordEntity `json:"record"`
	Animal *AnimalResponse     `json:"animal"`
}

type HealthRecordListResponse struct {
	Items      []HealthRecordEntity `json:"items"`
	Pagination Pagination           `json:"pagination"`
}

// CheckupFilter selects upcoming checkups by next_checkup_date. A zero To
// leaves the range open ended; Limit 0 returns every match.
type CheckupFilter struct {
	Scope AnimalScope
	From  time.Time
	To    time.Time
	Limit int
}

// ScheduledCheckup is a next_checkup_date of an active animal together with
// the owner's contact details.
type ScheduledCheckup struct {
	RecordID        string                `db:"record_id" json:"record_id"`
	Date            time.Time             `db:"next_checkup_date" json:"date"`
	LastCheckupDate time.Time             `db:"last_checkup_date" json:"last_checkup_date"`
	Notes           *string               `db:"notes" json:"notes,omitempty"`
	AnimalID        string                `db:"animal_id" json:"animal_id"`
	TagID           string                `db:"tag_id" json:"tag_id"`
	AnimalName      *string               `db:"animal_name" json:"animal_name,omitempty"`
	Species         constant.Species      `db:"species" json:"species"`
	HealthStatus    constant.HealthStatus `db:"health_status" json:"health_status"`
	FarmerID        string                `db:"farmer_id" json:"farmer_id"`
	FarmerName      string                `db:"farmer_name" json:"farmer_name"`
	FarmerPhone     string                `db:"farmer_phone" json:"farmer_phone"`
	FarmerEmail     string                `db:"farmer_email" json:"farmer_email"`
}

// ScheduleRequest bounds a veterinarian schedule. Missing dates default to
// today and today plus the configured window.
type ScheduleRequest struct {
	StartDate *Date
	EndDate   *Date
}

type ScheduleResponse struct {
	VeterinarianID    string             `json:"veterinarian_id"`
	StartDate         Date               `json:"start_date"`
	EndDate           Date               `json:"end_date"`
	Items             []ScheduledCheckup `json:"items"`
	TotalAppointments int                `json:"total_appointments"`
}

type DashboardResponse struct {
	User                *UserProfile         `json:"user"`
	Summary             *AnimalSummary       `json:"summary"`
	RecentHealthRecords []HealthRecordEntity `json:"recent_health_records"`
	UpcomingCheckups    []ScheduledCheckup   `json:"upcoming_checkups"`
}
