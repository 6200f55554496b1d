package model

import (
	"time"

	"github.com/muhammadheryan/farm-portal/constant"
)

// AnimalEntity represents the animals table entity
type AnimalEntity struct {
	ID                string                     `db:"id" json:"id"`
	TagID             string                     `db:"tag_id" json:"tag_id"`
	Name              *string                    `db:"name" json:"name,omitempty"`
	Species           constant.Species           `db:"species" json:"species"`
	Breed             *string                    `db:"breed" json:"breed,omitempty"`
	Gender            constant.Gender            `db:"gender" json:"gender"`
	BirthDate         *time.Time                 `db:"birth_date" json:"birth_date,omitempty"`
	AgeMonths         *int                       `db:"age_months" json:"age_months,omitempty"`
	WeightKg          *float64                   `db:"weight_kg" json:"weight_kg,omitempty"`
	Color             *string                    `db:"color" json:"color,omitempty"`
	HealthStatus      constant.HealthStatus      `db:"health_status" json:"health_status"`
	ProductionStatus  *constant.ProductionStatus `db:"production_status" json:"production_status,omitempty"`
	FarmerID          string                     `db:"farmer_id" json:"farmer_id"`
	VeterinarianID    *string                    `db:"veterinarian_id" json:"veterinarian_id,omitempty"`
	VaccinationStatus *string                    `db:"vaccination_status" json:"vaccination_status,omitempty"`
	LastCheckupDate   *time.Time                 `db:"last_checkup_date" json:"last_checkup_date,omitempty"`
	Notes             *string                    `db:"notes" json:"notes,omitempty"`
	IsActive          bool                       `db:"is_active" json:"is_active"`
	DeletedAt         *time.Time                 `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt         time.Time                  `db:"created_at" json:"created_at"`
	UpdatedAt         *time.Time                 `db:"updated_at" json:"updated_at,omitempty"`
}

// AgeYears prefers the birth date and falls back to the recorded age in months.
func (a *AnimalEntity) AgeYears(now time.Time) *float64 {
	var years float64
	switch {
	case a.BirthDate != nil:
		years = now.Sub(*a.BirthDate).Hours() / 24 / 365.25
	case a.AgeMonths != nil:
		years = float64(*a.AgeMonths) / 12
	default:
		return nil
	}
	rounded := float64(int(years*10+0.5)) / 10
	return &rounded
}

func (a *AnimalEntity) IsProductive() bool {
	if a.ProductionStatus == nil {
		return false
	}
	switch *a.ProductionStatus {
	case constant.ProductionStatusActive, constant.ProductionStatusLactating, constant.ProductionStatusBreeding:
		return true
	}
	return false
}

func (a *AnimalEntity) DaysSinceCheckup(now time.Time) *int {
	if a.LastCheckupDate == nil {
		return nil
	}
	days := int(now.Sub(*a.LastCheckupDate).Hours() / 24)
	return &days
}

// NeedsAttention flags unwell animals and those overdue for a checkup.
func (a *AnimalEntity) NeedsAttention(now time.Time) bool {
	switch a.HealthStatus {
	case constant.HealthStatusSick, constant.HealthStatusUnderTreatment, constant.HealthStatusQuarantine:
		return true
	}
	days := a.DaysSinceCheckup(now)
	return days == nil || *days > constant.CheckupOverdueDays
}

// AnimalScope is the row-level predicate derived from the caller's role.
// Empty fields mean unrestricted.
type AnimalScope struct {
	FarmerID       string
	VeterinarianID string
}

// AnimalFilter is a list query. Scope is always applied before the other predicates.
type AnimalFilter struct {
	Scope            AnimalScope
	FarmerID         string
	VeterinarianID   string
	Species          constant.Species
	HealthStatus     constant.HealthStatus
	ProductionStatus constant.ProductionStatus
	Search           string
	IncludeInactive  bool
	PageRequest
}

type AnimalSearchRequest struct {
	FarmerID         string `json:"farmer_id"`
	VeterinarianID   string `json:"veterinarian_id"`
	Species          string `json:"species"`
	HealthStatus     string `json:"health_status"`
	ProductionStatus string `json:"production_status"`
	Search           string `json:"search"`
	IncludeInactive  bool   `json:"include_inactive"`
	PageRequest
}

type CreateAnimalRequest struct {
	TagID             string   `json:"tag_id" validate:"required,notblank"`
	Species           string   `json:"species" validate:"required,notblank"`
	Gender            string   `json:"gender" validate:"required,notblank"`
	FarmerID          string   `json:"farmer_id,omitempty"`
	Name              *string  `json:"name,omitempty"`
	Breed             *string  `json:"breed,omitempty"`
	BirthDate         *Date    `json:"birth_date,omitempty"`
	AgeMonths         *int     `json:"age_months,omitempty" validate:"omitempty,min=0"`
	WeightKg          *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0"`
	Color             *string  `json:"color,omitempty"`
	HealthStatus      string   `json:"health_status,omitempty"`
	ProductionStatus  string   `json:"production_status,omitempty"`
	VaccinationStatus *string  `json:"vaccination_status,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

// UpdateAnimalRequest lists the editable animal fields. Ownership and tag are immutable.
type UpdateAnimalRequest struct {
	Name              *string  `json:"name,omitempty"`
	Breed             *string  `json:"breed,omitempty"`
	WeightKg          *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0"`
	AgeMonths         *int     `json:"age_months,omitempty" validate:"omitempty,min=0"`
	Color             *string  `json:"color,omitempty"`
	HealthStatus      *string  `json:"health_status,omitempty"`
	ProductionStatus  *string  `json:"production_status,omitempty"`
	VaccinationStatus *string  `json:"vaccination_status,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

type AssignVeterinarianRequest struct {
	VeterinarianID string `json:"veterinarian_id" validate:"required,notblank"`
}

type AnimalResponse struct {
	AnimalEntity
	AgeYears         *float64 `json:"age_years,omitempty"`
	IsProductive     bool     `json:"is_productive"`
	NeedsAttention   bool     `json:"needs_attention"`
	DaysSinceCheckup *int     `json:"days_since_checkup,omitempty"`
}

func NewAnimalResponse(a *AnimalEntity, now time.Time) *AnimalResponse {
	return &AnimalResponse{
		AnimalEntity:     *a,
		AgeYears:         a.AgeYears(now),
		IsProductive:     a.IsProductive(),
		NeedsAttention:   a.NeedsAttention(now),
		DaysSinceCheckup: a.DaysSinceCheckup(now),
	}
}

type AnimalListResponse struct {
	Items      []AnimalResponse `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

type AnimalSummary struct {
	Total               int64            `json:"total"`
	BySpecies           map[string]int64 `json:"by_species"`
	ByHealthStatus      map[string]int64 `json:"by_health_status"`
	ByProductionStatus  map[string]int64 `json:"by_production_status"`
	NeedsAttentionCount int64            `json:"needs_attention_count"`
}

// GroupCount is one row of a GROUP BY count query.
type GroupCount struct {
	Key   *string `db:"k"`
	Count int64   `db:"c"`
}
