package constant

type Species string

const (
	SpeciesCattle  Species = "cattle"
	SpeciesBuffalo Species = "buffalo"
	SpeciesGoat    Species = "goat"
	SpeciesSheep   Species = "sheep"
	SpeciesPoultry Species = "poultry"
	SpeciesSwine   Species = "swine"
	SpeciesOther   Species = "other"
)

var SpeciesValues = []Species{SpeciesCattle, SpeciesBuffalo, SpeciesGoat, SpeciesSheep, SpeciesPoultry, SpeciesSwine, SpeciesOther}

func ParseSpecies(s string) (Species, bool) { return parseEnum(s, SpeciesValues) }

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

var Genders = []Gender{GenderMale, GenderFemale}

func ParseGender(s string) (Gender, bool) { return parseEnum(s, Genders) }

type HealthStatus string

const (
	HealthStatusHealthy        HealthStatus = "healthy"
	HealthStatusSick           HealthStatus = "sick"
	HealthStatusUnderTreatment HealthStatus = "under_treatment"
	HealthStatusRecovering     HealthStatus = "recovering"
	HealthStatusQuarantine     HealthStatus = "quarantine"
	HealthStatusDeceased       HealthStatus = "deceased"
)

var HealthStatuses = []HealthStatus{
	HealthStatusHealthy,
	HealthStatusSick,
	HealthStatusUnderTreatment,
	HealthStatusRecovering,
	HealthStatusQuarantine,
	HealthStatusDeceased,
}

func ParseHealthStatus(s string) (HealthStatus, bool) { return parseEnum(s, HealthStatuses) }

type ProductionStatus string

const (
	ProductionStatusActive    ProductionStatus = "active"
	ProductionStatusDry       ProductionStatus = "dry"
	ProductionStatusPregnant  ProductionStatus = "pregnant"
	ProductionStatusLactating ProductionStatus = "lactating"
	ProductionStatusBreeding  ProductionStatus = "breeding"
	ProductionStatusRetired   ProductionStatus = "retired"
)

var ProductionStatuses = []ProductionStatus{
	ProductionStatusActive,
	ProductionStatusDry,
	ProductionStatusPregnant,
	ProductionStatusLactating,
	ProductionStatusBreeding,
	ProductionStatusRetired,
}

func ParseProductionStatus(s string) (ProductionStatus, bool) {
	return parseEnum(s, ProductionStatuses)
}

// CheckupOverdueDays is the age after which an animal without a checkup needs attention.
const CheckupOverdueDays = 90
