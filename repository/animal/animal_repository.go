package animal

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	"github.com/muhammadheryan/farm-portal/repository"
)

type SQL struct {
	conn *sqlx.DB
}

type AnimalRepository interface {
	Create(ctx context.Context, animal *model.AnimalEntity) error
	TagExists(ctx context.Context, farmerID, tagID string) (bool, error)
	Get(ctx context.Context, id string, includeInactive bool) (*model.AnimalEntity, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.AnimalEntity, error)
	List(ctx context.Context, filter *model.AnimalFilter) ([]model.AnimalEntity, int64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, animal *model.AnimalEntity) error
	AssignVeterinarianTx(ctx context.Context, tx *sqlx.Tx, animalID, veterinarianID string) error
	UpdateHealthStatusTx(ctx context.Context, tx *sqlx.Tx, animalID string, status constant.HealthStatus, checkupDate time.Time) error
	SoftDeleteTx(ctx context.Context, tx *sqlx.Tx, animalID string, at time.Time) error
	SoftDeleteByFarmerTx(ctx context.Context, tx *sqlx.Tx, farmerID string, at time.Time) (int64, error)
	UnassignVeterinarianTx(ctx context.Context, tx *sqlx.Tx, veterinarianID string) (int64, error)
	Summary(ctx context.Context, scope model.AnimalScope, now time.Time) (*model.AnimalSummary, error)
}

func NewAnimalRepository(conn *sqlx.DB) AnimalRepository {
	return &SQL{conn: conn}
}

const (
	animalColumns = `id, tag_id, name, species, breed, gender, birth_date, age_months, weight_kg, color,
		health_status, production_status, farmer_id, veterinarian_id, vaccination_status, last_checkup_date,
		notes, is_active, deleted_at, created_at, updated_at`

	insertAnimalQuery = `INSERT INTO animals (id, tag_id, name, species, breed, gender, birth_date, age_months,
		weight_kg, color, health_status, production_status, farmer_id, veterinarian_id, vaccination_status,
		notes, is_active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	tagExistsQuery = `SELECT EXISTS(SELECT 1 FROM animals WHERE farmer_id = ? AND tag_id = ? AND is_active = 1)`
	getAnimalBase  = `SELECT ` + animalColumns + ` FROM animals WHERE id = ?`

	updateAnimalQuery = `UPDATE animals SET name = ?, breed = ?, weight_kg = ?, age_months = ?, color = ?,
		health_status = ?, production_status = ?, vaccination_status = ?, notes = ?, updated_at = NOW()
		WHERE id = ?`
	assignVeterinarianQuery = `UPDATE animals SET veterinarian_id = ?, updated_at = NOW() WHERE id = ?`
	updateHealthStatusQuery = `UPDATE animals SET health_status = ?, last_checkup_date = ?, updated_at = NOW()
		WHERE id = ?`
	softDeleteAnimalQuery = `UPDATE animals SET is_active = 0, deleted_at = ?, updated_at = NOW()
		WHERE id = ? AND is_active = 1`
	softDeleteByFarmerQuery = `UPDATE animals SET is_active = 0, deleted_at = ?, updated_at = NOW()
		WHERE farmer_id = ? AND is_active = 1`
	unassignVeterinarianQuery = `UPDATE animals SET veterinarian_id = NULL, updated_at = NOW()
		WHERE veterinarian_id = ?`
)

func (s *SQL) Create(ctx context.Context, a *model.AnimalEntity) error {
	_, err := s.conn.ExecContext(ctx, insertAnimalQuery,
		a.ID, a.TagID, a.Name, a.Species, a.Breed, a.Gender, a.BirthDate, a.AgeMonths,
		a.WeightKg, a.Color, a.HealthStatus, a.ProductionStatus, a.FarmerID, a.VeterinarianID,
		a.VaccinationStatus, a.Notes, a.IsActive, a.CreatedAt)
	return repository.TranslateError(err)
}

func (s *SQL) TagExists(ctx context.Context, farmerID, tagID string) (bool, error) {
	var exists bool
	if err := s.conn.GetContext(ctx, &exists, tagExistsQuery, farmerID, tagID); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQL) Get(ctx context.Context, id string, includeInactive bool) (*model.AnimalEntity, error) {
	query := getAnimalBase
	if !includeInactive {
		query += " AND is_active = 1"
	}

	var entity model.AnimalEntity
	if err := s.conn.GetContext(ctx, &entity, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetForUpdateTx locks the row, active or not, until the transaction ends.
func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (*model.AnimalEntity, error) {
	var entity model.AnimalEntity
	if err := tx.GetContext(ctx, &entity, getAnimalBase+" FOR UPDATE", id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// buildAnimalWhere emits the caller scope first, then the user supplied filters.
func buildAnimalWhere(filter *model.AnimalFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Scope.FarmerID != "" {
		conds = append(conds, "farmer_id = ?")
		args = append(args, filter.Scope.FarmerID)
	}
	if filter.Scope.VeterinarianID != "" {
		conds = append(conds, "veterinarian_id = ?")
		args = append(args, filter.Scope.VeterinarianID)
	}

	if !filter.IncludeInactive {
		conds = append(conds, "is_active = 1")
	}
	if filter.FarmerID != "" {
		conds = append(conds, "farmer_id = ?")
		args = append(args, filter.FarmerID)
	}
	if filter.VeterinarianID != "" {
		conds = append(conds, "veterinarian_id = ?")
		args = append(args, filter.VeterinarianID)
	}
	if filter.Species != "" {
		conds = append(conds, "species = ?")
		args = append(args, filter.Species)
	}
	if filter.HealthStatus != "" {
		conds = append(conds, "health_status = ?")
		args = append(args, filter.HealthStatus)
	}
	if filter.ProductionStatus != "" {
		conds = append(conds, "production_status = ?")
		args = append(args, filter.ProductionStatus)
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		like := "%" + term + "%"
		conds = append(conds, "(tag_id LIKE ? OR name LIKE ?)")
		args = append(args, like, like)
	}

	where := " WHERE true"
	for _, c := range conds {
		where += " AND " + c
	}
	return where, args
}

func (s *SQL) List(ctx context.Context, filter *model.AnimalFilter) ([]model.AnimalEntity, int64, error) {
	where, args := buildAnimalWhere(filter)

	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM animals"+where, args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + animalColumns + " FROM animals" + where + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	listArgs := append(append([]any{}, args...), filter.PerPage, filter.Offset())

	items := make([]model.AnimalEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query, listArgs...); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, a *model.AnimalEntity) error {
	_, err := tx.ExecContext(ctx, updateAnimalQuery,
		a.Name, a.Breed, a.WeightKg, a.AgeMonths, a.Color, a.HealthStatus, a.ProductionStatus,
		a.VaccinationStatus, a.Notes, a.ID)
	return err
}

func (s *SQL) AssignVeterinarianTx(ctx context.Context, tx *sqlx.Tx, animalID, veterinarianID string) error {
	_, err := tx.ExecContext(ctx, assignVeterinarianQuery, veterinarianID, animalID)
	return err
}

func (s *SQL) UpdateHealthStatusTx(ctx context.Context, tx *sqlx.Tx, animalID string, status constant.HealthStatus, checkupDate time.Time) error {
	_, err := tx.ExecContext(ctx, updateHealthStatusQuery, status, checkupDate, animalID)
	return err
}

func (s *SQL) SoftDeleteTx(ctx context.Context, tx *sqlx.Tx, animalID string, at time.Time) error {
	_, err := tx.ExecContext(ctx, softDeleteAnimalQuery, at, animalID)
	return err
}

func (s *SQL) SoftDeleteByFarmerTx(ctx context.Context, tx *sqlx.Tx, farmerID string, at time.Time) (int64, error) {
	res, err := tx.ExecContext(ctx, softDeleteByFarmerQuery, at, farmerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) UnassignVeterinarianTx(ctx context.Context, tx *sqlx.Tx, veterinarianID string) (int64, error) {
	res, err := tx.ExecContext(ctx, unassignVeterinarianQuery, veterinarianID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) Summary(ctx context.Context, scope model.AnimalScope, now time.Time) (*model.AnimalSummary, error) {
	where, args := buildAnimalWhere(&model.AnimalFilter{Scope: scope})

	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM animals"+where, args...); err != nil {
		return nil, err
	}

	bySpecies, err := s.groupCounts(ctx, "species", where, args)
	if err != nil {
		return nil, err
	}
	byHealth, err := s.groupCounts(ctx, "health_status", where, args)
	if err != nil {
		return nil, err
	}
	byProduction, err := s.groupCounts(ctx, "production_status", where, args)
	if err != nil {
		return nil, err
	}

	overdue := now.AddDate(0, 0, -constant.CheckupOverdueDays)
	attentionQuery := "SELECT COUNT(*) FROM animals" + where +
		" AND (health_status IN (?, ?, ?) OR last_checkup_date IS NULL OR last_checkup_date < ?)"
	attentionArgs := append(append([]any{}, args...),
		constant.HealthStatusSick, constant.HealthStatusUnderTreatment, constant.HealthStatusQuarantine, overdue)

	var attention int64
	if err := s.conn.GetContext(ctx, &attention, attentionQuery, attentionArgs...); err != nil {
		return nil, err
	}

	return &model.AnimalSummary{
		Total:               total,
		BySpecies:           bySpecies,
		ByHealthStatus:      byHealth,
		ByProductionStatus:  byProduction,
		NeedsAttentionCount: attention,
	}, nil
}

// groupCounts only receives fixed column names from Summary.
func (s *SQL) groupCounts(ctx context.Context, column, where string, args []any) (map[string]int64, error) {
	query := "SELECT " + column + " AS k, COUNT(*) AS c FROM animals" + where + " GROUP BY " + column

	var rows []model.GroupCount
	if err := s.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		if r.Key != nil {
			out[*r.Key] = r.Count
		}
	}
	return out, nil
}
