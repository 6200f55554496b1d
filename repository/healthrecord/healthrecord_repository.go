package healthrecord

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/farm-portal/model"
)

type SQL struct {
	conn *sqlx.DB
}

type HealthRecordRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, record *model.HealthRecordEntity) error
	ListByAnimal(ctx context.Context, animalID string, page model.PageRequest) ([]model.HealthRecordEntity, int64, error)
	ListByRecorder(ctx context.Context, recorderID string, page model.PageRequest) ([]model.HealthRecordEntity, int64, error)
	ListRecentByFarmer(ctx context.Context, farmerID string, limit int) ([]model.HealthRecordEntity, error)
	ListScheduled(ctx context.Context, filter *model.CheckupFilter) ([]model.ScheduledCheckup, error)
}

func NewHealthRecordRepository(conn *sqlx.DB) HealthRecordRepository {
	return &SQL{conn: conn}
}

const (
	healthRecordColumns = `id, animal_id, recorded_by_id, checkup_date, temperature, weight_kg, heart_rate,
		respiratory_rate, symptoms, diagnosis, treatment_given, next_checkup_date, recommendations,
		overall_condition, notes, is_active, created_at, updated_at`

	insertHealthRecordQuery = `INSERT INTO health_records (id, animal_id, recorded_by_id, checkup_date, temperature,
		weight_kg, heart_rate, respiratory_rate, symptoms, diagnosis, treatment_given, next_checkup_date,
		recommendations, overall_condition, notes, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	countHealthRecordsQuery = `SELECT COUNT(*) FROM health_records WHERE animal_id = ? AND is_active = 1`
	listHealthRecordsQuery  = `SELECT ` + healthRecordColumns + ` FROM health_records
		WHERE animal_id = ? AND is_active = 1 ORDER BY checkup_date DESC, created_at DESC LIMIT ? OFFSET ?`

	countByRecorderQuery = `SELECT COUNT(*) FROM health_records WHERE recorded_by_id = ? AND is_active = 1`
	listByRecorderQuery  = `SELECT ` + healthRecordColumns + ` FROM health_records
		WHERE recorded_by_id = ? AND is_active = 1 ORDER BY created_at DESC LIMIT ? OFFSET ?`

	scheduledCheckupBase = `SELECT hr.id AS record_id, hr.next_checkup_date, hr.checkup_date AS last_checkup_date,
		COALESCE(hr.recommendations, hr.notes) AS notes, a.id AS animal_id, a.tag_id, a.name AS animal_name,
		a.species, a.health_status, u.id AS farmer_id, u.name AS farmer_name, u.phone AS farmer_phone,
		u.email AS farmer_email
		FROM health_records hr
		JOIN animals a ON a.id = hr.animal_id
		JOIN users u ON u.id = a.farmer_id
		WHERE hr.is_active = 1 AND a.is_active = 1`
)

var listRecentByFarmerQuery = `SELECT ` + qualify("hr", healthRecordColumns) + ` FROM health_records hr
	JOIN animals a ON a.id = hr.animal_id
	WHERE a.farmer_id = ? AND a.is_active = 1 AND hr.is_active = 1
	ORDER BY hr.created_at DESC LIMIT ?`

// qualify prefixes every column of a comma separated list with alias.
func qualify(alias, columns string) string {
	fields := strings.Split(columns, ",")
	for i, f := range fields {
		fields[i] = alias + "." + strings.TrimSpace(f)
	}
	return strings.Join(fields, ", ")
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, r *model.HealthRecordEntity) error {
	_, err := tx.ExecContext(ctx, insertHealthRecordQuery,
		r.ID, r.AnimalID, r.RecordedByID, r.CheckupDate, r.Temperature, r.WeightKg, r.HeartRate,
		r.RespiratoryRate, r.Symptoms, r.Diagnosis, r.TreatmentGiven, r.NextCheckupDate,
		r.Recommendations, r.OverallCondition, r.Notes, r.IsActive, r.CreatedAt)
	return err
}

// ListByAnimal returns the newest checkups first.
func (s *SQL) ListByAnimal(ctx context.Context, animalID string, page model.PageRequest) ([]model.HealthRecordEntity, int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, countHealthRecordsQuery, animalID); err != nil {
		return nil, 0, err
	}

	items := make([]model.HealthRecordEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listHealthRecordsQuery, animalID, page.PerPage, page.Offset()); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListByRecorder returns the records authored by recorderID, newest first.
func (s *SQL) ListByRecorder(ctx context.Context, recorderID string, page model.PageRequest) ([]model.HealthRecordEntity, int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, countByRecorderQuery, recorderID); err != nil {
		return nil, 0, err
	}

	items := make([]model.HealthRecordEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listByRecorderQuery, recorderID, page.PerPage, page.Offset()); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListRecentByFarmer returns the latest records of the farmer's active animals.
func (s *SQL) ListRecentByFarmer(ctx context.Context, farmerID string, limit int) ([]model.HealthRecordEntity, error) {
	items := make([]model.HealthRecordEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listRecentByFarmerQuery, farmerID, limit); err != nil {
		return nil, err
	}
	return items, nil
}

// ListScheduled returns next checkups of active animals in the scope,
// earliest first.
func (s *SQL) ListScheduled(ctx context.Context, filter *model.CheckupFilter) ([]model.ScheduledCheckup, error) {
	query, args := buildScheduledQuery(filter)

	items := make([]model.ScheduledCheckup, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func buildScheduledQuery(filter *model.CheckupFilter) (string, []any) {
	query := scheduledCheckupBase + " AND hr.next_checkup_date >= ?"
	args := []any{filter.From}

	if !filter.To.IsZero() {
		query += " AND hr.next_checkup_date <= ?"
		args = append(args, filter.To)
	}
	if filter.Scope.FarmerID != "" {
		query += " AND a.farmer_id = ?"
		args = append(args, filter.Scope.FarmerID)
	}
	if filter.Scope.VeterinarianID != "" {
		query += " AND a.veterinarian_id = ?"
		args = append(args, filter.Scope.VeterinarianID)
	}
	query += " ORDER BY hr.next_checkup_date ASC, a.tag_id ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}
	return query, args
}
