package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/farm-portal/cmd/config"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
	txRepo "github.com/muhammadheryan/farm-portal/repository/tx"
	userRepo "github.com/muhammadheryan/farm-portal/repository/user"
	"github.com/muhammadheryan/farm-portal/utils/logger"
	validatorx "github.com/muhammadheryan/farm-portal/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type adminSeed struct {
	Name       string
	Email      string
	Phone      string
	Password   string
	EmployeeID string
}

func (a adminSeed) validate() error {
	if strings.TrimSpace(a.Name) == "" || strings.TrimSpace(a.EmployeeID) == "" {
		return fmt.Errorf("name and employee id are required")
	}
	if !validatorx.IsValidEmail(a.Email) {
		return fmt.Errorf("invalid email %q", a.Email)
	}
	if !validatorx.IsValidPhone(validatorx.NormalizePhone(a.Phone)) {
		return fmt.Errorf("invalid phone %q", a.Phone)
	}
	if issues := validatorx.PasswordIssues(a.Password); len(issues) > 0 {
		return fmt.Errorf("weak password: %s", strings.Join(issues, ", "))
	}
	return nil
}

// ensureAdmin creates the first administrator, already active and verified,
// unless an admin account exists. It reports whether one was created.
func ensureAdmin(ctx context.Context, tx txRepo.TxRepository, users userRepo.UserRepository, seed adminSeed, now time.Time) (bool, error) {
	existing, _, err := users.List(ctx, &model.UserListFilter{
		Role:            constant.RoleAdmin,
		IncludeInactive: true,
		PageRequest:     model.PageRequest{Page: 1, PerPage: 1},
	})
	if err != nil {
		return false, fmt.Errorf("list admins: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	if err := seed.validate(); err != nil {
		return false, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	id := uuid.NewString()
	account := &model.Account{
		User: model.UserEntity{
			ID:            id,
			Name:          strings.TrimSpace(seed.Name),
			Email:         strings.ToLower(strings.TrimSpace(seed.Email)),
			Phone:         validatorx.NormalizePhone(seed.Phone),
			PasswordHash:  string(hash),
			Role:          constant.RoleAdmin,
			Status:        constant.UserStatusActive,
			EmailVerified: true,
			PhoneVerified: true,
			IsActive:      true,
			CreatedAt:     now,
		},
		Profile: &model.AdminProfile{
			UserID:      id,
			EmployeeID:  seed.EmployeeID,
			Permissions: model.Permissions{constant.PermissionAll},
		},
	}

	t, err := tx.BeginTx(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.RollbackTx(t)
		}
	}()

	if err := users.CreateTx(ctx, t, account); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	if err := tx.CommitTx(t); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	committed = true
	return true, nil
}

func main() {
	var seed adminSeed
	flag.StringVar(&seed.Name, "name", "System Administrator", "admin display name")
	flag.StringVar(&seed.Email, "email", "admin@farmportal.local", "admin email")
	flag.StringVar(&seed.Phone, "phone", "9876543210", "admin mobile number")
	flag.StringVar(&seed.Password, "password", "", "admin password")
	flag.StringVar(&seed.EmployeeID, "employee-id", "ADM001", "admin employee id")
	flag.Parse()

	cfg := config.Load()
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := ensureAdmin(ctx, txRepo.NewTxRepository(db), userRepo.NewUserRepository(db), seed, time.Now().UTC())
	if err != nil {
		logger.Fatal("err seed admin", zap.Error(err))
	}
	if !created {
		logger.Info("admin account already present, nothing to do")
		return
	}
	logger.Info("admin account created", zap.String("email", seed.Email))
}
