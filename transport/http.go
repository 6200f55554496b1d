package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	animalapp "github.com/muhammadheryan/farm-portal/application/animal"
	userapp "github.com/muhammadheryan/farm-portal/application/user"
	"github.com/muhammadheryan/farm-portal/cmd/config"
	redisrepo "github.com/muhammadheryan/farm-portal/repository/redis"
	"github.com/muhammadheryan/farm-portal/utils/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp   userapp.UserApp
	AnimalApp animalapp.AnimalApp
}

func NewTransport(cfg *config.Config, UserApp userapp.UserApp, AnimalApp animalapp.AnimalApp, RedisRepo redisrepo.Repository, m *metrics.Metrics) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:   UserApp,
		AnimalApp: AnimalApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.HandleFunc("/health", rh.Health).Methods(http.MethodGet)

	// internal routes
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(cfg.Auth.InternalAPIKey))
	internal.Handle("/metrics", m.Handler()).Methods(http.MethodGet)

	// Public routes
	mux.HandleFunc("/auth/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/auth/verify", rh.VerifyAccount).Methods(http.MethodPost)
	mux.HandleFunc("/auth/resend-verification", rh.ResendVerification).Methods(http.MethodPost)
	mux.HandleFunc("/auth/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/auth/refresh", rh.RefreshToken).Methods(http.MethodPost)
	mux.HandleFunc("/auth/forgot-password", rh.ForgotPassword).Methods(http.MethodPost)
	mux.HandleFunc("/auth/reset-password", rh.ResetPassword).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/auth/logout", rh.Logout).Methods(http.MethodPost)
	mux.HandleFunc("/auth/change-password", rh.ChangePassword).Methods(http.MethodPost)

	mux.HandleFunc("/users/me", rh.GetMe).Methods(http.MethodGet)
	mux.HandleFunc("/users/me", rh.UpdateMe).Methods(http.MethodPut)
	mux.HandleFunc("/users/me", rh.DeactivateMe).Methods(http.MethodDelete)
	mux.HandleFunc("/users/{id}", rh.GetUser).Methods(http.MethodGet)
	mux.HandleFunc("/users/{id}", rh.UpdateUser).Methods(http.MethodPut)
	mux.HandleFunc("/veterinarians", rh.ListVeterinarians).Methods(http.MethodGet)
	mux.HandleFunc("/veterinarians/{id}/health-records", rh.ListVeterinarianRecords).Methods(http.MethodGet)
	mux.HandleFunc("/veterinarians/{id}/schedule", rh.VeterinarianSchedule).Methods(http.MethodGet)
	mux.HandleFunc("/veterinarians/{id}/dashboard", rh.VeterinarianDashboard).Methods(http.MethodGet)
	mux.HandleFunc("/farmers/{id}/dashboard", rh.FarmerDashboard).Methods(http.MethodGet)

	mux.HandleFunc("/admin/users", rh.RegisterByAdmin).Methods(http.MethodPost)
	mux.HandleFunc("/admin/users", rh.ListUsers).Methods(http.MethodGet)
	mux.HandleFunc("/admin/users/stats", rh.UserStats).Methods(http.MethodGet)
	mux.HandleFunc("/admin/users/{id}/status", rh.UpdateUserStatus).Methods(http.MethodPatch)
	mux.HandleFunc("/admin/users/{id}/reactivate", rh.ReactivateUser).Methods(http.MethodPost)
	mux.HandleFunc("/admin/users/{id}", rh.DeactivateUser).Methods(http.MethodDelete)

	mux.HandleFunc("/animals", rh.CreateAnimal).Methods(http.MethodPost)
	mux.HandleFunc("/animals", rh.SearchAnimals).Methods(http.MethodGet)
	mux.HandleFunc("/animals/summary", rh.AnimalSummary).Methods(http.MethodGet)
	mux.HandleFunc("/animals/{id}", rh.GetAnimal).Methods(http.MethodGet)
	mux.HandleFunc("/animals/{id}", rh.UpdateAnimal).Methods(http.MethodPut)
	mux.HandleFunc("/animals/{id}", rh.DeactivateAnimal).Methods(http.MethodDelete)
	mux.HandleFunc("/animals/{id}/veterinarian", rh.AssignVeterinarian).Methods(http.MethodPut)
	mux.HandleFunc("/animals/{id}/health-records", rh.CreateHealthRecord).Methods(http.MethodPost)
	mux.HandleFunc("/animals/{id}/health-records", rh.ListHealthRecords).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware(m))
	mux.Use(RateLimitMiddleware(cfg.RateLimit, RedisRepo))
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Health handler
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccessMessage(w, "ok", nil)
}
