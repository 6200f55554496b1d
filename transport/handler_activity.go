package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/farm-portal/constant"
	"github.com/muhammadheryan/farm-portal/model"
)

// ListVeterinarianRecords handler
// @Summary Health records written by a veterinarian
// @Description Open to the veterinarian and to admins
// @Tags Veterinarians
// @Produce json
// @Security BearerAuth
// @Param id path string true "Veterinarian ID"
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} Response{data=model.HealthRecordListResponse}
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /veterinarians/{id}/health-records [get]
func (s *RestHandler) ListVeterinarianRecords(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	page, err := pageRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AnimalApp.ListVeterinarianRecords(r.Context(), actor, mux.Vars(r)["id"], page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// VeterinarianSchedule handler
// @Summary Upcoming checkups of a veterinarian's animals
// @Description Defaults to today through thirty days from today
// @Tags Veterinarians
// @Produce json
// @Security BearerAuth
// @Param id path string true "Veterinarian ID"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Success 200 {object} Response{data=model.ScheduleResponse}
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /veterinarians/{id}/schedule [get]
func (s *RestHandler) VeterinarianSchedule(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	start, err := queryDate(r, "start_date")
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := queryDate(r, "end_date")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AnimalApp.VeterinarianSchedule(r.Context(), actor, mux.Vars(r)["id"], &model.ScheduleRequest{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// VeterinarianDashboard handler
// @Summary Veterinarian dashboard
// @Tags Veterinarians
// @Produce json
// @Security BearerAuth
// @Param id path string true "Veterinarian ID"
// @Success 200 {object} Response{data=model.DashboardResponse}
// @Failure 403 {object} Response
// @Router /veterinarians/{id}/dashboard [get]
func (s *RestHandler) VeterinarianDashboard(w http.ResponseWriter, r *http.Request) {
	s.dashboard(w, r, constant.RoleVeterinarian)
}

// FarmerDashboard handler
// @Summary Farmer dashboard
// @Tags Farmers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Farmer ID"
// @Success 200 {object} Response{data=model.DashboardResponse}
// @Failure 403 {object} Response
// @Router /farmers/{id}/dashboard [get]
func (s *RestHandler) FarmerDashboard(w http.ResponseWriter, r *http.Request) {
	s.dashboard(w, r, constant.RoleFarmer)
}

func (s *RestHandler) dashboard(w http.ResponseWriter, r *http.Request, role constant.Role) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AnimalApp.Dashboard(r.Context(), actor, role, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
