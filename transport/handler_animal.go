package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/farm-portal/model"
)

// CreateAnimal handler
// @Summary Register an animal
// @Description Farmers register for themselves; admins must name farmer_id
// @Tags Animals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateAnimalRequest true "Create Animal Request"
// @Success 201 {object} Response{data=model.AnimalResponse}
// @Failure 400 {object} Response
// @Failure 403 {object} Response
// @Router /animals [post]
func (s *RestHandler) CreateAnimal(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateAnimalRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AnimalApp.CreateAnimal(r.Context(), actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "animal registered", res)
}

// SearchAnimals handler
// @Summary Search visible animals
// @Description Results are limited to the caller's own or assigned animals unless the caller is an admin
// @Tags Animals
// @Produce json
// @Security BearerAuth
// @Param species query string false "Species"
// @Param health_status query string false "Health status"
// @Param production_status query string false "Production status"
// @Param search query string false "Tag or name fragment"
// @Param farmer_id query string false "Farmer ID"
// @Param veterinarian_id query string false "Veterinarian ID"
// @Param include_inactive query bool false "Include deactivated animals (admin only)"
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} Response{data=model.AnimalListResponse}
// @Router /animals [get]
func (s *RestHandler) SearchAnimals(w http.ResponseWriter, r *http.Request) {
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
	includeInactive, err := queryBool(r, "include_inactive")
	if err != nil {
		writeError(w, err)
		return
	}

	q := r.URL.Query()
	res, err := s.AnimalApp.SearchAnimals(r.Context(), actor, &model.AnimalSearchRequest{
		FarmerID:         q.Get("farmer_id"),
		VeterinarianID:   q.Get("veterinarian_id"),
		Species:          q.Get("species"),
		HealthStatus:     q.Get("health_status"),
		ProductionStatus: q.Get("production_status"),
		Search:           q.Get("search"),
		IncludeInactive:  includeInactive,
		PageRequest:      page,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AnimalSummary handler
// @Summary Herd counters for the caller's scope
// @Tags Animals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=model.AnimalSummary}
// @Router /animals/summary [get]
func (s *RestHandler) AnimalSummary(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AnimalApp.Summary(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetAnimal handler
// @Summary Animal by id
// @Tags Animals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Animal ID"
// @Success 200 {object} Response{data=model.AnimalResponse}
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /animals/{id} [get]
func (s *RestHandler) GetAnimal(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AnimalApp.GetAnimal(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateAnimal handler
// @Summary Update an animal
// @Tags Animals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Animal ID"
// @Param request body model.UpdateAnimalRequest true "Update Animal Request"
// @Success 200 {object} Response{data=model.AnimalResponse}
// @Failure 403 {object} Response
// @Router /animals/{id} [put]
func (s *RestHandler) UpdateAnimal(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateAnimalRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AnimalApp.UpdateAnimal(r.Context(), actor, mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessMessage(w, "animal updated", res)
}

// DeactivateAnimal handler
// @Summary Deactivate an animal
// @Tags Animals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Animal ID"
// @Success 200 {object} Response
// @Router /animals/{id} [delete]
func (s *RestHandler) DeactivateAnimal(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.AnimalApp.DeactivateAnimal(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccessMessage(w, "animal deactivated", nil)
}

// AssignVeterinarian handler
// @Summary Assign a veterinarian
// @Tags Animals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Animal ID"
// @Param request body model.AssignVeterinarianRequest true "Assign Veterinarian Request"
// @Success 200 {object} Response{data=model.AnimalResponse}
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /animals/{id}/veterinarian [put]
func (s *RestHandler) AssignVeterinarian(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AssignVeterinarianRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AnimalApp.AssignVeterinarian(r.Context(), actor, mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessMessage(w, "veterinarian assigned", res)
}

// CreateHealthRecord handler
// @Summary Record a checkup
// @Description Inserts the record and updates the animal's health status together
// @Tags Health Records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Animal ID"
// @Param request body model.CreateHealthRecordRequest true "Create Health Record Request"
// @Success 201 {object} Response{data=model.HealthRecordResponse}
// @Failure 403 {object} Response
// @Router /animals/{id}/health-records [post]
func (s *RestHandler) CreateHealthRecord(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.CreateHealthRecordRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AnimalApp.CreateHealthRecord(r.Context(), actor, mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, "health record created", res)
}

// ListHealthRecords handler
// @Summary Health history of an animal
// @Tags Health Records
// @Produce json
// @Security BearerAuth
// @Param id path string true "Animal ID"
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} Response{data=model.HealthRecordListResponse}
// @Router /animals/{id}/health-records [get]
func (s *RestHandler) ListHealthRecords(w http.ResponseWriter, r *http.Request) {
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

	res, err := s.AnimalApp.ListHealthRecords(r.Context(), actor, mux.Vars(r)["id"], page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
