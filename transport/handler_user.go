package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/farm-portal/model"
)

// GetMe handler
// @Summary Own profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=model.UserProfile}
// @Router /users/me [get]
func (s *RestHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.getProfile(w, r, actor, actor.ID)
}

// GetUser handler
// @Summary Profile by id
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} Response{data=model.UserProfile}
// @Failure 403 {object} Response
// @Failure 404 {object} Response
// @Router /users/{id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.getProfile(w, r, actor, mux.Vars(r)["id"])
}

func (s *RestHandler) getProfile(w http.ResponseWriter, r *http.Request, actor model.Actor, userID string) {
	res, err := s.UserApp.GetProfile(r.Context(), actor, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateMe handler
// @Summary Update own profile
// @Description Only the fields belonging to the caller's role are applied
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} Response{data=model.UserProfile}
// @Router /users/me [put]
func (s *RestHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.updateProfile(w, r, actor, actor.ID)
}

// UpdateUser handler
// @Summary Update a profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body model.UpdateProfileRequest true "Update Profile Request"
// @Success 200 {object} Response{data=model.UserProfile}
// @Failure 403 {object} Response
// @Router /users/{id} [put]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.updateProfile(w, r, actor, mux.Vars(r)["id"])
}

func (s *RestHandler) updateProfile(w http.ResponseWriter, r *http.Request, actor model.Actor, userID string) {
	var req model.UpdateProfileRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateProfile(r.Context(), actor, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessMessage(w, "profile updated", res)
}

// DeactivateMe handler
// @Summary Deactivate own account
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /users/me [delete]
func (s *RestHandler) DeactivateMe(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.deactivateUser(w, r, actor, actor.ID)
}

// DeactivateUser handler
// @Summary Deactivate an account
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} Response
// @Failure 403 {object} Response
// @Router /admin/users/{id} [delete]
func (s *RestHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}
	s.deactivateUser(w, r, actor, mux.Vars(r)["id"])
}

func (s *RestHandler) deactivateUser(w http.ResponseWriter, r *http.Request, actor model.Actor, userID string) {
	if err := s.UserApp.DeactivateUser(r.Context(), actor, userID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccessMessage(w, "account deactivated", nil)
}

// ListVeterinarians handler
// @Summary Active veterinarians
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} Response{data=model.UserListResponse}
// @Router /veterinarians [get]
func (s *RestHandler) ListVeterinarians(w http.ResponseWriter, r *http.Request) {
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

	res, err := s.UserApp.ListVeterinarians(r.Context(), actor, page)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListUsers handler
// @Summary List users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param role query string false "farmer, veterinarian or admin"
// @Param status query string false "pending, active, inactive or suspended"
// @Param search query string false "Name, email or phone fragment"
// @Param include_inactive query bool false "Include deactivated accounts"
// @Param page query int false "Page"
// @Param per_page query int false "Items per page"
// @Success 200 {object} Response{data=model.UserListResponse}
// @Failure 403 {object} Response
// @Router /admin/users [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
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
	res, err := s.UserApp.ListUsers(r.Context(), actor, &model.UserListRequest{
		Role:            q.Get("role"),
		Status:          q.Get("status"),
		Search:          q.Get("search"),
		IncludeInactive: includeInactive,
		PageRequest:     page,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateUserStatus handler
// @Summary Change account status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body model.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} Response{data=model.UserProfile}
// @Failure 409 {object} Response
// @Router /admin/users/{id}/status [patch]
func (s *RestHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateStatusRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.UpdateStatus(r.Context(), actor, mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessMessage(w, "status updated", res)
}

// ReactivateUser handler
// @Summary Reactivate a deactivated account
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} Response{data=model.UserProfile}
// @Router /admin/users/{id}/reactivate [post]
func (s *RestHandler) ReactivateUser(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.ReactivateUser(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccessMessage(w, "account reactivated", res)
}

// UserStats handler
// @Summary Account counters
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=model.UserStats}
// @Router /admin/users/stats [get]
func (s *RestHandler) UserStats(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Stats(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
