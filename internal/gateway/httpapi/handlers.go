package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mkuznetsov/ssocore/internal/common"
)

type registerRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type updatePasswordRequest struct {
	UserID      int64  `json:"user_id,omitempty"`
	NewPassword string `json:"new_password"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type userInfoResponse struct {
	UserID    int64     `json:"user_id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *API) ping(w http.ResponseWriter, r *http.Request) {
	if err := a.auth.Ping(r.Context()); err != nil {
		writeError(w, common.ErrorUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	userID, err := a.auth.Register(r.Context(), req.Login, req.Email, req.FullName, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	a.logger.Info(r.Context(), "user registered", "user_id", userID)
	writeJSON(w, http.StatusCreated, map[string]int64{"user_id": userID})
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	pair, err := a.auth.Login(r.Context(), req.Login, req.Password, a.appID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (a *API) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		writeError(w, common.ErrorValidation)
		return
	}

	pair, err := a.auth.Refresh(r.Context(), req.RefreshToken, a.appID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

func (a *API) updatePassword(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}
	bearer, _ := callerBearer(r.Context())

	var req updatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.ErrorValidation)
		return
	}

	// absent user_id means "change my own password"
	target := req.UserID
	if target == 0 {
		target = caller
	}

	if err := a.auth.UpdatePassword(r.Context(), bearer, target, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func (a *API) userInfo(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerID(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, common.ErrorValidation)
		return
	}

	// a user may read their own profile; anyone else's requires admin
	if id != caller {
		isAdmin, err := a.auth.IsAdmin(r.Context(), caller)
		if err != nil {
			writeError(w, err)
			return
		}
		if !isAdmin {
			writeError(w, common.ErrorForbidden)
			return
		}
	}

	info, err := a.auth.UserInfo(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userInfoResponse{
		UserID:    info.ID,
		Login:     info.Login,
		Email:     info.Email,
		FullName:  info.FullName,
		IsAdmin:   info.IsAdmin,
		CreatedAt: info.CreatedAt,
	})
}

func (a *API) removeUser(w http.ResponseWriter, r *http.Request) {
	bearer, ok := callerBearer(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, common.ErrorValidation)
		return
	}

	// admin check is enforced remotely; the gateway only forwards the token
	if err := a.auth.RemoveUser(r.Context(), bearer, id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "user removed"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the shared taxonomy onto HTTP statuses. Bodies stay
// generic so the API leaks nothing about which part of a check failed.
func writeError(w http.ResponseWriter, err error) {
	var status int
	var msg string

	switch {
	case errors.Is(err, common.ErrorValidation):
		status, msg = http.StatusBadRequest, "invalid request"
	case errors.Is(err, common.ErrorLoginAlreadyExists):
		status, msg = http.StatusConflict, "login already exists"
	case errors.Is(err, common.ErrorNotFound):
		status, msg = http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrorInvalidCredentials),
		errors.Is(err, common.ErrorUnauthorized):
		status, msg = http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, common.ErrorForbidden):
		status, msg = http.StatusForbidden, "forbidden"
	case errors.Is(err, common.ErrorUnavailable):
		status, msg = http.StatusServiceUnavailable, "service unavailable"
	default:
		status, msg = http.StatusInternalServerError, "internal error"
	}

	writeJSON(w, status, map[string]string{"error": msg})
}
