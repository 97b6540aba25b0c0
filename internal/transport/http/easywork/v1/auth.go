package http

import (
	"errors"
	"net/http"

	"github.com/candrasdkd/easywork/internal/model"
	authsvc "github.com/candrasdkd/easywork/internal/service/auth"
)

type sessionResponse struct {
	Token   string            `json:"token"`
	Profile model.UserProfile `json:"profile"`
}

func sessionToResponse(sess *authsvc.Session) sessionResponse {
	return sessionResponse{Token: sess.Token, Profile: sess.Profile}
}

func (h *Handler) handleGoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDToken string `json:"id_token"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.auth.GoogleSignIn(r.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "sign-in rejected"})
			return
		}
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionToResponse(sess))
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.auth.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionToResponse(sess))
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
			return
		}
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionToResponse(sess))
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.users.Profile(r.Context(), identityFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DisplayName string `json:"display_name"`
		PICName     string `json:"pic_name"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	profile, err := h.users.UpdateNames(r.Context(), identityFrom(r.Context()), req.DisplayName, req.PICName)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
