package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"tienda/internal/auth"
	"tienda/internal/user"
)

type AuthHandler struct {
	Users *user.Service
	JWT   *auth.JWT
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and responds with a signed bearer token. Unknown
// email and wrong password are deliberately indistinguishable.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	u, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusNotFound)
			return
		}
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	token, err := h.JWT.Issue(u.Email, u.Name)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(token)
}
