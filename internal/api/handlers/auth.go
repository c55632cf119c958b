package handlers

import (
	"net/http"

	"github.com/dom/superhero-pets/internal/api/middleware"
	"github.com/dom/superhero-pets/internal/domain"
	"github.com/dom/superhero-pets/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Register godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param payload body RegisterRequest true "name, email and password"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ErrorResponse "missing fields or email already registered"
// @Router /usuarios/registro [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Name, email and password are required")
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, "AuthHandler.Register", err)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered",
		User:    toUserResponse(user),
	})
}

// Login godoc
// @Summary Log in and get a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param payload body LoginRequest true "email and password"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "invalid credentials"
// @Router /usuarios/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, "AuthHandler.Login", err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// Profile godoc
// @Summary Current user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Profile
// @Failure 401 {object} ErrorResponse
// @Router /usuarios/perfil [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.userService.Profile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, "AuthHandler.Profile", err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Ranking godoc
// @Summary Users ranked by number of adopted pets
// @Tags users
// @Produce json
// @Success 200 {array} domain.RankingEntry
// @Router /usuarios/ranking [get]
func (h *AuthHandler) Ranking(w http.ResponseWriter, r *http.Request) {
	entries, err := h.userService.Ranking(r.Context())
	if err != nil {
		writeServiceError(w, "AuthHandler.Ranking", err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}
