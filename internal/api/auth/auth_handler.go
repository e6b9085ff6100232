package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Elyse-t/ecormmerce-api/internal/store"
)

type SignupRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"password123"`
}

type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"password123"`
}

type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type MessageResponse struct {
	Message string `json:"message" example:"User registered successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Invalid credentials"`
}

type AuthHandler struct {
	service *AuthService
	store   store.Store
}

func NewAuthHandler(jwtSecret string, st store.Store) *AuthHandler {
	return &AuthHandler{
		service: NewAuthService(jwtSecret),
		store:   st,
	}
}

// Signup godoc
//
//	@Summary		Register a new user
//	@Description	Register a new account with username, email and password
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			user	body		SignupRequest	true	"User registration data"
//	@Success		201		{object}	MessageResponse	"User registered successfully"
//	@Failure		400		{object}	ErrorResponse	"Missing fields or duplicate username/email"
//	@Failure		500		{object}	ErrorResponse	"Internal server error"
//	@Router			/api/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		sendErrorResponse(w, http.StatusBadRequest, "Username, email, and password are required")
		return
	}

	hash, err := h.service.HashPassword(req.Password)
	if err != nil {
		sendErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, err := h.store.InsertUser(r.Context(), req.Username, req.Email, hash); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// The store does not report which column collided.
			sendErrorResponse(w, http.StatusBadRequest, "Username or email already exists")
			return
		}
		sendErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(w, http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

// Login godoc
//
//	@Summary		User login
//	@Description	Authenticate with username and password and receive a bearer token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest	true	"User login credentials"
//	@Success		200			{object}	TokenResponse	"Login successful"
//	@Failure		400			{object}	ErrorResponse	"User not found"
//	@Failure		401			{object}	ErrorResponse	"Invalid credentials"
//	@Failure		500			{object}	ErrorResponse	"Internal server error"
//	@Router			/api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	user, err := h.store.FindUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendErrorResponse(w, http.StatusBadRequest, "User not found")
			return
		}
		sendErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.service.CheckPasswordHash(req.Password, user.PasswordHash); err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.service.GenerateJWT(user.ID, user.Username)
	if err != nil {
		sendErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(w, http.StatusOK, TokenResponse{Token: token})
}

func sendJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	sendJSONResponse(w, statusCode, ErrorResponse{Error: message})
}
