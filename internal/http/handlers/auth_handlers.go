package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/beerstock/internal/auth"
	"github.com/rogerio-castellano/beerstock/internal/models"
	"github.com/rogerio-castellano/beerstock/internal/repo"
	"go.uber.org/zap"
)

// RegisterHandler godoc
// @Summary Register new user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 201 {object} RegisterResult
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 409 {object} ErrorResponse "User exists"
// @Router /register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateCredentials(creds); len(errs) > 0 {
		respond(w, http.StatusBadRequest, ValidationErrorsResponse{Errors: errs})
		return
	}

	hashed, err := auth.HashPassword(creds.Password)
	if err != nil {
		logger.Error("failed to hash password", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user, err := userRepo.CreateUser(r.Context(), models.User{
		Username:     creds.Username,
		PasswordHash: hashed,
		Role:         "user",
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			writeError(w, http.StatusConflict, "username already exists")
			return
		}
		logger.Error("failed to register user", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	token, err := jwtManager.GenerateToken(user)
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	logger.Info("user registered", zap.String("username", user.Username))
	respond(w, http.StatusCreated, RegisterResult{
		Message: "user registered",
		Token:   token,
	})
}

// LoginHandler godoc
// @Summary Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByUsername(r.Context(), creds.Username)
	if err != nil {
		if !errors.Is(err, repo.ErrUserNotFound) {
			logger.Error("failed to load user", zap.Error(err))
		}
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, creds.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := jwtManager.GenerateToken(user)
	if err != nil {
		logger.Error("failed to generate token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	respond(w, http.StatusOK, LoginResult{Token: token})
}
