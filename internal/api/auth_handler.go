package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/devtask-api/internal/api/shared"
	"github.com/phrazzld/devtask-api/internal/domain"
	"github.com/phrazzld/devtask-api/internal/platform/logger"
	"github.com/phrazzld/devtask-api/internal/service/auth"
	"github.com/phrazzld/devtask-api/internal/store"
)

// AuthHandler handles the registration and login endpoints.
type AuthHandler struct {
	userStore      store.UserStore
	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
	verifier       auth.PasswordVerifier
	validator      *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:      userStore,
		jwtService:     jwtService,
		passwordHasher: passwordHasher,
		verifier:       verifier,
		validator:      validator.New(),
	}
}

// Register handles POST /auth/register. A duplicate email produces a 400;
// the uniqueness race is resolved by the store, not by a prior read.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid email or password")
		return
	}

	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "failed to register user", err)
		return
	}

	user, err := domain.NewUser(req.Email, hashed)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid email or password")
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "email already registered")
			return
		}
		log.Error("failed to create user", "error", err)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "failed to register user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, UserResponse{
		ID:    user.ID,
		Email: user.Email,
	})
}

// Login handles POST /auth/login. Unknown emails and wrong passwords are
// indistinguishable in the response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid email or password")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "incorrect email or password")
			return
		}
		log.Error("failed to get user by email", "error", err)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "failed to authenticate user", err)
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "incorrect email or password")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "failed to authenticate user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
