package endpoints

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/nur-collective/siyam/internal/config"
	"github.com/nur-collective/siyam/internal/db"
	"github.com/nur-collective/siyam/internal/http/api"
	"github.com/nur-collective/siyam/internal/http/api/tracker/auth/packets"
	"github.com/nur-collective/siyam/internal/http/middleware"
	"github.com/nur-collective/siyam/internal/model"
	"github.com/nur-collective/siyam/internal/realtime"
)

// AuthPublicModule mounts public auth endpoints (/auth/signup, /auth/login)
func AuthPublicModule(jwtSecret string, store db.Store, tracker config.TrackerConfig, feed *realtime.Feed) api.Module {
	ctl := newAccountManager(jwtSecret, store, tracker, feed)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_POST("/auth/signup", ctl.userSignup)
		c.PUBLIC_POST("/auth/login", ctl.userLogin)
	})
}

// AuthSessionModule mounts private session/profile endpoints (JWT required)
func AuthSessionModule(jwtSecret string, store db.Store, tracker config.TrackerConfig, feed *realtime.Feed) api.Module {
	ctl := newAccountManager(jwtSecret, store, tracker, feed)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/current_profile", ctl.getCurrentProfile)
		c.PUT("/auth/current_profile", ctl.updateCurrentProfile)
	})
}

type AccountManager struct {
	jwtSecret string
	store     db.Store
	tracker   config.TrackerConfig
	feed      *realtime.Feed
}

func newAccountManager(secret string, store db.Store, tracker config.TrackerConfig, feed *realtime.Feed) *AccountManager {
	return &AccountManager{jwtSecret: secret, store: store, tracker: tracker, feed: feed}
}

// POST /api/tracker/auth/signup
func (a *AccountManager) userSignup(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SignupRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "name must not be blank"}
	}

	// display names are case-insensitively unique across the group
	if existing, _ := a.store.GetUserByName(name); existing != nil {
		log.Warn().Str("name", name).Msg("signup name already taken")
		return nil, &api.APIError{Code: http.StatusConflict, Message: "this name is already taken"}
	}

	hashed, err := middleware.HashPassword(request.Password)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not hash password"}
	}

	// every account starts with the full zeroed 30-day record set
	userID, err := a.store.CreateUser(name, hashed, model.InitialRecords(a.tracker.StartDate))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create user"}
	}

	token, err := middleware.GenerateJWT(userID, a.jwtSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	a.feed.Publish(realtime.Event{
		Type:   realtime.EventUserJoined,
		UserID: userID,
		Name:   name,
	})

	return gin.H{"token": token}, nil
}

// POST /api/tracker/auth/login
func (a *AccountManager) userLogin(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	foundUser, err := a.store.GetUserByName(request.Name)
	if err != nil || foundUser == nil || !middleware.CheckPassword(foundUser.HashedPassword, request.Password) {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: middleware.ErrInvalidCredentials.Error()}
	}

	token, err := middleware.GenerateJWT(foundUser.ID, a.jwtSecret)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate token"}
	}

	return gin.H{"token": token}, nil
}

// GET /api/tracker/auth/current_profile
func (a *AccountManager) getCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return packets.ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// PUT /api/tracker/auth/current_profile
func (a *AccountManager) updateCurrentProfile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.UpdateCurrentProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "name must not be blank"}
	}
	if !strings.EqualFold(name, user.Name) {
		if other, _ := a.store.GetUserByName(name); other != nil {
			return nil, &api.APIError{Code: http.StatusConflict, Message: "this name is already taken"}
		}
	}

	if err := a.store.UpdateUserName(user.ID, name); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update profile"}
	}

	updated, err := a.store.GetUserByID(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not fetch updated profile"}
	}

	return packets.ProfileResponse{
		ID:        updated.ID,
		Name:      updated.Name,
		CreatedAt: updated.CreatedAt.Format(time.RFC3339),
		UpdatedAt: updated.UpdatedAt.Format(time.RFC3339),
	}, nil
}
