package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mazin-Fouad/ecommerce-api/internal/core/auth"
	"github.com/Mazin-Fouad/ecommerce-api/internal/domain"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/middleware"
	"github.com/Mazin-Fouad/ecommerce-api/internal/transport/http/response"
	"github.com/Mazin-Fouad/ecommerce-api/internal/validate"
	"github.com/Mazin-Fouad/ecommerce-api/pkg/utils"
)

type UserHandler struct {
	users domain.UserStore
	jwt   *auth.JWTer
	log   *zap.Logger
	resp  response.Writer
}

func NewUserHandler(users domain.UserStore, jwter *auth.JWTer, l *zap.Logger, w response.Writer) *UserHandler {
	return &UserHandler{users: users, jwt: jwter, log: l, resp: w}
}

// Register creates a user. The password is hashed here, unconditionally;
// registration is a durable write and never falls back.
func (h *UserHandler) Register(c *gin.Context) {
	var in validate.RegisterPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		h.resp.Err(c, response.BadRequest("Invalid request body"))
		return
	}
	if errs := validate.Registration(&in); len(errs) > 0 {
		h.resp.Err(c, response.Validation(errs))
		return
	}

	existing, err := h.users.FindByEmail(in.Email)
	if err != nil {
		h.resp.Err(c, response.Internal("Registration failed", err))
		return
	}
	if existing != nil {
		h.resp.Err(c, response.Conflict("A user with this email already exists"))
		return
	}

	u := &domain.User{
		ID:           utils.NewID(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		PhoneNumber:  in.PhoneNumber,
	}
	if err := h.users.Create(u); err != nil {
		// lost the race against a concurrent registration for the same email
		if errors.Is(err, domain.ErrDuplicateKey) {
			h.resp.Err(c, response.Conflict("A user with this email already exists"))
			return
		}
		h.resp.Err(c, response.Internal("Registration failed", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    viewUser(u),
	})
}

// Login collapses "user exists" and "password matches" into one check so the
// 401 body is identical either way (anti user-enumeration).
func (h *UserHandler) Login(c *gin.Context) {
	var in validate.LoginPayload
	if err := c.ShouldBindJSON(&in); err != nil {
		h.resp.Err(c, response.BadRequest("Invalid request body"))
		return
	}
	if errs := validate.Login(&in); len(errs) > 0 {
		h.resp.Err(c, response.Validation(errs))
		return
	}

	u, err := h.users.FindByEmail(in.Email)
	if err != nil {
		h.resp.Err(c, response.Internal("Login failed", err))
		return
	}
	if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
		h.resp.Err(c, response.Unauthorized("Invalid email or password"))
		return
	}

	token, err := h.jwt.Issue(u.ID, u.Email)
	if err != nil {
		h.resp.Err(c, response.Internal("Login failed", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Login successful",
		"token":     token,
		"expiresIn": int64(h.jwt.TTL.Seconds()),
	})
}

// UpdateProfile edits the caller's own record. The password is re-hashed
// only when the patch carries one.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserID)

	var in validate.ProfilePayload
	if err := c.ShouldBindJSON(&in); err != nil {
		h.resp.Err(c, response.BadRequest("Invalid request body"))
		return
	}
	if errs := validate.Profile(&in); len(errs) > 0 {
		h.resp.Err(c, response.Validation(errs))
		return
	}

	u, err := h.users.FindByID(uid)
	if err != nil {
		h.resp.Err(c, response.Internal("Profile update failed", err))
		return
	}
	if u == nil {
		h.resp.Err(c, response.NotFound("User not found"))
		return
	}

	if in.Email != u.Email {
		other, err := h.users.FindByEmail(in.Email)
		if err != nil {
			h.resp.Err(c, response.Internal("Profile update failed", err))
			return
		}
		if other != nil && other.ID != u.ID {
			h.resp.Err(c, response.Conflict("This email is already taken by another user"))
			return
		}
	}

	u.FirstName = in.FirstName
	u.LastName = in.LastName
	u.Email = in.Email
	u.PhoneNumber = in.PhoneNumber
	if in.Password != "" {
		u.PasswordHash = utils.HashPassword(in.Password)
	}

	if err := h.users.Update(u); err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			h.resp.Err(c, response.Conflict("This email is already taken by another user"))
			return
		}
		h.resp.Err(c, response.Internal("Profile update failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    viewUser(u),
	})
}
