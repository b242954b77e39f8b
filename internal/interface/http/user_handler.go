package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/pkg/response"
	"github.com/devconnect/devconnect-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/users.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, validation.ToFieldErrors(err))
		return
	}
	u, token, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	h.Logger.WithField("user_id", u.ID).Info("user registered")
	response.OK(c, gin.H{"token": token})
}

// Login handles POST /api/auth.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, validation.ToFieldErrors(err))
		return
	}
	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, gin.H{"token": token})
}

// Current handles GET /api/auth: the user behind the presented credential.
func (h *UserHandler) Current(c *gin.Context) {
	u, err := h.Svc.Get(c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, u)
}

// UploadAvatar handles POST /api/users/avatar (multipart field "avatar").
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.Fail(c, "Avatar file is required")
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), c.GetString("userID"), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, gin.H{"avatar": url})
}
