package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/pkg/response"
	"github.com/devconnect/devconnect-api/pkg/validation"
)

type PostHandler struct {
	Svc    *application.PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc *application.PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

type postRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, validation.ToFieldErrors(err))
		return
	}
	p, err := h.Svc.Create(c.GetString("userID"), req.Text)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, p)
}

// GetAll handles GET /api/posts (newest first).
func (h *PostHandler) GetAll(c *gin.Context) {
	posts, err := h.Svc.GetAll()
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, posts)
}

// GetByID handles GET /api/posts/:id.
func (h *PostHandler) GetByID(c *gin.Context) {
	p, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, p)
}

// Delete handles DELETE /api/posts/:id: owner-only; returns the removed post
// and the caller's remaining posts.
func (h *PostHandler) Delete(c *gin.Context) {
	removed, remaining, err := h.Svc.Delete(c.GetString("userID"), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, gin.H{"removedPost": removed, "userPosts": remaining})
}

// Like handles PUT /api/posts/like/:id; responds with the like sequence.
func (h *PostHandler) Like(c *gin.Context) {
	likes, err := h.Svc.Like(c.GetString("userID"), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, likes)
}

// Unlike handles PUT /api/posts/unlike/:id.
func (h *PostHandler) Unlike(c *gin.Context) {
	likes, err := h.Svc.Unlike(c.GetString("userID"), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, likes)
}

// AddComment handles POST /api/posts/comment/:id; responds with the comment
// sequence.
func (h *PostHandler) AddComment(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, validation.ToFieldErrors(err))
		return
	}
	comments, err := h.Svc.AddComment(c.GetString("userID"), c.Param("id"), req.Text)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, comments)
}

// RemoveComment handles DELETE /api/posts/comment/:post_id/:comment_id.
func (h *PostHandler) RemoveComment(c *gin.Context) {
	comments, err := h.Svc.RemoveComment(c.GetString("userID"), c.Param("post_id"), c.Param("comment_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, comments)
}
