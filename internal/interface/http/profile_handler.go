package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/pkg/response"
	"github.com/devconnect/devconnect-api/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

type profileRequest struct {
	Status         string `json:"status" binding:"required"`
	Skills         string `json:"skills" binding:"required"`
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type experienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	From        string `json:"from" binding:"required"`
	Location    string `json:"location"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School       string `json:"school" binding:"required"`
	Degree       string `json:"degree" binding:"required"`
	FieldOfStudy string `json:"fieldofstudy" binding:"required"`
	From         string `json:"from" binding:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Me handles GET /api/profiles/me.
func (h *ProfileHandler) Me(c *gin.Context) {
	p, err := h.Svc.GetMine(c.GetString("userID"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, p)
}

// Upsert handles POST /api/profiles: create-or-update the caller's root
// fields. Embedded collections are untouched.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, validation.ToFieldErrors(err))
		return
	}
	p, err := h.Svc.Upsert(c.Request.Context(), c.GetString("userID"), application.ProfileInput{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, p)
}

// GetAll handles GET /api/profiles.
func (h *ProfileHandler) GetAll(c *gin.Context) {
	profiles, err := h.Svc.GetAll()
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, profiles)
}

// GetByUser handles GET /api/profiles/users/:user_id.
func (h *ProfileHandler) GetByUser(c *gin.Context) {
	p, err := h.Svc.GetByUser(c.Param("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, p)
}

// Delete handles DELETE /api/profiles: removes the caller's profile and the
// owning user, returning both.
func (h *ProfileHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	p, u, err := h.Svc.Delete(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	h.Logger.WithField("user_id", uid).Info("profile and user deleted")
	response.OK(c, gin.H{"profile": p, "user": u})
}

// AddExperience handles PUT /api/profiles/experience.
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, validation.ToFieldErrors(err))
		return
	}
	exp, err := h.Svc.AddExperience(c.Request.Context(), c.GetString("userID"), experienceInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, exp)
}

// UpdateExperience handles PUT /api/profiles/experience/:exp_id.
func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, validation.ToFieldErrors(err))
		return
	}
	exp, err := h.Svc.UpdateExperience(c.Request.Context(), c.GetString("userID"), c.Param("exp_id"), experienceInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, exp)
}

// RemoveExperience handles DELETE /api/profiles/experience/:exp_id.
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	exp, err := h.Svc.RemoveExperience(c.Request.Context(), c.GetString("userID"), c.Param("exp_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, exp)
}

// AddEducation handles PUT /api/profiles/education.
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, validation.ToFieldErrors(err))
		return
	}
	edu, err := h.Svc.AddEducation(c.Request.Context(), c.GetString("userID"), educationInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, edu)
}

// UpdateEducation handles PUT /api/profiles/education/:edu_id.
func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, validation.ToFieldErrors(err))
		return
	}
	edu, err := h.Svc.UpdateEducation(c.Request.Context(), c.GetString("userID"), c.Param("edu_id"), educationInput(req))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, edu)
}

// RemoveEducation handles DELETE /api/profiles/education/:edu_id.
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	edu, err := h.Svc.RemoveEducation(c.Request.Context(), c.GetString("userID"), c.Param("edu_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, edu)
}

// Github handles GET /api/profiles/github/:username.
func (h *ProfileHandler) Github(c *gin.Context) {
	repos, err := h.Svc.GithubRepos(c.Request.Context(), c.Param("username"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, repos)
}

// Search handles GET /api/profiles/search?q=&size=.
func (h *ProfileHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Svc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, hits)
}

func experienceInput(req experienceRequest) application.ExperienceInput {
	return application.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}
}

func educationInput(req educationRequest) application.EducationInput {
	return application.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}
}
