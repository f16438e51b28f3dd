package handlers

import (
	"net/http"
	"strconv"

	"github.com/devpals/devpals-go/internal/application"
	"github.com/devpals/devpals-go/internal/domain/project"
	"github.com/devpals/devpals-go/pkg/response"
	"github.com/devpals/devpals-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects serves the board with pagination and filters.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	filter := project.ListFilter{
		Page:    1,
		Keyword: c.Query("keyword"),
	}
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		filter.Page = p
	}
	if id, err := utils.ParseQueryUintParam(c, "methodId"); err == nil {
		filter.MethodID = &id
	}
	if id, err := utils.ParseQueryUintParam(c, "positionTag"); err == nil {
		filter.PositionTag = &id
	}
	for _, raw := range c.QueryArray("skillTag") {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.SkillTags = append(filter.SkillTags, uint(id))
		}
	}
	if raw := c.Query("isBeginner"); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			filter.IsBeginner = &b
		}
	}

	result, err := h.svc.ListProjects(filter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ProjectHandler) GetCounts(c *gin.Context) {
	counts, err := h.svc.ProjectCounts()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	p, err := h.svc.GetProject(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) IncrementViews(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	p, err := h.svc.IncrementViews(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input project.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	p, err := h.svc.CreateProject(userID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProjectHandler) ModifyProject(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	var input project.ModifyProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	p, err := h.svc.ModifyProject(userID, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CloseProject ends recruitment by the author's hand. The sweep reaches
// the same service operation without an acting author.
func (h *ProjectHandler) CloseProject(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	p, err := h.svc.CloseProject(id, &userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
