package handlers

import (
	"net/http"

	"github.com/devpals/devpals-go/internal/application"
	"github.com/gin-gonic/gin"
)

type TagHandler struct {
	svc *application.TagService
}

func NewTagHandler(svc *application.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

func (h *TagHandler) ListSkillTags(c *gin.Context) {
	tags, err := h.svc.ListSkillTags()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) ListPositionTags(c *gin.Context) {
	tags, err := h.svc.ListPositionTags()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) ListMethods(c *gin.Context) {
	methods, err := h.svc.ListMethods()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}
