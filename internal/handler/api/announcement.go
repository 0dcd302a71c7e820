package api

import (
	"context"
	"errors"
	"net/http"

	"storefront-rules/internal/domain/announcement"
	reqdto "storefront-rules/internal/handler/dto/request"
	resdto "storefront-rules/internal/handler/dto/response"
	"storefront-rules/internal/handler/httperr"
	"storefront-rules/internal/usecase/commands"
	"storefront-rules/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnnouncementHandler struct {
	commands commands.AnnouncementCommands
	queries  queries.AnnouncementQueries
}

func NewAnnouncementHandler(c commands.AnnouncementCommands, q queries.AnnouncementQueries) *AnnouncementHandler {
	return &AnnouncementHandler{commands: c, queries: q}
}

// @Summary Ticker announcements
// @Description List the announcements currently live on the storefront ticker
// @Tags announcements
// @Produce json
// @Success 200 {array} resdto.AnnouncementResponse
// @Router /announcements/ticker [get]
func (h *AnnouncementHandler) Ticker(c *gin.Context) {
	views, err := h.queries.ListTicker(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list announcements", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAnnouncementList(views))
}

// @Summary List announcements
// @Description List every announcement with its derived status
// @Tags admin-announcements
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AnnouncementResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	views, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list announcements", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAnnouncementList(views))
}

// @Summary Get announcement
// @Tags admin-announcements
// @Produce json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 200 {object} resdto.AnnouncementResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/announcements/{id} [get]
func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid announcement ID", nil)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrAnnouncementNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Announcement not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get announcement", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAnnouncementView(view))
}

// @Summary Create announcement
// @Tags admin-announcements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req reqdto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.commands.Create(c.Request.Context(), commands.CreateAnnouncementRequest{
		Text:       req.Text,
		IconType:   req.IconType,
		ColorToken: req.ColorToken,
		TargetLink: req.TargetLink,
		Active:     req.IsActive(),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		abortAnnouncementWriteError(c, err)
		return
	}
	c.Header("Location", "/api/admin/announcements/"+result.AnnouncementID.String())
	c.JSON(http.StatusCreated, gin.H{"id": result.AnnouncementID.String()})
}

// @Summary Update announcement
// @Tags admin-announcements
// @Accept json
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Param request body reqdto.UpdateAnnouncementRequest true "Announcement"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid announcement ID", nil)
		return
	}

	var req reqdto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	err = h.commands.Update(c.Request.Context(), id, commands.UpdateAnnouncementRequest{
		Text:       req.Text,
		IconType:   req.IconType,
		ColorToken: req.ColorToken,
		TargetLink: req.TargetLink,
		Active:     req.Active,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		abortAnnouncementWriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Pause announcement
// @Description Take an announcement out of rotation regardless of its window
// @Tags admin-announcements
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/announcements/{id}/pause [post]
func (h *AnnouncementHandler) Pause(c *gin.Context) {
	h.runByID(c, h.commands.Pause)
}

// @Summary Resume announcement
// @Description Put a paused announcement back under window evaluation
// @Tags admin-announcements
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/announcements/{id}/resume [post]
func (h *AnnouncementHandler) Resume(c *gin.Context) {
	h.runByID(c, h.commands.Resume)
}

// @Summary Delete announcement
// @Tags admin-announcements
// @Security BearerAuth
// @Param id path string true "Announcement ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	h.runByID(c, h.commands.Delete)
}

func (h *AnnouncementHandler) runByID(c *gin.Context, op func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid announcement ID", nil)
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		abortAnnouncementWriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func abortAnnouncementWriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAnnouncementNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Announcement not found", nil)
	case errors.Is(err, announcement.ErrEmptyText),
		errors.Is(err, announcement.ErrTextTooLong),
		errors.Is(err, announcement.ErrInvalidIconType),
		errors.Is(err, announcement.ErrInvalidColorToken),
		errors.Is(err, announcement.ErrInvalidWindow):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid announcement", gin.H{"reason": err.Error()})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save announcement", nil)
	}
}
