package httpapi

import (
	"errors"
	"net/http"

	"github.com/LavaJover/shvark-moderation-service/internal/domain"
	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	actionUsecase  domain.ActionUsecase
	warningUsecase domain.WarningUsecase
}

func NewModerationHandler(actionUsecase domain.ActionUsecase, warningUsecase domain.WarningUsecase) *ModerationHandler {
	return &ModerationHandler{
		actionUsecase:  actionUsecase,
		warningUsecase: warningUsecase,
	}
}

func (h *ModerationHandler) Moderate(c *gin.Context) {
	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	action, err := h.actionUsecase.Moderate(c.Request.Context(), &domain.ModerateInput{
		ActionType:  domain.ActionType(req.ActionType),
		Reason:      req.Reason,
		ModeratorID: req.ModeratorID,
		UserID:      req.UserID,
		ExtraData:   req.ExtraData,
		FinishAt:    req.FinishAt,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toActionResponse(action))
}

func (h *ModerationHandler) Warn(c *gin.Context) {
	var req WarnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	err := h.warningUsecase.Warn(c.Request.Context(), &domain.WarnInput{
		ActionType:  domain.ActionType(req.ActionType),
		Reason:      req.Reason,
		ModeratorID: req.ModeratorID,
		UserID:      req.UserID,
		ExtraData:   req.ExtraData,
		FinishAt:    req.FinishAt,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *ModerationHandler) GetActiveActions(c *gin.Context) {
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	actions, err := h.actionUsecase.GetActiveActions(c.Request.Context(), c.Param("user_id"), filter)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	responses := make([]ActionResponse, len(actions))
	for i, action := range actions {
		responses[i] = toActionResponse(action)
	}
	c.JSON(http.StatusOK, gin.H{"actions": responses})
}

func (h *ModerationHandler) GetActiveWarnings(c *gin.Context) {
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	warnings, err := h.warningUsecase.GetActiveWarnings(c.Request.Context(), c.Param("user_id"), filter)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	responses := make([]WarningResponse, len(warnings))
	for i, warning := range warnings {
		responses[i] = toWarningResponse(warning)
	}
	c.JSON(http.StatusOK, gin.H{"warnings": responses})
}

func (h *ModerationHandler) DeactivateAction(c *gin.Context) {
	if err := h.actionUsecase.DeactivateAction(c.Request.Context(), c.Param("id")); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func (h *ModerationHandler) ActivateAction(c *gin.Context) {
	if err := h.actionUsecase.ReactivateAction(c.Request.Context(), c.Param("id")); err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func filterFromQuery(c *gin.Context) (domain.ActionFilter, bool) {
	var filter domain.ActionFilter
	if raw, exists := c.GetQuery("action_type"); exists {
		actionType := domain.ActionType(raw)
		if !actionType.Valid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrUnknownActionType.Error()})
			return filter, false
		}
		filter.ActionType = &actionType
	}
	return filter, true
}

func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyReason), errors.Is(err, domain.ErrUnknownActionType):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrActionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrDeliveryFailed):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
