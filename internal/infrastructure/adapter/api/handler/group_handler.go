package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// GroupHandler handles group and membership requests
type GroupHandler struct {
	groupUseCase usecase.GroupUseCase
	logger       coreport.Logger
}

// NewGroupHandler creates a new group handler instance
func NewGroupHandler(groupUseCase usecase.GroupUseCase, logger coreport.Logger) *GroupHandler {
	return &GroupHandler{
		groupUseCase: groupUseCase,
		logger:       logger,
	}
}

// CreateGroup handles POST /api/groups
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	group, err := h.groupUseCase.CreateGroup(c.Request.Context(), userID, req.GroupName, req.Description)
	if err != nil {
		respondError(c, h.logger, "create group", err)
		return
	}

	c.JSON(http.StatusCreated, dto.GroupEnvelope{
		Message: "Group created successfully",
		Group:   dto.FromGroup(group),
	})
}

// ListGroups handles GET /api/groups
func (h *GroupHandler) ListGroups(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	summaries, err := h.groupUseCase.ListUserGroups(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "list groups", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromGroupSummaries(summaries))
}

// GetGroup handles GET /api/groups/:group_id
func (h *GroupHandler) GetGroup(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	details, err := h.groupUseCase.GetGroup(c.Request.Context(), userID, c.Param("group_id"))
	if err != nil {
		respondError(c, h.logger, "get group", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromGroupDetails(details))
}

// UpdateGroup handles PUT /api/groups/:group_id
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	group, err := h.groupUseCase.UpdateGroup(c.Request.Context(), userID, c.Param("group_id"), usecase.GroupUpdate{
		Name:        req.GroupName,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, h.logger, "update group", err)
		return
	}

	c.JSON(http.StatusOK, dto.GroupEnvelope{
		Message: "Group updated successfully",
		Group:   dto.FromGroup(group),
	})
}

// DeleteGroup handles DELETE /api/groups/:group_id
func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	if err := h.groupUseCase.DeleteGroup(c.Request.Context(), userID, c.Param("group_id")); err != nil {
		respondError(c, h.logger, "delete group", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Group deleted successfully"})
}

// AddMember handles POST /api/groups/:group_id/members
func (h *GroupHandler) AddMember(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	groupID := c.Param("group_id")
	member, err := h.groupUseCase.AddMember(c.Request.Context(), userID, groupID, req.UserID)
	if err != nil {
		respondError(c, h.logger, "add member", err)
		return
	}

	c.JSON(http.StatusCreated, dto.MemberEnvelope{
		Message: "User added to group successfully",
		GroupID: groupID,
		Member:  dto.FromMember(*member),
	})
}

// RemoveMember handles DELETE /api/groups/:group_id/members/:user_id
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	err := h.groupUseCase.RemoveMember(c.Request.Context(), userID, c.Param("group_id"), c.Param("user_id"))
	if err != nil {
		respondError(c, h.logger, "remove member", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Member removed successfully"})
}
