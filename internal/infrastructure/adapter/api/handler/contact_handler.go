package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ContactHandler handles friendship and contact requests
type ContactHandler struct {
	contactUseCase usecase.ContactUseCase
	logger         coreport.Logger
}

// NewContactHandler creates a new contact handler instance
func NewContactHandler(contactUseCase usecase.ContactUseCase, logger coreport.Logger) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
		logger:         logger,
	}
}

// AddFriend handles POST /api/contacts/add
func (h *ContactHandler) AddFriend(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	friend, err := h.contactUseCase.AddFriend(c.Request.Context(), userID, req.FriendEmail)
	if err != nil {
		respondError(c, h.logger, "add friend", err)
		return
	}

	c.JSON(http.StatusCreated, dto.FriendEnvelope{
		Message: "Friend added successfully",
		Friend:  dto.FromFriend(*friend),
	})
}

// RemoveFriend handles DELETE /api/contacts/remove/:friend_id
func (h *ContactHandler) RemoveFriend(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	if err := h.contactUseCase.RemoveFriend(c.Request.Context(), userID, c.Param("friend_id")); err != nil {
		respondError(c, h.logger, "remove friend", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Friend removed successfully"})
}

// ListFriends handles GET /api/contacts/friends
func (h *ContactHandler) ListFriends(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	friends, err := h.contactUseCase.ListFriends(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "list friends", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromFriends(friends))
}

// ListContacts handles GET /api/contacts/all
func (h *ContactHandler) ListContacts(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	contacts, err := h.contactUseCase.ListContacts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "list contacts", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromContacts(contacts))
}
