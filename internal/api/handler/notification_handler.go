package handler

import (
	"strconv"

	"Peakfuel/internal/api/dto"
	"Peakfuel/internal/pkg/response"
	"Peakfuel/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

func (s *NotificationHandler) List(c *gin.Context) {
	userID := c.GetUint64("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	result, err := s.notificationSvc.List(c.Request.Context(), userID, limit, skip)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *NotificationHandler) UnreadCount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	result, err := s.notificationSvc.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *NotificationHandler) MarkAsRead(c *gin.Context) {
	var req dto.NotificationReadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.notificationSvc.MarkAsRead(c.Request.Context(), userID, req.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	if err := s.notificationSvc.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
