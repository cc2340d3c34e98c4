package handler

import (
	"strconv"

	"Peakfuel/internal/api/dto"
	"Peakfuel/internal/pkg/response"
	"Peakfuel/internal/pkg/util"
	"Peakfuel/internal/service"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementSvc service.EngagementService
}

func NewEngagementHandler(engagementSvc service.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementSvc: engagementSvc}
}

// LikePost likes or unlikes a post depending on the action field.
func (s *EngagementHandler) LikePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	var req dto.LikeActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var result *dto.PostCountersDTO
	if *req.Action == 1 {
		result, err = s.engagementSvc.LikePost(c.Request.Context(), userID, postID)
	} else {
		result, err = s.engagementSvc.UnlikePost(c.Request.Context(), userID, postID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *EngagementHandler) CreateComment(c *gin.Context) {
	var req dto.CommentCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	result, err := s.engagementSvc.CreateComment(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *EngagementHandler) GetComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	result, err := s.engagementSvc.GetComments(c.Request.Context(), postID, limit, skip)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *EngagementHandler) GetReplies(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || commentID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	result, err := s.engagementSvc.GetReplies(c.Request.Context(), postID, commentID, limit, skip)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
