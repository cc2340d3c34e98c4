package handler

import (
	"strconv"

	"Peakfuel/internal/api/dto"
	"Peakfuel/internal/pkg/response"
	"Peakfuel/internal/pkg/util"
	"Peakfuel/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
	feedSvc service.FeedService
}

func NewPostHandler(postSvc service.PostService, feedSvc service.FeedService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
		feedSvc: feedSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.PostBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	result, err := s.postSvc.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetFeed serves the home feed. limit and skip arrive as query parameters.
func (s *PostHandler) GetFeed(c *gin.Context) {
	userID := c.GetUint64("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))

	result, err := s.feedSvc.GetFeed(c.Request.Context(), userID, limit, skip)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	result, err := s.postSvc.GetPost(c.Request.Context(), userID, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
