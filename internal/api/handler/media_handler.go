package handler

import (
	"Peakfuel/internal/pkg/response"
	"Peakfuel/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{mediaSvc: mediaSvc}
}

func (s *MediaHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	result, err := s.mediaSvc.Upload(c.Request.Context(), userID, header)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
