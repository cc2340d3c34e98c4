package handler

import (
	"strconv"

	"Peakfuel/internal/api/dto"
	"Peakfuel/internal/pkg/response"
	"Peakfuel/internal/pkg/util"
	"Peakfuel/internal/service"

	"github.com/gin-gonic/gin"
)

type TierHandler struct {
	tierSvc service.TierService
}

func NewTierHandler(tierSvc service.TierService) *TierHandler {
	return &TierHandler{tierSvc: tierSvc}
}

func (s *TierHandler) CreateTier(c *gin.Context) {
	var req dto.TierCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	result, err := s.tierSvc.CreateTier(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *TierHandler) GetCreatorTiers(c *gin.Context) {
	creatorID, err := strconv.ParseUint(c.Param("creator_id"), 10, 64)
	if err != nil || creatorID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	result, err := s.tierSvc.GetCreatorTiers(c.Request.Context(), creatorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
