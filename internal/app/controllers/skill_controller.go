package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roshr/careertrack/internal/app/models/dto"
	"github.com/roshr/careertrack/internal/app/services"
	"github.com/roshr/careertrack/internal/middleware"
)

// SkillController handles skill endpoints
type SkillController struct {
	skillService services.SkillService
}

// NewSkillController creates a new SkillController
func NewSkillController(skillService services.SkillService) *SkillController {
	return &SkillController{
		skillService: skillService,
	}
}

// AddSkill handles adding a skill entry
func (c *SkillController) AddSkill(ctx *gin.Context) {
	var req dto.CreateSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid skill data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.skillService.AddSkill(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Skill added successfully"}))
}

// GetAllSkills retrieves all skill entries
func (c *SkillController) GetAllSkills(ctx *gin.Context) {
	skills, err := c.skillService.GetAllSkills(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(skills))
}
