package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roshr/careertrack/internal/app/models/dto"
	"github.com/roshr/careertrack/internal/app/services"
	"github.com/roshr/careertrack/internal/middleware"
)

// AcademicPerformanceController handles academic record endpoints
type AcademicPerformanceController struct {
	academicService services.AcademicPerformanceService
}

// NewAcademicPerformanceController creates a new AcademicPerformanceController
func NewAcademicPerformanceController(academicService services.AcademicPerformanceService) *AcademicPerformanceController {
	return &AcademicPerformanceController{
		academicService: academicService,
	}
}

// RecordPerformance handles recording a student's academic performance
func (c *AcademicPerformanceController) RecordPerformance(ctx *gin.Context) {
	var req dto.CreateAcademicPerformanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid academic performance data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.academicService.RecordPerformance(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Academic performance recorded successfully"}))
}

// GetPerformanceByStudentID retrieves a student's academic record
func (c *AcademicPerformanceController) GetPerformanceByStudentID(ctx *gin.Context) {
	studentID := ctx.Param("studentId")

	perf, err := c.academicService.GetPerformanceByStudentID(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(perf))
}
