package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/roshr/careertrack/internal/app/models/dto"
	"github.com/roshr/careertrack/internal/app/services"
	"github.com/roshr/careertrack/internal/middleware"
)

// JobListingController handles job listing endpoints
type JobListingController struct {
	jobService services.JobListingService
}

// NewJobListingController creates a new JobListingController
func NewJobListingController(jobService services.JobListingService) *JobListingController {
	return &JobListingController{
		jobService: jobService,
	}
}

// PublishListing handles publishing a job listing
func (c *JobListingController) PublishListing(ctx *gin.Context) {
	var req dto.CreateJobListingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job listing data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.jobService.PublishListing(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(job))
}

// GetListingByID retrieves a single job listing
func (c *JobListingController) GetListingByID(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid job listing ID")
		errorDetail = errorDetail.WithDetails("Job listing ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.jobService.GetListingByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(job))
}

// GetAllListings retrieves all job listings
func (c *JobListingController) GetAllListings(ctx *gin.Context) {
	jobs, err := c.jobService.GetAllListings(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(jobs))
}
