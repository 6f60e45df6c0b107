package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-site-backend/internal/domains/rating/model"
	"recipe-site-backend/internal/domains/rating/service"
	"recipe-site-backend/internal/shared/response"
)

// =====================================================
// RATING HANDLER
// =====================================================

type RatingHandler struct {
	ratingService service.ServiceInterface
}

func NewRatingHandler(ratingService service.ServiceInterface) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// SubmitRatingResponse is the body of a successful POST /api/ratings.
type SubmitRatingResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Rating  *model.RecipeRating `json:"rating"`
}

// GetRatingStats returns the aggregate rating of a recipe
// GET /api/ratings/:recipeId
func (h *RatingHandler) GetRatingStats(c *gin.Context) {
	// Step 1: Call service
	result, err := h.ratingService.ComputeRatingStats(c.Request.Context(), c.Param("recipeId"))
	if err != nil {
		response.AppError(c, err)
		return
	}

	// Step 2: Return stats
	if result.Degraded {
		response.MarkDegraded(c)
	}
	c.JSON(http.StatusOK, result.Stats)
}

// SubmitRating creates or updates the caller's rating
// POST /api/ratings
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	// Step 1: Bind request body
	var req model.SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	// Step 2: Call service (validates)
	rating, err := h.ratingService.SubmitRating(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	// Step 3: Return success
	c.JSON(http.StatusOK, SubmitRatingResponse{
		Success: true,
		Message: "Rating submitted successfully",
		Rating:  rating,
	})
}

// MissingRecipeID answers GET /api/ratings without an id.
func (h *RatingHandler) MissingRecipeID(c *gin.Context) {
	response.AppError(c, model.NewRecipeIDRequiredError())
}
