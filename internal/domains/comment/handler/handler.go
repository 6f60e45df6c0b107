package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-site-backend/internal/domains/comment/model"
	"recipe-site-backend/internal/domains/comment/service"
	"recipe-site-backend/internal/shared/response"
)

// =====================================================
// COMMENT HANDLER
// =====================================================

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

type SubmitCommentResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Comment *model.RecipeComment `json:"comment"`
}

// ListComments returns the approved comments of a recipe, newest first
// GET /api/comments/:recipeId
func (h *CommentHandler) ListComments(c *gin.Context) {
	result, err := h.commentService.ListApprovedComments(c.Request.Context(), c.Param("recipeId"))
	if err != nil {
		response.AppError(c, err)
		return
	}

	if result.Degraded {
		response.MarkDegraded(c)
	}
	c.JSON(http.StatusOK, result.Comments)
}

// SubmitComment stores a comment pending moderation
// POST /api/comments
func (h *CommentHandler) SubmitComment(c *gin.Context) {
	// Step 1: Bind request body
	var req model.SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	// Step 2: Call service
	comment, err := h.commentService.SubmitComment(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	// Step 3: Return success
	c.JSON(http.StatusOK, SubmitCommentResponse{
		Success: true,
		Message: "Comment submitted successfully and is pending approval",
		Comment: comment,
	})
}

// MissingRecipeID answers GET /api/comments without an id.
func (h *CommentHandler) MissingRecipeID(c *gin.Context) {
	response.AppError(c, model.NewRecipeIDRequiredError())
}
