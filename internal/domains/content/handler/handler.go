package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recipe-site-backend/internal/domains/content/model"
	"recipe-site-backend/internal/domains/content/service"
	"recipe-site-backend/internal/shared/response"
)

// =====================================================
// CONTENT HANDLER
// =====================================================

type ContentHandler struct {
	contentService service.ServiceInterface
}

func NewContentHandler(contentService service.ServiceInterface) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// ListRecipes - GET /api/recipes?limit=
func (h *ContentHandler) ListRecipes(c *gin.Context) {
	result, err := h.contentService.ListRecipes(c.Request.Context(), parseLimit(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writeList(c, result)
}

// GetRecipe - GET /api/recipes/:slug
func (h *ContentHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.contentService.GetRecipe(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, recipe)
}

// ListCategories - GET /api/categories?limit=
func (h *ContentHandler) ListCategories(c *gin.Context) {
	result, err := h.contentService.ListCategories(c.Request.Context(), parseLimit(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writeList(c, result)
}

// GetCategory - GET /api/categories/:slug
func (h *ContentHandler) GetCategory(c *gin.Context) {
	category, err := h.contentService.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, category)
}

// ListCategoryRecipes - GET /api/categories/:slug/recipes?limit=
func (h *ContentHandler) ListCategoryRecipes(c *gin.Context) {
	result, err := h.contentService.ListRecipesByCategory(c.Request.Context(), c.Param("slug"), parseLimit(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writeList(c, result)
}

// ListAuthors - GET /api/authors?limit=
func (h *ContentHandler) ListAuthors(c *gin.Context) {
	result, err := h.contentService.ListAuthors(c.Request.Context(), parseLimit(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writeList(c, result)
}

// GetAuthor - GET /api/authors/:slug
func (h *ContentHandler) GetAuthor(c *gin.Context) {
	author, err := h.contentService.GetAuthor(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, author)
}

// ListAuthorRecipes - GET /api/authors/:slug/recipes?limit=
func (h *ContentHandler) ListAuthorRecipes(c *gin.Context) {
	result, err := h.contentService.ListRecipesByAuthor(c.Request.Context(), c.Param("slug"), parseLimit(c))
	if err != nil {
		writeError(c, err)
		return
	}
	writeList(c, result)
}

// GetHomePage - GET /api/home
func (h *ContentHandler) GetHomePage(c *gin.Context) {
	home, err := h.contentService.GetHomePage(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, home)
}

// =====================================================
// HELPERS
// =====================================================

// parseLimit reads ?limit=. Missing or non-numeric values return 0 so the
// service applies its default.
func parseLimit(c *gin.Context) int {
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			return l
		}
	}
	return 0
}

func writeList[T any](c *gin.Context, result *model.ListResult[T]) {
	if result.Degraded {
		response.MarkDegraded(c)
	}
	response.SuccessWithMeta(c, http.StatusOK, result.Items, &response.Meta{
		Limit: result.Limit,
		Total: len(result.Items),
	})
}

func writeError(c *gin.Context, err error) {
	if model.IsDegraded(err) {
		response.MarkDegraded(c)
	}
	response.AppError(c, err)
}
