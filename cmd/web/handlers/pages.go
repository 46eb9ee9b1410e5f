package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bangla-news/internal/logger"
	"bangla-news/cmd/web/dto"
	"bangla-news/cmd/web/services"
	"bangla-news/content"
	"bangla-news/trace"
)

const (
	defaultLatestLimit = 6
	maxLatestLimit     = 60
)

// writeLookupError maps a failed page lookup: missing content is 404, a
// backend failure is 502.
func writeLookupError(c *gin.Context, err error) {
	if errors.Is(err, content.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not_found"})
		return
	}
	logRequestError(c, "page lookup failed", err)
	c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "content_unavailable"})
}

func logRequestError(c *gin.Context, msg string, err error) {
	fields := trace.LogFields(c.Request.Context())
	fields["path"] = c.Request.URL.Path
	fields["error"] = err.Error()
	logger.ErrorWithFields(msg, fields)
}

// queryInt parses a query value, falling back to def when missing or not a number.
func queryInt(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}

// @Summary Home page
// @Description Featured, trending and per-category sections with the page chrome
// @Tags pages
// @Produce json
// @Success 200 {object} dto.HomePageDTO
// @Router /api/v1/home [get]
func HomeHandler(svc *services.HomeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := svc.Get(c.Request.Context())
		page.Layout.Theme = sessionTheme(c)
		c.JSON(http.StatusOK, page)
	}
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryDTO
// @Failure 502 {object} dto.ErrorResponseDTO
// @Router /api/v1/categories [get]
func ListCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context())
		if err != nil {
			writeLookupError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Category page
// @Description One page of a category's articles with pagination controls
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.CategoryPageDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 502 {object} dto.ErrorResponseDTO
// @Router /api/v1/categories/{slug} [get]
func CategoryPageHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := queryInt(c, "page", 1)
		out, err := svc.Get(c.Request.Context(), c.Param("slug"), page)
		if err != nil {
			writeLookupError(c, err)
			return
		}
		out.Layout.Theme = sessionTheme(c)
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Latest articles of a category
// @Description Used by the home page "load more" button
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Param limit query int false "Number of articles" default(6)
// @Success 200 {object} dto.LatestDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 502 {object} dto.ErrorResponseDTO
// @Router /api/v1/categories/{slug}/latest [get]
func CategoryLatestHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := queryInt(c, "limit", defaultLatestLimit)
		if limit <= 0 {
			limit = defaultLatestLimit
		}
		if limit > maxLatestLimit {
			limit = maxLatestLimit
		}
		out, err := svc.Latest(c.Request.Context(), c.Param("slug"), limit)
		if err != nil {
			writeLookupError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Article page
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} dto.ArticlePageDTO
// @Failure 404 {object} dto.ErrorResponseDTO
// @Failure 502 {object} dto.ErrorResponseDTO
// @Router /api/v1/articles/{slug} [get]
func ArticleHandler(svc *services.ArticleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Get(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeLookupError(c, err)
			return
		}
		out.Layout.Theme = sessionTheme(c)
		c.JSON(http.StatusOK, out)
	}
}

// @Summary Search articles
// @Tags search
// @Produce json
// @Param q query string false "Search text"
// @Success 200 {object} dto.SearchPageDTO
// @Router /api/v1/search [get]
func SearchHandler(svc *services.SearchService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out := svc.Page(c.Request.Context(), c.Query("q"))
		out.Layout.Theme = sessionTheme(c)
		c.JSON(http.StatusOK, out)
	}
}
