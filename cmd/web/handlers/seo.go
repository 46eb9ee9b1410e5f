package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bangla-news/cmd/web/services"
)

func SitemapHandler(svc *services.SEOService) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := svc.Sitemap(c.Request.Context())
		if err != nil {
			logRequestError(c, "sitemap failed", err)
			c.String(http.StatusInternalServerError, "sitemap unavailable")
			return
		}
		c.Header("Cache-Control", services.SitemapCacheControl)
		c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
	}
}

func RobotsHandler(svc *services.SEOService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", services.RobotsCacheControl)
		c.String(http.StatusOK, svc.Robots())
	}
}

func FeedHandler(svc *services.SEOService) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := svc.Feed(c.Request.Context())
		if err != nil {
			logRequestError(c, "feed failed", err)
			c.String(http.StatusInternalServerError, "feed unavailable")
			return
		}
		c.Header("Cache-Control", services.FeedCacheControl)
		c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", body)
	}
}
