package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bangla-news/cmd/web/handlers"
	"bangla-news/cmd/web/middleware"
	"bangla-news/cmd/web/services"
	"bangla-news/config"
	"bangla-news/content"
	_ "bangla-news/docs"
)

// New wires every page service on top of gateway and returns the engine.
func New(cfg config.AppConfig, gateway content.Gateway, views services.ViewRecorder) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestTrace(), middleware.RequestLogging(), middleware.Recovery())

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 365,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(cfg.Session.Name, store))

	deps := services.Deps{
		Gateway:  gateway,
		Listing:  cfg.Listing,
		Site:     cfg.Site,
		Location: cfg.Site.Location(),
	}
	layout := services.NewLayoutService(deps)
	homeSvc := services.NewHomeService(deps, layout)
	categorySvc := services.NewCategoryService(deps, layout)
	articleSvc := services.NewArticleService(deps, layout, views)
	searchSvc := services.NewSearchService(deps, layout)
	seoSvc := services.NewSEOService(deps)

	r.GET("/health", handlers.HealthHandler(gateway, cfg.Content.Backend))

	r.GET("/sitemap.xml", handlers.SitemapHandler(seoSvc))
	r.GET("/robots.txt", handlers.RobotsHandler(seoSvc))
	r.GET("/rss.xml", handlers.FeedHandler(seoSvc))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.GET("/home", handlers.HomeHandler(homeSvc))

		api.GET("/categories", handlers.ListCategoriesHandler(categorySvc))
		api.GET("/categories/:slug", handlers.CategoryPageHandler(categorySvc))
		api.GET("/categories/:slug/latest", handlers.CategoryLatestHandler(categorySvc))

		api.GET("/articles/:slug", handlers.ArticleHandler(articleSvc))
		api.GET("/search", handlers.SearchHandler(searchSvc))

		api.GET("/preferences/theme", handlers.GetThemeHandler())
		api.PUT("/preferences/theme", handlers.SetThemeHandler())
	}

	return r
}
