package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"bangla-news/cmd/web/dto"
	"bangla-news/cmd/web/services"
)

const sessionKeyTheme = "theme"

// sessionTheme reads the theme from the cookie session, light when unset.
func sessionTheme(c *gin.Context) string {
	v, _ := sessions.Default(c).Get(sessionKeyTheme).(string)
	return services.NormalizeTheme(v)
}

// @Summary Get theme preference
// @Tags preferences
// @Produce json
// @Success 200 {object} dto.ThemeDTO
// @Router /api/v1/preferences/theme [get]
func GetThemeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.ThemeDTO{Theme: sessionTheme(c)})
	}
}

// @Summary Set theme preference
// @Description Stores light or dark in the session cookie
// @Tags preferences
// @Accept json
// @Produce json
// @Param body body dto.ThemeDTO true "Theme"
// @Success 200 {object} dto.ThemeDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 500 {object} dto.ErrorResponseDTO
// @Router /api/v1/preferences/theme [put]
func SetThemeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ThemeDTO
		if err := c.ShouldBindJSON(&req); err != nil || (req.Theme != services.ThemeLight && req.Theme != services.ThemeDark) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_theme"})
			return
		}

		session := sessions.Default(c)
		session.Set(sessionKeyTheme, req.Theme)
		if err := session.Save(); err != nil {
			logRequestError(c, "theme session save failed", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "session_unavailable"})
			return
		}
		c.JSON(http.StatusOK, dto.ThemeDTO{Theme: req.Theme})
	}
}
