package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/nur-collective/siyam/internal/http/api"
	"github.com/nur-collective/siyam/internal/verse"
)

// VerseModule serves the motivational verse pool.
func VerseModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/verses/daily", getDailyVerse)
	})
}

// GET /api/tracker/verses/daily
func getDailyVerse(ctx *gin.Context) (any, *api.APIError) {
	return verse.Random(), nil
}
