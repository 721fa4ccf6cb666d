package handler

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// Sitemap lists every registered route. The engine's route table is read
// lazily so the handler can be registered before the remaining routes.
func Sitemap(engine *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var endpoints []string
		for _, route := range engine.Routes() {
			if route.Path == "/" {
				continue
			}
			endpoints = append(endpoints, route.Method+" "+route.Path)
		}
		sort.Strings(endpoints)
		c.JSON(http.StatusOK, gin.H{"msg": "ok", "results": endpoints})
	}
}
