package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoStore keeps browsers from caching authenticated pages, so the back button
// cannot show records after logout.
func NoStore() gin.HandlerFunc {
	return CacheControl("no-store, private")
}

// CacheControl sets the Cache-Control header to value.
func CacheControl(value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}
