package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinRequireCredentials adapts the net/http Guard to Gin. The guard stays
// framework-agnostic; only this bridge knows about Gin.
func GinRequireCredentials(g *Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		})

		handler := g.RequireCredentials(next)

		handler.ServeHTTP(c.Writer, c.Request)

		// If the guard already handled the response, stop the Gin chain
		if c.Writer.Written() {
			c.Abort()
			return
		}
	}
}
