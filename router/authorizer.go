package router

import (
	"net/http"

	"wordnest/controllers"

	"github.com/gin-gonic/gin"
)

// ParentOnly blocks access for anyone who isn't a parent.
func ParentOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := controllers.GetUserLogged(c)
		if !ok {
			controllers.RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if !user.IsParent() {
			controllers.RespondError(c, "parent account required", http.StatusForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
