package controllers

import (
	"errors"
	"net/http"

	"wordnest/auth"
	"wordnest/config"
	"wordnest/tools"

	"github.com/gin-gonic/gin"
)

var mailer tools.Mailer = tools.LogMailer{}

var conf config.Configuration = config.GetDefault()

// SetMailer hands the process-wide mailer to the controllers, mirroring
// db.SetConfigurations.
func SetMailer(m tools.Mailer) {
	if m != nil {
		mailer = m
	}
}

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(200, payload)
}

// RespondAuthError maps the auth package's sentinel errors to HTTP
// statuses. Unknown errors fall through as a 500 with a generic body.
func RespondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrUsernameTaken), errors.Is(err, auth.ErrEmailTaken):
		RespondError(c, err.Error(), http.StatusConflict)
	case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidEmailFormat):
		RespondError(c, err.Error(), http.StatusBadRequest)
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrRefreshTokenExpired),
		errors.Is(err, auth.ErrInvalidOrExpiredToken):
		RespondError(c, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, auth.ErrUnauthorized):
		RespondError(c, err.Error(), http.StatusForbidden)
	case errors.Is(err, auth.ErrUserNotFound):
		RespondError(c, err.Error(), http.StatusNotFound)
	default:
		RespondError(c, "internal error", http.StatusInternalServerError)
	}
}
