package auth

import (
	"time"

	"wordnest/config"
)

var conf config.Configuration = config.GetDefault()

// SetConfigurations hands the loaded configuration to the auth package,
// the same way db.SetConfigurations does for the connection layer.
func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

func jwtSecret() []byte {
	return []byte(conf.Security.JwtSecret)
}

func accessTokenTTL() time.Duration {
	return time.Duration(conf.Security.AccessTokenMinutes) * time.Minute
}

func refreshTokenTTL() time.Duration {
	return time.Duration(conf.Security.RefreshTokenDays) * 24 * time.Hour
}

func resetTokenTTL() time.Duration {
	return time.Duration(conf.Security.ResetTokenMinutes) * time.Minute
}

func bcryptCost() int {
	return conf.Security.BcryptCost
}
