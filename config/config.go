package config

import (
	"encoding/json"
	"log"
	"os"
)

type Configuration struct {
	ApiPort string `json:"api_port"`
	LogPath string `json:"log_path"`

	Database string `json:"database"` // "sqlite3" or "postgres"
	DbHost   string `json:"db_host"`
	DbPort   string `json:"db_port"`
	DbUser   string `json:"db_user"`
	DbName   string `json:"db_name"`
	DbPass   string `json:"db_pass"`

	Security struct {
		JwtSecret            string `json:"jwt_secret"`
		AccessTokenMinutes   int    `json:"access_token_minutes"`
		RefreshTokenDays     int    `json:"refresh_token_days"`
		ResetTokenMinutes    int    `json:"reset_token_minutes"`
		BcryptCost           int    `json:"bcrypt_cost"`
		VerificationCodeLen  int    `json:"verification_code_len"`
		LinkRequestValidDays int    `json:"link_request_valid_days"`
	} `json:"security"`

	Mail struct {
		SmtpHost     string `json:"smtp_host"`
		SmtpPort     string `json:"smtp_port"`
		SmtpUser     string `json:"smtp_user"`
		SmtpPass     string `json:"smtp_pass"`
		FromAddress  string `json:"from_address"`
		ResetURLBase string `json:"reset_url_base"`
	} `json:"mail"`
}

func Get(path string) Configuration {
	b, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		log.Fatal(err)
	}
	return withDefaults(c)
}

// GetDefault returns a configuration without reading any file.
// Useful for local runs and tests.
func GetDefault() Configuration {
	return withDefaults(Configuration{})
}

func withDefaults(c Configuration) Configuration {
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.Security.AccessTokenMinutes <= 0 {
		c.Security.AccessTokenMinutes = 15
	}
	if c.Security.RefreshTokenDays <= 0 {
		c.Security.RefreshTokenDays = 7
	}
	if c.Security.ResetTokenMinutes <= 0 {
		c.Security.ResetTokenMinutes = 60
	}
	if c.Security.BcryptCost <= 0 {
		c.Security.BcryptCost = 12
	}
	if c.Security.VerificationCodeLen <= 0 {
		c.Security.VerificationCodeLen = 6
	}
	if c.Security.LinkRequestValidDays <= 0 {
		c.Security.LinkRequestValidDays = 7
	}

	// Secrets can always come from env so deploys don't need a rebuild.
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Security.JwtSecret = v
	}
	if c.Security.JwtSecret == "" {
		c.Security.JwtSecret = "CHANGE_ME"
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		c.Mail.SmtpHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		c.Mail.SmtpPort = v
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		c.Mail.SmtpUser = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		c.Mail.SmtpPass = v
	}

	return c
}
