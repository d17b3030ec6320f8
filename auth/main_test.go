package auth

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"wordnest/config"
	dbpkg "wordnest/db"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var testDBCounter int64

// openTestDB gives each test its own named in-memory sqlite database.
// MaxOpenConns(1) keeps gorm's pool from silently opening a second, empty
// memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("file:authtest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	conn, err := gorm.Open("sqlite3", name)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	conn.DB().SetMaxOpenConns(1)
	conn.LogMode(false)
	dbpkg.AutoMigrate(conn)

	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestMain(m *testing.M) {
	cfg := config.GetDefault()
	// Low bcrypt cost keeps the suite fast; the production default stays 12.
	cfg.Security.BcryptCost = 4
	cfg.Security.JwtSecret = "test-secret"
	SetConfigurations(cfg)
	m.Run()
}

// nopMailer mirrors tools.NopMailer but lets tests capture the raw token.
type captureMailer struct {
	lastEmail string
	lastToken string
	fail      bool
}

func (m *captureMailer) SendPasswordReset(toEmail, rawToken string, _ time.Duration) error {
	if m.fail {
		return fmt.Errorf("smtp down")
	}
	m.lastEmail = toEmail
	m.lastToken = rawToken
	return nil
}

func (m *captureMailer) SendPasswordChanged(string) error        { return nil }
func (m *captureMailer) SendVerificationCode(string, string) error { return nil }
