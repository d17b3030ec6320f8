package auth

import (
	"strings"

	"wordnest/models"
	"wordnest/tools"

	"github.com/jinzhu/gorm"
)

// RegisterInput carries everything a registration needs. Email is required
// for parents (reset links go there) and optional for students.
type RegisterInput struct {
	Username    string
	Password    string
	DisplayName string
	Email       string
	Role        string
}

// Register creates the user plus its zero-valued stats row in one
// transaction, then issues a token pair. No partial user is ever left
// behind: if the stats insert fails the user insert rolls back with it.
func Register(db *gorm.DB, in RegisterInput) (models.User, TokenPair, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.DisplayName == "" {
		in.DisplayName = in.Username
	}
	if !models.IsValidRole(in.Role) {
		in.Role = models.ROLE_STUDENT
	}

	if tools.CheckPassword(in.Password) != "" {
		return models.User{}, TokenPair{}, ErrWeakPassword
	}
	if in.Role == models.ROLE_PARENT || in.Email != "" {
		if !tools.ValidateEmail(in.Email) {
			return models.User{}, TokenPair{}, ErrInvalidEmailFormat
		}
	}

	// Exact, case-sensitive username match.
	var existing models.User
	if err := db.Where("username = ?", in.Username).First(&existing).Error; err == nil {
		return models.User{}, TokenPair{}, ErrUsernameTaken
	}
	if in.Email != "" {
		if err := db.Where("email = ?", in.Email).First(&existing).Error; err == nil {
			return models.User{}, TokenPair{}, ErrEmailTaken
		}
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}

	user := models.User{
		Username:    in.Username,
		Password:    hash,
		DisplayName: in.DisplayName,
		Email:       in.Email,
		Role:        in.Role,
	}

	tx := db.Begin()
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		return models.User{}, TokenPair{}, err
	}
	if err := tx.Create(&models.UserStats{UserID: user.ID}).Error; err != nil {
		tx.Rollback()
		return models.User{}, TokenPair{}, err
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return models.User{}, TokenPair{}, err
	}

	pair, err := GenerateTokens(db, user)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}
	return user, pair, nil
}

// Login verifies the credentials and issues a token pair. Unknown username
// and wrong password are indistinguishable: both answer
// ErrInvalidCredentials, and the unknown-username path still burns a
// bcrypt comparison so the timing matches.
func Login(db *gorm.DB, username, password string) (models.User, TokenPair, error) {
	var user models.User
	err := db.Where("username = ?", username).First(&user).Error
	if err != nil {
		CheckPasswordHash(password, dummyHash)
		return models.User{}, TokenPair{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, user.Password) {
		return models.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := GenerateTokens(db, user)
	if err != nil {
		return models.User{}, TokenPair{}, err
	}
	return user, pair, nil
}

// dummyHash is a well-formed cost-12 bcrypt hash compared against when the
// username doesn't exist, so both login failure paths cost one bcrypt
// verify. The comparison result is discarded.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// ChangeOwnPassword sets a new password for the caller's own account. The
// controller has already checked the current password. Refresh tokens are
// purged so every other device has to log in again; the access token the
// caller is holding keeps working until it expires.
func ChangeOwnPassword(db *gorm.DB, user models.User, newPassword string) error {
	if tools.CheckPassword(newPassword) != "" {
		return ErrWeakPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	tx := db.Begin()
	if err := tx.Model(&user).Update("password", hash).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(&models.Notification{
		UserID:  user.ID,
		Kind:    models.NOTIFICATION_KIND_PASSWORD_CHANGED,
		Message: "Your password was changed.",
	}).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// ResetUserPassword is the assisted reset: an admin may reset any password
// except their own (self-service goes through the email flow), a parent
// only those of students linked to them.
func ResetUserPassword(db *gorm.DB, requester models.User, targetID int64, newPassword string) error {
	if tools.CheckPassword(newPassword) != "" {
		return ErrWeakPassword
	}

	var target models.User
	if err := db.First(&target, targetID).Error; err != nil {
		return ErrUserNotFound
	}

	switch requester.Role {
	case models.ROLE_ADMIN:
		if requester.ID == target.ID {
			return ErrUnauthorized
		}
	case models.ROLE_PARENT:
		if target.Role != models.ROLE_STUDENT || target.ParentID == nil || *target.ParentID != requester.ID {
			return ErrUnauthorized
		}
	default:
		return ErrUnauthorized
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	tx := db.Begin()
	if err := tx.Model(&target).Update("password", hash).Error; err != nil {
		tx.Rollback()
		return err
	}
	// Forced logout on every device.
	if err := tx.Where("user_id = ?", target.ID).Delete(&models.RefreshToken{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(&models.Notification{
		UserID:  target.ID,
		Kind:    models.NOTIFICATION_KIND_PASSWORD_CHANGED,
		Message: "Your password was changed by " + requester.DisplayName + ".",
	}).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
