package services

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/YDahdah/NutriLens/config"
	"github.com/YDahdah/NutriLens/models"
	"github.com/YDahdah/NutriLens/utils"

	"gorm.io/gorm"
)

const verificationWindow = 24 * time.Hour

var (
	ErrEmailExists         = errors.New("user with this email already exists")
	ErrEmailNotFound       = errors.New("email not found")
	ErrWrongPassword       = errors.New("incorrect password")
	ErrEmailNotVerified    = errors.New("please verify your email before logging in")
	ErrRegistrationExpired = errors.New("registration expired, please register again")
	ErrVerificationExpired = errors.New("verification window expired, please register again")
	ErrInvalidResetCode    = errors.New("invalid or expired code")
	ErrUserNotFound        = errors.New("user not found")
)

// WeakPasswordError is returned on first login when the stored password no
// longer meets the policy. The client must prompt for a password change.
type WeakPasswordError struct {
	Reason string
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("Weak password detected. %s Please use a strong password.", e.Reason)
}

// VerifyEmailError carries the error code appended to the frontend redirect.
type VerifyEmailError struct {
	Code string
}

func (e *VerifyEmailError) Error() string { return "email verification failed: " + e.Code }

type AuthService struct{}

func NewAuthService() *AuthService { return &AuthService{} }

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResult struct {
	Email           string `json:"email"`
	EmailSent       bool   `json:"emailSent"`
	VerificationURL string `json:"verificationUrl,omitempty"`
}

// Register creates an unverified account and emails a verification link.
// baseURL is the public address of this API, taken from the request, so the
// link verifies server-side and redirects straight to the frontend.
func (s *AuthService) Register(req RegisterRequest, baseURL string) (*RegisterResult, error) {
	if err := utils.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	var existing models.User
	err := config.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	expiresAt := time.Now().UTC().Add(verificationWindow)
	user := models.User{
		Name:                  req.Name,
		Email:                 req.Email,
		Password:              hashed,
		EmailVerified:         false,
		VerificationExpiresAt: &expiresAt,
		FirstLogin:            true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	verifyURL, sent := s.sendVerificationLink(req.Email, baseURL)
	result := &RegisterResult{Email: req.Email, EmailSent: sent}
	if !sent {
		result.VerificationURL = verifyURL
	}
	return result, nil
}

func (s *AuthService) sendVerificationLink(email, baseURL string) (string, bool) {
	token, err := utils.GenerateEmailToken(email)
	if err != nil {
		log.Printf("Error generating email token for %s: %v", email, err)
		return "", false
	}
	verifyURL := fmt.Sprintf("%s/api/auth/verify-email?token=%s",
		strings.TrimRight(baseURL, "/"), url.QueryEscape(token))
	return verifyURL, utils.SendVerificationEmail(email, verifyURL)
}

// VerifyEmail marks the account behind the token as verified. Failures come
// back as VerifyEmailError so the handler can redirect with the right code.
func (s *AuthService) VerifyEmail(token string) error {
	if token == "" {
		return &VerifyEmailError{Code: "no_token"}
	}
	decoded, err := url.QueryUnescape(token)
	if err != nil {
		decoded = token
	}
	claims, err := utils.ParseToken(decoded)
	if err != nil {
		return &VerifyEmailError{Code: "invalid_token"}
	}
	if t, _ := claims["type"].(string); t != "verify" {
		return &VerifyEmailError{Code: "invalid_token"}
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return &VerifyEmailError{Code: "invalid_token"}
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &VerifyEmailError{Code: "user_not_found"}
		}
		return &VerifyEmailError{Code: "failed"}
	}
	if user.VerificationExpiresAt != nil && user.VerificationExpiresAt.Before(time.Now().UTC()) {
		config.DB.Delete(&user)
		return &VerifyEmailError{Code: "expired"}
	}

	err = config.DB.Model(&user).Updates(map[string]any{
		"email_verified":          true,
		"verification_expires_at": nil,
	}).Error
	if err != nil {
		return &VerifyEmailError{Code: "failed"}
	}
	return nil
}

// Login authenticates a user and issues an access token. On first login the
// supplied password is re-checked against the current policy so accounts
// created under an older policy get prompted to change it.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrEmailNotFound
		}
		return nil, "", err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrWrongPassword
	}
	if !user.EmailVerified {
		if user.VerificationExpiresAt != nil && user.VerificationExpiresAt.Before(time.Now().UTC()) {
			config.DB.Delete(&user)
			return nil, "", ErrRegistrationExpired
		}
		return nil, "", ErrEmailNotVerified
	}

	if user.FirstLogin {
		if err := utils.ValidatePasswordStrength(password); err != nil {
			return nil, "", &WeakPasswordError{Reason: err.Error()}
		}
	}

	now := time.Now().UTC()
	updates := map[string]any{"last_login": now}
	if user.FirstLogin {
		updates["first_login"] = false
	}
	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *AuthService) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ForgotPassword stores a hashed 6-digit reset code valid for 10 minutes and
// emails it. It never reveals whether the account exists.
func (s *AuthService) ForgotPassword(email string) error {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	code := utils.GenerateResetCode()
	codeHash, err := utils.HashPassword(code)
	if err != nil {
		return err
	}
	expiresAt := time.Now().UTC().Add(10 * time.Minute)
	err = config.DB.Model(&user).Updates(map[string]any{
		"reset_code_hash":       codeHash,
		"reset_code_expires_at": expiresAt,
	}).Error
	if err != nil {
		return err
	}

	if !utils.SendPasswordResetEmail(email, code) {
		log.Printf("Password reset code for %s: %s", email, code)
	}
	return nil
}

// VerifyResetCode checks a reset code without consuming it.
func (s *AuthService) VerifyResetCode(email, code string) error {
	_, err := s.userWithValidResetCode(email, code)
	return err
}

// ResetPassword sets a new password after the code checks out and clears the
// reset fields so the code cannot be replayed.
func (s *AuthService) ResetPassword(email, code, newPassword string) error {
	if err := utils.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	user, err := s.userWithValidResetCode(email, code)
	if err != nil {
		return err
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return config.DB.Model(user).Updates(map[string]any{
		"password":              hashed,
		"reset_code_hash":       "",
		"reset_code_expires_at": nil,
	}).Error
}

func (s *AuthService) userWithValidResetCode(email, code string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidResetCode
		}
		return nil, err
	}
	if user.ResetCodeExpiresAt == nil || user.ResetCodeExpiresAt.Before(time.Now().UTC()) {
		return nil, ErrInvalidResetCode
	}
	if user.ResetCodeHash == "" || !utils.CheckPasswordHash(code, user.ResetCodeHash) {
		return nil, ErrInvalidResetCode
	}
	return &user, nil
}

type ResendResult struct {
	AccountMissing  bool   `json:"-"`
	AlreadyVerified bool   `json:"-"`
	EmailSent       bool   `json:"emailSent"`
	VerificationURL string `json:"verificationUrl,omitempty"`
}

// ResendVerification re-issues the verification link for an unverified
// account. Expired registrations are deleted and must re-register.
func (s *AuthService) ResendVerification(email, baseURL string) (*ResendResult, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ResendResult{AccountMissing: true}, nil
		}
		return nil, err
	}
	if user.EmailVerified {
		return &ResendResult{AlreadyVerified: true}, nil
	}
	if user.VerificationExpiresAt != nil && user.VerificationExpiresAt.Before(time.Now().UTC()) {
		config.DB.Delete(&user)
		return nil, ErrVerificationExpired
	}

	verifyURL, sent := s.sendVerificationLink(email, baseURL)
	result := &ResendResult{EmailSent: sent}
	if !sent {
		result.VerificationURL = verifyURL
	}
	return result, nil
}

// StartReminderScheduler launches a loop that emails verified users who have
// been inactive for five hours or more. The first check waits one full
// interval so fresh deployments do not spam users.
func (s *AuthService) StartReminderScheduler() {
	const interval = 5 * time.Hour
	go func() {
		time.Sleep(interval)
		for {
			s.sendReminders()
			time.Sleep(interval)
		}
	}()
	log.Println("Reminder email scheduler started (checks every 5 hours)")
}

func (s *AuthService) sendReminders() {
	now := time.Now().UTC()
	cutoff := now.Add(-5 * time.Hour)

	var users []models.User
	err := config.DB.
		Where("email_verified = ?", true).
		Where("last_login IS NOT NULL AND last_login < ?", cutoff).
		Where("last_reminder_sent IS NULL OR last_reminder_sent < ?", cutoff).
		Find(&users).Error
	if err != nil {
		log.Printf("Error in reminder check: %v", err)
		return
	}

	sentCount := 0
	for i := range users {
		if !utils.SendReminderEmail(users[i].Email, users[i].Name) {
			continue
		}
		err := config.DB.Model(&users[i]).Update("last_reminder_sent", now).Error
		if err != nil {
			log.Printf("Error updating reminder timestamp for %s: %v", users[i].Email, err)
			continue
		}
		sentCount++
	}
	if sentCount > 0 {
		log.Printf("Sent %d reminder email(s)", sentCount)
	}
}
