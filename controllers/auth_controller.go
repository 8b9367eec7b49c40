package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/YDahdah/NutriLens/config"
	"github.com/YDahdah/NutriLens/services"

	"github.com/gin-gonic/gin"
)

// requestBaseURL rebuilds the public URL of this API from the request so
// verification links point back at the server that issued them.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func frontendRedirect(query string) string {
	return strings.TrimRight(config.App.FrontendURL, "/") + "/?" + query
}

func Register(c *gin.Context) {
	var input services.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name, email and password are required"})
		return
	}

	result, err := services.NewAuthService().Register(input, requestBaseURL(c))
	if err != nil {
		if errors.Is(err, services.ErrEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User with this email already exists"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful! Please verify your email to continue.",
		"data":    result,
	})
}

func VerifyEmail(c *gin.Context) {
	err := services.NewAuthService().VerifyEmail(c.Query("token"))
	if err != nil {
		var ve *services.VerifyEmailError
		code := "failed"
		if errors.As(err, &ve) {
			code = ve.Code
		}
		c.Redirect(http.StatusFound, frontendRedirect("verified_error="+code))
		return
	}
	c.Redirect(http.StatusFound, frontendRedirect("verified=1"))
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required"})
		return
	}

	user, token, err := services.NewAuthService().Login(input.Email, input.Password)
	if err != nil {
		var weak *services.WeakPasswordError
		switch {
		case errors.Is(err, services.ErrEmailNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Email not found"})
		case errors.Is(err, services.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Incorrect password"})
		case errors.Is(err, services.ErrRegistrationExpired):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Registration expired. Please register again."})
		case errors.Is(err, services.ErrEmailNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Please verify your email before logging in."})
		case errors.As(err, &weak):
			c.JSON(http.StatusBadRequest, gin.H{
				"success":                  false,
				"message":                  weak.Error(),
				"requires_password_change": true,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    gin.H{"user": user.Public(), "token": token},
	})
}

func Profile(c *gin.Context) {
	userID := c.GetUint("userID")
	user, err := services.NewAuthService().UserByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Profile error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": user.Public()}})
}

func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

type emailInput struct {
	Email string `json:"email"`
}

func ForgotPassword(c *gin.Context) {
	var input emailInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email address is required"})
		return
	}

	if err := services.NewAuthService().ForgotPassword(input.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error processing request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "If an account with that email exists, a code has been sent."})
}

type verifyCodeInput struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func VerifyResetCode(c *gin.Context) {
	var input verifyCodeInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and code are required"})
		return
	}

	if err := services.NewAuthService().VerifyResetCode(input.Email, input.Code); err != nil {
		if errors.Is(err, services.ErrInvalidResetCode) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired code"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Code verified"})
}

type resetPasswordInput struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

func ResetPassword(c *gin.Context) {
	var input resetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Code == "" || input.NewPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email, code, and new password are required"})
		return
	}

	err := services.NewAuthService().ResetPassword(input.Email, input.Code, input.NewPassword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidResetCode) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid or expired code"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password has been reset. You can now log in."})
}

func ResendVerification(c *gin.Context) {
	email := c.Query("email")
	if c.Request.Method == http.MethodPost {
		var input emailInput
		if err := c.ShouldBindJSON(&input); err == nil && input.Email != "" {
			email = input.Email
		}
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email address is required"})
		return
	}

	result, err := services.NewAuthService().ResendVerification(email, requestBaseURL(c))
	if err != nil {
		if errors.Is(err, services.ErrVerificationExpired) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Verification window expired. Please register again."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error processing request: " + err.Error()})
		return
	}
	if result.AccountMissing {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "If an account exists, a verification email has been sent."})
		return
	}
	if result.AlreadyVerified {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email already verified."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Verification email sent.", "data": result})
}
