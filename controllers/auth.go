// controllers/auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"orderdesk-backend/config"
	"orderdesk-backend/models"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type adminCredentialsInput struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// GetRegister shows the admin registration form
func GetRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

// PostRegister creates an admin user
func PostRegister(c *gin.Context) {
	var input adminCredentialsInput
	if err := c.ShouldBind(&input); err != nil {
		utils.SetFlashError(c, "Invalid input")
		c.Redirect(http.StatusFound, "/auth/register")
		return
	}

	input.Email = strings.TrimSpace(input.Email)
	if !utils.ValidateEmail(input.Email) {
		utils.SetFlashError(c, "Please enter a valid email")
		c.Redirect(http.StatusFound, "/auth/register")
		return
	}
	if len(input.Password) < 6 {
		utils.SetFlashError(c, "Password must be at least 6 characters")
		c.Redirect(http.StatusFound, "/auth/register")
		return
	}

	var existing models.User
	result := config.DB.Where("email = ?", input.Email).First(&existing)
	if result.Error == nil {
		utils.SetFlashError(c, "That email is already registered")
		c.Redirect(http.StatusFound, "/auth/register")
		return
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		utils.SetFlashError(c, "Server error, please try again")
		c.Redirect(http.StatusFound, "/auth/register")
		return
	}

	user := models.User{
		Email:    input.Email,
		Password: input.Password, // hashed in BeforeCreate hook
		IsActive: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.SetFlashError(c, "Failed to create user")
		c.Redirect(http.StatusFound, "/auth/register")
		return
	}

	utils.SetFlashSuccess(c, "Registration successful, you can now log in")
	c.Redirect(http.StatusFound, "/auth/login")
}

// GetLogin shows the admin login form
func GetLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

// PostLogin verifies admin credentials and opens the admin session. The
// failure message never says whether the email or the password was wrong.
func PostLogin(c *gin.Context) {
	var input adminCredentialsInput
	if err := c.ShouldBind(&input); err != nil {
		utils.SetFlashError(c, "Invalid input")
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", strings.TrimSpace(input.Email)).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.SetFlashError(c, "Invalid credentials")
		} else {
			utils.SetFlashError(c, "Server error, please try again")
		}
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.SetFlashError(c, "Invalid credentials")
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login", &now)

	utils.SetAdminID(c, user.ID)
	utils.SetFlashSuccess(c, "You are logged in")
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears only the admin session; a customer session in the same
// browser is untouched.
func Logout(c *gin.Context) {
	utils.ClearAdminID(c)
	c.Redirect(http.StatusFound, "/")
}
