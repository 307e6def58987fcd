// controllers/customer_auth.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"orderdesk-backend/config"
	"orderdesk-backend/models"
	"orderdesk-backend/services"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type customerRegisterInput struct {
	Type            string `form:"type"`
	Company         string `form:"company"`
	FirstName       string `form:"first_name"`
	LastName        string `form:"last_name"`
	Email           string `form:"email"`
	Phone           string `form:"phone"`
	DeliveryAddress string `form:"delivery_address"`
	Password        string `form:"password"`
}

type customerLoginInput struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// GetCustomerRegister shows the self-registration form
func GetCustomerRegister(c *gin.Context) {
	render(c, http.StatusOK, "customer_register.html", nil)
}

// PostCustomerRegister creates a customer account and logs it in.
func PostCustomerRegister(c *gin.Context) {
	var input customerRegisterInput
	if err := c.ShouldBind(&input); err != nil {
		utils.SetFlashError(c, "Invalid input")
		c.Redirect(http.StatusFound, "/customer/register")
		return
	}

	input.Email = strings.TrimSpace(input.Email)
	if !utils.ValidateEmail(input.Email) {
		utils.SetFlashError(c, "Please enter a valid email")
		c.Redirect(http.StatusFound, "/customer/register")
		return
	}
	if len(input.Password) < 6 {
		utils.SetFlashError(c, "Password must be at least 6 characters")
		c.Redirect(http.StatusFound, "/customer/register")
		return
	}
	if input.Type != models.CustomerTypeIndividual && input.Type != models.CustomerTypeBusiness {
		utils.SetFlashError(c, "Invalid customer type")
		c.Redirect(http.StatusFound, "/customer/register")
		return
	}
	if input.Type == models.CustomerTypeBusiness && strings.TrimSpace(input.Company) == "" {
		utils.SetFlashError(c, "Company name is required")
		c.Redirect(http.StatusFound, "/customer/register")
		return
	}
	if input.Type == models.CustomerTypeIndividual &&
		strings.TrimSpace(input.FirstName) == "" && strings.TrimSpace(input.LastName) == "" {
		utils.SetFlashError(c, "Enter a first or last name")
		c.Redirect(http.StatusFound, "/customer/register")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.SetFlashError(c, "Server error, please try again")
		c.Redirect(http.StatusFound, "/customer/register")
		return
	}

	customer := models.Customer{
		Type:            input.Type,
		Company:         input.Company,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		DeliveryAddress: input.DeliveryAddress,
		PasswordHash:    hash,
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		flashError(c, services.TranslateDBError(err), "Customer not found",
			"That email is already registered")
		c.Redirect(http.StatusFound, "/customer/register")
		return
	}

	// Auto-login after registration
	utils.SetCustomerID(c, customer.ID)
	utils.SetFlashSuccess(c, "Welcome!")
	c.Redirect(http.StatusFound, "/customer/orders")
}

// GetCustomerLogin shows the customer login form
func GetCustomerLogin(c *gin.Context) {
	render(c, http.StatusOK, "customer_login.html", nil)
}

// PostCustomerLogin verifies customer credentials and opens the customer
// session, leaving any admin session alone.
func PostCustomerLogin(c *gin.Context) {
	var input customerLoginInput
	if err := c.ShouldBind(&input); err != nil {
		utils.SetFlashError(c, "Invalid input")
		c.Redirect(http.StatusFound, "/customer/login")
		return
	}

	var customer models.Customer
	result := config.DB.Where("email = ?", strings.TrimSpace(input.Email)).First(&customer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			utils.SetFlashError(c, "Invalid credentials")
		} else {
			utils.SetFlashError(c, "Server error, please try again")
		}
		c.Redirect(http.StatusFound, "/customer/login")
		return
	}

	// Admin-created customers have no credential until one is assigned.
	if customer.PasswordHash == "" || !utils.CheckPasswordHash(input.Password, customer.PasswordHash) {
		utils.SetFlashError(c, "Invalid credentials")
		c.Redirect(http.StatusFound, "/customer/login")
		return
	}

	utils.SetCustomerID(c, customer.ID)
	utils.SetFlashSuccess(c, "Welcome back!")
	c.Redirect(http.StatusFound, "/customer/orders")
}

// CustomerLogout clears only the customer session.
func CustomerLogout(c *gin.Context) {
	utils.ClearCustomerID(c)
	c.Redirect(http.StatusFound, "/customer/login")
}
