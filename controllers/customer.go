package controllers

import (
	"net/http"
	"strings"

	"orderdesk-backend/config"
	"orderdesk-backend/models"
	"orderdesk-backend/services"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerFormInput struct {
	Type            string `form:"type"`
	Company         string `form:"company"`
	FirstName       string `form:"first_name"`
	LastName        string `form:"last_name"`
	Email           string `form:"email"`
	Phone           string `form:"phone"`
	DeliveryAddress string `form:"delivery_address"`
	Notes           string `form:"notes"`
}

// GetCustomers lists all customers, newest first
func GetCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("created_at DESC").Find(&customers).Error; err != nil {
		utils.SetFlashError(c, "Failed to load customers")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, http.StatusOK, "customers_index.html", gin.H{"Customers": customers})
}

// GetNewCustomer shows the new-customer form
func GetNewCustomer(c *gin.Context) {
	render(c, http.StatusOK, "customers_new.html", nil)
}

// CreateCustomer creates a customer from the admin form. Admin-created
// customers get no credential; they can self-register later with the same
// email only if this record is removed first (email is unique).
func CreateCustomer(c *gin.Context) {
	var input customerFormInput
	if err := c.ShouldBind(&input); err != nil {
		utils.SetFlashError(c, "Invalid input")
		c.Redirect(http.StatusFound, "/admin/customers/new")
		return
	}

	input.Email = strings.TrimSpace(input.Email)
	if !utils.ValidateEmail(input.Email) {
		utils.SetFlashError(c, "Please enter a valid email")
		c.Redirect(http.StatusFound, "/admin/customers/new")
		return
	}
	if input.Type == "" {
		input.Type = models.CustomerTypeIndividual
	}

	customer := models.Customer{
		Type:            input.Type,
		Company:         input.Company,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		DeliveryAddress: input.DeliveryAddress,
		Notes:           input.Notes,
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		flashError(c, services.TranslateDBError(err), "Customer not found",
			"Could not create customer (duplicate email?)")
		c.Redirect(http.StatusFound, "/admin/customers/new")
		return
	}

	utils.SetFlashSuccess(c, "Customer created")
	c.Redirect(http.StatusFound, "/admin/customers")
}

// GetEditCustomer shows the edit form
func GetEditCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SetFlashError(c, "Invalid customer ID")
		c.Redirect(http.StatusFound, "/admin/customers")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		utils.SetFlashError(c, "Customer not found")
		c.Redirect(http.StatusFound, "/admin/customers")
		return
	}
	render(c, http.StatusOK, "customers_edit.html", gin.H{"Customer": customer})
}

// UpdateCustomer applies the edit form
func UpdateCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SetFlashError(c, "Invalid customer ID")
		c.Redirect(http.StatusFound, "/admin/customers")
		return
	}

	var input customerFormInput
	if err := c.ShouldBind(&input); err != nil {
		utils.SetFlashError(c, "Invalid input")
		c.Redirect(http.StatusFound, "/admin/customers/"+customerID.String()+"/edit")
		return
	}

	input.Email = strings.TrimSpace(input.Email)
	if !utils.ValidateEmail(input.Email) {
		utils.SetFlashError(c, "Please enter a valid email")
		c.Redirect(http.StatusFound, "/admin/customers/"+customerID.String()+"/edit")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		utils.SetFlashError(c, "Customer not found")
		c.Redirect(http.StatusFound, "/admin/customers")
		return
	}

	updates := map[string]interface{}{
		"type":             input.Type,
		"company":          input.Company,
		"first_name":       input.FirstName,
		"last_name":        input.LastName,
		"email":            input.Email,
		"phone":            input.Phone,
		"delivery_address": input.DeliveryAddress,
		"notes":            input.Notes,
	}
	if err := config.DB.Model(&customer).Updates(updates).Error; err != nil {
		flashError(c, services.TranslateDBError(err), "Customer not found",
			"Could not update customer (duplicate email?)")
		c.Redirect(http.StatusFound, "/admin/customers/"+customerID.String()+"/edit")
		return
	}

	utils.SetFlashSuccess(c, "Customer updated")
	c.Redirect(http.StatusFound, "/admin/customers")
}

// DeleteCustomer removes a customer unless orders still reference it.
func DeleteCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SetFlashError(c, "Invalid customer ID")
		c.Redirect(http.StatusFound, "/admin/customers")
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, "id = ?", customerID).Error; err != nil {
			return services.TranslateDBError(err)
		}

		var orderCount int64
		if err := tx.Model(&models.Order{}).Where("customer_id = ?", customerID).
			Count(&orderCount).Error; err != nil {
			return err
		}
		if orderCount > 0 {
			return services.ErrConstraint
		}

		return services.TranslateDBError(tx.Delete(&customer).Error)
	})
	if err != nil {
		flashError(c, err, "Customer not found",
			"Cannot delete a customer with orders")
		c.Redirect(http.StatusFound, "/admin/customers")
		return
	}

	utils.SetFlashSuccess(c, "Customer deleted")
	c.Redirect(http.StatusFound, "/admin/customers")
}
