package controllers

import (
	"net/http"

	"orderdesk-backend/config"
	"orderdesk-backend/models"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// Home is the public landing page. Logged-in principals are sent straight
// to their area.
func Home(c *gin.Context) {
	if _, ok := utils.AdminID(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	if _, ok := utils.CustomerID(c); ok {
		c.Redirect(http.StatusFound, "/customer/orders")
		return
	}
	render(c, http.StatusOK, "home.html", nil)
}

// GetDashboardOverview shows the admin dashboard with a few headline counts.
func GetDashboardOverview(c *gin.Context) {
	var customerCount, productCount, orderCount int64
	config.DB.Model(&models.Customer{}).Count(&customerCount)
	config.DB.Model(&models.Product{}).Count(&productCount)
	config.DB.Model(&models.Order{}).Count(&orderCount)

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"CustomerCount": customerCount,
		"ProductCount":  productCount,
		"OrderCount":    orderCount,
	})
}
