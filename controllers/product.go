package controllers

import (
	"net/http"

	"orderdesk-backend/config"
	"orderdesk-backend/models"
	"orderdesk-backend/services"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type productFormInput struct {
	Name   string `form:"name"`
	Price  string `form:"price"`
	Active string `form:"active"`
}

// GetProducts lists all products
func GetProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Order("created_at DESC").Find(&products).Error; err != nil {
		utils.SetFlashError(c, "Failed to load products")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, http.StatusOK, "products_index.html", gin.H{"Products": products})
}

// GetNewProduct shows the new-product form
func GetNewProduct(c *gin.Context) {
	render(c, http.StatusOK, "products_new.html", nil)
}

// CreateProduct creates a product
func CreateProduct(c *gin.Context) {
	var input productFormInput
	if err := c.ShouldBind(&input); err != nil || input.Name == "" {
		utils.SetFlashError(c, "Name is required")
		c.Redirect(http.StatusFound, "/admin/products/new")
		return
	}

	price, err := utils.ParseAmount(input.Price)
	if err != nil {
		utils.SetFlashError(c, "Price must be a number")
		c.Redirect(http.StatusFound, "/admin/products/new")
		return
	}

	product := models.Product{
		Name:   input.Name,
		Price:  price,
		Active: input.Active != "",
	}
	if err := config.DB.Create(&product).Error; err != nil {
		flashError(c, services.TranslateDBError(err), "Product not found",
			"Could not create product")
		c.Redirect(http.StatusFound, "/admin/products/new")
		return
	}

	utils.SetFlashSuccess(c, "Product created")
	c.Redirect(http.StatusFound, "/admin/products")
}

// GetEditProduct shows the edit form
func GetEditProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SetFlashError(c, "Invalid product ID")
		c.Redirect(http.StatusFound, "/admin/products")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, "id = ?", productID).Error; err != nil {
		utils.SetFlashError(c, "Product not found")
		c.Redirect(http.StatusFound, "/admin/products")
		return
	}
	render(c, http.StatusOK, "products_edit.html", gin.H{"Product": product})
}

// UpdateProduct applies the edit form. Price changes never touch historical
// order line items, those carry their own snapshot.
func UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SetFlashError(c, "Invalid product ID")
		c.Redirect(http.StatusFound, "/admin/products")
		return
	}

	var input productFormInput
	if err := c.ShouldBind(&input); err != nil || input.Name == "" {
		utils.SetFlashError(c, "Name is required")
		c.Redirect(http.StatusFound, "/admin/products/"+productID.String()+"/edit")
		return
	}

	price, err := utils.ParseAmount(input.Price)
	if err != nil {
		utils.SetFlashError(c, "Price must be a number")
		c.Redirect(http.StatusFound, "/admin/products/"+productID.String()+"/edit")
		return
	}

	var product models.Product
	if err := config.DB.First(&product, "id = ?", productID).Error; err != nil {
		utils.SetFlashError(c, "Product not found")
		c.Redirect(http.StatusFound, "/admin/products")
		return
	}

	updates := map[string]interface{}{
		"name":   input.Name,
		"price":  price,
		"active": input.Active != "",
	}
	if err := config.DB.Model(&product).Updates(updates).Error; err != nil {
		utils.SetFlashError(c, "Could not update product")
		c.Redirect(http.StatusFound, "/admin/products/"+productID.String()+"/edit")
		return
	}

	utils.SetFlashSuccess(c, "Product updated")
	c.Redirect(http.StatusFound, "/admin/products")
}

// DeleteProduct removes a product. Products referenced by order line items
// keep those snapshots intact; the line items store their own name and
// price.
func DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SetFlashError(c, "Invalid product ID")
		c.Redirect(http.StatusFound, "/admin/products")
		return
	}

	if err := config.DB.Delete(&models.Product{}, "id = ?", productID).Error; err != nil {
		flashError(c, services.TranslateDBError(err), "Product not found",
			"Could not delete product")
		c.Redirect(http.StatusFound, "/admin/products")
		return
	}

	utils.SetFlashSuccess(c, "Product deleted")
	c.Redirect(http.StatusFound, "/admin/products")
}
