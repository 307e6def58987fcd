// controllers/order.go
package controllers

import (
	"encoding/json"
	"net/http"

	"orderdesk-backend/config"
	"orderdesk-backend/models"
	"orderdesk-backend/services"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderController wires the admin order pages to the lifecycle and ledger
// services.
type OrderController struct {
	Orders   *services.OrderService
	Payments *services.PaymentService
}

// lineItemForm is one selected product row as posted by the new-order form.
// The picker serializes each row to JSON at submit time, which is when the
// unit price snapshot is taken.
type lineItemForm struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

type createOrderInput struct {
	CustomerID string   `form:"customer_id"`
	Notes      string   `form:"notes"`
	Items      []string `form:"items"`
}

type statusInput struct {
	Status string `form:"status"`
	Note   string `form:"note"`
}

type paymentInput struct {
	Amount string `form:"amount"`
	Method string `form:"method"`
	Note   string `form:"note"`
}

// Index lists all orders with their payment summaries.
func (ctl *OrderController) Index(c *gin.Context) {
	orders, err := ctl.Orders.ListAll()
	if err != nil {
		flashError(c, err, "Orders not found", "Failed to load orders")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, http.StatusOK, "orders_index.html", gin.H{"Orders": orders})
}

// New shows the new-order form with the customer list and the active
// product picker. Inactive products stay out of the picker but remain
// referenced by historical orders.
func (ctl *OrderController) New(c *gin.Context) {
	var customers []models.Customer
	if err := config.DB.Order("created_at DESC").Find(&customers).Error; err != nil {
		utils.SetFlashError(c, "Failed to load customers")
		c.Redirect(http.StatusFound, "/admin/orders")
		return
	}

	var products []models.Product
	if err := config.DB.Where("active = ?", true).Order("created_at DESC").
		Find(&products).Error; err != nil {
		utils.SetFlashError(c, "Failed to load products")
		c.Redirect(http.StatusFound, "/admin/orders")
		return
	}

	render(c, http.StatusOK, "orders_new.html", gin.H{
		"Customers": customers,
		"Products":  products,
	})
}

// Create creates an order with its line items, all-or-nothing.
func (ctl *OrderController) Create(c *gin.Context) {
	var input createOrderInput
	if err := c.ShouldBind(&input); err != nil {
		utils.SetFlashError(c, "Invalid input")
		c.Redirect(http.StatusFound, "/admin/orders/new")
		return
	}

	customerID, err := uuid.Parse(input.CustomerID)
	if err != nil {
		utils.SetFlashError(c, "Select a customer")
		c.Redirect(http.StatusFound, "/admin/orders/new")
		return
	}

	items := make([]services.LineItemInput, 0, len(input.Items))
	for _, raw := range input.Items {
		var item lineItemForm
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			utils.SetFlashError(c, "Invalid line item")
			c.Redirect(http.StatusFound, "/admin/orders/new")
			return
		}
		items = append(items, services.LineItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order, err := ctl.Orders.Create(customerID, input.Notes, items)
	if err != nil {
		flashError(c, err, "Customer not found", "Could not create order")
		c.Redirect(http.StatusFound, "/admin/orders/new")
		return
	}

	utils.SetFlashSuccess(c, "Order created")
	c.Redirect(http.StatusFound, "/admin/orders/"+order.ID.String())
}

// Show renders one order's detail: items, payments, status history and the
// derived summary.
func (ctl *OrderController) Show(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SetFlashError(c, "Invalid order ID")
		c.Redirect(http.StatusFound, "/admin/orders")
		return
	}

	order, err := ctl.Orders.Get(orderID)
	if err != nil {
		flashError(c, err, "Order not found", "Failed to load order")
		c.Redirect(http.StatusFound, "/admin/orders")
		return
	}

	summary, err := ctl.Payments.GetSummary(orderID)
	if err != nil {
		flashError(c, err, "Order not found", "Failed to load order")
		c.Redirect(http.StatusFound, "/admin/orders")
		return
	}

	render(c, http.StatusOK, "orders_detail.html", gin.H{
		"Order":   order,
		"Summary": summary,
	})
}

// UpdateStatus advances the order's job status.
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SetFlashError(c, "Invalid order ID")
		c.Redirect(http.StatusFound, "/admin/orders")
		return
	}

	var input statusInput
	if err := c.ShouldBind(&input); err != nil {
		utils.SetFlashError(c, "Invalid input")
		c.Redirect(http.StatusFound, "/admin/orders/"+orderID.String())
		return
	}

	if _, err := ctl.Orders.TransitionStatus(orderID, input.Status, input.Note); err != nil {
		flashError(c, err, "Order not found", "Could not update status")
		c.Redirect(http.StatusFound, "/admin/orders/"+orderID.String())
		return
	}

	utils.SetFlashSuccess(c, "Job status updated")
	c.Redirect(http.StatusFound, "/admin/orders/"+orderID.String())
}

// RecordPayment appends a payment to the order's ledger.
func (ctl *OrderController) RecordPayment(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SetFlashError(c, "Invalid order ID")
		c.Redirect(http.StatusFound, "/admin/orders")
		return
	}

	var input paymentInput
	if err := c.ShouldBind(&input); err != nil {
		utils.SetFlashError(c, "Invalid input")
		c.Redirect(http.StatusFound, "/admin/orders/"+orderID.String())
		return
	}

	amount, err := utils.ParseAmount(input.Amount)
	if err != nil {
		utils.SetFlashError(c, "Amount must be a number")
		c.Redirect(http.StatusFound, "/admin/orders/"+orderID.String())
		return
	}

	if _, err := ctl.Payments.Record(orderID, amount, input.Method, input.Note); err != nil {
		flashError(c, err, "Order not found", "Could not record payment")
		c.Redirect(http.StatusFound, "/admin/orders/"+orderID.String())
		return
	}

	utils.SetFlashSuccess(c, "Payment recorded")
	c.Redirect(http.StatusFound, "/admin/orders/"+orderID.String())
}
