// controllers/customer_orders.go
package controllers

import (
	"net/http"

	"orderdesk-backend/services"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CustomerOrderController serves the customer self-service area. Every read
// is scoped to the logged-in customer; other customers' orders read as not
// found.
type CustomerOrderController struct {
	Orders   *services.OrderService
	Payments *services.PaymentService
}

// MyOrders lists the logged-in customer's orders with payment summaries.
func (ctl *CustomerOrderController) MyOrders(c *gin.Context) {
	customerID := c.MustGet(utils.CtxCustomerID).(uuid.UUID)

	orders, err := ctl.Orders.ListForCustomer(customerID)
	if err != nil {
		flashError(c, err, "Orders not found", "Failed to load orders")
		c.Redirect(http.StatusFound, "/customer/login")
		return
	}

	render(c, http.StatusOK, "my_orders.html", gin.H{
		"Orders":     orders,
		"CustomerID": customerID,
	})
}

// MyOrderDetail shows one of the customer's own orders.
func (ctl *CustomerOrderController) MyOrderDetail(c *gin.Context) {
	customerID := c.MustGet(utils.CtxCustomerID).(uuid.UUID)

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SetFlashError(c, "Order not found")
		c.Redirect(http.StatusFound, "/customer/orders")
		return
	}

	order, err := ctl.Orders.GetForCustomer(customerID, orderID)
	if err != nil {
		flashError(c, err, "Order not found", "Failed to load order")
		c.Redirect(http.StatusFound, "/customer/orders")
		return
	}

	summary, err := ctl.Payments.GetSummary(orderID)
	if err != nil {
		flashError(c, err, "Order not found", "Failed to load order")
		c.Redirect(http.StatusFound, "/customer/orders")
		return
	}

	render(c, http.StatusOK, "my_order_detail.html", gin.H{
		"Order":   order,
		"Summary": summary,
	})
}
