// utils/session.go
package utils

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session keys. Admin and customer ids live under separate keys so that
// logging out of one role never touches the other.
const (
	sessionKeyAdmin    = "admin_id"
	sessionKeyCustomer = "customer_id"
	sessionKeyError    = "flash_error"
	sessionKeySuccess  = "flash_success"
)

// Gin context keys set by the Require* middlewares.
const (
	CtxAdminID    = "adminId"
	CtxCustomerID = "customerId"
)

func SetFlashError(c *gin.Context, msg string) {
	s := sessions.Default(c)
	s.Set(sessionKeyError, msg)
	s.Save()
}

func SetFlashSuccess(c *gin.Context, msg string) {
	s := sessions.Default(c)
	s.Set(sessionKeySuccess, msg)
	s.Save()
}

// PopFlashes returns and clears the transient flash messages, mirroring the
// redirect-after-post contract: each message is shown exactly once.
func PopFlashes(c *gin.Context) (errMsg, successMsg string) {
	s := sessions.Default(c)
	if v, ok := s.Get(sessionKeyError).(string); ok {
		errMsg = v
	}
	if v, ok := s.Get(sessionKeySuccess).(string); ok {
		successMsg = v
	}
	s.Delete(sessionKeyError)
	s.Delete(sessionKeySuccess)
	s.Save()
	return
}

func SetAdminID(c *gin.Context, id uuid.UUID) {
	s := sessions.Default(c)
	s.Set(sessionKeyAdmin, id.String())
	s.Save()
}

func AdminID(c *gin.Context) (uuid.UUID, bool) {
	s := sessions.Default(c)
	v, ok := s.Get(sessionKeyAdmin).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func ClearAdminID(c *gin.Context) {
	s := sessions.Default(c)
	s.Delete(sessionKeyAdmin)
	s.Save()
}

func SetCustomerID(c *gin.Context, id uuid.UUID) {
	s := sessions.Default(c)
	s.Set(sessionKeyCustomer, id.String())
	s.Save()
}

func CustomerID(c *gin.Context) (uuid.UUID, bool) {
	s := sessions.Default(c)
	v, ok := s.Get(sessionKeyCustomer).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func ClearCustomerID(c *gin.Context) {
	s := sessions.Default(c)
	s.Delete(sessionKeyCustomer)
	s.Save()
}

// RequireAdmin gates the admin area. Unauthenticated requests get a flash
// and a redirect to the admin login.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := AdminID(c)
		if !ok {
			SetFlashError(c, "You must log in to view that page")
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
			return
		}
		c.Set(CtxAdminID, id)
		c.Next()
	}
}

// RequireCustomer gates the customer self-service area.
func RequireCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := CustomerID(c)
		if !ok {
			SetFlashError(c, "Log in as a customer to view that page")
			c.Redirect(http.StatusFound, "/customer/login")
			c.Abort()
			return
		}
		c.Set(CtxCustomerID, id)
		c.Next()
	}
}
