package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/enrolify/leads-api/pkg/errors"
)

// Detail is the error body contract: every failure renders a single
// human-readable detail field, never a raw internal error.
type Detail struct {
	Detail string `json:"detail"`
}

// JSON sends a success payload as-is.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error renders the error with its category status and a detail message.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Detail{Detail: appErr.Message})
}
