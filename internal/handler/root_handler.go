package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/enrolify/leads-api/pkg/response"
)

// WelcomeResponse describes the service to a caller hitting the root URL.
type WelcomeResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Docs   string `json:"docs"`
}

// RootHandler serves the root welcome endpoint.
type RootHandler struct {
	title       string
	description string
}

// NewRootHandler constructs a root handler.
func NewRootHandler(title, description string) *RootHandler {
	return &RootHandler{title: title, description: description}
}

// Welcome godoc
// @Summary Service information
// @Tags Root
// @Produce json
// @Success 200 {object} handler.WelcomeResponse
// @Router / [get]
func (h *RootHandler) Welcome(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	response.JSON(c, http.StatusOK, WelcomeResponse{
		Title:  h.title,
		Detail: fmt.Sprintf("%s. For more information about available API endpoints, visit the /docs endpoint.", h.description),
		Docs:   fmt.Sprintf("%s://%s/docs/index.html", scheme, c.Request.Host),
	})
}
