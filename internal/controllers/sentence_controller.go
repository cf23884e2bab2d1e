package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AlostXD/police-lumos-rp/internal/models"
	"github.com/AlostXD/police-lumos-rp/internal/services"
)

// SentenceController handles HTTP requests that compute a sentence.
type SentenceController struct {
	svc services.SentenceService
}

// NewSentenceController creates a new instance of SentenceController
func NewSentenceController(svc services.SentenceService) *SentenceController {
	return &SentenceController{svc: svc}
}

// Register registers the routes for the sentence controller
func (ctrl *SentenceController) Register(g *echo.Group) {
	g.POST("/sentences", ctrl.CalculateSentence)
}

// CalculateSentence computes totals and the citation line for the posted selection.
func (ctrl *SentenceController) CalculateSentence(c echo.Context) error {
	var req models.SentenceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	res, err := ctrl.svc.Calculate(c.Request().Context(), &req)
	if errors.Is(err, services.ErrUnknownCrime) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to calculate sentence",
		})
	}

	return c.JSON(http.StatusOK, res)
}
