package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AlostXD/police-lumos-rp/internal/models"
	"github.com/AlostXD/police-lumos-rp/internal/services"
)

// CrimeController groups the routes and handlers for the Crime entity
// (one article of the penal code). All of them are read-only.
type CrimeController struct {
	// svc is the service interface that reads crimes from the store,
	// possibly through the in-memory cache.
	svc services.CrimeService
}

// NewCrimeController receives a CrimeService implementation and returns
// a configured CrimeController.
func NewCrimeController(svc services.CrimeService) *CrimeController {
	return &CrimeController{svc: svc}
}

// Register attaches the crime routes to an echo.Group that already
// carries the route prefix (for example "/api/v1").
func (ctr *CrimeController) Register(g *echo.Group) {
	// GET /crimes -> GetCrimes
	g.GET("/crimes", ctr.GetCrimes)
	// GET /crimes/search?q= -> SearchCrimes
	g.GET("/crimes/search", ctr.SearchCrimes)
}

// GetCrimes is the handler for GET /crimes.
//   - Passes the request context down so a dropped client cancels the query.
//   - Asks the service for every crime, ordered by id.
//   - On error, answers 500 with {"error": ...}.
//   - On success, answers 200 with the JSON array (empty table gives []).
func (ctr *CrimeController) GetCrimes(c echo.Context) error {
	// 1. List all crimes.
	crimes, err := ctr.svc.ListCrimes(c.Request().Context())
	if err != nil {
		// 2. Store failure: 500 with the error message.
		return c.JSON(
			http.StatusInternalServerError,
			map[string]string{"error": err.Error()},
		)
	}

	// 3. 200 with the list.
	return c.JSON(http.StatusOK, nonNil(crimes))
}

// SearchCrimes is the handler for GET /crimes/search?q=.
//   - Matches q against title or article, ignoring case.
//   - A missing or empty q returns the whole list, like GET /crimes.
func (ctr *CrimeController) SearchCrimes(c echo.Context) error {
	// 1. Filter with the same rule the calculator uses.
	crimes, err := ctr.svc.SearchCrimes(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		// 2. Store failure: 500 with the error message.
		return c.JSON(
			http.StatusInternalServerError,
			map[string]string{"error": err.Error()},
		)
	}

	return c.JSON(http.StatusOK, nonNil(crimes))
}

// nonNil makes an empty result encode as [] instead of null.
func nonNil(crimes []models.Crime) []models.Crime {
	if crimes == nil {
		return []models.Crime{}
	}
	return crimes
}
