package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"haversine/internal/coordinates"
	"haversine/internal/distance"
	"haversine/internal/geometry"
	"haversine/internal/middleware"
	"haversine/internal/types"
)

// DistanceRequest is the body accepted by POST /distance
type DistanceRequest struct {
	A string `json:"a" example:"10,10"` // First point as "latitude,longitude"
	B string `json:"b" example:"1,1"`   // Second point as "latitude,longitude"
}

// PointResponse is a validated point, optionally with its timezone
type PointResponse struct {
	Latitude  float64 `json:"latitude" example:"10"`
	Longitude float64 `json:"longitude" example:"10"`
	Timezone  string  `json:"timezone,omitempty" example:"Africa/Lagos"`
}

// DistanceResponse is a successful evaluation
type DistanceResponse struct {
	Distance   string        `json:"distance" example:"1411.276km"` // Kilometers with three decimals
	Kilometers float64       `json:"kilometers" example:"1411.2761834485734"`
	Meters     float64       `json:"meters" example:"1411276.1834485734"`
	PointA     PointResponse `json:"pointA"`
	PointB     PointResponse `json:"pointB"`
}

// ErrorResponse describes a rejected request
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid input, latitude must be between -90 and 90."`
	Code  string `json:"code,omitempty" example:"not_in_lat_range"`
	Point string `json:"point,omitempty" example:"A"`
}

// handleGetDistance godoc
// @Summary Distance between two points
// @Description Validate two "latitude,longitude" strings and compute the great-circle distance between them. Point A is validated first; the first failure is returned.
// @Tags distance
// @Produce json
// @Param a query string true "First point" example(10,10)
// @Param b query string true "Second point" example(1,1)
// @Success 200 {object} DistanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /distance [get]
func (app *App) handleGetDistance(c *gin.Context) {
	app.respondDistance(c, c.Query("a"), c.Query("b"))
}

// handlePostDistance godoc
// @Summary Distance between two points
// @Description Same as GET /distance with the points in a JSON body
// @Tags distance
// @Accept json
// @Produce json
// @Param request body DistanceRequest true "Points to compare"
// @Success 200 {object} DistanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /distance [post]
func (app *App) handlePostDistance(c *gin.Context) {
	var req DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid json body"})
		return
	}

	app.respondDistance(c, req.A, req.B)
}

// handleGetDistanceGeoJSON godoc
// @Summary Distance as GeoJSON
// @Description Evaluate two points and return a FeatureCollection with both points and the line between them
// @Tags distance
// @Produce json
// @Param a query string true "First point" example(10,10)
// @Param b query string true "Second point" example(1,1)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /distance/geojson [get]
func (app *App) handleGetDistanceGeoJSON(c *gin.Context) {
	result, ok := app.evaluate(c, c.Query("a"), c.Query("b"))
	if !ok {
		return
	}

	fc := geometry.NewDistanceFeatureCollection(result.PointA, result.PointB, result.Distance)
	c.JSON(http.StatusOK, fc)
}

// handleValidate godoc
// @Summary Validate a single point
// @Description Parse and validate one "latitude,longitude" string
// @Tags distance
// @Produce json
// @Param point query string true "Point to validate" example(39.11539,-107.6584)
// @Success 200 {object} PointResponse
// @Failure 400 {object} ErrorResponse
// @Router /validate [get]
func (app *App) handleValidate(c *gin.Context) {
	coords, err := coordinates.Validate(c.Query("point"))
	if err != nil {
		app.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, app.toPointResponse(c, coords))
}

func (app *App) respondDistance(c *gin.Context, rawA, rawB string) {
	result, ok := app.evaluate(c, rawA, rawB)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, DistanceResponse{
		Distance:   result.Distance.String(),
		Kilometers: result.Distance.Kilometers(),
		Meters:     result.Distance.Meters,
		PointA:     app.toPointResponse(c, result.PointA),
		PointB:     app.toPointResponse(c, result.PointB),
	})
}

// evaluate runs the distance service and writes the error response on failure
func (app *App) evaluate(c *gin.Context, rawA, rawB string) (*distance.Result, bool) {
	result, err := app.distanceService.Evaluate(rawA, rawB)
	app.metrics.ObserveEvaluation(err)
	if err != nil {
		app.respondError(c, err)
		return nil, false
	}
	return result, true
}

func (app *App) respondError(c *gin.Context, err error) {
	var verr *coordinates.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: verr.Error(),
			Code:  verr.Kind.String(),
			Point: verr.Point,
		})
		return
	}

	// Other errors are internal server errors
	app.logger.Error("failed to evaluate coordinates",
		"request_id", middleware.GetRequestID(c),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to evaluate coordinates"})
}

func (app *App) toPointResponse(c *gin.Context, coords types.Coords) PointResponse {
	resp := PointResponse{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}

	if app.timezoneService == nil {
		return resp
	}

	tz, err := app.timezoneService.GetTimezone(coords)
	if err != nil {
		app.logger.Warn("failed to determine timezone",
			"request_id", middleware.GetRequestID(c),
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return resp
	}
	resp.Timezone = tz

	return resp
}
