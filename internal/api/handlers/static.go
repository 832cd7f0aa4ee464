package handlers

import (
	"net/http"

	"stock-data-api/internal/api/models"

	"github.com/gin-gonic/gin"
)

const (
	apiTitle       = "Stock and Economic Data API"
	apiDescription = "This API provides stock market and economic data, including IIP and inflation statistics."
	apiVersion     = "1.0.0"

	// WelcomeMessage is the fixed payload of GET /.
	WelcomeMessage = "Welcome to the Stock and Economic Data API! Visit /openapi.json for the API description."
)

// Root handles GET /
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: WelcomeMessage})
}

// Favicon handles GET /favicon.ico so browsers don't log a 404.
func Favicon(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "No favicon available"})
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
}

// OpenAPI handles GET /openapi.json with a static description of the routes.
func OpenAPI(c *gin.Context) {
	c.JSON(http.StatusOK, openAPIDocument())
}

func openAPIDocument() gin.H {
	dataResponse := gin.H{
		"200": gin.H{"description": "Rows as {\"data\": [...]}"},
		"404": gin.H{"description": "Dataset file not found, {\"message\": ...}"},
		"500": gin.H{"description": "Dataset could not be read, {\"detail\": ...}"},
	}
	symbolParam := gin.H{"name": "symbol", "in": "path", "required": true, "schema": gin.H{"type": "string"}}
	dateParam := func(name string) gin.H {
		return gin.H{"name": name, "in": "query", "required": false, "schema": gin.H{"type": "string", "format": "date"}}
	}

	return gin.H{
		"openapi": "3.0.3",
		"info": gin.H{
			"title":       apiTitle,
			"description": apiDescription,
			"version":     apiVersion,
		},
		"paths": gin.H{
			"/": gin.H{"get": gin.H{
				"summary":   "Root Endpoint",
				"responses": gin.H{"200": gin.H{"description": "Welcome message"}},
			}},
			"/iip_data/": gin.H{"get": gin.H{
				"summary":     "Economic Data (IIP)",
				"description": "Index of Industrial Production data for different sectors.",
				"responses":   dataResponse,
			}},
			"/stock_data/": gin.H{"get": gin.H{
				"summary":   "Available stock symbols",
				"responses": gin.H{"200": gin.H{"description": "{\"symbols\": [...], \"count\": n}"}},
			}},
			"/stock_data/{symbol}": gin.H{"get": gin.H{
				"summary":     "Stock Data",
				"description": "Fields like Date, Open, High, Low, Close, Adj Close and Volume.",
				"parameters":  []gin.H{symbolParam},
				"responses":   dataResponse,
			}},
			"/stock_data/{symbol}/range": gin.H{"get": gin.H{
				"summary":     "Stock Data in Date Range",
				"description": "Rows with start_date <= Date <= end_date; without both bounds all rows are returned.",
				"parameters":  []gin.H{symbolParam, dateParam("start_date"), dateParam("end_date")},
				"responses":   dataResponse,
			}},
			"/favicon.ico": gin.H{"get": gin.H{
				"summary":   "Favicon Endpoint",
				"responses": gin.H{"200": gin.H{"description": "Placeholder message"}},
			}},
		},
	}
}
