package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"stock-data-api/internal/api/middleware"
	"stock-data-api/internal/api/models"
	"stock-data-api/internal/data"
	"stock-data-api/internal/metrics"
	"stock-data-api/internal/model"

	"github.com/gin-gonic/gin"
)

// Source is the read side of the data loader.
type Source interface {
	LoadIndicatorData() ([]model.Row, error)
	LoadSeriesData(symbol string) ([]model.Row, error)
	ListSymbols() ([]string, error)
}

// DatasetHandler serves the indicator and stock datasets.
type DatasetHandler struct {
	source  Source
	metrics *metrics.Metrics
}

// NewDatasetHandler creates a dataset handler. m may be nil.
func NewDatasetHandler(source Source, m *metrics.Metrics) *DatasetHandler {
	return &DatasetHandler{source: source, metrics: m}
}

// GetIndicatorData handles GET /iip_data/
func (h *DatasetHandler) GetIndicatorData(c *gin.Context) {
	rows, err := h.load(metrics.DatasetIndicator, h.source.LoadIndicatorData)
	if err != nil {
		h.writeLoadError(c, err, "IIP data not found.", "Failed to load IIP data")
		return
	}
	h.writeRows(c, metrics.DatasetIndicator, rows)
}

// GetStockData handles GET /stock_data/:symbol
func (h *DatasetHandler) GetStockData(c *gin.Context) {
	symbol := c.Param("symbol")
	rows, err := h.load(metrics.DatasetSeries, func() ([]model.Row, error) {
		return h.source.LoadSeriesData(symbol)
	})
	if err != nil {
		h.writeLoadError(c, err, "Stock data not found.", "Failed to load stock data")
		return
	}
	h.writeRows(c, metrics.DatasetSeries, rows)
}

// GetStockDataInRange handles GET /stock_data/:symbol/range
func (h *DatasetHandler) GetStockDataInRange(c *gin.Context) {
	symbol := c.Param("symbol")
	var q models.RangeQuery
	// Both bounds are optional strings, so binding cannot fail on content.
	_ = c.ShouldBindQuery(&q)

	rows, err := h.load(metrics.DatasetSeries, func() ([]model.Row, error) {
		return h.source.LoadSeriesData(symbol)
	})
	if err != nil {
		h.writeLoadError(c, err, "Stock data not found.", "Failed to load stock data")
		return
	}

	filtered, err := data.FilterByDateRange(rows, q.StartDate, q.EndDate)
	if err != nil {
		h.writeLoadError(c, err, "Stock data not found.", "Failed to filter stock data")
		return
	}
	slog.Debug("DatasetHandler: range filter applied",
		"symbol", symbol, "start_date", q.StartDate, "end_date", q.EndDate,
		"rows", len(rows), "kept", len(filtered))
	h.writeRows(c, metrics.DatasetSeries, filtered)
}

// ListSymbols handles GET /stock_data/
func (h *DatasetHandler) ListSymbols(c *gin.Context) {
	symbols, err := h.source.ListSymbols()
	if err != nil {
		slog.Error("DatasetHandler: failed to list symbols", "request_id", middleware.RequestIDFrom(c), "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Detail: "Failed to list stock symbols: " + err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, models.SymbolsResponse{Symbols: symbols, Count: len(symbols)})
}

func (h *DatasetHandler) load(dataset string, fn func() ([]model.Row, error)) ([]model.Row, error) {
	start := time.Now()
	rows, err := fn()
	outcome := metrics.OutcomeOK
	switch {
	case data.IsNotFound(err):
		outcome = metrics.OutcomeNotFound
	case err != nil:
		outcome = metrics.OutcomeError
	}
	h.metrics.ObserveLoad(dataset, outcome, time.Since(start))
	return rows, err
}

func (h *DatasetHandler) writeRows(c *gin.Context, dataset string, rows []model.Row) {
	h.metrics.AddRows(dataset, len(rows))
	c.JSON(http.StatusOK, models.NewDataResponse(rows))
}

func (h *DatasetHandler) writeLoadError(c *gin.Context, err error, notFound, failed string) {
	if data.IsNotFound(err) {
		slog.Info("DatasetHandler: dataset not found",
			"request_id", middleware.RequestIDFrom(c), "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusNotFound, models.MessageResponse{Message: notFound})
		return
	}

	var loadErr *data.LoadError
	if errors.As(err, &loadErr) {
		slog.Error("DatasetHandler: dataset load failed",
			"request_id", middleware.RequestIDFrom(c), "file", loadErr.Path, "error", loadErr.Err)
	} else {
		slog.Error("DatasetHandler: unexpected error",
			"request_id", middleware.RequestIDFrom(c), "error", err)
	}
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Detail: failed + ": " + err.Error(),
	})
}
