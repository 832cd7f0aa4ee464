package models

import "stock-data-api/internal/model"

// DataResponse wraps every successful dataset payload.
type DataResponse struct {
	Data []model.Row `json:"data"`
}

// NewDataResponse never leaves Data nil, so clients always see an array.
func NewDataResponse(rows []model.Row) DataResponse {
	if rows == nil {
		rows = []model.Row{}
	}
	return DataResponse{Data: rows}
}

// MessageResponse carries informational and not-found messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries internal error details.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// SymbolsResponse lists the available stock symbols.
type SymbolsResponse struct {
	Symbols []string `json:"symbols"`
	Count   int      `json:"count"`
}

// RangeQuery binds the optional bounds of a range request.
type RangeQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
