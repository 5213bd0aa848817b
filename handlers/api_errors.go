package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Error codes carried in APIErrorDetail.Code.
const (
	CodeInvalidParameter = "invalid_parameter"
	CodeInvalidQuery     = "invalid_query"
	CodeRootNotFound     = "root_not_found"
	CodePersonNotFound   = "person_not_found"
	CodeInternal         = "internal_error"
)

type APIErrorDetail struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// APIErrorResponse is the error envelope for every non-2xx response.
type APIErrorResponse struct {
	Errors []APIErrorDetail `json:"errors"`
}

// WriteAPIError writes a single-error envelope with the given HTTP status.
func WriteAPIError(w http.ResponseWriter, httpStatus int, code string, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	resp := APIErrorResponse{
		Errors: []APIErrorDetail{
			{
				Code:   code,
				Status: strconv.Itoa(httpStatus),
				Detail: detail,
			},
		},
	}

	_ = json.NewEncoder(w).Encode(resp)
}
