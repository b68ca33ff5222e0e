package handler

import "github.com/gin-gonic/gin"

// Every JSON body carries exactly one of "data" or "errors", never
// both. Deletion succeeds with 204 and no body at all.

// ErrorDetail describes a single error in the failure envelope
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// ErrorEnvelope is the failure variant of the response envelope
type ErrorEnvelope struct {
	Errors []ErrorDetail `json:"errors"`
}

// DataEnvelope is the success variant of the response envelope
type DataEnvelope struct {
	Data any `json:"data"`
}

// respondData writes a success envelope with the given status
func respondData(c *gin.Context, status int, v any) {
	c.JSON(status, DataEnvelope{Data: v})
}

// respondError writes a failure envelope with a single detail message
func respondError(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorEnvelope{Errors: []ErrorDetail{{Detail: detail}}})
}
