package response

import "net/http"

const (
	CodeBadRequest = http.StatusBadRequest
	CodeNotFound   = http.StatusNotFound
	CodeInternal   = http.StatusInternalServerError
)
