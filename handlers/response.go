package handlers

import (
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/kanchiweaves/storefront.api/service"
	"github.com/kanchiweaves/storefront.api/utils"
)

// statusForResponseType gives the http status a service outcome is reported with
func statusForResponseType(responseType service.ResponseType) int {
	switch responseType {
	case service.InvalidData:
		return http.StatusBadRequest
	case service.Forbidden:
		return http.StatusForbidden
	case service.NotFound:
		return http.StatusNotFound
	case service.Conflict:
		return http.StatusConflict
	case service.GatewayError:
		return http.StatusBadGateway
	case service.Success:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError logs err and writes it with the status for responseType.
// Internal errors are not echoed to the caller.
func writeServiceError(w http.ResponseWriter, req *http.Request, responseType service.ResponseType, err error) {
	log.ErrorR(req, err)

	status := statusForResponseType(responseType)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "there was a problem handling your request"
	}
	utils.WriteMessage(w, req, message, status)
}
