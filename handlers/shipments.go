package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/kanchiweaves/storefront.api/service"
	"github.com/kanchiweaves/storefront.api/utils"
)

// HandleGetServiceability lists couriers for a delivery pincode. Query
// parameters are delivery, weight (kg), cod and an optional pickup pincode.
func HandleGetServiceability(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	weight, err := strconv.ParseFloat(query.Get("weight"), 64)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("invalid weight [%s]: [%v]", query.Get("weight"), err))
		utils.WriteMessage(w, req, "weight must be a number", http.StatusBadRequest)
		return
	}

	cod := false
	if raw := query.Get("cod"); raw != "" {
		if cod, err = strconv.ParseBool(raw); err != nil {
			log.ErrorR(req, fmt.Errorf("invalid cod flag [%s]: [%v]", raw, err))
			utils.WriteMessage(w, req, "cod must be true or false", http.StatusBadRequest)
			return
		}
	}

	options, responseType, err := shipmentService.GetServiceability(req.Context(), query.Get("pickup"), query.Get("delivery"), weight, cod)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error checking serviceability: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, options, http.StatusOK)
}

// HandleTrackShipment returns the tracking history of an AWB
func HandleTrackShipment(w http.ResponseWriter, req *http.Request) {
	awbCode := mux.Vars(req)["awb_code"]
	if awbCode == "" {
		log.ErrorR(req, fmt.Errorf("awb code not supplied"))
		utils.WriteMessage(w, req, "awb code not supplied", http.StatusBadRequest)
		return
	}

	tracking, responseType, err := shipmentService.TrackShipment(req.Context(), awbCode)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error tracking shipment: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, tracking, http.StatusOK)
}

// HandleShipOrder ships a paid order. When an aggregator step fails the
// partial result is returned with the failed step named.
func HandleShipOrder(w http.ResponseWriter, req *http.Request) {
	orderID := mux.Vars(req)["order_id"]
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		utils.WriteMessage(w, req, "order id not supplied", http.StatusBadRequest)
		return
	}

	var incomingShipmentRequest models.IncomingShipmentRequest
	if err := utils.DecodeJSONBody(req, &incomingShipmentRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteMessage(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	result, responseType, err := shipmentService.ShipOrder(req.Context(), orderID, incomingShipmentRequest)
	if err != nil {
		if result != nil && responseType == service.GatewayError {
			log.ErrorR(req, err)
			utils.WriteJSONWithStatus(w, req, result, http.StatusBadGateway)
			return
		}
		writeServiceError(w, req, responseType, fmt.Errorf("error shipping order: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, result, http.StatusCreated)

	log.InfoR(req, "Successful POST request to ship order", log.Data{"order_id": orderID, "awb_code": result.AWBCode})
}
