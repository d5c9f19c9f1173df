package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/kanchiweaves/storefront.api/utils"
)

// HandleInitiatePayment starts a payment for an order and returns the URL the
// customer should be redirected to
func HandleInitiatePayment(w http.ResponseWriter, req *http.Request) {
	var incomingPaymentRequest models.IncomingPaymentRequest
	if err := utils.DecodeJSONBody(req, &incomingPaymentRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteMessage(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	paymentSession, responseType, err := paymentService.InitiatePayment(req.Context(), incomingPaymentRequest)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error initiating payment: [%w]", err))
		return
	}

	w.Header().Set("Location", paymentSession.RedirectURL)
	utils.WriteJSONWithStatus(w, req, paymentSession, http.StatusCreated)

	log.InfoR(req, "Successful POST request to initiate payment", log.Data{"order_id": paymentSession.OrderID, "merchant_order_id": paymentSession.MerchantOrderID, "status": http.StatusCreated})
}

// HandleGetPaymentStatus checks the status of a payment with its gateway
func HandleGetPaymentStatus(w http.ResponseWriter, req *http.Request) {
	merchantOrderID := mux.Vars(req)["merchant_order_id"]
	if merchantOrderID == "" {
		log.ErrorR(req, fmt.Errorf("merchant order id not supplied"))
		utils.WriteMessage(w, req, "merchant order id not supplied", http.StatusBadRequest)
		return
	}

	paymentStatus, responseType, err := paymentService.CheckPaymentStatus(req.Context(), merchantOrderID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error checking payment status: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, paymentStatus, http.StatusOK)

	log.InfoR(req, "Successful GET request for payment status", log.Data{"merchant_order_id": merchantOrderID, "state": paymentStatus.State})
}
