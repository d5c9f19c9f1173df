package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/kanchiweaves/storefront.api/utils"
)

// HandleCreateRefund refunds part or all of an order's payment
func HandleCreateRefund(w http.ResponseWriter, req *http.Request) {
	orderID := mux.Vars(req)["order_id"]
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		utils.WriteMessage(w, req, "order id not supplied", http.StatusBadRequest)
		return
	}

	var incomingRefundRequest models.IncomingRefundRequest
	if err := utils.DecodeJSONBody(req, &incomingRefundRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteMessage(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	refund, responseType, err := refundService.CreateRefund(req.Context(), orderID, incomingRefundRequest)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error creating refund: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, refund, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new refund", log.Data{"order_id": orderID, "merchant_refund_id": refund.MerchantRefundID, "state": refund.State})
}

// HandleGetRefundStatus checks the status of a refund with its gateway
func HandleGetRefundStatus(w http.ResponseWriter, req *http.Request) {
	merchantRefundID := mux.Vars(req)["merchant_refund_id"]
	if merchantRefundID == "" {
		log.ErrorR(req, fmt.Errorf("merchant refund id not supplied"))
		utils.WriteMessage(w, req, "merchant refund id not supplied", http.StatusBadRequest)
		return
	}

	refund, responseType, err := refundService.GetRefundStatus(req.Context(), merchantRefundID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error checking refund status: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, refund, http.StatusOK)
}
