package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/kanchiweaves/storefront.api/utils"
)

// VerifyHeader carries the checksum of a gateway callback
const VerifyHeader = "X-VERIFY"

// HandlePaymentCallback settles the order a gateway payment callback reports
// on and announces the settlement
func HandlePaymentCallback(w http.ResponseWriter, req *http.Request) {
	body, err := utils.ReadBody(req)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading payment callback: [%v]", err))
		utils.WriteMessage(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	order, settled, responseType, err := paymentService.HandleCallback(body, req.Header.Get(VerifyHeader))
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error handling payment callback: [%w]", err))
		return
	}

	if settled {
		PublishOrderSettled(order)
	}

	utils.WriteJSONWithStatus(w, req, map[string]interface{}{"success": true, "orderStatus": order.Status}, http.StatusOK)

	log.InfoR(req, "Successful POST request for payment callback", log.Data{"order_id": order.ID, "order_status": order.Status, "settled": settled})
}

// HandleRefundCallback settles the order a gateway refund callback reports on.
// Orders still waiting on the refund are not announced.
func HandleRefundCallback(w http.ResponseWriter, req *http.Request) {
	body, err := utils.ReadBody(req)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reading refund callback: [%v]", err))
		utils.WriteMessage(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	order, settled, responseType, err := refundService.HandleCallback(body, req.Header.Get(VerifyHeader))
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error handling refund callback: [%w]", err))
		return
	}

	if settled {
		PublishOrderSettled(order)
	}

	utils.WriteJSONWithStatus(w, req, map[string]interface{}{"success": true, "orderStatus": order.Status}, http.StatusOK)

	log.InfoR(req, "Successful POST request for refund callback", log.Data{"order_id": order.ID, "order_status": order.Status})
}
