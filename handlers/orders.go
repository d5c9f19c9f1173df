package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/kanchiweaves/storefront.api/utils"
)

// HandleCreateOrder places a new order
func HandleCreateOrder(w http.ResponseWriter, req *http.Request) {
	var incomingOrderRequest models.IncomingOrderRequest
	if err := utils.DecodeJSONBody(req, &incomingOrderRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteMessage(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	order, responseType, err := paymentService.CreateOrder(incomingOrderRequest)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error creating order: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, order, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new order", log.Data{"order_id": order.ID, "user_id": order.UserID})
}

// HandleGetOrder returns a single order
func HandleGetOrder(w http.ResponseWriter, req *http.Request) {
	orderID := mux.Vars(req)["order_id"]
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		utils.WriteMessage(w, req, "order id not supplied", http.StatusBadRequest)
		return
	}

	order, responseType, err := paymentService.GetOrder(orderID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error getting order: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, order, http.StatusOK)
}

// HandleGetUserOrders lists a user's orders, newest first
func HandleGetUserOrders(w http.ResponseWriter, req *http.Request) {
	userID := mux.Vars(req)["user_id"]
	if userID == "" {
		log.ErrorR(req, fmt.Errorf("user id not supplied"))
		utils.WriteMessage(w, req, "user id not supplied", http.StatusBadRequest)
		return
	}

	orders, responseType, err := paymentService.GetUserOrders(userID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error getting orders for user: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, orders, http.StatusOK)
}

// HandleGetAllOrders lists every order, newest first
func HandleGetAllOrders(w http.ResponseWriter, req *http.Request) {
	orders, responseType, err := paymentService.GetAllOrders()
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error getting orders: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, orders, http.StatusOK)
}

// HandleDeleteOrder removes an order with no payment or refund in flight
func HandleDeleteOrder(w http.ResponseWriter, req *http.Request) {
	orderID := mux.Vars(req)["order_id"]
	if orderID == "" {
		log.ErrorR(req, fmt.Errorf("order id not supplied"))
		utils.WriteMessage(w, req, "order id not supplied", http.StatusBadRequest)
		return
	}

	responseType, err := paymentService.DeleteOrder(orderID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error deleting order: [%w]", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)

	log.InfoR(req, "Successful DELETE request for order", log.Data{"order_id": orderID})
}
