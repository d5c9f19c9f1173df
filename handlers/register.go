package handlers

import (
	"context"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/kanchiweaves/storefront.api/config"
	"github.com/kanchiweaves/storefront.api/interceptors"
	"github.com/kanchiweaves/storefront.api/service"
)

var paymentService *service.PaymentService
var refundService *service.RefundService
var shipmentService *service.ShipmentService
var userService *service.UserService
var contactService *service.ContactService

// Services are the services the routes are served by. They are built in main
// around the vendor clients and the entity store.
type Services struct {
	Payments  *service.PaymentService
	Refunds   *service.RefundService
	Shipments *service.ShipmentService
	Users     *service.UserService
	Contact   *service.ContactService
}

// Register defines the route mappings for the main router and it's subrouters.
// Background upkeep started here stops when ctx is done.
func Register(ctx context.Context, mainRouter *mux.Router, cfg config.Config, services Services) {
	paymentService = services.Payments
	refundService = services.Refunds
	shipmentService = services.Shipments
	userService = services.Users
	contactService = services.Contact

	rateLimiter := interceptors.NewRateLimiter(cfg.RateLimitPerSecond, cfg.TrustedProxies)
	if cfg.RateLimitPerSecond > 0 {
		go rateLimiter.Sweep(ctx, interceptors.LimiterSweepInterval)
	}
	adminAuth := &interceptors.AdminAuthenticationInterceptor{AdminKey: cfg.AdminAPIKey}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Gateway callbacks are not rate limited, the gateway retries on failure
	callbackRouter := mainRouter.PathPrefix("/api/payment").Subrouter()
	callbackRouter.HandleFunc("/callback", HandlePaymentCallback).Methods("POST").Name("payment-callback")
	callbackRouter.HandleFunc("/refund-callback", HandleRefundCallback).Methods("POST").Name("refund-callback")

	// Back office routes
	adminRouter := mainRouter.PathPrefix("/api/admin").Subrouter()
	adminRouter.HandleFunc("/orders", HandleGetAllOrders).Methods("GET").Name("get-all-orders")
	adminRouter.HandleFunc("/orders/{order_id}", HandleDeleteOrder).Methods("DELETE").Name("delete-order")
	adminRouter.HandleFunc("/orders/{order_id}/refund", HandleCreateRefund).Methods("POST").Name("create-refund")
	adminRouter.HandleFunc("/orders/{order_id}/ship", HandleShipOrder).Methods("POST").Name("ship-order")
	adminRouter.HandleFunc("/refunds/{merchant_refund_id}", HandleGetRefundStatus).Methods("GET").Name("get-refund-status")
	adminRouter.HandleFunc("/users", HandleGetAllUsers).Methods("GET").Name("get-all-users")
	adminRouter.HandleFunc("/users/{user_id}", HandleDeleteUser).Methods("DELETE").Name("delete-user")
	adminRouter.HandleFunc("/admins", HandleCreateAdmin).Methods("POST").Name("create-admin")
	adminRouter.HandleFunc("/contact", HandleGetAllContactSubmissions).Methods("GET").Name("get-contact-submissions")

	// Public storefront routes
	publicRouter := mainRouter.PathPrefix("/api").Subrouter()
	publicRouter.HandleFunc("/users", HandleCreateUser).Methods("POST").Name("create-user")
	publicRouter.HandleFunc("/users/{user_id}", HandleGetUser).Methods("GET").Name("get-user")
	publicRouter.HandleFunc("/users/{user_id}/orders", HandleGetUserOrders).Methods("GET").Name("get-user-orders")
	publicRouter.HandleFunc("/users/{user_id}/wishlists", HandleGetWishlist).Methods("GET").Name("get-wishlist")
	publicRouter.HandleFunc("/orders", HandleCreateOrder).Methods("POST").Name("create-order")
	publicRouter.HandleFunc("/orders/{order_id}", HandleGetOrder).Methods("GET").Name("get-order")
	publicRouter.HandleFunc("/payment/initiate", HandleInitiatePayment).Methods("POST").Name("initiate-payment")
	publicRouter.HandleFunc("/payment/status/{merchant_order_id}", HandleGetPaymentStatus).Methods("GET").Name("get-payment-status")
	publicRouter.HandleFunc("/wishlists", HandleAddToWishlist).Methods("POST").Name("add-to-wishlist")
	publicRouter.HandleFunc("/wishlists/{wishlist_id}", HandleRemoveFromWishlist).Methods("DELETE").Name("remove-from-wishlist")
	publicRouter.HandleFunc("/contact", HandleCreateContactSubmission).Methods("POST").Name("create-contact-submission")
	publicRouter.HandleFunc("/shipping/serviceability", HandleGetServiceability).Methods("GET").Name("get-serviceability")
	publicRouter.HandleFunc("/shipping/track/{awb_code}", HandleTrackShipment).Methods("GET").Name("track-shipment")
	publicRouter.HandleFunc("/admins/login", HandleAdminLogin).Methods("POST").Name("admin-login")

	// Set middleware for subrouters
	publicRouter.Use(log.Handler, rateLimiter.RateLimitIntercept)
	callbackRouter.Use(log.Handler)
	adminRouter.Use(log.Handler, adminAuth.AdminAuthenticationIntercept)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
