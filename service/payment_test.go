package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/kanchiweaves/storefront.api/config"
	"github.com/kanchiweaves/storefront.api/dao"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

var fixedNow = time.Date(2024, 11, 5, 10, 30, 0, 0, time.UTC)

func createMockPaymentService(store dao.DAO, provider PaymentProvider, callbacks CallbackDecoder) *PaymentService {
	service := NewPaymentService(store, config.Config{HostURL: "https://api.kanchiweaves.in"}, PaymentProviders{models.PaymentMethodPhonePe: provider}, callbacks)
	service.now = func() time.Time { return fixedNow }
	return service
}

func defaultOrder(status string) *models.Order {
	return &models.Order{
		ID:     "o-1",
		UserID: "u-1",
		Items: []models.OrderItem{
			{ProductID: "p-1", Name: "Kanjivaram silk", Quantity: 1, Price: decimal.RequireFromString("1250.50")},
		},
		TotalAmount:      decimal.RequireFromString("1250.50"),
		Status:           status,
		PaymentMethod:    models.PaymentMethodPhonePe,
		PaymentReference: "ORD1730802600000_abcdef12",
		ShippingAddress: models.Address{
			Name: "Asha Rao", Phone: "9876543210", Line1: "12 Temple St", City: "Kanchipuram",
			State: "Tamil Nadu", Pincode: "631501", Country: "India",
		},
		CreatedAt: fixedNow,
	}
}

func defaultOrderRequest() models.IncomingOrderRequest {
	order := defaultOrder(models.OrderStatusPending)
	return models.IncomingOrderRequest{
		UserID:          order.UserID,
		Items:           order.Items,
		TotalAmount:     order.TotalAmount,
		ShippingAddress: order.ShippingAddress,
		PaymentMethod:   models.PaymentMethodPhonePe,
	}
}

func TestUnitCreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Missing items are invalid", t, func() {
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), nil, nil)
		req := defaultOrderRequest()
		req.Items = nil

		order, responseType, err := service.CreateOrder(req)
		So(order, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldStartWith, "invalid order request")
	})

	Convey("Zero total is invalid", t, func() {
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), nil, nil)
		req := defaultOrderRequest()
		req.TotalAmount = decimal.Zero

		_, responseType, err := service.CreateOrder(req)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "order total must be positive, got [0]")
	})

	Convey("Fractions of a paisa are invalid", t, func() {
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), nil, nil)
		req := defaultOrderRequest()
		req.TotalAmount = decimal.RequireFromString("10.005")

		_, responseType, err := service.CreateOrder(req)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "order total [10.005] has more than two decimal places")
	})

	Convey("Total must match the items", t, func() {
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), nil, nil)
		req := defaultOrderRequest()
		req.TotalAmount = decimal.RequireFromString("1.00")

		_, responseType, err := service.CreateOrder(req)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "order total [1] does not match items total [1250.5]")
	})

	Convey("Quantities count towards the total", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		req := defaultOrderRequest()
		req.Items = append(req.Items, models.OrderItem{ProductID: "p-2", Name: "Cotton blouse", Quantity: 2, Price: decimal.RequireFromString("349.75")})
		req.TotalAmount = decimal.RequireFromString("1950.00")
		mockDAO.EXPECT().CreateOrder(gomock.Any()).Return(nil)

		order, responseType, err := service.CreateOrder(req)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(order.Items, ShouldHaveLength, 2)
	})

	Convey("Items must have a price", t, func() {
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), nil, nil)
		req := defaultOrderRequest()
		req.Items[0].Price = decimal.Zero

		_, responseType, err := service.CreateOrder(req)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "price of product [p-1] must be positive, got [0]")
	})

	Convey("Error storing order", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		mockDAO.EXPECT().CreateOrder(gomock.Any()).Return(errors.New("error"))

		_, responseType, err := service.CreateOrder(defaultOrderRequest())
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error creating order: [error]")
	})

	Convey("Order is created pending", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		mockDAO.EXPECT().CreateOrder(gomock.Any()).DoAndReturn(func(order *models.Order) error {
			order.ID = "o-1"
			return nil
		})

		order, responseType, err := service.CreateOrder(defaultOrderRequest())
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(order.ID, ShouldEqual, "o-1")
		So(order.Status, ShouldEqual, models.OrderStatusPending)
		So(order.TotalAmount.String(), ShouldEqual, "1250.5")
	})
}

func TestUnitGetOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Order not found", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		mockDAO.EXPECT().GetOrder("o-9").Return(nil, nil)

		order, responseType, err := service.GetOrder("o-9")
		So(order, ShouldBeNil)
		So(responseType, ShouldEqual, NotFound)
		So(err.Error(), ShouldEqual, "order [o-9] not found")
	})

	Convey("Error getting order", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(nil, errors.New("error"))

		_, responseType, err := service.GetOrder("o-1")
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error getting order [o-1]: [error]")
	})

	Convey("User orders are listed", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		mockDAO.EXPECT().GetOrdersByUserID("u-1").Return([]models.Order{*defaultOrder(models.OrderStatusPaid)}, nil)

		orders, responseType, err := service.GetUserOrders("u-1")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(orders, ShouldHaveLength, 1)
	})

	Convey("Error listing all orders", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		mockDAO.EXPECT().GetAllOrders().Return(nil, errors.New("error"))

		_, responseType, err := service.GetAllOrders()
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error getting orders: [error]")
	})
}

func TestUnitInitiatePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	ctx := context.Background()

	req := models.IncomingPaymentRequest{OrderID: "o-1", RedirectURL: "https://kanchiweaves.in/orders/o-1"}

	Convey("Invalid redirect url", t, func() {
		service := createMockPaymentService(dao.NewMockDAO(mockCtrl), nil, nil)

		_, responseType, err := service.InitiatePayment(ctx, models.IncomingPaymentRequest{OrderID: "o-1", RedirectURL: "not a url"})
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldStartWith, "invalid payment request")
	})

	Convey("Paid orders cannot be paid again", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(defaultOrder(models.OrderStatusPaid), nil)

		_, responseType, err := service.InitiatePayment(ctx, req)
		So(responseType, ShouldEqual, Conflict)
		So(err.Error(), ShouldEqual, "order [o-1] is [paid] and cannot be paid for")
	})

	Convey("No provider for payment method", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		order := defaultOrder(models.OrderStatusPending)
		order.PaymentMethod = models.PaymentMethodPayPal
		mockDAO.EXPECT().GetOrder("o-1").Return(order, nil)

		_, responseType, err := service.InitiatePayment(ctx, req)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "no payment provider configured for payment method [paypal]")
	})

	Convey("Gateway rejects payment", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(defaultOrder(models.OrderStatusPending), nil)
		mockProvider.EXPECT().InitiatePayment(ctx, gomock.Any(), gomock.Any()).Return(nil, &ProviderError{Provider: "phonepe", Op: "payment initiation", Code: "BAD_REQUEST", Message: "Invalid amount"})

		_, responseType, err := service.InitiatePayment(ctx, req)
		So(responseType, ShouldEqual, GatewayError)
		So(err.Error(), ShouldEqual, "error initiating payment for order [o-1]: [phonepe payment initiation failed with code [BAD_REQUEST]: [Invalid amount]]")
	})

	Convey("Payment initiated", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(defaultOrder(models.OrderStatusPaymentFailed), nil)
		mockProvider.EXPECT().InitiatePayment(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *models.Order, paymentRequest models.PaymentRequest) (*models.PaymentSession, error) {
				So(paymentRequest.MerchantOrderID, ShouldStartWith, "ORD1730802600000_")
				So(paymentRequest.Amount, ShouldEqual, 125050)
				So(paymentRequest.CallbackURL, ShouldEqual, "https://api.kanchiweaves.in/api/payment/callback")
				return &models.PaymentSession{
					MerchantOrderID: paymentRequest.MerchantOrderID,
					Reference:       paymentRequest.MerchantOrderID,
					Amount:          paymentRequest.Amount,
					RedirectURL:     "https://mercury.phonepe.com/transact/pg?token=abc",
					State:           models.PaymentStatePending,
				}, nil
			})
		mockDAO.EXPECT().UpdateOrder(gomock.Any()).DoAndReturn(func(order *models.Order) error {
			So(order.Status, ShouldEqual, models.OrderStatusPaymentPending)
			So(order.PaymentReference, ShouldStartWith, "ORD1730802600000_")
			return nil
		})

		response, responseType, err := service.InitiatePayment(ctx, req)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(response.OrderID, ShouldEqual, "o-1")
		So(response.RedirectURL, ShouldEqual, "https://mercury.phonepe.com/transact/pg?token=abc")
		So(response.State, ShouldEqual, models.PaymentStatePending)
	})

	Convey("Earlier attempt still in progress", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(defaultOrder(models.OrderStatusPaymentPending), nil)
		mockProvider.EXPECT().CheckPaymentStatus(ctx, "ORD1730802600000_abcdef12").Return(&models.PaymentStatus{Code: "PAYMENT_PENDING", State: models.PaymentStatePending}, nil)

		_, responseType, err := service.InitiatePayment(ctx, req)
		So(responseType, ShouldEqual, Conflict)
		So(err.Error(), ShouldEqual, "payment [ORD1730802600000_abcdef12] for order [o-1] is still [PAYMENT_PENDING]")
	})

	Convey("Earlier attempt completed", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(defaultOrder(models.OrderStatusPaymentPending), nil)
		mockProvider.EXPECT().CheckPaymentStatus(ctx, "ORD1730802600000_abcdef12").Return(&models.PaymentStatus{Code: "PAYMENT_SUCCESS", State: models.PaymentStateCompleted}, nil)
		mockDAO.EXPECT().UpdateOrderStatus("o-1", models.OrderStatusPaymentPending, models.OrderStatusPaid).Return(true, nil)

		_, responseType, err := service.InitiatePayment(ctx, req)
		So(responseType, ShouldEqual, Conflict)
		So(err.Error(), ShouldEqual, "order [o-1] is [paid] and cannot be paid for")
	})

	Convey("Error checking earlier attempt", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(defaultOrder(models.OrderStatusPaymentPending), nil)
		mockProvider.EXPECT().CheckPaymentStatus(ctx, "ORD1730802600000_abcdef12").Return(nil, &ProviderError{Provider: "phonepe", Op: "status check", Err: errors.New("timeout")})

		_, responseType, err := service.InitiatePayment(ctx, req)
		So(responseType, ShouldEqual, GatewayError)
		So(err.Error(), ShouldStartWith, "error checking payment [ORD1730802600000_abcdef12]")
	})

	Convey("Failed earlier attempt is replaced", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(defaultOrder(models.OrderStatusPaymentPending), nil)
		mockProvider.EXPECT().CheckPaymentStatus(ctx, "ORD1730802600000_abcdef12").Return(&models.PaymentStatus{Code: "PAYMENT_ERROR", State: models.PaymentStateFailed}, nil)
		mockDAO.EXPECT().UpdateOrderStatus("o-1", models.OrderStatusPaymentPending, models.OrderStatusPaymentFailed).Return(true, nil)
		mockProvider.EXPECT().InitiatePayment(ctx, gomock.Any(), gomock.Any()).Return(&models.PaymentSession{Reference: "ORD1730802600000_0f0f0f0f", State: models.PaymentStatePending}, nil)
		mockDAO.EXPECT().UpdateOrder(gomock.Any()).DoAndReturn(func(order *models.Order) error {
			So(order.Status, ShouldEqual, models.OrderStatusPaymentPending)
			So(order.PaymentReference, ShouldEqual, "ORD1730802600000_0f0f0f0f")
			return nil
		})

		_, responseType, err := service.InitiatePayment(ctx, req)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("Error recording payment reference", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(defaultOrder(models.OrderStatusPending), nil)
		mockProvider.EXPECT().InitiatePayment(ctx, gomock.Any(), gomock.Any()).Return(&models.PaymentSession{Reference: "ref"}, nil)
		mockDAO.EXPECT().UpdateOrder(gomock.Any()).Return(errors.New("error"))

		_, responseType, err := service.InitiatePayment(ctx, req)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error recording payment [ref] on order [o-1]: [error]")
	})
}

func TestUnitCheckPaymentStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	ctx := context.Background()
	reference := "ORD1730802600000_abcdef12"

	Convey("Unknown payment reference", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		mockDAO.EXPECT().GetOrderByPaymentReference(reference).Return(nil, nil)

		_, responseType, err := service.CheckPaymentStatus(ctx, reference)
		So(responseType, ShouldEqual, NotFound)
		So(err.Error(), ShouldEqual, "no order found for payment [ORD1730802600000_abcdef12]")
	})

	Convey("Gateway unreachable", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		mockDAO.EXPECT().GetOrderByPaymentReference(reference).Return(defaultOrder(models.OrderStatusPaymentPending), nil)
		mockProvider.EXPECT().CheckPaymentStatus(ctx, reference).Return(nil, &ProviderError{Provider: "phonepe", Op: "status check", Err: errors.New("timeout")})

		_, responseType, err := service.CheckPaymentStatus(ctx, reference)
		So(responseType, ShouldEqual, GatewayError)
		So(err.Error(), ShouldEqual, "error checking payment [ORD1730802600000_abcdef12]: [phonepe status check failed: [timeout]]")
	})

	Convey("Completed payment marks the order paid", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		mockDAO.EXPECT().GetOrderByPaymentReference(reference).Return(defaultOrder(models.OrderStatusPaymentPending), nil)
		mockProvider.EXPECT().CheckPaymentStatus(ctx, reference).Return(&models.PaymentStatus{Reference: reference, Code: "PAYMENT_SUCCESS", State: models.PaymentStateCompleted}, nil)
		mockDAO.EXPECT().UpdateOrderStatus("o-1", models.OrderStatusPaymentPending, models.OrderStatusPaid).Return(true, nil)

		response, responseType, err := service.CheckPaymentStatus(ctx, reference)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(response.State, ShouldEqual, models.PaymentStateCompleted)
		So(response.OrderStatus, ShouldEqual, models.OrderStatusPaid)
	})

	Convey("Pending payment leaves the order alone", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		mockDAO.EXPECT().GetOrderByPaymentReference(reference).Return(defaultOrder(models.OrderStatusPaymentPending), nil)
		mockProvider.EXPECT().CheckPaymentStatus(ctx, reference).Return(&models.PaymentStatus{Reference: reference, Code: "PAYMENT_PENDING", State: models.PaymentStatePending}, nil)

		response, _, err := service.CheckPaymentStatus(ctx, reference)
		So(err, ShouldBeNil)
		So(response.OrderStatus, ShouldEqual, models.OrderStatusPaymentPending)
	})

	Convey("Already settled orders are not updated again", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		mockDAO.EXPECT().GetOrderByPaymentReference(reference).Return(defaultOrder(models.OrderStatusShipped), nil)
		mockProvider.EXPECT().CheckPaymentStatus(ctx, reference).Return(&models.PaymentStatus{Reference: reference, Code: "PAYMENT_SUCCESS", State: models.PaymentStateCompleted}, nil)

		response, _, err := service.CheckPaymentStatus(ctx, reference)
		So(err, ShouldBeNil)
		So(response.OrderStatus, ShouldEqual, models.OrderStatusShipped)
	})
}

func TestUnitSyncPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()
	ctx := context.Background()

	Convey("Failed payment marks the order payment_failed", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		order := defaultOrder(models.OrderStatusPaymentPending)
		mockProvider.EXPECT().CheckPaymentStatus(ctx, order.PaymentReference).Return(&models.PaymentStatus{State: models.PaymentStateFailed}, nil)
		mockDAO.EXPECT().UpdateOrderStatus("o-1", models.OrderStatusPaymentPending, models.OrderStatusPaymentFailed).Return(true, nil)

		_, settled, responseType, err := service.SyncPayment(ctx, order)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(settled, ShouldBeTrue)
		So(order.Status, ShouldEqual, models.OrderStatusPaymentFailed)
	})

	Convey("Error settling order", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		order := defaultOrder(models.OrderStatusPaymentPending)
		mockProvider.EXPECT().CheckPaymentStatus(ctx, order.PaymentReference).Return(&models.PaymentStatus{State: models.PaymentStateCompleted}, nil)
		mockDAO.EXPECT().UpdateOrderStatus("o-1", models.OrderStatusPaymentPending, models.OrderStatusPaid).Return(false, errors.New("error"))

		_, settled, responseType, err := service.SyncPayment(ctx, order)
		So(settled, ShouldBeFalse)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error settling order [o-1] as [paid]: [error]")
	})

	Convey("Stale snapshot of a settled order is not settled again", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		snapshot := defaultOrder(models.OrderStatusPaymentPending)
		stored := defaultOrder(models.OrderStatusShipped)
		stored.ShipmentID = 99
		mockProvider.EXPECT().CheckPaymentStatus(ctx, snapshot.PaymentReference).Return(&models.PaymentStatus{Code: "PAYMENT_SUCCESS", State: models.PaymentStateCompleted}, nil)
		mockDAO.EXPECT().UpdateOrderStatus("o-1", models.OrderStatusPaymentPending, models.OrderStatusPaid).Return(false, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(stored, nil)
		mockDAO.EXPECT().UpdateOrder(gomock.Any()).Times(0)

		_, settled, responseType, err := service.SyncPayment(ctx, snapshot)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(settled, ShouldBeFalse)
		So(snapshot.Status, ShouldEqual, models.OrderStatusShipped)
		So(snapshot.ShipmentID, ShouldEqual, 99)
	})

	Convey("Error reloading a stale snapshot", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := NewMockPaymentProvider(mockCtrl)
		service := createMockPaymentService(mockDAO, mockProvider, nil)
		snapshot := defaultOrder(models.OrderStatusPaymentPending)
		mockProvider.EXPECT().CheckPaymentStatus(ctx, snapshot.PaymentReference).Return(&models.PaymentStatus{State: models.PaymentStateCompleted}, nil)
		mockDAO.EXPECT().UpdateOrderStatus("o-1", models.OrderStatusPaymentPending, models.OrderStatusPaid).Return(false, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(nil, errors.New("error"))

		_, settled, responseType, err := service.SyncPayment(ctx, snapshot)
		So(settled, ShouldBeFalse)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error reloading order [o-1]: [error]")
	})

	Convey("Pending payments are listed by status", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		mockDAO.EXPECT().GetOrdersByStatus(models.OrderStatusPaymentPending).Return([]models.Order{*defaultOrder(models.OrderStatusPaymentPending)}, nil)

		orders, err := service.PendingPayments()
		So(err, ShouldBeNil)
		So(orders, ShouldHaveLength, 1)
	})
}

func TestUnitDeleteOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Orders with a payment in flight are kept", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(defaultOrder(models.OrderStatusPaymentPending), nil)

		responseType, err := service.DeleteOrder("o-1")
		So(responseType, ShouldEqual, Conflict)
		So(err.Error(), ShouldEqual, "order [o-1] is [payment_pending] and cannot be deleted")
	})

	Convey("Unknown order", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		mockDAO.EXPECT().GetOrder("o-9").Return(nil, nil)

		responseType, _ := service.DeleteOrder("o-9")
		So(responseType, ShouldEqual, NotFound)
	})

	Convey("Order deleted", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockPaymentService(mockDAO, nil, nil)
		mockDAO.EXPECT().GetOrder("o-1").Return(defaultOrder(models.OrderStatusPaymentFailed), nil)
		mockDAO.EXPECT().DeleteOrder("o-1").Return(nil)

		responseType, err := service.DeleteOrder("o-1")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})
}
