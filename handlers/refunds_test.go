package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/kanchiweaves/storefront.api/dao"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/kanchiweaves/storefront.api/service"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleCreateRefund(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Order id not supplied", t, func() {
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"amount":1000}`))
		w := httptest.NewRecorder()
		HandleCreateRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Refund larger than the order", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		refundService = service.NewRefundService(mockDAO, service.PaymentProviders{}, nil, false)
		mockDAO.EXPECT().GetOrder("o-1").Return(defaultOrder(models.OrderStatusPaid), nil)

		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"amount":200000}`))
		req = mux.SetURLVars(req, map[string]string{"order_id": "o-1"})
		w := httptest.NewRecorder()
		HandleCreateRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
		So(w.Body.String(), ShouldContainSubstring, "exceeds order total")
	})

	Convey("Refund pending with the gateway", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := service.NewMockPaymentProvider(mockCtrl)
		refundService = service.NewRefundService(mockDAO, service.PaymentProviders{models.PaymentMethodPhonePe: mockProvider}, nil, false)
		order := defaultOrder(models.OrderStatusPaid)
		mockDAO.EXPECT().GetOrder("o-1").Return(order, nil)
		mockProvider.EXPECT().InitiateRefund(gomock.Any(), order, gomock.Any()).DoAndReturn(
			func(_ interface{}, _ *models.Order, req models.RefundRequest) (*models.RefundSession, error) {
				So(req.MerchantOrderID, ShouldEqual, order.PaymentReference)
				So(req.Amount, ShouldEqual, 50000)
				return &models.RefundSession{MerchantRefundID: req.MerchantRefundID, Amount: req.Amount, State: models.PaymentStatePending}, nil
			})
		mockDAO.EXPECT().UpdateOrder(order).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"amount":50000}`))
		req = mux.SetURLVars(req, map[string]string{"order_id": "o-1"})
		w := httptest.NewRecorder()
		HandleCreateRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusCreated)
		So(order.Status, ShouldEqual, models.OrderStatusRefundPending)
	})
}

func TestUnitHandleGetRefundStatus(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Unknown refund", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		refundService = service.NewRefundService(mockDAO, service.PaymentProviders{}, nil, false)
		mockDAO.EXPECT().GetOrderByRefundReference("RFD9").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req = mux.SetURLVars(req, map[string]string{"merchant_refund_id": "RFD9"})
		w := httptest.NewRecorder()
		HandleGetRefundStatus(w, req)
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Refund completed", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		mockProvider := service.NewMockPaymentProvider(mockCtrl)
		refundService = service.NewRefundService(mockDAO, service.PaymentProviders{models.PaymentMethodPhonePe: mockProvider}, nil, false)
		order := defaultOrder(models.OrderStatusRefundPending)
		order.RefundReference = "RFD1"
		mockDAO.EXPECT().GetOrderByRefundReference("RFD1").Return(order, nil)
		mockProvider.EXPECT().CheckRefundStatus(gomock.Any(), order).Return(&models.RefundSession{MerchantRefundID: "RFD1", Amount: 50000, State: models.PaymentStateCompleted}, nil)
		mockDAO.EXPECT().UpdateOrderStatus("o-1", models.OrderStatusRefundPending, models.OrderStatusRefunded).Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req = mux.SetURLVars(req, map[string]string{"merchant_refund_id": "RFD1"})
		w := httptest.NewRecorder()
		HandleGetRefundStatus(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(w.Body.String(), ShouldContainSubstring, `"orderStatus":"refunded"`)
	})
}
