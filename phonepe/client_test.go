package phonepe

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/kanchiweaves/storefront.api/checksum"
	"github.com/kanchiweaves/storefront.api/models"
	. "github.com/smartystreets/goconvey/convey"
)

const (
	merchantID = "SAREEMERCHANT"
	saltKey    = "099eb0cd-02cf-4e2a-8aca-3e6c6aff0399"
)

var (
	payURL    = SandboxBaseURL + "/pg/v1/pay"
	refundURL = SandboxBaseURL + "/pg/v1/refund"
)

func newTestClient() *Client {
	client, err := NewClient(Config{
		MerchantID: merchantID,
		SaltKey:    saltKey,
		SaltIndex:  "1",
		Mode:       "SANDBOX",
		HostURL:    "https://shop.example",
	})
	if err != nil {
		panic(err)
	}
	client.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return client
}

func statusURL(id string) string {
	return SandboxBaseURL + "/pg/v1/status/" + merchantID + "/" + id
}

func decodeEnvelope(req *http.Request, into interface{}) string {
	var envelope models.PhonePeEnvelope
	if err := json.NewDecoder(req.Body).Decode(&envelope); err != nil {
		panic(err)
	}
	decoded, err := base64.StdEncoding.DecodeString(envelope.Request)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(decoded, into); err != nil {
		panic(err)
	}
	return envelope.Request
}

func validPaymentRequest() models.PaymentRequest {
	return models.PaymentRequest{
		MerchantOrderID: "ORD1700000000000_a1b2c3d4",
		Amount:          50000,
		RedirectURL:     "https://shop.example/payment/callback",
	}
}

func TestUnitNewClient(t *testing.T) {
	Convey("Missing merchant id is a configuration error", t, func() {
		client, err := NewClient(Config{SaltKey: saltKey})
		So(client, ShouldBeNil)
		So(err, ShouldEqual, ErrMissingCredentials)
	})

	Convey("Missing salt key is a configuration error", t, func() {
		client, err := NewClient(Config{MerchantID: merchantID})
		So(client, ShouldBeNil)
		So(err, ShouldEqual, ErrMissingCredentials)
	})

	Convey("Defaults to production and salt index 1", t, func() {
		client, err := NewClient(Config{MerchantID: merchantID, SaltKey: saltKey})
		So(err, ShouldBeNil)
		So(client.BaseURL(), ShouldEqual, ProductionBaseURL)
		So(client.saltIndex, ShouldEqual, "1")
		So(client.MerchantID(), ShouldEqual, merchantID)
	})

	Convey("Sandbox mode selects the pre-production host", t, func() {
		So(newTestClient().BaseURL(), ShouldEqual, SandboxBaseURL)
	})
}

func TestUnitInitiatePayment(t *testing.T) {
	client := newTestClient()
	httpmock.ActivateNonDefault(client.HTTPClient)
	defer httpmock.DeactivateAndReset()

	Convey("Successful initiation returns the redirect url", t, func() {
		httpmock.Reset()
		var sent models.OutgoingPhonePePayRequest
		var xVerify, encoded string
		httpmock.RegisterResponder(http.MethodPost, payURL, func(req *http.Request) (*http.Response, error) {
			xVerify = req.Header.Get("X-VERIFY")
			encoded = decodeEnvelope(req, &sent)
			return httpmock.NewStringResponse(http.StatusOK, `{"success":true,"code":"PAYMENT_INITIATED","data":{"instrumentResponse":{"redirectInfo":{"url":"https://pay.example/x"}}}}`), nil
		})

		result := client.InitiatePayment(context.Background(), validPaymentRequest())

		So(result.Success, ShouldBeTrue)
		So(result.RedirectURL, ShouldEqual, "https://pay.example/x")
		So(result.State, ShouldEqual, "PAYMENT_INITIATED")
		So(result.OrderID, ShouldEqual, "ORD1700000000000_a1b2c3d4")
		So(result.Error, ShouldBeEmpty)

		So(sent.MerchantID, ShouldEqual, merchantID)
		So(sent.MerchantTransactionID, ShouldEqual, "ORD1700000000000_a1b2c3d4")
		So(sent.MerchantUserID, ShouldEqual, "MUID_1700000000000")
		So(sent.Amount, ShouldEqual, 50000)
		So(sent.RedirectMode, ShouldEqual, "POST")
		So(sent.CallbackURL, ShouldEqual, "https://shop.example/payment/callback")
		So(sent.PaymentInstrument.Type, ShouldEqual, "PAY_PAGE")
		So(sent.MobileNumber, ShouldBeEmpty)
		So(xVerify, ShouldEqual, checksum.SignEncoded(encoded, "/pg/v1/pay", saltKey, "1"))
	})

	Convey("Explicit callback url and mobile number are sent", t, func() {
		httpmock.Reset()
		var sent models.OutgoingPhonePePayRequest
		httpmock.RegisterResponder(http.MethodPost, payURL, func(req *http.Request) (*http.Response, error) {
			decodeEnvelope(req, &sent)
			return httpmock.NewStringResponse(http.StatusOK, `{"success":true,"code":"PAYMENT_INITIATED","data":{"instrumentResponse":{"redirectInfo":{"url":"https://pay.example/y"}}}}`), nil
		})

		req := validPaymentRequest()
		req.CallbackURL = "https://shop.example/api/payment/callback"
		req.MobileNumber = "9876543210"
		result := client.InitiatePayment(context.Background(), req)

		So(result.Success, ShouldBeTrue)
		So(sent.CallbackURL, ShouldEqual, "https://shop.example/api/payment/callback")
		So(sent.MobileNumber, ShouldEqual, "9876543210")
	})

	Convey("Gateway business failure is returned with message and code", t, func() {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodPost, payURL,
			httpmock.NewStringResponder(http.StatusOK, `{"success":false,"code":"BAD_REQUEST","message":"Invalid amount"}`))

		result := client.InitiatePayment(context.Background(), validPaymentRequest())

		So(result.Success, ShouldBeFalse)
		So(result.Error, ShouldEqual, "Invalid amount")
		So(result.Code, ShouldEqual, "BAD_REQUEST")
	})

	Convey("Gateway failure without a message uses a default", t, func() {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodPost, payURL,
			httpmock.NewStringResponder(http.StatusOK, `{"success":false,"code":"INTERNAL_SERVER_ERROR"}`))

		result := client.InitiatePayment(context.Background(), validPaymentRequest())

		So(result.Success, ShouldBeFalse)
		So(result.Error, ShouldEqual, "Payment initiation failed")
	})

	Convey("Transport failure is converted into a failed result", t, func() {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodPost, payURL, httpmock.NewErrorResponder(errors.New("connection refused")))

		result := client.InitiatePayment(context.Background(), validPaymentRequest())

		So(result.Success, ShouldBeFalse)
		So(result.Error, ShouldContainSubstring, "connection refused")
	})

	Convey("Successful response without a redirect url is a decode error", t, func() {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodPost, payURL,
			httpmock.NewStringResponder(http.StatusOK, `{"success":true,"code":"PAYMENT_INITIATED","data":{}}`))

		result := client.InitiatePayment(context.Background(), validPaymentRequest())

		So(result.Success, ShouldBeFalse)
		So(result.Error, ShouldContainSubstring, "data.instrumentResponse.redirectInfo.url")
	})

	Convey("Invalid request is rejected before any call is made", t, func() {
		httpmock.Reset()
		req := validPaymentRequest()
		req.Amount = 0

		result := client.InitiatePayment(context.Background(), req)

		So(result.Success, ShouldBeFalse)
		So(result.Error, ShouldContainSubstring, "invalid payment request")
		So(httpmock.GetTotalCallCount(), ShouldEqual, 0)
	})
}

func TestUnitCheckOrderStatus(t *testing.T) {
	client := newTestClient()
	httpmock.ActivateNonDefault(client.HTTPClient)
	defer httpmock.DeactivateAndReset()

	id := "ORD1700000000000_a1b2c3d4"

	Convey("Completed payment is reported with amount and details", t, func() {
		httpmock.Reset()
		var xVerify, xMerchant string
		httpmock.RegisterResponder(http.MethodGet, statusURL(id), func(req *http.Request) (*http.Response, error) {
			xVerify = req.Header.Get("X-VERIFY")
			xMerchant = req.Header.Get("X-MERCHANT-ID")
			return httpmock.NewStringResponse(http.StatusOK, `{"success":true,"code":"PAYMENT_SUCCESS","message":"Your payment is successful.","data":{"merchantId":"SAREEMERCHANT","merchantTransactionId":"`+id+`","transactionId":"T2311","amount":50000,"state":"COMPLETED","responseCode":"SUCCESS","paymentInstrument":{"type":"UPI","utr":"206378866112"}}}`), nil
		})

		result := client.CheckOrderStatus(context.Background(), id)

		So(result.Success, ShouldBeTrue)
		So(result.State, ShouldEqual, "PAYMENT_SUCCESS")
		So(result.OrderID, ShouldEqual, id)
		So(result.Amount, ShouldEqual, 50000)
		So(result.TransactionID, ShouldEqual, "T2311")
		So(result.PaymentInstrument["type"], ShouldEqual, "UPI")
		So(result.PaymentDetails.State, ShouldEqual, "COMPLETED")
		So(xVerify, ShouldEqual, checksum.SignStatusCheck("/pg/v1/status/"+merchantID+"/"+id, saltKey, "1"))
		So(xMerchant, ShouldEqual, merchantID)
	})

	Convey("Gateway reported failure surfaces as success false", t, func() {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, statusURL(id),
			httpmock.NewStringResponder(http.StatusOK, `{"success":false,"code":"PAYMENT_ERROR","message":"Payment Failed","data":{"amount":50000,"state":"FAILED"}}`))

		result := client.CheckOrderStatus(context.Background(), id)

		So(result.Success, ShouldBeFalse)
		So(result.State, ShouldEqual, "PAYMENT_ERROR")
		So(result.Error, ShouldEqual, "Payment Failed")
		So(result.Amount, ShouldEqual, 50000)
	})

	Convey("Body missing the success field is a typed decode failure", t, func() {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, statusURL(id),
			httpmock.NewStringResponder(http.StatusOK, `{"code":"PAYMENT_PENDING"}`))

		result := client.CheckOrderStatus(context.Background(), id)

		So(result.Success, ShouldBeFalse)
		So(result.Error, ShouldContainSubstring, "missing field [success]")
	})

	Convey("Non json body is a decode failure", t, func() {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, statusURL(id), httpmock.NewStringResponder(http.StatusOK, `<html>`))

		result := client.CheckOrderStatus(context.Background(), id)

		So(result.Success, ShouldBeFalse)
		So(result.Error, ShouldContainSubstring, "error decoding PhonePe response")
	})

	Convey("Non 2xx status with a message surfaces the message", t, func() {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, statusURL(id),
			httpmock.NewStringResponder(http.StatusBadRequest, `{"success":false,"code":"BAD_REQUEST","message":"Transaction not found"}`))

		result := client.CheckOrderStatus(context.Background(), id)

		So(result.Success, ShouldBeFalse)
		So(result.Error, ShouldEqual, "Transaction not found")
	})
}

func TestUnitInitiateRefund(t *testing.T) {
	client := newTestClient()
	httpmock.ActivateNonDefault(client.HTTPClient)
	defer httpmock.DeactivateAndReset()

	req := models.RefundRequest{
		MerchantRefundID: "RFD1700000000000_a1b2c3d4",
		MerchantOrderID:  "ORD1700000000000_a1b2c3d4",
		Amount:           20000,
	}

	Convey("Successful refund echoes the refund id and amount", t, func() {
		httpmock.Reset()
		var sent models.OutgoingPhonePeRefundRequest
		httpmock.RegisterResponder(http.MethodPost, refundURL, func(r *http.Request) (*http.Response, error) {
			decodeEnvelope(r, &sent)
			return httpmock.NewStringResponse(http.StatusOK, `{"success":true,"code":"PAYMENT_PENDING","data":{"transactionId":"TR1","amount":20000}}`), nil
		})

		result := client.InitiateRefund(context.Background(), req)

		So(result.Success, ShouldBeTrue)
		So(result.State, ShouldEqual, "PAYMENT_PENDING")
		So(result.RefundID, ShouldEqual, req.MerchantRefundID)
		So(result.Amount, ShouldEqual, 20000)
		So(sent.OriginalTransactionID, ShouldEqual, req.MerchantOrderID)
		So(sent.MerchantTransactionID, ShouldEqual, req.MerchantRefundID)
		So(sent.CallbackURL, ShouldEqual, "https://shop.example/api/payment/refund-callback")
	})

	Convey("HTTP 500 on refund returns a failure and does not panic", t, func() {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodPost, refundURL,
			httpmock.NewStringResponder(http.StatusInternalServerError, `{"success":false,"code":"INTERNAL_SERVER_ERROR","message":"There is an error trying to process your transaction at the moment."}`))

		var result *models.RefundResult
		So(func() { result = client.InitiateRefund(context.Background(), req) }, ShouldNotPanic)
		So(result.Success, ShouldBeFalse)
		So(result.Error, ShouldEqual, "There is an error trying to process your transaction at the moment.")
	})

	Convey("HTTP 500 without a body falls back to the status error", t, func() {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodPost, refundURL, httpmock.NewStringResponder(http.StatusInternalServerError, ""))

		result := client.InitiateRefund(context.Background(), req)

		So(result.Success, ShouldBeFalse)
		So(result.Error, ShouldEqual, "error status [500] back from PhonePe")
	})

	Convey("Refund callback url is omitted without a host url", t, func() {
		noHost, _ := NewClient(Config{MerchantID: merchantID, SaltKey: saltKey, Mode: "SANDBOX"})
		httpmock.ActivateNonDefault(noHost.HTTPClient)
		httpmock.Reset()
		var sent map[string]interface{}
		httpmock.RegisterResponder(http.MethodPost, refundURL, func(r *http.Request) (*http.Response, error) {
			decodeEnvelope(r, &sent)
			return httpmock.NewStringResponse(http.StatusOK, `{"success":true,"code":"PAYMENT_PENDING"}`), nil
		})

		result := noHost.InitiateRefund(context.Background(), req)

		So(result.Success, ShouldBeTrue)
		So(sent, ShouldNotContainKey, "callbackUrl")
	})
}

func TestUnitCheckRefundStatus(t *testing.T) {
	client := newTestClient()
	httpmock.ActivateNonDefault(client.HTTPClient)
	defer httpmock.DeactivateAndReset()

	id := "RFD1700000000000_a1b2c3d4"

	Convey("Refund status is reported", t, func() {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, statusURL(id),
			httpmock.NewStringResponder(http.StatusOK, `{"success":true,"code":"PAYMENT_SUCCESS","data":{"amount":20000,"state":"COMPLETED"}}`))

		result := client.CheckRefundStatus(context.Background(), id)

		So(result.Success, ShouldBeTrue)
		So(result.State, ShouldEqual, "PAYMENT_SUCCESS")
		So(result.RefundID, ShouldEqual, id)
		So(result.Amount, ShouldEqual, 20000)
		So(result.RefundDetails.State, ShouldEqual, "COMPLETED")
	})

	Convey("Transport failure never panics", t, func() {
		httpmock.Reset()
		httpmock.RegisterResponder(http.MethodGet, statusURL(id), httpmock.NewErrorResponder(errors.New("timeout")))

		var result *models.RefundStatusResult
		So(func() { result = client.CheckRefundStatus(context.Background(), id) }, ShouldNotPanic)
		So(result.Success, ShouldBeFalse)
		So(result.Error, ShouldContainSubstring, "timeout")
	})
}

func TestUnitValidateCallback(t *testing.T) {
	client := newTestClient()

	Convey("Base64 response field is decoded", t, func() {
		body := `{"response":"` + base64.StdEncoding.EncodeToString([]byte(`{"a":1}`)) + `"}`

		result := client.ValidateCallback([]byte(body))

		So(result.Success, ShouldBeTrue)
		So(result.IsValid, ShouldBeTrue)
		So(result.Data, ShouldResemble, map[string]interface{}{"a": float64(1)})
	})

	Convey("Body without a response field is passed through", t, func() {
		result := client.ValidateCallback([]byte(`{"a":1}`))

		So(result.IsValid, ShouldBeTrue)
		So(result.Data, ShouldResemble, map[string]interface{}{"a": float64(1)})
	})

	Convey("Response that is not base64 is a failure", t, func() {
		result := client.ValidateCallback([]byte(`{"response":"***"}`))

		So(result.Success, ShouldBeFalse)
		So(result.IsValid, ShouldBeFalse)
		So(result.Error, ShouldContainSubstring, "error decoding callback response")
	})

	Convey("Decoded response that is not json is a failure", t, func() {
		body := `{"response":"` + base64.StdEncoding.EncodeToString([]byte(`not json`)) + `"}`

		result := client.ValidateCallback([]byte(body))

		So(result.IsValid, ShouldBeFalse)
	})

	Convey("Non string response field is a failure", t, func() {
		result := client.ValidateCallback([]byte(`{"response":42}`))

		So(result.IsValid, ShouldBeFalse)
	})

	Convey("Empty response field is passed through", t, func() {
		for _, body := range []string{
			`{"response":"","code":"PAYMENT_SUCCESS"}`,
			`{"response":null,"code":"PAYMENT_SUCCESS"}`,
			`{"response":false,"code":"PAYMENT_SUCCESS"}`,
			`{"response":0,"code":"PAYMENT_SUCCESS"}`,
		} {
			result := client.ValidateCallback([]byte(body))

			So(result.Success, ShouldBeTrue)
			So(result.IsValid, ShouldBeTrue)
			So(result.Data["code"], ShouldEqual, "PAYMENT_SUCCESS")
		}
	})

	Convey("Body that is not json is a failure", t, func() {
		result := client.ValidateCallback([]byte(`response=abc`))

		So(result.IsValid, ShouldBeFalse)
	})
}

func TestUnitVerifyCallbackSignature(t *testing.T) {
	client := newTestClient()
	response := base64.StdEncoding.EncodeToString([]byte(`{"success":true,"code":"PAYMENT_SUCCESS"}`))

	Convey("Matching header verifies", t, func() {
		So(client.VerifyCallbackSignature(checksum.SignEncoded(response, "", saltKey, "1"), response), ShouldBeTrue)
	})

	Convey("Tampered response does not verify", t, func() {
		tampered := base64.StdEncoding.EncodeToString([]byte(`{"success":true,"code":"PAYMENT_ERROR"}`))
		So(client.VerifyCallbackSignature(checksum.SignEncoded(response, "", saltKey, "1"), tampered), ShouldBeFalse)
	})

	Convey("Missing header does not verify", t, func() {
		So(client.VerifyCallbackSignature("", response), ShouldBeFalse)
	})
}
