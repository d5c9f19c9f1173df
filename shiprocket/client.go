// Package shiprocket is a client for the Shiprocket external API. Every
// operation authenticates with a cached bearer token and makes one call.
package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/kanchiweaves/storefront.api/models"
	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the Shiprocket external API host
const DefaultBaseURL = "https://apiv2.shiprocket.in/v1/external"

// TokenValidity is how long a login token is trusted for
const TokenValidity = 240 * time.Hour

const (
	opLogin          = "login"
	opServiceability = "courier serviceability"
	opCreateOrder    = "create order"
	opAssignAWB      = "assign AWB"
	opSchedulePickup = "schedule pickup"
	opGenerateLabel  = "generate label"
	opTrack          = "track shipment"
)

var failureMessages = map[string]string{
	opLogin:          "Failed to authenticate with Shiprocket",
	opServiceability: "Failed to check courier serviceability",
	opCreateOrder:    "Failed to create Shiprocket order",
	opAssignAWB:      "Failed to assign AWB",
	opSchedulePickup: "Failed to schedule pickup",
	opGenerateLabel:  "Failed to generate shipping label",
	opTrack:          "Failed to track shipment",
}

// Config holds the Shiprocket API user credentials
type Config struct {
	Email    string
	Password string
	BaseURL  string
}

// Client talks to Shiprocket
type Client struct {
	HTTPClient *http.Client

	email    string
	password string
	baseURL  string
	tokens   TokenStore
	validate *validator.Validate
	logins   singleflight.Group
}

// NewClient returns a client that caches its token in store. A nil store
// gets an in-memory one.
func NewClient(cfg Config, store TokenStore) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if store == nil {
		store = NewMemoryTokenStore()
	}

	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		email:      cfg.Email,
		password:   cfg.Password,
		baseURL:    baseURL,
		tokens:     store,
		validate:   validator.New(),
	}
}

// GetAuthToken returns the cached token, logging in only when there is none
// or it has expired. Concurrent logins in this process share one request.
func (c *Client) GetAuthToken(ctx context.Context) (string, error) {
	token, ok, err := c.tokens.Get(ctx)
	if err != nil {
		log.Error(err)
	}
	if ok {
		return token, nil
	}

	v, err, _ := c.logins.Do(opLogin, func() (interface{}, error) {
		return c.login(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) login(ctx context.Context) (string, error) {
	var resp models.ShiprocketLoginResponse
	body := models.ShiprocketLoginRequest{Email: c.email, Password: c.password}
	if err := c.send(ctx, opLogin, http.MethodPost, "/auth/login", nil, body, "", &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &APIError{Op: opLogin, Message: "no token in login response"}
	}

	if err := c.tokens.Set(ctx, resp.Token, TokenValidity); err != nil {
		log.Error(err)
	}
	log.Info("Shiprocket authentication successful")
	return resp.Token, nil
}

// GetCourierServiceability lists the couriers able to carry a parcel of
// weight kg between two pincodes.
func (c *Client) GetCourierServiceability(ctx context.Context, pickup, delivery string, weight float64, cod bool) ([]models.CourierOption, error) {
	query := url.Values{}
	query.Set("pickup_postcode", pickup)
	query.Set("delivery_postcode", delivery)
	query.Set("weight", strconv.FormatFloat(weight, 'f', -1, 64))
	query.Set("cod", "0")
	if cod {
		query.Set("cod", "1")
	}

	var resp models.IncomingServiceabilityResponse
	if err := c.call(ctx, opServiceability, http.MethodGet, "/courier/serviceability/", query, nil, &resp); err != nil {
		return nil, err
	}

	options := make([]models.CourierOption, 0, len(resp.Data.AvailableCourierCompanies))
	for _, company := range resp.Data.AvailableCourierCompanies {
		options = append(options, models.CourierOption{
			CourierID:     company.CourierCompanyID,
			Name:          company.CourierName,
			FreightCharge: company.FreightCharge,
			CODCharge:     company.CODCharge,
			TotalCharge:   company.TotalCharge,
			EstimatedDays: company.EstimatedDeliveryDays,
			IsSurface:     company.IsSurface,
		})
	}
	return options, nil
}

// CreateOrder creates an adhoc order. Shiprocket's own message is returned on
// failure.
func (c *Client) CreateOrder(ctx context.Context, req models.ShipmentOrderRequest) (*models.ShipmentOrder, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, &APIError{Op: opCreateOrder, Message: "invalid shipment order request", Err: err}
	}

	var resp models.ShipmentOrder
	if err := c.call(ctx, opCreateOrder, http.MethodPost, "/orders/create/adhoc", nil, req, &resp); err != nil {
		return nil, err
	}

	log.Info("Shiprocket order created", log.Data{"order_id": req.OrderID, "shipment_id": resp.ShipmentID})
	return &resp, nil
}

// AssignAWB assigns a tracking code to a shipment. A zero courierID lets
// Shiprocket pick the courier.
func (c *Client) AssignAWB(ctx context.Context, shipmentID int64, courierID int64) (*models.AWBAssignment, error) {
	var resp models.AWBAssignment
	body := models.OutgoingAWBRequest{ShipmentID: shipmentID, CourierID: courierID}
	if err := c.call(ctx, opAssignAWB, http.MethodPost, "/courier/assign/awb", nil, body, &resp); err != nil {
		return nil, err
	}

	log.Info("Shiprocket AWB assigned", log.Data{"shipment_id": shipmentID, "awb_code": resp.Response.Data.AWBCode})
	return &resp, nil
}

// SchedulePickup requests a courier pickup for a shipment
func (c *Client) SchedulePickup(ctx context.Context, shipmentID int64) (*models.PickupResponse, error) {
	var resp models.PickupResponse
	body := models.OutgoingShipmentIDs{ShipmentID: []int64{shipmentID}}
	if err := c.call(ctx, opSchedulePickup, http.MethodPost, "/courier/generate/pickup", nil, body, &resp); err != nil {
		return nil, err
	}

	log.Info("Shiprocket pickup scheduled", log.Data{"shipment_id": shipmentID})
	return &resp, nil
}

// GenerateLabel produces one printable label covering the given shipments
func (c *Client) GenerateLabel(ctx context.Context, shipmentIDs []int64) (*models.Label, error) {
	var resp models.Label
	body := models.OutgoingShipmentIDs{ShipmentID: shipmentIDs}
	if err := c.call(ctx, opGenerateLabel, http.MethodPost, "/courier/generate/label", nil, body, &resp); err != nil {
		return nil, err
	}

	log.Info("Shiprocket label generated", log.Data{"shipment_ids": shipmentIDs})
	return &resp, nil
}

// TrackShipment returns the scan history of an AWB
func (c *Client) TrackShipment(ctx context.Context, awbCode string) (*models.TrackingResponse, error) {
	var resp models.TrackingResponse
	if err := c.call(ctx, opTrack, http.MethodGet, "/courier/track/awb/"+url.PathEscape(awbCode), nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// call makes an authenticated request. A 401 drops the cached token so the
// next call logs in again.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body, out interface{}) error {
	token, err := c.GetAuthToken(ctx)
	if err != nil {
		return err
	}

	err = c.send(ctx, op, method, path, query, body, token, out)
	if apiErr, ok := err.(*APIError); ok && apiErr.StatusCode == http.StatusUnauthorized {
		if delErr := c.tokens.Delete(ctx); delErr != nil {
			log.Error(delErr)
		}
	}
	return err
}

func (c *Client) send(ctx context.Context, op, method, path string, query url.Values, body interface{}, token string, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		requestBody, err := json.Marshal(body)
		if err != nil {
			return &APIError{Op: op, Message: "error marshalling request", Err: err}
		}
		reader = bytes.NewBuffer(requestBody)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &APIError{Op: op, Message: "error generating request", Err: err}
	}
	request.Header.Add("Content-Type", "application/json")
	if token != "" {
		request.Header.Add("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(request)
	if err != nil {
		log.Error(fmt.Errorf("error sending request to shiprocket: [%w]", err), log.Data{"op": op})
		return &APIError{Op: op, Message: failureMessages[op], Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Op: op, StatusCode: resp.StatusCode, Message: failureMessages[op], Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Op: op, StatusCode: resp.StatusCode, Message: failureMessages[op]}
		var errResp models.ShiprocketErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			apiErr.Message = errResp.Message
		}
		log.Error(apiErr, log.Data{"op": op, "status": resp.StatusCode})
		return apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &APIError{Op: op, StatusCode: resp.StatusCode, Message: "error decoding response", Err: err}
	}
	return nil
}
