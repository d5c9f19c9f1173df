package transformers

import (
	"fmt"

	"github.com/kanchiweaves/storefront.api/models"
	"github.com/shopspring/decimal"
)

// OrderTransformer transforms orders between rest and database models
type OrderTransformer struct{}

// TransformToDB transforms an order into its database model
func (ot OrderTransformer) TransformToDB(rest models.Order) models.OrderDB {
	items := make([]models.OrderItemDB, 0, len(rest.Items))
	for _, item := range rest.Items {
		items = append(items, models.OrderItemDB{
			ProductID: item.ProductID,
			Name:      item.Name,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			Price:     item.Price.StringFixed(2),
		})
	}

	return models.OrderDB{
		ID:               rest.ID,
		UserID:           rest.UserID,
		Items:            items,
		TotalAmount:      rest.TotalAmount.StringFixed(2),
		Status:           rest.Status,
		ShippingAddress:  models.AddressDB(rest.ShippingAddress),
		PaymentMethod:    rest.PaymentMethod,
		PaymentReference: rest.PaymentReference,
		RefundReference:  rest.RefundReference,
		ShipmentID:       rest.ShipmentID,
		AWBCode:          rest.AWBCode,
		ShipmentStep:     rest.ShipmentStep,
		CreatedAt:        rest.CreatedAt,
	}
}

// TransformToRest transforms a database order into the rest model. Stored
// amounts that are not decimals are an error.
func (ot OrderTransformer) TransformToRest(dbOrder models.OrderDB) (models.Order, error) {
	total, err := decimal.NewFromString(dbOrder.TotalAmount)
	if err != nil {
		return models.Order{}, fmt.Errorf("error parsing total amount of order [%s]: [%w]", dbOrder.ID, err)
	}

	items := make([]models.OrderItem, 0, len(dbOrder.Items))
	for _, item := range dbOrder.Items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return models.Order{}, fmt.Errorf("error parsing price of product [%s] on order [%s]: [%w]", item.ProductID, dbOrder.ID, err)
		}
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}

	return models.Order{
		ID:               dbOrder.ID,
		UserID:           dbOrder.UserID,
		Items:            items,
		TotalAmount:      total,
		Status:           dbOrder.Status,
		ShippingAddress:  models.Address(dbOrder.ShippingAddress),
		PaymentMethod:    dbOrder.PaymentMethod,
		PaymentReference: dbOrder.PaymentReference,
		RefundReference:  dbOrder.RefundReference,
		ShipmentID:       dbOrder.ShipmentID,
		AWBCode:          dbOrder.AWBCode,
		ShipmentStep:     dbOrder.ShipmentStep,
		CreatedAt:        dbOrder.CreatedAt,
	}, nil
}
