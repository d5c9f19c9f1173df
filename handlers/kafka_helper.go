package handlers

import (
	"fmt"
	"io"
	"sync"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/companieshouse/chs.go/log"
	"github.com/kanchiweaves/storefront.api/config"
	"github.com/kanchiweaves/storefront.api/models"
)

// ProducerTopic is the topic to which the order payment processed kafka message is sent
const ProducerTopic = "order-payment-processed"

// ProducerSchemaName is the schema which will be used to send the order payment processed kafka message with
const ProducerSchemaName = "order-payment-processed"

// orderPaymentProcessed represents the avro schema of ProducerSchemaName
type orderPaymentProcessed struct {
	OrderID          string `avro:"order_id"`
	Status           string `avro:"status"`
	PaymentMethod    string `avro:"payment_method"`
	PaymentReference string `avro:"payment_reference"`
	RefundReference  string `avro:"refund_reference"`
}

// orderSender sends order messages to the broker
type orderSender interface {
	Send(msg *producer.Message) (int32, int64, error)
}

var (
	producerMtx   sync.Mutex
	orderProducer orderSender
	orderSchema   *avro.Schema
)

// newOrderSender and getOrderSchema allow the broker and schema registry to
// be replaced in unit tests
var newOrderSender = func(cfg *producer.Config) (orderSender, error) {
	return producer.New(cfg)
}
var getOrderSchema = schema.Get

// handleOrderMessage allows us to mock the call to produceOrderMessage for unit tests
var handleOrderMessage = produceOrderMessage

// StartOrderProducer connects the producer order messages are sent with and
// fetches their schema. Nothing is started when no broker is configured.
func StartOrderProducer(cfg config.Config) error {
	if len(cfg.BrokerAddr) == 0 {
		log.Info("no kafka broker configured, order payment processed messages are disabled")
		return nil
	}

	definition, err := getOrderSchema(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		return fmt.Errorf("error getting schema from schema registry: [%w]", err)
	}
	sender, err := newOrderSender(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		return fmt.Errorf("error creating kafka producer: [%w]", err)
	}

	producerMtx.Lock()
	defer producerMtx.Unlock()
	orderProducer = sender
	orderSchema = &avro.Schema{Definition: definition}
	return nil
}

// StopOrderProducer closes the producer started by StartOrderProducer
func StopOrderProducer() {
	producerMtx.Lock()
	sender := orderProducer
	orderProducer = nil
	orderSchema = nil
	producerMtx.Unlock()

	if closer, ok := sender.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Error(fmt.Errorf("error closing kafka producer: [%w]", err))
		}
	}
}

// PublishOrderSettled announces an order whose payment or refund has settled.
// Failures are logged and do not affect the order.
func PublishOrderSettled(order *models.Order) {
	if err := handleOrderMessage(order); err != nil {
		log.Error(fmt.Errorf("error producing order payment processed message: [%w]", err), log.Data{"order_id": order.ID})
	}
}

// produceOrderMessage marshals the order into the order payment processed
// schema and sends it to ProducerTopic on the shared producer. Nothing is
// sent when the producer has not been started.
func produceOrderMessage(order *models.Order) error {
	producerMtx.Lock()
	sender, producerSchema := orderProducer, orderSchema
	producerMtx.Unlock()

	if sender == nil {
		log.Debug("kafka producer not started, order payment processed message not sent", log.Data{"order_id": order.ID})
		return nil
	}

	// Prepare a message with the avro schema
	message, err := prepareKafkaMessage(order, *producerSchema)
	if err != nil {
		return fmt.Errorf("error preparing kafka message with schema: [%v]", err)
	}

	// Send the message
	partition, offset, err := sender.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send message in partition: %d at offset %d: [%w]", partition, offset, err)
	}

	log.Info("order payment processed message sent", log.Data{"order_id": order.ID, "status": order.Status, "partition": partition, "offset": offset})
	return nil
}

// prepareKafkaMessage is pulled out of produceOrderMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(order *models.Order, orderProcessedSchema avro.Schema) (*producer.Message, error) {
	processed := orderPaymentProcessed{
		OrderID:          order.ID,
		Status:           order.Status,
		PaymentMethod:    order.PaymentMethod,
		PaymentReference: order.PaymentReference,
		RefundReference:  order.RefundReference,
	}

	messageBytes, err := orderProcessedSchema.Marshal(processed)
	if err != nil {
		return nil, fmt.Errorf("error marshalling order payment processed message: [%v]", err)
	}

	return &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}, nil
}
