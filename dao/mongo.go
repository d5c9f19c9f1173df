package dao

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/kanchiweaves/storefront.api/transformers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	UsersCollection              = "users"
	AdminsCollection             = "admins"
	OrdersCollection             = "orders"
	WishlistsCollection          = "wishlists"
	ContactSubmissionsCollection = "contact_submissions"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Error(fmt.Errorf("failed to connect to mongodb: [%w]", err))
		os.Exit(1)
	}

	// check we can talk to mongo
	if err = mongoClient.Ping(ctx, nil); err != nil {
		log.Error(fmt.Errorf("ping to mongodb failed: [%w]", err))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")
	client = mongoClient

	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as
// the backend driver
type MongoService struct {
	db MongoDatabaseInterface
}

// seq is an ObjectID stamped on insert. It increases within a process and
// orders records created in the same millisecond.
var newestFirstSort = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "seq", Value: -1}})

func (m *MongoService) findOne(collection string, filter bson.M, out interface{}) (bool, error) {
	err := m.db.Collection(collection).FindOne(context.Background(), filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *MongoService) findAll(collection string, filter bson.M, out interface{}) error {
	ctx := context.Background()
	cursor, err := m.db.Collection(collection).Find(ctx, filter, newestFirstSort)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (m *MongoService) insert(collection string, document interface{}) error {
	raw, err := bson.Marshal(document)
	if err != nil {
		return err
	}

	var stored bson.D
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return err
	}
	stored = append(stored, bson.E{Key: "seq", Value: primitive.NewObjectID()})

	_, err = m.db.Collection(collection).InsertOne(context.Background(), stored)
	return err
}

func (m *MongoService) deleteByID(collection, id string) error {
	_, err := m.db.Collection(collection).DeleteOne(context.Background(), bson.M{"_id": id})
	return err
}

// GetUser gets a user from the DB. If the user is not found, nil is returned.
func (m *MongoService) GetUser(id string) (*models.User, error) {
	var user models.User
	found, err := m.findOne(UsersCollection, bson.M{"_id": id}, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername gets a user by username
func (m *MongoService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	found, err := m.findOne(UsersCollection, bson.M{"username": username}, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// CreateUser writes a new user to the DB
func (m *MongoService) CreateUser(user *models.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	return m.insert(UsersCollection, user)
}

// GetAllUsers lists every user
func (m *MongoService) GetAllUsers() ([]models.User, error) {
	users := []models.User{}
	if err := m.findAll(UsersCollection, bson.M{}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user
func (m *MongoService) DeleteUser(id string) error {
	return m.deleteByID(UsersCollection, id)
}

// GetAdminByUsername gets an admin by username
func (m *MongoService) GetAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	found, err := m.findOne(AdminsCollection, bson.M{"username": username}, &admin)
	if err != nil || !found {
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin writes a new admin to the DB
func (m *MongoService) CreateAdmin(admin *models.Admin) error {
	if admin.Role == "" {
		admin.Role = models.DefaultAdminRole
	}
	admin.ID = uuid.NewString()
	admin.CreatedAt = time.Now()
	return m.insert(AdminsCollection, admin)
}

// CreateOrder writes a new order to the DB
func (m *MongoService) CreateOrder(order *models.Order) error {
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = models.PaymentMethodPhonePe
	}
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()
	return m.insert(OrdersCollection, transformers.OrderTransformer{}.TransformToDB(*order))
}

func (m *MongoService) getOrderBy(filter bson.M) (*models.Order, error) {
	var dbOrder models.OrderDB
	found, err := m.findOne(OrdersCollection, filter, &dbOrder)
	if err != nil || !found {
		return nil, err
	}

	order, err := transformers.OrderTransformer{}.TransformToRest(dbOrder)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder gets an order from the DB. If the order is not found, nil is
// returned.
func (m *MongoService) GetOrder(id string) (*models.Order, error) {
	return m.getOrderBy(bson.M{"_id": id})
}

// GetOrderByPaymentReference gets the order a gateway merchant order id was
// issued for
func (m *MongoService) GetOrderByPaymentReference(reference string) (*models.Order, error) {
	return m.getOrderBy(bson.M{"payment_reference": reference})
}

// GetOrderByRefundReference gets the order a merchant refund id was issued for
func (m *MongoService) GetOrderByRefundReference(reference string) (*models.Order, error) {
	return m.getOrderBy(bson.M{"refund_reference": reference})
}

func (m *MongoService) listOrders(filter bson.M) ([]models.Order, error) {
	var dbOrders []models.OrderDB
	if err := m.findAll(OrdersCollection, filter, &dbOrders); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(dbOrders))
	for _, dbOrder := range dbOrders {
		order, err := transformers.OrderTransformer{}.TransformToRest(dbOrder)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// GetAllOrders lists every order
func (m *MongoService) GetAllOrders() ([]models.Order, error) {
	return m.listOrders(bson.M{})
}

// GetOrdersByUserID lists the orders placed by a user
func (m *MongoService) GetOrdersByUserID(userID string) ([]models.Order, error) {
	return m.listOrders(bson.M{"user_id": userID})
}

// GetOrdersByStatus lists the orders currently in a status
func (m *MongoService) GetOrdersByStatus(status string) ([]models.Order, error) {
	return m.listOrders(bson.M{"status": status})
}

// UpdateOrder overwrites the mutable fields of an order
func (m *MongoService) UpdateOrder(order *models.Order) error {
	dbOrder := transformers.OrderTransformer{}.TransformToDB(*order)

	update := bson.M{
		"user_id":           dbOrder.UserID,
		"items":             dbOrder.Items,
		"total_amount":      dbOrder.TotalAmount,
		"status":            dbOrder.Status,
		"shipping_address":  dbOrder.ShippingAddress,
		"payment_method":    dbOrder.PaymentMethod,
		"payment_reference": dbOrder.PaymentReference,
		"refund_reference":  dbOrder.RefundReference,
		"shipment_id":       dbOrder.ShipmentID,
		"awb_code":          dbOrder.AWBCode,
		"shipment_step":     dbOrder.ShipmentStep,
	}

	result, err := m.db.Collection(OrdersCollection).UpdateOne(context.Background(), bson.M{"_id": order.ID}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("error updating order [%s]: [%w]", order.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateOrderStatus moves an order from one status to another. It reports
// false when the order is no longer in the from status.
func (m *MongoService) UpdateOrderStatus(id, from, to string) (bool, error) {
	result, err := m.db.Collection(OrdersCollection).UpdateOne(context.Background(),
		bson.M{"_id": id, "status": from}, bson.M{"$set": bson.M{"status": to}})
	if err != nil {
		return false, fmt.Errorf("error moving order [%s] to [%s]: [%w]", id, to, err)
	}
	return result.ModifiedCount == 1, nil
}

// DeleteOrder removes an order
func (m *MongoService) DeleteOrder(id string) error {
	return m.deleteByID(OrdersCollection, id)
}

// CreateWishlist writes a new wishlist entry to the DB
func (m *MongoService) CreateWishlist(wishlist *models.Wishlist) error {
	wishlist.ID = uuid.NewString()
	wishlist.CreatedAt = time.Now()
	return m.insert(WishlistsCollection, wishlist)
}

// GetUserWishlists lists a user's wishlist entries
func (m *MongoService) GetUserWishlists(userID string) ([]models.Wishlist, error) {
	wishlists := []models.Wishlist{}
	if err := m.findAll(WishlistsCollection, bson.M{"user_id": userID}, &wishlists); err != nil {
		return nil, err
	}
	return wishlists, nil
}

// DeleteWishlist removes a wishlist entry
func (m *MongoService) DeleteWishlist(id string) error {
	return m.deleteByID(WishlistsCollection, id)
}

// CreateContactSubmission writes a contact form message to the DB
func (m *MongoService) CreateContactSubmission(submission *models.ContactSubmission) error {
	submission.ID = uuid.NewString()
	submission.CreatedAt = time.Now()
	return m.insert(ContactSubmissionsCollection, submission)
}

// GetAllContactSubmissions lists every contact form message
func (m *MongoService) GetAllContactSubmissions() ([]models.ContactSubmission, error) {
	submissions := []models.ContactSubmission{}
	if err := m.findAll(ContactSubmissionsCollection, bson.M{}, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}
