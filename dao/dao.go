package dao

import (
	"errors"
	"fmt"

	"github.com/kanchiweaves/storefront.api/config"
	"github.com/kanchiweaves/storefront.api/models"
)

// ErrNotFound is returned when an update targets a record that does not exist
var ErrNotFound = errors.New("record not found")

// DAO is an interface for accessing storefront records from a backend store.
// Lookups that find nothing return a nil record and a nil error. Create calls
// assign the ID and CreatedAt of the record passed in. Lists are newest first.
type DAO interface {
	GetUser(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error
	GetAllUsers() ([]models.User, error)
	DeleteUser(id string) error

	GetAdminByUsername(username string) (*models.Admin, error)
	CreateAdmin(admin *models.Admin) error

	CreateOrder(order *models.Order) error
	GetOrder(id string) (*models.Order, error)
	GetOrderByPaymentReference(reference string) (*models.Order, error)
	GetOrderByRefundReference(reference string) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GetOrdersByUserID(userID string) ([]models.Order, error)
	GetOrdersByStatus(status string) ([]models.Order, error)
	UpdateOrder(order *models.Order) error
	UpdateOrderStatus(id, from, to string) (bool, error)
	DeleteOrder(id string) error

	CreateWishlist(wishlist *models.Wishlist) error
	GetUserWishlists(userID string) ([]models.Wishlist, error)
	DeleteWishlist(id string) error

	CreateContactSubmission(submission *models.ContactSubmission) error
	GetAllContactSubmissions() ([]models.ContactSubmission, error)
}

// NewDAO returns the store selected by cfg.StoreBackend
func NewDAO(cfg *config.Config) (DAO, error) {
	switch cfg.StoreBackend {
	case config.StoreMongo:
		return &MongoService{db: getMongoDatabase(cfg.MongoDBURL, cfg.Database)}, nil
	case config.StorePostgres:
		db, err := OpenPostgres(cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		store := NewPostgresStore(db)
		if err := store.Migrate(); err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend [%s]", cfg.StoreBackend)
	}
}
