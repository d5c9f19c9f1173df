package dao

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/kanchiweaves/storefront.api/models"
)

const queryTimeout = 5 * time.Second

// Schema creates the storefront tables. seq breaks created_at ties so that
// newest first ordering is stable.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	email      TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	seq        BIGSERIAL
);
CREATE TABLE IF NOT EXISTS admins (
	id         TEXT PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	email      TEXT,
	role       TEXT NOT NULL DEFAULT 'admin',
	created_at TIMESTAMPTZ NOT NULL,
	seq        BIGSERIAL
);
CREATE TABLE IF NOT EXISTS orders (
	id                TEXT PRIMARY KEY,
	user_id           TEXT NOT NULL,
	items             JSONB NOT NULL,
	total_amount      NUMERIC(10, 2) NOT NULL,
	status            TEXT NOT NULL DEFAULT 'pending',
	shipping_address  JSONB NOT NULL,
	payment_method    TEXT NOT NULL,
	payment_reference TEXT NOT NULL DEFAULT '',
	refund_reference  TEXT NOT NULL DEFAULT '',
	shipment_id       BIGINT NOT NULL DEFAULT 0,
	awb_code          TEXT NOT NULL DEFAULT '',
	shipment_step     TEXT NOT NULL DEFAULT '',
	created_at        TIMESTAMPTZ NOT NULL,
	seq               BIGSERIAL
);
ALTER TABLE orders ADD COLUMN IF NOT EXISTS shipment_step TEXT NOT NULL DEFAULT '';
CREATE TABLE IF NOT EXISTS wishlists (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	product_id TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	seq        BIGSERIAL
);
CREATE TABLE IF NOT EXISTS contact_submissions (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	mobile     TEXT NOT NULL,
	email      TEXT NOT NULL,
	subject    TEXT NOT NULL,
	category   TEXT NOT NULL,
	message    TEXT,
	created_at TIMESTAMPTZ NOT NULL,
	seq        BIGSERIAL
);`

const (
	userColumns    = "id, username, password, email, created_at"
	adminColumns   = "id, username, password, email, role, created_at"
	orderColumns   = "id, user_id, items, total_amount, status, shipping_address, payment_method, payment_reference, refund_reference, shipment_id, awb_code, shipment_step, created_at"
	wishlistColumn = "id, user_id, product_id, created_at"
	contactColumns = "id, name, mobile, email, subject, category, message, created_at"
	newestFirstSQL = " ORDER BY created_at DESC, seq DESC"
)

// PostgresStore is an implementation of the DAO interface backed by
// PostgreSQL through the pgx database/sql driver
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres opens and pings a pgx connection pool
func OpenPostgres(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("error opening postgres: [%w]", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping to postgres failed: [%w]", err)
	}
	return db, nil
}

// NewPostgresStore returns a store using db
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates any missing tables
func (p *PostgresStore) Migrate() error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	if _, err := p.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("error creating storefront tables: [%w]", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (p *PostgresStore) exec(query string, args ...any) (sql.Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	return p.db.ExecContext(ctx, query, args...)
}

// queryOne scans a single row, reporting false when there is none
func (p *PostgresStore) queryOne(scan func(rowScanner) error, query string, args ...any) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	err := scan(p.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *PostgresStore) queryAll(scan func(rowScanner) error, query string, args ...any) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

// GetUser gets a user by id. If the user is not found, nil is returned.
func (p *PostgresStore) GetUser(id string) (*models.User, error) {
	var user models.User
	found, err := p.queryOne(func(row rowScanner) error { return scanUser(row, &user) }, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername gets a user by username
func (p *PostgresStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	found, err := p.queryOne(func(row rowScanner) error { return scanUser(row, &user) }, "SELECT "+userColumns+" FROM users WHERE username = $1", username)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user
func (p *PostgresStore) CreateUser(user *models.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	_, err := p.exec("INSERT INTO users ("+userColumns+") VALUES ($1, $2, $3, $4, $5)",
		user.ID, user.Username, user.Password, user.Email, user.CreatedAt)
	return err
}

// GetAllUsers lists every user
func (p *PostgresStore) GetAllUsers() ([]models.User, error) {
	users := []models.User{}
	err := p.queryAll(func(row rowScanner) error {
		var user models.User
		if err := scanUser(row, &user); err != nil {
			return err
		}
		users = append(users, user)
		return nil
	}, "SELECT "+userColumns+" FROM users"+newestFirstSQL)
	if err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user
func (p *PostgresStore) DeleteUser(id string) error {
	_, err := p.exec("DELETE FROM users WHERE id = $1", id)
	return err
}

// GetAdminByUsername gets an admin by username
func (p *PostgresStore) GetAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	found, err := p.queryOne(func(row rowScanner) error {
		return row.Scan(&admin.ID, &admin.Username, &admin.Password, &admin.Email, &admin.Role, &admin.CreatedAt)
	}, "SELECT "+adminColumns+" FROM admins WHERE username = $1", username)
	if err != nil || !found {
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin inserts a new admin, defaulting the role
func (p *PostgresStore) CreateAdmin(admin *models.Admin) error {
	if admin.Role == "" {
		admin.Role = models.DefaultAdminRole
	}
	admin.ID = uuid.NewString()
	admin.CreatedAt = time.Now()
	_, err := p.exec("INSERT INTO admins ("+adminColumns+") VALUES ($1, $2, $3, $4, $5, $6)",
		admin.ID, admin.Username, admin.Password, admin.Email, admin.Role, admin.CreatedAt)
	return err
}

// CreateOrder inserts a new order
func (p *PostgresStore) CreateOrder(order *models.Order) error {
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = models.PaymentMethodPhonePe
	}
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()

	items, address, err := marshalOrderDocuments(order)
	if err != nil {
		return err
	}

	_, err = p.exec("INSERT INTO orders ("+orderColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)",
		order.ID, order.UserID, items, order.TotalAmount, order.Status, address, order.PaymentMethod,
		order.PaymentReference, order.RefundReference, order.ShipmentID, order.AWBCode, order.ShipmentStep, order.CreatedAt)
	return err
}

func (p *PostgresStore) getOrderBy(column, value string) (*models.Order, error) {
	var order models.Order
	found, err := p.queryOne(func(row rowScanner) error { return scanOrder(row, &order) },
		"SELECT "+orderColumns+" FROM orders WHERE "+column+" = $1", value)
	if err != nil || !found {
		return nil, err
	}
	return &order, nil
}

// GetOrder gets an order by id. If the order is not found, nil is returned.
func (p *PostgresStore) GetOrder(id string) (*models.Order, error) {
	return p.getOrderBy("id", id)
}

// GetOrderByPaymentReference gets the order a gateway merchant order id was
// issued for
func (p *PostgresStore) GetOrderByPaymentReference(reference string) (*models.Order, error) {
	return p.getOrderBy("payment_reference", reference)
}

// GetOrderByRefundReference gets the order a merchant refund id was issued for
func (p *PostgresStore) GetOrderByRefundReference(reference string) (*models.Order, error) {
	return p.getOrderBy("refund_reference", reference)
}

func (p *PostgresStore) listOrders(where string, args ...any) ([]models.Order, error) {
	orders := []models.Order{}
	err := p.queryAll(func(row rowScanner) error {
		var order models.Order
		if err := scanOrder(row, &order); err != nil {
			return err
		}
		orders = append(orders, order)
		return nil
	}, "SELECT "+orderColumns+" FROM orders"+where+newestFirstSQL, args...)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// GetAllOrders lists every order
func (p *PostgresStore) GetAllOrders() ([]models.Order, error) {
	return p.listOrders("")
}

// GetOrdersByUserID lists the orders placed by a user
func (p *PostgresStore) GetOrdersByUserID(userID string) ([]models.Order, error) {
	return p.listOrders(" WHERE user_id = $1", userID)
}

// GetOrdersByStatus lists the orders currently in a status
func (p *PostgresStore) GetOrdersByStatus(status string) ([]models.Order, error) {
	return p.listOrders(" WHERE status = $1", status)
}

// UpdateOrder overwrites the mutable fields of an order
func (p *PostgresStore) UpdateOrder(order *models.Order) error {
	items, address, err := marshalOrderDocuments(order)
	if err != nil {
		return err
	}

	result, err := p.exec(`UPDATE orders SET user_id = $2, items = $3, total_amount = $4, status = $5, shipping_address = $6,
	payment_method = $7, payment_reference = $8, refund_reference = $9, shipment_id = $10, awb_code = $11, shipment_step = $12 WHERE id = $1`,
		order.ID, order.UserID, items, order.TotalAmount, order.Status, address, order.PaymentMethod,
		order.PaymentReference, order.RefundReference, order.ShipmentID, order.AWBCode, order.ShipmentStep)
	if err != nil {
		return fmt.Errorf("error updating order [%s]: [%w]", order.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error updating order [%s]: [%w]", order.ID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateOrderStatus moves an order from one status to another. It reports
// false when the order is no longer in the from status.
func (p *PostgresStore) UpdateOrderStatus(id, from, to string) (bool, error) {
	result, err := p.exec("UPDATE orders SET status = $3 WHERE id = $1 AND status = $2", id, from, to)
	if err != nil {
		return false, fmt.Errorf("error moving order [%s] to [%s]: [%w]", id, to, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error moving order [%s] to [%s]: [%w]", id, to, err)
	}
	return affected == 1, nil
}

// DeleteOrder removes an order
func (p *PostgresStore) DeleteOrder(id string) error {
	_, err := p.exec("DELETE FROM orders WHERE id = $1", id)
	return err
}

// CreateWishlist inserts a new wishlist entry
func (p *PostgresStore) CreateWishlist(wishlist *models.Wishlist) error {
	wishlist.ID = uuid.NewString()
	wishlist.CreatedAt = time.Now()
	_, err := p.exec("INSERT INTO wishlists ("+wishlistColumn+") VALUES ($1, $2, $3, $4)",
		wishlist.ID, wishlist.UserID, wishlist.ProductID, wishlist.CreatedAt)
	return err
}

// GetUserWishlists lists a user's wishlist entries
func (p *PostgresStore) GetUserWishlists(userID string) ([]models.Wishlist, error) {
	wishlists := []models.Wishlist{}
	err := p.queryAll(func(row rowScanner) error {
		var w models.Wishlist
		if err := row.Scan(&w.ID, &w.UserID, &w.ProductID, &w.CreatedAt); err != nil {
			return err
		}
		wishlists = append(wishlists, w)
		return nil
	}, "SELECT "+wishlistColumn+" FROM wishlists WHERE user_id = $1"+newestFirstSQL, userID)
	if err != nil {
		return nil, err
	}
	return wishlists, nil
}

// DeleteWishlist removes a wishlist entry
func (p *PostgresStore) DeleteWishlist(id string) error {
	_, err := p.exec("DELETE FROM wishlists WHERE id = $1", id)
	return err
}

// CreateContactSubmission inserts a contact form message
func (p *PostgresStore) CreateContactSubmission(submission *models.ContactSubmission) error {
	submission.ID = uuid.NewString()
	submission.CreatedAt = time.Now()
	_, err := p.exec("INSERT INTO contact_submissions ("+contactColumns+") VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		submission.ID, submission.Name, submission.Mobile, submission.Email, submission.Subject,
		submission.Category, submission.Message, submission.CreatedAt)
	return err
}

// GetAllContactSubmissions lists every contact form message
func (p *PostgresStore) GetAllContactSubmissions() ([]models.ContactSubmission, error) {
	submissions := []models.ContactSubmission{}
	err := p.queryAll(func(row rowScanner) error {
		var c models.ContactSubmission
		if err := row.Scan(&c.ID, &c.Name, &c.Mobile, &c.Email, &c.Subject, &c.Category, &c.Message, &c.CreatedAt); err != nil {
			return err
		}
		submissions = append(submissions, c)
		return nil
	}, "SELECT "+contactColumns+" FROM contact_submissions"+newestFirstSQL)
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func marshalOrderDocuments(order *models.Order) (string, string, error) {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return "", "", fmt.Errorf("error marshalling items of order [%s]: [%w]", order.ID, err)
	}
	address, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return "", "", fmt.Errorf("error marshalling address of order [%s]: [%w]", order.ID, err)
	}
	return string(items), string(address), nil
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(&user.ID, &user.Username, &user.Password, &user.Email, &user.CreatedAt)
}

func scanOrder(row rowScanner, order *models.Order) error {
	var items, address []byte
	err := row.Scan(&order.ID, &order.UserID, &items, &order.TotalAmount, &order.Status, &address,
		&order.PaymentMethod, &order.PaymentReference, &order.RefundReference, &order.ShipmentID,
		&order.AWBCode, &order.ShipmentStep, &order.CreatedAt)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return fmt.Errorf("error decoding items of order [%s]: [%w]", order.ID, err)
	}
	if err := json.Unmarshal(address, &order.ShippingAddress); err != nil {
		return fmt.Errorf("error decoding address of order [%s]: [%w]", order.ID, err)
	}
	return nil
}
