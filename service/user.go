package service

import (
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/kanchiweaves/storefront.api/dao"
	"github.com/kanchiweaves/storefront.api/models"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost is the bcrypt cost passwords are hashed with
const DefaultPasswordCost = 12

// UserService manages customers, back office users and wishlists
type UserService struct {
	DAO          dao.DAO
	PasswordCost int
}

// NewUserService returns a UserService hashing with DefaultPasswordCost
func NewUserService(store dao.DAO) *UserService {
	return &UserService{DAO: store, PasswordCost: DefaultPasswordCost}
}

func (service *UserService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), service.PasswordCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: [%w]", err)
	}
	return string(hash), nil
}

// CreateUser registers a customer. Usernames are unique.
func (service *UserService) CreateUser(req models.IncomingUserRequest) (*models.User, ResponseType, error) {
	if err := validate.Struct(req); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid user request: [%w]", err)
	}

	existing, err := service.DAO.GetUserByUsername(req.Username)
	if err != nil {
		return nil, Error, fmt.Errorf("error checking username [%s]: [%w]", req.Username, err)
	}
	if existing != nil {
		return nil, Conflict, fmt.Errorf("username [%s] is taken", req.Username)
	}

	hash, err := service.hashPassword(req.Password)
	if err != nil {
		return nil, Error, err
	}

	user := &models.User{Username: req.Username, Password: hash, Email: req.Email}
	if err := service.DAO.CreateUser(user); err != nil {
		return nil, Error, fmt.Errorf("error creating user: [%w]", err)
	}

	log.Info("user created", log.Data{"user_id": user.ID})

	return user, Success, nil
}

// GetUser gets a customer by id
func (service *UserService) GetUser(id string) (*models.User, ResponseType, error) {
	user, err := service.DAO.GetUser(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting user [%s]: [%w]", id, err)
	}
	if user == nil {
		return nil, NotFound, fmt.Errorf("user [%s] not found", id)
	}
	return user, Success, nil
}

// GetAllUsers lists every customer, newest first
func (service *UserService) GetAllUsers() ([]models.User, ResponseType, error) {
	users, err := service.DAO.GetAllUsers()
	if err != nil {
		return nil, Error, fmt.Errorf("error getting users: [%w]", err)
	}
	return users, Success, nil
}

// DeleteUser removes a customer. Deleting an unknown user succeeds.
func (service *UserService) DeleteUser(id string) (ResponseType, error) {
	if err := service.DAO.DeleteUser(id); err != nil {
		return Error, fmt.Errorf("error deleting user [%s]: [%w]", id, err)
	}
	log.Info("user deleted", log.Data{"user_id": id})
	return Success, nil
}

// CreateAdmin registers a back office user
func (service *UserService) CreateAdmin(req models.IncomingAdminRequest) (*models.Admin, ResponseType, error) {
	if err := validate.Struct(req); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid admin request: [%w]", err)
	}

	existing, err := service.DAO.GetAdminByUsername(req.Username)
	if err != nil {
		return nil, Error, fmt.Errorf("error checking admin username [%s]: [%w]", req.Username, err)
	}
	if existing != nil {
		return nil, Conflict, fmt.Errorf("admin username [%s] is taken", req.Username)
	}

	hash, err := service.hashPassword(req.Password)
	if err != nil {
		return nil, Error, err
	}

	admin := &models.Admin{Username: req.Username, Password: hash, Email: req.Email, Role: req.Role}
	if err := service.DAO.CreateAdmin(admin); err != nil {
		return nil, Error, fmt.Errorf("error creating admin: [%w]", err)
	}

	log.Info("admin created", log.Data{"admin_id": admin.ID, "role": admin.Role})

	return admin, Success, nil
}

// AuthenticateAdmin checks an admin's password, returning NotFound for an
// unknown username and Forbidden for a wrong password
func (service *UserService) AuthenticateAdmin(username, password string) (*models.Admin, ResponseType, error) {
	admin, err := service.DAO.GetAdminByUsername(username)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting admin [%s]: [%w]", username, err)
	}
	if admin == nil {
		return nil, NotFound, fmt.Errorf("admin [%s] not found", username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, Forbidden, fmt.Errorf("wrong password for admin [%s]", username)
	}
	return admin, Success, nil
}

// AddToWishlist saves a product to a user's wishlist
func (service *UserService) AddToWishlist(req models.IncomingWishlistRequest) (*models.Wishlist, ResponseType, error) {
	if err := validate.Struct(req); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid wishlist request: [%w]", err)
	}

	wishlist := &models.Wishlist{UserID: req.UserID, ProductID: req.ProductID}
	if err := service.DAO.CreateWishlist(wishlist); err != nil {
		return nil, Error, fmt.Errorf("error creating wishlist entry: [%w]", err)
	}
	return wishlist, Success, nil
}

// GetWishlist lists a user's saved products, newest first
func (service *UserService) GetWishlist(userID string) ([]models.Wishlist, ResponseType, error) {
	wishlists, err := service.DAO.GetUserWishlists(userID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting wishlist for user [%s]: [%w]", userID, err)
	}
	return wishlists, Success, nil
}

// RemoveFromWishlist deletes a wishlist entry
func (service *UserService) RemoveFromWishlist(id string) (ResponseType, error) {
	if err := service.DAO.DeleteWishlist(id); err != nil {
		return Error, fmt.Errorf("error deleting wishlist entry [%s]: [%w]", id, err)
	}
	return Success, nil
}
