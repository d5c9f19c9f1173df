package service

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/kanchiweaves/storefront.api/dao"
	"github.com/kanchiweaves/storefront.api/models"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/crypto/bcrypt"
)

func createMockUserService(store dao.DAO) *UserService {
	return &UserService{DAO: store, PasswordCost: bcrypt.MinCost}
}

func TestUnitCreateUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	req := models.IncomingUserRequest{Username: "asha", Password: "silk-and-zari"}

	Convey("Short password is invalid", t, func() {
		service := createMockUserService(dao.NewMockDAO(mockCtrl))

		_, responseType, err := service.CreateUser(models.IncomingUserRequest{Username: "asha", Password: "short"})
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldStartWith, "invalid user request")
	})

	Convey("Taken username", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockUserService(mockDAO)
		mockDAO.EXPECT().GetUserByUsername("asha").Return(&models.User{ID: "u-1", Username: "asha"}, nil)

		_, responseType, err := service.CreateUser(req)
		So(responseType, ShouldEqual, Conflict)
		So(err.Error(), ShouldEqual, "username [asha] is taken")
	})

	Convey("Error storing user", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockUserService(mockDAO)
		mockDAO.EXPECT().GetUserByUsername("asha").Return(nil, nil)
		mockDAO.EXPECT().CreateUser(gomock.Any()).Return(errors.New("error"))

		_, responseType, err := service.CreateUser(req)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error creating user: [error]")
	})

	Convey("Password is stored hashed", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockUserService(mockDAO)
		mockDAO.EXPECT().GetUserByUsername("asha").Return(nil, nil)
		mockDAO.EXPECT().CreateUser(gomock.Any()).Return(nil)

		user, responseType, err := service.CreateUser(req)
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(user.Password, ShouldNotEqual, "silk-and-zari")
		So(bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("silk-and-zari")), ShouldBeNil)
	})
}

func TestUnitGetUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("User not found", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockUserService(mockDAO)
		mockDAO.EXPECT().GetUser("u-9").Return(nil, nil)

		_, responseType, err := service.GetUser("u-9")
		So(responseType, ShouldEqual, NotFound)
		So(err.Error(), ShouldEqual, "user [u-9] not found")
	})

	Convey("All users", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockUserService(mockDAO)
		mockDAO.EXPECT().GetAllUsers().Return([]models.User{{ID: "u-1"}, {ID: "u-2"}}, nil)

		users, responseType, err := service.GetAllUsers()
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(users, ShouldHaveLength, 2)
	})
}

func TestUnitAdmins(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Admin created", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockUserService(mockDAO)
		mockDAO.EXPECT().GetAdminByUsername("ops").Return(nil, nil)
		mockDAO.EXPECT().CreateAdmin(gomock.Any()).Return(nil)

		admin, responseType, err := service.CreateAdmin(models.IncomingAdminRequest{Username: "ops", Password: "handloom-2024", Role: "support"})
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(admin.Role, ShouldEqual, "support")
	})

	Convey("Taken admin username", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockUserService(mockDAO)
		mockDAO.EXPECT().GetAdminByUsername("ops").Return(&models.Admin{Username: "ops"}, nil)

		_, responseType, _ := service.CreateAdmin(models.IncomingAdminRequest{Username: "ops", Password: "handloom-2024"})
		So(responseType, ShouldEqual, Conflict)
	})

	Convey("Authenticate", t, func() {
		hash, _ := bcrypt.GenerateFromPassword([]byte("handloom-2024"), bcrypt.MinCost)
		stored := &models.Admin{ID: "a-1", Username: "ops", Password: string(hash)}

		Convey("Unknown admin", func() {
			mockDAO := dao.NewMockDAO(mockCtrl)
			service := createMockUserService(mockDAO)
			mockDAO.EXPECT().GetAdminByUsername("nobody").Return(nil, nil)

			_, responseType, _ := service.AuthenticateAdmin("nobody", "handloom-2024")
			So(responseType, ShouldEqual, NotFound)
		})

		Convey("Wrong password", func() {
			mockDAO := dao.NewMockDAO(mockCtrl)
			service := createMockUserService(mockDAO)
			mockDAO.EXPECT().GetAdminByUsername("ops").Return(stored, nil)

			_, responseType, err := service.AuthenticateAdmin("ops", "guess")
			So(responseType, ShouldEqual, Forbidden)
			So(err.Error(), ShouldEqual, "wrong password for admin [ops]")
		})

		Convey("Right password", func() {
			mockDAO := dao.NewMockDAO(mockCtrl)
			service := createMockUserService(mockDAO)
			mockDAO.EXPECT().GetAdminByUsername("ops").Return(stored, nil)

			admin, responseType, err := service.AuthenticateAdmin("ops", "handloom-2024")
			So(err, ShouldBeNil)
			So(responseType, ShouldEqual, Success)
			So(admin.ID, ShouldEqual, "a-1")
		})
	})
}

func TestUnitWishlist(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Product is required", t, func() {
		service := createMockUserService(dao.NewMockDAO(mockCtrl))

		_, responseType, _ := service.AddToWishlist(models.IncomingWishlistRequest{UserID: "u-1"})
		So(responseType, ShouldEqual, InvalidData)
	})

	Convey("Product saved", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockUserService(mockDAO)
		mockDAO.EXPECT().CreateWishlist(gomock.Any()).Return(nil)

		wishlist, responseType, err := service.AddToWishlist(models.IncomingWishlistRequest{UserID: "u-1", ProductID: "p-1"})
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(wishlist.ProductID, ShouldEqual, "p-1")
	})

	Convey("Wishlist listed", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockUserService(mockDAO)
		mockDAO.EXPECT().GetUserWishlists("u-1").Return([]models.Wishlist{{ID: "w-1"}}, nil)

		wishlists, _, err := service.GetWishlist("u-1")
		So(err, ShouldBeNil)
		So(wishlists, ShouldHaveLength, 1)
	})

	Convey("Error removing entry", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockUserService(mockDAO)
		mockDAO.EXPECT().DeleteWishlist("w-1").Return(errors.New("error"))

		responseType, err := service.RemoveFromWishlist("w-1")
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error deleting wishlist entry [w-1]: [error]")
	})
}

func TestUnitDeleteUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("User deleted", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockUserService(mockDAO)
		mockDAO.EXPECT().DeleteUser("u-1").Return(nil)

		responseType, err := service.DeleteUser("u-1")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("Error deleting user", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		service := createMockUserService(mockDAO)
		mockDAO.EXPECT().DeleteUser("u-1").Return(errors.New("error"))

		responseType, err := service.DeleteUser("u-1")
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error deleting user [u-1]: [error]")
	})
}
