package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/kanchiweaves/storefront.api/service"
	"github.com/kanchiweaves/storefront.api/utils"
)

// HandleCreateUser signs up a customer
func HandleCreateUser(w http.ResponseWriter, req *http.Request) {
	var incomingUserRequest models.IncomingUserRequest
	if err := utils.DecodeJSONBody(req, &incomingUserRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteMessage(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	user, responseType, err := userService.CreateUser(incomingUserRequest)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error creating user: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, user, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new user", log.Data{"user_id": user.ID})
}

// HandleGetUser returns a single customer
func HandleGetUser(w http.ResponseWriter, req *http.Request) {
	userID := mux.Vars(req)["user_id"]
	if userID == "" {
		log.ErrorR(req, fmt.Errorf("user id not supplied"))
		utils.WriteMessage(w, req, "user id not supplied", http.StatusBadRequest)
		return
	}

	user, responseType, err := userService.GetUser(userID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error getting user: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, user, http.StatusOK)
}

// HandleGetAllUsers lists every customer
func HandleGetAllUsers(w http.ResponseWriter, req *http.Request) {
	users, responseType, err := userService.GetAllUsers()
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error getting users: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, users, http.StatusOK)
}

// HandleDeleteUser removes a customer
func HandleDeleteUser(w http.ResponseWriter, req *http.Request) {
	userID := mux.Vars(req)["user_id"]
	if userID == "" {
		log.ErrorR(req, fmt.Errorf("user id not supplied"))
		utils.WriteMessage(w, req, "user id not supplied", http.StatusBadRequest)
		return
	}

	responseType, err := userService.DeleteUser(userID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error deleting user: [%w]", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)

	log.InfoR(req, "Successful DELETE request for user", log.Data{"user_id": userID})
}

// HandleCreateAdmin adds a back office user
func HandleCreateAdmin(w http.ResponseWriter, req *http.Request) {
	var incomingAdminRequest models.IncomingAdminRequest
	if err := utils.DecodeJSONBody(req, &incomingAdminRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteMessage(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	admin, responseType, err := userService.CreateAdmin(incomingAdminRequest)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error creating admin: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, admin, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new admin", log.Data{"admin_id": admin.ID, "role": admin.Role})
}

// HandleAdminLogin checks a back office user's credentials. Unknown usernames
// and wrong passwords are reported alike.
func HandleAdminLogin(w http.ResponseWriter, req *http.Request) {
	var incomingLoginRequest models.IncomingLoginRequest
	if err := utils.DecodeJSONBody(req, &incomingLoginRequest); err != nil || incomingLoginRequest.Username == "" || incomingLoginRequest.Password == "" {
		log.ErrorR(req, fmt.Errorf("login request invalid: [%v]", err))
		utils.WriteMessage(w, req, "username and password are required", http.StatusBadRequest)
		return
	}

	admin, responseType, err := userService.AuthenticateAdmin(incomingLoginRequest.Username, incomingLoginRequest.Password)
	if err != nil {
		switch responseType {
		case service.NotFound, service.Forbidden:
			log.ErrorR(req, fmt.Errorf("admin login refused: [%w]", err))
			utils.WriteMessage(w, req, "invalid username or password", http.StatusUnauthorized)
		default:
			writeServiceError(w, req, responseType, fmt.Errorf("error authenticating admin: [%w]", err))
		}
		return
	}

	utils.WriteJSONWithStatus(w, req, admin, http.StatusOK)

	log.InfoR(req, "Successful admin login", log.Data{"admin_id": admin.ID})
}
