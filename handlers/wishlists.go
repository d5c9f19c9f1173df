package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/kanchiweaves/storefront.api/utils"
)

// HandleAddToWishlist saves a product to a user's wishlist
func HandleAddToWishlist(w http.ResponseWriter, req *http.Request) {
	var incomingWishlistRequest models.IncomingWishlistRequest
	if err := utils.DecodeJSONBody(req, &incomingWishlistRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteMessage(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	wishlist, responseType, err := userService.AddToWishlist(incomingWishlistRequest)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error adding to wishlist: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, wishlist, http.StatusCreated)
}

// HandleGetWishlist lists a user's wishlist
func HandleGetWishlist(w http.ResponseWriter, req *http.Request) {
	userID := mux.Vars(req)["user_id"]
	if userID == "" {
		log.ErrorR(req, fmt.Errorf("user id not supplied"))
		utils.WriteMessage(w, req, "user id not supplied", http.StatusBadRequest)
		return
	}

	wishlists, responseType, err := userService.GetWishlist(userID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error getting wishlist: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, wishlists, http.StatusOK)
}

// HandleRemoveFromWishlist deletes a wishlist entry
func HandleRemoveFromWishlist(w http.ResponseWriter, req *http.Request) {
	wishlistID := mux.Vars(req)["wishlist_id"]
	if wishlistID == "" {
		log.ErrorR(req, fmt.Errorf("wishlist id not supplied"))
		utils.WriteMessage(w, req, "wishlist id not supplied", http.StatusBadRequest)
		return
	}

	responseType, err := userService.RemoveFromWishlist(wishlistID)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error removing from wishlist: [%w]", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
