package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/kanchiweaves/storefront.api/models"
	"github.com/kanchiweaves/storefront.api/utils"
)

// HandleCreateContactSubmission stores a contact form submission
func HandleCreateContactSubmission(w http.ResponseWriter, req *http.Request) {
	var incomingContactRequest models.IncomingContactRequest
	if err := utils.DecodeJSONBody(req, &incomingContactRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteMessage(w, req, "request body invalid", http.StatusBadRequest)
		return
	}

	submission, responseType, err := contactService.CreateSubmission(incomingContactRequest)
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error creating contact submission: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, submission, http.StatusCreated)

	log.InfoR(req, "Successful POST request for contact submission", log.Data{"submission_id": submission.ID, "category": submission.Category})
}

// HandleGetAllContactSubmissions lists contact submissions, newest first
func HandleGetAllContactSubmissions(w http.ResponseWriter, req *http.Request) {
	submissions, responseType, err := contactService.GetAllSubmissions()
	if err != nil {
		writeServiceError(w, req, responseType, fmt.Errorf("error getting contact submissions: [%w]", err))
		return
	}

	utils.WriteJSONWithStatus(w, req, submissions, http.StatusOK)
}
