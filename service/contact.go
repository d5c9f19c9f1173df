package service

import (
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/kanchiweaves/storefront.api/dao"
	"github.com/kanchiweaves/storefront.api/models"
)

// ContactService stores contact form submissions
type ContactService struct {
	DAO dao.DAO
}

// CreateSubmission stores a contact form message
func (service *ContactService) CreateSubmission(req models.IncomingContactRequest) (*models.ContactSubmission, ResponseType, error) {
	if err := validate.Struct(req); err != nil {
		return nil, InvalidData, fmt.Errorf("invalid contact request: [%w]", err)
	}

	submission := &models.ContactSubmission{
		Name:     req.Name,
		Mobile:   req.Mobile,
		Email:    req.Email,
		Subject:  req.Subject,
		Category: req.Category,
		Message:  req.Message,
	}
	if err := service.DAO.CreateContactSubmission(submission); err != nil {
		return nil, Error, fmt.Errorf("error storing contact submission: [%w]", err)
	}

	log.Info("contact submission received", log.Data{"submission_id": submission.ID, "category": submission.Category})

	return submission, Success, nil
}

// GetAllSubmissions lists every contact form message, newest first
func (service *ContactService) GetAllSubmissions() ([]models.ContactSubmission, ResponseType, error) {
	submissions, err := service.DAO.GetAllContactSubmissions()
	if err != nil {
		return nil, Error, fmt.Errorf("error getting contact submissions: [%w]", err)
	}
	return submissions, Success, nil
}
