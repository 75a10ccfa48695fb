package service

import (
	"context"

	"contact_management/internal/logger"
	"contact_management/internal/models"
	"contact_management/internal/repository"
)

// ContactService handles owner-scoped contact CRUD and search.
type ContactService struct {
	contacts repository.Contacts
	log      *logger.Logger
}

func NewContactService(contacts repository.Contacts, log *logger.Logger) *ContactService {
	return &ContactService{contacts: contacts, log: log}
}

var _ Contacts = (*ContactService)(nil)

func (s *ContactService) Create(ctx context.Context, user models.User, request models.CreateContactRequest) (models.ContactResponse, error) {
	request, err := validateCreateContact(request)
	if err != nil {
		return models.ContactResponse{}, err
	}

	contact := models.Contact{
		Username:  user.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	}
	id, err := s.contacts.Create(ctx, contact)
	if err != nil {
		return models.ContactResponse{}, err
	}
	contact.ID = id

	s.log.Infow("contact_created", "username", user.Username, "contact_id", id)
	return toContactResponse(contact), nil
}

// MustExist is the ownership guard: it fails with NotFound unless the
// contact exists and belongs to the given user. Every mutating operation
// and the address service run it first.
func (s *ContactService) MustExist(ctx context.Context, user models.User, contactID int) (*models.Contact, error) {
	contact, err := s.contacts.GetByID(ctx, user.Username, contactID)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, &NotFoundError{Resource: "Contact"}
	}
	return contact, nil
}

func (s *ContactService) Get(ctx context.Context, user models.User, contactID int) (models.ContactResponse, error) {
	contact, err := s.MustExist(ctx, user, contactID)
	if err != nil {
		return models.ContactResponse{}, err
	}
	return toContactResponse(*contact), nil
}

func (s *ContactService) Update(ctx context.Context, user models.User, request models.UpdateContactRequest) (models.ContactResponse, error) {
	request, err := validateUpdateContact(request)
	if err != nil {
		return models.ContactResponse{}, err
	}

	if _, err := s.MustExist(ctx, user, request.ID); err != nil {
		return models.ContactResponse{}, err
	}

	contact := models.Contact{
		ID:        request.ID,
		Username:  user.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
	}
	if err := s.contacts.Update(ctx, contact); err != nil {
		return models.ContactResponse{}, err
	}

	s.log.Infow("contact_updated", "username", user.Username, "contact_id", contact.ID)
	return toContactResponse(contact), nil
}

// Remove deletes the contact and returns the DTO of the deleted record.
func (s *ContactService) Remove(ctx context.Context, user models.User, contactID int) (models.ContactResponse, error) {
	contact, err := s.MustExist(ctx, user, contactID)
	if err != nil {
		return models.ContactResponse{}, err
	}

	if err := s.contacts.Delete(ctx, user.Username, contactID); err != nil {
		return models.ContactResponse{}, err
	}

	s.log.Infow("contact_removed", "username", user.Username, "contact_id", contactID)
	return toContactResponse(*contact), nil
}

// Search returns one page of matches plus paging metadata. The page and
// the total are two independent round trips; under concurrent writes
// they may drift by one operation, which is accepted.
func (s *ContactService) Search(ctx context.Context, user models.User, request models.SearchContactRequest) ([]models.ContactResponse, models.Paging, error) {
	request, err := validateSearchContacts(request)
	if err != nil {
		return nil, models.Paging{}, err
	}

	filter := repository.ContactFilter{
		Name:  request.Name,
		Email: request.Email,
		Phone: request.Phone,
		Page:  request.Page,
		Size:  request.Size,
	}

	contacts, err := s.contacts.Search(ctx, user.Username, filter)
	if err != nil {
		return nil, models.Paging{}, err
	}
	total, err := s.contacts.Count(ctx, user.Username, filter)
	if err != nil {
		return nil, models.Paging{}, err
	}

	responses := make([]models.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		responses = append(responses, toContactResponse(contact))
	}
	paging := models.Paging{
		CurrentPage: request.Page,
		Size:        request.Size,
		TotalPage:   (total + request.Size - 1) / request.Size,
	}
	return responses, paging, nil
}

func toContactResponse(contact models.Contact) models.ContactResponse {
	return models.ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
