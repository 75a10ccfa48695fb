package service

import (
	"context"

	"contact_management/internal/logger"
	"contact_management/internal/models"
	"contact_management/internal/repository"
)

// AddressService handles addresses nested under contacts. Scoping is
// two-hop: the contact guard proves user ownership, then the address is
// resolved by the (contact_id, address_id) composite.
type AddressService struct {
	addresses repository.Addresses
	contacts  Contacts
	log       *logger.Logger
}

func NewAddressService(addresses repository.Addresses, contacts Contacts, log *logger.Logger) *AddressService {
	return &AddressService{addresses: addresses, contacts: contacts, log: log}
}

var _ Addresses = (*AddressService)(nil)

// Create stores a new address after proving the target contact belongs
// to the user; nothing is written when the guard fails.
func (s *AddressService) Create(ctx context.Context, user models.User, request models.CreateAddressRequest) (models.AddressResponse, error) {
	request, err := validateCreateAddress(request)
	if err != nil {
		return models.AddressResponse{}, err
	}

	if _, err := s.contacts.MustExist(ctx, user, request.ContactID); err != nil {
		return models.AddressResponse{}, err
	}

	address := models.Address{
		ContactID:  request.ContactID,
		Street:     request.Street,
		City:       request.City,
		Province:   request.Province,
		Country:    request.Country,
		PostalCode: request.PostalCode,
	}
	id, err := s.addresses.Create(ctx, address)
	if err != nil {
		return models.AddressResponse{}, err
	}
	address.ID = id

	s.log.Infow("address_created", "contact_id", address.ContactID, "address_id", id)
	return toAddressResponse(address), nil
}

// mustExist fails with NotFound unless the address exists under the
// given contact.
func (s *AddressService) mustExist(ctx context.Context, contactID, addressID int) (*models.Address, error) {
	address, err := s.addresses.GetByID(ctx, contactID, addressID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, &NotFoundError{Resource: "Address"}
	}
	return address, nil
}

func (s *AddressService) Get(ctx context.Context, user models.User, contactID, addressID int) (models.AddressResponse, error) {
	if _, err := s.contacts.MustExist(ctx, user, contactID); err != nil {
		return models.AddressResponse{}, err
	}
	address, err := s.mustExist(ctx, contactID, addressID)
	if err != nil {
		return models.AddressResponse{}, err
	}
	return toAddressResponse(*address), nil
}

func (s *AddressService) Update(ctx context.Context, user models.User, request models.UpdateAddressRequest) (models.AddressResponse, error) {
	request, err := validateUpdateAddress(request)
	if err != nil {
		return models.AddressResponse{}, err
	}

	if _, err := s.contacts.MustExist(ctx, user, request.ContactID); err != nil {
		return models.AddressResponse{}, err
	}
	if _, err := s.mustExist(ctx, request.ContactID, request.ID); err != nil {
		return models.AddressResponse{}, err
	}

	address := models.Address{
		ID:         request.ID,
		ContactID:  request.ContactID,
		Street:     request.Street,
		City:       request.City,
		Province:   request.Province,
		Country:    request.Country,
		PostalCode: request.PostalCode,
	}
	if err := s.addresses.Update(ctx, address); err != nil {
		return models.AddressResponse{}, err
	}

	s.log.Infow("address_updated", "contact_id", address.ContactID, "address_id", address.ID)
	return toAddressResponse(address), nil
}

// Remove deletes the address and returns the DTO of the deleted record.
func (s *AddressService) Remove(ctx context.Context, user models.User, contactID, addressID int) (models.AddressResponse, error) {
	if _, err := s.contacts.MustExist(ctx, user, contactID); err != nil {
		return models.AddressResponse{}, err
	}
	address, err := s.mustExist(ctx, contactID, addressID)
	if err != nil {
		return models.AddressResponse{}, err
	}

	if err := s.addresses.Delete(ctx, contactID, addressID); err != nil {
		return models.AddressResponse{}, err
	}

	s.log.Infow("address_removed", "contact_id", contactID, "address_id", addressID)
	return toAddressResponse(*address), nil
}

// List returns every address under the contact, unpaginated.
func (s *AddressService) List(ctx context.Context, user models.User, contactID int) ([]models.AddressResponse, error) {
	if _, err := s.contacts.MustExist(ctx, user, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.addresses.ListByContact(ctx, contactID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		responses = append(responses, toAddressResponse(address))
	}
	return responses, nil
}

func toAddressResponse(address models.Address) models.AddressResponse {
	return models.AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}
