package service

import (
	"context"

	"contact_management/internal/logger"
	"contact_management/internal/models"
	"contact_management/internal/repository"
)

// Users covers account lifecycle and session handling. ResolveToken is
// the auth-resolution step run by the middleware for every protected
// endpoint; the resolved user is then passed explicitly to every call.
type Users interface {
	Register(ctx context.Context, request models.RegisterUserRequest) (models.UserResponse, error)
	Login(ctx context.Context, request models.LoginUserRequest) (models.UserResponse, error)
	ResolveToken(ctx context.Context, token string) (*models.User, error)
	Current(user models.User) models.UserResponse
	Update(ctx context.Context, user models.User, request models.UpdateUserRequest) (models.UserResponse, error)
	Logout(ctx context.Context, user models.User) error
}

// Contacts is owner-scoped CRUD plus paginated search. MustExist is the
// ownership guard; the address service uses it too.
type Contacts interface {
	Create(ctx context.Context, user models.User, request models.CreateContactRequest) (models.ContactResponse, error)
	Get(ctx context.Context, user models.User, contactID int) (models.ContactResponse, error)
	Update(ctx context.Context, user models.User, request models.UpdateContactRequest) (models.ContactResponse, error)
	Remove(ctx context.Context, user models.User, contactID int) (models.ContactResponse, error)
	Search(ctx context.Context, user models.User, request models.SearchContactRequest) ([]models.ContactResponse, models.Paging, error)
	MustExist(ctx context.Context, user models.User, contactID int) (*models.Contact, error)
}

// Addresses is contact-scoped CRUD; every operation first checks that
// the contact belongs to the requesting user.
type Addresses interface {
	Create(ctx context.Context, user models.User, request models.CreateAddressRequest) (models.AddressResponse, error)
	Get(ctx context.Context, user models.User, contactID, addressID int) (models.AddressResponse, error)
	Update(ctx context.Context, user models.User, request models.UpdateAddressRequest) (models.AddressResponse, error)
	Remove(ctx context.Context, user models.User, contactID, addressID int) (models.AddressResponse, error)
	List(ctx context.Context, user models.User, contactID int) ([]models.AddressResponse, error)
}

// Service aggregates all sub-services.
type Service struct {
	Users
	Contacts
	Addresses
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, log *logger.Logger) *Service {
	contacts := NewContactService(repos.Contacts, log)
	return &Service{
		Users:     NewUserService(repos.Users, log),
		Contacts:  contacts,
		Addresses: NewAddressService(repos.Addresses, contacts, log),
	}
}
