package repository

import (
	"context"
	"database/sql"

	"contact_management/internal/models"
)

type Users interface {
	Create(ctx context.Context, user models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByToken(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, user models.User) error
	SetToken(ctx context.Context, username string, token *string) error
}

type Contacts interface {
	Create(ctx context.Context, contact models.Contact) (int, error)
	GetByID(ctx context.Context, username string, id int) (*models.Contact, error)
	Update(ctx context.Context, contact models.Contact) error
	Delete(ctx context.Context, username string, id int) error
	Search(ctx context.Context, username string, filter ContactFilter) ([]models.Contact, error)
	Count(ctx context.Context, username string, filter ContactFilter) (int, error)
}

type Addresses interface {
	Create(ctx context.Context, address models.Address) (int, error)
	GetByID(ctx context.Context, contactID, addressID int) (*models.Address, error)
	Update(ctx context.Context, address models.Address) error
	Delete(ctx context.Context, contactID, addressID int) error
	ListByContact(ctx context.Context, contactID int) ([]models.Address, error)
}

// ContactFilter is the structured search descriptor built by the service
// layer. Empty strings mean "no filter"; the repository renders the
// descriptor into SQL, so no storage syntax leaks upward.
type ContactFilter struct {
	Name  string // substring match against first_name OR last_name
	Email string
	Phone string
	Page  int
	Size  int
}

type Repository struct {
	Users     Users
	Contacts  Contacts
	Addresses Addresses
}

func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserRepository(database),
		Contacts:  NewContactRepository(database),
		Addresses: NewAddressRepository(database),
	}
}
