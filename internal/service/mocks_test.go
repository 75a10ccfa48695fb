package service

import (
	"context"

	"contact_management/internal/logger"
	"contact_management/internal/models"
	"contact_management/internal/repository"
)

func testLogger() *logger.Logger {
	return logger.New(logger.ErrorLevel)
}

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn        func(user models.User) error
	GetByUsernameFn func(username string) (*models.User, error)
	GetByTokenFn    func(token string) (*models.User, error)
	UpdateProfileFn func(user models.User) error
	SetTokenFn      func(username string, token *string) error

	created  []models.User
	profiles []models.User
	tokens   []*string
}

var _ repository.Users = (*mockUserRepo)(nil)

func (m *mockUserRepo) Create(_ context.Context, user models.User) error {
	m.created = append(m.created, user)
	if m.CreateFn != nil {
		return m.CreateFn(user)
	}
	return nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) GetByToken(_ context.Context, token string) (*models.User, error) {
	return m.GetByTokenFn(token)
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, user models.User) error {
	m.profiles = append(m.profiles, user)
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(user)
	}
	return nil
}

func (m *mockUserRepo) SetToken(_ context.Context, username string, token *string) error {
	m.tokens = append(m.tokens, token)
	if m.SetTokenFn != nil {
		return m.SetTokenFn(username, token)
	}
	return nil
}

// mockContactRepo is a lightweight in-test mock for repository.Contacts.
type mockContactRepo struct {
	CreateFn  func(contact models.Contact) (int, error)
	GetByIDFn func(username string, id int) (*models.Contact, error)
	UpdateFn  func(contact models.Contact) error
	DeleteFn  func(username string, id int) error
	SearchFn  func(username string, filter repository.ContactFilter) ([]models.Contact, error)
	CountFn   func(username string, filter repository.ContactFilter) (int, error)

	created []models.Contact
	deleted []int
}

var _ repository.Contacts = (*mockContactRepo)(nil)

func (m *mockContactRepo) Create(_ context.Context, contact models.Contact) (int, error) {
	m.created = append(m.created, contact)
	if m.CreateFn != nil {
		return m.CreateFn(contact)
	}
	return 1, nil
}

func (m *mockContactRepo) GetByID(_ context.Context, username string, id int) (*models.Contact, error) {
	return m.GetByIDFn(username, id)
}

func (m *mockContactRepo) Update(_ context.Context, contact models.Contact) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(contact)
	}
	return nil
}

func (m *mockContactRepo) Delete(_ context.Context, username string, id int) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFn != nil {
		return m.DeleteFn(username, id)
	}
	return nil
}

func (m *mockContactRepo) Search(_ context.Context, username string, filter repository.ContactFilter) ([]models.Contact, error) {
	return m.SearchFn(username, filter)
}

func (m *mockContactRepo) Count(_ context.Context, username string, filter repository.ContactFilter) (int, error) {
	return m.CountFn(username, filter)
}

// mockAddressRepo is a lightweight in-test mock for repository.Addresses.
type mockAddressRepo struct {
	CreateFn        func(address models.Address) (int, error)
	GetByIDFn       func(contactID, addressID int) (*models.Address, error)
	UpdateFn        func(address models.Address) error
	DeleteFn        func(contactID, addressID int) error
	ListByContactFn func(contactID int) ([]models.Address, error)

	created []models.Address
	deleted []int
	updated []models.Address
}

var _ repository.Addresses = (*mockAddressRepo)(nil)

func (m *mockAddressRepo) Create(_ context.Context, address models.Address) (int, error) {
	m.created = append(m.created, address)
	if m.CreateFn != nil {
		return m.CreateFn(address)
	}
	return 1, nil
}

func (m *mockAddressRepo) GetByID(_ context.Context, contactID, addressID int) (*models.Address, error) {
	return m.GetByIDFn(contactID, addressID)
}

func (m *mockAddressRepo) Update(_ context.Context, address models.Address) error {
	m.updated = append(m.updated, address)
	if m.UpdateFn != nil {
		return m.UpdateFn(address)
	}
	return nil
}

func (m *mockAddressRepo) Delete(_ context.Context, contactID, addressID int) error {
	m.deleted = append(m.deleted, addressID)
	if m.DeleteFn != nil {
		return m.DeleteFn(contactID, addressID)
	}
	return nil
}

func (m *mockAddressRepo) ListByContact(_ context.Context, contactID int) ([]models.Address, error) {
	return m.ListByContactFn(contactID)
}
