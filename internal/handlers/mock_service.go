package handlers

import (
	"context"

	"contact_management/internal/logger"
	"contact_management/internal/models"
	"contact_management/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service mocks (test support) ----

type mockUsers struct {
	registerResp models.UserResponse
	registerErr  error
	loginResp    models.UserResponse
	loginErr     error
	resolveUser  *models.User
	resolveErr   error
	updateResp   models.UserResponse
	updateErr    error
	logoutErr    error

	lastRegister models.RegisterUserRequest
	lastLogin    models.LoginUserRequest
	lastToken    string
	lastUpdate   models.UpdateUserRequest
	logoutCalls  int
}

var _ service.Users = (*mockUsers)(nil)

func (m *mockUsers) Register(_ context.Context, request models.RegisterUserRequest) (models.UserResponse, error) {
	m.lastRegister = request
	return m.registerResp, m.registerErr
}

func (m *mockUsers) Login(_ context.Context, request models.LoginUserRequest) (models.UserResponse, error) {
	m.lastLogin = request
	return m.loginResp, m.loginErr
}

func (m *mockUsers) ResolveToken(_ context.Context, token string) (*models.User, error) {
	m.lastToken = token
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	if m.resolveUser == nil || token == "" {
		return nil, service.ErrUnauthorized
	}
	return m.resolveUser, nil
}

func (m *mockUsers) Current(user models.User) models.UserResponse {
	return models.UserResponse{Username: user.Username, Name: user.Name}
}

func (m *mockUsers) Update(_ context.Context, _ models.User, request models.UpdateUserRequest) (models.UserResponse, error) {
	m.lastUpdate = request
	return m.updateResp, m.updateErr
}

func (m *mockUsers) Logout(_ context.Context, _ models.User) error {
	m.logoutCalls++
	return m.logoutErr
}

type mockContacts struct {
	createResp models.ContactResponse
	createErr  error
	getResp    models.ContactResponse
	getErr     error
	updateResp models.ContactResponse
	updateErr  error
	removeResp models.ContactResponse
	removeErr  error
	searchResp []models.ContactResponse
	searchPage models.Paging
	searchErr  error

	lastCreate models.CreateContactRequest
	lastUpdate models.UpdateContactRequest
	lastSearch models.SearchContactRequest
	lastGetID  int
}

var _ service.Contacts = (*mockContacts)(nil)

func (m *mockContacts) Create(_ context.Context, _ models.User, request models.CreateContactRequest) (models.ContactResponse, error) {
	m.lastCreate = request
	return m.createResp, m.createErr
}

func (m *mockContacts) Get(_ context.Context, _ models.User, contactID int) (models.ContactResponse, error) {
	m.lastGetID = contactID
	return m.getResp, m.getErr
}

func (m *mockContacts) Update(_ context.Context, _ models.User, request models.UpdateContactRequest) (models.ContactResponse, error) {
	m.lastUpdate = request
	return m.updateResp, m.updateErr
}

func (m *mockContacts) Remove(_ context.Context, _ models.User, contactID int) (models.ContactResponse, error) {
	m.lastGetID = contactID
	return m.removeResp, m.removeErr
}

func (m *mockContacts) Search(_ context.Context, _ models.User, request models.SearchContactRequest) ([]models.ContactResponse, models.Paging, error) {
	m.lastSearch = request
	return m.searchResp, m.searchPage, m.searchErr
}

func (m *mockContacts) MustExist(_ context.Context, _ models.User, contactID int) (*models.Contact, error) {
	return &models.Contact{ID: contactID}, nil
}

type mockAddresses struct {
	createResp models.AddressResponse
	createErr  error
	getResp    models.AddressResponse
	getErr     error
	updateResp models.AddressResponse
	updateErr  error
	removeResp models.AddressResponse
	removeErr  error
	listResp   []models.AddressResponse
	listErr    error

	lastCreate    models.CreateAddressRequest
	lastUpdate    models.UpdateAddressRequest
	lastContactID int
	lastAddressID int
}

var _ service.Addresses = (*mockAddresses)(nil)

func (m *mockAddresses) Create(_ context.Context, _ models.User, request models.CreateAddressRequest) (models.AddressResponse, error) {
	m.lastCreate = request
	return m.createResp, m.createErr
}

func (m *mockAddresses) Get(_ context.Context, _ models.User, contactID, addressID int) (models.AddressResponse, error) {
	m.lastContactID, m.lastAddressID = contactID, addressID
	return m.getResp, m.getErr
}

func (m *mockAddresses) Update(_ context.Context, _ models.User, request models.UpdateAddressRequest) (models.AddressResponse, error) {
	m.lastUpdate = request
	return m.updateResp, m.updateErr
}

func (m *mockAddresses) Remove(_ context.Context, _ models.User, contactID, addressID int) (models.AddressResponse, error) {
	m.lastContactID, m.lastAddressID = contactID, addressID
	return m.removeResp, m.removeErr
}

func (m *mockAddresses) List(_ context.Context, _ models.User, contactID int) ([]models.AddressResponse, error) {
	m.lastContactID = contactID
	return m.listResp, m.listErr
}

// newTestRouter builds a router over the given service aggregate.
func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, logger.New(logger.ErrorLevel))
	return h.InitRoutes()
}
