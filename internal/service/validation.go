package service

import (
	"fmt"
	"strings"

	"contact_management/internal/models"
)

// maxFieldLen bounds every free-form string field.
const maxFieldLen = 100

// maxPasswordLen matches the bcrypt input limit.
const maxPasswordLen = 72

const (
	defaultPage = 1
	defaultSize = 10
)

// fieldErrors accumulates per-field messages for one request.
type fieldErrors struct {
	msgs []string
}

func (f *fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		f.msgs = append(f.msgs, field+" is required")
		return
	}
	f.maxLen(field, value)
}

func (f *fieldErrors) maxLen(field, value string) {
	if len(value) > maxFieldLen {
		f.msgs = append(f.msgs, fmt.Sprintf("%s must be at most %d characters", field, maxFieldLen))
	}
}

func (f *fieldErrors) password(field, value string) {
	if strings.TrimSpace(value) == "" {
		f.msgs = append(f.msgs, field+" is required")
		return
	}
	f.passwordLen(field, value)
}

func (f *fieldErrors) passwordLen(field, value string) {
	if len(value) > maxPasswordLen {
		f.msgs = append(f.msgs, fmt.Sprintf("%s must be at most %d characters", field, maxPasswordLen))
	}
}

func (f *fieldErrors) positive(field string, value int) {
	if value <= 0 {
		f.msgs = append(f.msgs, field+" must be a positive number")
	}
}

func (f *fieldErrors) err() error {
	if len(f.msgs) == 0 {
		return nil
	}
	return &ValidationError{Fields: f.msgs}
}

func validateRegister(r models.RegisterUserRequest) (models.RegisterUserRequest, error) {
	var f fieldErrors
	f.required("username", r.Username)
	f.password("password", r.Password)
	f.required("name", r.Name)
	return r, f.err()
}

func validateLogin(r models.LoginUserRequest) (models.LoginUserRequest, error) {
	var f fieldErrors
	f.required("username", r.Username)
	f.password("password", r.Password)
	return r, f.err()
}

// validateUpdateUser requires at least one updatable field.
func validateUpdateUser(r models.UpdateUserRequest) (models.UpdateUserRequest, error) {
	var f fieldErrors
	if r.Name == "" && r.Password == "" {
		f.msgs = append(f.msgs, "at least one of name or password is required")
	}
	if r.Name != "" {
		f.maxLen("name", r.Name)
	}
	if r.Password != "" {
		f.passwordLen("password", r.Password)
	}
	return r, f.err()
}

func validateCreateContact(r models.CreateContactRequest) (models.CreateContactRequest, error) {
	var f fieldErrors
	f.required("first_name", r.FirstName)
	f.maxLen("last_name", r.LastName)
	f.maxLen("email", r.Email)
	f.maxLen("phone", r.Phone)
	return r, f.err()
}

func validateUpdateContact(r models.UpdateContactRequest) (models.UpdateContactRequest, error) {
	var f fieldErrors
	f.positive("id", r.ID)
	f.required("first_name", r.FirstName)
	f.maxLen("last_name", r.LastName)
	f.maxLen("email", r.Email)
	f.maxLen("phone", r.Phone)
	return r, f.err()
}

// validateSearchContacts applies the 1/10 paging defaults; zero means
// unset and takes the default, negative values are rejected.
func validateSearchContacts(r models.SearchContactRequest) (models.SearchContactRequest, error) {
	var f fieldErrors
	if r.Page == 0 {
		r.Page = defaultPage
	}
	if r.Size == 0 {
		r.Size = defaultSize
	}
	f.positive("page", r.Page)
	f.positive("size", r.Size)
	f.maxLen("name", r.Name)
	f.maxLen("email", r.Email)
	f.maxLen("phone", r.Phone)
	return r, f.err()
}

func validateCreateAddress(r models.CreateAddressRequest) (models.CreateAddressRequest, error) {
	var f fieldErrors
	f.positive("contact_id", r.ContactID)
	f.required("country", r.Country)
	f.required("postal_code", r.PostalCode)
	f.maxLen("street", r.Street)
	f.maxLen("city", r.City)
	f.maxLen("province", r.Province)
	return r, f.err()
}

func validateUpdateAddress(r models.UpdateAddressRequest) (models.UpdateAddressRequest, error) {
	var f fieldErrors
	f.positive("id", r.ID)
	f.positive("contact_id", r.ContactID)
	f.required("country", r.Country)
	f.required("postal_code", r.PostalCode)
	f.maxLen("street", r.Street)
	f.maxLen("city", r.City)
	f.maxLen("province", r.Province)
	return r, f.err()
}
