package models

// Address belongs to exactly one contact. Country and postal code are
// mandatory, the rest is optional.
type Address struct {
	ID         int    `json:"id"`
	ContactID  int    `json:"contact_id"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

type CreateAddressRequest struct {
	ContactID  int    `json:"-"` // injected from the route
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// UpdateAddressRequest re-derives the target by the (id, contact_id)
// composite so an id from another contact cannot be updated.
type UpdateAddressRequest struct {
	ID         int    `json:"-"`
	ContactID  int    `json:"-"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

type AddressResponse struct {
	ID         int    `json:"id"`
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}
