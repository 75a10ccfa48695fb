package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contact_management/internal/models"
)

type AddressRepository struct {
	db *sql.DB
}

func NewAddressRepository(db *sql.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

// Ensure implementation of Addresses interface at compile time.
var _ Addresses = (*AddressRepository)(nil)

const (
	insertAddressSQL = `INSERT INTO addresses (contact_id, street, city, province, country, postal_code) VALUES (?, ?, ?, ?, ?, ?)`
	selectAddressSQL = `SELECT id, contact_id, street, city, province, country, postal_code FROM addresses WHERE id = ? AND contact_id = ?`
	updateAddressSQL = `UPDATE addresses SET street = ?, city = ?, province = ?, country = ?, postal_code = ? WHERE id = ? AND contact_id = ?`
	deleteAddressSQL = `DELETE FROM addresses WHERE id = ? AND contact_id = ?`
	listAddressesSQL = `SELECT id, contact_id, street, city, province, country, postal_code FROM addresses WHERE contact_id = ?`
)

// Create inserts a new address and returns its ID.
func (r *AddressRepository) Create(ctx context.Context, address models.Address) (int, error) {
	res, err := r.db.ExecContext(ctx, insertAddressSQL,
		address.ContactID,
		nullable(address.Street), nullable(address.City), nullable(address.Province),
		address.Country, address.PostalCode)
	if err != nil {
		return 0, fmt.Errorf("insert address for contact %d: %w", address.ContactID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for address: %w", err)
	}
	return int(lastID), nil
}

// GetByID fetches an address by the (id, contact_id) composite.
// Returns (nil, nil) if not found under that contact.
func (r *AddressRepository) GetByID(ctx context.Context, contactID, addressID int) (*models.Address, error) {
	var a models.Address
	var street, city, province sql.NullString
	err := r.db.QueryRowContext(ctx, selectAddressSQL, addressID, contactID).
		Scan(&a.ID, &a.ContactID, &street, &city, &province, &a.Country, &a.PostalCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select address %d: %w", addressID, err)
	}
	a.Street, a.City, a.Province = street.String, city.String, province.String
	return &a, nil
}

// Update writes the address keyed by the (id, contact_id) composite so an
// id belonging to another contact cannot collide.
func (r *AddressRepository) Update(ctx context.Context, address models.Address) error {
	_, err := r.db.ExecContext(ctx, updateAddressSQL,
		nullable(address.Street), nullable(address.City), nullable(address.Province),
		address.Country, address.PostalCode,
		address.ID, address.ContactID)
	if err != nil {
		return fmt.Errorf("update address %d: %w", address.ID, err)
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, contactID, addressID int) error {
	_, err := r.db.ExecContext(ctx, deleteAddressSQL, addressID, contactID)
	if err != nil {
		return fmt.Errorf("delete address %d: %w", addressID, err)
	}
	return nil
}

// ListByContact returns every address under the contact, unpaginated.
func (r *AddressRepository) ListByContact(ctx context.Context, contactID int) ([]models.Address, error) {
	rows, err := r.db.QueryContext(ctx, listAddressesSQL, contactID)
	if err != nil {
		return nil, fmt.Errorf("list addresses for contact %d: %w", contactID, err)
	}
	defer func() { _ = rows.Close() }()

	var addresses []models.Address
	for rows.Next() {
		var a models.Address
		var street, city, province sql.NullString
		if err := rows.Scan(&a.ID, &a.ContactID, &street, &city, &province, &a.Country, &a.PostalCode); err != nil {
			return nil, fmt.Errorf("scan address row: %w", err)
		}
		a.Street, a.City, a.Province = street.String, city.String, province.String
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address rows: %w", err)
	}
	return addresses, nil
}
