package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"contact_management/internal/models"

	sq "github.com/Masterminds/squirrel"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Ensure implementation of Contacts interface at compile time.
var _ Contacts = (*ContactRepository)(nil)

const (
	insertContactSQL = `INSERT INTO contacts (username, first_name, last_name, email, phone) VALUES (?, ?, ?, ?, ?)`
	selectContactSQL = `SELECT id, username, first_name, last_name, email, phone FROM contacts WHERE id = ? AND username = ?`
	updateContactSQL = `UPDATE contacts SET first_name = ?, last_name = ?, email = ?, phone = ? WHERE id = ? AND username = ?`
	deleteContactSQL = `DELETE FROM contacts WHERE id = ? AND username = ?`
)

// Create inserts a new contact and returns its ID.
func (r *ContactRepository) Create(ctx context.Context, contact models.Contact) (int, error) {
	res, err := r.db.ExecContext(ctx, insertContactSQL,
		contact.Username, contact.FirstName,
		nullable(contact.LastName), nullable(contact.Email), nullable(contact.Phone))
	if err != nil {
		return 0, fmt.Errorf("insert contact for %q: %w", contact.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for contact: %w", err)
	}
	return int(lastID), nil
}

// GetByID fetches a contact by id scoped to its owner.
// Returns (nil, nil) if not found, including when the owner differs.
func (r *ContactRepository) GetByID(ctx context.Context, username string, id int) (*models.Contact, error) {
	var c models.Contact
	var lastName, email, phone sql.NullString
	err := r.db.QueryRowContext(ctx, selectContactSQL, id, username).
		Scan(&c.ID, &c.Username, &c.FirstName, &lastName, &email, &phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select contact %d: %w", id, err)
	}
	c.LastName, c.Email, c.Phone = lastName.String, email.String, phone.String
	return &c, nil
}

func (r *ContactRepository) Update(ctx context.Context, contact models.Contact) error {
	_, err := r.db.ExecContext(ctx, updateContactSQL,
		contact.FirstName, nullable(contact.LastName), nullable(contact.Email), nullable(contact.Phone),
		contact.ID, contact.Username)
	if err != nil {
		return fmt.Errorf("update contact %d: %w", contact.ID, err)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, username string, id int) error {
	_, err := r.db.ExecContext(ctx, deleteContactSQL, id, username)
	if err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}
	return nil
}

// Search returns one page of contacts matching the filter, owner-scoped.
func (r *ContactRepository) Search(ctx context.Context, username string, filter ContactFilter) ([]models.Contact, error) {
	query, args, err := sq.
		Select("id", "username", "first_name", "last_name", "email", "phone").
		From("contacts").
		Where(filter.predicate(username)).
		OrderBy("id").
		Limit(uint64(filter.Size)).
		Offset(uint64((filter.Page - 1) * filter.Size)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		var lastName, email, phone sql.NullString
		if err := rows.Scan(&c.ID, &c.Username, &c.FirstName, &lastName, &email, &phone); err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		c.LastName, c.Email, c.Phone = lastName.String, email.String, phone.String
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact rows: %w", err)
	}
	return contacts, nil
}

// Count returns the total number of contacts matching the filter,
// ignoring pagination. Issued as its own round trip.
func (r *ContactRepository) Count(ctx context.Context, username string, filter ContactFilter) (int, error) {
	query, args, err := sq.
		Select("COUNT(*)").
		From("contacts").
		Where(filter.predicate(username)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return total, nil
}

// predicate renders the filter as an AND of terms; the name term is an OR
// over first and last name.
func (f ContactFilter) predicate(username string) sq.And {
	pred := sq.And{sq.Eq{"username": username}}
	if f.Name != "" {
		pattern := "%" + f.Name + "%"
		pred = append(pred, sq.Or{
			sq.Like{"first_name": pattern},
			sq.Like{"last_name": pattern},
		})
	}
	if f.Email != "" {
		pred = append(pred, sq.Like{"email": "%" + f.Email + "%"})
	}
	if f.Phone != "" {
		pred = append(pred, sq.Like{"phone": "%" + f.Phone + "%"})
	}
	return pred
}

// nullable maps an empty optional string to NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
