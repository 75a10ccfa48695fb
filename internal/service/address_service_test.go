package service

import (
	"context"
	"testing"

	"contact_management/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// contactsOwning builds a contact service whose guard accepts exactly the
// given contact id for alice.
func contactsOwning(contactID int) *ContactService {
	return NewContactService(&mockContactRepo{
		GetByIDFn: func(username string, id int) (*models.Contact, error) {
			if username == "alice" && id == contactID {
				return &models.Contact{ID: id, Username: username, FirstName: "John"}, nil
			}
			return nil, nil
		},
	}, testLogger())
}

func validAddress() models.CreateAddressRequest {
	return models.CreateAddressRequest{
		ContactID:  7,
		City:       "Jakarta",
		Country:    "ID",
		PostalCode: "12345",
	}
}

func TestAddressService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &mockAddressRepo{
			CreateFn: func(models.Address) (int, error) { return 3, nil },
		}
		svc := NewAddressService(repo, contactsOwning(7), testLogger())

		resp, err := svc.Create(context.Background(), alice, validAddress())
		require.NoError(t, err)
		assert.Equal(t, 3, resp.ID)
		assert.Equal(t, "ID", resp.Country)

		require.Len(t, repo.created, 1)
		assert.Equal(t, 7, repo.created[0].ContactID)
	})

	t.Run("foreign contact fails before any write", func(t *testing.T) {
		repo := &mockAddressRepo{}
		svc := NewAddressService(repo, contactsOwning(99), testLogger())

		_, err := svc.Create(context.Background(), alice, validAddress())
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Contact Not Found", notFound.Error())
		assert.Empty(t, repo.created)
	})

	t.Run("empty postal_code fails before the guard runs", func(t *testing.T) {
		repo := &mockAddressRepo{}
		request := validAddress()
		request.PostalCode = ""
		svc := NewAddressService(repo, contactsOwning(7), testLogger())

		_, err := svc.Create(context.Background(), alice, request)
		var validation *ValidationError
		require.ErrorAs(t, err, &validation)
		assert.NotEmpty(t, validation.Fields)
		assert.Empty(t, repo.created)
	})
}

func TestAddressService_Get(t *testing.T) {
	t.Run("missing address under an owned contact", func(t *testing.T) {
		repo := &mockAddressRepo{
			GetByIDFn: func(int, int) (*models.Address, error) { return nil, nil },
		}
		svc := NewAddressService(repo, contactsOwning(7), testLogger())

		_, err := svc.Get(context.Background(), alice, 7, 3)
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Address Not Found", notFound.Error())
	})

	t.Run("found", func(t *testing.T) {
		repo := &mockAddressRepo{
			GetByIDFn: func(contactID, addressID int) (*models.Address, error) {
				return &models.Address{ID: addressID, ContactID: contactID, Country: "ID", PostalCode: "12345"}, nil
			},
		}
		svc := NewAddressService(repo, contactsOwning(7), testLogger())

		resp, err := svc.Get(context.Background(), alice, 7, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, resp.ID)
	})
}

func TestAddressService_Update(t *testing.T) {
	repo := &mockAddressRepo{
		GetByIDFn: func(contactID, addressID int) (*models.Address, error) {
			return &models.Address{ID: addressID, ContactID: contactID, Country: "ID", PostalCode: "12345"}, nil
		},
	}
	svc := NewAddressService(repo, contactsOwning(7), testLogger())

	resp, err := svc.Update(context.Background(), alice, models.UpdateAddressRequest{
		ID: 3, ContactID: 7, Country: "ID", PostalCode: "54321",
	})
	require.NoError(t, err)
	assert.Equal(t, "54321", resp.PostalCode)

	// written back by the (id, contact_id) composite
	require.Len(t, repo.updated, 1)
	assert.Equal(t, 3, repo.updated[0].ID)
	assert.Equal(t, 7, repo.updated[0].ContactID)
}

func TestAddressService_Remove(t *testing.T) {
	repo := &mockAddressRepo{
		GetByIDFn: func(contactID, addressID int) (*models.Address, error) {
			return &models.Address{ID: addressID, ContactID: contactID, Country: "ID", PostalCode: "12345"}, nil
		},
	}
	svc := NewAddressService(repo, contactsOwning(7), testLogger())

	resp, err := svc.Remove(context.Background(), alice, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.ID)
	assert.Equal(t, []int{3}, repo.deleted)
}

func TestAddressService_List(t *testing.T) {
	t.Run("guard rejects foreign contact", func(t *testing.T) {
		svc := NewAddressService(&mockAddressRepo{}, contactsOwning(99), testLogger())

		_, err := svc.List(context.Background(), alice, 7)
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("maps all addresses", func(t *testing.T) {
		repo := &mockAddressRepo{
			ListByContactFn: func(contactID int) ([]models.Address, error) {
				return []models.Address{
					{ID: 3, ContactID: contactID, Country: "ID", PostalCode: "12345"},
					{ID: 4, ContactID: contactID, Country: "ID", PostalCode: "54321"},
				}, nil
			},
		}
		svc := NewAddressService(repo, contactsOwning(7), testLogger())

		responses, err := svc.List(context.Background(), alice, 7)
		require.NoError(t, err)
		require.Len(t, responses, 2)
		assert.Equal(t, 4, responses[1].ID)
	})
}
