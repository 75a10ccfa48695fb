package handlers

import (
	"contact_management/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Create an address under a contact
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        contactId  path  int  true  "Contact ID"
// @Param        body  body  models.CreateAddressRequest  true  "Address payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId}/addresses [post]
// @Security     TokenAuth
func (h *Handler) createAddress(c *gin.Context) {
	contactID, ok := paramInt(c, "contactId")
	if !ok {
		return
	}

	var request models.CreateAddressRequest
	if ok := h.bindJSONOrBadRequest(c, &request); !ok {
		return
	}
	request.ContactID = contactID

	result, err := h.services.Addresses.Create(c.Request.Context(), currentUser(c), request)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, result)
}

// @Summary      Get an address
// @Tags         addresses
// @Produce      json
// @Param        contactId  path  int  true  "Contact ID"
// @Param        addressId  path  int  true  "Address ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId}/addresses/{addressId} [get]
// @Security     TokenAuth
func (h *Handler) getAddress(c *gin.Context) {
	contactID, addressID, ok := addressParams(c)
	if !ok {
		return
	}

	result, err := h.services.Addresses.Get(c.Request.Context(), currentUser(c), contactID, addressID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, result)
}

// @Summary      Update an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Param        contactId  path  int  true  "Contact ID"
// @Param        addressId  path  int  true  "Address ID"
// @Param        body  body  models.UpdateAddressRequest  true  "Address payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId}/addresses/{addressId} [put]
// @Security     TokenAuth
func (h *Handler) updateAddress(c *gin.Context) {
	contactID, addressID, ok := addressParams(c)
	if !ok {
		return
	}

	var request models.UpdateAddressRequest
	if ok := h.bindJSONOrBadRequest(c, &request); !ok {
		return
	}
	request.ID = addressID
	request.ContactID = contactID

	result, err := h.services.Addresses.Update(c.Request.Context(), currentUser(c), request)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, result)
}

// @Summary      Delete an address
// @Tags         addresses
// @Produce      json
// @Param        contactId  path  int  true  "Contact ID"
// @Param        addressId  path  int  true  "Address ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId}/addresses/{addressId} [delete]
// @Security     TokenAuth
func (h *Handler) deleteAddress(c *gin.Context) {
	contactID, addressID, ok := addressParams(c)
	if !ok {
		return
	}

	result, err := h.services.Addresses.Remove(c.Request.Context(), currentUser(c), contactID, addressID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, result)
}

// @Summary      List addresses under a contact
// @Tags         addresses
// @Produce      json
// @Param        contactId  path  int  true  "Contact ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId}/addresses [get]
// @Security     TokenAuth
func (h *Handler) listAddresses(c *gin.Context) {
	contactID, ok := paramInt(c, "contactId")
	if !ok {
		return
	}

	result, err := h.services.Addresses.List(c.Request.Context(), currentUser(c), contactID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, result)
}

func addressParams(c *gin.Context) (contactID, addressID int, ok bool) {
	contactID, ok = paramInt(c, "contactId")
	if !ok {
		return 0, 0, false
	}
	addressID, ok = paramInt(c, "addressId")
	if !ok {
		return 0, 0, false
	}
	return contactID, addressID, true
}
