package handlers

import (
	"contact_management/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateContactRequest  true  "Contact payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/contacts [post]
// @Security     TokenAuth
func (h *Handler) createContact(c *gin.Context) {
	var request models.CreateContactRequest
	if ok := h.bindJSONOrBadRequest(c, &request); !ok {
		return
	}

	result, err := h.services.Contacts.Create(c.Request.Context(), currentUser(c), request)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, result)
}

// @Summary      Get a contact
// @Tags         contacts
// @Produce      json
// @Param        contactId  path  int  true  "Contact ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId} [get]
// @Security     TokenAuth
func (h *Handler) getContact(c *gin.Context) {
	contactID, ok := paramInt(c, "contactId")
	if !ok {
		return
	}

	result, err := h.services.Contacts.Get(c.Request.Context(), currentUser(c), contactID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, result)
}

// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        contactId  path  int  true  "Contact ID"
// @Param        body  body  models.UpdateContactRequest  true  "Contact payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId} [put]
// @Security     TokenAuth
func (h *Handler) updateContact(c *gin.Context) {
	contactID, ok := paramInt(c, "contactId")
	if !ok {
		return
	}

	var request models.UpdateContactRequest
	if ok := h.bindJSONOrBadRequest(c, &request); !ok {
		return
	}
	request.ID = contactID

	result, err := h.services.Contacts.Update(c.Request.Context(), currentUser(c), request)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, result)
}

// @Summary      Delete a contact
// @Tags         contacts
// @Produce      json
// @Param        contactId  path  int  true  "Contact ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/contacts/{contactId} [delete]
// @Security     TokenAuth
func (h *Handler) deleteContact(c *gin.Context) {
	contactID, ok := paramInt(c, "contactId")
	if !ok {
		return
	}

	result, err := h.services.Contacts.Remove(c.Request.Context(), currentUser(c), contactID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, result)
}

// @Summary      Search contacts
// @Tags         contacts
// @Produce      json
// @Param        name   query  string  false  "Substring of first or last name"
// @Param        email  query  string  false  "Substring of email"
// @Param        phone  query  string  false  "Substring of phone"
// @Param        page   query  int     false  "Page (default 1)"
// @Param        size   query  int     false  "Page size (default 10)"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/contacts [get]
// @Security     TokenAuth
func (h *Handler) searchContacts(c *gin.Context) {
	page, ok := queryInt(c, "page")
	if !ok {
		return
	}
	size, ok := queryInt(c, "size")
	if !ok {
		return
	}

	request := models.SearchContactRequest{
		Name:  c.Query("name"),
		Email: c.Query("email"),
		Phone: c.Query("phone"),
		Page:  page,
		Size:  size,
	}
	result, paging, err := h.services.Contacts.Search(c.Request.Context(), currentUser(c), request)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondPage(c, result, paging)
}
