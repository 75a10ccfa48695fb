package handlers

import (
	"contact_management/internal/models"

	"github.com/gin-gonic/gin"
)

// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  models.RegisterUserRequest  true  "Registration payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/users [post]
func (h *Handler) register(c *gin.Context) {
	var request models.RegisterUserRequest
	if ok := h.bindJSONOrBadRequest(c, &request); !ok {
		return
	}

	result, err := h.services.Users.Register(c.Request.Context(), request)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, result)
}

// @Summary      Login and receive a session token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  models.LoginUserRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/users/login [post]
func (h *Handler) login(c *gin.Context) {
	var request models.LoginUserRequest
	if ok := h.bindJSONOrBadRequest(c, &request); !ok {
		return
	}

	result, err := h.services.Users.Login(c.Request.Context(), request)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, result)
}

// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/users/current [get]
// @Security     TokenAuth
func (h *Handler) getCurrentUser(c *gin.Context) {
	respondData(c, h.services.Users.Current(currentUser(c)))
}

// @Summary      Update the current user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  models.UpdateUserRequest  true  "Partial profile update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/users/current [patch]
// @Security     TokenAuth
func (h *Handler) updateCurrentUser(c *gin.Context) {
	var request models.UpdateUserRequest
	if ok := h.bindJSONOrBadRequest(c, &request); !ok {
		return
	}

	result, err := h.services.Users.Update(c.Request.Context(), currentUser(c), request)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, result)
}

// @Summary      Logout (revoke the session token)
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /api/users/current [delete]
// @Security     TokenAuth
func (h *Handler) logout(c *gin.Context) {
	if err := h.services.Users.Logout(c.Request.Context(), currentUser(c)); err != nil {
		h.respondError(c, err)
		return
	}
	respondData(c, "Logout Success")
}
