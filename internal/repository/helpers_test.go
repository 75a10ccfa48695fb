package repository

import "contact_management/internal/models"

func testUser(username, name, hash string) models.User {
	return models.User{Username: username, Name: name, PasswordHash: hash}
}
