package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"userhub/internal/domain"
	"userhub/internal/repository"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	userRepo repository.UserRepository
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userRepo repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// UserRequest is the HTTP request body for create and update. Every
// field is optional; unknown fields are ignored. Pointer types
// distinguish "absent" from a zero value so updates merge instead of
// replacing.
type UserRequest struct {
	Name        *string  `json:"name"`
	PhoneNumber *float64 `json:"phoneNumber"`
	City        *string  `json:"city"`
}

func (r UserRequest) toDomain() *domain.User {
	return &domain.User{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		City:        r.City,
	}
}

// CreatedResponse is the HTTP response for user creation.
type CreatedResponse struct {
	Message string       `json:"message"`
	NewUser *domain.User `json:"newUser"`
}

// ListResponse is the HTTP response for the collection listing.
type ListResponse struct {
	Message string         `json:"message"`
	Users   []*domain.User `json:"users"`
}

// UpdatedResponse is the HTTP response for user updates.
type UpdatedResponse struct {
	Message     string       `json:"message"`
	UpdatedUser *domain.User `json:"updatedUser"`
}

// DeletedResponse is the HTTP response for user deletion.
type DeletedResponse struct {
	Message     string       `json:"message"`
	DeletedUser *domain.User `json:"deletedUser"`
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body the store could not coerce; same outcome as an
		// insert failure.
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Error creating user"})
		return
	}

	newUser, err := h.userRepo.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Error creating user"})
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{
		Message: "User created successfully",
		NewUser: newUser,
	})
}

// GetAll handles GET /users
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userRepo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Error retrieving users"})
		return
	}
	if users == nil {
		// An empty collection is a success; render [] rather than null.
		users = []*domain.User{}
	}

	c.JSON(http.StatusOK, ListResponse{
		Message: "User retrieved successfully",
		Users:   users,
	})
}

// GetByID handles GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userRepo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "Error retrieving user")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Error updating user"})
		return
	}

	updatedUser, err := h.userRepo.Update(c.Request.Context(), c.Param("id"), req.toDomain())
	if err != nil {
		respondRepoError(c, err, "Error updating user")
		return
	}

	c.JSON(http.StatusOK, UpdatedResponse{
		Message:     "User updated successfully",
		UpdatedUser: updatedUser,
	})
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	deletedUser, err := h.userRepo.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondRepoError(c, err, "Error deleting user")
		return
	}

	c.JSON(http.StatusOK, DeletedResponse{
		Message:     "User deleted successfully",
		DeletedUser: deletedUser,
	})
}
