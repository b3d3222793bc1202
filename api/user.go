package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"tixbid/models"
	"tixbid/repository"
)

// userResponse 不包含密碼雜湊，任何回應都不會帶出它
type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Address  string    `json:"address"`
	IsStaff  bool      `json:"isStaff"`
}

func newUserResponse(user models.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Address:  user.Address,
		IsStaff:  user.IsStaff,
	}
}

// List all users
// (GET /users/)
func (impl *ServerImpl) ListUsers(c *gin.Context) {
	const op = "ListUsers"

	users, err := impl.store.Users().List(c.Request.Context())
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(users, func(user models.User, _ int) userResponse {
		return newUserResponse(user)
	}))
}

// Create a user directly, without going through registration
// (POST /users/)
func (impl *ServerImpl) CreateUser(c *gin.Context) {
	const op = "CreateUser"

	var request struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Address  string `json:"address"`
		IsStaff  bool   `json:"isStaff"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	hashed, err := impl.hasher.Hash(request.Password)
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	user := models.User{
		Username:     request.Username,
		PasswordHash: hashed,
		Email:        request.Email,
		Address:      request.Address,
		IsStaff:      request.IsStaff,
	}
	if err := impl.store.Users().Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicated) {
			c.JSON(http.StatusBadRequest, gin.H{
				"username": []string{"A user with that username already exists."},
			})
			return
		}
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Get a single user
// (GET /users/{id}/)
func (impl *ServerImpl) GetUser(c *gin.Context) {
	const op = "GetUser"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	user, err := impl.store.Users().Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user))
}

// Update a user's profile
// (PUT /users/{id}/)
func (impl *ServerImpl) UpdateUser(c *gin.Context) {
	const op = "UpdateUser"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	// username 不可變更，password 有帶才重新雜湊
	var request struct {
		Password string `json:"password"`
		Email    string `json:"email"`
		Address  string `json:"address"`
		IsStaff  bool   `json:"isStaff"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := impl.store.Users().Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		abortWithError(c, op, err)
		return
	}

	user.Email = request.Email
	user.Address = request.Address
	user.IsStaff = request.IsStaff
	if request.Password != "" {
		hashed, err := impl.hasher.Hash(request.Password)
		if err != nil {
			abortWithError(c, op, err)
			return
		}
		user.PasswordHash = hashed
	}
	if err := impl.store.Users().Update(c.Request.Context(), user); err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user))
}

// Delete a user
// (DELETE /users/{id}/)
func (impl *ServerImpl) DeleteUser(c *gin.Context) {
	const op = "DeleteUser"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err := impl.store.Users().Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		abortWithError(c, op, err)
		return
	}
	c.Status(http.StatusNoContent)
}
