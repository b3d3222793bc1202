package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tixbid/service"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Register a new account
// (POST /register/)
func (impl *ServerImpl) Register(c *gin.Context) {
	const op = "Register"

	var request registerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := impl.accounts.Register(c.Request.Context(), service.RegisterInput{
		Username: request.Username,
		Password: request.Password,
		Email:    request.Email,
		Address:  request.Address,
	})
	if err != nil {
		// 欄位驗證錯誤以 {"欄位": ["訊息", ...]} 的形式回傳
		var fieldErrs service.FieldErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, fieldErrs)
			return
		}
		if errors.Is(err, service.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"username": []string{"A user with that username already exists."},
			})
			return
		}
		abortWithError(c, op, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": "Account has been created",
		"username": user.Username,
		"email":    user.Email,
	})
}

// Log in with username and password, issuing an access/refresh token pair
// (POST /login/)
func (impl *ServerImpl) Login(c *gin.Context) {
	const op = "Login"

	var request loginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, pair, err := impl.accounts.Login(c.Request.Context(), request.Username, request.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		abortWithError(c, op, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Login Successful",
		"refresh_token": pair.RefreshToken,
		"access_token":  pair.AccessToken,
		"username":      user.Username,
		"email":         user.Email,
		"address":       user.Address,
	})
}

// Log out by revoking the supplied refresh token
// (POST /logout/)
func (impl *ServerImpl) Logout(c *gin.Context) {
	const op = "Logout"

	var request refreshTokenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Token"})
		return
	}

	if err := impl.accounts.Logout(c.Request.Context(), request.RefreshToken); err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Token"})
			return
		}
		abortWithError(c, op, err)
		return
	}

	c.JSON(http.StatusResetContent, gin.H{"message": "User Logged Out Successfully"})
}

// Mint a fresh access token from a still-valid refresh token
// (POST /token/refresh/)
func (impl *ServerImpl) RefreshToken(c *gin.Context) {
	const op = "RefreshToken"

	var request refreshTokenRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is invalid or expired"})
		return
	}

	accessToken, err := impl.accounts.Refresh(c.Request.Context(), request.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is invalid or expired"})
			return
		}
		abortWithError(c, op, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}
