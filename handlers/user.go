package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves user management and token issuance.
type UserHandler struct {
	Users user.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Users: svc}
}

// CreateUser handles POST /users. The body nests the user document under a
// "user" key.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input struct {
		User models.User `json:"user"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, err)
		return
	}

	result, err := h.Users.CreateUser(input.User)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if result.Exists {
		utils.RespondMessage(c, "User already exists")
		return
	}
	utils.RespondData(c, gin.H{"acknowledged": true, "insertedId": result.InsertedID})
}

// IssueJWT handles GET /jwt?email=E. Tokens are only issued for registered
// users; anyone else gets a 403 with no usable token.
func (h *UserHandler) IssueJWT(c *gin.Context) {
	email := c.Query("email")

	token, err := h.Users.IssueToken(email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownUser) {
			c.JSON(http.StatusForbidden, gin.H{"token": "Unauthorized access"})
			return
		}
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// GetUsers handles GET /users.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Users.GetAllUsers()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, users)
}

// CheckAdmin handles GET /users/admin/:email with the bare {isAdmin} shape.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	isAdmin, err := h.Users.IsAdmin(c.Param("email"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}

// PromoteAdmin handles PUT /users/admin/:id.
func (h *UserHandler) PromoteAdmin(c *gin.Context) {
	result, err := h.Users.PromoteToAdmin(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, gin.H{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
		"upsertedId":    result.UpsertedID,
	})
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	deleted, err := h.Users.DeleteUser(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result":  gin.H{"acknowledged": true, "deletedCount": deleted},
	})
}
