package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vishalparmarr/react-native-bookworm/internal/database"
	"github.com/vishalparmarr/react-native-bookworm/internal/logs"
	"github.com/vishalparmarr/react-native-bookworm/internal/user"
)

// Register POST /api/auth/register
func Register(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the fields"})
		return
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the fields"})
		return
	}
	if len(input.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters"})
		return
	}
	if len(input.Username) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username must be at least 3 characters"})
		return
	}

	emailTaken, err := user.ExistsByEmail(input.Email)
	if err != nil {
		logs.LogJSON("ERROR", "Email lookup failed", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if emailTaken {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		return
	}
	usernameTaken, err := user.ExistsByUsername(input.Username)
	if err != nil {
		logs.LogJSON("ERROR", "Username lookup failed", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if usernameTaken {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	// Random avatar seeded by the username
	profileImage := fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", input.Username)

	newUser := user.User{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Username:     input.Username,
		Email:        input.Email,
		Password:     string(hash),
		ProfileImage: profileImage,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		logs.LogJSON("ERROR", "User insert failed", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	token, err := GenerateToken(newUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  newUser,
	})
}

// Login POST /api/auth/login
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the fields"})
		return
	}

	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the fields"})
		return
	}

	// Same message for unknown email and wrong password
	u, err := user.FindByEmail(input.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := GenerateToken(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  u,
	})
}
