package book

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vishalparmarr/react-native-bookworm/internal/database"
	"github.com/vishalparmarr/react-native-bookworm/internal/logs"
	"github.com/vishalparmarr/react-native-bookworm/internal/storage"
)

// ListBooks GET /api/books?page=&limit=
func ListBooks(c *gin.Context) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = DefaultLimit
	}

	result, err := Paginate(&GormStore{DB: database.DB}, page, limit)
	if err != nil {
		logs.LogJSON("ERROR", "Error in getting books", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateBook POST /api/books
func CreateBook(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		Title   string `json:"title"`
		Caption string `json:"caption"`
		Image   string `json:"image"` // base64 data URL
		Rating  int    `json:"rating"`
	}
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the fields"})
		return
	}

	if input.Title == "" || input.Caption == "" || input.Image == "" || input.Rating == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all the fields"})
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 1 and 5"})
		return
	}

	var count int64
	if err := database.DB.Model(&Book{}).Where("title = ?", input.Title).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Book already exists"})
		return
	}

	// Image goes to the object store first; the record only ever points
	// at an already-uploaded URL.
	bookID := uuid.New().String()
	imageURL, err := storage.UploadDataURL(input.Image, fmt.Sprintf("book_%s", bookID), "books")
	if err != nil {
		if errors.Is(err, storage.ErrInvalidDataURL) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image"})
			return
		}
		logs.LogJSON("ERROR", "Image upload failed", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": userID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	newBook := Book{
		ID:       bookID,
		Title:    input.Title,
		Caption:  input.Caption,
		Rating:   input.Rating,
		ImageURL: imageURL,
		UserID:   userID,
	}
	if err := database.DB.Create(&newBook).Error; err != nil {
		// Roll back the upload so the bucket does not accumulate orphans
		if key := storage.KeyFromURL(imageURL); key != "" {
			_ = storage.DeleteFromS3(key)
		}
		logs.LogJSON("ERROR", "Error in creating book", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": userID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Book created successfully",
		"book":    newBook,
	})
}

// DeleteBook DELETE /api/books/:id
func DeleteBook(c *gin.Context) {
	bookID := c.Param("id")
	userID := c.GetString("user_id")

	var b Book
	if err := database.DB.First(&b, "id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Book not found"})
			return
		}
		logs.LogJSON("ERROR", "Error in deleting book", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": userID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if b.UserID != userID {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "You are not authorized to delete this book"})
		return
	}

	// Remote image delete is best effort; the record goes away regardless
	if key := storage.KeyFromURL(b.ImageURL); key != "" {
		if err := storage.DeleteFromS3(key); err != nil {
			logs.LogJSON("WARN", "Error in deleting image", map[string]interface{}{
				"error":  err.Error(),
				"route":  c.FullPath(),
				"userID": userID,
				"bookID": bookID,
			})
		}
	}

	if err := database.DB.Delete(&b).Error; err != nil {
		logs.LogJSON("ERROR", "Error in deleting book", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": userID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

// UserBooks GET /api/books/user — the caller's own recommendations
func UserBooks(c *gin.Context) {
	userID := c.GetString("user_id")

	var books []Book
	err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&books).Error
	if err != nil {
		logs.LogJSON("ERROR", "Error in getting recommended books", map[string]interface{}{
			"error":  err.Error(),
			"route":  c.FullPath(),
			"userID": userID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, books)
}
