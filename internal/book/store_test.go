package book

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return db, mock
}

func TestGormStoreListPage(t *testing.T) {
	db, mock := newMockDB(t)
	store := &GormStore{DB: db}

	now := time.Now()
	bookRows := sqlmock.NewRows([]string{"id", "created_at", "title", "caption", "rating", "image_url", "user_id"}).
		AddRow("book-2", now, "Dune", "A classic", 5, "https://bucket.s3.eu-west-1.amazonaws.com/books/book_2.jpg", "user-1").
		AddRow("book-1", now.Add(-time.Hour), "Solaris", "Strange ocean", 4, "https://bucket.s3.eu-west-1.amazonaws.com/books/book_1.jpg", "user-2")
	userRows := sqlmock.NewRows([]string{"id", "created_at", "username", "email", "password", "profile_image"}).
		AddRow("user-1", now, "alice", "alice@example.com", "hash", "https://api.dicebear.com/7.x/avataaars/svg?seed=alice").
		AddRow("user-2", now, "bob", "bob@example.com", "hash", "https://api.dicebear.com/7.x/avataaars/svg?seed=bob")

	// Main query first, then the owner preload. The feed order and the
	// skip/limit window must reach the database verbatim.
	mock.ExpectQuery(`SELECT .* FROM "books" ORDER BY created_at DESC, id DESC LIMIT \$?\d+ OFFSET \$?\d+`).
		WillReturnRows(bookRows)
	mock.ExpectQuery(`SELECT .* FROM "users"`).WillReturnRows(userRows)

	books, err := store.ListPage(5, 5)

	assert.NoError(t, err)
	assert.Len(t, books, 2)
	assert.Equal(t, "book-2", books[0].ID)
	assert.Equal(t, "alice", books[0].User.Username)
	assert.Equal(t, "bob", books[1].User.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreCount(t *testing.T) {
	db, mock := newMockDB(t)
	store := &GormStore{DB: db}

	mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := store.Count()

	assert.NoError(t, err)
	assert.Equal(t, int64(12), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
