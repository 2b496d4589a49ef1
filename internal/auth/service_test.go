package auth

import (
	"fmt"
	"sync/atomic"
	"testing"

	"jaz-events-api/internal/util"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq uint64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	id := atomic.AddUint64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:auth_test_%d?mode=memory&cache=shared", id)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("migrate db: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	svc := &AuthService{DB: db}

	hash, err := util.HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	user, err := svc.CreateUser(User{
		FirstName: "نورة",
		LastName:  "العتيبي",
		Email:     "  Noura@Example.com ",
		Password:  hash,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Role != "user" {
		t.Fatalf("role=%q want default user", user.Role)
	}
	if user.Email != "noura@example.com" {
		t.Fatalf("email=%q want normalized", user.Email)
	}

	if _, err := svc.CreateUser(User{
		FirstName: "نورة",
		LastName:  "العتيبي",
		Email:     "noura@example.com",
		Password:  hash,
	}); err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
}

func TestGetUser_CaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := &AuthService{DB: db}

	if _, err := svc.CreateUser(User{FirstName: "a", LastName: "b", Email: "admin@jaz.example", Password: "x", Role: "admin"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	user, err := svc.GetUser("Admin@JAZ.example")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if user.Role != "admin" {
		t.Fatalf("role=%q", user.Role)
	}
}

func TestUpdateRole(t *testing.T) {
	db := newTestDB(t)
	svc := &AuthService{DB: db}

	user, err := svc.CreateUser(User{FirstName: "a", LastName: "b", Email: "u@jaz.example", Password: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.UpdateRole(user.ID, "admin")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Role != "admin" {
		t.Fatalf("role=%q want admin", got.Role)
	}

	if _, err := svc.UpdateRole(user.ID, "superuser"); err == nil {
		t.Fatal("expected unknown role to be rejected")
	}
	if _, err := svc.UpdateRole(9999, "admin"); err == nil {
		t.Fatal("expected missing user error")
	}
}
