package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"daily-app/internal/config"
	"daily-app/internal/models"
	"daily-app/internal/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fixture struct {
	db  *gorm.DB
	svc *Services
	ctx context.Context
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", Issuer: "daily-test", ExpireHours: 1, RememberDays: 7},
		Security: config.SecurityConfig{
			BcryptCost:       bcrypt.MinCost,
			MaxLoginAttempts: 5,
			LockMinutes:      10,
		},
		App: config.AppSubConfig{PageSize: 10, Timezone: "UTC"},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.SetupDB(t)
	return &fixture{db: db, svc: New(db, testConfig()), ctx: context.Background()}
}

// user inserts a bare user row and returns it as an actor.
func (f *fixture) user(t *testing.T, name string) Actor {
	t.Helper()
	u := models.User{Username: name, Email: name + "@example.com", PasswordHash: "x"}
	require.NoError(t, f.db.Create(&u).Error)
	return Actor{UserID: u.ID, Username: u.Username}
}

func (f *fixture) category(t *testing.T, name string, parent uint) *models.BillCategory {
	t.Helper()
	cat, err := f.svc.Categories.Create(f.ctx, CategoryForm{Name: name, ParentID: parent})
	require.NoError(t, err)
	return cat
}

func (f *fixture) bill(t *testing.T, actor Actor, cat uint, amount string, at time.Time) *BillItem {
	t.Helper()
	b, err := f.svc.Bills.Create(f.ctx, actor, BillForm{
		CategoryID:   cat,
		Amount:       jsonNumber(amount),
		OrderName:    fmt.Sprintf("order %s", amount),
		SpendingTime: at.Format("2006-01-02 15:04:05"),
	})
	require.NoError(t, err)
	return b
}

func requireCode(t *testing.T, err error, code ErrorCode) {
	t.Helper()
	require.Error(t, err)
	se, ok := AsServiceError(err)
	require.True(t, ok, "want ServiceError, got %T: %v", err, err)
	require.Equal(t, code, se.Code, "message: %s", se.Message)
}
