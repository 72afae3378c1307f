package service

import (
	"testing"

	"daily-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFood_CRUD(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")

	food, err := f.svc.Foods.Create(f.ctx, alice, FoodForm{Name: "米饭", Calories: "116.5", MealTime: "2024-05-01 12:00:00"})
	require.NoError(t, err)
	require.True(t, food.Calories.Valid)
	assert.Equal(t, "116.5", food.Calories.Decimal.String())

	edited, err := f.svc.Foods.Edit(f.ctx, alice, food.ID, FoodForm{Name: "面条", MealTime: "2024-05-01 18:00:00", Remark: "晚饭"})
	require.NoError(t, err)
	assert.Equal(t, "面条", edited.Name)
	assert.False(t, edited.Calories.Valid)

	got, err := f.svc.Foods.Get(f.ctx, alice, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "晚饭", got.Remark)

	_, err = f.svc.Foods.Create(f.ctx, alice, FoodForm{Name: "x", Calories: "-1", MealTime: "2024-05-01 12:00:00"})
	requireCode(t, err, ErrorCodeValidation)
	_, err = f.svc.Foods.Create(f.ctx, alice, FoodForm{Name: "x"})
	requireCode(t, err, ErrorCodeValidation)
}

// TestFood_HardDelete 测试饮食记录直接物理删除
func TestFood_HardDelete(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	food, err := f.svc.Foods.Create(f.ctx, alice, FoodForm{Name: "米饭", MealTime: "2024-05-01 12:00:00"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Foods.Delete(f.ctx, alice, food.ID))

	var count int64
	require.NoError(t, f.db.Model(&models.Food{}).Where("id = ?", food.ID).Count(&count).Error)
	assert.Zero(t, count)

	requireCode(t, f.svc.Foods.Delete(f.ctx, alice, food.ID), ErrorCodeNotFound)

	list, err := f.svc.Foods.List(f.ctx, alice, 1)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Zero(t, list.Total)
}

func TestFood_CrossUserForbidden(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	food, err := f.svc.Foods.Create(f.ctx, alice, FoodForm{Name: "米饭", MealTime: "2024-05-01 12:00:00"})
	require.NoError(t, err)

	_, err = f.svc.Foods.Get(f.ctx, bob, food.ID)
	requireCode(t, err, ErrorCodeForbidden)
	_, err = f.svc.Foods.Edit(f.ctx, bob, food.ID, FoodForm{Name: "偷改", MealTime: "2024-05-01 12:00:00"})
	requireCode(t, err, ErrorCodeForbidden)
	requireCode(t, f.svc.Foods.Delete(f.ctx, bob, food.ID), ErrorCodeForbidden)

	got, err := f.svc.Foods.Get(f.ctx, alice, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "米饭", got.Name)

	list, err := f.svc.Foods.List(f.ctx, bob, 1)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}
