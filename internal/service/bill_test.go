package service

import (
	"testing"
	"time"

	"daily-app/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBill_CreateAndGet(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	cat := f.category(t, "餐饮", 0)

	created, err := f.svc.Bills.Create(f.ctx, alice, BillForm{
		CategoryID:   cat.ID,
		Amount:       "12.34",
		OrderName:    "  午饭  ",
		SpendingTime: "2024-05-01 12:30:00",
	})
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, created.UserID)
	assert.Equal(t, int64(1234), created.AmountCent)
	assert.Equal(t, "12.34", created.Amount)
	assert.Equal(t, "午饭", created.OrderName)
	require.NotNil(t, created.Category)
	assert.Equal(t, "餐饮", created.Category.Name)

	got, err := f.svc.Bills.Get(f.ctx, alice, created.ID)
	require.NoError(t, err)
	assert.True(t, got.SpendingTime.Equal(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)))
}

// TestBill_CreateValidation 测试表单校验
func TestBill_CreateValidation(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	cat := f.category(t, "餐饮", 0)

	valid := BillForm{CategoryID: cat.ID, Amount: "1", OrderName: "x", SpendingTime: "2024-05-01 12:00:00"}

	cases := map[string]func(*BillForm){
		"category_id":   func(b *BillForm) { b.CategoryID = 0 },
		"amount":        func(b *BillForm) { b.Amount = "-1" },
		"order_name":    func(b *BillForm) { b.OrderName = "" },
		"spending_time": func(b *BillForm) { b.SpendingTime = "yesterday" },
	}
	for field, mutate := range cases {
		form := valid
		mutate(&form)
		_, err := f.svc.Bills.Create(f.ctx, alice, form)
		requireCode(t, err, ErrorCodeValidation)
		se, _ := AsServiceError(err)
		assert.Contains(t, se.Fields, field)
	}

	form := valid
	form.CategoryID = 999
	_, err := f.svc.Bills.Create(f.ctx, alice, form)
	requireCode(t, err, ErrorCodeValidation)

	var count int64
	require.NoError(t, f.db.Model(&models.Bill{}).Count(&count).Error)
	assert.Zero(t, count)
}

// TestBill_ListPagination 测试分页和排序
func TestBill_ListPagination(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	cat := f.category(t, "餐饮", 0)

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		f.bill(t, alice, cat.ID, "1", base.Add(time.Duration(i)*time.Hour))
	}
	f.bill(t, bob, cat.ID, "99", base)

	page1, err := f.svc.Bills.List(f.ctx, alice, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(12), page1.Total)
	assert.Equal(t, 2, page1.Pages)
	assert.Equal(t, 10, page1.PageSize)
	require.Len(t, page1.Items, 10)
	assert.True(t, page1.Items[0].SpendingTime.After(page1.Items[9].SpendingTime))

	page2, err := f.svc.Bills.List(f.ctx, alice, 2)
	require.NoError(t, err)
	assert.Len(t, page2.Items, 2)

	beyond, err := f.svc.Bills.List(f.ctx, alice, 5)
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 5, beyond.Page)

	negative, err := f.svc.Bills.List(f.ctx, alice, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, negative.Page)

	for _, item := range page1.Items {
		assert.Equal(t, alice.UserID, item.UserID)
	}
}

// TestBill_CrossUserForbidden 测试越权访问别人的账单
func TestBill_CrossUserForbidden(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	cat := f.category(t, "餐饮", 0)
	b := f.bill(t, alice, cat.ID, "10", time.Now())

	_, err := f.svc.Bills.Get(f.ctx, bob, b.ID)
	requireCode(t, err, ErrorCodeForbidden)

	_, err = f.svc.Bills.Edit(f.ctx, bob, b.ID, BillForm{
		CategoryID: cat.ID, Amount: "1", OrderName: "hacked", SpendingTime: "2024-01-01 00:00:00",
	})
	requireCode(t, err, ErrorCodeForbidden)

	requireCode(t, f.svc.Bills.Delete(f.ctx, bob, b.ID), ErrorCodeForbidden)

	got, err := f.svc.Bills.Get(f.ctx, alice, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), got.AmountCent)
	assert.Equal(t, b.OrderName, got.OrderName)
}

func TestBill_Edit(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	food := f.category(t, "餐饮", 0)
	travel := f.category(t, "交通", 0)
	b := f.bill(t, alice, food.ID, "10", time.Now())

	edited, err := f.svc.Bills.Edit(f.ctx, alice, b.ID, BillForm{
		CategoryID: travel.ID, Amount: "25.5", OrderName: "打车", SpendingTime: "2024-06-01 09:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2550), edited.AmountCent)
	assert.Equal(t, "25.50", edited.Amount)
	assert.Equal(t, travel.ID, edited.CategoryID)
	require.NotNil(t, edited.Category)
	assert.Equal(t, "交通", edited.Category.Name)
	assert.Equal(t, alice.UserID, edited.UserID)
}

// TestBill_SoftDelete 测试软删除后不再可见
func TestBill_SoftDelete(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	cat := f.category(t, "餐饮", 0)
	keep := f.bill(t, alice, cat.ID, "1", time.Now())
	gone := f.bill(t, alice, cat.ID, "2", time.Now())

	require.NoError(t, f.svc.Bills.Delete(f.ctx, alice, gone.ID))

	list, err := f.svc.Bills.List(f.ctx, alice, 1)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, keep.ID, list.Items[0].ID)

	_, err = f.svc.Bills.Get(f.ctx, alice, gone.ID)
	requireCode(t, err, ErrorCodeNotFound)
	requireCode(t, f.svc.Bills.Delete(f.ctx, alice, gone.ID), ErrorCodeNotFound)

	var row models.Bill
	require.NoError(t, f.db.First(&row, gone.ID).Error)
	assert.True(t, row.IsDeleted)

	recent, err := f.svc.Bills.Recent(f.ctx, alice, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	all, err := f.svc.Bills.All(f.ctx, alice)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBill_Recent(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	cat := f.category(t, "餐饮", 0)
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		f.bill(t, alice, cat.ID, "1", base.AddDate(0, 0, i))
	}

	recent, err := f.svc.Bills.Recent(f.ctx, alice, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.True(t, recent[0].SpendingTime.Equal(base.AddDate(0, 0, 6)))
}
