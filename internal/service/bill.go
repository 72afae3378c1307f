package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"daily-app/internal/models"
	"daily-app/internal/repository"
	"daily-app/internal/util"
)

type BillService struct {
	bills      *repository.BillRepository
	categories *repository.CategoryRepository
	pageSize   int
	loc        *time.Location
}

func NewBillService(bills *repository.BillRepository, categories *repository.CategoryRepository, pageSize int, loc *time.Location) *BillService {
	if loc == nil {
		loc = time.Local
	}
	return &BillService{bills: bills, categories: categories, pageSize: pageSize, loc: loc}
}

// BillForm is bound from JSON or form bodies. Amount accepts 12.34 as number or string.
type BillForm struct {
	CategoryID   uint        `json:"category_id" form:"category_id" binding:"required"`
	Amount       json.Number `json:"amount" form:"amount" binding:"required"`
	OrderName    string      `json:"order_name" form:"order_name" binding:"required,max=200"`
	SpendingTime string      `json:"spending_time" form:"spending_time" binding:"required"`
}

// BillItem is a bill with its amount rendered in yuan.
type BillItem struct {
	models.Bill
	Amount string `json:"amount"`
}

func toBillItem(b models.Bill) BillItem {
	return BillItem{Bill: b, Amount: FormatCent(b.AmountCent)}
}

func toBillItems(bills []models.Bill) []BillItem {
	items := make([]BillItem, 0, len(bills))
	for _, b := range bills {
		items = append(items, toBillItem(b))
	}
	return items
}

func (s *BillService) List(ctx context.Context, actor Actor, page int) (*PageResult[BillItem], error) {
	p := repository.NewPage(page, s.pageSize, 10)
	bills, total, err := s.bills.ListByUser(ctx, actor.UserID, p)
	if err != nil {
		return nil, fromRepo(err, "list bills")
	}
	return newPageResult(toBillItems(bills), total, p), nil
}

// FormOptions returns the categories a bill can be filed under.
func (s *BillService) FormOptions(ctx context.Context) ([]models.BillCategory, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fromRepo(err, "bill form options")
	}
	return cats, nil
}

func (s *BillService) Create(ctx context.Context, actor Actor, form BillForm) (*BillItem, error) {
	bill := &models.Bill{UserID: actor.UserID}
	if err := s.apply(ctx, bill, form); err != nil {
		return nil, err
	}
	if err := s.bills.Create(ctx, bill); err != nil {
		return nil, fromRepo(err, "create bill")
	}
	return s.reload(ctx, bill.ID)
}

// Get loads one of the actor's bills for viewing or edit pre-fill.
func (s *BillService) Get(ctx context.Context, actor Actor, id uint) (*BillItem, error) {
	bill, err := s.bills.Find(ctx, id)
	if err := authorize(bill, err, actor, "get bill"); err != nil {
		return nil, err
	}
	item := toBillItem(*bill)
	return &item, nil
}

func (s *BillService) Edit(ctx context.Context, actor Actor, id uint, form BillForm) (*BillItem, error) {
	bill, err := s.bills.Find(ctx, id)
	if err := authorize(bill, err, actor, "edit bill"); err != nil {
		return nil, err
	}
	if err := s.apply(ctx, bill, form); err != nil {
		return nil, err
	}
	bill.Category = nil
	if err := s.bills.Save(ctx, bill); err != nil {
		return nil, fromRepo(err, "edit bill")
	}
	return s.reload(ctx, bill.ID)
}

func (s *BillService) Delete(ctx context.Context, actor Actor, id uint) error {
	bill, err := s.bills.Find(ctx, id)
	if err := authorize(bill, err, actor, "delete bill"); err != nil {
		return err
	}
	return fromRepo(s.bills.Delete(ctx, id), "delete bill")
}

// Recent returns the actor's latest n bills for the home page.
func (s *BillService) Recent(ctx context.Context, actor Actor, n int) ([]BillItem, error) {
	bills, err := s.bills.Recent(ctx, actor.UserID, n)
	if err != nil {
		return nil, fromRepo(err, "recent bills")
	}
	return toBillItems(bills), nil
}

// All returns every live bill of the actor, newest first, for export.
func (s *BillService) All(ctx context.Context, actor Actor) ([]BillItem, error) {
	bills, err := s.bills.AllByUser(ctx, actor.UserID)
	if err != nil {
		return nil, fromRepo(err, "export bills")
	}
	return toBillItems(bills), nil
}

// Location is the zone form timestamps are interpreted in.
func (s *BillService) Location() *time.Location { return s.loc }

func (s *BillService) apply(ctx context.Context, bill *models.Bill, form BillForm) error {
	form.OrderName = strings.TrimSpace(form.OrderName)
	if fields := util.ValidateStruct(form); fields != nil {
		return NewValidationError("参数错误", fields)
	}
	cents, err := ParseAmount(form.Amount.String())
	if err != nil {
		return invalid("amount", "金额必须是不小于 0 且最多两位小数的数字")
	}
	spent, err := util.ParseDateTime(form.SpendingTime, s.loc)
	if err != nil {
		return invalid("spending_time", "时间格式应为 "+util.DateTimeLayout)
	}
	if _, err := s.categories.Find(ctx, form.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invalid("category_id", "分类不存在")
		}
		return fromRepo(err, "find bill category")
	}

	bill.CategoryID = form.CategoryID
	bill.AmountCent = cents
	bill.OrderName = form.OrderName
	bill.SpendingTime = spent.UTC()
	return nil
}

func (s *BillService) reload(ctx context.Context, id uint) (*BillItem, error) {
	bill, err := s.bills.Find(ctx, id)
	if err != nil {
		return nil, fromRepo(err, "reload bill")
	}
	item := toBillItem(*bill)
	return &item, nil
}
