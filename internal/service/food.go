package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"daily-app/internal/models"
	"daily-app/internal/repository"
	"daily-app/internal/util"

	"github.com/shopspring/decimal"
)

type FoodService struct {
	foods    *repository.FoodRepository
	pageSize int
	loc      *time.Location
}

func NewFoodService(foods *repository.FoodRepository, pageSize int, loc *time.Location) *FoodService {
	if loc == nil {
		loc = time.Local
	}
	return &FoodService{foods: foods, pageSize: pageSize, loc: loc}
}

type FoodForm struct {
	Name     string      `json:"name" form:"name" binding:"required,max=100"`
	Calories json.Number `json:"calories" form:"calories"` // 可选，千卡
	MealTime string      `json:"meal_time" form:"meal_time" binding:"required"`
	Remark   string      `json:"remark" form:"remark" binding:"max=1000"`
}

func (s *FoodService) List(ctx context.Context, actor Actor, page int) (*PageResult[models.Food], error) {
	p := repository.NewPage(page, s.pageSize, 10)
	foods, total, err := s.foods.ListByUser(ctx, actor.UserID, p)
	if err != nil {
		return nil, fromRepo(err, "list foods")
	}
	return newPageResult(foods, total, p), nil
}

func (s *FoodService) Create(ctx context.Context, actor Actor, form FoodForm) (*models.Food, error) {
	food := &models.Food{UserID: actor.UserID}
	if err := s.apply(food, form); err != nil {
		return nil, err
	}
	if err := s.foods.Create(ctx, food); err != nil {
		return nil, fromRepo(err, "create food")
	}
	return food, nil
}

func (s *FoodService) Get(ctx context.Context, actor Actor, id uint) (*models.Food, error) {
	food, err := s.foods.Find(ctx, id)
	if err := authorize(food, err, actor, "get food"); err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Edit(ctx context.Context, actor Actor, id uint, form FoodForm) (*models.Food, error) {
	food, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(food, form); err != nil {
		return nil, err
	}
	if err := s.foods.Save(ctx, food); err != nil {
		return nil, fromRepo(err, "edit food")
	}
	return food, nil
}

// Delete removes the row; food has no soft delete.
func (s *FoodService) Delete(ctx context.Context, actor Actor, id uint) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	return fromRepo(s.foods.Delete(ctx, id), "delete food")
}

func (s *FoodService) apply(food *models.Food, form FoodForm) error {
	form.Name = strings.TrimSpace(form.Name)
	if fields := util.ValidateStruct(form); fields != nil {
		return NewValidationError("参数错误", fields)
	}
	meal, err := util.ParseDateTime(form.MealTime, s.loc)
	if err != nil {
		return invalid("meal_time", "时间格式应为 "+util.DateTimeLayout)
	}
	calories := decimal.NullDecimal{}
	if raw := strings.TrimSpace(form.Calories.String()); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			return invalid("calories", "热量必须是不小于 0 的数字")
		}
		calories = decimal.NewNullDecimal(d.Round(2))
	}

	food.Name = form.Name
	food.Calories = calories
	food.MealTime = meal.UTC()
	food.Remark = form.Remark
	return nil
}
