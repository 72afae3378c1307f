package service

import (
	"context"
	"errors"
	"strings"

	"daily-app/internal/models"
	"daily-app/internal/repository"
	"daily-app/internal/util"

	"github.com/sirupsen/logrus"
)

type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CategoryForm: ParentID 0 means "no parent".
type CategoryForm struct {
	Name     string `json:"name" form:"name" binding:"required,max=50"`
	ParentID uint   `json:"parent_id" form:"parent_id"`
}

// CategoryEdit is the pre-fill payload of the edit form.
type CategoryEdit struct {
	Category *models.BillCategory  `json:"category"`
	Parents  []models.BillCategory `json:"parents"` // 可选父分类，不含自身及其子孙
}

func (s *CategoryService) List(ctx context.Context) ([]models.BillCategory, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, fromRepo(err, "list categories")
	}
	return cats, nil
}

// Tree returns the categories nested under their parents.
func (s *CategoryService) Tree(ctx context.Context) ([]*CategoryNode, error) {
	cats, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return newCategoryTree(cats).roots(), nil
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*models.BillCategory, error) {
	cat, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, fromRepo(err, "get category")
	}
	return cat, nil
}

func (s *CategoryService) EditForm(ctx context.Context, id uint) (*CategoryEdit, error) {
	cats, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	tree := newCategoryTree(cats)
	cat, ok := tree.byID[id]
	if !ok {
		return nil, NewNotFoundError()
	}
	below := tree.descendants(id)
	parents := make([]models.BillCategory, 0, len(cats))
	for _, c := range cats {
		if c.ID != id && !below[c.ID] {
			parents = append(parents, c)
		}
	}
	return &CategoryEdit{Category: &cat, Parents: parents}, nil
}

func (s *CategoryService) Create(ctx context.Context, form CategoryForm) (*models.BillCategory, error) {
	form.Name = strings.TrimSpace(form.Name)
	if fields := util.ValidateStruct(form); fields != nil {
		return nil, NewValidationError("参数错误", fields)
	}
	parent, err := s.resolveParent(ctx, form.ParentID)
	if err != nil {
		return nil, err
	}
	cat := &models.BillCategory{Name: form.Name, ParentID: parent}
	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, fromRepo(err, "create category")
	}
	return cat, nil
}

// Edit renames or re-parents a category. A parent inside the category's own subtree is rejected.
func (s *CategoryService) Edit(ctx context.Context, id uint, form CategoryForm) (*models.BillCategory, error) {
	form.Name = strings.TrimSpace(form.Name)
	if fields := util.ValidateStruct(form); fields != nil {
		return nil, NewValidationError("参数错误", fields)
	}
	cats, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	tree := newCategoryTree(cats)
	cat, ok := tree.byID[id]
	if !ok {
		return nil, NewNotFoundError()
	}
	parent, err := s.resolveParent(ctx, form.ParentID)
	if err != nil {
		return nil, err
	}
	if parent != nil && tree.wouldCycle(id, *parent) {
		return nil, invalid("parent_id", "不能选择自身或其子分类作为父分类")
	}

	cat.Name = form.Name
	cat.ParentID = parent
	if err := s.repo.Save(ctx, &cat); err != nil {
		return nil, fromRepo(err, "edit category")
	}
	return &cat, nil
}

// Delete removes an unreferenced category; its children become roots.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrInUse) {
		return NewConflictError("该分类下存在账单，无法删除")
	}
	if err != nil {
		return fromRepo(err, "delete category")
	}
	logrus.WithField("category_id", id).Info("category deleted")
	return nil
}

func (s *CategoryService) resolveParent(ctx context.Context, id uint) (*uint, error) {
	if id == 0 {
		return nil, nil
	}
	if _, err := s.repo.Find(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, invalid("parent_id", "父分类不存在")
		}
		return nil, fromRepo(err, "find parent category")
	}
	return &id, nil
}
