package service

import (
	"context"
	"strings"
	"time"

	"daily-app/internal/models"
	"daily-app/internal/repository"
	"daily-app/internal/util"
)

type TodoService struct {
	todos    *repository.TodoRepository
	pageSize int
	loc      *time.Location
}

func NewTodoService(todos *repository.TodoRepository, pageSize int, loc *time.Location) *TodoService {
	if loc == nil {
		loc = time.Local
	}
	return &TodoService{todos: todos, pageSize: pageSize, loc: loc}
}

type TodoForm struct {
	Title     string `json:"title" form:"title" binding:"required,max=200"`
	Content   string `json:"content" form:"content"`
	StartTime string `json:"start_time" form:"start_time"`
	EndTime   string `json:"end_time" form:"end_time"`
	Status    int    `json:"status" form:"status" binding:"oneof=0 1"`
	Priority  int    `json:"priority" form:"priority" binding:"oneof=0 1 2"`
}

type TodoDetailForm struct {
	Content string `json:"content" form:"content" binding:"required"`
	Status  int    `json:"status" form:"status" binding:"oneof=0 1"`
}

func (s *TodoService) List(ctx context.Context, actor Actor, page int) (*PageResult[models.Todo], error) {
	p := repository.NewPage(page, s.pageSize, 10)
	todos, total, err := s.todos.ListByUser(ctx, actor.UserID, p)
	if err != nil {
		return nil, fromRepo(err, "list todos")
	}
	return newPageResult(todos, total, p), nil
}

func (s *TodoService) Create(ctx context.Context, actor Actor, form TodoForm) (*models.Todo, error) {
	todo := &models.Todo{UserID: actor.UserID}
	if err := s.apply(todo, form); err != nil {
		return nil, err
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, fromRepo(err, "create todo")
	}
	return todo, nil
}

// Get returns the todo with its details.
func (s *TodoService) Get(ctx context.Context, actor Actor, id uint) (*models.Todo, error) {
	todo, err := s.todos.FindWithDetails(ctx, id)
	if err := authorize(todo, err, actor, "get todo"); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Edit(ctx context.Context, actor Actor, id uint, form TodoForm) (*models.Todo, error) {
	todo, err := s.owned(ctx, actor, id, "edit todo")
	if err != nil {
		return nil, err
	}
	if err := s.apply(todo, form); err != nil {
		return nil, err
	}
	if err := s.todos.Save(ctx, todo); err != nil {
		return nil, fromRepo(err, "edit todo")
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, actor Actor, id uint) error {
	if _, err := s.owned(ctx, actor, id, "delete todo"); err != nil {
		return err
	}
	return fromRepo(s.todos.Delete(ctx, id), "delete todo")
}

// Toggle flips the todo between open and done.
func (s *TodoService) Toggle(ctx context.Context, actor Actor, id uint) (*models.Todo, error) {
	todo, err := s.owned(ctx, actor, id, "toggle todo")
	if err != nil {
		return nil, err
	}
	if todo.Status == models.TodoDone {
		todo.Status = models.TodoOpen
	} else {
		todo.Status = models.TodoDone
	}
	if err := s.todos.Save(ctx, todo); err != nil {
		return nil, fromRepo(err, "toggle todo")
	}
	return todo, nil
}

// ---------- 子任务 ----------

func (s *TodoService) AddDetail(ctx context.Context, actor Actor, todoID uint, form TodoDetailForm) (*models.TodoDetail, error) {
	if _, err := s.owned(ctx, actor, todoID, "add todo detail"); err != nil {
		return nil, err
	}
	form.Content = strings.TrimSpace(form.Content)
	if fields := util.ValidateStruct(form); fields != nil {
		return nil, NewValidationError("参数错误", fields)
	}
	d := &models.TodoDetail{TodoID: todoID, Content: form.Content, Status: form.Status}
	if err := s.todos.AddDetail(ctx, d); err != nil {
		return nil, fromRepo(err, "add todo detail")
	}
	return d, nil
}

func (s *TodoService) EditDetail(ctx context.Context, actor Actor, todoID, detailID uint, form TodoDetailForm) (*models.TodoDetail, error) {
	if _, err := s.owned(ctx, actor, todoID, "edit todo detail"); err != nil {
		return nil, err
	}
	form.Content = strings.TrimSpace(form.Content)
	if fields := util.ValidateStruct(form); fields != nil {
		return nil, NewValidationError("参数错误", fields)
	}
	d, err := s.todos.FindDetail(ctx, todoID, detailID)
	if err != nil {
		return nil, fromRepo(err, "edit todo detail")
	}
	d.Content = form.Content
	d.Status = form.Status
	if err := s.todos.SaveDetail(ctx, d); err != nil {
		return nil, fromRepo(err, "edit todo detail")
	}
	return d, nil
}

func (s *TodoService) DeleteDetail(ctx context.Context, actor Actor, todoID, detailID uint) error {
	if _, err := s.owned(ctx, actor, todoID, "delete todo detail"); err != nil {
		return err
	}
	return fromRepo(s.todos.DeleteDetail(ctx, todoID, detailID), "delete todo detail")
}

func (s *TodoService) owned(ctx context.Context, actor Actor, id uint, op string) (*models.Todo, error) {
	todo, err := s.todos.Find(ctx, id)
	if err := authorize(todo, err, actor, op); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) apply(todo *models.Todo, form TodoForm) error {
	form.Title = strings.TrimSpace(form.Title)
	if fields := util.ValidateStruct(form); fields != nil {
		return NewValidationError("参数错误", fields)
	}
	start, err := s.optionalTime(form.StartTime)
	if err != nil {
		return invalid("start_time", "时间格式应为 "+util.DateTimeLayout)
	}
	end, err := s.optionalTime(form.EndTime)
	if err != nil {
		return invalid("end_time", "时间格式应为 "+util.DateTimeLayout)
	}
	if start != nil && end != nil && end.Before(*start) {
		return invalid("end_time", "结束时间不能早于开始时间")
	}

	todo.Title = form.Title
	todo.Content = form.Content
	todo.StartTime = start
	todo.EndTime = end
	todo.Status = form.Status
	todo.Priority = form.Priority
	return nil
}

func (s *TodoService) optionalTime(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := util.ParseDateTime(raw, s.loc)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}
