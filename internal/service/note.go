package service

import (
	"context"
	"errors"
	"strings"

	"daily-app/internal/models"
	"daily-app/internal/repository"
	"daily-app/internal/util"
)

type NoteService struct {
	notes    *repository.NoteRepository
	pageSize int
}

func NewNoteService(notes *repository.NoteRepository, pageSize int) *NoteService {
	return &NoteService{notes: notes, pageSize: pageSize}
}

// NoteForm: TypeID 0 leaves the note untyped.
type NoteForm struct {
	Title   string `json:"title" form:"title" binding:"required,max=200"`
	Content string `json:"content" form:"content"`
	TypeID  uint   `json:"type_id" form:"type_id"`
}

type NoteAttrForm struct {
	Key   string `json:"key" form:"key" binding:"required,max=50"`
	Value string `json:"value" form:"value"`
}

type NoteTypeForm struct {
	Name string `json:"name" form:"name" binding:"required,max=50"`
}

func (s *NoteService) List(ctx context.Context, actor Actor, page int) (*PageResult[models.Note], error) {
	p := repository.NewPage(page, s.pageSize, 10)
	notes, total, err := s.notes.ListByUser(ctx, actor.UserID, p)
	if err != nil {
		return nil, fromRepo(err, "list notes")
	}
	return newPageResult(notes, total, p), nil
}

func (s *NoteService) Create(ctx context.Context, actor Actor, form NoteForm) (*models.Note, error) {
	note := &models.Note{UserID: actor.UserID}
	if err := s.apply(ctx, note, form); err != nil {
		return nil, err
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fromRepo(err, "create note")
	}
	return note, nil
}

// Get returns the note with its type and attributes.
func (s *NoteService) Get(ctx context.Context, actor Actor, id uint) (*models.Note, error) {
	note, err := s.notes.FindWithAttrs(ctx, id)
	if err := authorize(note, err, actor, "get note"); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Edit(ctx context.Context, actor Actor, id uint, form NoteForm) (*models.Note, error) {
	note, err := s.owned(ctx, actor, id, "edit note")
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, note, form); err != nil {
		return nil, err
	}
	note.Type = nil
	if err := s.notes.Save(ctx, note); err != nil {
		return nil, fromRepo(err, "edit note")
	}
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, actor Actor, id uint) error {
	if _, err := s.owned(ctx, actor, id, "delete note"); err != nil {
		return err
	}
	return fromRepo(s.notes.Delete(ctx, id), "delete note")
}

// ---------- 属性 ----------

func (s *NoteService) AddAttr(ctx context.Context, actor Actor, noteID uint, form NoteAttrForm) (*models.NoteAttr, error) {
	if _, err := s.owned(ctx, actor, noteID, "add note attr"); err != nil {
		return nil, err
	}
	form.Key = strings.TrimSpace(form.Key)
	if fields := util.ValidateStruct(form); fields != nil {
		return nil, NewValidationError("参数错误", fields)
	}
	attr := &models.NoteAttr{NoteID: noteID, Key: form.Key, Value: form.Value}
	if err := s.notes.AddAttr(ctx, attr); err != nil {
		return nil, fromRepo(err, "add note attr")
	}
	return attr, nil
}

func (s *NoteService) EditAttr(ctx context.Context, actor Actor, noteID, attrID uint, form NoteAttrForm) (*models.NoteAttr, error) {
	if _, err := s.owned(ctx, actor, noteID, "edit note attr"); err != nil {
		return nil, err
	}
	form.Key = strings.TrimSpace(form.Key)
	if fields := util.ValidateStruct(form); fields != nil {
		return nil, NewValidationError("参数错误", fields)
	}
	attr, err := s.notes.FindAttr(ctx, noteID, attrID)
	if err != nil {
		return nil, fromRepo(err, "edit note attr")
	}
	attr.Key = form.Key
	attr.Value = form.Value
	if err := s.notes.SaveAttr(ctx, attr); err != nil {
		return nil, fromRepo(err, "edit note attr")
	}
	return attr, nil
}

func (s *NoteService) DeleteAttr(ctx context.Context, actor Actor, noteID, attrID uint) error {
	if _, err := s.owned(ctx, actor, noteID, "delete note attr"); err != nil {
		return err
	}
	return fromRepo(s.notes.DeleteAttr(ctx, noteID, attrID), "delete note attr")
}

// ---------- 类型 ----------

func (s *NoteService) Types(ctx context.Context) ([]models.NoteType, error) {
	types, err := s.notes.ListTypes(ctx)
	if err != nil {
		return nil, fromRepo(err, "list note types")
	}
	return types, nil
}

func (s *NoteService) CreateType(ctx context.Context, form NoteTypeForm) (*models.NoteType, error) {
	form.Name = strings.TrimSpace(form.Name)
	if fields := util.ValidateStruct(form); fields != nil {
		return nil, NewValidationError("参数错误", fields)
	}
	t := &models.NoteType{Name: form.Name}
	if err := s.notes.CreateType(ctx, t); err != nil {
		return nil, fromRepo(err, "create note type")
	}
	return t, nil
}

func (s *NoteService) owned(ctx context.Context, actor Actor, id uint, op string) (*models.Note, error) {
	note, err := s.notes.Find(ctx, id)
	if err := authorize(note, err, actor, op); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) apply(ctx context.Context, note *models.Note, form NoteForm) error {
	form.Title = strings.TrimSpace(form.Title)
	if fields := util.ValidateStruct(form); fields != nil {
		return NewValidationError("参数错误", fields)
	}
	var typeID *uint
	if form.TypeID != 0 {
		if _, err := s.notes.FindType(ctx, form.TypeID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return invalid("type_id", "笔记类型不存在")
			}
			return fromRepo(err, "find note type")
		}
		id := form.TypeID
		typeID = &id
	}
	note.Title = form.Title
	note.Content = form.Content
	note.TypeID = typeID
	return nil
}
