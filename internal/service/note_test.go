package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_CRUDWithType(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")

	typ, err := f.svc.Notes.CreateType(f.ctx, NoteTypeForm{Name: "读书"})
	require.NoError(t, err)
	types, err := f.svc.Notes.Types(f.ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)

	note, err := f.svc.Notes.Create(f.ctx, alice, NoteForm{Title: "三体", Content: "...", TypeID: typ.ID})
	require.NoError(t, err)
	require.NotNil(t, note.TypeID)

	_, err = f.svc.Notes.Create(f.ctx, alice, NoteForm{Title: "x", TypeID: 999})
	requireCode(t, err, ErrorCodeValidation)

	list, err := f.svc.Notes.List(f.ctx, alice, 1)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.NotNil(t, list.Items[0].Type)
	assert.Equal(t, "读书", list.Items[0].Type.Name)

	edited, err := f.svc.Notes.Edit(f.ctx, alice, note.ID, NoteForm{Title: "三体 II"})
	require.NoError(t, err)
	assert.Nil(t, edited.TypeID)

	require.NoError(t, f.svc.Notes.Delete(f.ctx, alice, note.ID))
	_, err = f.svc.Notes.Get(f.ctx, alice, note.ID)
	requireCode(t, err, ErrorCodeNotFound)
}

// TestNote_Attrs 测试笔记的键值属性
func TestNote_Attrs(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	note, err := f.svc.Notes.Create(f.ctx, alice, NoteForm{Title: "三体"})
	require.NoError(t, err)

	author, err := f.svc.Notes.AddAttr(f.ctx, alice, note.ID, NoteAttrForm{Key: "作者", Value: "刘慈欣"})
	require.NoError(t, err)
	_, err = f.svc.Notes.AddAttr(f.ctx, alice, note.ID, NoteAttrForm{Key: "评分", Value: "9"})
	require.NoError(t, err)
	_, err = f.svc.Notes.AddAttr(f.ctx, alice, note.ID, NoteAttrForm{Key: ""})
	requireCode(t, err, ErrorCodeValidation)

	edited, err := f.svc.Notes.EditAttr(f.ctx, alice, note.ID, author.ID, NoteAttrForm{Key: "作者", Value: "大刘"})
	require.NoError(t, err)
	assert.Equal(t, "大刘", edited.Value)

	got, err := f.svc.Notes.Get(f.ctx, alice, note.ID)
	require.NoError(t, err)
	require.Len(t, got.Attrs, 2)
	assert.Equal(t, "大刘", got.Attrs[0].Value)

	require.NoError(t, f.svc.Notes.DeleteAttr(f.ctx, alice, note.ID, author.ID))
	got, err = f.svc.Notes.Get(f.ctx, alice, note.ID)
	require.NoError(t, err)
	assert.Len(t, got.Attrs, 1)

	// 属性只能通过所属笔记访问
	other, err := f.svc.Notes.Create(f.ctx, alice, NoteForm{Title: "其他"})
	require.NoError(t, err)
	_, err = f.svc.Notes.EditAttr(f.ctx, alice, other.ID, got.Attrs[0].ID, NoteAttrForm{Key: "k"})
	requireCode(t, err, ErrorCodeNotFound)
}

func TestNote_CrossUserForbidden(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	note, err := f.svc.Notes.Create(f.ctx, alice, NoteForm{Title: "私密"})
	require.NoError(t, err)
	attr, err := f.svc.Notes.AddAttr(f.ctx, alice, note.ID, NoteAttrForm{Key: "k", Value: "v"})
	require.NoError(t, err)

	_, err = f.svc.Notes.Get(f.ctx, bob, note.ID)
	requireCode(t, err, ErrorCodeForbidden)
	_, err = f.svc.Notes.Edit(f.ctx, bob, note.ID, NoteForm{Title: "偷改"})
	requireCode(t, err, ErrorCodeForbidden)
	requireCode(t, f.svc.Notes.Delete(f.ctx, bob, note.ID), ErrorCodeForbidden)
	_, err = f.svc.Notes.EditAttr(f.ctx, bob, note.ID, attr.ID, NoteAttrForm{Key: "k", Value: "x"})
	requireCode(t, err, ErrorCodeForbidden)
	requireCode(t, f.svc.Notes.DeleteAttr(f.ctx, bob, note.ID, attr.ID), ErrorCodeForbidden)

	got, err := f.svc.Notes.Get(f.ctx, alice, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "私密", got.Title)
	require.Len(t, got.Attrs, 1)
	assert.Equal(t, "v", got.Attrs[0].Value)
}
