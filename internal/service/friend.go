package service

import (
	"context"
	"strings"
	"time"

	"daily-app/internal/models"
	"daily-app/internal/repository"
	"daily-app/internal/util"
)

type FriendService struct {
	friends  *repository.FriendRepository
	pageSize int
	loc      *time.Location
}

func NewFriendService(friends *repository.FriendRepository, pageSize int, loc *time.Location) *FriendService {
	if loc == nil {
		loc = time.Local
	}
	return &FriendService{friends: friends, pageSize: pageSize, loc: loc}
}

type FriendForm struct {
	Name         string `json:"name" form:"name" binding:"required,max=50"`
	Sex          int    `json:"sex" form:"sex" binding:"required,oneof=1 2"`
	BirthDate    string `json:"birth_date" form:"birth_date"` // YYYY-MM-DD，可为空
	BirthType    int    `json:"birth_type" form:"birth_type" binding:"required,oneof=1 2"`
	Avatar       string `json:"avatar" form:"avatar" binding:"max=200"`
	Phone        string `json:"phone" form:"phone" binding:"max=20"`
	QQ           string `json:"qq" form:"qq" binding:"max=20"`
	Wechat       string `json:"wechat" form:"wechat" binding:"max=50"`
	Email        string `json:"email" form:"email" binding:"omitempty,email,max=100"`
	LiveAddress  string `json:"live_address" form:"live_address" binding:"max=200"`
	Address      string `json:"address" form:"address" binding:"max=200"`
	School       string `json:"school" form:"school" binding:"max=100"`
	Disposition  string `json:"disposition" form:"disposition" binding:"max=200"`
	Remark       string `json:"remark" form:"remark"`
	Advantage    string `json:"advantage" form:"advantage"`
	Disadvantage string `json:"disadvantage" form:"disadvantage"`
}

func (s *FriendService) List(ctx context.Context, actor Actor, page int) (*PageResult[models.Friend], error) {
	p := repository.NewPage(page, s.pageSize, 10)
	friends, total, err := s.friends.ListByUser(ctx, actor.UserID, p)
	if err != nil {
		return nil, fromRepo(err, "list friends")
	}
	return newPageResult(friends, total, p), nil
}

func (s *FriendService) Create(ctx context.Context, actor Actor, form FriendForm) (*models.Friend, error) {
	friend := &models.Friend{UserID: actor.UserID}
	if err := s.apply(friend, form); err != nil {
		return nil, err
	}
	if err := s.friends.Create(ctx, friend); err != nil {
		return nil, fromRepo(err, "create friend")
	}
	return friend, nil
}

// Get returns the friend with all sub-identities.
func (s *FriendService) Get(ctx context.Context, actor Actor, id uint) (*models.Friend, error) {
	friend, err := s.friends.FindWithIdentities(ctx, id)
	if err := authorize(friend, err, actor, "get friend"); err != nil {
		return nil, err
	}
	return friend, nil
}

func (s *FriendService) Edit(ctx context.Context, actor Actor, id uint, form FriendForm) (*models.Friend, error) {
	friend, err := s.owned(ctx, actor, id, "edit friend")
	if err != nil {
		return nil, err
	}
	if err := s.apply(friend, form); err != nil {
		return nil, err
	}
	if err := s.friends.Save(ctx, friend); err != nil {
		return nil, fromRepo(err, "edit friend")
	}
	return friend, nil
}

func (s *FriendService) Delete(ctx context.Context, actor Actor, id uint) error {
	if _, err := s.owned(ctx, actor, id, "delete friend"); err != nil {
		return err
	}
	return fromRepo(s.friends.Delete(ctx, id), "delete friend")
}

// ---------- 多个联系方式 ----------

type PhoneForm struct {
	Phone string `json:"phone" form:"phone" binding:"required,max=20"`
}

type QQForm struct {
	QQ       string `json:"qq" form:"qq" binding:"required,max=20"`
	Nickname string `json:"nickname" form:"nickname" binding:"max=50"`
	Avatar   string `json:"avatar" form:"avatar" binding:"max=200"`
}

type WechatForm struct {
	Wechat   string `json:"wechat" form:"wechat" binding:"required,max=50"`
	Nickname string `json:"nickname" form:"nickname" binding:"max=50"`
	Avatar   string `json:"avatar" form:"avatar" binding:"max=200"`
}

type EmailForm struct {
	Email string `json:"email" form:"email" binding:"required,email,max=100"`
}

func (s *FriendService) AddPhone(ctx context.Context, actor Actor, friendID uint, form PhoneForm) (*models.FriendPhone, error) {
	if err := s.checkIdentity(ctx, actor, friendID, &form); err != nil {
		return nil, err
	}
	p := &models.FriendPhone{FriendID: friendID, Phone: strings.TrimSpace(form.Phone)}
	if err := s.friends.AddPhone(ctx, p); err != nil {
		return nil, fromRepo(err, "add phone")
	}
	return p, nil
}

func (s *FriendService) AddQQ(ctx context.Context, actor Actor, friendID uint, form QQForm) (*models.FriendQQ, error) {
	if err := s.checkIdentity(ctx, actor, friendID, &form); err != nil {
		return nil, err
	}
	q := &models.FriendQQ{FriendID: friendID, QQ: strings.TrimSpace(form.QQ), Nickname: form.Nickname, Avatar: form.Avatar}
	if err := s.friends.AddQQ(ctx, q); err != nil {
		return nil, fromRepo(err, "add qq")
	}
	return q, nil
}

func (s *FriendService) AddWechat(ctx context.Context, actor Actor, friendID uint, form WechatForm) (*models.FriendWechat, error) {
	if err := s.checkIdentity(ctx, actor, friendID, &form); err != nil {
		return nil, err
	}
	w := &models.FriendWechat{FriendID: friendID, Wechat: strings.TrimSpace(form.Wechat), Nickname: form.Nickname, Avatar: form.Avatar}
	if err := s.friends.AddWechat(ctx, w); err != nil {
		return nil, fromRepo(err, "add wechat")
	}
	return w, nil
}

func (s *FriendService) AddEmail(ctx context.Context, actor Actor, friendID uint, form EmailForm) (*models.FriendEmail, error) {
	form.Email = strings.TrimSpace(form.Email)
	if err := s.checkIdentity(ctx, actor, friendID, &form); err != nil {
		return nil, err
	}
	e := &models.FriendEmail{FriendID: friendID, Email: form.Email}
	if err := s.friends.AddEmail(ctx, e); err != nil {
		return nil, fromRepo(err, "add email")
	}
	return e, nil
}

// DeleteIdentity removes one phone/qq/wechat/email of the actor's friend.
// kind is one of repository.IdentityPhone, IdentityQQ, IdentityWechat, IdentityEmail.
func (s *FriendService) DeleteIdentity(ctx context.Context, actor Actor, friendID uint, kind string, id uint) error {
	if _, err := s.owned(ctx, actor, friendID, "delete identity"); err != nil {
		return err
	}
	return fromRepo(s.friends.DeleteIdentity(ctx, kind, friendID, id), "delete identity")
}

func (s *FriendService) checkIdentity(ctx context.Context, actor Actor, friendID uint, form interface{}) error {
	if _, err := s.owned(ctx, actor, friendID, "add identity"); err != nil {
		return err
	}
	if fields := util.ValidateStruct(form); fields != nil {
		return NewValidationError("参数错误", fields)
	}
	return nil
}

func (s *FriendService) owned(ctx context.Context, actor Actor, id uint, op string) (*models.Friend, error) {
	friend, err := s.friends.Find(ctx, id)
	if err := authorize(friend, err, actor, op); err != nil {
		return nil, err
	}
	return friend, nil
}

func (s *FriendService) apply(friend *models.Friend, form FriendForm) error {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	if fields := util.ValidateStruct(form); fields != nil {
		return NewValidationError("参数错误", fields)
	}
	var birth *time.Time
	if raw := strings.TrimSpace(form.BirthDate); raw != "" {
		if err := util.ValidateDate(raw); err != nil {
			return invalid("birth_date", "日期格式应为 YYYY-MM-DD")
		}
		t, _ := time.ParseInLocation(dateLayout, raw, s.loc)
		birth = &t
	}

	friend.Name = form.Name
	friend.Sex = form.Sex
	friend.BirthDate = birth
	friend.BirthType = form.BirthType
	friend.Avatar = form.Avatar
	friend.Phone = form.Phone
	friend.QQ = form.QQ
	friend.Wechat = form.Wechat
	friend.Email = form.Email
	friend.LiveAddress = form.LiveAddress
	friend.Address = form.Address
	friend.School = form.School
	friend.Disposition = form.Disposition
	friend.Remark = form.Remark
	friend.Advantage = form.Advantage
	friend.Disadvantage = form.Disadvantage
	return nil
}
