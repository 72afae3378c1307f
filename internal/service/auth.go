package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"daily-app/internal/models"
	"daily-app/internal/repository"
	"daily-app/internal/util"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthConfig carries the token and password policy of AuthService.
type AuthConfig struct {
	Secret       string
	Issuer       string
	TokenTTL     time.Duration
	RememberTTL  time.Duration
	BcryptCost   int
	MaxAttempts  int
	LockDuration time.Duration
}

// AuthService 负责注册、登录、会话校验和个人资料
type AuthService struct {
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	cfg      AuthConfig
	now      func() time.Time
}

func NewAuthService(users *repository.UserRepository, sessions *repository.SessionRepository, cfg AuthConfig) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.RememberTTL <= 0 {
		cfg.RememberTTL = 7 * 24 * time.Hour
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 5
	}
	if cfg.LockDuration <= 0 {
		cfg.LockDuration = 10 * time.Minute
	}
	return &AuthService{users: users, sessions: sessions, cfg: cfg, now: time.Now}
}

// ---------- 注册 ----------

type RegisterForm struct {
	Username  string `json:"username" form:"username" binding:"required,max=64"`
	Email     string `json:"email" form:"email" binding:"required,email,max=128"`
	Password  string `json:"password" form:"password" binding:"required,min=6,max=32"`
	Password2 string `json:"password2" form:"password2" binding:"required,eqfield=Password"`
}

// Register creates the user and its profile in one transaction.
func (s *AuthService) Register(ctx context.Context, form RegisterForm) (*models.User, error) {
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)
	if fields := util.ValidateStruct(form); fields != nil {
		return nil, NewValidationError("参数错误", fields)
	}

	dup := map[string]string{}
	taken, err := s.users.UsernameTaken(ctx, form.Username)
	if err != nil {
		return nil, fromRepo(err, "register")
	}
	if taken {
		dup["username"] = "用户名已被使用"
	}
	taken, err = s.users.EmailTaken(ctx, form.Email)
	if err != nil {
		return nil, fromRepo(err, "register")
	}
	if taken {
		dup["email"] = "邮箱已被注册"
	}
	if len(dup) > 0 {
		return nil, NewDuplicateError(dup)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.cfg.BcryptCost)
	if err != nil {
		logrus.WithError(err).Error("hash password")
		return nil, NewInternalError("密码加密失败")
	}

	user := &models.User{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: string(hash),
	}
	profile := &models.UserProfile{Nickname: form.Username}
	if err := s.users.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			// lost a race with a concurrent registration
			return nil, NewDuplicateError(map[string]string{"username": "用户名或邮箱已被使用"})
		}
		return nil, fromRepo(err, "register")
	}
	user.Profile = profile

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user registered")
	return user, nil
}

// ---------- 登录 ----------

type LoginForm struct {
	Username string `json:"username" form:"username" binding:"required,max=64"`
	Password string `json:"password" form:"password" binding:"required"`
	Remember bool   `json:"remember" form:"remember"`
}

// ClientInfo describes where a login came from.
type ClientInfo struct {
	IP        string
	UserAgent string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// Login checks the password, applies the lockout policy and opens a session.
func (s *AuthService) Login(ctx context.Context, form LoginForm, client ClientInfo) (*LoginResult, error) {
	form.Username = strings.TrimSpace(form.Username)
	if fields := util.ValidateStruct(form); fields != nil {
		return nil, NewValidationError("参数错误", fields)
	}

	user, err := s.users.FindByUsername(ctx, form.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewUnauthorizedError("用户名或密码错误")
		}
		return nil, fromRepo(err, "login")
	}

	now := s.now()
	if user.LockedUntil != nil && now.Before(*user.LockedUntil) {
		return nil, NewUnauthorizedError("账户已锁定，请稍后再试")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		// 密码错误：递增失败次数，达到上限则锁定
		user.FailedLoginAttempts++
		if user.FailedLoginAttempts >= s.cfg.MaxAttempts {
			lockUntil := now.Add(s.cfg.LockDuration)
			user.LockedUntil = &lockUntil
			user.FailedLoginAttempts = 0
			logrus.WithField("user_id", user.ID).Warn("account locked after repeated login failures")
		}
		if err := s.users.SaveLoginState(ctx, user); err != nil {
			logrus.WithError(err).Error("save failed login attempt")
		}
		return nil, NewUnauthorizedError("用户名或密码错误")
	}

	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLoginAt = &now
	user.LastLoginIP = client.IP
	if err := s.users.SaveLoginState(ctx, user); err != nil {
		return nil, fromRepo(err, "login")
	}

	ttl := s.cfg.TokenTTL
	if form.Remember {
		ttl = s.cfg.RememberTTL
	}
	sess := &models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(ttl),
		IP:        client.IP,
		UserAgent: truncate(client.UserAgent, 255),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fromRepo(err, "login")
	}

	token, err := util.GenerateToken(s.cfg.Secret, s.cfg.Issuer, user.ID, sess.ID, ttl)
	if err != nil {
		logrus.WithError(err).Error("sign token")
		return nil, NewInternalError("生成 token 失败")
	}
	return &LoginResult{Token: token, ExpiresAt: sess.ExpiresAt, User: user}, nil
}

// Authenticate resolves a token into the Actor of its live session.
func (s *AuthService) Authenticate(ctx context.Context, token string) (Actor, error) {
	claims, err := util.ParseToken(s.cfg.Secret, token)
	if err != nil {
		return Actor{}, NewUnauthorizedError("登录已失效，请重新登录")
	}
	sess, err := s.sessions.Find(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Actor{}, NewUnauthorizedError("登录已失效，请重新登录")
		}
		return Actor{}, fromRepo(err, "authenticate")
	}
	if !sess.Active(s.now()) || sess.UserID != claims.UserID {
		return Actor{}, NewUnauthorizedError("登录已失效，请重新登录")
	}
	user, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Actor{}, NewUnauthorizedError("用户不存在")
		}
		return Actor{}, fromRepo(err, "authenticate")
	}
	return Actor{UserID: user.ID, Username: user.Username, SessionID: sess.ID}, nil
}

// Logout revokes the actor's current session.
func (s *AuthService) Logout(ctx context.Context, actor Actor) error {
	if actor.SessionID == "" {
		return nil
	}
	return fromRepo(s.sessions.Revoke(ctx, actor.SessionID), "logout")
}

// ---------- 个人资料 ----------

// Me returns the actor's user row with its profile.
func (s *AuthService) Me(ctx context.Context, actor Actor) (*models.User, error) {
	user, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, fromRepo(err, "me")
	}
	profile, err := s.users.FindProfile(ctx, actor.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fromRepo(err, "me")
	}
	user.Profile = profile
	return user, nil
}

type ProfileForm struct {
	Nickname string `json:"nickname" form:"nickname" binding:"max=64"`
	Avatar   string `json:"avatar" form:"avatar" binding:"max=200"`
	Bio      string `json:"bio" form:"bio" binding:"max=255"`
}

func (s *AuthService) UpdateProfile(ctx context.Context, actor Actor, form ProfileForm) (*models.UserProfile, error) {
	form.Nickname = strings.TrimSpace(form.Nickname)
	if fields := util.ValidateStruct(form); fields != nil {
		return nil, NewValidationError("参数错误", fields)
	}
	profile, err := s.users.FindProfile(ctx, actor.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fromRepo(err, "update profile")
		}
		profile = &models.UserProfile{UserID: actor.UserID}
	}
	profile.Nickname = form.Nickname
	profile.Avatar = form.Avatar
	profile.Bio = form.Bio
	if err := s.users.SaveProfile(ctx, profile); err != nil {
		return nil, fromRepo(err, "update profile")
	}
	return profile, nil
}

type ChangePasswordForm struct {
	OldPassword string `json:"old_password" form:"old_password" binding:"required"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required,min=6,max=32"`
}

// ChangePassword replaces the password hash and signs out every other session.
func (s *AuthService) ChangePassword(ctx context.Context, actor Actor, form ChangePasswordForm) error {
	if fields := util.ValidateStruct(form); fields != nil {
		return NewValidationError("参数错误", fields)
	}
	user, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return fromRepo(err, "change password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.OldPassword)); err != nil {
		return invalid("old_password", "原密码错误")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(form.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		logrus.WithError(err).Error("hash password")
		return NewInternalError("密码加密失败")
	}
	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fromRepo(err, "change password")
	}
	return fromRepo(s.sessions.RevokeOthers(ctx, user.ID, actor.SessionID), "change password")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
