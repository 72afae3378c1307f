package util

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("secret", "daily-app", 42, "sess-1", time.Hour)
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("解析 token 失败: %v", err)
	}
	if claims.UserID != 42 || claims.ID != "sess-1" || claims.Subject != "42" || claims.Issuer != "daily-app" {
		t.Errorf("claims 不匹配: %+v", claims)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret", "daily-app", 1, "sess", time.Hour)
	if _, err := ParseToken("other", token); err == nil {
		t.Error("错误的密钥不应通过验证")
	}
}

func TestParseToken_Expired(t *testing.T) {
	// ttl <= 0 falls back to 24h
	token, _ := GenerateToken("secret", "daily-app", 1, "sess", -time.Hour)
	if _, err := ParseToken("secret", token); err != nil {
		t.Fatalf("默认有效期的 token 应有效: %v", err)
	}

	short, _ := GenerateToken("secret", "daily-app", 1, "sess", time.Nanosecond)
	time.Sleep(1100 * time.Millisecond)
	if _, err := ParseToken("secret", short); err == nil {
		t.Error("过期 token 不应通过验证")
	}
}

func TestParseToken_MissingSessionID(t *testing.T) {
	token, _ := GenerateToken("secret", "daily-app", 1, "", time.Hour)
	if _, err := ParseToken("secret", token); err == nil {
		t.Error("缺少会话 ID 的 token 不应通过验证")
	}
}
