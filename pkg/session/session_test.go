package session

import (
	"errors"
	"strings"
	"testing"
)

func newTestCodec() *Codec {
	return NewCodec("test-secret-key-for-unit-testing-2026")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := newTestCodec()

	token, err := c.Encode(42)
	if err != nil {
		t.Fatalf("Encode 失败: %v", err)
	}
	if token == "" {
		t.Fatal("令牌不应为空")
	}

	userID, err := c.Decode(token)
	if err != nil {
		t.Fatalf("Decode 失败: %v", err)
	}
	if userID != 42 {
		t.Errorf("期望 userID=42，实际=%d", userID)
	}
}

func TestDecodeTamperedToken(t *testing.T) {
	c := newTestCodec()

	token, err := c.Encode(7)
	if err != nil {
		t.Fatalf("Encode 失败: %v", err)
	}

	// 逐位篡改：任何一个字符被改动都必须解码失败
	// 末位字符只承载签名的高 2 位，Base64 尾部比特可能混叠，跳过
	for i := 0; i < len(token)-1; i++ {
		if token[i] == '.' {
			continue
		}
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		if _, err := c.Decode(string(mutated)); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("篡改第 %d 位后期望 ErrTokenInvalid，实际=%v", i, err)
		}
	}
}

func TestDecodeTruncatedToken(t *testing.T) {
	c := newTestCodec()

	token, _ := c.Encode(7)
	truncated := token[:len(token)/2]

	if _, err := c.Decode(truncated); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("截断令牌期望 ErrTokenInvalid，实际=%v", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	c := newTestCodec()

	for _, tok := range []string{"", "abc", "a.b.c", strings.Repeat("x", 512)} {
		if _, err := c.Decode(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("非法令牌 %q 期望 ErrTokenInvalid，实际=%v", tok, err)
		}
	}
}

func TestDecodeWrongSecret(t *testing.T) {
	c1 := NewCodec("secret-one-aaaaaaaaaaaa")
	c2 := NewCodec("secret-two-bbbbbbbbbbbb")

	token, err := c1.Encode(9)
	if err != nil {
		t.Fatalf("Encode 失败: %v", err)
	}

	if _, err := c2.Decode(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("密钥不匹配期望 ErrTokenInvalid，实际=%v", err)
	}
}

func TestTokenIsURLSafe(t *testing.T) {
	c := newTestCodec()

	token, err := c.Encode(123456)
	if err != nil {
		t.Fatalf("Encode 失败: %v", err)
	}

	for _, ch := range []string{" ", "+", "/", "=", ";", "\n"} {
		if strings.Contains(token, ch) {
			t.Errorf("令牌包含非 URL-safe 字符 %q", ch)
		}
	}
}
