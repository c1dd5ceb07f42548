package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("p1")
	if err != nil {
		t.Fatalf("Hash 失败: %v", err)
	}
	if hash == "p1" {
		t.Fatal("哈希不应等于明文")
	}
	if !Verify("p1", hash) {
		t.Error("正确明文应当验证通过")
	}
	if Verify("wrong", hash) {
		t.Error("错误明文不应验证通过")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash 失败: %v", err)
	}
	h2, err := Hash("same-password")
	if err != nil {
		t.Fatalf("Hash 失败: %v", err)
	}

	// 随机盐：两次哈希结果不同，但都能验证同一明文
	if h1 == h2 {
		t.Error("两次哈希结果不应相同")
	}
	if !Verify("same-password", h1) || !Verify("same-password", h2) {
		t.Error("两个哈希都应验证通过同一明文")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	// 非法哈希视为不匹配，不触发 panic 也不报错
	for _, h := range []string{"", "not-a-hash", "$2a$broken"} {
		if Verify("p1", h) {
			t.Errorf("非法哈希 %q 不应验证通过", h)
		}
	}
}
