package password

import "golang.org/x/crypto/bcrypt"

// Hash 对明文密码做 bcrypt 哈希（随机盐，同一明文每次结果不同）
func Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify 校验明文是否与哈希匹配
// 哈希格式非法视为不匹配，永不报错
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
