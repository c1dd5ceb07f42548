package dto

// ── 认证模块表单 ──

// RegisterForm 注册表单
type RegisterForm struct {
	FirstName       string `form:"first_name"       binding:"required"`
	LastName        string `form:"last_name"        binding:"required"`
	Gender          string `form:"gender"           binding:"required"`
	Nationality     string `form:"nationality"      binding:"required"`
	Organization    string `form:"organization"     binding:"required"`
	Position        string `form:"position"         binding:"required"`
	DOB             string `form:"dob"              binding:"required"` // YYYY-MM-DD
	Email           string `form:"email"            binding:"required,email"`
	Password        string `form:"password"         binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
}

// LoginForm 登录表单
type LoginForm struct {
	Email    string `form:"email"    binding:"required"`
	Password string `form:"password" binding:"required"`
}
