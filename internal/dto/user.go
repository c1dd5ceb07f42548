package dto

// ── 用户模块表单 ──

// EditProfileForm 资料编辑表单
// 三个密码字段都留空表示只改资料；任一非空则走改密码流程
type EditProfileForm struct {
	FirstName    string `form:"first_name"   binding:"required"`
	LastName     string `form:"last_name"    binding:"required"`
	Organization string `form:"organization" binding:"required"`
	Position     string `form:"position"     binding:"required"`

	OldPassword     string `form:"old_password"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}

// WantsPasswordChange 是否请求了密码修改
func (f *EditProfileForm) WantsPasswordChange() bool {
	return f.OldPassword != "" || f.NewPassword != "" || f.ConfirmPassword != ""
}
