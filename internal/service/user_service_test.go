package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"memberbook/internal/dto"
	"memberbook/internal/model"
	"memberbook/internal/repository"
	"memberbook/pkg/password"
)

func newTestUserService(t *testing.T) (UserService, *mockUserRepo) {
	t.Helper()
	mock := newMockUserRepo()
	repo := &repository.Repository{User: mock}
	return NewUserService(repo, zap.NewNop()), mock
}

func seedUser(t *testing.T, mock *mockUserRepo, email, plainPassword string) *model.User {
	t.Helper()
	hash, err := password.Hash(plainPassword)
	if err != nil {
		t.Fatalf("哈希失败: %v", err)
	}
	u := &model.User{
		FirstName:    "三",
		LastName:     "张",
		Gender:       "male",
		Nationality:  "CN",
		Organization: "Acme",
		Position:     "Engineer",
		DOB:          time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Email:        email,
		Password:     hash,
	}
	if err := mock.Create(context.Background(), u); err != nil {
		t.Fatalf("预置用户失败: %v", err)
	}
	return u
}

func TestUpdateProfile(t *testing.T) {
	svc, mock := newTestUserService(t)
	u := seedUser(t, mock, "a@x.com", "p1")

	form := &dto.EditProfileForm{
		FirstName:    "四",
		LastName:     "李",
		Organization: "Globex",
		Position:     "Manager",
	}
	updated, err := svc.UpdateProfile(context.Background(), u.ID, form)
	if err != nil {
		t.Fatalf("UpdateProfile 失败: %v", err)
	}

	if updated.FirstName != "四" || updated.LastName != "李" ||
		updated.Organization != "Globex" || updated.Position != "Manager" {
		t.Errorf("资料字段未按预期覆写: %+v", updated)
	}
	// 资料更新不得触碰密码哈希
	if !password.Verify("p1", updated.Password) {
		t.Error("资料更新后密码哈希不应改变")
	}
	// 性别、国籍、邮箱等不在编辑范围内
	if updated.Gender != "male" || updated.Email != "a@x.com" {
		t.Errorf("不可编辑字段被意外修改: %+v", updated)
	}
}

func TestUpdateProfileUnknownID(t *testing.T) {
	svc, _ := newTestUserService(t)

	form := &dto.EditProfileForm{FirstName: "四", LastName: "李", Organization: "G", Position: "M"}
	if _, err := svc.UpdateProfile(context.Background(), 999, form); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际=%v", err)
	}
}

func TestChangePasswordSuccess(t *testing.T) {
	svc, mock := newTestUserService(t)
	u := seedUser(t, mock, "a@x.com", "old-pass")

	if err := svc.ChangePassword(context.Background(), u, "old-pass", "new-pass", "new-pass"); err != nil {
		t.Fatalf("ChangePassword 失败: %v", err)
	}

	stored := mock.users[u.ID]
	if !password.Verify("new-pass", stored.Password) {
		t.Error("新密码应验证通过")
	}
	if password.Verify("old-pass", stored.Password) {
		t.Error("旧密码不应再验证通过")
	}
}

func TestChangePasswordViolations(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		new     string
		confirm string
		wantErr error
	}{
		{"旧密码错误", "wrong", "new-pass", "new-pass", ErrOldPasswordWrong},
		{"新密码为空", "old-pass", "", "", ErrNewPasswordEmpty},
		{"两次输入不一致", "old-pass", "new-pass", "other", ErrNewPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mock := newTestUserService(t)
			u := seedUser(t, mock, "a@x.com", "old-pass")

			err := svc.ChangePassword(context.Background(), u, tt.old, tt.new, tt.confirm)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("期望 %v，实际=%v", tt.wantErr, err)
			}
			// 任何违规都不得改动已存哈希
			if !password.Verify("old-pass", mock.users[u.ID].Password) {
				t.Error("校验失败时密码哈希必须保持原样")
			}
		})
	}
}

func TestListOrder(t *testing.T) {
	svc, mock := newTestUserService(t)
	first := seedUser(t, mock, "a@x.com", "p1")
	second := seedUser(t, mock, "b@x.com", "p2")

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("期望 2 个用户，实际=%d", len(users))
	}
	if users[0].ID != first.ID || users[1].ID != second.ID {
		t.Error("目录应按 id 升序返回")
	}
}

func TestExportDirectory(t *testing.T) {
	svc, mock := newTestUserService(t)
	seedUser(t, mock, "a@x.com", "p1")

	buf, err := svc.ExportDirectory(context.Background())
	if err != nil {
		t.Fatalf("ExportDirectory 失败: %v", err)
	}

	// 返回的是序列化好的工作簿，重新打开验证内容
	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容不是合法的 xlsx: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Members", "I2")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if got != "a@x.com" {
		t.Errorf("期望 I2=a@x.com，实际=%q", got)
	}

	// 导出不得包含密码列
	rows, err := f.GetRows("Members")
	if err != nil {
		t.Fatalf("读取工作表失败: %v", err)
	}
	for _, cell := range rows[0] {
		if cell == "密码" || cell == "password" {
			t.Error("导出不应包含密码列")
		}
	}
}
