package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate 把内嵌的 SQL 迁移补齐到最新版本
// 库已是最新时直接返回，不算错误
func Migrate(db *sql.DB, logger *zap.Logger) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("读取内嵌迁移: %w", err)
	}

	drv, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("构造 postgres 迁移驱动: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", drv)
	if err != nil {
		return fmt.Errorf("装配迁移器: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("应用迁移: %w", err)
	}

	version, dirty, _ := m.Version()
	if dirty {
		// dirty 说明某次迁移中途失败，留给运维处理，这里只告警
		logger.Warn("迁移记录为 dirty，需要人工修复", zap.Uint("version", version))
		return nil
	}
	logger.Info("表结构已就绪", zap.Uint("version", version))
	return nil
}
