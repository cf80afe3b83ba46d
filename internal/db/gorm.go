package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

// PostgresDB exposes the handful of single-statement primitives the
// repositories are built from. Every mutating call is one SQL statement, so
// concurrent callers never overwrite each other's rows.
type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any, preloads ...string) error {
	tx := f.DB.WithContext(ctx)
	for _, preload := range preloads {
		tx = tx.Preload(preload)
	}

	query := fmt.Sprintf("%s = ?", column)
	err := tx.Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) DeleteWhere(ctx context.Context, model any, query string, args ...any) (int64, error) {
	tx := f.DB.WithContext(ctx).Where(query, args...).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("delete records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) UpdateWhere(ctx context.Context, model any, column string, value any, query string, args ...any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where(query, args...).Update(column, value)
	if tx.Error != nil {
		return 0, fmt.Errorf("update %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
