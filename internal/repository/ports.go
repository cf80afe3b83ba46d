package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Insert(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any, preloads ...string) error
	DeleteWhere(ctx context.Context, model any, query string, args ...any) (int64, error)
	UpdateWhere(ctx context.Context, model any, column string, value any, query string, args ...any) (int64, error)
}
