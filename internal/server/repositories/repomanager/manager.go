package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/todocards/internal/dbx"
	"github.com/dmitrijs2005/todocards/internal/server/repositories/cards"
	"github.com/dmitrijs2005/todocards/internal/server/repositories/labels"
	"github.com/dmitrijs2005/todocards/internal/server/repositories/todos"
	"github.com/dmitrijs2005/todocards/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a plain connection or
// to a transaction, so services can pick the scope per operation.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Cards(db dbx.DBTX) cards.Repository
	Todos(db dbx.DBTX) todos.Repository
	Labels(db dbx.DBTX) labels.Repository
}
