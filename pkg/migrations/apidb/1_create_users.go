package apidb

import (
	"context"

	mghelper "github.com/chainsafe/helisync/pkg/pgutil/migrations"
	"github.com/chainsafe/helisync/pkg/userstore"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return mghelper.CreateSchema(ctx, db, &userstore.UserDao{})
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &userstore.UserDao{})
	})
}
