package apidb

import (
	"context"

	"github.com/chainsafe/helisync/pkg/logstore"
	mghelper "github.com/chainsafe/helisync/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateUserOwnedSchema(ctx, db, &logstore.LogDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &logstore.LogDao{}, "user_id", "timestamp")
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &logstore.LogDao{})
	})
}
