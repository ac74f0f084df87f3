package apidb

import (
	"context"

	"github.com/chainsafe/helisync/pkg/preferencestore"
	mghelper "github.com/chainsafe/helisync/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateUserOwnedSchema(ctx, db, &preferencestore.PreferenceDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &preferencestore.PreferenceDao{}, "user_id")
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &preferencestore.PreferenceDao{})
	})
}
