package apidb

import (
	"context"

	"github.com/chainsafe/helisync/pkg/credentialstore"
	mghelper "github.com/chainsafe/helisync/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if err := mghelper.CreateUserOwnedSchema(ctx, db, &credentialstore.CredentialDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &credentialstore.CredentialDao{}, "user_id")
	}, func(ctx context.Context, db *bun.DB) error {
		return mghelper.DropTables(ctx, db, &credentialstore.CredentialDao{})
	})
}
