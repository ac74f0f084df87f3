package credentialstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/helisync/pkg/credential"
)

// CredentialDao maps to the 'database_credentials' table.
type CredentialDao struct {
	bun.BaseModel `bun:"table:database_credentials,alias:dc"`
	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        int64     `bun:"user_id,notnull"`
	Hostname      string    `bun:"hostname,notnull,type:text"`
	Port          string    `bun:"port,notnull,type:text"`
	Username      string    `bun:"username,notnull,type:text"`
	Password      string    `bun:"password,notnull,type:text"`
	DatabaseName  string    `bun:"database_name,notnull,type:text"`
	IsValidated   bool      `bun:"is_validated,notnull,default:false"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func toCredentialDao(c *credential.Credential) *CredentialDao {
	return &CredentialDao{
		UserID:       c.UserID,
		Hostname:     c.Hostname,
		Port:         c.Port,
		Username:     c.Username,
		Password:     c.Password,
		DatabaseName: c.DatabaseName,
		IsValidated:  c.IsValidated,
	}
}

func toCredential(dao *CredentialDao) *credential.Credential {
	return &credential.Credential{
		ID:           dao.ID,
		UserID:       dao.UserID,
		Hostname:     dao.Hostname,
		Port:         dao.Port,
		Username:     dao.Username,
		Password:     dao.Password,
		DatabaseName: dao.DatabaseName,
		IsValidated:  dao.IsValidated,
		CreatedAt:    dao.CreatedAt,
		UpdatedAt:    dao.UpdatedAt,
	}
}
