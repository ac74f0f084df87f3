package userstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/helisync/pkg/user"
)

// UserDao is a data access object that maps directly to the 'users' table in PostgreSQL.
type UserDao struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	ID            int64      `bun:"id,pk,autoincrement"`
	ExternalID    *string    `bun:"external_id,unique,type:text"`
	Email         string     `bun:"email,unique,notnull,type:text"`
	Password      *string    `bun:"password,type:text"`
	Username      string     `bun:"username,unique,notnull,type:text"`
	DisplayName   *string    `bun:"display_name,type:text"`
	PhotoURL      *string    `bun:"photo_url,type:text"`
	Role          string     `bun:"role,notnull,default:'user',type:text"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	LastLogin     *time.Time `bun:"last_login"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// toUserDao converts a user.User to UserDao.
func toUserDao(usr *user.User) *UserDao {
	role := usr.Role
	if role == "" {
		role = user.RoleUser
	}
	return &UserDao{
		ID:          usr.ID,
		ExternalID:  optional(usr.ExternalID),
		Email:       usr.Email,
		Password:    optional(usr.Password),
		Username:    usr.Username,
		DisplayName: optional(usr.DisplayName),
		PhotoURL:    optional(usr.PhotoURL),
		Role:        role,
		CreatedAt:   usr.CreatedAt,
		LastLogin:   usr.LastLogin,
	}
}

// toUser converts a UserDao to user.User.
func toUser(dao *UserDao) *user.User {
	return &user.User{
		ID:          dao.ID,
		ExternalID:  deref(dao.ExternalID),
		Email:       dao.Email,
		Password:    deref(dao.Password),
		Username:    dao.Username,
		DisplayName: deref(dao.DisplayName),
		PhotoURL:    deref(dao.PhotoURL),
		Role:        dao.Role,
		CreatedAt:   dao.CreatedAt,
		LastLogin:   dao.LastLogin,
	}
}
