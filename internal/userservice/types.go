package userservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/blogpages/internal/common"
)

var (
	AnonymousUser = User{}
)

type UserService struct {
	m        *DBModel
	mb       common.MessageProducer
	secret   []byte
	tokenTTL time.Duration
}

type DBModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  Password  `json:"-"`
	Blogs     []int     `json:"blogs"`
	CreatedAt time.Time `json:"created_at"`
	Version   int       `json:"-"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

// Token is a signed bearer credential bound to a user id.
type Token struct {
	Plain  string    `json:"token"`
	UserID int       `json:"-"`
	Expiry time.Time `json:"expiry"`
}
