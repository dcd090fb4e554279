package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sushihentaime/blogpages/internal/common"
)

var (
	ErrAuthenticationFailure = fmt.Errorf("invalid authentication credentials")
)

func NewUserService(db *sql.DB, mb common.MessageProducer, secret string, tokenTTL time.Duration) *UserService {
	return &UserService{
		m:        newUserModel(db),
		mb:       mb,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// CreateUser creates a new user account and publishes a user.created event.
func (s *UserService) CreateUser(ctx context.Context, firstName, lastName, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	v := common.NewValidator()
	validateName(v, firstName, "firstName")
	validateName(v, lastName, "lastName")
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  Password{Plain: password},
	}

	// Set the password hash
	err := u.Password.set(u.Password.Plain)
	if err != nil {
		return nil, err
	}

	// Insert the user into the database
	err = s.m.insertUser(ctx, &u)
	if err != nil {
		return nil, err
	}

	data := struct {
		Email     string
		FirstName string
	}{
		Email:     u.Email,
		FirstName: u.FirstName,
	}

	emailData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	// Publish the user created event
	err = s.mb.Publish(ctx, emailData, common.UserCreatedKey, common.UserExchange)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// Authenticate verifies an email and password pair. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	user, err := s.m.getUserByEmail(ctx, email)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, ErrAuthenticationFailure
		default:
			return nil, err
		}
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, ErrAuthenticationFailure
	}

	return user, nil
}

// IssueToken signs a bearer token for the user.
func (s *UserService) IssueToken(user *User) (*Token, error) {
	v := common.NewValidator()
	validateInt(v, user.ID, "user_id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return issueToken(s.secret, user.ID, s.tokenTTL)
}

// GetUserByToken verifies a bearer token and loads the user it is bound to.
func (s *UserService) GetUserByToken(ctx context.Context, plain string) (*User, error) {
	userID, err := verifyToken(s.secret, plain)
	if err != nil {
		return nil, err
	}

	return s.m.getUserByID(ctx, userID)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	v := common.NewValidator()
	validateInt(v, id, "id")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getUserByID(ctx, id)
}

func (u *User) IsAnonymous() bool {
	return u == &AnonymousUser
}
