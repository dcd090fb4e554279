package userservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sushihentaime/blogpages/internal/common"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "valid email", email: "test@example.com", valid: true},
		{name: "valid email with plus", email: "test+tag@example.com", valid: true},
		{name: "empty email", email: "", valid: false},
		{name: "missing domain", email: "test@", valid: false},
		{name: "missing at sign", email: "test.example.com", valid: false},
		{name: "missing tld", email: "test@example", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := common.NewValidator()
			validateEmail(v, tt.email)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "valid password", password: "password123", valid: true},
		{name: "empty password", password: "", valid: false},
		{name: "too short", password: "pass123", valid: false},
		{name: "exactly 8 characters", password: "pass1234", valid: true},
		{name: "exactly 72 characters", password: strings.Repeat("a", 72), valid: true},
		{name: "too long", password: strings.Repeat("a", 73), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := common.NewValidator()
			validatePassword(v, tt.password)
			assert.Equal(t, tt.valid, v.Valid())
		})
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		valid     bool
		wantField string
	}{
		{name: "valid name", value: "Alice", valid: true},
		{name: "empty name", value: "", valid: false, wantField: "firstName"},
		{name: "too long", value: strings.Repeat("a", 51), valid: false, wantField: "firstName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := common.NewValidator()
			validateName(v, tt.value, "firstName")
			assert.Equal(t, tt.valid, v.Valid())
			if !tt.valid {
				assert.Contains(t, v.Errors, tt.wantField)
			}
		})
	}
}
