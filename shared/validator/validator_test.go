package validator_test

import (
	"strings"
	"tatkal/shared/validator"
	"testing"
)

// Test structs for validation
type SignupShape struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required,min=6" json:"password"`
	Age      int    `validate:"omitempty,gte=1,lte=120" json:"age"`
	Gender   string `validate:"omitempty,oneof=male female other" json:"gender"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *SignupShape
		expectError bool
	}{
		{
			name: "valid struct",
			data: &SignupShape{
				Name:     "Rahul Sharma",
				Email:    "rahul@example.com",
				Password: "secret12",
				Age:      25,
				Gender:   "male",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &SignupShape{
				Email:    "rahul@example.com",
				Password: "secret12",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &SignupShape{
				Name:     "Rahul Sharma",
				Email:    "invalid-email",
				Password: "secret12",
			},
			expectError: true,
		},
		{
			name: "password too short",
			data: &SignupShape{
				Name:     "Rahul Sharma",
				Email:    "rahul@example.com",
				Password: "abc",
			},
			expectError: true,
		},
		{
			name: "age out of range",
			data: &SignupShape{
				Name:     "Rahul Sharma",
				Email:    "rahul@example.com",
				Password: "secret12",
				Age:      150,
			},
			expectError: true,
		},
		{
			name: "invalid gender",
			data: &SignupShape{
				Name:     "Rahul Sharma",
				Email:    "rahul@example.com",
				Password: "secret12",
				Gender:   "invalid",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid body",
			body:        `{"name":"Rahul Sharma","email":"rahul@example.com","password":"secret12"}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			expectError: true,
		},
		{
			name:        "valid json failing validation",
			body:        `{"name":"Rahul Sharma","email":"not-an-email","password":"secret12"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data SignupShape
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "test@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "not-an-email",
			tag:         "email",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
