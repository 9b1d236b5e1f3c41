package passwordcheck

import (
	"context"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	t.Setenv("PWNED_PASSWORDS_ENABLED", "false")

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "MySecret@123", false},
		{"too short", "Ab@1", true},
		{"no uppercase", "mysecret@123", true},
		{"no lowercase", "MYSECRET@123", true},
		{"no digit", "MySecret@abc", true},
		{"no special char", "MySecret1234", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(context.Background(), tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}
