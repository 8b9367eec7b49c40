package utils

import "testing"

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Sup3rSecret", ""},
		{"too short", "Ab1", "Password must be at least 8 characters long"},
		{"no uppercase", "alllower1", "Password must contain at least one uppercase letter"},
		{"no lowercase", "ALLUPPER1", "Password must contain at least one lowercase letter"},
		{"no digit", "NoDigitsHere", "Password must contain at least one digit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("expected valid, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("got %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPasswordHash("Sup3rSecret", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("WrongPass1", hash) {
		t.Error("wrong password accepted")
	}
}
