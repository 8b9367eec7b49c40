package services

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePhoto(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
		wantErr     bool
	}{
		{"jpeg", "selfie.jpg", "image/jpeg", false},
		{"png uppercase name", "AVATAR.PNG", "image/png", false},
		{"webp", "photo.webp", "image/webp", false},
		{"no extension", "photo", "image/jpeg", false},
		{"octet stream with image extension", "photo.jpg", "application/octet-stream", false},
		{"unknown mime but image extension", "photo.gif", "", false},
		{"executable", "malware.exe", "application/vnd.microsoft.portable-executable", true},
		{"spreadsheet", "data.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", true},
		{"script with text mime", "run.sh", "text/x-shellscript", true},
		{"pdf extension but octet stream passes", "scan.pdf", "application/octet-stream", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhoto(tt.filename, tt.contentType)
			if tt.wantErr && err == nil {
				t.Errorf("ValidatePhoto(%q, %q) = nil, want error", tt.filename, tt.contentType)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidatePhoto(%q, %q) = %v, want nil", tt.filename, tt.contentType, err)
			}
		})
	}
}

func TestInvalidPhotoTypeErrorMessage(t *testing.T) {
	err := ValidatePhoto("notes.txt", "text/plain")
	var invalid *InvalidPhotoTypeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidPhotoTypeError, got %v", err)
	}
	if !strings.Contains(invalid.Error(), "txt (text/plain)") {
		t.Errorf("message should name the rejected type, got %q", invalid.Error())
	}
}
