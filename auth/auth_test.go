// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import "testing"

func TestValidatePIN(t *testing.T) {
	tests := []struct {
		name     string
		pin      string
		expected string
		wantErr  bool
	}{
		{"matching", "135790", "135790", false},
		{"wrong pin", "000000", "135790", true},
		{"empty pin", "", "135790", true},
		{"prefix only", "1357", "135790", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePIN(tt.pin, tt.expected)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePIN() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
