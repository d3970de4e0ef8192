package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		// Valid names
		{name: "simple name", input: "default", wantErr: nil},
		{name: "name with hyphen", input: "dark-site", wantErr: nil},
		{name: "name with underscore", input: "wide_layout", wantErr: nil},
		{name: "name with numbers", input: "layout2", wantErr: nil},
		{name: "mixed case", input: "WideLayout", wantErr: nil},

		// Invalid names
		{name: "empty", input: "", wantErr: ErrInvalidAssetName},
		{name: "forward slash", input: "a/b", wantErr: ErrInvalidAssetName},
		{name: "backslash", input: `a\b`, wantErr: ErrInvalidAssetName},
		{name: "parent traversal", input: "..", wantErr: ErrInvalidAssetName},
		{name: "dot in name", input: "site.v2", wantErr: ErrInvalidAssetName},
		{name: "absolute path", input: "/etc", wantErr: ErrInvalidAssetName},
		{name: "null byte", input: "def\x00ault", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAssetName(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
