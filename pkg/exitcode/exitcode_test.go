package exitcode

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{Success, "Success"},
		{GeneralError, "General error"},
		{ConfigError, "Configuration error"},
		{ValidationError, "Validation error"},
		{FileSystemError, "File system error"},
		{CatalogError, "Catalog error"},
		{99, "Unknown error"},
	}

	for _, test := range tests {
		if got := String(test.code); got != test.expected {
			t.Errorf("String(%d) = %q, expected %q", test.code, got, test.expected)
		}
	}
}
