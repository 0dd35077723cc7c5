package utils

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{950000, "$950,000"},
		{1200000, "$1,200,000"},
		{45000000, "$45,000,000"},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%d) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
