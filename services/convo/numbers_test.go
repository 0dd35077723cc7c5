package convo

import "testing"

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"$1,200,000", 1200000, true},
		{"950000", 950000, true},
		{"$500,000", 500000, true},
		{" 450000 ", 450000, true},
		{"abc", 0, false},
		{"-5", 0, false},
		{"0", 0, false},
		{"", 0, false},
		{"$", 0, false},
	}

	for _, tt := range tests {
		got, ok := NormalizePrice(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizePrice(%q) = (%d, %v); want (%d, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPositiveInt(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"3", 3, true},
		{"3 bedrooms", 3, true},
		{"  2 ", 2, true},
		{"0", 0, false},
		{"none", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := PositiveInt(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("PositiveInt(%q) = (%d, %v); want (%d, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestIntOrZero(t *testing.T) {
	if got := IntOrZero("4 baths"); got != 4 {
		t.Errorf("IntOrZero(%q) = %d; want 4", "4 baths", got)
	}
	if got := IntOrZero("unknown"); got != 0 {
		t.Errorf("IntOrZero(%q) = %d; want 0", "unknown", got)
	}
}
