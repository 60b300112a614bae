package commands

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Bumrah", 10, "Bumrah"},
		{"Bumrah", 6, "Bumrah"},
		{"Wankhede Stadium, Mumbai", 8, "Wankhede..."},
		{"₹17.0Cr value", 5, "₹17.0..."},
		{"🏏🏏🏏", 2, "🏏🏏..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
