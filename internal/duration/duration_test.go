package duration

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"12:34", 12*60 + 34, true},
		{"90:00", 5400, true},
		{"01:45:00", 6300, true},
		{"1:2:3", 3723, true},
		{" 20:00 ", 1200, true},
		{"100:00:00", 360000, true},
		{"", 0, false},
		{"45", 0, false},
		{"1:2:3:4", 0, false},
		{"aa:bb", 0, false},
		{"10:-5", 0, false},
		{"10:", 0, false},
		{"9000000000000000000:00", 0, false},
		{"9223372036854775807:00:00", 0, false},
		{"2562047788015215:30:08", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseChecked(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseChecked(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
		if p := Parse(tt.in); p != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, p, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{6300, "01:45:00"},
		{86399, "23:59:59"},
		{360000, "100:00:00"},
		{-10, "00:00:00"},
	}
	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, x := range []int{0, 1, 59, 60, 3599, 3600, 6300, 45296, 359999, 1000000} {
		if got := Parse(Format(x)); got != x {
			t.Errorf("Parse(Format(%d)) = %d", x, got)
		}
	}
}
