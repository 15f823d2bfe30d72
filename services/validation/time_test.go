package validation

import "testing"

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"morning", "09:00"},
		{"Afternoon", "14:00"},
		{"EVENING", "18:00"},
		{"noon", "12:00"},
		{"2:30 PM", "14:30"},
		{"2 pm", "14:00"},
		{"12 pm", "12:00"},
		{"12 am", "00:00"},
		{"12:45 am", "00:45"},
		{"11:15 am", "11:15"},
		{"14:00", "14:00"},
		{"9:05", "09:05"},
		{"  10:00  ", "10:00"},
		{"sometime late", "sometime late"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeTime(tc.in); got != tc.want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
