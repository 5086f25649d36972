package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"a.b@x.com", true},
		{"student_01%+tag@mail.ptit.edu.vn", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"@x.com", false},
		{"a b@x.com", false},
		{"a@x.c", false},
	}
	for _, tc := range cases {
		if got := IsValidEmail(tc.in); got != tc.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"all classes present", "Abc123@@", true},
		{"no upper no digit no symbol", "abcdefgh", false},
		{"too short", "A1@b", false},
		{"too long", "Aa1@Aa1@Aa1@Aa1@Aa1@Aa1@x", false},
		{"missing symbol", "Abcdef12", false},
		{"missing digit", "Abcdefg@", false},
		{"missing lowercase", "ABCDEF1@", false},
		{"symbol outside fixed set", "Abcdef1#", false},
		{"other characters allowed alongside", "Abc123@# ok", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidPassword(tc.in); got != tc.want {
				t.Fatalf("IsValidPassword(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestStruct(t *testing.T) {
	t.Parallel()

	type draft struct {
		Title    string `json:"title" validate:"required"`
		Capacity int    `json:"max_participants" validate:"gte=0"`
	}

	t.Run("valid input yields nil details", func(t *testing.T) {
		if details := Struct(draft{Title: "Tech Day", Capacity: 100}); details != nil {
			t.Fatalf("expected nil details, got %v", details)
		}
	})

	t.Run("details keyed by json name", func(t *testing.T) {
		details := Struct(draft{Capacity: -1})
		if details == nil {
			t.Fatalf("expected details")
		}
		if _, ok := details["title"]; !ok {
			t.Fatalf("expected detail for title, got %v", details)
		}
		if _, ok := details["max_participants"]; !ok {
			t.Fatalf("expected detail for max_participants, got %v", details)
		}
	})
}
