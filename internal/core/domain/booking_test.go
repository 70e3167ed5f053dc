package domain

import "testing"

func TestBookingOverlaps(t *testing.T) {
	b := &Booking{StartDate: "2024-02-01", EndDate: "2024-02-05"}

	cases := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"identical", "2024-02-01", "2024-02-05", true},
		{"contained", "2024-02-02", "2024-02-03", true},
		{"straddles start", "2024-01-30", "2024-02-02", true},
		{"straddles end", "2024-02-04", "2024-02-10", true},
		{"surrounds", "2024-01-01", "2024-03-01", true},
		{"abuts before", "2024-01-28", "2024-02-01", false},
		{"abuts after", "2024-02-05", "2024-02-10", false},
		{"disjoint before", "2024-01-10", "2024-01-15", false},
		{"disjoint after", "2024-03-10", "2024-03-15", false},
	}

	for _, tc := range cases {
		if got := b.Overlaps(tc.start, tc.end); got != tc.want {
			t.Errorf("%s: Overlaps(%s, %s) = %v, want %v", tc.name, tc.start, tc.end, got, tc.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleCliente.Valid() || !RoleAdmin.Valid() {
		t.Fatalf("known roles must be valid")
	}
	if Role("superuser").Valid() {
		t.Fatalf("unknown role must not be valid")
	}
}
