package sso

import "testing"

func TestAllowedDomain(t *testing.T) {
	tests := []struct {
		email  string
		domain string
		want   bool
	}{
		{"jane@university.edu", "university.edu", true},
		{"Jane@University.EDU", "university.edu", true},
		{"jane@gmail.com", "university.edu", false},
		{"jane@fakeuniversity.edu.evil.com", "university.edu", false},
		{"jane@anywhere.org", "", true},
	}
	for _, tc := range tests {
		if got := AllowedDomain(tc.email, tc.domain); got != tc.want {
			t.Fatalf("AllowedDomain(%q, %q) = %v, want %v", tc.email, tc.domain, got, tc.want)
		}
	}
}

func TestParseJWTRejectsMalformed(t *testing.T) {
	if _, _, _, _, err := parseJWT("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
	if _, _, _, _, err := parseJWT("a.b"); err == nil {
		t.Fatal("expected error for two-part token")
	}
}
