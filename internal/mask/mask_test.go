package mask

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		pattern string
		raw     string
		want    string
	}{
		{CountryCode, "55", "+55"},
		{CountryCode, "+55", "+55"},
		{CountryCode, "+5", "+5"},
		{CountryCode, "5", "+5"},
		{AreaCode, "11", "11"},
		{AreaCode, "1a1", "11"},
		{LocalNumber, "987654321", "98765-4321"},
		{LocalNumber, "98765-4321", "98765-4321"},
		{LocalNumber, "98765", "98765"},
		{LocalNumber, "98765-", "98765"},
		{LocalNumber, "(98) 765 43 21 99", "98765-4321"},
		{DisplayName, "Ana 2 Maria", "AnaMaria"},
		{DisplayName, "Josefinaaaaaaaaaaaaaaaaa", "Josefinaaaaaaaaaaaaa"},
		{Token, "12a34", "1234"},
		{Token, "123456", "1234"},
		{Token, "", ""},
		{CountryCode, "", ""},
		{CountryCode, "xx", ""},
	}
	for _, tc := range cases {
		if got := New(tc.pattern).Format(tc.raw); got != tc.want {
			t.Errorf("Format(%q, %q) = %q, want %q", tc.pattern, tc.raw, got, tc.want)
		}
	}
}
