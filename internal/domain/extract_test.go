package domain

import "testing"

func TestExtractContact_NamePrecedence(t *testing.T) {
	cases := []struct {
		name string
		fd   FormData
		want string
	}{
		{"fullName wins", FormData{"fullName": "Jane Doe", "name": "J", "firstName": "X"}, "Jane Doe"},
		{"name next", FormData{"name": "John Q. Public", "firstName": "X"}, "John Q. Public"},
		{"first+last joined", FormData{"firstName": "Mary", "lastName": "Smith"}, "Mary Smith"},
		{"first only trimmed", FormData{"firstName": " Mary "}, "Mary"},
		{"last only trimmed", FormData{"lastName": "Smith"}, "Smith"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := ExtractContact(tc.fd)
			if c.Name == nil || *c.Name != tc.want {
				t.Fatalf("Name = %v; want %q", c.Name, tc.want)
			}
		})
	}
}

func TestExtractContact_MissingAndNonStringFieldsAreNil(t *testing.T) {
	c := ExtractContact(FormData{
		"email":   42,          // non-string ignored
		"phone":   "",          // empty ignored
		"partner": "  ",        // whitespace-only ignored
		"advisor": "adv-royce", // kept
	})
	if c.Name != nil || c.Email != nil || c.Phone != nil || c.Source != nil || c.Partner != nil {
		t.Fatalf("expected nil fields, got %+v", c)
	}
	if c.Advisor == nil || *c.Advisor != "adv-royce" {
		t.Fatalf("Advisor = %v; want adv-royce", c.Advisor)
	}

	if c := ExtractContact(nil); c.Name != nil || c.Email != nil {
		t.Fatalf("nil payload should extract nothing: %+v", c)
	}
}

func TestDisplayName_FallsBackToUnknown(t *testing.T) {
	if got := DisplayName(FormData{"email": "a@b.com"}); got != "Unknown" {
		t.Fatalf("DisplayName = %q; want Unknown", got)
	}
	if got := DisplayName(FormData{"name": "Ada"}); got != "Ada" {
		t.Fatalf("DisplayName = %q; want Ada", got)
	}
}

func TestFirstName_Derivation(t *testing.T) {
	cases := []struct {
		fd   FormData
		want string
	}{
		{FormData{"firstName": "Grace"}, "Grace"},
		{FormData{"fullName": "Grace Hopper"}, "Grace"},
		{FormData{"contactName": "Alan M. Turing"}, "Alan"},
		{FormData{"name": "Katherine Johnson"}, "Katherine"},
		{FormData{"lastName": "Johnson"}, ""},
		{FormData{}, ""},
	}
	for _, tc := range cases {
		if got := FirstName(tc.fd); got != tc.want {
			t.Fatalf("FirstName(%v) = %q; want %q", tc.fd, got, tc.want)
		}
	}
}

func TestAdvisorFirstName(t *testing.T) {
	cases := []struct {
		fd   FormData
		want string
	}{
		{FormData{"advisor": "Sam Lee"}, "Sam"},
		{FormData{"advisor": " Samantha "}, "Samantha"},
		{FormData{"advisor": 7}, ""},
		{FormData{"name": "Jane Doe"}, ""},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := AdvisorFirstName(tc.fd); got != tc.want {
			t.Fatalf("AdvisorFirstName(%v) = %q; want %q", tc.fd, got, tc.want)
		}
	}
}

func TestProspectEmail(t *testing.T) {
	if got := ProspectEmail(FormData{"email": " a@b.com "}); got != "a@b.com" {
		t.Fatalf("ProspectEmail = %q", got)
	}
	if got := ProspectEmail(FormData{}); got != "" {
		t.Fatalf("ProspectEmail on empty payload = %q", got)
	}
}
