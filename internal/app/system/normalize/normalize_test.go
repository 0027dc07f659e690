package normalize

import (
	"reflect"
	"testing"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"User@Example.COM", "user@example.com"},
		{"  spaced@example.com  ", "spaced@example.com"},
		{"already@example.com", "already@example.com"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Email(tt.in); got != tt.want {
			t.Errorf("Email(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Ada   Lovelace ", "Ada Lovelace"},
		{"Single", "Single"},
		{"\tTabs\tand\nnewlines\n", "Tabs and newlines"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Name(tt.in); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"dedup preserves order", []string{"Wifi", "wifi", "Licensed"}, []string{"wifi", "licensed"}},
		{"empties dropped", []string{"", "  ", "open-late"}, []string{"open-late"}},
		{"nil in nil out", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tags(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tags(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
