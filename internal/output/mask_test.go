package output

import "testing"

func TestMaskSensitiveValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: NotSet},
		{name: "sk placeholder", value: "sk-", want: NotSet},
		{name: "ms placeholder", value: "ms-", want: NotSet},
		{name: "kimi placeholder", value: "sk-kimi-", want: NotSet},
		{name: "short", value: "abc", want: "***"},
		{name: "exactly eight", value: "abcdefgh", want: "********"},
		{name: "nine", value: "abcdefghi", want: "abcd*fghi"},
		{name: "api key", value: "sk-ant-1234567890", want: "sk-a*********7890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskSensitiveValue(tt.value); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "ANTHROPIC_AUTH_TOKEN", want: true},
		{key: "ANTHROPIC_API_KEY", want: true},
		{key: "CLIENT_SECRET", want: true},
		{key: "db_password", want: true},
		{key: "ANTHROPIC_BASE_URL", want: false},
		{key: "ANTHROPIC_MODEL", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsSensitiveKey(tt.key); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncate("https://api.example.com/anthropic", 18); got != "https://api.exa..." {
		t.Errorf("got %q", got)
	}
}
