package stringsx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNickname(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "single word",
			input:    "Multiply",
			expected: "Multiply",
		},
		{
			name:     "two words",
			input:    "SayHello",
			expected: "Say Hello",
		},
		{
			name:     "three words",
			input:    "ResetToDefaults",
			expected: "Reset To Defaults",
		},
		{
			name:     "digit boundary",
			input:    "Sum2Numbers",
			expected: "Sum 2 Numbers",
		},
		{
			name:     "trailing digits",
			input:    "Phase2",
			expected: "Phase 2",
		},
		{
			name:     "acronym stays joined",
			input:    "HTTPGet",
			expected: "HTTPGet",
		},
		{
			name:     "lower camel",
			input:    "sayHello",
			expected: "say Hello",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, Nickname(testCase.input))
		})
	}
}
