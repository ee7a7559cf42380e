package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpandHostPattern(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "no pattern",
			input:    "bastion",
			expected: []string{"bastion"},
		},
		{
			name:     "single value",
			input:    "db[5]",
			expected: []string{"db5"},
		},
		{
			name:     "simple range",
			input:    "web[1-3]",
			expected: []string{"web1", "web2", "web3"},
		},
		{
			name:     "range and list",
			input:    "db[1-3,7]",
			expected: []string{"db1", "db2", "db3", "db7"},
		},
		{
			name:     "reversed range normalizes",
			input:    "web[3-1]",
			expected: []string{"web1", "web2", "web3"},
		},
		{
			name:  "multiple brackets",
			input: "node[1-2]rack[5,9]",
			expected: []string{
				"node1rack5", "node1rack9",
				"node2rack5", "node2rack9",
			},
		},
		{
			name:     "pattern with suffix",
			input:    "web[1-2].example.com",
			expected: []string{"web1.example.com", "web2.example.com"},
		},
		{
			name:     "empty brackets left alone",
			input:    "web[]",
			expected: []string{"web[]"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ExpandHostPattern(tc.input)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Fatalf("unexpected expansion (-want +got):\n%s", diff)
			}
		})
	}
}
