package s3_test

import (
	"livecity/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		key      string
		expected string
	}{
		{name: "plain", domain: "https://files.example.com", key: "contracts/b-1.json", expected: "https://files.example.com/contracts/b-1.json"},
		{name: "trailing slash", domain: "https://files.example.com/", key: "contracts/b-1.json", expected: "https://files.example.com/contracts/b-1.json"},
		{name: "leading slash", domain: "https://files.example.com", key: "/contracts/b-1.json", expected: "https://files.example.com/contracts/b-1.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s3.ObjectURL(tt.domain, tt.key))
		})
	}
}
