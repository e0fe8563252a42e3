package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryFailureError(t *testing.T) {
	err := &QueryFailureError{Reason: "unsupported-language"}
	assert.Equal(t, "query failed: unsupported-language", err.Error())
}

func TestQueryFailureError_Detection(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		isQuery bool
	}{
		{"direct", &QueryFailureError{Reason: "no-matching-combo"}, true},
		{"wrapped", fmt.Errorf("context: %w", &QueryFailureError{Reason: "x"}), true},
		{"plain error", errors.New("boom"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var queryErr *QueryFailureError
			assert.Equal(t, tt.isQuery, errors.As(tt.err, &queryErr))
		})
	}
}
