package blueprint

import (
	"errors"
	"fmt"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"

	"blueprint-registry/internal/infrastructure/chainstore"
)

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{ErrBlueprintNotFound, "BLUEPRINT_NOT_FOUND", 404},
		{ErrNotAuthorized, "NOT_AUTHORIZED", 403},
		{ErrInvalidTransition, "INVALID_TRANSITION", 409},
		{ErrInvalidTitle, "VALIDATION_FAILED", 400},
		{ErrInvalidPrice, "VALIDATION_FAILED", 400},
		{ErrInvalidStatus, "VALIDATION_FAILED", 400},
		{ErrRecordCorrupted, "RECORD_CORRUPTED", 422},
		{chainstore.ErrUnavailable, "STORE_UNAVAILABLE", 503},
		{validation.Errors{"title": errors.New("required")}, "VALIDATION_FAILED", 400},
		{errors.New("boom"), "INTERNAL_ERROR", 500},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, ToErrorCode(tc.err), "code for %v", tc.err)
		assert.Equal(t, tc.status, ToHTTPStatus(tc.err), "status for %v", tc.err)
	}
}

func TestErrorMappingUnwrapsCause(t *testing.T) {
	wrapped := fmt.Errorf("read index: %w", ErrRecordCorrupted)
	assert.Equal(t, "RECORD_CORRUPTED", ToErrorCode(wrapped))
	assert.Equal(t, 422, ToHTTPStatus(wrapped))
}
