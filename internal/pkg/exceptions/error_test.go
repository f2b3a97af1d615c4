package exceptions

import (
	"fmt"
	"testing"

	"labclinics-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestWrapWithError(t *testing.T) {
	t.Run("cause is appended to the dev message", func(t *testing.T) {
		cause := fmt.Errorf("unexpected inserted id type string")
		customErr := ErrMongoDBInsertDocument(cause)

		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, constvars.ErrDevMongoDBInsertDocument)
		assert.Contains(t, customErr.DevMessage, "unexpected inserted id type string")
	})

	t.Run("nil cause keeps the dev message bare", func(t *testing.T) {
		customErr := ErrMongoDBInsertDocument(nil)

		assert.Equal(t, constvars.ErrDevMongoDBInsertDocument, customErr.DevMessage)
	})

	t.Run("location points at the caller", func(t *testing.T) {
		customErr := WrapWithError(fmt.Errorf("boom"), constvars.StatusInternalServerError, "client", "dev")

		assert.Contains(t, customErr.Location.File, "error_test.go")
		assert.Contains(t, customErr.Error(), "dev: boom")
	})
}
