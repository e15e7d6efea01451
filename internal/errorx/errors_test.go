package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

func TestLookup(t *testing.T) {
	assert.NoError(t, Lookup(nil, "job", "1"))

	err := Lookup(fmt.Errorf("find: %w", sqlx.ErrNotFound), "job", "abc")
	assert.Equal(t, http.StatusNotFound, Code(err))
	assert.EqualError(t, err, "job not found: abc")

	err = Lookup(errors.New("disk I/O error"), "template", "abc")
	assert.Equal(t, http.StatusInternalServerError, Code(err))
	assert.EqualError(t, err, "failed to load template: disk I/O error")
}

func TestCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Code(ErrMissingHTML()))
	assert.Equal(t, http.StatusBadRequest, Code(fmt.Errorf("wrapped: %w", ErrBadRequest("x"))))
	assert.Equal(t, http.StatusInternalServerError, Code(errors.New("plain")))
}
