package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestBusinessError_Message(t *testing.T) {
	assert.Equal(t, "time_conflict", ErrBusiness("time_conflict").Error())
	assert.Equal(t,
		"outside_working_hours: doctor doc1 is not available",
		ErrBusinessf("outside_working_hours", "doctor %s is not available", "doc1").Error(),
	)
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("book: %w", ErrBusiness("time_conflict"))

	assert.True(t, IsBusiness(err, "time_conflict"))
	assert.False(t, IsBusiness(err, "already_cancelled"))
	assert.Equal(t, "time_conflict", CodeOf(err))
	assert.Equal(t, "", CodeOf(errors.New("boom")))
}

func TestIsExclusionConflict(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23P01"}

	assert.True(t, IsExclusionConflict(fmt.Errorf("insert: %w", pgErr)))
	assert.False(t, IsExclusionConflict(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsExclusionConflict(errors.New("boom")))
}
