// Copyright 2026 The firereq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package firereq

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_String(t *testing.T) {
	testCases := []struct {
		code Code
		name string
	}{
		{CodeTransport, "transport"},
		{CodeUnacceptableStatus, "unacceptable-status"},
		{CodeTimeout, "timeout"},
		{CodeCancelled, "cancelled"},
		{CodeRetryBudget, "retry-budget-exhausted"},
		{Code(0), "Code(0)"},
		{Code(99), "Code(99)"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.name, testCase.code.String())
		})
	}
}

func TestError_Error(t *testing.T) {
	cause := errors.New("connection refused")
	testCases := []struct {
		name string
		err  *Error
		msg  string
	}{
		{"transport", transportError(cause), "firereq: no response received: connection refused"},
		{"status", statusError(418, []byte("teapot")), "firereq: server responded with unacceptable status 418"},
		{"timeout", timeoutError(cause), "firereq: timeout elapsed before a terminal outcome"},
		{"cancelled", cancelError(), "firereq: request cancelled"},
		{"budget", budgetError(cause), "firereq: retry budget exhausted: connection refused"},
		{"unknown", &Error{Code: Code(99)}, "firereq: error (Code(99))"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.EqualError(t, testCase.err, testCase.msg)
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	assert.Same(t, cause, transportError(cause).Unwrap())
	assert.ErrorIs(t, budgetError(cause), cause)
	assert.NoError(t, statusError(404, nil).Unwrap())
	assert.NoError(t, cancelError().Unwrap())
}

func TestError_Timeout(t *testing.T) {
	assert.True(t, timeoutError(nil).Timeout())
	assert.False(t, transportError(errors.New("x")).Timeout())
	assert.False(t, cancelError().Timeout())
}

func TestCodeOf(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, Code(0), CodeOf(nil))
	})
	t.Run("foreign error", func(t *testing.T) {
		assert.Equal(t, Code(0), CodeOf(errors.New("not mine")))
	})
	t.Run("direct", func(t *testing.T) {
		assert.Equal(t, CodeCancelled, CodeOf(cancelError()))
	})
	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("submission failed: %w", timeoutError(nil))
		assert.Equal(t, CodeTimeout, CodeOf(err))
	})
}

func TestStatusError(t *testing.T) {
	err := statusError(404, []byte("not found"))
	assert.Equal(t, CodeUnacceptableStatus, err.Code)
	assert.Equal(t, 404, err.Status)
	assert.Equal(t, []byte("not found"), err.Body)
}
