package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifiedError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ClassifiedError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("permission denied"), CategoryFileSystem, SeverityError, "write failed"),
			expected: "filesystem (error): write failed: permission denied",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.err.Error())
		})
	}
}

func TestClassifiedError_WithContext(t *testing.T) {
	err := FileError("write", "a.mdx", stdErrors.New("boom"))

	require.Equal(t, "write", err.Context["operation"])
	require.Equal(t, "a.mdx", err.Context["path"])
}

func TestClassifiedError_UnwrapAndAsThroughWrapping(t *testing.T) {
	cause := stdErrors.New("disk full")
	wrapped := fmt.Errorf("batch: %w", FileError("write", "a.mdx", cause))

	require.ErrorIs(t, wrapped, cause)
	require.True(t, IsCategory(wrapped, CategoryFileSystem))
	require.Equal(t, CategoryFileSystem, GetCategory(wrapped))
}

func TestGetCategory_PlainErrorIsInternal(t *testing.T) {
	require.Equal(t, CategoryInternal, GetCategory(stdErrors.New("x")))
	require.False(t, IsCategory(stdErrors.New("x"), CategoryConfig))
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, nil)

	tests := []struct {
		err  error
		code int
	}{
		{nil, 0},
		{ValidationFailed("selector", "unknown"), 2},
		{ConfigNotFound("x.yaml"), 7},
		{ContentDirError("content", stdErrors.New("missing")), 11},
		{TransformFailed("intro-rewrite", "a.mdx", stdErrors.New("x")), 11},
		{InternalError("bug", nil), 10},
		{stdErrors.New("plain"), 1},
	}

	for _, tt := range tests {
		require.Equal(t, tt.code, adapter.ExitCodeFor(tt.err), "%v", tt.err)
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	verbose := NewCLIErrorAdapter(true, nil)
	err := ConfigNotFound("mdxtidy.yaml")

	require.Equal(t, "configuration file not found", quiet.FormatError(err))
	require.Equal(t, "config (fatal): configuration file not found", verbose.FormatError(err))
	require.Equal(t, "transform: transform failed", quiet.FormatError(TransformFailed("t", "p", nil)))
	require.Equal(t, "Error: plain", quiet.FormatError(stdErrors.New("plain")))
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logBuf, stderr bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	adapter := NewCLIErrorAdapter(false, logger)
	adapter.stderr = &stderr
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(ConfigNotFound("missing.yaml"))

	require.Equal(t, 7, code)
	require.Equal(t, "configuration file not found\n", stderr.String())
	require.Contains(t, logBuf.String(), "category=config")
	require.Contains(t, logBuf.String(), "path=missing.yaml")
}
