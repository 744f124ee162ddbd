package diag_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/qcalgebra/diag"
	"github.com/stretchr/testify/require"
)

var errBadThing = errors.New("test: bad thing")

func TestUserf_WrapsSentinel(t *testing.T) {
	err := diag.Userf("expr.Commutator", errBadThing, "got %d children", 3)
	require.Error(t, err)
	require.ErrorIs(t, err, errBadThing)
	require.Contains(t, err.Error(), "expr.Commutator")
	require.Contains(t, err.Error(), "got 3 children")

	var f *diag.Failure
	require.ErrorAs(t, err, &f)
	require.Equal(t, diag.User, f.Severity)
}

func TestUserf_NilCause(t *testing.T) {
	err := diag.Userf("core.Transpose", nil, "permutation length 3, want 2")
	require.EqualError(t, err, "core.Transpose: permutation length 3, want 2")
}

func TestInternalf_CapturesLocation(t *testing.T) {
	err := diag.Internalf("simplify.pass", "len(terms) == len(coeffs)", "sum arity mismatch")
	var f *diag.Failure
	require.ErrorAs(t, err, &f)
	require.Equal(t, diag.Internal, f.Severity)
	require.Equal(t, "len(terms) == len(coeffs)", f.Condition)
	require.True(t, strings.HasSuffix(f.File, "diag_test.go"), "file = %q", f.File)
	require.Greater(t, f.Line, 0)
	require.Contains(t, err.Error(), "internal error")
	require.Contains(t, err.Error(), "diag_test.go")
}

func TestSeverityString(t *testing.T) {
	require.Equal(t, "user", diag.User.String())
	require.Equal(t, "internal", diag.Internal.String())
}
