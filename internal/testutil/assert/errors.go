// Package assert provides error assertion helpers shared by the package
// level tests.
package assert

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func Error(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		return
	}
	t.Log("Expected error to be present, but got nil instead")
	t.FailNow()
}

func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if errors.Is(err, target) {
		return
	}
	t.Logf("Expected error to be %v but got %v instead", target, err)
	t.FailNow()
}

func NoError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		return
	}
	t.Logf("Expected error to be nil but got %+v instead", err)
	t.FailNow()
}
