// errors_test.go
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package psxsw

import (
	"errors"
	"testing"
)

func TestRasterError_MessageWithUnderlying(t *testing.T) {
	underlying := errors.New("disk full")
	e := &RasterError{Operation: "write", Details: "scene.png", Err: underlying}

	if got := e.Error(); got == "" {
		t.Fatal("Error() returned empty string")
	}
	if !errors.Is(e, underlying) {
		t.Error("errors.Is(e, underlying) = false, want true (Unwrap should expose it)")
	}
}

func TestRasterError_MessageWithoutUnderlying(t *testing.T) {
	e := &RasterError{Operation: "write", Details: "no disk"}
	if got := e.Error(); got == "" {
		t.Fatal("Error() returned empty string")
	}
	if e.Unwrap() != nil {
		t.Error("Unwrap() on an error with no Err field should return nil")
	}
}
