// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides small helpers for the diagnose-and-continue
// error handling used throughout the view building and refresh paths,
// where one bad field must never abort the rest of the form.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// New returns an error with the given text.
// It is a direct wrapper of [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Errorf formats according to a format specifier and returns the
// string as a value that satisfies error.
// It is a direct wrapper of [fmt.Errorf].
func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// Is reports whether any error in err's tree matches target.
// It is a direct wrapper of [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join returns an error that wraps the given errors,
// discarding any nil values.
// It is a direct wrapper of [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err == nil {
		return nil
	}
	slog.Error(err.Error() + " | " + caller())
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, automatically logging the error if non-nil.
// The intended usage is:
//
//	v := errors.Log1(MyFunc(x))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + caller())
	}
	return v
}

// Must panics if the given error is non-nil,
// for errors that indicate programmer error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// caller returns the file and line of the caller of Log/Log1,
// for locating the origin of a logged error.
func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "?"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
