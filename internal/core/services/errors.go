package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognizedDateFormat: ни одна грамматика даты не подошла.
	ErrUnrecognizedDateFormat = errors.New("unrecognized date format")
	// ErrUnrecognizedMoneyFormat: текст не похож на сумму с символом валюты.
	ErrUnrecognizedMoneyFormat = errors.New("unrecognized money format")
)

// UnrecognizedDateFormatError содержит исходный текст, который не удалось разобрать.
type UnrecognizedDateFormatError struct {
	Text string
}

func (e *UnrecognizedDateFormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnrecognizedDateFormat, e.Text)
}

// Is позволяет сравнивать ошибку с ErrUnrecognizedDateFormat через errors.Is.
func (e *UnrecognizedDateFormatError) Is(target error) bool {
	return target == ErrUnrecognizedDateFormat
}

// UnrecognizedMoneyFormatError содержит исходный текст, который не удалось разобрать.
type UnrecognizedMoneyFormatError struct {
	Text string
}

func (e *UnrecognizedMoneyFormatError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnrecognizedMoneyFormat, e.Text)
}

// Is позволяет сравнивать ошибку с ErrUnrecognizedMoneyFormat через errors.Is.
func (e *UnrecognizedMoneyFormatError) Is(target error) bool {
	return target == ErrUnrecognizedMoneyFormat
}
