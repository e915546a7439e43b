// Package errvalues содержит значения ошибок для типовых ситуаций
// при обращении к внешним сервисам.
package errvalues

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCityNotFound    = errors.New("city not found")
)
