// Package validation проверяет входные данные упорядоченным списком правил
// и собирает все нарушения в одну ошибку errs.ValidationError.
//
// Для каждого поля сначала проверяется наличие значения. Если значения нет,
// фиксируется только сообщение notNull, остальные правила поля пропускаются.
package validation

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"delivery-service/internal/pkg/errs"
)

type Rule[T any] struct {
	Valid   func(value T) bool
	Message func(value T) string
}

type Checker interface {
	violations() []errs.FieldViolation
}

type field[T any] struct {
	name    string
	value   *T
	notNull string
	rules   []Rule[T]
}

// Field описывает поле запроса. Пустой notNull делает поле необязательным.
func Field[T any](name string, value *T, notNull string, rules ...Rule[T]) Checker {
	return field[T]{
		name:    name,
		value:   value,
		notNull: notNull,
		rules:   rules,
	}
}

func (f field[T]) violations() []errs.FieldViolation {
	if f.value == nil {
		if f.notNull == "" {
			return nil
		}
		return []errs.FieldViolation{{Field: f.name, Message: f.notNull}}
	}

	var result []errs.FieldViolation
	for _, rule := range f.rules {
		if !rule.Valid(*f.value) {
			result = append(result, errs.FieldViolation{Field: f.name, Message: rule.Message(*f.value)})
		}
	}
	return result
}

// Validate возвращает nil или *errs.ValidationError со всеми нарушениями.
func Validate(checkers ...Checker) error {
	var violations []errs.FieldViolation
	for _, c := range checkers {
		violations = append(violations, c.violations()...)
	}

	if len(violations) == 0 {
		return nil
	}
	return errs.NewValidationError(violations...)
}

func Static[T any](message string) func(T) string {
	return func(T) string {
		return message
	}
}

// Length проверяет длину строки в символах, границы включительно.
func Length(minLen, maxLen int, message string) Rule[string] {
	return Rule[string]{
		Valid: func(value string) bool {
			n := utf8.RuneCountInString(value)
			return n >= minLen && n <= maxLen
		},
		Message: Static[string](message),
	}
}

// MaxLength ограничивает длину строки в символах сверху, как VARCHAR(n) в схеме.
func MaxLength(maxLen int, message string) Rule[string] {
	return Rule[string]{
		Valid: func(value string) bool {
			return utf8.RuneCountInString(value) <= maxLen
		},
		Message: Static[string](message),
	}
}

// Match проверяет значение регулярным выражением, format получает значение через %s.
func Match(re *regexp.Regexp, format string) Rule[string] {
	return Rule[string]{
		Valid: re.MatchString,
		Message: func(value string) string {
			return fmt.Sprintf(format, value)
		},
	}
}

// LettersAndSpaces требует хотя бы одну букву, пробелы допускаются между ними.
func LettersAndSpaces(value string) bool {
	hasLetter := false
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r != ' ':
			return false
		}
	}
	return hasLetter
}

// HasRepeatedRun сообщает, есть ли в строке n одинаковых символов подряд.
// RE2 не поддерживает обратные ссылки, поэтому без регулярки.
func HasRepeatedRun(value string, n int) bool {
	if n <= 1 {
		return value != ""
	}

	var prev rune
	run := 0
	for i, r := range []rune(value) {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}
