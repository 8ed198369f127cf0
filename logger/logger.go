// Package logger provides structured logging for the game and its tools.
package logger

import "fmt"

// Logger is the structured logger used across the module.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
	With(fields ...Field) Logger
	Sync() error
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Stringer logs v by its String method, for enums like the game's sides.
func Stringer(key string, v fmt.Stringer) Field {
	return Field{Key: key, Value: v}
}
