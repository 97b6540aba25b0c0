package logger

import "go.uber.org/zap"

// Field is re-exported so call sites never import zap directly.
type Field = zap.Field

var (
	String = zap.String
	Int    = zap.Int
	Bool   = zap.Bool
	ErrorF = zap.Error
)
