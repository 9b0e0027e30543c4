package middleware

import (
	"errors"

	"github.com/MrSnakeDoc/urlb/internal/errs"
	"github.com/MrSnakeDoc/urlb/internal/logger"
)

var ErrLogged = errors.New("already logged")

// UsageError logs the coded help message and returns ErrLogged.
func UsageError(code errs.Code, a ...any) error {
	msg := errs.Msg(code, a...)
	logger.LogError("%s", msg)
	return ErrLogged
}

// Logged logs err once and returns ErrLogged so main does not print it again.
func Logged(err error) error {
	if err == nil || errors.Is(err, ErrLogged) {
		return err
	}
	logger.LogError("%v", err)
	return ErrLogged
}
