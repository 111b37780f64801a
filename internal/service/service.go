package service

import (
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/spec-kit/blogging-platform/pkg/respond"
)

// recoverTo is the outermost guard of every service operation: an unexpected
// panic is logged with full detail server-side and converted into a 500
// envelope with a fixed, non-revealing message.
func recoverTo[T any](logger *zap.Logger, op string, resp *respond.Response[T]) {
	if r := recover(); r != nil {
		logger.Error("unexpected failure",
			zap.String("op", op),
			zap.Any("panic", r),
			zap.ByteString("stack", debug.Stack()),
		)
		*resp = respond.InternalServerError[T](respond.MsgInternalError)
	}
}

func searchPattern(term string) string {
	return "%" + term + "%"
}
