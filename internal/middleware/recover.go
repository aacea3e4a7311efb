package middleware

import (
	"fmt"
	"net/http"

	"payment-gateway/internal/logger"
	"payment-gateway/internal/utils"

	"go.uber.org/zap"
)

// Recover turns a panic into a generic 500 so no internal detail reaches the caller.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.FromCtx(r.Context()).Error("panic recovered",
					zap.String("path", r.URL.Path),
					zap.String("panic", fmt.Sprint(rec)),
					zap.Stack("stack"),
				)
				utils.WriteJSONError(w, utils.MsgUnexpectedError, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
