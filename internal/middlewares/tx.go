package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-articles/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction.
// The transaction is committed when the handler answers with a status below 400
// and rolled back otherwise. The response is held back until the outcome is
// known, so a failed commit is reported as 500 instead of the handler's answer.
// Hooks registered with AfterCommit run once the commit succeeded.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeTxError(w)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			state := &txState{tx: tx}
			bw := newBufferedWriter()
			next.ServeHTTP(bw, r.WithContext(context.WithValue(r.Context(), txKey, state)))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeTxError(w)
				return
			}

			bw.flush(w)
			for _, fn := range state.afterCommit {
				fn()
			}
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

type txState struct {
	tx          *sqlx.Tx
	afterCommit []func()
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		return nil
	}
	return state.tx
}

// AfterCommit defers fn until the request transaction commits. It reports
// false when ctx carries no transaction; the caller should then run fn itself.
// Deferred hooks are dropped on rollback.
func AfterCommit(ctx context.Context, fn func()) bool {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		return false
	}
	state.afterCommit = append(state.afterCommit, fn)
	return true
}

func writeTxError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"message": "Internal server error"})
}

// bufferedWriter keeps status, headers and body in memory until flush.
type bufferedWriter struct {
	header      http.Header
	body        bytes.Buffer
	statusCode  int
	wroteHeader bool
}

func newBufferedWriter() *bufferedWriter {
	return &bufferedWriter{header: make(http.Header), statusCode: http.StatusOK}
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	if bw.wroteHeader {
		return
	}
	bw.statusCode = code
	bw.wroteHeader = true
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	if !bw.wroteHeader {
		bw.WriteHeader(http.StatusOK)
	}
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	dst := w.Header()
	for k, v := range bw.header {
		dst[k] = v
	}
	w.WriteHeader(bw.statusCode)
	if bw.body.Len() > 0 {
		if _, err := w.Write(bw.body.Bytes()); err != nil {
			logger.Log.Errorw("failed to write response", "error", err)
		}
	}
}
