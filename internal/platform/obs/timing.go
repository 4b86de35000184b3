package obs

import (
	"context"
	"log"
	"strconv"
	"sync/atomic"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

var requestSeq atomic.Uint64

// Attach a process-unique request id to ctx.
func WithRequestID(ctx context.Context) (context.Context, string) {
	id := strconv.FormatUint(requestSeq.Add(1), 10)
	return context.WithValue(ctx, RequestIDKey, id), id
}

// Time starts a timer for a named operation. The returned func logs the
// duration, and the error when errp points at a non-nil one.
//
//	defer obs.Time(ctx, "runs.SaveRun")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)
	if reqID == "" {
		reqID = "-"
	}

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
