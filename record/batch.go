package record

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Batch is a unit of records flushed to the target in one transaction. The ID
// is a ULID so batches sort by creation time in logs and error reports.
type Batch struct {
	ID      string
	Records []Record
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewBatch wraps records in a Batch with a freshly generated ID.
func NewBatch(records []Record) Batch {
	entropyMu.Lock()
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	entropyMu.Unlock()
	return Batch{ID: id.String(), Records: records}
}
