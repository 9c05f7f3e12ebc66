package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues River jobs. When the handle is transactional the job
// becomes visible only once the transaction commits, which lets callers tie
// follow-up work to the write that triggered it.
type JobStorage interface {
	// AddJob enqueues args. The boolean is false when River skipped the insert
	// as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
