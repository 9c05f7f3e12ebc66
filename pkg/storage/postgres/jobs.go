package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// AddJob enqueues a River job through the database/sql driver.
//
// Inside a transaction (DB is a *sql.Tx) the job is inserted with InsertTx so
// it becomes visible only when the surrounding transaction commits; a purchase
// that is rolled back therefore never produces a PurchaseRecorded job. Outside
// a transaction the insert is immediately visible.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	if tx, ok := p.DB.(*sql.Tx); ok {
		client, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return false, storage.Failed(err, "create river client")
		}

		job, err := client.InsertTx(ctx, tx, args, opts)
		if err != nil {
			return false, storage.Failed(err, "insert "+args.Kind()+" job")
		}

		return !job.UniqueSkippedAsDuplicate, nil
	}

	db, ok := p.DB.(*sql.DB)
	if !ok {
		return false, storage.Failed(fmt.Errorf("unsupported executor %T", p.DB), "insert "+args.Kind()+" job")
	}

	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return false, storage.Failed(err, "create river client")
	}

	job, err := client.Insert(ctx, args, opts)
	if err != nil {
		return false, storage.Failed(err, "insert "+args.Kind()+" job")
	}

	return !job.UniqueSkippedAsDuplicate, nil
}
