package catalog

import (
	"storefront/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/shopspring/decimal"
)

// PurchaseRecordedArgs is the River job enqueued in the transaction that
// stores a purchase. Its worker runs only after the purchase is committed.
type PurchaseRecordedArgs struct {
	// PurchaseID is unique per job so a retried enqueue cannot double count a sale.
	PurchaseID  domain.PurchaseID  `json:"purchaseId"  river:"unique"`
	UserID      domain.UserID      `json:"userId"`
	ContentID   domain.ContentID   `json:"contentId"`
	ContentType domain.ContentType `json:"contentType"`
	PricePaid   decimal.Decimal    `json:"pricePaid"`

	maxAttempts int
}

// Kind returns the River job kind the purchase worker is registered under.
func (args PurchaseRecordedArgs) Kind() string { return "PurchaseRecorded" }

// InsertOpts returns the retry budget and uniqueness settings of the job.
func (args PurchaseRecordedArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	}
}
