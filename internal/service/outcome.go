package service

// OutcomeKind is the reconciled result category of a dual-write
// submission. Exactly one kind is produced for every combination of the
// two failure channels.
type OutcomeKind string

const (
	OutcomeBothOK            OutcomeKind = "BOTH_OK"
	OutcomeBothFailed        OutcomeKind = "BOTH_FAILED"
	OutcomeStoreFailedOnly   OutcomeKind = "STORE_FAILED_ONLY"
	OutcomeWebhookFailedOnly OutcomeKind = "WEBHOOK_FAILED_ONLY"
)

// Outcome is the user-facing result of a submission.
type Outcome struct {
	Kind    OutcomeKind `json:"kind"`
	Message string      `json:"message"`
	CallID  string      `json:"call_id,omitempty"`
}

const (
	messageBothOK        = "Your wake-up call has been scheduled successfully."
	messageBothFailed    = "Failed to schedule your wake-up call: nothing was saved and the notification engine was not reached. Please try again."
	messageStoreFailed   = "We could not save your wake-up call, though the notification engine was contacted. Please try again."
	messageWebhookFailed = "Your wake-up call was saved, but the notification engine was not notified. Resubmit to make sure the call is actually placed."
)

// Reconcile combines the two independent write results into one outcome.
// A saved record without a webhook notification produces no actual call,
// so WEBHOOK_FAILED_ONLY still tells the user to resubmit.
func Reconcile(storeErr, webhookErr error) Outcome {
	switch {
	case storeErr == nil && webhookErr == nil:
		return Outcome{Kind: OutcomeBothOK, Message: messageBothOK}
	case storeErr != nil && webhookErr != nil:
		return Outcome{Kind: OutcomeBothFailed, Message: messageBothFailed}
	case storeErr != nil:
		return Outcome{Kind: OutcomeStoreFailedOnly, Message: messageStoreFailed}
	default:
		return Outcome{Kind: OutcomeWebhookFailedOnly, Message: messageWebhookFailed}
	}
}
