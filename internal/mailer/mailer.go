// Package mailer is a mock delivery service. A real deployment would POST
// the artifact to an HR records endpoint; here the send is simulated so
// the rest of the flow can be exercised end to end.
package mailer

import (
	"context"
	"fmt"
	"time"
)

// RecordsRecipient is the fixed training-records inbox certificates are
// delivered to, regardless of the user's own email.
const RecordsRecipient = "training-records@moonbite.example"

// simulated network latency
const sendDelay = 400 * time.Millisecond

// Send delivers the certificate artifact for name to the records inbox.
// The caller only learns success or failure, never why.
func Send(ctx context.Context, name string, artifact []byte) error {
	if len(artifact) == 0 {
		return fmt.Errorf("mailer: empty artifact")
	}
	select {
	case <-time.After(sendDelay):
	case <-ctx.Done():
		return ctx.Err()
	}
	// Delivery is simulated; a real implementation would upload the
	// artifact and the recipient metadata here.
	_ = name
	_ = RecordsRecipient
	return nil
}
