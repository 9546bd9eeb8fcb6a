package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying why a platform publish failed.
var (
	// ErrTagNetwork marks outbound calls that failed at the transport level,
	// including image fetches that did not return 2xx.
	ErrTagNetwork = goerr.NewTag("network_error")

	// ErrTagMissingContainer marks an image-feed container creation that
	// returned no container id.
	ErrTagMissingContainer = goerr.NewTag("missing_container")

	// ErrTagVendorRejected marks a vendor response carrying an error payload
	// or a non-2xx status.
	ErrTagVendorRejected = goerr.NewTag("vendor_rejected")

	// ErrTagNotConfigured marks a publisher whose credentials are empty.
	ErrTagNotConfigured = goerr.NewTag("not_configured")

	// ErrTagInvalidEvent marks an inbound webhook body that cannot be parsed.
	ErrTagInvalidEvent = goerr.NewTag("invalid_event")
)
