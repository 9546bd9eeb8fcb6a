package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/domain/types"
)

// Platform names a social platform an announcement is relayed to
type Platform string

const (
	PlatformTwitter   Platform = "twitter"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformPinterest Platform = "pinterest"
)

// PublishState is a step of a platform publish flow
type PublishState string

const (
	StateCreated        PublishState = "created"
	StateContainerReady PublishState = "container_ready"
	StateAssetReady     PublishState = "asset_ready"
	StatePublished      PublishState = "published"
	StateFailed         PublishState = "failed"
)

// FailureKind classifies a failed publish
type FailureKind string

const (
	FailureNone             FailureKind = ""
	FailureNetwork          FailureKind = "network_error"
	FailureMissingContainer FailureKind = "missing_container"
	FailureVendorRejected   FailureKind = "vendor_rejected"
	FailureNotConfigured    FailureKind = "not_configured"
	FailureUnknown          FailureKind = "unknown"
)

// PublishResult is the outcome of publishing one announcement to one platform
type PublishResult struct {
	Platform Platform     `json:"platform"`
	Success  bool         `json:"success"`
	PostID   string       `json:"post_id,omitempty"`
	State    PublishState `json:"state"`
	// LastState is the last state reached before a failure
	LastState PublishState `json:"last_state,omitempty"`
	Failure   FailureKind  `json:"failure,omitempty"`
	Err       error        `json:"-"`
}

// NewPublishResult builds a result from the final state of a publish flow.
// A nil err yields a published result; otherwise the failure kind is taken
// from the error tag.
func NewPublishResult(platform Platform, postID string, last PublishState, err error) *PublishResult {
	if err == nil {
		return &PublishResult{
			Platform: platform,
			Success:  true,
			PostID:   postID,
			State:    StatePublished,
		}
	}

	return &PublishResult{
		Platform:  platform,
		State:     StateFailed,
		LastState: last,
		Failure:   ClassifyFailure(err),
		Err:       err,
	}
}

// ClassifyFailure maps an error to its FailureKind by goerr tag
func ClassifyFailure(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case goerr.HasTag(err, types.ErrTagMissingContainer):
		return FailureMissingContainer
	case goerr.HasTag(err, types.ErrTagVendorRejected):
		return FailureVendorRejected
	case goerr.HasTag(err, types.ErrTagNetwork):
		return FailureNetwork
	case goerr.HasTag(err, types.ErrTagNotConfigured):
		return FailureNotConfigured
	default:
		return FailureUnknown
	}
}

// DispatchStatus is the acknowledgment returned to the webhook caller
type DispatchStatus string

const (
	StatusIgnored DispatchStatus = "ignored"
	StatusPosted  DispatchStatus = "posted"
)

// DispatchReport collects the outcome of one webhook invocation.
// Results is empty for ignored events and for asynchronous dispatch.
type DispatchReport struct {
	Status       DispatchStatus
	Announcement *Announcement
	Results      []*PublishResult
}

// Failed returns the results of platforms that did not publish
func (r *DispatchReport) Failed() []*PublishResult {
	var failed []*PublishResult
	for _, result := range r.Results {
		if !result.Success {
			failed = append(failed, result)
		}
	}
	return failed
}
