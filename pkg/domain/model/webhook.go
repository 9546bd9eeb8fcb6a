package model

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/domain/types"
)

// EventType is the value of the "event" key of an inbound webhook
type EventType string

const (
	EventEpisodePublished EventType = "episodePublished"
)

const (
	// DefaultEpisodeTitle is used when the event carries no title
	DefaultEpisodeTitle = "Untitled Episode"
	// DefaultCoverURL is used when the event carries no cover image. It is
	// passed to publishers unchanged.
	DefaultCoverURL = ""
)

// PublishEvent is a notification that a podcast episode went live
type PublishEvent struct {
	Event      EventType
	Title      string
	CoverURL   string
	ReceivedAt time.Time
}

// IsEpisodePublished reports whether the event should be relayed
func (e *PublishEvent) IsEpisodePublished() bool {
	return e.Event == EventEpisodePublished
}

// ParsePublishEvent decodes a webhook body and applies field defaults.
// The body must be a JSON object; keys are otherwise not enforced.
func ParsePublishEvent(body []byte) (*PublishEvent, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, goerr.Wrap(err, "webhook body is not a JSON object", goerr.T(types.ErrTagInvalidEvent))
	}
	if fields == nil {
		return nil, goerr.New("webhook body is null", goerr.T(types.ErrTagInvalidEvent))
	}

	return &PublishEvent{
		Event:      EventType(fieldText(fields["event"], "")),
		Title:      fieldText(fields["title"], DefaultEpisodeTitle),
		CoverURL:   fieldText(fields["coverUrl"], DefaultCoverURL),
		ReceivedAt: time.Now(),
	}, nil
}

// fieldText returns a JSON string as-is, def for an absent or null value, and
// the literal text of any other JSON value.
func fieldText(raw json.RawMessage, def string) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return def
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
