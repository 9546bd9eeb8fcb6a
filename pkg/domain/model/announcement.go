package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Show identifies the podcast being announced
type Show struct {
	Name string
	URL  string
}

// DefaultShow is the show announced when no override is configured
var DefaultShow = Show{
	Name: "The Modern Space Race Podcast",
	URL:  "https://shows.acast.com/tmhe-modern-space-rmodernspacerace",
}

const announcementFormat = "🎙️ New Episode Out on *%s*!\n\n🛰️ %s\n\n🎧 Listen here: %s"

// Announcement is the text and image shared by every platform post.
// It is built once per event and must not be modified afterwards.
type Announcement struct {
	ID       string
	Text     string
	ImageURL string
}

// NewAnnouncement formats the announcement for an episode of show
func NewAnnouncement(show Show, event *PublishEvent) *Announcement {
	return &Announcement{
		ID:       uuid.NewString(),
		Text:     fmt.Sprintf(announcementFormat, show.Name, event.Title, show.URL),
		ImageURL: event.CoverURL,
	}
}
