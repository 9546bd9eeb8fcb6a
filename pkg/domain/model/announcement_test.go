package model_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/podrelay/pkg/domain/model"
)

func TestNewAnnouncement(t *testing.T) {
	t.Run("formats episode announcement", func(t *testing.T) {
		event, err := model.ParsePublishEvent([]byte(`{"event":"episodePublished","title":"Ep. 12: Mars","coverUrl":"https://x/c.jpg"}`))
		gt.NoError(t, err)

		ann := model.NewAnnouncement(model.DefaultShow, event)
		gt.V(t, ann.Text).Equal("🎙️ New Episode Out on *The Modern Space Race Podcast*!\n\n🛰️ Ep. 12: Mars\n\n🎧 Listen here: https://shows.acast.com/tmhe-modern-space-rmodernspacerace")
		gt.V(t, ann.ImageURL).Equal("https://x/c.jpg")
		gt.V(t, ann.ID).NotEqual("")
	})

	t.Run("untitled episode without cover", func(t *testing.T) {
		event, err := model.ParsePublishEvent([]byte(`{"event":"episodePublished"}`))
		gt.NoError(t, err)

		ann := model.NewAnnouncement(model.DefaultShow, event)
		gt.True(t, strings.Contains(ann.Text, "Untitled Episode"))
		gt.V(t, ann.ImageURL).Equal("")
	})

	t.Run("custom show", func(t *testing.T) {
		show := model.Show{Name: "Orbit Weekly", URL: "https://example.com/orbit"}
		ann := model.NewAnnouncement(show, &model.PublishEvent{Title: "Pilot"})
		gt.True(t, strings.Contains(ann.Text, "*Orbit Weekly*"))
		gt.True(t, strings.HasSuffix(ann.Text, "Listen here: https://example.com/orbit"))
	})

	t.Run("each announcement gets its own id", func(t *testing.T) {
		event := &model.PublishEvent{Title: "Pilot"}
		a := model.NewAnnouncement(model.DefaultShow, event)
		b := model.NewAnnouncement(model.DefaultShow, event)
		gt.V(t, a.ID).NotEqual(b.ID)
	})
}
