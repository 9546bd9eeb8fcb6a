package social

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/podrelay/pkg/domain/model"
)

// finish converts the end of a publish flow into a result and logs it with
// the platform tag. Errors stop here.
func finish(ctx context.Context, platform model.Platform, postID string, last model.PublishState, err error) *model.PublishResult {
	logger := ctxlog.From(ctx).With("platform", platform)
	result := model.NewPublishResult(platform, postID, last, err)

	if err != nil {
		logger.Error("Failed to publish announcement",
			"error", err,
			"failure", result.Failure,
			"last_state", last,
		)
		return result
	}

	logger.Info("Published announcement", "post_id", postID)
	return result
}
