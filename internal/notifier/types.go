package notifier

import (
	"strings"

	"github.com/KirkDiggler/starwatch/internal/models"
)

// LiveInput carries the template arguments of live-on and live-off messages
type LiveInput struct {
	Streamer *models.Streamer

	UName string
	Title string
	URL   string
	Cover string
}

// ReportInput carries a finished session's report
type ReportInput struct {
	Streamer *models.Streamer
	Report   *models.Report
}

// PostInput carries the template arguments of a new-post message
type PostInput struct {
	Streamer *models.Streamer

	UName  string
	Action string
	URL    string
}

// SendToAllInput carries a message for every target accepted by Filter
type SendToAllInput struct {
	Streamer *models.Streamer
	Message  string

	// Filter selects targets, nil selects all of them
	Filter func(target *models.Target) bool
}

// Render fills the {uname}, {title}, {url} and {cover} placeholders of a template
func (in *LiveInput) Render(template string) string {
	return strings.NewReplacer(
		"{uname}", in.UName,
		"{title}", in.Title,
		"{url}", in.URL,
		"{cover}", in.Cover,
	).Replace(template)
}

// Render fills the {uname}, {action} and {url} placeholders of a template
func (in *PostInput) Render(template string) string {
	return strings.NewReplacer(
		"{uname}", in.UName,
		"{action}", in.Action,
		"{url}", in.URL,
	).Replace(template)
}

// LiveOnEnabled is a SendToAll filter for targets with live-on notifications
func LiveOnEnabled(target *models.Target) bool {
	return target.LiveOn.Enabled
}
