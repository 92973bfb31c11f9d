package templates

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/emiliopalmerini/tempo/internal/i18n"
)

// component adapts a plain writer function into a templ.Component.
func component(f func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return f(w)
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

func t(locale, key string) string {
	return i18n.T(locale, key)
}

// FormatDate renders an epoch-millisecond timestamp as a date.
func FormatDate(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02")
}

// FormatTime renders an epoch-millisecond timestamp as a clock time.
func FormatTime(ms int64) string {
	return time.UnixMilli(ms).Format("15:04")
}

// FormatDuration renders a millisecond duration as zero-padded HH:MM.
func FormatDuration(ms int64) string {
	totalSeconds := ms / 1000
	return fmt.Sprintf("%02d:%02d", totalSeconds/3600, (totalSeconds%3600)/60)
}
