// Package report renders a project's time entries as a tabular PDF.
package report

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/emiliopalmerini/tempo/internal/domain"
)

// Metadata describes the exported document.
type Metadata struct {
	Title    string
	Subject  string
	Author   string
	Keywords string
	Creator  string
}

// Build renders the entries into a PDF document. Entries without an end
// time are still running and do not appear in the table. An empty entry
// list is an error.
func Build(entries []*domain.TimeEntry, meta Metadata) ([]byte, error) {
	if len(entries) == 0 {
		return nil, domain.ErrNoEntries
	}

	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("Working time report", props.Text{
					Top:   3,
					Style: consts.Bold,
					Size:  16,
				})
			})
		})
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("Project: %s", meta.Title), props.Text{
					Top:  2,
					Size: 12,
				})
			})
		})
		if meta.Author != "" || meta.Subject != "" {
			m.Row(6, func() {
				m.Col(12, func() {
					m.Text(metaLine(meta), props.Text{
						Top:   1,
						Size:  9,
						Color: color.Color{Red: 100, Green: 100, Blue: 100},
					})
				})
			})
		}
	})

	headers := []string{"Date", "Start", "Stop", "Duration"}
	rows := [][]string{}
	var total int64

	for _, e := range entries {
		if e.EndTime == nil {
			continue
		}
		rows = append(rows, []string{
			time.UnixMilli(e.StartTime).Format("2006-01-02"),
			time.UnixMilli(e.StartTime).Format("15:04"),
			time.UnixMilli(*e.EndTime).Format("15:04"),
			FormatWorktime(*e.EndTime - e.StartTime),
		})
		total += *e.EndTime - e.StartTime
	}

	m.TableList(headers, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{3, 3, 3, 3},
		},
		ContentProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{3, 3, 3, 3},
		},
		Align:                consts.Center,
		AlternatedBackground: &color.Color{Red: 240, Green: 240, Blue: 240},
		HeaderContentSpace:   1,
		Line:                 false,
	})

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Total: %s", FormatWorktime(total)), props.Text{
				Top:   8,
				Style: consts.Bold,
				Align: consts.Right,
				Size:  12,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename derives the download name for a report generated today, e.g.
// "time_entries_website_2026-08-29.pdf".
func Filename(title string, now time.Time) string {
	return fmt.Sprintf("time_entries_%s_%s.pdf", title, now.Format("2006-01-02"))
}

// FormatWorktime renders a millisecond duration as zero-padded HH:MM.
func FormatWorktime(ms int64) string {
	totalSeconds := ms / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

func metaLine(meta Metadata) string {
	line := ""
	if meta.Subject != "" {
		line = meta.Subject
	}
	if meta.Author != "" {
		if line != "" {
			line += " / "
		}
		line += meta.Author
	}
	return line
}
