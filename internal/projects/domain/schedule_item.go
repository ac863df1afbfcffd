package domain

import "time"

// ScheduleItemKind tags the concrete type of a milestone entry.
type ScheduleItemKind string

const (
	ItemTask    ScheduleItemKind = "TASK"
	ItemMeeting ScheduleItemKind = "MEETING"
)

// ScheduleItem is an entry on a milestone's timeline. Tasks and
// meetings both satisfy it.
type ScheduleItem interface {
	Kind() ScheduleItemKind
	WindowStart() time.Time
	WindowEnd() time.Time
	itemRef() string
}
