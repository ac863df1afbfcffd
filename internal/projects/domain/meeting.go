package domain

import (
	"encoding/json"
	"time"

	"github.com/GalaxiaWonder-AppsWeb/propgms-go/internal/shared"
)

// Meeting is a schedule item gathering team members around a topic.
type Meeting struct {
	id           shared.ID
	ref          shared.Ref
	topic        string
	description  string
	startingDate time.Time
	endingDate   time.Time
	calledBy     shared.ID
	participants []shared.ID
	milestoneID  shared.ID
}

// MeetingConfig carries the named, defaulted construction fields.
type MeetingConfig struct {
	ID           shared.ID
	Topic        string
	Description  string
	StartingDate time.Time
	EndingDate   time.Time
	CalledBy     shared.ID
	Participants []shared.ID
	MilestoneID  shared.ID
}

// NewMeeting validates and builds a meeting.
func NewMeeting(cfg MeetingConfig) (*Meeting, error) {
	if cfg.Topic == "" {
		return nil, shared.NewValidationError("topic", "topic is required and must be a non-empty string")
	}
	if cfg.StartingDate.IsZero() {
		cfg.StartingDate = time.Now()
	}
	if cfg.EndingDate.IsZero() {
		cfg.EndingDate = cfg.StartingDate
	}
	if cfg.EndingDate.Before(cfg.StartingDate) {
		return nil, shared.NewValidationError("endingDate", "ending date cannot be earlier than starting date")
	}
	return &Meeting{
		id:           cfg.ID,
		ref:          shared.NewRef(),
		topic:        cfg.Topic,
		description:  cfg.Description,
		startingDate: cfg.StartingDate,
		endingDate:   cfg.EndingDate,
		calledBy:     cfg.CalledBy,
		participants: cfg.Participants,
		milestoneID:  cfg.MilestoneID,
	}, nil
}

func (m *Meeting) ID() shared.ID             { return m.id }
func (m *Meeting) Ref() shared.Ref           { return m.ref }
func (m *Meeting) Topic() string             { return m.topic }
func (m *Meeting) Description() string       { return m.description }
func (m *Meeting) StartingDate() time.Time   { return m.startingDate }
func (m *Meeting) EndingDate() time.Time     { return m.endingDate }
func (m *Meeting) CalledBy() shared.ID       { return m.calledBy }
func (m *Meeting) Participants() []shared.ID { return m.participants }
func (m *Meeting) MilestoneID() shared.ID    { return m.milestoneID }

// Kind implements ScheduleItem.
func (m *Meeting) Kind() ScheduleItemKind { return ItemMeeting }

// WindowStart implements ScheduleItem.
func (m *Meeting) WindowStart() time.Time { return m.startingDate }

// WindowEnd implements ScheduleItem.
func (m *Meeting) WindowEnd() time.Time { return m.endingDate }

func (m *Meeting) itemRef() string {
	if v, ok := m.id.Value(); ok {
		return "meeting:" + shared.NewID(v).String()
	}
	return "meeting:" + m.ref.String()
}

// AddParticipant appends a team member, ignoring duplicates.
func (m *Meeting) AddParticipant(memberID shared.ID) error {
	if memberID.IsNil() {
		return shared.NewValidationError("participant", "participant must be a persisted member id")
	}
	for _, p := range m.participants {
		if p.Equals(memberID) {
			return nil
		}
	}
	m.participants = append(m.participants, memberID)
	return nil
}

type meetingJSON struct {
	ID           shared.ID   `json:"id"`
	Topic        string      `json:"topic"`
	Description  string      `json:"description"`
	StartingDate time.Time   `json:"startingDate"`
	EndingDate   time.Time   `json:"endingDate"`
	CalledBy     shared.ID   `json:"calledBy"`
	Participants []shared.ID `json:"participants"`
	MilestoneID  shared.ID   `json:"milestoneId"`
}

// MarshalJSON emits the flat, backend-shaped record.
func (m *Meeting) MarshalJSON() ([]byte, error) {
	participants := m.participants
	if participants == nil {
		participants = []shared.ID{}
	}
	return json.Marshal(meetingJSON{
		ID:           m.id,
		Topic:        m.topic,
		Description:  m.description,
		StartingDate: m.startingDate,
		EndingDate:   m.endingDate,
		CalledBy:     m.calledBy,
		Participants: participants,
		MilestoneID:  m.milestoneID,
	})
}
