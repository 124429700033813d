package instantevent

import "time"

// EventState is the derived lifecycle state of an event. It is never
// persisted; every caller that needs to know what is legal recomputes it
// from the event doc.
type EventState string

const (
	StateNone     EventState = "none"
	StateLocked   EventState = "locked"
	StateShowAll  EventState = "showAll"
	StateClosed   EventState = "closed"
	StateQuestion EventState = "question"
	StateReply    EventState = "reply"
	StatePre      EventState = "pre"
)

// StateText maps a state to its display label.
var StateText = map[EventState]string{
	StatePre:      "준비중",
	StateReply:    "댓글 등록 기간",
	StateQuestion: "질문 등록 기간",
	StateClosed:   "종료",
	StateLocked:   "댓글 등록 잠금",
	StateShowAll:  "결과 공개",
	StateNone:     "-",
}

// CalEventState derives the lifecycle state from the event's flags and the
// question window. First match wins: the flags can coexist, so the order
// locked > showAll > closed > time-window is significant.
func CalEventState(info *InstantEvent, now time.Time) EventState {
	if info == nil {
		return StateNone
	}
	if info.Locked && !info.ShowAllReply && !info.Closed {
		return StateLocked
	}
	if info.ShowAllReply && !info.Closed {
		return StateShowAll
	}
	if info.Closed {
		return StateClosed
	}
	start := ParseISO(info.StartDate)
	end := ParseISO(info.EndDate)
	// within [startDate, endDate], inclusive on both ends
	if !now.Before(start) && !now.After(end) {
		return StateQuestion
	}
	if now.After(end) {
		return StateReply
	}
	return StatePre
}

// ParseISO parses an ISO-8601 instant. Dates are written by this service
// as RFC3339, so a parse failure means corrupt data; the zero time keeps
// the state machine deterministic in that case.
func ParseISO(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
