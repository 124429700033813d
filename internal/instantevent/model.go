package instantevent

import "strings"

// Collection holds one doc per Q&A event. CounterDoc is the shared
// creation counter incremented in the same transaction as each create.
const (
	Collection = "instants"
	CounterDoc = "collection_info/instants"
)

// InstantEvent is the aggregate root for one Q&A session.
type InstantEvent struct {
	InstantEventID string `firestore:"-" json:"instantEventId"`
	Title          string `firestore:"title" json:"title"`
	Desc           string `firestore:"desc,omitempty" json:"desc,omitempty"`
	StartDate      string `firestore:"startDate" json:"startDate"`
	EndDate        string `firestore:"endDate" json:"endDate"`
	// Closed is the terminal flag. Locked blocks new comments and
	// reactions before results go public; ShowAllReply makes results
	// fully public; CollectReply enables the reply-collection phase.
	Closed       bool   `firestore:"closed" json:"closed"`
	Locked       bool   `firestore:"locked,omitempty" json:"locked,omitempty"`
	ShowAllReply bool   `firestore:"showAllReply,omitempty" json:"showAllReply,omitempty"`
	CollectReply bool   `firestore:"collectReply,omitempty" json:"collectReply,omitempty"`
	TitleImg     string `firestore:"titleImg,omitempty" json:"titleImg,omitempty"`
	BgImg        string `firestore:"bgImg,omitempty" json:"bgImg,omitempty"`
	CreateCount  int    `firestore:"createCount" json:"-"`
}

// ============================
// Request bodies

type CreateEventRequest struct {
	Title     string `json:"title" binding:"required"`
	Desc      string `json:"desc,omitempty"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	TitleImg  string `json:"titleImg,omitempty"`
	BgImg     string `json:"bgImg,omitempty"`
}

type UpdateEventRequest struct {
	InstantEventID string `json:"-"`
	Title          string `json:"title" binding:"required"`
	Desc           string `json:"desc,omitempty"`
	StartDate      string `json:"startDate" binding:"required"`
	EndDate        string `json:"endDate" binding:"required"`
	TitleImg       string `json:"titleImg,omitempty"`
	BgImg          string `json:"bgImg,omitempty"`
}

// PagedEvents is one page of the reverse-chronological event list.
type PagedEvents struct {
	TotalElements int            `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	Content       []InstantEvent `json:"content"`
}

// EscapeDesc stores newlines as literal \n sequences. The rendering layer
// un-escapes on read.
func EscapeDesc(desc string) string {
	return strings.ReplaceAll(desc, "\n", "\\n")
}
