package message

import "time"

// Subcollection of an event doc holding its messages.
const Collection = "messages"

// Placeholder bodies shown in place of moderated content.
const (
	DeniedMessageText = "비공개 처리된 메시지입니다."
	DeniedReplyText   = "비공개 처리된 댓글입니다."
)

// Reaction types. A (voter, type) pair appears at most once per message;
// sending the same pair again removes it.
const (
	ReactionLike    = "LIKE"
	ReactionNext    = "NEXT"
	ReactionHaha    = "HAHA"
	ReactionEye     = "EYE"
	ReactionCheerUp = "CHEERUP"
)

// ReactionTypes is the closed set, in download column order.
var ReactionTypes = []string{ReactionLike, ReactionNext, ReactionHaha, ReactionEye, ReactionCheerUp}

func IsReactionType(t string) bool {
	for _, rt := range ReactionTypes {
		if rt == t {
			return true
		}
	}
	return false
}

type ReactionItem struct {
	Type  string `firestore:"type" json:"type"`
	Voter string `firestore:"voter" json:"voter"`
}

type ReplyAuthor struct {
	DisplayName string `firestore:"displayName" json:"displayName"`
	PhotoURL    string `firestore:"photoURL,omitempty" json:"photoURL,omitempty"`
}

type Reply struct {
	ID       string       `firestore:"id" json:"id"`
	Reply    string       `firestore:"reply" json:"reply"`
	CreateAt string       `firestore:"createAt" json:"createAt"`
	Deny     bool         `firestore:"deny,omitempty" json:"deny,omitempty"`
	Author   *ReplyAuthor `firestore:"author,omitempty" json:"author,omitempty"`
	// CreateByOwner marks replies written by organizers; they sort after
	// organic replies at read time.
	CreateByOwner bool `firestore:"createByOwner,omitempty" json:"createByOwner,omitempty"`
}

// MessageDoc is the stored shape of one submitted question. Vote/Voter are
// the legacy binary-vote fields, superseded by Reaction but still served.
type MessageDoc struct {
	Message    string         `firestore:"message"`
	Vote       int            `firestore:"vote"`
	Voter      []string       `firestore:"voter,omitempty"`
	Reaction   []ReactionItem `firestore:"reaction,omitempty"`
	Deny       bool           `firestore:"deny,omitempty"`
	SortWeight int            `firestore:"sortWeight"`
	Pin        bool           `firestore:"pin,omitempty"`
	CreateAt   time.Time      `firestore:"createAt,serverTimestamp"`
	UpdateAt   time.Time      `firestore:"updateAt,omitempty"`
	Reply      []Reply        `firestore:"reply,omitempty"`
}

// ServerMessage pairs a stored doc with its id for the projection layer.
type ServerMessage struct {
	ID  string
	Doc MessageDoc
}

// MessageView is the per-viewer projection returned to clients. Voter is
// always emptied; individual identity never leaves the store.
type MessageView struct {
	ID         string         `json:"id"`
	Message    string         `json:"message"`
	Vote       int            `json:"vote"`
	Voter      []string       `json:"voter"`
	Voted      bool           `json:"voted"`
	Reaction   []ReactionItem `json:"reaction"`
	Deny       bool           `json:"deny,omitempty"`
	SortWeight int            `json:"sortWeight"`
	Pin        bool           `json:"pin,omitempty"`
	CreateAt   string         `json:"createAt"`
	UpdateAt   string         `json:"updateAt,omitempty"`
	Reply      []Reply        `json:"reply"`
}

// ListWithUniqueVoter is the list projection plus the distinct count of
// everyone who reacted anywhere in the event.
type ListWithUniqueVoter struct {
	UniqueVoterCount int           `json:"uniqueVoterCount"`
	List             []MessageView `json:"list"`
}

// ============================
// Request bodies

type PostMessageRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
}

type UpdateBodyRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
}

type DenyRequest struct {
	Deny *bool `json:"deny,omitempty"`
}

type SortWeightRequest struct {
	SortWeight int `json:"sortWeight"`
}

type VoteRequest struct {
	IsUpvote bool `json:"isUpvote"`
}

type ReactionRequest struct {
	Type string `json:"type" binding:"required"`
}

type PostReplyRequest struct {
	Reply  string       `json:"reply" binding:"required,max=1000"`
	Author *ReplyAuthor `json:"author,omitempty"`
}
