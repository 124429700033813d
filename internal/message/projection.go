package message

import (
	"sort"
	"time"
)

// Viewer describes who is looking at a message list. IsOwnerMember is doc
// existence in owner_members; IsShowAll means the event state is showAll.
type Viewer struct {
	UID           string
	IsOwnerMember bool
	IsShowAll     bool
}

// ExtractReaction is the single choke point for reaction visibility.
// Organizers and public-results viewers see every entry with the voter
// identity stripped; a viewer who reacted sees only their own entries;
// everyone else sees nothing. The returned entries never carry a
// non-empty voter string.
func ExtractReaction(reaction []ReactionItem, isOwnerMember, isShowAll, voted bool, viewerUID string) []ReactionItem {
	if isOwnerMember || isShowAll {
		out := make([]ReactionItem, 0, len(reaction))
		for _, item := range reaction {
			out = append(out, ReactionItem{Type: item.Type, Voter: ""})
		}
		return out
	}
	if voted {
		out := make([]ReactionItem, 0, 1)
		for _, item := range reaction {
			if item.Voter == viewerUID {
				out = append(out, ReactionItem{Type: item.Type, Voter: ""})
			}
		}
		return out
	}
	return []ReactionItem{}
}

func hasReacted(reaction []ReactionItem, uid string) bool {
	if uid == "" {
		return false
	}
	for _, item := range reaction {
		if item.Voter == uid {
			return true
		}
	}
	return false
}

func countReaction(reaction []ReactionItem, reactionType string) int {
	n := 0
	for _, item := range reaction {
		if item.Type == reactionType {
			n++
		}
	}
	return n
}

// sortReplies orders replies for display: organizer-authored replies go
// after organic ones, ties break by creation time ascending. Storage
// order is newest-first, so this always re-sorts.
func sortReplies(replies []Reply) []Reply {
	out := make([]Reply, len(replies))
	copy(out, replies)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreateByOwner != out[j].CreateByOwner {
			return !out[i].CreateByOwner
		}
		return out[i].CreateAt < out[j].CreateAt
	})
	return out
}

// projectReplies applies deny redaction and display ordering.
func projectReplies(replies []Reply) []Reply {
	out := sortReplies(replies)
	for i := range out {
		if out[i].Deny {
			out[i].Reply = DeniedReplyText
		}
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// projectMessage builds the per-viewer view of one message. visible is
// false when the message must be dropped from the result entirely
// (denied content is fully redacted from non-organizers, not just its
// text).
func projectMessage(msg ServerMessage, viewer Viewer) (MessageView, bool) {
	doc := msg.Doc
	if doc.Deny && !viewer.IsOwnerMember {
		return MessageView{}, false
	}
	voted := hasReacted(doc.Reaction, viewer.UID)
	view := MessageView{
		ID:         msg.ID,
		Message:    doc.Message,
		Vote:       doc.Vote,
		Voter:      []string{},
		Voted:      voted,
		Reaction:   ExtractReaction(doc.Reaction, viewer.IsOwnerMember, viewer.IsShowAll, voted, viewer.UID),
		Deny:       doc.Deny,
		SortWeight: doc.SortWeight,
		Pin:        doc.Pin,
		CreateAt:   formatTime(doc.CreateAt),
		UpdateAt:   formatTime(doc.UpdateAt),
		Reply:      []Reply{},
	}
	if viewer.IsOwnerMember || viewer.IsShowAll {
		view.Reply = projectReplies(doc.Reply)
	}
	return view, true
}

// ProjectList filters, projects and orders an event's messages for one
// viewer. Base order is pin-first, then sortWeight desc, then createAt
// desc. Once results are public (or an organizer previews them) the list
// re-sorts by LIKE count and the manual sort weight is zeroed in the
// view; the re-sort is display-only and never persisted.
func ProjectList(msgs []ServerMessage, viewer Viewer, isPreview bool) []MessageView {
	ordered := make([]ServerMessage, len(msgs))
	copy(ordered, msgs)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].Doc, ordered[j].Doc
		if a.Pin != b.Pin {
			return a.Pin
		}
		if a.SortWeight != b.SortWeight {
			return a.SortWeight > b.SortWeight
		}
		return a.CreateAt.After(b.CreateAt)
	})

	byLike := viewer.IsShowAll || (isPreview && viewer.IsOwnerMember)
	if byLike {
		sort.SliceStable(ordered, func(i, j int) bool {
			a, b := ordered[i].Doc, ordered[j].Doc
			if a.Pin != b.Pin {
				return a.Pin
			}
			return countReaction(a.Reaction, ReactionLike) > countReaction(b.Reaction, ReactionLike)
		})
	}

	list := make([]MessageView, 0, len(ordered))
	for _, msg := range ordered {
		view, visible := projectMessage(msg, viewer)
		if !visible {
			continue
		}
		if byLike {
			view.SortWeight = 0
		}
		list = append(list, view)
	}
	return list
}

// UniqueVoterCount counts distinct reaction voters across every message
// of the event, denied messages included.
func UniqueVoterCount(msgs []ServerMessage) int {
	seen := map[string]struct{}{}
	for _, msg := range msgs {
		for _, item := range msg.Doc.Reaction {
			seen[item.Voter] = struct{}{}
		}
	}
	return len(seen)
}
