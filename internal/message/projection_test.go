package message

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func msgAt(id string, min int) ServerMessage {
	return ServerMessage{
		ID: id,
		Doc: MessageDoc{
			Message:  "question " + id,
			CreateAt: time.Date(2023, 3, 15, 10, min, 0, 0, time.UTC),
		},
	}
}

func TestExtractReactionNeverLeaksVoter(t *testing.T) {
	reaction := []ReactionItem{
		{Type: ReactionLike, Voter: "alice"},
		{Type: ReactionHaha, Voter: "bob"},
	}
	cases := []struct {
		name          string
		isOwnerMember bool
		isShowAll     bool
		voted         bool
		uid           string
		wantLen       int
	}{
		{name: "Organizer", isOwnerMember: true, wantLen: 2},
		{name: "ShowAll", isShowAll: true, wantLen: 2},
		{name: "VotedViewer", voted: true, uid: "alice", wantLen: 1},
		{name: "Stranger", uid: "mallory", wantLen: 0},
		{name: "Anonymous", wantLen: 0},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractReaction(reaction, tt.isOwnerMember, tt.isShowAll, tt.voted, tt.uid)
			if got == nil {
				t.Fatal("must return empty slice, not nil")
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			for _, item := range got {
				if item.Voter != "" {
					t.Fatalf("voter identity leaked: %+v", item)
				}
			}
		})
	}
}

func TestProjectMessageDenyVisibility(t *testing.T) {
	denied := ServerMessage{ID: "m1", Doc: MessageDoc{Message: "secret", Deny: true}}

	if _, visible := projectMessage(denied, Viewer{UID: "u1"}); visible {
		t.Fatal("denied message must be invisible to non-organizers")
	}

	view, visible := projectMessage(denied, Viewer{UID: "o1", IsOwnerMember: true})
	if !visible {
		t.Fatal("organizer must still see the denied message")
	}
	if view.Message != "secret" || !view.Deny {
		t.Fatalf("organizer sees raw body with deny flag, got %+v", view)
	}
}

func TestProjectMessageVoterAlwaysEmpty(t *testing.T) {
	msg := ServerMessage{ID: "m1", Doc: MessageDoc{Voter: []string{"a", "b"}, Vote: 2}}
	view, _ := projectMessage(msg, Viewer{UID: "a", IsOwnerMember: true})
	if len(view.Voter) != 0 || view.Voter == nil {
		t.Fatalf("voter list must be emptied for every viewer, got %v", view.Voter)
	}
	if view.Vote != 2 {
		t.Fatalf("vote count is public, got %d", view.Vote)
	}
}

func TestProjectMessageReplyVisibility(t *testing.T) {
	msg := ServerMessage{ID: "m1", Doc: MessageDoc{
		Reply: []Reply{{ID: "r1", Reply: "answer", CreateAt: "2023-03-15T10:00:00Z"}},
	}}

	plain, _ := projectMessage(msg, Viewer{UID: "u1"})
	if len(plain.Reply) != 0 || plain.Reply == nil {
		t.Fatalf("replies hidden before showAll, got %v", plain.Reply)
	}

	showAll, _ := projectMessage(msg, Viewer{UID: "u1", IsShowAll: true})
	if len(showAll.Reply) != 1 {
		t.Fatalf("replies shown at showAll, got %v", showAll.Reply)
	}
}

func TestProjectRepliesOrderAndRedaction(t *testing.T) {
	replies := []Reply{
		{ID: "r3", Reply: "owner answer", CreateAt: "2023-03-15T09:00:00Z", CreateByOwner: true},
		{ID: "r2", Reply: "hidden", CreateAt: "2023-03-15T11:00:00Z", Deny: true},
		{ID: "r1", Reply: "first", CreateAt: "2023-03-15T10:00:00Z"},
	}
	got := projectReplies(replies)
	wantOrder := []string{"r1", "r2", "r3"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("order[%d] = %s, want %s (full: %v)", i, got[i].ID, id, got)
		}
	}
	if got[1].Reply != DeniedReplyText {
		t.Fatalf("denied reply body must be the placeholder, got %q", got[1].Reply)
	}
	// organizer reply keeps its body but sorts last despite being oldest
	if got[2].Reply != "owner answer" {
		t.Fatalf("owner reply body changed: %q", got[2].Reply)
	}
}

func TestProjectListBaseOrder(t *testing.T) {
	pinned := msgAt("pinned", 0)
	pinned.Doc.Pin = true
	weighted := msgAt("weighted", 1)
	weighted.Doc.SortWeight = 10
	newest := msgAt("newest", 30)
	oldest := msgAt("oldest", 5)

	list := ProjectList([]ServerMessage{oldest, newest, weighted, pinned}, Viewer{UID: "u1"}, false)

	var ids []string
	for _, v := range list {
		ids = append(ids, v.ID)
	}
	want := []string{"pinned", "weighted", "newest", "oldest"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestProjectListShowAllRanksByLike(t *testing.T) {
	popular := msgAt("popular", 0)
	popular.Doc.Reaction = []ReactionItem{
		{Type: ReactionLike, Voter: "a"},
		{Type: ReactionLike, Voter: "b"},
		{Type: ReactionHaha, Voter: "c"},
	}
	weighted := msgAt("weighted", 1)
	weighted.Doc.SortWeight = 100
	pinned := msgAt("pinned", 2)
	pinned.Doc.Pin = true

	list := ProjectList([]ServerMessage{weighted, popular, pinned}, Viewer{UID: "u1", IsShowAll: true}, false)

	var ids []string
	for _, v := range list {
		ids = append(ids, v.ID)
	}
	// pin still outranks likes; HAHA does not count toward ranking
	want := []string{"pinned", "popular", "weighted"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	for _, v := range list {
		if v.SortWeight != 0 {
			t.Fatalf("sortWeight must read 0 in like-ranked views, got %d on %s", v.SortWeight, v.ID)
		}
	}
}

func TestProjectListOrganizerPreview(t *testing.T) {
	popular := msgAt("popular", 0)
	popular.Doc.Reaction = []ReactionItem{{Type: ReactionLike, Voter: "a"}}
	quiet := msgAt("quiet", 1)
	quiet.Doc.SortWeight = 50

	organizer := Viewer{UID: "o1", IsOwnerMember: true}
	preview := ProjectList([]ServerMessage{quiet, popular}, organizer, true)
	if preview[0].ID != "popular" {
		t.Fatalf("preview must rank by likes, got %s first", preview[0].ID)
	}

	// same viewer without preview keeps the curated order
	curated := ProjectList([]ServerMessage{quiet, popular}, organizer, false)
	if curated[0].ID != "quiet" {
		t.Fatalf("non-preview organizer view keeps sortWeight order, got %s first", curated[0].ID)
	}

	// a non-organizer asking for preview changes nothing
	visitor := ProjectList([]ServerMessage{quiet, popular}, Viewer{UID: "u1"}, true)
	if visitor[0].ID != "quiet" {
		t.Fatalf("preview flag is organizer-only, got %s first", visitor[0].ID)
	}
}

func TestProjectListDropsDeniedForVisitors(t *testing.T) {
	ok := msgAt("ok", 0)
	denied := msgAt("denied", 1)
	denied.Doc.Deny = true

	visitor := ProjectList([]ServerMessage{ok, denied}, Viewer{UID: "u1"}, false)
	if len(visitor) != 1 || visitor[0].ID != "ok" {
		t.Fatalf("visitor list = %v", visitor)
	}

	organizer := ProjectList([]ServerMessage{ok, denied}, Viewer{UID: "o1", IsOwnerMember: true}, false)
	if len(organizer) != 2 {
		t.Fatalf("organizer list = %v", organizer)
	}
}

func TestUniqueVoterCount(t *testing.T) {
	msgs := []ServerMessage{
		{ID: "m1", Doc: MessageDoc{Reaction: []ReactionItem{
			{Type: ReactionLike, Voter: "a"},
			{Type: ReactionHaha, Voter: "b"},
		}}},
		{ID: "m2", Doc: MessageDoc{Deny: true, Reaction: []ReactionItem{
			{Type: ReactionLike, Voter: "a"},
			{Type: ReactionEye, Voter: "c"},
		}}},
	}
	// denied messages still count; "a" counts once across messages
	if got := UniqueVoterCount(msgs); got != 3 {
		t.Fatalf("UniqueVoterCount = %d, want 3", got)
	}
}
