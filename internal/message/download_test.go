package message

import (
	"testing"
	"time"
)

func TestBuildDownloadRowsOneRowPerReply(t *testing.T) {
	msgs := []ServerMessage{
		{ID: "m1", Doc: MessageDoc{
			Message:  "question one",
			CreateAt: time.Date(2023, 3, 15, 3, 0, 0, 0, time.UTC),
			Reply: []Reply{
				{ID: "r1", Reply: "first", CreateAt: "2023-03-15T04:00:00Z"},
				{ID: "r2", Reply: "second", CreateAt: "2023-03-15T05:00:00Z"},
			},
		}},
		{ID: "m2", Doc: MessageDoc{Message: "no replies"}},
	}

	rows := BuildDownloadRows(msgs)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].Reply != "first" || rows[1].Reply != "second" {
		t.Fatalf("reply order: %q then %q", rows[0].Reply, rows[1].Reply)
	}
	if rows[2].Reply != "" || rows[2].ReplyAt != "" {
		t.Fatalf("message without replies gets empty reply fields, got %+v", rows[2])
	}
	// both rows of m1 repeat the message fields
	if rows[0].Message != rows[1].Message || rows[0].ID != "m1" {
		t.Fatalf("reply rows must repeat their message, got %+v / %+v", rows[0], rows[1])
	}
}

func TestBuildDownloadRowsTimesInSeoul(t *testing.T) {
	msgs := []ServerMessage{
		{ID: "m1", Doc: MessageDoc{
			Message:  "q",
			CreateAt: time.Date(2023, 3, 15, 3, 0, 0, 0, time.UTC),
			Reply:    []Reply{{ID: "r1", Reply: "a", CreateAt: "2023-03-15T04:30:00Z"}},
		}},
	}
	rows := BuildDownloadRows(msgs)
	if rows[0].CreateAt != "2023-03-15 12:00:00" {
		t.Fatalf("CreateAt = %q, want KST 12:00:00", rows[0].CreateAt)
	}
	if rows[0].ReplyAt != "2023-03-15 13:30:00" {
		t.Fatalf("ReplyAt = %q, want KST 13:30:00", rows[0].ReplyAt)
	}
}

func TestBuildDownloadRowsRedaction(t *testing.T) {
	msgs := []ServerMessage{
		{ID: "m1", Doc: MessageDoc{
			Message: "dirty question",
			Deny:    true,
			Reply: []Reply{
				{ID: "r1", Reply: "dirty answer", CreateAt: "2023-03-15T04:00:00Z", Deny: true},
				{ID: "r2", Reply: "fine", CreateAt: "2023-03-15T05:00:00Z"},
			},
		}},
	}
	rows := BuildDownloadRows(msgs)
	if rows[0].Message != DeniedMessageText {
		t.Fatalf("denied message body exported: %q", rows[0].Message)
	}
	if rows[0].Reply != DeniedReplyText {
		t.Fatalf("denied reply body exported: %q", rows[0].Reply)
	}
	if rows[1].Reply != "fine" {
		t.Fatalf("clean reply altered: %q", rows[1].Reply)
	}
}

func TestBuildDownloadRowsReactionCounts(t *testing.T) {
	msgs := []ServerMessage{
		{ID: "m1", Doc: MessageDoc{
			Message: "q",
			Vote:    4,
			Reaction: []ReactionItem{
				{Type: ReactionLike, Voter: "a"},
				{Type: ReactionLike, Voter: "b"},
				{Type: ReactionNext, Voter: "a"},
				{Type: ReactionCheerUp, Voter: "c"},
			},
		}},
	}
	row := BuildDownloadRows(msgs)[0]
	if row.Like != 2 || row.Next != 1 || row.Haha != 0 || row.Eye != 0 || row.CheerUp != 1 {
		t.Fatalf("reaction counts: %+v", row)
	}
	if row.Vote != 4 {
		t.Fatalf("vote = %d", row.Vote)
	}
}
