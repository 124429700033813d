package message

import "time"

// DownloadRow is one flattened row of the spreadsheet export: one row per
// reply, or a single row with empty reply fields for a message without
// replies.
type DownloadRow struct {
	ID       string `json:"id"`
	Vote     int    `json:"vote"`
	Like     int    `json:"LIKE"`
	Next     int    `json:"NEXT"`
	Haha     int    `json:"HAHA"`
	Eye      int    `json:"EYE"`
	CheerUp  int    `json:"CHEERUP"`
	Message  string `json:"message"`
	CreateAt string `json:"createAt"`
	Reply    string `json:"reply"`
	ReplyAt  string `json:"replyAt"`
}

const downloadTimeLayout = "2006-01-02 15:04:05"

// Export timestamps are rendered in KST regardless of server locale.
var seoul = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}()

func formatDownloadTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(seoul).Format(downloadTimeLayout)
}

func formatDownloadISO(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return formatDownloadTime(t)
}

// BuildDownloadRows flattens messages into export rows. Denied message and
// reply bodies are replaced with the redaction placeholder so the export
// never carries moderated text.
func BuildDownloadRows(msgs []ServerMessage) []DownloadRow {
	rows := make([]DownloadRow, 0, len(msgs))
	for _, msg := range msgs {
		doc := msg.Doc
		body := doc.Message
		if doc.Deny {
			body = DeniedMessageText
		}
		base := DownloadRow{
			ID:       msg.ID,
			Vote:     doc.Vote,
			Like:     countReaction(doc.Reaction, ReactionLike),
			Next:     countReaction(doc.Reaction, ReactionNext),
			Haha:     countReaction(doc.Reaction, ReactionHaha),
			Eye:      countReaction(doc.Reaction, ReactionEye),
			CheerUp:  countReaction(doc.Reaction, ReactionCheerUp),
			Message:  body,
			CreateAt: formatDownloadTime(doc.CreateAt),
		}
		if len(doc.Reply) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, reply := range sortReplies(doc.Reply) {
			row := base
			row.Reply = reply.Reply
			if reply.Deny {
				row.Reply = DeniedReplyText
			}
			row.ReplyAt = formatDownloadISO(reply.CreateAt)
			rows = append(rows, row)
		}
	}
	return rows
}
