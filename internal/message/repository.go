package message

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/woosuta/woosuta-backend/internal/instantevent"
	"github.com/woosuta/woosuta-backend/internal/ownermember"
)

// Repository persists messages and their replies. Every operation opens
// one Firestore transaction and re-reads the event doc (and the caller's
// owner member doc where privilege matters) so gating decisions are made
// against committed state rather than values passed in from outside.
type Repository interface {
	Post(ctx context.Context, instantEventID, body string) error
	List(ctx context.Context, instantEventID, uid string, isPreview bool) ([]MessageView, error)
	ListWithUniqueVoter(ctx context.Context, instantEventID, uid string, isPreview bool) (*ListWithUniqueVoter, error)
	ListForDownload(ctx context.Context, instantEventID, uid string) ([]DownloadRow, error)
	Info(ctx context.Context, instantEventID, messageID, uid string) (*MessageView, error)
	Deny(ctx context.Context, instantEventID, messageID, uid string, deny bool) error
	UpdateSortWeight(ctx context.Context, instantEventID, messageID string, sortWeight int) error
	UpdateBody(ctx context.Context, instantEventID, messageID, uid, body string) error
	Delete(ctx context.Context, instantEventID, messageID, uid string) error
	Pin(ctx context.Context, instantEventID, messageID, uid string) error
	Vote(ctx context.Context, instantEventID, messageID, voter string, isUpvote bool) error
	React(ctx context.Context, instantEventID, messageID, voter, reactionType string) error
	PostReply(ctx context.Context, instantEventID, messageID, uid, body string, author *ReplyAuthor) error
	DenyReply(ctx context.Context, instantEventID, messageID, replyID, uid string, deny bool) error
	DeleteReply(ctx context.Context, instantEventID, messageID, replyID, uid string) error
}

type firestoreRepository struct {
	client *firestore.Client
	now    func() time.Time
}

func NewRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client, now: time.Now}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func (r *firestoreRepository) eventRef(instantEventID string) *firestore.DocumentRef {
	return r.client.Collection(instantevent.Collection).Doc(instantEventID)
}

func eventInTx(tx *firestore.Transaction, eventRef *firestore.DocumentRef) (*instantevent.InstantEvent, error) {
	snap, err := tx.Get(eventRef)
	if err != nil {
		if isNotFound(err) {
			return nil, errEventNotFound
		}
		return nil, err
	}
	var ev instantevent.InstantEvent
	if err := snap.DataTo(&ev); err != nil {
		return nil, err
	}
	ev.InstantEventID = snap.Ref.ID
	return &ev, nil
}

func messageInTx(tx *firestore.Transaction, msgRef *firestore.DocumentRef) (*MessageDoc, error) {
	snap, err := tx.Get(msgRef)
	if err != nil {
		if isNotFound(err) {
			return nil, errMessageNotFound
		}
		return nil, err
	}
	var doc MessageDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ownerInTx loads the caller's organizer doc. nil means the caller is not
// an organizer; that is not an error by itself, the operation decides.
func (r *firestoreRepository) ownerInTx(tx *firestore.Transaction, uid string) (*ownermember.OwnerMember, error) {
	if uid == "" {
		return nil, nil
	}
	snap, err := tx.Get(r.client.Collection(ownermember.Collection).Doc(uid))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	var m ownermember.OwnerMember
	if err := snap.DataTo(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func requireOwner(owner *ownermember.OwnerMember) error {
	if owner == nil {
		return errNotOwnerMember
	}
	return nil
}

func requirePrivilege(owner *ownermember.OwnerMember, no int) error {
	if owner == nil || !owner.HasPrivilege(no) {
		return errNotOwnerMember
	}
	return nil
}

func messagesInTx(tx *firestore.Transaction, eventRef *firestore.DocumentRef) ([]ServerMessage, error) {
	query := eventRef.Collection(Collection).
		OrderBy("sortWeight", firestore.Desc).
		OrderBy("createAt", firestore.Desc)
	snaps, err := tx.Documents(query).GetAll()
	if err != nil {
		return nil, err
	}
	msgs := make([]ServerMessage, 0, len(snaps))
	for _, snap := range snaps {
		var doc MessageDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, err
		}
		msgs = append(msgs, ServerMessage{ID: snap.Ref.ID, Doc: doc})
	}
	return msgs, nil
}

func (r *firestoreRepository) Post(ctx context.Context, instantEventID, body string) error {
	eventRef := r.eventRef(instantEventID)
	var gateErr error
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ev, err := eventInTx(tx, eventRef)
		if err != nil {
			return err
		}
		autoClose, err := postGate(ev, r.now())
		if err != nil {
			if !autoClose {
				return err
			}
			// The lapsed window closes the event for good even though
			// this post is rejected. Commit the close, fail afterwards.
			gateErr = err
			return tx.Update(eventRef, []firestore.Update{{Path: "closed", Value: true}})
		}
		newRef := eventRef.Collection(Collection).NewDoc()
		return tx.Create(newRef, map[string]interface{}{
			"message":    body,
			"vote":       0,
			"sortWeight": 0,
			"createAt":   firestore.ServerTimestamp,
		})
	})
	if err != nil {
		return err
	}
	return gateErr
}

// viewContext gathers everything a projection needs inside one snapshot.
func (r *firestoreRepository) viewContext(ctx context.Context, instantEventID, uid string) (*instantevent.InstantEvent, []ServerMessage, Viewer, error) {
	eventRef := r.eventRef(instantEventID)
	var (
		ev     *instantevent.InstantEvent
		msgs   []ServerMessage
		viewer Viewer
	)
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var err error
		ev, err = eventInTx(tx, eventRef)
		if err != nil {
			return err
		}
		owner, err := r.ownerInTx(tx, uid)
		if err != nil {
			return err
		}
		msgs, err = messagesInTx(tx, eventRef)
		if err != nil {
			return err
		}
		viewer = Viewer{
			UID:           uid,
			IsOwnerMember: owner != nil,
			IsShowAll:     instantevent.CalEventState(ev, r.now()) == instantevent.StateShowAll,
		}
		return nil
	})
	if err != nil {
		return nil, nil, Viewer{}, err
	}
	return ev, msgs, viewer, nil
}

func (r *firestoreRepository) List(ctx context.Context, instantEventID, uid string, isPreview bool) ([]MessageView, error) {
	_, msgs, viewer, err := r.viewContext(ctx, instantEventID, uid)
	if err != nil {
		return nil, err
	}
	return ProjectList(msgs, viewer, isPreview), nil
}

func (r *firestoreRepository) ListWithUniqueVoter(ctx context.Context, instantEventID, uid string, isPreview bool) (*ListWithUniqueVoter, error) {
	_, msgs, viewer, err := r.viewContext(ctx, instantEventID, uid)
	if err != nil {
		return nil, err
	}
	return &ListWithUniqueVoter{
		UniqueVoterCount: UniqueVoterCount(msgs),
		List:             ProjectList(msgs, viewer, isPreview),
	}, nil
}

func (r *firestoreRepository) ListForDownload(ctx context.Context, instantEventID, uid string) ([]DownloadRow, error) {
	eventRef := r.eventRef(instantEventID)
	var msgs []ServerMessage
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := eventInTx(tx, eventRef); err != nil {
			return err
		}
		owner, err := r.ownerInTx(tx, uid)
		if err != nil {
			return err
		}
		if err := requireOwner(owner); err != nil {
			return err
		}
		msgs, err = messagesInTx(tx, eventRef)
		return err
	})
	if err != nil {
		return nil, err
	}
	return BuildDownloadRows(msgs), nil
}

func (r *firestoreRepository) Info(ctx context.Context, instantEventID, messageID, uid string) (*MessageView, error) {
	eventRef := r.eventRef(instantEventID)
	msgRef := eventRef.Collection(Collection).Doc(messageID)
	var view MessageView
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ev, err := eventInTx(tx, eventRef)
		if err != nil {
			return err
		}
		doc, err := messageInTx(tx, msgRef)
		if err != nil {
			return err
		}
		owner, err := r.ownerInTx(tx, uid)
		if err != nil {
			return err
		}
		viewer := Viewer{
			UID:           uid,
			IsOwnerMember: owner != nil,
			IsShowAll:     instantevent.CalEventState(ev, r.now()) == instantevent.StateShowAll,
		}
		projected, visible := projectMessage(ServerMessage{ID: messageID, Doc: *doc}, viewer)
		if !visible {
			// denied content is indistinguishable from absent content
			// for non-organizers
			return errMessageNotFound
		}
		view = projected
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *firestoreRepository) Deny(ctx context.Context, instantEventID, messageID, uid string, deny bool) error {
	eventRef := r.eventRef(instantEventID)
	msgRef := eventRef.Collection(Collection).Doc(messageID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := eventInTx(tx, eventRef); err != nil {
			return err
		}
		if _, err := messageInTx(tx, msgRef); err != nil {
			return err
		}
		owner, err := r.ownerInTx(tx, uid)
		if err != nil {
			return err
		}
		if err := requireOwner(owner); err != nil {
			return err
		}
		return tx.Update(msgRef, []firestore.Update{{Path: "deny", Value: deny}})
	})
}

func (r *firestoreRepository) UpdateSortWeight(ctx context.Context, instantEventID, messageID string, sortWeight int) error {
	eventRef := r.eventRef(instantEventID)
	msgRef := eventRef.Collection(Collection).Doc(messageID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := eventInTx(tx, eventRef); err != nil {
			return err
		}
		if _, err := messageInTx(tx, msgRef); err != nil {
			return err
		}
		return tx.Update(msgRef, []firestore.Update{{Path: "sortWeight", Value: sortWeight}})
	})
}

func (r *firestoreRepository) UpdateBody(ctx context.Context, instantEventID, messageID, uid, body string) error {
	eventRef := r.eventRef(instantEventID)
	msgRef := eventRef.Collection(Collection).Doc(messageID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := eventInTx(tx, eventRef); err != nil {
			return err
		}
		if _, err := messageInTx(tx, msgRef); err != nil {
			return err
		}
		owner, err := r.ownerInTx(tx, uid)
		if err != nil {
			return err
		}
		if err := requirePrivilege(owner, ownermember.PrivilegeUpdateMessage); err != nil {
			return err
		}
		return tx.Update(msgRef, []firestore.Update{
			{Path: "message", Value: body},
			{Path: "updateAt", Value: firestore.ServerTimestamp},
		})
	})
}

func (r *firestoreRepository) Delete(ctx context.Context, instantEventID, messageID, uid string) error {
	eventRef := r.eventRef(instantEventID)
	msgRef := eventRef.Collection(Collection).Doc(messageID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := eventInTx(tx, eventRef); err != nil {
			return err
		}
		if _, err := messageInTx(tx, msgRef); err != nil {
			return err
		}
		owner, err := r.ownerInTx(tx, uid)
		if err != nil {
			return err
		}
		if err := requireOwner(owner); err != nil {
			return err
		}
		return tx.Delete(msgRef)
	})
}

func (r *firestoreRepository) Pin(ctx context.Context, instantEventID, messageID, uid string) error {
	eventRef := r.eventRef(instantEventID)
	msgRef := eventRef.Collection(Collection).Doc(messageID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := eventInTx(tx, eventRef); err != nil {
			return err
		}
		doc, err := messageInTx(tx, msgRef)
		if err != nil {
			return err
		}
		owner, err := r.ownerInTx(tx, uid)
		if err != nil {
			return err
		}
		if err := requirePrivilege(owner, ownermember.PrivilegeSetPin); err != nil {
			return err
		}
		return tx.Update(msgRef, []firestore.Update{{Path: "pin", Value: !doc.Pin}})
	})
}

func (r *firestoreRepository) Vote(ctx context.Context, instantEventID, messageID, voter string, isUpvote bool) error {
	eventRef := r.eventRef(instantEventID)
	msgRef := eventRef.Collection(Collection).Doc(messageID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ev, err := eventInTx(tx, eventRef)
		if err != nil {
			return err
		}
		doc, err := messageInTx(tx, msgRef)
		if err != nil {
			return err
		}
		if err := mutationGate(ev); err != nil {
			return err
		}
		return tx.Update(msgRef, []firestore.Update{
			{Path: "vote", Value: firestore.Increment(voteDelta(isUpvote))},
			{Path: "voter", Value: toggleVoter(doc.Voter, voter)},
		})
	})
}

func (r *firestoreRepository) React(ctx context.Context, instantEventID, messageID, voter, reactionType string) error {
	eventRef := r.eventRef(instantEventID)
	msgRef := eventRef.Collection(Collection).Doc(messageID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ev, err := eventInTx(tx, eventRef)
		if err != nil {
			return err
		}
		doc, err := messageInTx(tx, msgRef)
		if err != nil {
			return err
		}
		if err := mutationGate(ev); err != nil {
			return err
		}
		return tx.Update(msgRef, []firestore.Update{
			{Path: "reaction", Value: toggleReaction(doc.Reaction, voter, reactionType)},
		})
	})
}

func (r *firestoreRepository) PostReply(ctx context.Context, instantEventID, messageID, uid, body string, author *ReplyAuthor) error {
	eventRef := r.eventRef(instantEventID)
	msgRef := eventRef.Collection(Collection).Doc(messageID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ev, err := eventInTx(tx, eventRef)
		if err != nil {
			return err
		}
		doc, err := messageInTx(tx, msgRef)
		if err != nil {
			return err
		}
		owner, err := r.ownerInTx(tx, uid)
		if err != nil {
			return err
		}
		if err := replyGate(ev); err != nil {
			return err
		}
		newReply := Reply{
			ID:       uuid.NewString()[:8],
			Reply:    body,
			CreateAt: r.now().Format(time.RFC3339),
		}
		if author != nil && owner != nil {
			newReply.Author = author
			newReply.CreateByOwner = true
		}
		// newest first at storage time; read-time sorting reorders
		updated := append([]Reply{newReply}, doc.Reply...)
		return tx.Update(msgRef, []firestore.Update{
			{Path: "reply", Value: updated},
			{Path: "updateAt", Value: firestore.ServerTimestamp},
		})
	})
}

func (r *firestoreRepository) DenyReply(ctx context.Context, instantEventID, messageID, replyID, uid string, deny bool) error {
	eventRef := r.eventRef(instantEventID)
	msgRef := eventRef.Collection(Collection).Doc(messageID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := eventInTx(tx, eventRef); err != nil {
			return err
		}
		doc, err := messageInTx(tx, msgRef)
		if err != nil {
			return err
		}
		owner, err := r.ownerInTx(tx, uid)
		if err != nil {
			return err
		}
		if err := requirePrivilege(owner, ownermember.PrivilegeDenyReply); err != nil {
			return err
		}
		found := false
		updated := make([]Reply, len(doc.Reply))
		copy(updated, doc.Reply)
		for i := range updated {
			if updated[i].ID == replyID {
				updated[i].Deny = deny
				found = true
				break
			}
		}
		if !found {
			return errReplyNotFound
		}
		return tx.Update(msgRef, []firestore.Update{{Path: "reply", Value: updated}})
	})
}

func (r *firestoreRepository) DeleteReply(ctx context.Context, instantEventID, messageID, replyID, uid string) error {
	eventRef := r.eventRef(instantEventID)
	msgRef := eventRef.Collection(Collection).Doc(messageID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := eventInTx(tx, eventRef); err != nil {
			return err
		}
		doc, err := messageInTx(tx, msgRef)
		if err != nil {
			return err
		}
		owner, err := r.ownerInTx(tx, uid)
		if err != nil {
			return err
		}
		if err := requirePrivilege(owner, ownermember.PrivilegeDeleteReply); err != nil {
			return err
		}
		updated := make([]Reply, 0, len(doc.Reply))
		found := false
		for _, reply := range doc.Reply {
			if reply.ID == replyID {
				found = true
				continue
			}
			updated = append(updated, reply)
		}
		if !found {
			return errReplyNotFound
		}
		return tx.Update(msgRef, []firestore.Update{{Path: "reply", Value: updated}})
	})
}
