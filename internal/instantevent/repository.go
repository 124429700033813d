package instantevent

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/woosuta/woosuta-backend/internal/apierror"
)

// Repository persists events. All mutations run in a Firestore
// transaction and re-read the event doc before writing, so lifecycle
// transitions never act on stale state.
type Repository interface {
	Create(ctx context.Context, ev *InstantEvent) error
	Update(ctx context.Context, ev *InstantEvent) error
	Get(ctx context.Context, instantEventID string) (*InstantEvent, error)
	Lock(ctx context.Context, instantEventID string) error
	Close(ctx context.Context, instantEventID string) error
	Reopen(ctx context.Context, instantEventID string) error
	Publish(ctx context.Context, instantEventID string) error
	Unpublish(ctx context.Context, instantEventID string) error
	CollectReply(ctx context.Context, instantEventID string) error
	CloseSendMessage(ctx context.Context, instantEventID string) error
	FindAll(ctx context.Context) ([]InstantEvent, error)
	FindAllWithPage(ctx context.Context, page, size int) (*PagedEvents, error)
}

type firestoreRepository struct {
	client *firestore.Client
	// now is injected so tests can pin the clock.
	now func() time.Time
}

func NewRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client, now: time.Now}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

var errEventNotFound = apierror.BadRequest("존재하지 않는 이벤트 ☠️")

func (r *firestoreRepository) Create(ctx context.Context, ev *InstantEvent) error {
	counterRef := r.client.Doc(CounterDoc)
	col := r.client.Collection(Collection)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		count := 0
		counterExists := true
		counterSnap, err := tx.Get(counterRef)
		if err != nil {
			if !isNotFound(err) {
				return err
			}
			counterExists = false
		} else {
			data := struct {
				Count int `firestore:"count"`
			}{}
			if err := counterSnap.DataTo(&data); err != nil {
				return err
			}
			count = data.Count
		}
		ev.Closed = false
		ev.CreateCount = count + 1
		if err := tx.Set(col.NewDoc(), ev); err != nil {
			return err
		}
		if counterExists {
			return tx.Update(counterRef, []firestore.Update{{Path: "count", Value: firestore.Increment(1)}})
		}
		return tx.Set(counterRef, map[string]interface{}{"count": 1})
	})
}

func (r *firestoreRepository) Update(ctx context.Context, ev *InstantEvent) error {
	eventRef := r.client.Collection(Collection).Doc(ev.InstantEventID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(eventRef)
		if err != nil {
			if isNotFound(err) {
				return errEventNotFound
			}
			return err
		}
		var old InstantEvent
		if err := snap.DataTo(&old); err != nil {
			return err
		}
		// full overwrite of the mutable fields; createCount survives
		ev.Closed = false
		ev.CreateCount = old.CreateCount
		return tx.Set(eventRef, ev)
	})
}

func (r *firestoreRepository) Get(ctx context.Context, instantEventID string) (*InstantEvent, error) {
	eventRef := r.client.Collection(Collection).Doc(instantEventID)
	var ev InstantEvent
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(eventRef)
		if err != nil {
			if isNotFound(err) {
				return apierror.BadRequest("존재하지 않는 이벤트에 질문을 보내고 있네요 ☠️")
			}
			return err
		}
		if err := snap.DataTo(&ev); err != nil {
			return err
		}
		ev.InstantEventID = snap.Ref.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// setFields applies a single-purpose transactional update after checking
// the event exists.
func (r *firestoreRepository) setFields(ctx context.Context, instantEventID string, updates []firestore.Update) error {
	eventRef := r.client.Collection(Collection).Doc(instantEventID)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(eventRef); err != nil {
			if isNotFound(err) {
				return errEventNotFound
			}
			return err
		}
		return tx.Update(eventRef, updates)
	})
}

func (r *firestoreRepository) Lock(ctx context.Context, instantEventID string) error {
	return r.setFields(ctx, instantEventID, []firestore.Update{{Path: "locked", Value: true}})
}

func (r *firestoreRepository) Close(ctx context.Context, instantEventID string) error {
	return r.setFields(ctx, instantEventID, []firestore.Update{{Path: "closed", Value: true}})
}

func (r *firestoreRepository) Reopen(ctx context.Context, instantEventID string) error {
	return r.setFields(ctx, instantEventID, []firestore.Update{{Path: "closed", Value: false}})
}

func (r *firestoreRepository) Publish(ctx context.Context, instantEventID string) error {
	return r.setFields(ctx, instantEventID, []firestore.Update{{Path: "showAllReply", Value: true}})
}

func (r *firestoreRepository) Unpublish(ctx context.Context, instantEventID string) error {
	return r.setFields(ctx, instantEventID, []firestore.Update{{Path: "showAllReply", Value: false}})
}

func (r *firestoreRepository) CollectReply(ctx context.Context, instantEventID string) error {
	return r.setFields(ctx, instantEventID, []firestore.Update{{Path: "collectReply", Value: true}})
}

// CloseSendMessage force-ends the question window by moving endDate to
// now, without fully closing the event.
func (r *firestoreRepository) CloseSendMessage(ctx context.Context, instantEventID string) error {
	return r.setFields(ctx, instantEventID, []firestore.Update{
		{Path: "endDate", Value: r.now().Format(time.RFC3339)},
	})
}

func (r *firestoreRepository) FindAll(ctx context.Context) ([]InstantEvent, error) {
	col := r.client.Collection(Collection)
	var events []InstantEvent
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snaps, err := tx.Documents(col).GetAll()
		if err != nil {
			return err
		}
		events = events[:0]
		for _, snap := range snaps {
			var ev InstantEvent
			if err := snap.DataTo(&ev); err != nil {
				return err
			}
			if ev.Closed {
				continue
			}
			ev.InstantEventID = snap.Ref.ID
			events = append(events, ev)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(events, func(i, j int) bool { return events[i].CreateCount > events[j].CreateCount })
	return events, nil
}

func (r *firestoreRepository) FindAllWithPage(ctx context.Context, page, size int) (*PagedEvents, error) {
	count := 0
	counterSnap, err := r.client.Doc(CounterDoc).Get(ctx)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if err == nil {
		data := struct {
			Count int `firestore:"count"`
		}{}
		if err := counterSnap.DataTo(&data); err != nil {
			return nil, err
		}
		count = data.Count
	}
	window := CalcPageWindow(count, page, size)
	paged := &PagedEvents{
		TotalElements: window.TotalElements,
		TotalPages:    window.TotalPages,
		Page:          page,
		Size:          size,
		Content:       []InstantEvent{},
	}
	if window.Empty {
		return paged, nil
	}
	query := r.client.Collection(Collection).
		OrderBy("createCount", firestore.Desc).
		StartAt(window.StartAt).
		Limit(size)
	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	for _, snap := range snaps {
		var ev InstantEvent
		if err := snap.DataTo(&ev); err != nil {
			return nil, err
		}
		ev.InstantEventID = snap.Ref.ID
		paged.Content = append(paged.Content, ev)
	}
	return paged, nil
}
