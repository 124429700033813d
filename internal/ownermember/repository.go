package ownermember

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/woosuta/woosuta-backend/internal/apierror"
)

// Repository persists organizer accounts. Every mutation re-reads the
// requester's own doc inside the transaction so membership and privilege
// are checked against committed state, not whatever the caller claims.
type Repository interface {
	List(ctx context.Context, reqUID string) ([]OwnerMember, error)
	Find(ctx context.Context, uid string) (*OwnerMember, error)
	Add(ctx context.Context, reqUID string, newbie *OwnerMember) error
	Remove(ctx context.Context, reqUID, uid string) error
	Update(ctx context.Context, reqUID, uid, displayName, desc string) error
	UpdatePrivilege(ctx context.Context, reqUID, uid string, privilege []int) error
}

type firestoreRepository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// requesterInTx loads the requester's own member doc. A missing doc means
// the caller is not an organizer at all.
func requesterInTx(tx *firestore.Transaction, col *firestore.CollectionRef, reqUID string) (*OwnerMember, error) {
	snap, err := tx.Get(col.Doc(reqUID))
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.Forbidden("멤버를 조회할 권한이 없습니다.")
		}
		return nil, err
	}
	var m OwnerMember
	if err := snap.DataTo(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *firestoreRepository) List(ctx context.Context, reqUID string) ([]OwnerMember, error) {
	col := r.client.Collection(Collection)
	var members []OwnerMember
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := requesterInTx(tx, col, reqUID); err != nil {
			return err
		}
		snaps, err := tx.Documents(col).GetAll()
		if err != nil {
			return err
		}
		members = make([]OwnerMember, 0, len(snaps))
		for _, snap := range snaps {
			var m OwnerMember
			if err := snap.DataTo(&m); err != nil {
				return err
			}
			members = append(members, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(members, func(i, j int) bool { return members[i].UID < members[j].UID })
	return members, nil
}

func (r *firestoreRepository) Find(ctx context.Context, uid string) (*OwnerMember, error) {
	snap, err := r.client.Collection(Collection).Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, apierror.NotFound("목록에 존재하지 않는 멤버입니다.")
		}
		return nil, err
	}
	var m OwnerMember
	if err := snap.DataTo(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *firestoreRepository) Add(ctx context.Context, reqUID string, newbie *OwnerMember) error {
	col := r.client.Collection(Collection)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		requester, err := requesterInTx(tx, col, reqUID)
		if err != nil {
			return err
		}
		if !requester.HasPrivilege(PrivilegeAddOrRemoveAdmin) {
			return apierror.Forbidden("멤버를 추가할 권한이 없습니다.")
		}
		newbieRef := col.Doc(newbie.UID)
		if _, err := tx.Get(newbieRef); err == nil {
			return apierror.BadRequest("이미 추가된 멤버입니다.")
		} else if !isNotFound(err) {
			return err
		}
		return tx.Create(newbieRef, newbie)
	})
}

func (r *firestoreRepository) Remove(ctx context.Context, reqUID, uid string) error {
	col := r.client.Collection(Collection)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		requester, err := requesterInTx(tx, col, reqUID)
		if err != nil {
			return err
		}
		if !requester.HasPrivilege(PrivilegeAddOrRemoveAdmin) {
			return apierror.Forbidden("멤버를 제거할 권한이 없습니다.")
		}
		targetRef := col.Doc(uid)
		if _, err := tx.Get(targetRef); err != nil {
			if isNotFound(err) {
				return apierror.NotFound("목록에 존재하지 않는 멤버입니다.")
			}
			return err
		}
		return tx.Delete(targetRef)
	})
}

func (r *firestoreRepository) Update(ctx context.Context, reqUID, uid, displayName, desc string) error {
	col := r.client.Collection(Collection)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := requesterInTx(tx, col, reqUID); err != nil {
			return err
		}
		targetRef := col.Doc(uid)
		snap, err := tx.Get(targetRef)
		if err != nil {
			if isNotFound(err) {
				return apierror.NotFound("목록에 존재하지 않는 멤버입니다.")
			}
			return err
		}
		var old OwnerMember
		if err := snap.DataTo(&old); err != nil {
			return err
		}
		if displayName == "" {
			displayName = old.DisplayName
		}
		updates := []firestore.Update{{Path: "displayName", Value: displayName}}
		if desc != "" {
			updates = append(updates, firestore.Update{Path: "desc", Value: desc})
		}
		return tx.Update(targetRef, updates)
	})
}

func (r *firestoreRepository) UpdatePrivilege(ctx context.Context, reqUID, uid string, privilege []int) error {
	col := r.client.Collection(Collection)
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		requester, err := requesterInTx(tx, col, reqUID)
		if err != nil {
			return err
		}
		if !requester.HasPrivilege(PrivilegeAddOrRemoveRole) {
			return apierror.Forbidden("멤버 권한을 수정할 권한이 없습니다.")
		}
		targetRef := col.Doc(uid)
		if _, err := tx.Get(targetRef); err != nil {
			if isNotFound(err) {
				return apierror.NotFound("목록에 존재하지 않는 멤버입니다.")
			}
			return err
		}
		return tx.Update(targetRef, []firestore.Update{{Path: "privilege", Value: privilege}})
	})
}
