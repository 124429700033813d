package ownermember

import (
	"context"

	"github.com/woosuta/woosuta-backend/internal/apierror"
)

type Service interface {
	List(ctx context.Context, reqUID string) ([]OwnerMember, error)
	Find(ctx context.Context, uid string) (*OwnerMember, error)
	Add(ctx context.Context, reqUID string, req *AddMemberRequest) error
	Remove(ctx context.Context, reqUID, uid string) error
	Update(ctx context.Context, reqUID, uid string, req *UpdateMemberRequest) error
	UpdatePrivilege(ctx context.Context, reqUID, uid string, req *UpdatePrivilegeRequest) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, reqUID string) ([]OwnerMember, error) {
	return s.repo.List(ctx, reqUID)
}

func (s *service) Find(ctx context.Context, uid string) (*OwnerMember, error) {
	return s.repo.Find(ctx, uid)
}

func (s *service) Add(ctx context.Context, reqUID string, req *AddMemberRequest) error {
	for _, no := range req.Privilege {
		if _, ok := PrivilegeName[no]; !ok {
			return apierror.BadRequest("알 수 없는 권한 번호입니다.")
		}
	}
	return s.repo.Add(ctx, reqUID, &OwnerMember{
		UID:         req.UID,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Desc:        req.Desc,
		Privilege:   req.Privilege,
	})
}

func (s *service) Remove(ctx context.Context, reqUID, uid string) error {
	return s.repo.Remove(ctx, reqUID, uid)
}

func (s *service) Update(ctx context.Context, reqUID, uid string, req *UpdateMemberRequest) error {
	return s.repo.Update(ctx, reqUID, uid, req.DisplayName, req.Desc)
}

func (s *service) UpdatePrivilege(ctx context.Context, reqUID, uid string, req *UpdatePrivilegeRequest) error {
	for _, no := range req.Privilege {
		if _, ok := PrivilegeName[no]; !ok {
			return apierror.BadRequest("알 수 없는 권한 번호입니다.")
		}
	}
	return s.repo.UpdatePrivilege(ctx, reqUID, uid, req.Privilege)
}
