package message

import (
	"context"

	"github.com/woosuta/woosuta-backend/internal/apierror"
)

// Service is the business layer over Repository. Most operations pass
// straight through; the service owns request-shape validation that the
// binding layer cannot express.
type Service interface {
	Post(ctx context.Context, instantEventID string, req *PostMessageRequest) error
	List(ctx context.Context, instantEventID, uid string, isPreview bool) ([]MessageView, error)
	ListWithUniqueVoter(ctx context.Context, instantEventID, uid string, isPreview bool) (*ListWithUniqueVoter, error)
	ListForDownload(ctx context.Context, instantEventID, uid string) ([]DownloadRow, error)
	Info(ctx context.Context, instantEventID, messageID, uid string) (*MessageView, error)
	Deny(ctx context.Context, instantEventID, messageID, uid string, req *DenyRequest) error
	UpdateSortWeight(ctx context.Context, instantEventID, messageID string, req *SortWeightRequest) error
	UpdateBody(ctx context.Context, instantEventID, messageID, uid string, req *UpdateBodyRequest) error
	Delete(ctx context.Context, instantEventID, messageID, uid string) error
	Pin(ctx context.Context, instantEventID, messageID, uid string) error
	Vote(ctx context.Context, instantEventID, messageID, voter string, req *VoteRequest) error
	React(ctx context.Context, instantEventID, messageID, voter string, req *ReactionRequest) error
	PostReply(ctx context.Context, instantEventID, messageID, uid string, req *PostReplyRequest) error
	DenyReply(ctx context.Context, instantEventID, messageID, replyID, uid string, deny bool) error
	DeleteReply(ctx context.Context, instantEventID, messageID, replyID, uid string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Post(ctx context.Context, instantEventID string, req *PostMessageRequest) error {
	return s.repo.Post(ctx, instantEventID, req.Message)
}

func (s *service) List(ctx context.Context, instantEventID, uid string, isPreview bool) ([]MessageView, error) {
	return s.repo.List(ctx, instantEventID, uid, isPreview)
}

func (s *service) ListWithUniqueVoter(ctx context.Context, instantEventID, uid string, isPreview bool) (*ListWithUniqueVoter, error) {
	return s.repo.ListWithUniqueVoter(ctx, instantEventID, uid, isPreview)
}

func (s *service) ListForDownload(ctx context.Context, instantEventID, uid string) ([]DownloadRow, error) {
	return s.repo.ListForDownload(ctx, instantEventID, uid)
}

func (s *service) Info(ctx context.Context, instantEventID, messageID, uid string) (*MessageView, error) {
	return s.repo.Info(ctx, instantEventID, messageID, uid)
}

func (s *service) Deny(ctx context.Context, instantEventID, messageID, uid string, req *DenyRequest) error {
	// absent deny means "hide"
	deny := true
	if req.Deny != nil {
		deny = *req.Deny
	}
	return s.repo.Deny(ctx, instantEventID, messageID, uid, deny)
}

func (s *service) UpdateSortWeight(ctx context.Context, instantEventID, messageID string, req *SortWeightRequest) error {
	return s.repo.UpdateSortWeight(ctx, instantEventID, messageID, req.SortWeight)
}

func (s *service) UpdateBody(ctx context.Context, instantEventID, messageID, uid string, req *UpdateBodyRequest) error {
	return s.repo.UpdateBody(ctx, instantEventID, messageID, uid, req.Message)
}

func (s *service) Delete(ctx context.Context, instantEventID, messageID, uid string) error {
	return s.repo.Delete(ctx, instantEventID, messageID, uid)
}

func (s *service) Pin(ctx context.Context, instantEventID, messageID, uid string) error {
	return s.repo.Pin(ctx, instantEventID, messageID, uid)
}

func (s *service) Vote(ctx context.Context, instantEventID, messageID, voter string, req *VoteRequest) error {
	return s.repo.Vote(ctx, instantEventID, messageID, voter, req.IsUpvote)
}

func (s *service) React(ctx context.Context, instantEventID, messageID, voter string, req *ReactionRequest) error {
	if !IsReactionType(req.Type) {
		return apierror.BadRequest("지원하지 않는 리액션입니다.")
	}
	return s.repo.React(ctx, instantEventID, messageID, voter, req.Type)
}

func (s *service) PostReply(ctx context.Context, instantEventID, messageID, uid string, req *PostReplyRequest) error {
	return s.repo.PostReply(ctx, instantEventID, messageID, uid, req.Reply, req.Author)
}

func (s *service) DenyReply(ctx context.Context, instantEventID, messageID, replyID, uid string, deny bool) error {
	return s.repo.DenyReply(ctx, instantEventID, messageID, replyID, uid, deny)
}

func (s *service) DeleteReply(ctx context.Context, instantEventID, messageID, replyID, uid string) error {
	return s.repo.DeleteReply(ctx, instantEventID, messageID, replyID, uid)
}
