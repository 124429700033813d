package instantevent

import (
	"context"
	"time"

	"github.com/woosuta/woosuta-backend/internal/apierror"
)

type Service interface {
	Create(ctx context.Context, req *CreateEventRequest) error
	Update(ctx context.Context, req *UpdateEventRequest) error
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

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateWindow(startDate, endDate string) error {
	start, err := time.Parse(time.RFC3339, startDate)
	if err != nil {
		return apierror.BadRequest("invalid startDate format. Use RFC3339")
	}
	end, err := time.Parse(time.RFC3339, endDate)
	if err != nil {
		return apierror.BadRequest("invalid endDate format. Use RFC3339")
	}
	if end.Before(start) {
		return apierror.BadRequest("endDate is before startDate")
	}
	return nil
}

func (s *service) Create(ctx context.Context, req *CreateEventRequest) error {
	if err := validateWindow(req.StartDate, req.EndDate); err != nil {
		return err
	}
	return s.repo.Create(ctx, &InstantEvent{
		Title:     req.Title,
		Desc:      EscapeDesc(req.Desc),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		TitleImg:  req.TitleImg,
		BgImg:     req.BgImg,
	})
}

func (s *service) Update(ctx context.Context, req *UpdateEventRequest) error {
	if err := validateWindow(req.StartDate, req.EndDate); err != nil {
		return err
	}
	return s.repo.Update(ctx, &InstantEvent{
		InstantEventID: req.InstantEventID,
		Title:          req.Title,
		Desc:           EscapeDesc(req.Desc),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		TitleImg:       req.TitleImg,
		BgImg:          req.BgImg,
	})
}

func (s *service) Get(ctx context.Context, instantEventID string) (*InstantEvent, error) {
	return s.repo.Get(ctx, instantEventID)
}

func (s *service) Lock(ctx context.Context, instantEventID string) error {
	return s.repo.Lock(ctx, instantEventID)
}

func (s *service) Close(ctx context.Context, instantEventID string) error {
	return s.repo.Close(ctx, instantEventID)
}

func (s *service) Reopen(ctx context.Context, instantEventID string) error {
	return s.repo.Reopen(ctx, instantEventID)
}

func (s *service) Publish(ctx context.Context, instantEventID string) error {
	return s.repo.Publish(ctx, instantEventID)
}

func (s *service) Unpublish(ctx context.Context, instantEventID string) error {
	return s.repo.Unpublish(ctx, instantEventID)
}

func (s *service) CollectReply(ctx context.Context, instantEventID string) error {
	return s.repo.CollectReply(ctx, instantEventID)
}

func (s *service) CloseSendMessage(ctx context.Context, instantEventID string) error {
	return s.repo.CloseSendMessage(ctx, instantEventID)
}

func (s *service) FindAll(ctx context.Context) ([]InstantEvent, error) {
	return s.repo.FindAll(ctx)
}

func (s *service) FindAllWithPage(ctx context.Context, page, size int) (*PagedEvents, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	return s.repo.FindAllWithPage(ctx, page, size)
}
