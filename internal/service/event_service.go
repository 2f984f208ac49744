package service

import (
	"context"
	"log/slog"

	"UAsync_Community/internal/model"
	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type EventService struct {
	repo *mysql.EventRepository
}

type CreateEventInput struct {
	GroupID    uint64
	UserID     uint64
	Text       string
	Date       string
	Time       string
	Location   string
	TitleImage []byte
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		repo: &mysql.EventRepository{DB: db},
	}
}

// CreateEvent 活动图片按原样保存
func (s *EventService) CreateEvent(ctx context.Context, in CreateEventInput) (uint64, error) {
	switch {
	case in.GroupID == 0:
		return 0, pkg.Validationf("group id not provided")
	case in.UserID == 0:
		return 0, pkg.Validationf("user id not provided")
	case in.Text == "":
		return 0, pkg.Validationf("text not provided")
	case in.Date == "":
		return 0, pkg.Validationf("date not provided")
	case in.Time == "":
		return 0, pkg.Validationf("time not provided")
	case in.Location == "":
		return 0, pkg.Validationf("location not provided")
	}

	ev := &model.Event{
		GroupID:    in.GroupID,
		UserID:     in.UserID,
		Text:       in.Text,
		Date:       in.Date,
		Time:       in.Time,
		Location:   in.Location,
		TitleImage: in.TitleImage,
	}
	if err := s.repo.Create(ctx, ev); err != nil {
		slog.Error("event: insert failed", "group_id", in.GroupID, "err", err)
		return 0, pkg.Storage("create event", err)
	}
	return ev.ID, nil
}

// DeleteEvent 只删除 userID 自己创建的活动；不匹配时返回 0 行而不是错误
func (s *EventService) DeleteEvent(ctx context.Context, eventID, userID uint64) (int64, error) {
	if eventID == 0 {
		return 0, pkg.Validationf("event id not provided")
	}
	if userID == 0 {
		return 0, pkg.Validationf("user id not provided")
	}
	n, err := s.repo.DeleteByOwner(ctx, eventID, userID)
	if err != nil {
		slog.Error("event: delete failed", "event_id", eventID, "err", err)
		return 0, pkg.Storage("delete event", err)
	}
	return n, nil
}
