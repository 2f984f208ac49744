package service

import (
	"context"
	"log/slog"

	"UAsync_Community/internal/model"
	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type MainGroupService struct {
	repo *mysql.MainGroupRepository
}

func NewMainGroupService(db *gorm.DB) *MainGroupService {
	return &MainGroupService{
		repo: &mysql.MainGroupRepository{DB: db},
	}
}

func (s *MainGroupService) ListWithSubgroups(ctx context.Context) ([]model.MainGroupWithSubgroups, error) {
	list, err := s.repo.ListWithSubgroups(ctx)
	if err != nil {
		slog.Error("maingroup: list failed", "err", err)
		return nil, pkg.Storage("list main groups", err)
	}
	return list, nil
}

// SetTitleImage 主分组是预置数据，接口只允许替换标题图
func (s *MainGroupService) SetTitleImage(ctx context.Context, groupID uint64, image []byte) error {
	if groupID == 0 {
		return pkg.Validationf("group id not provided")
	}
	if len(image) == 0 {
		return pkg.Validationf("image not provided")
	}
	n, err := s.repo.UpdateTitleImage(ctx, groupID, image)
	if err != nil {
		slog.Error("maingroup: update image failed", "group_id", groupID, "err", err)
		return pkg.Storage("update main group image", err)
	}
	if n == 0 {
		return pkg.NotFoundf("main group %d", groupID)
	}
	return nil
}
