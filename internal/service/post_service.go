package service

import (
	"context"
	"log/slog"

	"UAsync_Community/internal/model"
	"UAsync_Community/internal/pkg"
	"UAsync_Community/internal/repository/mysql"

	"gorm.io/gorm"
)

type PostService struct {
	repo   *mysql.PostRepository
	images pkg.ImageProcessor
}

type CreatePostInput struct {
	GroupID    uint64
	UserID     uint64
	Heading    string
	Caption    string
	Text       string
	TitleImage []byte
}

func NewPostService(db *gorm.DB, images pkg.ImageProcessor) *PostService {
	return &PostService{
		repo:   &mysql.PostRepository{DB: db},
		images: images,
	}
}

// CreatePost 标题图统一压缩为 800x800 JPEG
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (uint64, error) {
	switch {
	case in.GroupID == 0:
		return 0, pkg.Validationf("group id not provided")
	case in.UserID == 0:
		return 0, pkg.Validationf("user id not provided")
	case in.Heading == "":
		return 0, pkg.Validationf("heading not provided")
	}

	var image []byte
	if len(in.TitleImage) > 0 {
		out, err := s.images.Compress(in.TitleImage, pkg.PostImageSize, pkg.PostImageSize)
		if err != nil {
			slog.Error("post: image compression failed", "group_id", in.GroupID, "err", err)
			return 0, err
		}
		image = out
	}

	post := &model.Post{
		GroupID:    in.GroupID,
		UserID:     in.UserID,
		Heading:    in.Heading,
		Caption:    in.Caption,
		Text:       in.Text,
		TitleImage: image,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		slog.Error("post: insert failed", "group_id", in.GroupID, "err", err)
		return 0, pkg.Storage("create post", err)
	}
	return post.ID, nil
}

// DeletePost 幂等删除，返回实际删除的行数
func (s *PostService) DeletePost(ctx context.Context, postID uint64) (int64, error) {
	if postID == 0 {
		return 0, pkg.Validationf("post id not provided")
	}
	n, err := s.repo.Delete(ctx, postID)
	if err != nil {
		slog.Error("post: delete failed", "post_id", postID, "err", err)
		return 0, pkg.Storage("delete post", err)
	}
	return n, nil
}
