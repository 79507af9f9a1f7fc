package service

import (
	"strings"
	"time"

	"github.com/zhubao-next/internal/constants"
	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/repository"
)

// PostService 文章业务服务
type PostService struct {
	repo repository.PostRepository
}

// NewPostService 创建文章服务
func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePostInput 创建/更新文章输入
type CreatePostInput struct {
	Slug        string
	Type        string
	Title       string
	Summary     string
	Content     string
	Thumbnail   string
	IsPublished bool
}

// List 文章列表
func (s *PostService) List(filter repository.PostListFilter) ([]models.Post, int64, error) {
	return s.repo.List(filter)
}

// GetBySlug 根据 slug 获取文章
func (s *PostService) GetBySlug(slug string, onlyPublished bool) (*models.Post, error) {
	post, err := s.repo.GetBySlug(slug, onlyPublished)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建文章
func (s *PostService) Create(input CreatePostInput) (*models.Post, error) {
	count, err := s.repo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	post := models.Post{
		Slug:        strings.TrimSpace(input.Slug),
		Type:        normalizePostType(input.Type),
		Title:       strings.TrimSpace(input.Title),
		Summary:     input.Summary,
		Content:     input.Content,
		Thumbnail:   input.Thumbnail,
		IsPublished: input.IsPublished,
	}
	if post.IsPublished {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.repo.Create(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update 更新文章
func (s *PostService) Update(id string, input CreatePostInput) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	count, err := s.repo.CountBySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	wasPublished := post.IsPublished

	post.Slug = strings.TrimSpace(input.Slug)
	post.Type = normalizePostType(input.Type)
	post.Title = strings.TrimSpace(input.Title)
	post.Summary = input.Summary
	post.Content = input.Content
	post.Thumbnail = input.Thumbnail
	post.IsPublished = input.IsPublished
	if post.IsPublished && !wasPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete 删除文章
func (s *PostService) Delete(id string) error {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func normalizePostType(value string) string {
	if value == constants.PostTypePolicy {
		return constants.PostTypePolicy
	}
	return constants.PostTypeBlog
}
