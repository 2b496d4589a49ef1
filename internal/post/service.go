package post

import (
	"errors"
	"fmt"
	"strings"

	"jaz-events-api/internal/util"

	"gorm.io/gorm"
)

// uploadImage is swapped out in tests.
var uploadImage = util.UploadImageToGCS

type PostService struct {
	DB     *gorm.DB
	Bucket string
}

func (s *PostService) ListPublished() ([]Post, error) {
	var posts []Post
	err := s.DB.
		Where("published = ?", true).
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) GetBySlug(slug string) (*Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, errors.New("slug is required")
	}

	var p Post
	err := s.DB.
		Where("published = ?", true).
		Where("lower(slug) = lower(?)", slug).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostService) GetByID(id int64) (*Post, error) {
	var p Post
	if err := s.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostService) ListAll() ([]Post, error) {
	var posts []Post
	if err := s.DB.Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) Create(req *SavePostRequest, authorID *int) (*Post, error) {
	p := Post{
		Slug:      util.SanitizePart(req.Slug),
		TitleAr:   strings.TrimSpace(req.TitleAr),
		TitleEn:   strings.TrimSpace(req.TitleEn),
		BodyAr:    req.BodyAr,
		BodyEn:    req.BodyEn,
		Published: req.Published,
		AuthorID:  authorID,
	}

	if err := s.DB.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostService) Update(id int64, req *SavePostRequest) (*Post, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"slug":      util.SanitizePart(req.Slug),
		"title_ar":  strings.TrimSpace(req.TitleAr),
		"title_en":  strings.TrimSpace(req.TitleEn),
		"body_ar":   req.BodyAr,
		"body_en":   req.BodyEn,
		"published": req.Published,
	}

	if err := s.DB.Model(p).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *PostService) Delete(id int64) error {
	return s.DB.Delete(&Post{}, id).Error
}

// UploadCover pushes a base64 cover image to GCS and records its public URL.
func (s *PostService) UploadCover(id int64, req *UploadCoverRequest) (*Post, error) {
	p, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s.Bucket == "" {
		return nil, errors.New("media bucket is not configured")
	}

	ext := util.ExtFromFilenameOrMime(req.Filename, req.Mime)
	objectName := fmt.Sprintf("posts/%s/cover%s", util.SanitizePart(p.Slug), ext)

	if _, _, err := uploadImage(req.Image, s.Bucket, objectName); err != nil {
		return nil, err
	}

	url := util.PublicGCSURL(s.Bucket, objectName)
	if err := s.DB.Model(p).Update("cover_url", url).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}
