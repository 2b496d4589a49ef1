package post

import "time"

type Post struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug      string    `json:"slug" gorm:"size:200;uniqueIndex;not null"`
	TitleAr   string    `json:"title_ar" gorm:"type:text;not null"`
	TitleEn   string    `json:"title_en" gorm:"type:text;not null;default:''"`
	BodyAr    string    `json:"body_ar" gorm:"type:text;not null;default:''"`
	BodyEn    string    `json:"body_en" gorm:"type:text;not null;default:''"`
	CoverURL  string    `json:"cover_url" gorm:"type:text;not null;default:''"`
	Published bool      `json:"published" gorm:"not null;default:false"`
	AuthorID  *int      `json:"author_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

func (Post) TableName() string { return "posts" }

type SavePostRequest struct {
	Slug      string `json:"slug" binding:"required"`
	TitleAr   string `json:"title_ar" binding:"required"`
	TitleEn   string `json:"title_en"`
	BodyAr    string `json:"body_ar"`
	BodyEn    string `json:"body_en"`
	Published bool   `json:"published"`
}

type UploadCoverRequest struct {
	Image    string `json:"image" binding:"required"`
	Filename string `json:"filename"`
	Mime     string `json:"mime"`
}

type TranslateRequest struct {
	Text string `json:"text" binding:"required"`
	From string `json:"from"`
	To   string `json:"to"`
}
