package post

type PostServiceAPI interface {
	ListPublished() ([]Post, error)
	GetBySlug(slug string) (*Post, error)
	GetByID(id int64) (*Post, error)
	ListAll() ([]Post, error)
	Create(req *SavePostRequest, authorID *int) (*Post, error)
	Update(id int64, req *SavePostRequest) (*Post, error)
	Delete(id int64) error
	UploadCover(id int64, req *UploadCoverRequest) (*Post, error)
}

var _ PostServiceAPI = (*PostService)(nil)
