package message

type MessageServiceAPI interface {
	Create(req *CreateMessageRequest) (*Message, error)
	List(status, category string) ([]Message, error)
	GetByID(id int64) (*Message, error)
	UpdateStatus(id int64, status Status) (*Message, error)
}

var _ MessageServiceAPI = (*MessageService)(nil)
