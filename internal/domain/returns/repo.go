package returns

//go:generate mockgen -source repo.go -destination mock_repo.go -package returns

import "context"

// RequestDetail is a request together with its lines.
type RequestDetail struct {
	Request     ReturnRequest      `json:"request"`
	Items       []ReturnItem       `json:"items"`
	Images      []ReturnImage      `json:"images"`
	Inspections []InspectionRecord `json:"inspections"`
}

// TxReturnRepo is the slice of the repository usable inside a transaction.
type TxReturnRepo interface {
	CreateRequest(ctx context.Context, request NewReturnRequest) (ReturnRequest, error)
	AddItems(ctx context.Context, requestID string, items []NewReturnItem) ([]ReturnItem, error)
	AddImages(ctx context.Context, requestID string, images []NewReturnImage) ([]ReturnImage, error)
	GetRequestByID(ctx context.Context, id string) (ReturnRequest, error)
	// UpdateRequestStatus compares against fromStatus and returns
	// ErrConcurrentUpdate when the stored row moved on in the meantime.
	UpdateRequestStatus(ctx context.Context, updated ReturnRequest, fromStatus Status) error
	UpdateRequestInfo(ctx context.Context, updated ReturnRequest) error
	AddInspection(ctx context.Context, record NewInspectionRecord) (InspectionRecord, error)
}

// ReturnRepo is the persistence port of the returns domain.
type ReturnRepo interface {
	TxReturnRepo
	InTransaction(ctx context.Context, fn func(tx TxReturnRepo) error) error

	GetRequestByNumber(ctx context.Context, requestNumber string) (ReturnRequest, error)
	GetDetail(ctx context.Context, id string) (RequestDetail, error)
	QueryRequests(ctx context.Context, query ReturnsQuery) ([]ReturnRequest, error)
	CountRequests(ctx context.Context, query ReturnsQuery) (int64, error)
	GetStatistics(ctx context.Context, query ReturnsQuery) (Statistics, error)
	ListInspections(ctx context.Context, requestID string) ([]InspectionRecord, error)
}
