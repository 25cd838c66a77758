package overtime

import "context"

// OvertimeService defines business logic for overtime request operations
type OvertimeService interface {
	// CreateRequest submits a new overtime request for the authenticated user
	CreateRequest(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)

	// List retrieves overtime requests for a month
	List(ctx context.Context, filter ListFilter) ([]OvertimeResponse, error)

	// Approve moves a pending request to approved (manager/admin, not requester)
	Approve(ctx context.Context, id string) (OvertimeResponse, error)

	// BulkApprove approves each id independently; partial success is reported
	BulkApprove(ctx context.Context, req BulkApproveRequest) (BulkApproveResponse, error)

	// Compensate moves an approved request to compensated (manager/admin)
	Compensate(ctx context.Context, id string) (OvertimeResponse, error)

	// Reject cancels a pending request, or an approved holiday-work request
	// at the compensation stage, with a reason (manager/admin)
	Reject(ctx context.Context, req RejectOvertimeRequest) (OvertimeResponse, error)

	// Cancel lets the requester cancel their own pending request
	Cancel(ctx context.Context, id string) (OvertimeResponse, error)

	// Reapply opens a fresh pending request pre-filled from a cancelled one
	Reapply(ctx context.Context, id string) (OvertimeResponse, error)
}
