package interfaces

import (
	"context"

	"urb_denuncias/internal/domain/entities"
)

// IComplaintRepository abstracts tabular persistence for Complaint.
//
// The backing medium only supports whole-table reads and whole-table rewrites,
// so implementations follow read-all → mutate → rewrite-all for Update/Delete
// and a plain append for Insert. Update/Delete report tabular.ErrNotFound when
// no row carries the target id.

type IComplaintRepository interface {
	LoadAll(ctx context.Context) ([]entities.Complaint, error)
	GetByID(ctx context.Context, id int) (entities.Complaint, error)
	Insert(ctx context.Context, c entities.Complaint) (entities.Complaint, error)
	Update(ctx context.Context, id int, patch entities.ComplaintPatch) (entities.Complaint, error)
	Delete(ctx context.Context, id int) error
}
