package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"urb_denuncias/internal/adapter/persistence/tabular"
	"urb_denuncias/internal/domain/entities"
	"urb_denuncias/internal/usecase/interfaces"
)

var (
	ErrComplaintNotFound  = errors.New("complaint not found")
	ErrInvalidComplaintID = errors.New("invalid complaint id")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrMissingFields      = errors.New("origin and description are required")
	ErrInvalidReincidence = errors.New("reincidence origin and description are required")
)

// IComplaintUseCase is the case-lifecycle façade consumed by the presentation
// layers (forms, reports, dashboards).
//
// Beyond plain CRUD it owns the two domain rules:
//   - ChangeStatus only accepts values from the closed status enumeration.
//   - AppendReincidence is the single mutation path that grows the
//     reincidence history, and it reopens the case (status → Em Andamento)
//     from any state, Arquivada included.

type IComplaintUseCase interface {
	Register(ctx context.Context, c entities.Complaint) (entities.Complaint, error)
	ListAll(ctx context.Context) ([]entities.Complaint, error)
	GetByID(ctx context.Context, id int) (entities.Complaint, error)
	UpdateDetails(ctx context.Context, id int, patch entities.ComplaintPatch) (entities.Complaint, error)
	Delete(ctx context.Context, id int) error
	ChangeStatus(ctx context.Context, id int, status entities.ComplaintStatus) (entities.Complaint, error)
	AppendReincidence(ctx context.Context, id int, origin, description string) (entities.Complaint, error)
	AttachPhoto(ctx context.Context, id int, filename, contentType string, size int64, r io.Reader) (entities.Complaint, error)
}

type ComplaintUseCase struct {
	repo   interfaces.IComplaintRepository
	photos interfaces.IPhotoStore
}

var _ IComplaintUseCase = (*ComplaintUseCase)(nil)

func NewComplaintUseCase(repo interfaces.IComplaintRepository, photos interfaces.IPhotoStore) *ComplaintUseCase {
	return &ComplaintUseCase{repo: repo, photos: photos}
}

// Register validates the intake payload and inserts the new complaint. The
// repository stamps id, external_id and created_at; status always starts as
// Pendente no matter what the caller sent.
func (u *ComplaintUseCase) Register(ctx context.Context, c entities.Complaint) (entities.Complaint, error) {
	c.Origin = strings.TrimSpace(c.Origin)
	c.Description = strings.TrimSpace(c.Description)
	if c.Origin == "" || c.Description == "" {
		return entities.Complaint{}, ErrMissingFields
	}

	c.ID = 0
	c.ExternalID = ""
	c.CreatedAt = time.Time{}
	c.Status = entities.ComplaintStatusPendente
	c.Reincidences = nil

	created, err := u.repo.Insert(ctx, c)
	if err != nil {
		zap.S().Errorf("[complaint][usecase] register failed err=%v", err)
		return entities.Complaint{}, err
	}
	zap.S().Infof("[complaint][usecase] registered id=%d external_id=%s", created.ID, created.ExternalID)
	return created, nil
}

func (u *ComplaintUseCase) ListAll(ctx context.Context) ([]entities.Complaint, error) {
	return u.repo.LoadAll(ctx)
}

func (u *ComplaintUseCase) GetByID(ctx context.Context, id int) (entities.Complaint, error) {
	if id <= 0 {
		return entities.Complaint{}, ErrInvalidComplaintID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tabular.ErrNotFound) {
			return entities.Complaint{}, ErrComplaintNotFound
		}
		return entities.Complaint{}, err
	}
	return c, nil
}

// UpdateDetails merges the supplied fields into the stored record. The
// reincidence history is not editable through this path, only through
// AppendReincidence.
func (u *ComplaintUseCase) UpdateDetails(ctx context.Context, id int, patch entities.ComplaintPatch) (entities.Complaint, error) {
	if id <= 0 {
		return entities.Complaint{}, ErrInvalidComplaintID
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Complaint{}, ErrInvalidStatus
	}
	patch.Reincidences = nil

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, tabular.ErrNotFound) {
			return entities.Complaint{}, ErrComplaintNotFound
		}
		return entities.Complaint{}, err
	}
	zap.S().Infof("[complaint][usecase] updated id=%d", id)
	return updated, nil
}

func (u *ComplaintUseCase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidComplaintID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, tabular.ErrNotFound) {
			return ErrComplaintNotFound
		}
		return err
	}
	zap.S().Infof("[complaint][usecase] deleted id=%d", id)
	return nil
}

// ChangeStatus applies an explicit operator transition after validating the
// target against the closed enumeration. The table is not touched when
// validation fails.
func (u *ComplaintUseCase) ChangeStatus(ctx context.Context, id int, status entities.ComplaintStatus) (entities.Complaint, error) {
	if id <= 0 {
		return entities.Complaint{}, ErrInvalidComplaintID
	}
	if !status.Valid() {
		return entities.Complaint{}, ErrInvalidStatus
	}

	updated, err := u.repo.Update(ctx, id, entities.ComplaintPatch{Status: &status})
	if err != nil {
		if errors.Is(err, tabular.ErrNotFound) {
			return entities.Complaint{}, ErrComplaintNotFound
		}
		return entities.Complaint{}, err
	}
	zap.S().Infof("[complaint][usecase] status changed id=%d status=%s", id, status)
	return updated, nil
}

// AppendReincidence records a follow-up visit. The new entry is appended after
// every existing one (history is never reordered or rewritten) and the case is
// forced back to Em Andamento in the same table write.
func (u *ComplaintUseCase) AppendReincidence(ctx context.Context, id int, origin, description string) (entities.Complaint, error) {
	if id <= 0 {
		return entities.Complaint{}, ErrInvalidComplaintID
	}
	origin = strings.TrimSpace(origin)
	description = strings.TrimSpace(description)
	if origin == "" || description == "" {
		return entities.Complaint{}, ErrInvalidReincidence
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tabular.ErrNotFound) {
			return entities.Complaint{}, ErrComplaintNotFound
		}
		return entities.Complaint{}, err
	}

	history := make([]entities.Reincidence, 0, len(current.Reincidences)+1)
	history = append(history, current.Reincidences...)
	history = append(history, entities.Reincidence{
		Timestamp:   time.Now().In(entities.CivilLocation()).Format(entities.CivilTimeLayout),
		Origin:      origin,
		Description: description,
	})
	reopened := entities.ComplaintStatusEmAndamento

	updated, err := u.repo.Update(ctx, id, entities.ComplaintPatch{
		Reincidences: &history,
		Status:       &reopened,
	})
	if err != nil {
		if errors.Is(err, tabular.ErrNotFound) {
			return entities.Complaint{}, ErrComplaintNotFound
		}
		return entities.Complaint{}, err
	}
	zap.S().Infof("[complaint][usecase] reincidence appended id=%d total=%d", id, len(updated.Reincidences))
	return updated, nil
}

// AttachPhoto saves the upload through the photo store and appends the
// returned reference to the complaint's photo list.
func (u *ComplaintUseCase) AttachPhoto(ctx context.Context, id int, filename, contentType string, size int64, r io.Reader) (entities.Complaint, error) {
	if id <= 0 {
		return entities.Complaint{}, ErrInvalidComplaintID
	}
	if u.photos == nil {
		return entities.Complaint{}, errors.New("photo store not configured")
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tabular.ErrNotFound) {
			return entities.Complaint{}, ErrComplaintNotFound
		}
		return entities.Complaint{}, err
	}

	ref, err := u.photos.Save(ctx, filename, contentType, size, r)
	if err != nil {
		zap.S().Errorf("[complaint][usecase] photo save failed id=%d err=%v", id, err)
		return entities.Complaint{}, err
	}

	photos := append(append([]string{}, current.Photos...), ref)
	updated, err := u.repo.Update(ctx, id, entities.ComplaintPatch{Photos: &photos})
	if err != nil {
		if errors.Is(err, tabular.ErrNotFound) {
			return entities.Complaint{}, ErrComplaintNotFound
		}
		return entities.Complaint{}, err
	}
	zap.S().Infof("[complaint][usecase] photo attached id=%d ref=%s", id, ref)
	return updated, nil
}
