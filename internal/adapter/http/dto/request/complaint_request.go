package request

import (
	"strings"

	"urb_denuncias/internal/domain/entities"
)

// ComplaintCreateRequest is the intake payload. Only origin and description
// are mandatory; everything else mirrors the paper form and may arrive empty.
type ComplaintCreateRequest struct {
	Origin         string `json:"origin" binding:"required"`
	Category       string `json:"category"`
	Street         string `json:"street"`
	Number         string `json:"number"`
	Neighborhood   string `json:"neighborhood"`
	Zone           string `json:"zone"`
	ReferencePoint string `json:"reference_point"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	Description    string `json:"description" binding:"required"`
	ReceivedBy     string `json:"received_by"`
	NightAction    bool   `json:"night_action"`
}

func (r ComplaintCreateRequest) ToEntity() entities.Complaint {
	return entities.Complaint{
		Origin:         strings.TrimSpace(r.Origin),
		Category:       strings.TrimSpace(r.Category),
		Street:         strings.TrimSpace(r.Street),
		Number:         strings.TrimSpace(r.Number),
		Neighborhood:   strings.TrimSpace(r.Neighborhood),
		Zone:           strings.TrimSpace(r.Zone),
		ReferencePoint: strings.TrimSpace(r.ReferencePoint),
		Latitude:       strings.TrimSpace(r.Latitude),
		Longitude:      strings.TrimSpace(r.Longitude),
		Description:    strings.TrimSpace(r.Description),
		ReceivedBy:     strings.TrimSpace(r.ReceivedBy),
		NightAction:    r.NightAction,
	}
}

// ComplaintUpdateRequest carries a partial update: absent fields stay nil and
// the stored value survives untouched.
type ComplaintUpdateRequest struct {
	Origin         *string `json:"origin"`
	Category       *string `json:"category"`
	Street         *string `json:"street"`
	Number         *string `json:"number"`
	Neighborhood   *string `json:"neighborhood"`
	Zone           *string `json:"zone"`
	ReferencePoint *string `json:"reference_point"`
	Latitude       *string `json:"latitude"`
	Longitude      *string `json:"longitude"`
	Description    *string `json:"description"`
	ReceivedBy     *string `json:"received_by"`
	Status         *string `json:"status"`
	NightAction    *bool   `json:"night_action"`
}

func (r ComplaintUpdateRequest) ToPatch() entities.ComplaintPatch {
	patch := entities.ComplaintPatch{
		Origin:         r.Origin,
		Category:       r.Category,
		Street:         r.Street,
		Number:         r.Number,
		Neighborhood:   r.Neighborhood,
		Zone:           r.Zone,
		ReferencePoint: r.ReferencePoint,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Description:    r.Description,
		ReceivedBy:     r.ReceivedBy,
		NightAction:    r.NightAction,
	}
	if r.Status != nil {
		status := entities.ComplaintStatus(strings.TrimSpace(*r.Status))
		patch.Status = &status
	}
	return patch
}

type StatusChangeRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusChangeRequest) ToStatus() entities.ComplaintStatus {
	return entities.ComplaintStatus(strings.TrimSpace(r.Status))
}

type ReincidenceRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Description string `json:"description" binding:"required"`
}
