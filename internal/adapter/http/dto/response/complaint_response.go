package response

import (
	"urb_denuncias/internal/domain/entities"
)

type ReincidenceResponse struct {
	Timestamp   string `json:"timestamp"`
	Origin      string `json:"origin"`
	Description string `json:"description"`
}

type ComplaintResponse struct {
	ID             int                   `json:"id"`
	ExternalID     string                `json:"external_id"`
	CreatedAt      string                `json:"created_at"`
	Origin         string                `json:"origin"`
	Category       string                `json:"category"`
	Street         string                `json:"street"`
	Number         string                `json:"number"`
	Neighborhood   string                `json:"neighborhood"`
	Zone           string                `json:"zone"`
	ReferencePoint string                `json:"reference_point"`
	Latitude       string                `json:"latitude"`
	Longitude      string                `json:"longitude"`
	Description    string                `json:"description"`
	ReceivedBy     string                `json:"received_by"`
	Status         string                `json:"status"`
	NightAction    bool                  `json:"night_action"`
	Photos         []string              `json:"photos"`
	Reincidences   []ReincidenceResponse `json:"reincidences"`
}

func FromComplaint(c entities.Complaint) ComplaintResponse {
	createdAt := ""
	if !c.CreatedAt.IsZero() {
		createdAt = c.CreatedAt.Format(entities.CivilTimeLayout)
	}
	photos := c.Photos
	if photos == nil {
		photos = []string{}
	}
	reincidences := make([]ReincidenceResponse, 0, len(c.Reincidences))
	for _, r := range c.Reincidences {
		reincidences = append(reincidences, ReincidenceResponse{
			Timestamp:   r.Timestamp,
			Origin:      r.Origin,
			Description: r.Description,
		})
	}
	return ComplaintResponse{
		ID:             c.ID,
		ExternalID:     c.ExternalID,
		CreatedAt:      createdAt,
		Origin:         c.Origin,
		Category:       c.Category,
		Street:         c.Street,
		Number:         c.Number,
		Neighborhood:   c.Neighborhood,
		Zone:           c.Zone,
		ReferencePoint: c.ReferencePoint,
		Latitude:       c.Latitude,
		Longitude:      c.Longitude,
		Description:    c.Description,
		ReceivedBy:     c.ReceivedBy,
		Status:         string(c.Status),
		NightAction:    c.NightAction,
		Photos:         photos,
		Reincidences:   reincidences,
	}
}

func FromComplaints(cs []entities.Complaint) []ComplaintResponse {
	out := make([]ComplaintResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromComplaint(c))
	}
	return out
}

// OptionsResponse exposes the canonical intake option lists to form clients.
type OptionsResponse struct {
	Origins       []string `json:"origins"`
	Categories    []string `json:"categories"`
	Zones         []string `json:"zones"`
	Neighborhoods []string `json:"neighborhoods"`
	Inspectors    []string `json:"inspectors"`
	Statuses      []string `json:"statuses"`
}

func NewOptionsResponse() OptionsResponse {
	statuses := make([]string, 0, len(entities.ComplaintStatuses))
	for _, s := range entities.ComplaintStatuses {
		statuses = append(statuses, string(s))
	}
	return OptionsResponse{
		Origins:       entities.OriginOptions,
		Categories:    entities.CategoryOptions,
		Zones:         entities.ZoneOptions,
		Neighborhoods: entities.NeighborhoodOptions,
		Inspectors:    entities.InspectorOptions,
		Statuses:      statuses,
	}
}
