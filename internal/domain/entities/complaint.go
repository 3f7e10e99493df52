package entities

import "time"

// ComplaintStatus represents the lifecycle of a complaint (denúncia).
//
// Domain notes:
//   - A new complaint always starts as Pendente.
//   - Appending a reincidence forces the status back to Em Andamento from any
//     state, including Arquivada. No other transition is automatic.

type ComplaintStatus string

const (
	ComplaintStatusPendente    ComplaintStatus = "Pendente"
	ComplaintStatusEmAndamento ComplaintStatus = "Em Andamento"
	ComplaintStatusConcluida   ComplaintStatus = "Concluída"
	ComplaintStatusArquivada   ComplaintStatus = "Arquivada"
)

// ComplaintStatuses is the closed status enumeration.
var ComplaintStatuses = []ComplaintStatus{
	ComplaintStatusPendente,
	ComplaintStatusEmAndamento,
	ComplaintStatusConcluida,
	ComplaintStatusArquivada,
}

func (s ComplaintStatus) Valid() bool {
	for _, v := range ComplaintStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CivilTimeLayout is the layout used for created_at and reincidence timestamps
// in the backing table.
const CivilTimeLayout = "2006-01-02 15:04:05"

// Reincidence is one append-only follow-up visit attached to a complaint.
// Entries are never edited or reordered once appended.
type Reincidence struct {
	Timestamp   string `json:"timestamp"`
	Origin      string `json:"origin"`
	Description string `json:"description"`
}

// Complaint is the inspection complaint record persisted in the backing table.
//
// Storage model (tabular):
//   - one row per complaint, located by the numeric id column
//   - photos and reincidences are encoded into single cells
//
// ExternalID ("NNNN/YYYY") is derived from the internal id and the creation
// year at insert time and is never recomputed afterwards.

type Complaint struct {
	ID             int             `json:"id"`
	ExternalID     string          `json:"external_id"`
	CreatedAt      time.Time       `json:"created_at"`
	Origin         string          `json:"origin"`
	Category       string          `json:"category"`
	Street         string          `json:"street"`
	Number         string          `json:"number"`
	Neighborhood   string          `json:"neighborhood"`
	Zone           string          `json:"zone"`
	ReferencePoint string          `json:"reference_point"`
	Latitude       string          `json:"latitude"`
	Longitude      string          `json:"longitude"`
	Description    string          `json:"description"`
	ReceivedBy     string          `json:"received_by"`
	Status         ComplaintStatus `json:"status"`
	NightAction    bool            `json:"night_action"`
	Photos         []string        `json:"photos"`
	Reincidences   []Reincidence   `json:"reincidences"`
}

// Clone returns a deep copy. Photos and Reincidences are duplicated so the
// copy can be mutated without affecting the receiver.
func (c Complaint) Clone() Complaint {
	if c.Photos != nil {
		c.Photos = append([]string(nil), c.Photos...)
	}
	if c.Reincidences != nil {
		c.Reincidences = append([]Reincidence(nil), c.Reincidences...)
	}
	return c
}

// ComplaintPatch carries a partial update. Nil fields are left untouched in the
// stored row; id, external_id and created_at are never updatable.
type ComplaintPatch struct {
	Origin         *string
	Category       *string
	Street         *string
	Number         *string
	Neighborhood   *string
	Zone           *string
	ReferencePoint *string
	Latitude       *string
	Longitude      *string
	Description    *string
	ReceivedBy     *string
	Status         *ComplaintStatus
	NightAction    *bool
	Photos         *[]string
	Reincidences   *[]Reincidence
}
