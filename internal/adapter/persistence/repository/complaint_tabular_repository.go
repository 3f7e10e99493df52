package repository

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"urb_denuncias/internal/adapter/persistence/tabular"
	"urb_denuncias/internal/domain/entities"
	"urb_denuncias/internal/usecase/interfaces"
)

// Canonical complaint columns, written as the header when the table is first
// created. This is the declared order only; rows are always serialized in
// the physical header's order, so a manually reordered table keeps working.
var complaintFields = []string{
	colID, colExternalID, colCreatedAt, colOrigin, colCategory, colStreet,
	colNumber, colNeighborhood, colZone, colReferencePoint, colLatitude,
	colLongitude, colDescription, colReceivedBy, colStatus, colNightAction,
	colPhotos, colReincidences,
}

const (
	colID             = "id"
	colExternalID     = "external_id"
	colCreatedAt      = "created_at"
	colOrigin         = "origin"
	colCategory       = "category"
	colStreet         = "street"
	colNumber         = "number"
	colNeighborhood   = "neighborhood"
	colZone           = "zone"
	colReferencePoint = "reference_point"
	colLatitude       = "latitude"
	colLongitude      = "longitude"
	colDescription    = "description"
	colReceivedBy     = "received_by"
	colStatus         = "status"
	colNightAction    = "night_action"
	colPhotos         = "photos"
	colReincidences   = "reincidences"
)

// ComplaintTabularRepository persists Complaint records in a rewrite-only
// tabular medium.
//
// Write protocol:
//   - Insert appends a single row (identity sequenced from the current ids).
//   - Update/Delete read the whole table, mutate in memory and rewrite it.
//
// The mutex serializes this process's own read-modify-rewrite cycles. Writers
// in other processes are not coordinated, so the last full-table rewrite wins.
// That lost-update window is a property of the medium, documented rather than
// hidden.

type ComplaintTabularRepository struct {
	table tabular.Table

	mu    sync.Mutex
	cache *rowCache[entities.Complaint]
}

var _ interfaces.IComplaintRepository = (*ComplaintTabularRepository)(nil)

func NewComplaintTabularRepository(table tabular.Table) *ComplaintTabularRepository {
	return &ComplaintTabularRepository{
		table: table,
		cache: newRowCache(cacheTTLFromEnv(), entities.Complaint.Clone),
	}
}

// LoadAll returns every complaint, newest id first. Malformed cells degrade to
// their field defaults; a bad row never aborts the load.
func (r *ComplaintTabularRepository) LoadAll(ctx context.Context) ([]entities.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadAllLocked(ctx)
}

func (r *ComplaintTabularRepository) loadAllLocked(ctx context.Context) ([]entities.Complaint, error) {
	now := time.Now()
	if items, ok := r.cache.get(now); ok {
		return items, nil
	}

	header, rows, err := r.table.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	schema := tabular.NewSchema(header)
	if schema.Empty() {
		// Untouched table: nothing to read, nothing to create yet.
		schema = tabular.NewSchema(complaintFields)
	}

	out := make([]entities.Complaint, 0, len(rows))
	for _, row := range rows {
		out = append(out, decodeComplaint(schema, row))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })

	r.cache.set(out, now)
	return out, nil
}

func (r *ComplaintTabularRepository) GetByID(ctx context.Context, id int) (entities.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.loadAllLocked(ctx)
	if err != nil {
		return entities.Complaint{}, err
	}
	for _, c := range items {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Complaint{}, tabular.ErrNotFound
}

// Insert stamps identity (id, external_id, created_at) onto the record and
// appends one row. Appending keeps the blast radius of a concurrent writer as
// small as the medium allows.
func (r *ComplaintTabularRepository) Insert(ctx context.Context, c entities.Complaint) (entities.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	header, rows, err := r.table.ReadAll(ctx)
	if err != nil {
		return entities.Complaint{}, err
	}
	schema := tabular.NewSchema(header)
	if schema.Empty() {
		schema = tabular.NewSchema(complaintFields)
		if err := r.table.WriteHeader(ctx, schema.Header()); err != nil {
			return entities.Complaint{}, err
		}
	}

	idCells := make([]string, 0, len(rows))
	for _, row := range rows {
		idCells = append(idCells, schema.Value(row, colID))
	}
	now := time.Now().In(entities.CivilLocation()).Truncate(time.Second)
	c.ID, c.ExternalID = tabular.NextIdentity(idCells, now)
	c.CreatedAt = now
	if c.Status == "" {
		c.Status = entities.ComplaintStatusPendente
	}
	if c.Photos == nil {
		c.Photos = []string{}
	}
	if c.Reincidences == nil {
		c.Reincidences = []entities.Reincidence{}
	}

	values, err := encodeComplaint(c)
	if err != nil {
		return entities.Complaint{}, err
	}
	if err := r.table.Append(ctx, schema.Row(values, nil)); err != nil {
		return entities.Complaint{}, err
	}

	r.cache.invalidate()
	return c, nil
}

// Update merges only the supplied patch fields into the matching row and
// rewrites the whole table. Every other cell (other rows, unknown columns)
// is carried over unchanged.
func (r *ComplaintTabularRepository) Update(ctx context.Context, id int, patch entities.ComplaintPatch) (entities.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	header, rows, err := r.table.ReadAll(ctx)
	if err != nil {
		return entities.Complaint{}, err
	}
	schema := tabular.NewSchema(header)
	idx := findComplaintRow(schema, rows, id)
	if idx < 0 {
		return entities.Complaint{}, tabular.ErrNotFound
	}

	values, err := encodePatch(patch)
	if err != nil {
		return entities.Complaint{}, err
	}
	rows[idx] = schema.Row(values, rows[idx])

	if err := r.table.RewriteAll(ctx, schema.Header(), rows); err != nil {
		return entities.Complaint{}, err
	}

	r.cache.invalidate()
	return decodeComplaint(schema, rows[idx]), nil
}

// Delete removes the matching row via a full-table rewrite. Destructive and
// immediate, there is no soft delete.
func (r *ComplaintTabularRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	header, rows, err := r.table.ReadAll(ctx)
	if err != nil {
		return err
	}
	schema := tabular.NewSchema(header)
	idx := findComplaintRow(schema, rows, id)
	if idx < 0 {
		return tabular.ErrNotFound
	}

	kept := make([][]string, 0, len(rows)-1)
	kept = append(kept, rows[:idx]...)
	kept = append(kept, rows[idx+1:]...)

	if err := r.table.RewriteAll(ctx, schema.Header(), kept); err != nil {
		return err
	}

	r.cache.invalidate()
	return nil
}

func findComplaintRow(schema tabular.Schema, rows [][]string, id int) int {
	for i, row := range rows {
		n, err := strconv.Atoi(strings.TrimSpace(schema.Value(row, colID)))
		if err == nil && n == id {
			return i
		}
	}
	return -1
}

func decodeComplaint(schema tabular.Schema, row []string) entities.Complaint {
	id, _ := strconv.Atoi(strings.TrimSpace(schema.Value(row, colID)))
	createdAt, _ := time.ParseInLocation(
		entities.CivilTimeLayout, schema.Value(row, colCreatedAt), entities.CivilLocation())
	night, _ := strconv.ParseBool(schema.Value(row, colNightAction))
	photos, _ := tabular.DecodeStrings(schema.Value(row, colPhotos))
	reincidences, _ := tabular.DecodeList[entities.Reincidence](schema.Value(row, colReincidences))

	return entities.Complaint{
		ID:             id,
		ExternalID:     schema.Value(row, colExternalID),
		CreatedAt:      createdAt,
		Origin:         schema.Value(row, colOrigin),
		Category:       schema.Value(row, colCategory),
		Street:         schema.Value(row, colStreet),
		Number:         schema.Value(row, colNumber),
		Neighborhood:   schema.Value(row, colNeighborhood),
		Zone:           schema.Value(row, colZone),
		ReferencePoint: schema.Value(row, colReferencePoint),
		Latitude:       schema.Value(row, colLatitude),
		Longitude:      schema.Value(row, colLongitude),
		Description:    schema.Value(row, colDescription),
		ReceivedBy:     schema.Value(row, colReceivedBy),
		Status:         entities.ComplaintStatus(schema.Value(row, colStatus)),
		NightAction:    night,
		Photos:         photos,
		Reincidences:   reincidences,
	}
}

func encodeComplaint(c entities.Complaint) (map[string]string, error) {
	photos, err := tabular.EncodeList(c.Photos)
	if err != nil {
		return nil, err
	}
	reincidences, err := tabular.EncodeList(c.Reincidences)
	if err != nil {
		return nil, err
	}
	createdAt := ""
	if !c.CreatedAt.IsZero() {
		createdAt = c.CreatedAt.In(entities.CivilLocation()).Format(entities.CivilTimeLayout)
	}

	return map[string]string{
		colID:             strconv.Itoa(c.ID),
		colExternalID:     c.ExternalID,
		colCreatedAt:      createdAt,
		colOrigin:         c.Origin,
		colCategory:       c.Category,
		colStreet:         c.Street,
		colNumber:         c.Number,
		colNeighborhood:   c.Neighborhood,
		colZone:           c.Zone,
		colReferencePoint: c.ReferencePoint,
		colLatitude:       c.Latitude,
		colLongitude:      c.Longitude,
		colDescription:    c.Description,
		colReceivedBy:     c.ReceivedBy,
		colStatus:         string(c.Status),
		colNightAction:    strconv.FormatBool(c.NightAction),
		colPhotos:         photos,
		colReincidences:   reincidences,
	}, nil
}

func encodePatch(p entities.ComplaintPatch) (map[string]string, error) {
	values := map[string]string{}
	setString := func(col string, v *string) {
		if v != nil {
			values[col] = *v
		}
	}
	setString(colOrigin, p.Origin)
	setString(colCategory, p.Category)
	setString(colStreet, p.Street)
	setString(colNumber, p.Number)
	setString(colNeighborhood, p.Neighborhood)
	setString(colZone, p.Zone)
	setString(colReferencePoint, p.ReferencePoint)
	setString(colLatitude, p.Latitude)
	setString(colLongitude, p.Longitude)
	setString(colDescription, p.Description)
	setString(colReceivedBy, p.ReceivedBy)

	if p.Status != nil {
		values[colStatus] = string(*p.Status)
	}
	if p.NightAction != nil {
		values[colNightAction] = strconv.FormatBool(*p.NightAction)
	}
	if p.Photos != nil {
		cell, err := tabular.EncodeList(*p.Photos)
		if err != nil {
			return nil, err
		}
		values[colPhotos] = cell
	}
	if p.Reincidences != nil {
		cell, err := tabular.EncodeList(*p.Reincidences)
		if err != nil {
			return nil, err
		}
		values[colReincidences] = cell
	}
	return values, nil
}
