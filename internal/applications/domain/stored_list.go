package domain

// Shape tags which persisted representation a stored application list uses.
// Profiles written before status tracking hold bare company-id strings; every
// list persisted since is a sequence of {hteId, status} records.
type Shape int

const (
	ShapeCurrent Shape = iota
	ShapeLegacy
)

// StoredList is the decoded form of the profile's shortlist field, still
// tagged with the shape it was read in. Decoding happens once, at the store
// boundary; nothing deeper in the call stack inspects element types.
type StoredList struct {
	Shape   Shape
	IDs     []string // populated for ShapeLegacy
	Records []Record // populated for ShapeCurrent
}

// DecodeStoredList turns the raw field value delivered by the document store
// into a tagged StoredList. The shape is determined by the first element; an
// empty or absent list is current-shape/empty. Elements that fit neither shape
// are dropped, never an error.
func DecodeStoredList(raw interface{}) StoredList {
	items, ok := raw.([]interface{})
	if !ok || len(items) == 0 {
		return StoredList{Shape: ShapeCurrent}
	}

	if _, isID := items[0].(string); isID {
		ids := make([]string, 0, len(items))
		for _, item := range items {
			if id, ok := item.(string); ok && id != "" {
				ids = append(ids, id)
			}
		}
		return StoredList{Shape: ShapeLegacy, IDs: ids}
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		id, _ := fields["hteId"].(string)
		if id == "" {
			continue
		}
		status, _ := fields["status"].(string)
		records = append(records, Record{CompanyID: id, Status: Status(status)})
	}
	return StoredList{Shape: ShapeCurrent, Records: records}
}

// EncodeRecords converts records to the field value written back to the store.
// Only the current shape is ever persisted.
func EncodeRecords(records []Record) []interface{} {
	out := make([]interface{}, len(records))
	for i, r := range records {
		out[i] = map[string]interface{}{
			"hteId":  r.CompanyID,
			"status": string(r.Status),
		}
	}
	return out
}
