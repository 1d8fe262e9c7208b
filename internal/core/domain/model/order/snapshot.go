package order

import "time"

// Snapshot is the canonical serialized representation of an order record.
// It is what the change feed broadcasts and what API clients render; clients
// never receive the aggregate itself and never recompute derived flags.
type Snapshot struct {
	ID          string         `json:"id"`
	TableNumber int            `json:"tableNumber"`
	Items       []LineSnapshot `json:"items"`
	Note        string         `json:"note,omitempty"`
	Status      string         `json:"status"`
	ServerName  string         `json:"serverName"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Modified    bool           `json:"modified"`
	ModifiedBy  string         `json:"modifiedBy,omitempty"`
	Version     int            `json:"version"`
}

// LineSnapshot is the serialized form of a single order line.
type LineSnapshot struct {
	ItemID    string   `json:"itemId"`
	Name      string   `json:"name"`
	UnitPrice float64  `json:"unitPrice"`
	Qty       int      `json:"qty"`
	Modifiers []string `json:"modifiers,omitempty"`
	Note      string   `json:"note,omitempty"`
}

// Snapshot returns the serialized representation of the order's current state.
func (o *Order) Snapshot() Snapshot {
	items := make([]LineSnapshot, len(o.lines))
	for i, l := range o.lines {
		items[i] = LineSnapshot{
			ItemID:    l.ItemID().String(),
			Name:      l.Name(),
			UnitPrice: l.UnitPrice(),
			Qty:       l.Qty(),
			Modifiers: l.Modifiers(),
			Note:      l.Note(),
		}
	}

	return Snapshot{
		ID:          o.id.String(),
		TableNumber: o.tableNumber.Int(),
		Items:       items,
		Note:        o.note,
		Status:      o.status.String(),
		ServerName:  o.serverName,
		CreatedAt:   o.createdAt,
		UpdatedAt:   o.updatedAt,
		Modified:    o.modified,
		ModifiedBy:  o.modifiedBy,
		Version:     o.version,
	}
}
