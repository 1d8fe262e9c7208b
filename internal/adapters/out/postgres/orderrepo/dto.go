// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/kernel"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Lines are serialized to a jsonb column: the subsystem never queries inside
// a line, so a relational breakdown would only add join cost.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableNumber  int       `gorm:"index"`
	Lines        []byte    `gorm:"type:jsonb"`
	Note         string
	Status       string `gorm:"index"`
	ServerName   string `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Modified     bool
	ModifiedBy   string
	Acknowledged bool
	Version      int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is the jsonb element for one order line.
type LineDTO struct {
	ItemID    uuid.UUID `json:"itemId"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unitPrice"`
	Qty       int       `json:"qty"`
	Modifiers []string  `json:"modifiers,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	lines := aggregate.Lines()
	lineDTOs := make([]LineDTO, len(lines))
	for i, line := range lines {
		lineDTOs[i] = LineDTO{
			ItemID:    line.ItemID().Bytes(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice(),
			Qty:       line.Qty(),
			Modifiers: line.Modifiers(),
			Note:      line.Note(),
		}
	}

	rawLines, err := json.Marshal(lineDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		TableNumber:  aggregate.TableNumber().Int(),
		Lines:        rawLines,
		Note:         aggregate.Note(),
		Status:       aggregate.Status().String(),
		ServerName:   aggregate.ServerName(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Modified:     aggregate.Modified(),
		ModifiedBy:   aggregate.ModifiedBy(),
		Acknowledged: aggregate.Acknowledged(),
		Version:      aggregate.Version(),
	}, nil
}

// toDomain converts a database row back into an order aggregate via the
// restore path, so corrupt rows fail loudly instead of producing invalid
// aggregates.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	table, err := kernel.NewTableNumber(dto.TableNumber)
	if err != nil {
		return nil, err
	}

	var lineDTOs []LineDTO
	if err = json.Unmarshal(dto.Lines, &lineDTOs); err != nil {
		return nil, err
	}

	lines := make([]order.Line, len(lineDTOs))
	for i, lineDTO := range lineDTOs {
		itemID, itemErr := kernel.UUIDFromBytes(lineDTO.ItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		line, lineErr := order.NewLine(
			itemID, lineDTO.Name, lineDTO.UnitPrice, lineDTO.Qty, lineDTO.Modifiers, lineDTO.Note)
		if lineErr != nil {
			return nil, lineErr
		}
		lines[i] = line
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		table,
		lines,
		dto.Note,
		status,
		dto.ServerName,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Modified,
		dto.ModifiedBy,
		dto.Acknowledged,
		dto.Version,
	)
}
