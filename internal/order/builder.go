package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/benjoezac-cmd/big-bite-kebabs/internal/clock"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/domain"
	apperrors "github.com/benjoezac-cmd/big-bite-kebabs/internal/errors"
	"github.com/benjoezac-cmd/big-bite-kebabs/internal/menu"

	"github.com/google/uuid"
)

// BuildInput is the raw material for one order, regardless of which path it
// arrived on. Confirmed marks the voice-confirmation and explicit-submission
// paths, which require customer contact details and get an estimated ready
// time; everything else is persisted as pending.
type BuildInput struct {
	Items               []LineItemInput
	OrderType           string
	CustomerName        string
	CustomerPhone       string
	CustomerAddress     string
	SpecialInstructions string
	CallID              string
	Source              string
	Confirmed           bool
}

// Builder validates raw order input and produces a normalized Order. It has
// no side effects; persisting the result is the caller's job.
type Builder struct {
	catalog  *menu.Catalog
	clock    clock.Clock
	leadTime time.Duration
}

func NewBuilder(catalog *menu.Catalog, clk clock.Clock, leadTime time.Duration) *Builder {
	return &Builder{
		catalog:  catalog,
		clock:    clk,
		leadTime: leadTime,
	}
}

func (b *Builder) Build(in BuildInput) (domain.Order, error) {
	if len(in.Items) == 0 {
		return domain.Order{}, apperrors.NewValidationError(
			apperrors.CodeMissingItems,
			"Order must contain at least one item",
			apperrors.ValidationDetail{Field: "items", Message: "items must not be empty"},
		)
	}

	if in.Confirmed && (in.CustomerName == "" || in.CustomerPhone == "") {
		return domain.Order{}, apperrors.NewValidationError(
			apperrors.CodeMissingCustomerInfo,
			"Customer name and phone are required",
			apperrors.ValidationDetail{Field: "customerName", Message: "customer name and phone must both be present"},
		)
	}

	now := b.clock.Now()

	lines := make([]domain.OrderLineItem, len(in.Items))
	for i, item := range in.Items {
		lines[i] = b.resolveLine(item)
	}

	total := 0.0
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}

	orderType := in.OrderType
	if orderType == "" {
		orderType = domain.OrderTypePickup
	}

	status := domain.OrderStatusPending
	var estimatedReady *time.Time
	if in.Confirmed {
		status = domain.OrderStatusConfirmed
		ready := now.Add(b.leadTime)
		estimatedReady = &ready
	}

	return domain.Order{
		OrderID:             NewOrderID(now),
		CallID:              in.CallID,
		Items:               lines,
		Total:               total,
		OrderType:           orderType,
		CustomerName:        in.CustomerName,
		CustomerPhone:       in.CustomerPhone,
		CustomerAddress:     in.CustomerAddress,
		SpecialInstructions: in.SpecialInstructions,
		Status:              status,
		Source:              in.Source,
		CreatedAt:           now,
		EstimatedReady:      estimatedReady,
	}, nil
}

// resolveLine prefers catalog data over caller-supplied data. A line that does
// not resolve keeps the caller's name and price; rejecting unknown references
// outright would break webhook-sourced items that carry no catalog id.
func (b *Builder) resolveLine(in LineItemInput) domain.OrderLineItem {
	term := in.ItemRef
	if term == "" {
		term = in.Name
	}

	if term != "" {
		if item, ok := b.catalog.Lookup(term); ok {
			return domain.OrderLineItem{
				ItemID:   item.ID,
				Name:     item.Name,
				Price:    item.Price,
				Quantity: in.Quantity,
			}
		}
	}

	name := in.Name
	if name == "" {
		name = in.ItemRef
	}
	return domain.OrderLineItem{
		Name:     name,
		Price:    in.Price,
		Quantity: in.Quantity,
	}
}

// CalculateTotal sums price x quantity over raw line items without catalog
// resolution. It backs the agent's calculate-total function call, where the
// agent has already priced each line via validate-menu-item.
func CalculateTotal(items []LineItemInput) (total float64, itemCount int) {
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
		itemCount += item.Quantity
	}
	return total, itemCount
}

// NewOrderID returns an id like BBK-1756600000000-4F9A0C21B. Uniqueness comes
// from the uuid suffix, not the timestamp.
func NewOrderID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("BBK-%d-%s", now.UnixMilli(), suffix)
}
