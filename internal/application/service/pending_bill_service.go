package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/genzlaundry/pos-api/internal/domain/entity"
	"github.com/genzlaundry/pos-api/internal/domain/enum"
	"github.com/genzlaundry/pos-api/internal/domain/repository"
	"github.com/genzlaundry/pos-api/pkg/apperror"
	"github.com/genzlaundry/pos-api/pkg/billnumber"
	"github.com/google/uuid"
)

// PendingBillService manages the persisted collection of unpaid bills and
// their lifecycle (pending -> completed -> delivered). Consuming a bill
// into a new order is handled by BillingService and bypasses the lifecycle:
// the record is simply deleted.
type PendingBillService struct {
	billRepo repository.BillRepository
	numbers  *billnumber.Generator
	now      func() time.Time
}

// NewPendingBillService creates a new pending bill service.
func NewPendingBillService(billRepo repository.BillRepository, numbers *billnumber.Generator) *PendingBillService {
	return &PendingBillService{
		billRepo: billRepo,
		numbers:  numbers,
		now:      time.Now,
	}
}

// ListPending returns pending bills matching the query (case-insensitive
// substring on customer name or bill number; empty matches all).
func (s *PendingBillService) ListPending(ctx context.Context, query string) ([]entity.PendingBill, error) {
	bills, err := s.billRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return filterBills(bills, query), nil
}

// ListHistory returns completed/delivered bills matching the query.
func (s *PendingBillService) ListHistory(ctx context.Context, query string) ([]entity.PendingBill, error) {
	bills, err := s.billRepo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}
	return filterBills(bills, query), nil
}

// Get looks a bill up by id across the pending and history lists.
func (s *PendingBillService) Get(ctx context.Context, id string) (*entity.PendingBill, error) {
	pending, err := s.billRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pending {
		if pending[i].ID == id {
			return &pending[i], nil
		}
	}
	history, err := s.billRepo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}
	for i := range history {
		if history[i].ID == id {
			return &history[i], nil
		}
	}
	return nil, apperror.NewNotFoundError("Bill")
}

// PreviousBillItemInput is one line of a manually entered historical bill.
type PreviousBillItemInput struct {
	Name     string
	Quantity int
	Rate     float64
}

// AddPreviousBillInput captures a paper bill from before the system was in
// use, entered so it can later be merged into a new order.
type AddPreviousBillInput struct {
	CustomerName   string
	CustomerPhone  string
	Items          []PreviousBillItemInput
	Discount       float64
	DeliveryCharge float64
}

// AddPrevious validates and persists a manual backlog entry in pending
// state. The grand total invariant (subtotal - discount + delivery) is
// established here and never recomputed afterwards.
func (s *PendingBillService) AddPrevious(ctx context.Context, input *AddPreviousBillInput) (*entity.PendingBill, error) {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.CustomerName) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}
	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "At least one item is required"})
	}
	if input.Discount < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount", Message: "Discount cannot be negative"})
	}
	if input.DeliveryCharge < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "delivery_charge", Message: "Delivery charge cannot be negative"})
	}

	items := make([]entity.BillItem, 0, len(input.Items))
	var subtotal float64
	for _, in := range input.Items {
		name := strings.TrimSpace(in.Name)
		if name == "" || in.Quantity < 1 || in.Rate <= 0 || math.IsNaN(in.Rate) {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "items", Message: "Each item needs a name, a quantity of at least 1 and a positive rate"})
			break
		}
		amount := in.Rate * float64(in.Quantity)
		subtotal += amount
		items = append(items, entity.BillItem{
			Name:     name,
			Quantity: in.Quantity,
			Rate:     in.Rate,
			Amount:   amount,
		})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	number, err := s.nextBillNumber(ctx)
	if err != nil {
		return nil, err
	}

	bill := entity.PendingBill{
		ID:             uuid.NewString(),
		BillNumber:     number,
		CustomerName:   strings.TrimSpace(input.CustomerName),
		CustomerPhone:  strings.TrimSpace(input.CustomerPhone),
		Items:          items,
		Subtotal:       subtotal,
		Discount:       input.Discount,
		DeliveryCharge: input.DeliveryCharge,
		GrandTotal:     subtotal - input.Discount + input.DeliveryCharge,
		Status:         enum.BillStatusPending,
		CreatedAt:      s.now(),
	}
	if bill.GrandTotal < 0 {
		return nil, apperror.NewFieldValidationError("discount", "Discount exceeds the bill total")
	}

	if err := s.billRepo.AddPending(ctx, bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// AdvanceStatus moves a bill forward through its lifecycle. Completed bills
// move from the pending list into history; delivered bills additionally get
// a delivery timestamp. Backward transitions are rejected and delivered is
// terminal.
func (s *PendingBillService) AdvanceStatus(ctx context.Context, id string, newStatus enum.BillStatus) (*entity.PendingBill, error) {
	if !newStatus.Valid() {
		return nil, apperror.NewBadRequestError("Unknown bill status")
	}

	pending, err := s.billRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.billRepo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}

	if bill, rest, ok := takeBill(pending, id); ok {
		if !bill.Status.CanTransitionTo(newStatus) {
			return nil, apperror.NewInvalidTransitionError(bill.Status.String(), newStatus.String())
		}
		bill.Status = newStatus
		if newStatus == enum.BillStatusDelivered {
			deliveredAt := s.now()
			bill.DeliveredAt = &deliveredAt
		}
		// The record leaves the pending list for history either way.
		if err := s.billRepo.ReplaceHistory(ctx, append(history, *bill)); err != nil {
			return nil, err
		}
		if err := s.billRepo.ReplacePending(ctx, rest); err != nil {
			return nil, err
		}
		return bill, nil
	}

	for i := range history {
		if history[i].ID != id {
			continue
		}
		if !history[i].Status.CanTransitionTo(newStatus) {
			return nil, apperror.NewInvalidTransitionError(history[i].Status.String(), newStatus.String())
		}
		history[i].Status = newStatus
		if newStatus == enum.BillStatusDelivered {
			deliveredAt := s.now()
			history[i].DeliveredAt = &deliveredAt
		}
		if err := s.billRepo.ReplaceHistory(ctx, history); err != nil {
			return nil, err
		}
		return &history[i], nil
	}

	return nil, apperror.NewNotFoundError("Bill")
}

func (s *PendingBillService) nextBillNumber(ctx context.Context) (string, error) {
	inUse, err := billNumbersInUse(ctx, s.billRepo)
	if err != nil {
		return "", err
	}
	return s.numbers.Next(inUse), nil
}

func billNumbersInUse(ctx context.Context, repo repository.BillRepository) (map[string]bool, error) {
	pending, err := repo.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	history, err := repo.ListHistory(ctx)
	if err != nil {
		return nil, err
	}
	inUse := make(map[string]bool, len(pending)+len(history))
	for _, b := range pending {
		inUse[b.BillNumber] = true
	}
	for _, b := range history {
		inUse[b.BillNumber] = true
	}
	return inUse, nil
}

func filterBills(bills []entity.PendingBill, query string) []entity.PendingBill {
	query = strings.TrimSpace(query)
	if query == "" {
		return bills
	}
	matched := make([]entity.PendingBill, 0, len(bills))
	for _, bill := range bills {
		if bill.Matches(query) {
			matched = append(matched, bill)
		}
	}
	return matched
}

func takeBill(bills []entity.PendingBill, id string) (*entity.PendingBill, []entity.PendingBill, bool) {
	for i := range bills {
		if bills[i].ID == id {
			bill := bills[i]
			rest := append(append([]entity.PendingBill{}, bills[:i]...), bills[i+1:]...)
			return &bill, rest, true
		}
	}
	return nil, bills, false
}
