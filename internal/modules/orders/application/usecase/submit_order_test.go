package usecase

import (
	"context"
	"errors"
	"testing"

	cart "addisKitchen/internal/modules/cart/domain"
	"addisKitchen/internal/modules/orders/domain"
	"addisKitchen/internal/shared/apperr"
	"addisKitchen/internal/shared/notify"
)

type fakeRepo struct {
	headerErr error
	linesErr  error

	headers []domain.Order
	lines   [][]domain.Line
}

func (f *fakeRepo) CreateHeader(_ context.Context, order *domain.Order) error {
	if f.headerErr != nil {
		return f.headerErr
	}
	f.headers = append(f.headers, *order)
	return nil
}

func (f *fakeRepo) CreateLines(_ context.Context, _ string, lines []domain.Line) error {
	if f.linesErr != nil {
		return f.linesErr
	}
	f.lines = append(f.lines, lines)
	return nil
}

func (f *fakeRepo) List(context.Context) ([]domain.Order, error)       { return nil, nil }
func (f *fakeRepo) Get(context.Context, string) (*domain.Order, error) { return nil, nil }
func (f *fakeRepo) UpdateStatus(context.Context, string, domain.Status) error {
	return nil
}
func (f *fakeRepo) Delete(context.Context, string) error { return nil }

type recordingNotifier struct {
	events []notify.Event
}

func (r *recordingNotifier) Notify(_ context.Context, event notify.Event) {
	r.events = append(r.events, event)
}

func validCustomer() domain.Customer {
	return domain.Customer{Name: "John Doe", Email: "john@example.com", Phone: "555-0100", Address: "1 Main St"}
}

func filledCart() *cart.Cart {
	c := &cart.Cart{}
	c.Add("item-1", "Doro Wot", 18.99)
	c.UpdateQuantity("item-1", 2)
	return c
}

func TestSubmitOrderSuccessClearsCart(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &recordingNotifier{}
	uc := NewSubmitOrderUseCase(repo, notifier)
	c := filledCart()

	order, err := uc.Execute(context.Background(), SubmitOrderInput{Cart: c, Customer: validCustomer()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Total != 37.98 {
		t.Fatalf("expected total 37.98, got %v", order.Total)
	}
	if !c.IsEmpty() {
		t.Fatal("expected cart cleared after success")
	}
	if len(repo.headers) != 1 || len(repo.lines) != 1 {
		t.Fatalf("expected one header and one lines insert, got %d/%d", len(repo.headers), len(repo.lines))
	}
	if len(notifier.events) != 1 || notifier.events[0].Outcome != notify.OutcomeSuccess {
		t.Fatalf("expected exactly one success notification, got %+v", notifier.events)
	}
}

func TestSubmitOrderEmptyCartRejectedBeforeStorage(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &recordingNotifier{}
	uc := NewSubmitOrderUseCase(repo, notifier)

	_, err := uc.Execute(context.Background(), SubmitOrderInput{Cart: &cart.Cart{}, Customer: validCustomer()})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.headers) != 0 || len(repo.lines) != 0 {
		t.Fatal("no records may be created for an empty cart")
	}
	if len(notifier.events) != 1 || notifier.events[0].Outcome != notify.OutcomeFailure {
		t.Fatalf("expected exactly one failure notification, got %+v", notifier.events)
	}
}

func TestSubmitOrderInvalidCustomerRejectedBeforeStorage(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &recordingNotifier{}
	uc := NewSubmitOrderUseCase(repo, notifier)
	c := filledCart()

	customer := validCustomer()
	customer.Email = ""
	_, err := uc.Execute(context.Background(), SubmitOrderInput{Cart: c, Customer: customer})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.headers) != 0 {
		t.Fatal("no header may be created for invalid input")
	}
	if c.IsEmpty() {
		t.Fatal("cart must retain its state on failure")
	}
}

func TestSubmitOrderHeaderFailureKeepsCart(t *testing.T) {
	repo := &fakeRepo{headerErr: errors.New("connection refused")}
	notifier := &recordingNotifier{}
	uc := NewSubmitOrderUseCase(repo, notifier)
	c := filledCart()

	_, err := uc.Execute(context.Background(), SubmitOrderInput{Cart: c, Customer: validCustomer()})
	if !errors.Is(err, apperr.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
	if c.IsEmpty() {
		t.Fatal("cart must retain its state on failure")
	}
	if len(notifier.events) != 1 || notifier.events[0].Outcome != notify.OutcomeFailure {
		t.Fatalf("expected exactly one failure notification, got %+v", notifier.events)
	}
}

func TestSubmitOrderPartialFailureKeepsCartAndNotifiesOnce(t *testing.T) {
	repo := &fakeRepo{linesErr: errors.New("constraint violation")}
	notifier := &recordingNotifier{}
	uc := NewSubmitOrderUseCase(repo, notifier)
	c := filledCart()

	_, err := uc.Execute(context.Background(), SubmitOrderInput{Cart: c, Customer: validCustomer()})
	if !errors.Is(err, apperr.ErrPartialSubmission) {
		t.Fatalf("expected partial submission error, got %v", err)
	}
	if c.IsEmpty() {
		t.Fatal("cart must not be cleared on partial failure")
	}
	if len(repo.headers) != 1 {
		t.Fatalf("expected the header to have been written, got %d", len(repo.headers))
	}
	if len(notifier.events) != 1 || notifier.events[0].Outcome != notify.OutcomeFailure {
		t.Fatalf("expected exactly one failure notification, got %+v", notifier.events)
	}
}

func TestSubmitOrderLinesFollowHeaderOrder(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewSubmitOrderUseCase(repo, &recordingNotifier{})
	c := filledCart()
	c.Add("item-2", "Ethiopian Coffee", 4.99)

	order, err := uc.Execute(context.Background(), SubmitOrderInput{Cart: c, Customer: validCustomer()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.lines[0]) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(repo.lines[0]))
	}
	for _, line := range repo.lines[0] {
		if line.OrderID != order.ID {
			t.Fatalf("line %s not bound to header %s", line.ID, order.ID)
		}
	}
}
