// Package data is the typed facade over the record store: one method
// per office operation, all writes local-first. Activity entries are
// logged fire-and-forget alongside the writes they describe.
package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/officesync/internal/client/storage"
	"github.com/iudanet/officesync/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service is the interface of the client data layer.
type Service interface {
	AddClient(ctx context.Context, client *models.Client) error
	GetClientByCNIC(ctx context.Context, cnic string) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	UpdateClient(ctx context.Context, client *models.Client) error
	DeleteClient(ctx context.Context, id string) error

	// AddReceipt issues a receipt for the named client, registering the
	// client first when no record holds the CNIC yet. The two writes are
	// separate local transactions: if the receipt write fails after the
	// client write succeeded, the new client remains and the error is
	// returned.
	AddReceipt(ctx context.Context, clientName, clientCNIC string, receipt *models.Receipt) error
	ListReceipts(ctx context.Context) ([]models.Receipt, error)
	DeleteReceipt(ctx context.Context, id string) error

	AddExpense(ctx context.Context, expense *models.Expense) error
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	AddEmployee(ctx context.Context, employee *models.Employee) error
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	MarkAttendance(ctx context.Context, att *models.Attendance) error
	ListAttendance(ctx context.Context) ([]models.Attendance, error)

	AddDocument(ctx context.Context, doc *models.Document) error
	ListDocuments(ctx context.Context) ([]models.Document, error)

	AddUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)

	ListActivities(ctx context.Context) ([]models.Activity, error)
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

type service struct {
	store  storage.RecordStore
	logger *slog.Logger
}

// NewService creates the client data service over store.
func NewService(store storage.RecordStore, logger *slog.Logger) Service {
	return &service{
		store:  store,
		logger: logger,
	}
}

func (s *service) AddClient(ctx context.Context, client *models.Client) error {
	if err := s.store.Create(ctx, models.CollectionClients, client); err != nil {
		return fmt.Errorf("add client: %w", err)
	}
	s.logActivity(ctx, "client_added", fmt.Sprintf("client %s registered", client.Name))
	return nil
}

func (s *service) GetClientByCNIC(ctx context.Context, cnic string) (*models.Client, error) {
	var client models.Client
	if err := s.store.GetByIndex(ctx, models.CollectionClients, cnic, &client); err != nil {
		return nil, fmt.Errorf("get client by cnic: %w", err)
	}
	return &client, nil
}

func (s *service) ListClients(ctx context.Context) ([]models.Client, error) {
	return listRecords[models.Client](ctx, s.store, models.CollectionClients)
}

func (s *service) UpdateClient(ctx context.Context, client *models.Client) error {
	if err := s.store.Update(ctx, models.CollectionClients, client); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (s *service) DeleteClient(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, models.CollectionClients, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	s.logActivity(ctx, "client_deleted", fmt.Sprintf("client %s removed", id))
	return nil
}

func (s *service) AddReceipt(ctx context.Context, clientName, clientCNIC string, receipt *models.Receipt) error {
	var client models.Client
	err := s.store.GetByIndex(ctx, models.CollectionClients, clientCNIC, &client)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		client = models.Client{Name: clientName, CNIC: clientCNIC}
		if err := s.store.Create(ctx, models.CollectionClients, &client); err != nil {
			return fmt.Errorf("register client for receipt: %w", err)
		}
		s.logActivity(ctx, "client_added", fmt.Sprintf("client %s registered", client.Name))
	case err != nil:
		return fmt.Errorf("look up receipt client: %w", err)
	}

	receipt.ClientID = client.RecordID()
	if err := s.store.Create(ctx, models.CollectionReceipts, receipt); err != nil {
		return fmt.Errorf("add receipt: %w", err)
	}
	s.logActivity(ctx, "receipt_issued",
		fmt.Sprintf("receipt of %d issued to %s", receipt.Amount, client.Name))
	return nil
}

func (s *service) ListReceipts(ctx context.Context) ([]models.Receipt, error) {
	return listRecords[models.Receipt](ctx, s.store, models.CollectionReceipts)
}

func (s *service) DeleteReceipt(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, models.CollectionReceipts, id); err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}

func (s *service) AddExpense(ctx context.Context, expense *models.Expense) error {
	if err := s.store.Create(ctx, models.CollectionExpenses, expense); err != nil {
		return fmt.Errorf("add expense: %w", err)
	}
	s.logActivity(ctx, "expense_added",
		fmt.Sprintf("expense of %d in %s", expense.Amount, expense.Category))
	return nil
}

func (s *service) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	return listRecords[models.Expense](ctx, s.store, models.CollectionExpenses)
}

func (s *service) AddEmployee(ctx context.Context, employee *models.Employee) error {
	if err := s.store.Create(ctx, models.CollectionEmployees, employee); err != nil {
		return fmt.Errorf("add employee: %w", err)
	}
	s.logActivity(ctx, "employee_added", fmt.Sprintf("employee %s joined", employee.Name))
	return nil
}

func (s *service) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return listRecords[models.Employee](ctx, s.store, models.CollectionEmployees)
}

func (s *service) MarkAttendance(ctx context.Context, att *models.Attendance) error {
	if err := s.store.Create(ctx, models.CollectionAttendance, att); err != nil {
		return fmt.Errorf("mark attendance: %w", err)
	}
	return nil
}

func (s *service) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	return listRecords[models.Attendance](ctx, s.store, models.CollectionAttendance)
}

func (s *service) AddDocument(ctx context.Context, doc *models.Document) error {
	if err := s.store.Create(ctx, models.CollectionDocuments, doc); err != nil {
		return fmt.Errorf("add document: %w", err)
	}
	s.logActivity(ctx, "document_added", fmt.Sprintf("document %q stored", doc.Title))
	return nil
}

func (s *service) ListDocuments(ctx context.Context) ([]models.Document, error) {
	return listRecords[models.Document](ctx, s.store, models.CollectionDocuments)
}

func (s *service) AddUser(ctx context.Context, user *models.User) error {
	if err := s.store.Create(ctx, models.CollectionUsers, user); err != nil {
		return fmt.Errorf("add user: %w", err)
	}
	return nil
}

func (s *service) ListUsers(ctx context.Context) ([]models.User, error) {
	return listRecords[models.User](ctx, s.store, models.CollectionUsers)
}

func (s *service) ListActivities(ctx context.Context) ([]models.Activity, error) {
	return listRecords[models.Activity](ctx, s.store, models.CollectionActivities)
}

func (s *service) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	return listRecords[models.Notification](ctx, s.store, models.CollectionNotifications)
}

func (s *service) MarkNotificationRead(ctx context.Context, id string) error {
	var n models.Notification
	if err := s.store.GetByID(ctx, models.CollectionNotifications, id, &n); err != nil {
		return fmt.Errorf("get notification: %w", err)
	}
	n.Read = true
	if err := s.store.Update(ctx, models.CollectionNotifications, &n); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// logActivity records an audit entry. Failures are logged and dropped:
// the primary write already succeeded and must stand.
func (s *service) logActivity(ctx context.Context, kind, message string) {
	act := models.Activity{Kind: kind, Message: message}
	if err := s.store.Create(ctx, models.CollectionActivities, &act); err != nil {
		s.logger.Warn("data: activity entry lost", "kind", kind, "error", err)
	}
}

func listRecords[T any](ctx context.Context, store storage.RecordStore, collection string) ([]T, error) {
	docs, err := store.GetAll(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var rec T
		if err := json.Unmarshal(doc, &rec); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", collection, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
