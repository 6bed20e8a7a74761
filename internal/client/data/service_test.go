package data

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/officesync/internal/client/storage"
	"github.com/iudanet/officesync/internal/client/storage/boltdb"
	"github.com/iudanet/officesync/internal/models"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	ctx := context.Background()
	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "test.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return NewService(store, slog.Default())
}

func TestAddClient_LogsActivity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	client := &models.Client{Name: "Asif", CNIC: "12345-1234567-1"}
	require.NoError(t, svc.AddClient(ctx, client))
	assert.NotEmpty(t, client.ID)

	activities, err := svc.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "client_added", activities[0].Kind)
}

func TestAddClient_DuplicateCNIC(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.AddClient(ctx, &models.Client{Name: "Asif", CNIC: "12345-1234567-1"}))

	err := svc.AddClient(ctx, &models.Client{Name: "Imposter", CNIC: "12345-1234567-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrConstraint)
}

func TestAddReceipt_RegistersUnknownClient(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	receipt := &models.Receipt{Amount: 1500, Description: "consultation", IssuedAt: time.Now().UTC()}
	require.NoError(t, svc.AddReceipt(ctx, "Asif", "12345-1234567-1", receipt))

	client, err := svc.GetClientByCNIC(ctx, "12345-1234567-1")
	require.NoError(t, err)
	assert.Equal(t, "Asif", client.Name)
	assert.Equal(t, client.RecordID(), receipt.ClientID)

	receipts, err := svc.ListReceipts(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, client.RecordID(), receipts[0].ClientID)
}

func TestAddReceipt_ReusesExistingClient(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	existing := &models.Client{Name: "Asif", CNIC: "12345-1234567-1"}
	require.NoError(t, svc.AddClient(ctx, existing))

	receipt := &models.Receipt{Amount: 2500}
	require.NoError(t, svc.AddReceipt(ctx, "Asif Sahab", "12345-1234567-1", receipt))
	assert.Equal(t, existing.RecordID(), receipt.ClientID)

	clients, err := svc.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1, "a second client must not appear")
}

func TestUpdateClient(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	client := &models.Client{Name: "Asif", CNIC: "12345-1234567-1"}
	require.NoError(t, svc.AddClient(ctx, client))

	client.Phone = "0300-1111111"
	require.NoError(t, svc.UpdateClient(ctx, client))

	got, err := svc.GetClientByCNIC(ctx, "12345-1234567-1")
	require.NoError(t, err)
	assert.Equal(t, "0300-1111111", got.Phone)
}

func TestDeleteClient(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	client := &models.Client{Name: "Asif", CNIC: "12345-1234567-1"}
	require.NoError(t, svc.AddClient(ctx, client))
	require.NoError(t, svc.DeleteClient(ctx, client.RecordID()))

	_, err := svc.GetClientByCNIC(ctx, "12345-1234567-1")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestExpensesAndEmployees(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.AddExpense(ctx, &models.Expense{Category: "rent", Amount: 50000}))
	require.NoError(t, svc.AddEmployee(ctx, &models.Employee{Name: "Bilal", Designation: "clerk", Salary: 30000}))

	expenses, err := svc.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.EqualValues(t, 50000, expenses[0].Amount)

	employees, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "clerk", employees[0].Designation)
}

func TestMarkAttendance(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	emp := &models.Employee{Name: "Bilal", Designation: "clerk"}
	require.NoError(t, svc.AddEmployee(ctx, emp))

	att := &models.Attendance{
		EmployeeID: emp.RecordID(),
		Date:       time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
		Status:     models.AttendancePresent,
	}
	require.NoError(t, svc.MarkAttendance(ctx, att))

	list, err := svc.ListAttendance(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, emp.RecordID(), list[0].EmployeeID)
	assert.Equal(t, models.AttendancePresent, list[0].Status)
}

func TestMarkNotificationRead(t *testing.T) {
	ctx := context.Background()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "test.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	svc := NewService(store, slog.Default())

	n := &models.Notification{Title: "backup due", Body: "export a backup"}
	require.NoError(t, store.Create(ctx, models.CollectionNotifications, n))

	require.NoError(t, svc.MarkNotificationRead(ctx, n.RecordID()))

	list, err := svc.ListNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Read)

	err = svc.MarkNotificationRead(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListClients_Empty(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	clients, err := svc.ListClients(ctx)
	require.NoError(t, err)
	assert.Empty(t, clients)
}
