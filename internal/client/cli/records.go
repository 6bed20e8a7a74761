package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/officesync/internal/models"
)

// RunClients handles `clients list` and `clients add`.
func (a *App) RunClients(ctx context.Context, args []string) error {
	sub := subcommand(args)
	switch sub {
	case "list":
		clients, err := a.Data.ListClients(ctx)
		if err != nil {
			return err
		}
		if len(clients) == 0 {
			fmt.Println("No clients yet.")
			return nil
		}
		for _, c := range clients {
			fmt.Printf("%s  %-24s cnic=%s", c.ID, c.Name, c.CNIC)
			if c.Phone != "" {
				fmt.Printf("  phone=%s", c.Phone)
			}
			fmt.Println()
		}
		return nil
	case "add":
		rest := args[1:]
		if len(rest) < 2 {
			return fmt.Errorf("usage: clients add <name> <cnic> [phone] [address]")
		}
		client := &models.Client{Name: rest[0], CNIC: rest[1]}
		if len(rest) > 2 {
			client.Phone = rest[2]
		}
		if len(rest) > 3 {
			client.Address = strings.Join(rest[3:], " ")
		}
		if err := a.Data.AddClient(ctx, client); err != nil {
			return err
		}
		fmt.Printf("✓ Client added: %s\n", client.ID)
		return nil
	default:
		return fmt.Errorf("usage: clients <list|add>")
	}
}

// RunReceipts handles `receipts list` and `receipts add`.
func (a *App) RunReceipts(ctx context.Context, args []string) error {
	switch subcommand(args) {
	case "list":
		receipts, err := a.Data.ListReceipts(ctx)
		if err != nil {
			return err
		}
		if len(receipts) == 0 {
			fmt.Println("No receipts yet.")
			return nil
		}
		for _, r := range receipts {
			fmt.Printf("%s  client=%s  amount=%d  issued=%s  %s\n",
				r.ID, r.ClientID, r.Amount, r.IssuedAt.Format("2006-01-02"), r.Description)
		}
		return nil
	case "add":
		rest := args[1:]
		if len(rest) < 3 {
			return fmt.Errorf("usage: receipts add <client-name> <cnic> <amount> [description]")
		}
		amount, err := strconv.ParseInt(rest[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", rest[2], err)
		}
		receipt := &models.Receipt{
			Amount:   amount,
			IssuedAt: time.Now().UTC(),
		}
		if len(rest) > 3 {
			receipt.Description = strings.Join(rest[3:], " ")
		}
		if err := a.Data.AddReceipt(ctx, rest[0], rest[1], receipt); err != nil {
			return err
		}
		fmt.Printf("✓ Receipt issued: %s\n", receipt.ID)
		return nil
	default:
		return fmt.Errorf("usage: receipts <list|add>")
	}
}

// RunExpenses handles `expenses list` and `expenses add`.
func (a *App) RunExpenses(ctx context.Context, args []string) error {
	switch subcommand(args) {
	case "list":
		expenses, err := a.Data.ListExpenses(ctx)
		if err != nil {
			return err
		}
		if len(expenses) == 0 {
			fmt.Println("No expenses yet.")
			return nil
		}
		for _, e := range expenses {
			fmt.Printf("%s  %-16s amount=%d  %s\n", e.ID, e.Category, e.Amount, e.Description)
		}
		return nil
	case "add":
		rest := args[1:]
		if len(rest) < 2 {
			return fmt.Errorf("usage: expenses add <category> <amount> [description]")
		}
		amount, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", rest[1], err)
		}
		expense := &models.Expense{
			Category: rest[0],
			Amount:   amount,
			SpentAt:  time.Now().UTC(),
		}
		if len(rest) > 2 {
			expense.Description = strings.Join(rest[2:], " ")
		}
		if err := a.Data.AddExpense(ctx, expense); err != nil {
			return err
		}
		fmt.Printf("✓ Expense added: %s\n", expense.ID)
		return nil
	default:
		return fmt.Errorf("usage: expenses <list|add>")
	}
}

// RunEmployees handles `employees list` and `employees add`.
func (a *App) RunEmployees(ctx context.Context, args []string) error {
	switch subcommand(args) {
	case "list":
		employees, err := a.Data.ListEmployees(ctx)
		if err != nil {
			return err
		}
		if len(employees) == 0 {
			fmt.Println("No employees yet.")
			return nil
		}
		for _, e := range employees {
			fmt.Printf("%s  %-24s %s  salary=%d\n", e.ID, e.Name, e.Designation, e.Salary)
		}
		return nil
	case "add":
		rest := args[1:]
		if len(rest) < 3 {
			return fmt.Errorf("usage: employees add <name> <designation> <salary>")
		}
		salary, err := strconv.ParseInt(rest[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid salary %q: %w", rest[2], err)
		}
		employee := &models.Employee{
			Name:        rest[0],
			Designation: rest[1],
			Salary:      salary,
			JoinedAt:    time.Now().UTC(),
		}
		if err := a.Data.AddEmployee(ctx, employee); err != nil {
			return err
		}
		fmt.Printf("✓ Employee added: %s\n", employee.ID)
		return nil
	default:
		return fmt.Errorf("usage: employees <list|add>")
	}
}

// RunAttendance handles `attendance list` and `attendance mark`.
func (a *App) RunAttendance(ctx context.Context, args []string) error {
	switch subcommand(args) {
	case "list":
		entries, err := a.Data.ListAttendance(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No attendance records yet.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  employee=%s  %s  %s\n",
				e.ID, e.EmployeeID, e.Date.Format("2006-01-02"), e.Status)
		}
		return nil
	case "mark":
		rest := args[1:]
		if len(rest) < 2 {
			return fmt.Errorf("usage: attendance mark <employee-id> <present|absent|leave>")
		}
		status := rest[1]
		switch status {
		case models.AttendancePresent, models.AttendanceAbsent, models.AttendanceLeave:
		default:
			return fmt.Errorf("invalid status %q", status)
		}
		att := &models.Attendance{
			EmployeeID: rest[0],
			Date:       time.Now().UTC().Truncate(24 * time.Hour),
			Status:     status,
		}
		if err := a.Data.MarkAttendance(ctx, att); err != nil {
			return err
		}
		fmt.Printf("✓ Attendance marked: %s\n", att.ID)
		return nil
	default:
		return fmt.Errorf("usage: attendance <list|mark>")
	}
}

// RunDocuments handles `documents list` and `documents add`.
func (a *App) RunDocuments(ctx context.Context, args []string) error {
	switch subcommand(args) {
	case "list":
		docs, err := a.Data.ListDocuments(ctx)
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			fmt.Println("No documents yet.")
			return nil
		}
		for _, d := range docs {
			fmt.Printf("%s  %-32s %s  %d bytes\n", d.ID, d.Title, d.MimeType, len(d.Content))
		}
		return nil
	case "add":
		rest := args[1:]
		if len(rest) < 2 {
			return fmt.Errorf("usage: documents add <title> <file>")
		}
		content, err := os.ReadFile(rest[1])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", rest[1], err)
		}
		doc := &models.Document{
			Title:    rest[0],
			MimeType: detectMimeType(rest[1], content),
			Content:  content,
		}
		if err := a.Data.AddDocument(ctx, doc); err != nil {
			return err
		}
		fmt.Printf("✓ Document stored: %s\n", doc.ID)
		return nil
	default:
		return fmt.Errorf("usage: documents <list|add>")
	}
}

func subcommand(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func detectMimeType(path string, content []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain"
	default:
		return http.DetectContentType(content)
	}
}
