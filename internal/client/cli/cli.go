// Package cli implements the client commands. Each command is a method
// on App; main dispatches on the first positional argument.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/iudanet/officesync/internal/client/data"
	"github.com/iudanet/officesync/internal/client/mirror"
	"github.com/iudanet/officesync/internal/client/storage"
	"github.com/iudanet/officesync/internal/client/sync"
)

// App bundles the services the commands operate on.
type App struct {
	Store    storage.RecordStore
	Sessions storage.SessionStorage
	Data     data.Service
	Mirror   *mirror.Client
	Sync     *sync.Service
	Queue    *sync.Queue
	Logger   *slog.Logger
	DeviceID string
}

// Run executes one command. Unknown commands print usage and return an
// error so main can exit non-zero.
func (a *App) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return a.RunRegister(ctx)
	case "login":
		return a.RunLogin(ctx)
	case "logout":
		return a.RunLogout(ctx)
	case "status":
		return a.RunStatus(ctx)
	case "sync":
		return a.RunSync(ctx)
	case "resync":
		return a.RunResync(ctx, args)
	case "watch":
		return a.RunWatch(ctx, args)
	case "clients":
		return a.RunClients(ctx, args)
	case "receipts":
		return a.RunReceipts(ctx, args)
	case "expenses":
		return a.RunExpenses(ctx, args)
	case "employees":
		return a.RunEmployees(ctx, args)
	case "attendance":
		return a.RunAttendance(ctx, args)
	case "documents":
		return a.RunDocuments(ctx, args)
	case "export":
		return a.RunExport(ctx, args)
	case "import":
		return a.RunImport(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// RestoreSession loads the persisted session, if any, and installs the
// access token on the mirror client. A missing session is not an error:
// the client stays usable offline.
func (a *App) RestoreSession(ctx context.Context) {
	session, err := a.Sessions.GetSession(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrSessionNotFound) {
			a.Logger.Warn("cli: could not restore session", "error", err)
		}
		return
	}
	a.Mirror.SetToken(session.AccessToken)
}

// PrintUsage prints the command reference.
func PrintUsage() {
	fmt.Println("Usage: officesync [flags] <command> [args]")
	fmt.Println()
	fmt.Println("Account:")
	fmt.Println("  register                    Create an account on the mirror server")
	fmt.Println("  login                       Authenticate and store the session")
	fmt.Println("  logout                      Drop the stored session")
	fmt.Println("  status                      Show connectivity, queue and sync state")
	fmt.Println()
	fmt.Println("Synchronization:")
	fmt.Println("  sync                        Push pending operations to the mirror")
	fmt.Println("  resync --from-remote        Replace local data with the mirror's")
	fmt.Println("  resync --to-remote          Push every local record to the mirror")
	fmt.Println("  watch <collection>          Stream live snapshots of a collection")
	fmt.Println()
	fmt.Println("Records:")
	fmt.Println("  clients     list | add <name> <cnic> [phone] [address]")
	fmt.Println("  receipts    list | add <client-name> <cnic> <amount> [description]")
	fmt.Println("  expenses    list | add <category> <amount> [description]")
	fmt.Println("  employees   list | add <name> <designation> <salary>")
	fmt.Println("  attendance  list | mark <employee-id> <present|absent|leave>")
	fmt.Println("  documents   list | add <title> <file>")
	fmt.Println()
	fmt.Println("Backup:")
	fmt.Println("  export <file>               Write all collections to a backup file")
	fmt.Println("  import <file>               Replace local data with a backup file")
}

// readInput reads one trimmed line from stdin.
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads a password without echo.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(password), nil
}
