package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/iudanet/officesync/internal/client/storage"
	"github.com/iudanet/officesync/internal/crypto"
	"github.com/iudanet/officesync/pkg/api"
)

// RunRegister creates an account on the mirror server. The password
// never leaves the machine: the server receives the hash of the derived
// auth key and the public salt.
func (a *App) RunRegister(ctx context.Context) error {
	fmt.Println("=== Registration ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return err
	}
	authKey, err := crypto.DeriveAuthKey(password, username, salt)
	if err != nil {
		return err
	}
	authKeyHash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return err
	}

	resp, err := a.Mirror.Register(ctx, api.RegisterRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
		PublicSalt:  base64.StdEncoding.EncodeToString(salt),
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("✓ Registration successful!")
	fmt.Printf("User ID: %s\n", resp.UserID)
	fmt.Println()
	fmt.Println("Run 'officesync login' to start syncing.")
	return nil
}

// RunLogin authenticates against the mirror and persists the session.
func (a *App) RunLogin(ctx context.Context) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	username, err := readInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	saltResp, err := a.Mirror.GetSalt(ctx, username)
	if err != nil {
		return err
	}
	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(password, username, saltResp.PublicSalt)
	if err != nil {
		return err
	}
	authKeyHash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return err
	}

	tokens, err := a.Mirror.Login(ctx, api.LoginRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
	})
	if err != nil {
		return err
	}

	session := &storage.Session{
		Username:     username,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresAt:    time.Now().UTC().Add(time.Duration(tokens.ExpiresIn) * time.Second),
	}
	if err := a.Sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	a.Mirror.SetToken(tokens.AccessToken)
	a.Sync.SetOnline(true)

	fmt.Println()
	fmt.Println("✓ Login successful!")
	return nil
}

// RunLogout drops the stored session. Local data and the pending queue
// are untouched.
func (a *App) RunLogout(ctx context.Context) error {
	if err := a.Sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	a.Mirror.SetToken("")
	a.Sync.SetOnline(false)
	fmt.Println("✓ Logged out. Local data is kept and writes will queue.")
	return nil
}

// RunStatus shows authentication, connectivity and queue state.
func (a *App) RunStatus(ctx context.Context) error {
	fmt.Println("=== Status ===")
	fmt.Println()

	session, err := a.Sessions.GetSession(ctx)
	switch {
	case err == nil:
		fmt.Printf("Account: %s\n", session.Username)
		fmt.Printf("Token expires: %s\n", session.ExpiresAt.Format(time.RFC3339))
	default:
		fmt.Println("Account: not logged in")
	}

	st := a.Sync.Status(ctx)
	fmt.Printf("Device: %s\n", a.DeviceID)
	if st.Online {
		fmt.Printf("Connectivity: online (%s)\n", st.State)
	} else {
		fmt.Println("Connectivity: offline")
	}
	if st.AuthFailed {
		fmt.Println("⚠️  The mirror rejected our credentials. Run 'officesync login'.")
	}
	if !st.LastSync.IsZero() {
		fmt.Printf("Last sync: %s\n", st.LastSync.Format(time.RFC3339))
	}
	if st.QueueLength > 0 {
		fmt.Printf("⚠️  Pending sync: %d operation(s) queued\n", st.QueueLength)
	} else {
		fmt.Println("✓ All local changes synchronized")
	}
	return nil
}
