package cli

import (
	"context"
	"os"

	"github.com/postpilot/postpilot/internal/client/client"
	"github.com/postpilot/postpilot/internal/client/services"
	"github.com/postpilot/postpilot/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, authenticates, and lands the user on the
// screen matching their onboarding state: setup when the branding profile
// has not been completed yet, the dashboard otherwise.
//
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	loginID, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.auth.Login(ctx, loginID, password)
	if err != nil {
		printlnFn(client.ErrorDetail(err, "Login failed"))
		return err
	}
	printlnFn(msg)

	a.routeBySession(ctx)
	return nil
}

// Signup prompts for the account fields and creates a new account. On
// success the user is taken straight to profile setup.
func (a *App) Signup(ctx context.Context) error {
	var req client.SignupRequest
	var err error

	if req.Name, err = getSimpleText(a.reader, "Enter full name", os.Stdout); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if req.CountryCode, err = GetTextDefault(a.reader, "Enter country code", "+1", os.Stdout); err != nil {
		return err
	}
	if req.Mobile, err = getSimpleText(a.reader, "Enter mobile number", os.Stdout); err != nil {
		return err
	}
	if req.LinkedInID, err = getSimpleText(a.reader, "Enter LinkedIn id (optional)", os.Stdout); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	msg, err := a.auth.Signup(ctx, req)
	if err != nil {
		printlnFn(client.ErrorDetail(err, "Signup failed"))
		return err
	}
	printlnFn(msg)

	a.userName = req.Name
	a.navigate(ctx, services.RouteSetup)
	return nil
}

// Logout clears the stored credential and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	a.userName = ""
	printlnFn("Logged out.")
	a.navigate(ctx, services.RouteLogin)
	return nil
}

// WhoAmI shows the resolved identity and the stored credential's claims.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.auth.Me(ctx)
	if err != nil {
		printlnFn(client.ErrorDetail(err, "Not signed in"))
		return err
	}
	printlnFn("Name:", user.Name)
	printlnFn("Email:", user.Email)
	printlnFn("Onboarded:", user.Onboarded)

	if info, err := a.auth.TokenInfo(ctx); err == nil && !info.ExpiresAt.IsZero() {
		printlnFn("Session expires:", info.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
	a.userName = user.Name
	return nil
}

// routeBySession resolves identity and navigates to setup or the dashboard.
// Resolution failure leaves the user where they are; the error has already
// been reported by the failing call.
func (a *App) routeBySession(ctx context.Context) {
	user, err := a.auth.Me(ctx)
	if err != nil {
		a.log.Warn(ctx, "identity resolution failed", "error", err)
		return
	}
	a.userName = user.Name
	if !user.Onboarded {
		printlnFn("Complete your profile setup to start generating content.")
		a.navigate(ctx, services.RouteSetup)
		return
	}
	a.navigate(ctx, services.RouteApp)
}
