package cliutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/Justype/subprep/internal/utils"
)

// Flag names for the secure-login parameters.
const (
	KeytabFlag    = "keytab"
	PrincipalFlag = "principal"
)

// Login errors
var (
	// ErrMissingPrincipal indicates a keytab was given without a principal
	ErrMissingPrincipal = errors.New("the parameter of " + PrincipalFlag + " is missing")

	// ErrMissingKeytab indicates a principal was given without a keytab
	ErrMissingKeytab = errors.New("the parameter of " + KeytabFlag + " is missing")

	// ErrNotAuthenticated indicates security is on but the user holds no credentials
	ErrNotAuthenticated = errors.New("failed to authenticate in secure environment")

	// ErrKeytabNotFound indicates the keytab file does not exist locally
	ErrKeytabNotFound = errors.New("no keytab localized")
)

// AuthMethod is how the current user was authenticated.
type AuthMethod string

const (
	AuthSimple   AuthMethod = "SIMPLE"
	AuthKerberos AuthMethod = "KERBEROS"
)

// User is the identity jobs would be submitted as.
type User struct {
	Name   string
	Method AuthMethod
}

// Authenticator is the secure-login collaborator.
type Authenticator interface {
	// SecurityEnabled reports whether the cluster requires authentication.
	SecurityEnabled() bool

	// CurrentUser returns the current identity; nil means unknown.
	CurrentUser(ctx context.Context) (*User, error)

	// LoginFromKeytab obtains credentials for principal from keytab.
	LoginFromKeytab(ctx context.Context, principal, keytab string) error
}

// LoginIfSecure makes sure the submitting user is authenticated when the
// cluster runs in secure mode. keytab and principal must be given together;
// when both are empty the user must already hold credentials.
// Errors are returned unprinted; the caller reports them.
func LoginIfSecure(ctx context.Context, auth Authenticator, keytab, principal string) error {
	if !auth.SecurityEnabled() {
		return nil
	}

	if keytab == "" || principal == "" {
		if keytab != "" {
			return ErrMissingPrincipal
		}
		if principal != "" {
			return ErrMissingKeytab
		}

		hint := fmt.Sprintf("Please run kinit command in advance or use --%s/--%s parameters",
			KeytabFlag, PrincipalFlag)
		user, err := auth.CurrentUser(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w. %s", ErrNotAuthenticated, err, hint)
		}
		if user == nil || user.Method == AuthSimple {
			return fmt.Errorf("%w. %s", ErrNotAuthenticated, hint)
		}
		utils.PrintMessage("Job is submitted by user: %s", utils.StyleName(user.Name))
		return nil
	}

	if !utils.FileExists(keytab) {
		return fmt.Errorf("%w at %s", ErrKeytabNotFound, keytab)
	}

	utils.PrintDebug("Logging in as %s using keytab %s", utils.StyleName(principal), utils.StylePath(keytab))
	return auth.LoginFromKeytab(ctx, principal, keytab)
}
