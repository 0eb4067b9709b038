package cliutil

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"os/user"
	"strings"

	"github.com/Justype/subprep/internal/utils"
)

// CommandError represents a failed kinit/klist invocation
type CommandError struct {
	Op      string // Operation being performed (e.g., "login from keytab")
	Cmd     string // Full command that was executed
	Output  string // Command output (stdout/stderr)
	BaseErr error  // Underlying error
}

func (e *CommandError) Error() string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("%s failed.\n", e.Op))
	msg.WriteString(fmt.Sprintf("\t%s: %s\n", utils.StyleHint("Command"), utils.StyleCommand(e.Cmd)))
	if out := strings.TrimSpace(e.Output); out != "" {
		msg.WriteString(fmt.Sprintf("\t%s: %s\n", utils.StyleHint("Output"), utils.StyleError(out)))
	}
	msg.WriteString(fmt.Sprintf("\t%s: %v", utils.StyleHint("Error"), e.BaseErr))
	return msg.String()
}

func (e *CommandError) Unwrap() error {
	return e.BaseErr
}

// KerberosAuthenticator delegates to the MIT Kerberos command-line tools.
type KerberosAuthenticator struct {
	Enabled  bool
	KinitBin string
	KlistBin string
}

// NewKerberosAuthenticator creates an authenticator using the given binaries.
// Empty binary names fall back to kinit and klist from PATH.
func NewKerberosAuthenticator(enabled bool, kinitBin, klistBin string) *KerberosAuthenticator {
	if kinitBin == "" {
		kinitBin = "kinit"
	}
	if klistBin == "" {
		klistBin = "klist"
	}
	return &KerberosAuthenticator{Enabled: enabled, KinitBin: kinitBin, KlistBin: klistBin}
}

func (k *KerberosAuthenticator) SecurityEnabled() bool {
	return k.Enabled
}

// CurrentUser reports the default principal of the ticket cache.
// Without a valid ticket the OS user is returned with AuthSimple.
func (k *KerberosAuthenticator) CurrentUser(ctx context.Context) (*User, error) {
	osName := ""
	if u, err := user.Current(); err == nil {
		osName = u.Username
	}

	// klist -s exits non-zero when there is no valid ticket
	if _, err := k.run(ctx, "check ticket cache", k.KlistBin, "-s"); err != nil {
		utils.PrintDebug("No valid Kerberos ticket: %v", err)
		return &User{Name: osName, Method: AuthSimple}, nil
	}

	out, err := k.run(ctx, "list ticket cache", k.KlistBin)
	if err != nil {
		return nil, err
	}
	name := parseDefaultPrincipal(out)
	if name == "" {
		name = osName
	}
	return &User{Name: name, Method: AuthKerberos}, nil
}

// LoginFromKeytab runs kinit -kt keytab principal.
func (k *KerberosAuthenticator) LoginFromKeytab(ctx context.Context, principal, keytab string) error {
	_, err := k.run(ctx, "login from keytab", k.KinitBin, "-kt", keytab, principal)
	return err
}

func (k *KerberosAuthenticator) run(ctx context.Context, op, bin string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	utils.PrintDebug("Running: %s %s", bin, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return out.String(), &CommandError{
			Op:      op,
			Cmd:     strings.TrimSpace(bin + " " + strings.Join(args, " ")),
			Output:  out.String(),
			BaseErr: err,
		}
	}
	return out.String(), nil
}

// parseDefaultPrincipal extracts the principal from klist output.
func parseDefaultPrincipal(output string) string {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "Default principal:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}
