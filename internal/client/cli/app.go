package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/tokengate/internal/client/client"
	"github.com/dmitrijs2005/tokengate/internal/client/config"
	pb "github.com/dmitrijs2005/tokengate/internal/proto"
)

// API is the part of client.GRPCClient the CLI uses.
type API interface {
	Login(ctx context.Context, email, password string) (*pb.LoginResponse, error)
	RefreshToken(ctx context.Context) (*pb.LoginResponse, error)
	Logout(ctx context.Context) (*pb.Status, error)
	LoadUser(ctx context.Context) (*pb.UserInfoResponse, error)
	ChangePassword(ctx context.Context, current, next string) (*pb.Status, error)
	ChangeUsername(ctx context.Context, userName string) (*pb.Status, error)
	GetCapabilityAccess(ctx context.Context, domain string) (*pb.CapabilityResponse, error)
	SetCapabilityAccess(ctx context.Context, domain string, vector []bool) (*pb.CapabilityResponse, error)
	Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error)
	ConfirmEmail(ctx context.Context, userID, code string) (*pb.Status, error)
	Ping(ctx context.Context) error
	HasCredential() bool
	Close() error
}

var errUsage = errors.New("usage")

type App struct {
	config   *config.Config
	api      API
	reader   *bufio.Reader
	out      io.Writer
	userName string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewTokengateClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api API, in io.Reader, out io.Writer) *App {
	return &App{config: c, api: api, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	fmt.Fprintln(a.out, "tokengate CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.api.HasCredential()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return "(guest)"
	}
	if a.userName != "" {
		return fmt.Sprintf("(%s)", a.userName)
	}
	return "(signed in)"
}

// call bounds one request by the configured timeout.
func (a *App) call(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.CallTimeout)
}

// report prints the outcome of a call. It returns an error when the call
// failed or the server answered with an invalid status.
func (a *App) report(st *pb.Status, err error) error {
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	if st.GetValid() {
		fmt.Fprintln(a.out, "OK")
		return nil
	}
	fmt.Fprintf(a.out, "Failed (%s):\n", st.GetKind())
	for _, m := range st.GetMessages() {
		fmt.Fprintln(a.out, "  -", m)
	}
	return fmt.Errorf("%s: %s", st.GetKind(), strings.Join(st.GetMessages(), " "))
}

func (a *App) prompt(label string) (string, error) {
	return GetSimpleText(a.reader, label, a.out)
}

func (a *App) Register(ctx context.Context) error {
	userName, err := a.prompt("User name")
	if err != nil {
		return err
	}
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	resp, err := a.api.Register(ctx, &pb.RegisterRequest{
		Username: userName, Email: email, Password: password, ConfirmPassword: confirm,
	})
	if err != nil {
		return a.report(nil, err)
	}
	if err := a.report(resp.GetStatus(), nil); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "User id:", resp.GetUserId())
	if resp.GetCallbackUrl() != "" {
		fmt.Fprintln(a.out, "Confirm your email:", resp.GetCallbackUrl())
	} else {
		a.userName = userName
	}
	return nil
}

func (a *App) Confirm(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: confirm <user id> <code>")
		return errUsage
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	st, err := a.api.ConfirmEmail(ctx, args[0], args[1])
	if err != nil {
		return a.report(nil, err)
	}
	return a.report(st, nil)
}

func (a *App) Login(ctx context.Context) error {
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out, "Password")
	if err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	resp, err := a.api.Login(ctx, email, password)
	if err != nil {
		return a.report(nil, err)
	}
	if err := a.report(resp.GetStatus(), nil); err != nil {
		return err
	}

	if user, err := a.api.LoadUser(ctx); err == nil && user.GetStatus().GetValid() {
		a.userName = user.GetName()
	}
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	ctx, cancel := a.call(ctx)
	defer cancel()

	user, err := a.api.LoadUser(ctx)
	if err != nil {
		return a.report(nil, err)
	}
	if !user.GetStatus().GetValid() {
		return a.report(user.GetStatus(), nil)
	}

	a.userName = user.Name
	fmt.Fprintln(a.out, "Name:  ", user.Name)
	fmt.Fprintln(a.out, "Roles: ", strings.Join(user.Roles, ", "))
	fmt.Fprintln(a.out, "Tokens:", user.Tokens)
	if user.HasEngine {
		fmt.Fprintln(a.out, "Engines:", FormatVector(user.Engines))
	}
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	ctx, cancel := a.call(ctx)
	defer cancel()

	resp, err := a.api.RefreshToken(ctx)
	if err != nil {
		return a.report(nil, err)
	}
	return a.report(resp.GetStatus(), nil)
}

func (a *App) ChangePassword(ctx context.Context) error {
	current, err := GetPassword(a.out, "Current password")
	if err != nil {
		return err
	}
	next, err := GetPassword(a.out, "New password")
	if err != nil {
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	st, err := a.api.ChangePassword(ctx, current, next)
	if err != nil {
		return a.report(nil, err)
	}
	return a.report(st, nil)
}

func (a *App) ChangeUsername(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: rename <new user name>")
		return errUsage
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	st, err := a.api.ChangeUsername(ctx, args[0])
	if err != nil {
		return a.report(nil, err)
	}
	if err := a.report(st, nil); err != nil {
		return err
	}
	a.userName = args[0]
	return nil
}

func (a *App) Capabilities(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: caps <domain>")
		return errUsage
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	resp, err := a.api.GetCapabilityAccess(ctx, args[0])
	if err != nil {
		return a.report(nil, err)
	}
	if !resp.GetStatus().GetValid() {
		return a.report(resp.GetStatus(), nil)
	}
	fmt.Fprintln(a.out, args[0]+":", FormatVector(resp.Vector))
	return nil
}

func (a *App) SetCapabilities(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: setcaps <domain> <bits, e.g. 1010>")
		return errUsage
	}
	vector, err := ParseVector(args[1])
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}

	ctx, cancel := a.call(ctx)
	defer cancel()

	resp, err := a.api.SetCapabilityAccess(ctx, args[0], vector)
	if err != nil {
		return a.report(nil, err)
	}
	reportErr := a.report(resp.GetStatus(), nil)
	if resp.Vector != nil {
		fmt.Fprintln(a.out, args[0]+":", FormatVector(resp.Vector))
	}
	return reportErr
}

func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.call(ctx)
	defer cancel()

	st, err := a.api.Logout(ctx)
	a.userName = ""
	if err != nil {
		return a.report(nil, err)
	}
	return a.report(st, nil)
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.call(ctx)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		return a.report(nil, err)
	}
	fmt.Fprintln(a.out, "Server is online")
	return nil
}
