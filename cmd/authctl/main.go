// authctl is a small operator CLI speaking the gRPC delegate protocol
// directly: register a user, log in (prints the token pair), or ping the
// service.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/mkuznetsov/ssocore/internal/gateway/client"
	"github.com/mkuznetsov/ssocore/internal/logging"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	addr := flag.String("g", "localhost:50051", "auth service gRPC address")
	appID := flag.String("i", "authctl", "application id used as token audience")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	c := client.NewGRPCClient(*addr, logger)
	if err := c.Connect(); err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	var err error
	switch flag.Arg(0) {
	case "ping":
		err = runPing(ctx, c)
	case "register":
		err = runRegister(ctx, c, reader)
	case "login":
		err = runLogin(ctx, c, reader, *appID)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: authctl [-g addr] [-i app_id] <ping|register|login>")
}

func runPing(ctx context.Context, c *client.GRPCClient) error {
	if err := c.Ping(ctx); err != nil {
		return err
	}
	fmt.Println("OK")
	return nil
}

func runRegister(ctx context.Context, c *client.GRPCClient, reader *bufio.Reader) error {
	login, err := getSimpleText(reader, "Login")
	if err != nil {
		return err
	}
	email, err := getSimpleText(reader, "Email")
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(reader, "Full name")
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stderr)
	if err != nil {
		return err
	}

	userID, err := c.Register(ctx, login, email, fullName, string(password))
	if err != nil {
		return err
	}

	fmt.Printf("registered user id=%d\n", userID)
	return nil
}

func runLogin(ctx context.Context, c *client.GRPCClient, reader *bufio.Reader, appID string) error {
	login, err := getSimpleText(reader, "Login")
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stderr)
	if err != nil {
		return err
	}

	pair, err := c.Login(ctx, login, string(password), appID)
	if err != nil {
		return err
	}

	fmt.Printf("access_token=%s\n", pair.AccessToken)
	fmt.Printf("refresh_token=%s\n", pair.RefreshToken)
	return nil
}

// getSimpleText prints a prompt and reads a single trimmed line.
func getSimpleText(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt+"\n> ")
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// getPassword reads a password from the terminal without echo.
func getPassword(w io.Writer) ([]byte, error) {
	fmt.Fprint(w, "Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}
