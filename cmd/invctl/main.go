// invctl is a small command line client for the inventory service. It keeps
// the signed-in token in a file under the user's home directory, so separate
// invocations share one session.
//
// Usage:
//
//	invctl [--server URL] <command> [args]
//
// Commands:
//
//	login <email>            sign in (password read from INVCTL_PASSWORD or prompt)
//	logout                   sign out and discard the stored token
//	whoami                   show the current session
//	products [--page N]      list products
//	product <id>             show one product
//	search [--query Q] [--category C]
//	suppliers [--page N]     list suppliers
//	supplier <id>            show one supplier with its products
//	promote <user-id>        grant Admin to a user (Admin only)
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/spec-kit/inventory-service/pkg/inventorysdk"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var serverURL string
	var page, pageSize int
	var query, category string

	flagSet := pflag.NewFlagSet("invctl", pflag.ContinueOnError)
	flagSet.StringVar(&serverURL, "server", envOr("INVCTL_SERVER", "http://localhost:8080"), "inventory service base URL")
	flagSet.IntVar(&page, "page", 1, "page number for listings")
	flagSet.IntVar(&pageSize, "page-size", 10, "page size for listings")
	flagSet.StringVar(&query, "query", "", "name substring for search")
	flagSet.StringVar(&category, "category", "", "exact category for search")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) == 0 {
		printHelp(flagSet)
		return errors.New("command required")
	}

	store, err := inventorysdk.NewFileTokenStore(tokenPath())
	if err != nil {
		return err
	}
	state := inventorysdk.NewStateProvider(store)
	client := inventorysdk.NewClient(serverURL, store)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch args[0] {
	case "login":
		if len(args) < 2 {
			return errors.New("usage: invctl login <email>")
		}
		return cmdLogin(ctx, client, state, args[1])
	case "logout":
		return cmdLogout(ctx, client, state)
	case "whoami":
		return cmdWhoami(state)
	case "products":
		return cmdProducts(ctx, client, page, pageSize)
	case "product":
		if len(args) < 2 {
			return errors.New("usage: invctl product <id>")
		}
		return cmdProduct(ctx, client, args[1])
	case "search":
		return cmdSearch(ctx, client, query, category)
	case "suppliers":
		return cmdSuppliers(ctx, client, page, pageSize)
	case "supplier":
		if len(args) < 2 {
			return errors.New("usage: invctl supplier <id>")
		}
		return cmdSupplier(ctx, client, args[1])
	case "promote":
		if len(args) < 2 {
			return errors.New("usage: invctl promote <user-id>")
		}
		return cmdPromote(ctx, client, args[1])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func cmdLogin(ctx context.Context, client *inventorysdk.Client, state *inventorysdk.StateProvider, email string) error {
	password := os.Getenv("INVCTL_PASSWORD")
	if password == "" {
		fmt.Fprint(os.Stderr, "password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		password = strings.TrimSpace(line)
	}

	token, err := client.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, inventorysdk.ErrUnauthorized) {
			return errors.New("invalid email or password")
		}
		return err
	}
	if err := state.MarkAuthenticated(token); err != nil {
		return err
	}

	current := state.Current()
	fmt.Printf("signed in as %s (roles: %s)\n", email, strings.Join(current.Roles, ", "))
	return nil
}

func cmdLogout(ctx context.Context, client *inventorysdk.Client, state *inventorysdk.StateProvider) error {
	// Best effort server call; the local token is cleared either way.
	_ = client.Logout(ctx)
	if err := state.MarkLoggedOut(); err != nil {
		return err
	}
	fmt.Println("signed out")
	return nil
}

func cmdWhoami(state *inventorysdk.StateProvider) error {
	current := state.Current()
	if !current.Authenticated {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Printf("subject: %s\nroles:   %s\nexpires: %s\n",
		current.Subject,
		strings.Join(current.Roles, ", "),
		current.ExpiresAt.Local().Format(time.RFC1123))
	return nil
}

func cmdProducts(ctx context.Context, client *inventorysdk.Client, page, pageSize int) error {
	result, err := client.ListProducts(ctx, page, pageSize)
	if err != nil {
		return err
	}
	for _, p := range result.Data {
		printProduct(p)
	}
	fmt.Printf("page %d/%d (%d products total)\n", result.Page, result.TotalPages, result.TotalCount)
	return nil
}

func cmdProduct(ctx context.Context, client *inventorysdk.Client, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", rawID)
	}
	product, err := client.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, inventorysdk.ErrNotFound) {
			return fmt.Errorf("product %d not found", id)
		}
		return err
	}
	printProduct(*product)
	fmt.Printf("  supplier: %s (%s)\n", product.SupplierName, product.SupplierLocation)
	return nil
}

func cmdSearch(ctx context.Context, client *inventorysdk.Client, query, category string) error {
	results, err := client.SearchProducts(ctx, query, category)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("no matching products")
		return nil
	}
	for _, p := range results {
		printProduct(p)
	}
	return nil
}

func cmdSuppliers(ctx context.Context, client *inventorysdk.Client, page, pageSize int) error {
	result, err := client.ListSuppliers(ctx, page, pageSize)
	if err != nil {
		return err
	}
	for _, s := range result.Data {
		fmt.Printf("%4d  %-20s %-18s %s\n", s.ID, s.Name, s.Location, s.Email)
	}
	fmt.Printf("page %d/%d (%d suppliers total)\n", result.Page, result.TotalPages, result.TotalCount)
	return nil
}

func cmdSupplier(ctx context.Context, client *inventorysdk.Client, rawID string) error {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid supplier id %q", rawID)
	}
	detail, err := client.GetSupplier(ctx, id)
	if err != nil {
		if errors.Is(err, inventorysdk.ErrNotFound) {
			return fmt.Errorf("supplier %d not found", id)
		}
		return err
	}
	fmt.Printf("%s (%s) <%s>\n", detail.Name, detail.Location, detail.Email)
	for _, p := range detail.Products {
		fmt.Printf("  %4d  %-20s R%-10.2f stock %d\n", p.ID, p.Name, p.Price, p.Stock)
	}
	return nil
}

func cmdPromote(ctx context.Context, client *inventorysdk.Client, userID string) error {
	user, err := client.Promote(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, inventorysdk.ErrUnauthorized):
			return errors.New("sign in first")
		case errors.Is(err, inventorysdk.ErrForbidden):
			return errors.New("promoting users requires the Admin role")
		case errors.Is(err, inventorysdk.ErrNotFound):
			return fmt.Errorf("user %s not found", userID)
		}
		return err
	}
	fmt.Printf("%s is now: %s\n", user.Email, strings.Join(user.Roles, ", "))
	return nil
}

func printProduct(p inventorysdk.Product) {
	status := "in stock"
	if !p.Available {
		status = "out of stock"
	}
	fmt.Printf("%4d  %-20s R%-10.2f %-16s %s (%d)\n", p.ID, p.Name, p.Price, p.Category, status, p.Stock)
}

func tokenPath() string {
	if custom := os.Getenv("INVCTL_TOKEN_FILE"); custom != "" {
		return custom
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".invctl-token"
	}
	return filepath.Join(home, ".invctl", "token")
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintln(os.Stderr, "invctl - inventory service command line client")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "usage: invctl [flags] <command> [args]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "commands: login, logout, whoami, products, product, search, suppliers, supplier, promote")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "flags:")
	fmt.Fprintln(os.Stderr, flagSet.FlagUsages())
}
