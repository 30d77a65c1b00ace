package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xyz-asif/todoservice/internal/client"
	"github.com/xyz-asif/todoservice/internal/tui"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "todo service base URL")
	user := flag.String("user", os.Getenv("USER"), "owner of the todo list")
	persistent := flag.Bool("jpa", false, "use the persistent store (/jpa) instead of the in-memory one")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "todoctl: -user is required")
		os.Exit(2)
	}

	ns := client.InMemory
	if *persistent {
		ns = client.Persistent
	}

	if err := tui.Run(client.New(*baseURL, *user, ns), *user); err != nil {
		fmt.Fprintln(os.Stderr, "todoctl:", err)
		os.Exit(1)
	}
}
