package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atinyakov/GopherCards/internal/client/study"
	"github.com/atinyakov/GopherCards/internal/export"
)

var (
	version   string
	buildDate string
)

// repl runs the interactive shell loop, accepting commands to generate
// and study flashcards.
func repl(session *study.Session) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("gophercards> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, generate <count> <topic>, show, next, prev, shuffle, reveal, hide, export <json|txt>, exit")
		case "generate":
			if len(args) < 3 {
				fmt.Println("Usage: generate <count> <topic>")
				continue
			}
			count, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Println("Count must be a number")
				continue
			}
			topic := strings.Join(args[2:], " ")
			fmt.Println("Generating flashcards...")
			if err := session.Generate(topic, count); err != nil {
				fmt.Println("Error generating flashcards:", err)
				continue
			}
			if session.Len() == 0 {
				fmt.Println("The generator returned no flashcards. Try rephrasing the topic.")
				continue
			}
			fmt.Printf("Generated %d flashcards on: %s\n", session.Len(), session.Topic())
			fmt.Println(session.CardView())
		case "show":
			fmt.Println(session.CardView())
		case "next":
			session.Next()
			fmt.Println(session.CardView())
		case "prev":
			session.Previous()
			fmt.Println(session.CardView())
		case "shuffle":
			session.Shuffle()
			fmt.Println(session.CardView())
		case "reveal":
			session.Reveal()
			fmt.Println(session.CardView())
		case "hide":
			session.Hide()
			fmt.Println(session.CardView())
		case "export":
			if len(args) < 2 {
				fmt.Println("Usage: export <json|txt>")
				continue
			}
			if session.Len() == 0 {
				fmt.Println("Nothing to export; generate a deck first")
				continue
			}
			format, err := export.ParseFormat(args[1])
			if err != nil {
				fmt.Println("Unknown format. Use 'json' or 'txt'")
				continue
			}
			name, err := session.SaveExport(format)
			if err != nil {
				fmt.Println("Export failed:", err)
				continue
			}
			fmt.Println("Saved", name)
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// main parses command-line flags and starts the interactive shell.
func main() {
	var (
		baseURL string
		showVer bool
	)

	flag.StringVar(&baseURL, "url", "http://localhost:8080", "server base URL")
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	flag.Parse()

	if showVer {
		fmt.Printf("GopherCards Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := study.NewSession(&http.Client{}, baseURL, rng)

	fmt.Println("GopherCards interactive shell. Type 'help' for commands.")
	repl(session)
}
