package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"smartcalc"
)

const usage = `Commands:
/vars	print variables
/del	delete variables (space separated)
/clear	clear all variables
/con	convert an infix expression to postfix notation
/help	print this help
/exit	exit

Operators: + - * / ^ with ( ) grouping. Variable names are letters only;
values are arbitrary-precision integers.`

func main() {
	log.SetFlags(0)
	var given [][2]string
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		given = append(given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	store := smartcalc.NewStore()
	engine := smartcalc.NewEngine(store)
	for _, d := range given {
		if err := store.Assign(d[0], d[1]); err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
	}

	in := os.Stdin
	tty := isatty.IsTerminal(os.Stdin.Fd())
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
		tty = false
	}
	repl(engine, store, in, tty)
}

func repl(engine *smartcalc.Engine, store *smartcalc.Store, in io.Reader, tty bool) {
	bad := color.New(color.FgRed)
	if tty {
		fmt.Println("Enter an expression, an assignment, or /help")
	}
	scanner := bufio.NewScanner(in)
	for {
		if tty {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if command(line, store, bad) {
				return
			}
			continue
		}
		out, err := engine.Run(line)
		if err != nil {
			bad.Println(smartcalc.Message(err))
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}

// command dispatches a /meta command. It reports whether the REPL
// should exit.
func command(line string, store *smartcalc.Store, bad *color.Color) bool {
	name, arg, _ := strings.Cut(line[1:], " ")
	switch name {
	case "exit":
		fmt.Println("Bye!")
		return true
	case "help":
		fmt.Println(usage)
	case "vars":
		for _, n := range store.Names() {
			v, err := store.Resolve(n)
			if err != nil {
				continue
			}
			fmt.Printf("%s = %s\n", n, v)
		}
	case "clear":
		store.Clear()
	case "del":
		for _, n := range strings.Fields(arg) {
			store.Delete(n)
		}
	case "con":
		if strings.TrimSpace(arg) == "" {
			break
		}
		p, err := smartcalc.Postfix(arg)
		if err != nil {
			bad.Println(smartcalc.Message(err))
			break
		}
		fmt.Println(p)
	default:
		fmt.Println("Unknown command")
	}
	return false
}
