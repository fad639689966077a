package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"sqlplayground/internal/engine"
	"sqlplayground/internal/fixture"
	"sqlplayground/internal/playground"
)

func main() {
	query := flag.String("e", "", "run one statement and exit")
	asJSON := flag.Bool("json", false, "print results as JSON")
	explain := flag.Bool("explain", false, "explain each successful statement")
	historySize := flag.Int("history", playground.DefaultHistorySize, "number of statements kept in history")
	flag.Parse()

	store, err := fixture.NewStore()
	if err != nil {
		log.Fatalf("load fixture: %v", err)
	}

	sess := playground.NewSession(engine.New(store), *historySize)
	sess.Explain = *explain

	r := &repl{sess: sess, out: os.Stdout, json: *asJSON}

	if *query != "" {
		if !r.run(*query) {
			os.Exit(1)
		}
		return
	}

	fmt.Println("SQL playground. Tables: employees, departments, projects. Type .help for commands.")
	r.loop(os.Stdin)
}

type repl struct {
	sess *playground.Session
	out  io.Writer
	json bool
}

func (r *repl) loop(in io.Reader) {
	sc := bufio.NewScanner(in)
	fmt.Fprint(r.out, "sql> ")
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, ".") {
			if !r.command(line) {
				return
			}
		} else {
			r.run(line)
		}
		fmt.Fprint(r.out, "sql> ")
	}
	if err := sc.Err(); err != nil {
		log.Printf("read input: %v", err)
	}
	fmt.Fprintln(r.out)
}

// run executes one statement and reports whether it succeeded.
func (r *repl) run(query string) bool {
	out, ok := r.sess.Run(query)
	if !ok {
		return true
	}

	var err error
	if r.json {
		err = playground.WriteOutcomeJSON(r.out, out)
	} else {
		err = playground.WriteOutcome(r.out, out)
	}
	if err != nil {
		log.Printf("write result: %v", err)
	}
	return out.Result.Success()
}

// command handles a dot-command. It returns false to quit.
func (r *repl) command(line string) bool {
	fields := strings.Fields(line)
	args := fields[1:]

	switch fields[0] {
	case ".quit", ".exit":
		return false
	case ".help":
		fmt.Fprintln(r.out, `.tables              list tables
.schema [table]      show columns of one or all tables
.examples            list example statements
.run N               run example N
.history             show recent statements
.explain on|off      explain successful statements
.quit                leave`)
	case ".tables":
		names, err := r.sess.Engine().ListTables()
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			break
		}
		fmt.Fprintln(r.out, strings.Join(names, "\n"))
	case ".schema":
		r.schema(args)
	case ".examples":
		for i, q := range playground.Examples {
			fmt.Fprintf(r.out, "%d. %s\n", i+1, q)
		}
	case ".run":
		n, err := strconv.Atoi(strings.Join(args, ""))
		if err != nil || n < 1 || n > len(playground.Examples) {
			fmt.Fprintf(r.out, "Error: .run takes an example number from 1 to %d\n", len(playground.Examples))
			break
		}
		q := playground.Examples[n-1]
		fmt.Fprintln(r.out, q)
		r.run(q)
	case ".history":
		for i, q := range r.sess.History() {
			fmt.Fprintf(r.out, "%d. %s\n", i+1, q)
		}
	case ".explain":
		switch strings.Join(args, "") {
		case "on":
			r.sess.Explain = true
		case "off":
			r.sess.Explain = false
		default:
			fmt.Fprintln(r.out, "Error: .explain takes on or off")
		}
	default:
		fmt.Fprintf(r.out, "Error: unknown command %s\n", fields[0])
	}
	return true
}

func (r *repl) schema(args []string) {
	if len(args) == 0 {
		schemas, err := r.sess.Engine().GetSchemas()
		if err == nil {
			err = playground.WriteSchemas(r.out, schemas)
		}
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
		return
	}

	for _, name := range args {
		ts, err := r.sess.Engine().GetSchema(name)
		if err == nil {
			err = playground.WriteSchema(r.out, ts)
		}
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
		}
	}
}
