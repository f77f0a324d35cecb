package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abingham/cheek/audacity"
)

const (
	shellPrompt     = "cheek> "
	historyFileName = ".cheek_history"
	historySize     = 500
)

// shellCmd starts an interactive session. Each input line is a raw
// scripting line sent over a single connection; replies print inline.
func (a *App) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive scripting shell",
		Long: `Starts an interactive shell. Each line is sent to Audacity as a raw
scripting command, e.g.:

  cheek> GetInfo: Type="Tracks"
  cheek> Play:

Tab completes command names. Type "exit" or press Ctrl-D to leave.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			client, err := a.dial()
			if err != nil {
				return err
			}
			defer client.Close()
			return a.runShell(c, client)
		},
	}
}

// lineReader abstracts interactive readline and the piped-input fallback.
type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

func (a *App) runShell(c *cobra.Command, client *audacity.Client) error {
	r, err := newLineReader(c.OutOrStdout())
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		resp, err := client.DoRaw(c.Context(), line)
		if err != nil {
			fmt.Fprintln(c.OutOrStdout(), a.st.fail.Render("error:"), err)
			if errors.Is(err, audacity.ErrNotConnected) {
				return err
			}
			continue
		}
		if resp.Text != "" {
			fmt.Fprintln(c.OutOrStdout(), resp.Text)
		}
		if resp.IsOK() {
			fmt.Fprintln(c.OutOrStdout(), a.st.ok.Render(resp.Status))
		} else {
			fmt.Fprintln(c.OutOrStdout(), a.st.fail.Render(resp.Status))
		}
	}
}

// newLineReader picks readline when stdin is a terminal, and a plain
// scanner otherwise (piped input, scripts).
func newLineReader(out io.Writer) (lineReader, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return &scannerReader{s: bufio.NewScanner(os.Stdin)}, nil
	}

	home, _ := os.UserHomeDir()
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:       shellPrompt,
		HistoryFile:  filepath.Join(home, historyFileName),
		HistoryLimit: historySize,
		AutoComplete: scriptCompleter(),
	})
	if err != nil {
		// Degrade to plain input rather than refusing to start.
		fmt.Fprintf(out, "readline unavailable (%v), using basic input\n", err)
		return &scannerReader{s: bufio.NewScanner(os.Stdin)}, nil
	}
	return &readlineReader{rl: rl}, nil
}

// scriptCompleter completes the scripting names of the catalog.
func scriptCompleter() readline.AutoCompleter {
	entries := audacity.All()
	words := make([]string, 0, len(entries)+2)
	for _, e := range entries {
		words = append(words, e.Script+":")
	}
	words = append(words, "exit", "quit")
	return &prefixCompleter{words: words}
}

// prefixCompleter completes the first word of the line against a fixed
// word list.
type prefixCompleter struct {
	words []string
}

// Do implements readline.AutoCompleter. Completion only applies to the
// command name at the start of the line.
func (p *prefixCompleter) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	if strings.ContainsAny(prefix, " :") {
		return nil, 0
	}
	var out [][]rune
	for _, w := range p.words {
		if strings.HasPrefix(w, prefix) {
			out = append(out, []rune(w[len(prefix):]))
		}
	}
	return out, len(prefix)
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		// Ctrl-C clears the line, like a shell.
		return "", nil
	}
	return line, err
}

func (r *readlineReader) Close() error { return r.rl.Close() }

type scannerReader struct {
	s *bufio.Scanner
}

func (r *scannerReader) ReadLine() (string, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.s.Text(), nil
}

func (r *scannerReader) Close() error { return nil }
