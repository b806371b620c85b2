package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"brio/internal/analyzer"
	"brio/internal/config"
	"brio/internal/diag"
	"brio/internal/evaluator"
	"brio/internal/lexer"
	"brio/internal/lsp"
	"brio/internal/parser"
	"brio/internal/repl"
	"brio/internal/token"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "init" {
		runInit(os.Args[2:])
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "check" {
		runCheck(os.Args[2:])
		return
	}

	tokensMode := flag.Bool("tokens", false, "print tokens instead of running")
	astMode := flag.Bool("ast", false, "print the parsed tree instead of running")
	maxSteps := flag.Int("max-steps", 0, "abort a run after this many evaluation steps (0 = unlimited)")
	maxRecursion := flag.Int("max-recursion", 0, "maximum call depth (0 = default)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		repl.Start(os.Stdin, os.Stdout, os.Stderr)
		return
	}

	cmd := args[0]
	cmdArgs := args[1:]
	if cmd != "run" && cmd != "repl" {
		cmd = "run"
		cmdArgs = args
	}

	switch cmd {
	case "repl":
		if *tokensMode || *astMode {
			fmt.Println("repl does not support -tokens or -ast")
			os.Exit(1)
		}
		if len(cmdArgs) != 0 {
			fmt.Println("usage: brio repl")
			os.Exit(1)
		}
		repl.Start(os.Stdin, os.Stdout, os.Stderr)

	case "run":
		if len(cmdArgs) > 1 {
			fmt.Println("usage: brio run [path]")
			os.Exit(1)
		}
		target := "."
		if len(cmdArgs) == 1 {
			target = cmdArgs[0]
		}

		entryPath, manifest, err := resolveRunTarget(target)
		if err != nil {
			fmt.Println("run error:", err)
			os.Exit(1)
		}
		if *maxSteps == 0 {
			*maxSteps = manifest.MaxSteps
		}
		if *maxRecursion == 0 {
			*maxRecursion = manifest.MaxRecursion
		}

		runFile(entryPath, *tokensMode, *astMode, *maxSteps, *maxRecursion)
	}
}

func runFile(path string, tokensMode, astMode bool, maxSteps, maxRecursion int) {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Println("read error:", err)
		os.Exit(1)
	}
	source := string(b)

	if tokensMode {
		l := lexer.New(source)
		for {
			tok := l.NextToken()
			fmt.Printf("%4d:%-3d  %-10s  %q\n", tok.Line, tok.Col, tok.Type, tok.Literal)
			if tok.Type == token.EOF {
				break
			}
		}
		return
	}

	tokens, err := lexer.Scan(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "A lexer error occurred: %s\n", err)
		os.Exit(65)
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		fmt.Fprintf(os.Stderr, "A parser error occurred: %s\n", err)
		os.Exit(65)
	}

	if astMode {
		fmt.Print(program.String())
		return
	}

	if err := analyzer.Analyze(program); err != nil {
		fmt.Fprintf(os.Stderr, "A semantic error occurred: %s\n", err)
		os.Exit(65)
	}

	runner := evaluator.NewRunner(evaluator.Options{
		MaxSteps:     maxSteps,
		MaxRecursion: maxRecursion,
	})
	if _, err := runner.Run(program); err != nil {
		fmt.Fprintf(os.Stderr, "An interpreter error occurred: %s\n", err)
		os.Exit(70)
	}
}

// resolveRunTarget maps a CLI target to a script path. A file runs as-is;
// a directory runs the entry named in its brio.toml, falling back to
// main.brio when no manifest names one.
func resolveRunTarget(target string) (string, config.Manifest, error) {
	var manifest config.Manifest

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return "", manifest, fmt.Errorf("path not found: %s", target)
		}
		return "", manifest, err
	}

	if !info.IsDir() {
		abs, err := filepath.Abs(target)
		if err != nil {
			return "", manifest, err
		}
		manifest, err = config.LoadManifest(filepath.Join(filepath.Dir(abs), config.ManifestName))
		if err != nil {
			return "", manifest, err
		}
		return abs, manifest, nil
	}

	projectRoot, err := filepath.Abs(target)
	if err != nil {
		return "", manifest, err
	}
	manifest, err = config.LoadManifest(filepath.Join(projectRoot, config.ManifestName))
	if err != nil {
		return "", manifest, err
	}

	entry := strings.TrimSpace(manifest.Entry)
	if entry == "" {
		entry = "main.brio"
		if _, err := os.Stat(filepath.Join(projectRoot, entry)); err != nil {
			return "", manifest, fmt.Errorf("%s: missing entry", filepath.Join(projectRoot, config.ManifestName))
		}
	}

	return filepath.Join(projectRoot, entry), manifest, nil
}

func runInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	entry := fs.String("entry", "main.brio", "entry file")
	force := fs.Bool("force", false, "overwrite existing files")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		fmt.Println("usage: brio init [--entry <file>] [--force]")
		os.Exit(1)
	}
	if strings.TrimSpace(*entry) == "" {
		fmt.Println("init error: entry cannot be empty")
		os.Exit(1)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	manifestPath := filepath.Join(cwd, config.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil && !*force {
		fmt.Printf("init error: %s already exists (use --force to overwrite)\n", config.ManifestName)
		os.Exit(1)
	}
	if err := os.WriteFile(manifestPath, []byte(fmt.Sprintf("entry = %q\n", *entry)), 0o644); err != nil {
		fmt.Println("init error:", err)
		os.Exit(1)
	}

	entryPath := filepath.Join(cwd, *entry)
	if _, err := os.Stat(entryPath); os.IsNotExist(err) || *force {
		if err := os.WriteFile(entryPath, []byte(starterProgram()), 0o644); err != nil {
			fmt.Println("init error:", err)
			os.Exit(1)
		}
	}
}

// runCheck reports diagnostics without executing anything: the same set
// the language server publishes, printed one per line.
func runCheck(args []string) {
	if len(args) == 0 {
		fmt.Println("usage: brio check <file|dir> [more...]")
		os.Exit(2)
	}

	files, err := collectScripts(args)
	if err != nil {
		fmt.Println("check error:", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		return
	}
	sort.Strings(files)

	hadErrors := false
	for _, path := range files {
		b, err := os.ReadFile(path)
		if err != nil {
			fmt.Println("check error:", err)
			hadErrors = true
			continue
		}
		for _, d := range lsp.Collect(string(b)) {
			fmt.Println(d.Format(path))
			if d.Severity == diag.SeverityError {
				hadErrors = true
			}
		}
	}

	if hadErrors {
		os.Exit(1)
	}
}

func collectScripts(targets []string) ([]string, error) {
	var files []string
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if strings.HasSuffix(target, ".brio") {
				files = append(files, target)
			}
			continue
		}

		err = filepath.WalkDir(target, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if filepath.Base(path) == ".git" {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(path, ".brio") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func starterProgram() string {
	return "def greet(name) {\n    return \"hello, \" + name;\n}\n\nprint greet(\"brio\");\n"
}
