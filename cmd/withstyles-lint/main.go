package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"withstyles-lint/analysis"
	"withstyles-lint/javascript"
	"withstyles-lint/lintrc"

	"github.com/urfave/cli/v2"
)

func prepareString(in string) (out string) {
	lines := strings.Split(in, "\n")
	for idx := range lines {
		lines[idx] = strings.TrimLeft(lines[idx], " \t")
	}
	switch len(lines) {
	case 0:
		return ""
	case 1:
		return "\t" + lines[0]
	default:
		return fmt.Sprintf("\t%s\n\t...", lines[0])
	}
}

func isJSFile(name string) bool {
	return strings.HasSuffix(name, ".js") || strings.HasSuffix(name, ".jsx")
}

func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %+w", arg, err)
		}

		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isJSFile(d.Name()) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %+w", arg, err)
		}
	}
	return files, nil
}

func lint(ctx *cli.Context) error {
	cfg, err := lintrc.Load(ctx.String("rc"))
	if err != nil {
		return fmt.Errorf("failed to load lint config: %+w", err)
	}

	diagnostics := analysis.EnabledDiagnostics(cfg)

	files, err := collectFiles(ctx.Args().Slice())
	if err != nil {
		return err
	}

	eng := analysis.New()

	found := false
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("could not open file %s: %s", file, err)
		}

		err = eng.SetFileContext(file, data)
		if err != nil {
			log.Fatalf("could not analyse file %s: %s", file, err)
		}

		fctx, err := eng.GetFileContext(file)
		if err != nil {
			panic("err should never be non-nil: " + err.Error())
		}

		for _, diag := range diagnostics {
			diags := diag.Analyze(context.Background(), file, fctx, eng)
			for _, out := range diags {
				found = true
				fmt.Printf(
					"%d:%d - %d:%d\t%s\t%s (%s)\n",
					out.Range.Start.Line, out.Range.Start.Character,
					out.Range.End.Line, out.Range.End.Character,
					file,
					out.Message, out.Source,
				)
				if ctx.Bool("context") && out.ContextNode != nil {
					fmt.Printf("\n%s\n", prepareString(javascript.Content(out.ContextNode, fctx.Body)))
				}
			}
		}

		eng.DeleteFileContext(file)
	}

	if found {
		return cli.Exit("", 1)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:  "withstyles-lint",
		Usage: "lint react-with-styles usage in JavaScript sources",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "rc",
				Usage: "path to the lint config",
				Value: lintrc.DefaultFilename,
			},
			&cli.BoolFlag{
				Name:  "context",
				Usage: "print the offending source below each finding",
			},
		},
		Action: lint,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
