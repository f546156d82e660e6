package main

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/jas/cmds"
	"github.com/reusee/jas/configs"
	"github.com/reusee/jas/jaslang"
	"github.com/reusee/jas/logs"
)

func main() {
	scope := dscope.New(
		new(logs.Module),
		new(configs.Module),
	)

	scope.Call(func(
		loader configs.Loader,
		logger logs.Logger,
	) {
		opts := configs.First[jaslang.Options](loader, "interp")

		cmds.Define("run", cmds.Func(func(path string) error {
			content, err := os.ReadFile(path)
			if err != nil {
				return wrap(err)
			}
			return runSource(logger, opts, path, string(content))
		}).Desc("run a script file"))

		cmds.Define("eval", cmds.Func(func(code string) error {
			return runSource(logger, opts, "eval", code)
		}).Desc("evaluate inline source"))

		cmds.Define("tokens", cmds.Func(func(path string) error {
			content, err := os.ReadFile(path)
			if err != nil {
				return wrap(err)
			}
			tokens, err := jaslang.Tokenize(jaslang.NewSource(path, string(content)))
			if err != nil {
				return err
			}
			for _, token := range tokens {
				pt("%s:%d:%d\t%v\t%q\n", path, token.Pos.Line, token.Pos.Column, token.Kind, token.Lexeme)
			}
			return nil
		}).Desc("dump the token stream of a script file"))

		args := os.Args[1:]

		if len(args) == 0 {
			// no arguments: read a program from stdin
			content, err := io.ReadAll(os.Stdin)
			if err != nil {
				fail(logger, wrap(err))
			}
			if err := runSource(logger, opts, "stdin", string(content)); err != nil {
				fail(logger, err)
			}
			return
		}

		if err := cmds.Execute(args); err != nil {
			fail(logger, err)
		}
	})
}

func runSource(logger logs.Logger, opts jaslang.Options, name string, content string) error {
	logger.Debug("run source", "name", name, "bytes", len(content))
	value, err := jaslang.RunSource(name, content, opts)
	if err != nil {
		return err
	}
	if _, void := value.(jaslang.Void); void {
		return nil
	}
	pt("%s\n", jaslang.FormatValue(value))
	return nil
}

func fail(logger logs.Logger, err error) {
	logger.Error("run failed", "error", err)
	os.Stderr.WriteString(err.Error())
	os.Stderr.WriteString("\n")
	os.Exit(1)
}
