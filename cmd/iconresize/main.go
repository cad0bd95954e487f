package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/iconresize"
	"github.com/srlehn/iconresize/icon"
	"github.com/srlehn/iconresize/internal/consts"
	"github.com/srlehn/iconresize/internal/errors"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

type cli struct {
	debugFlag   bool
	silentFlag  bool
	logFileFlag string
	resizerFlag string
	dirFlag     string

	stdout   io.Writer
	stderr   io.Writer
	exitCode int
}

func execute(args []string, stdout, stderr io.Writer) int {
	c := &cli{stdout: stdout, stderr: stderr}
	rootCmd := newRootCmd(c)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		// usage errors, the commands themselves report through run()
		if !c.silentFlag {
			fmt.Fprintln(stderr, `Error: `+err.Error())
		}
		return 1
	}
	return c.exitCode
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   consts.LibraryName,
		Short: `create browser extension icons from a source image`,
		Long: `Create browser extension icons from a source image.

The first existing file of ` + candidatesStr() + `
in the working directory is resized to ` + sizesStr() + ` pixels
and saved as icon<size>.png, replacing existing files.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			c.run(c.generate)
		},
	}
	rootCmd.SetOut(c.stdout)
	rootCmd.SetErr(c.stderr)
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&c.debugFlag, `debug`, `d`, false, `debug errors`)
	pf.BoolVarP(&c.silentFlag, `silent`, `s`, false, `silence errors`)
	pf.StringVarP(&c.logFileFlag, `log-file`, `l`, ``, `log file`)
	pf.StringVarP(&c.resizerFlag, `resizer`, `r`, ``, "resizer `name`, see the resizers command")
	pf.StringVarP(&c.dirFlag, `dir`, `C`, `.`, "`dir`ectory holding the source image and icons")
	rootCmd.AddCommand(newCheckCmd(c), newResizersCmd(c))
	return rootCmd
}

func (c *cli) run(fn func() error) {
	var err error
	defer func() {
		// catch panics to report them like errors
		if r := recover(); r != nil {
			c.exitCode = 1
			if !c.silentFlag {
				fmt.Fprintf(c.stderr, "Error: %v\n", r)
				if c.debugFlag {
					c.stderr.Write(debug.Stack())
				}
			}
		}
	}()
	if fn == nil {
		err = errors.NilParam()
	} else {
		err = fn()
	}
	if err == nil {
		return
	}
	c.exitCode = 1
	if c.silentFlag || errors.Is(err, consts.ErrSourceNotFound) {
		// the remediation hint is already printed
		return
	}
	if stack, ok := errors.Stack(err); c.debugFlag && ok {
		fmt.Fprintln(c.stderr, `Error: `+stack)
	} else {
		fmt.Fprintln(c.stderr, `Error: `+err.Error())
	}
}

// generator returns a generator configured by the flags. Call done when finished.
func (c *cli) generator() (g *icon.Generator, done func() error, err error) {
	opts := []icon.Option{
		icon.SetDir(c.dirFlag),
		icon.SetOutput(c.stdout),
	}
	if len(c.resizerFlag) > 0 {
		opts = append(opts, icon.SetResizerName(c.resizerFlag))
	}
	done = func() error { return nil }
	if len(c.logFileFlag) > 0 {
		f, err := os.OpenFile(c.logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.New(err)
		}
		lvl := slog.LevelInfo
		if c.debugFlag {
			lvl = slog.LevelDebug
		}
		h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl, AddSource: c.debugFlag})
		opts = append(opts, icon.SetSLogger(h, true))
		done = f.Close
	}
	g, err = iconresize.NewGenerator(opts...)
	if err != nil {
		_ = done()
		return nil, nil, err
	}
	return g, done, nil
}

func (c *cli) generate() error {
	g, done, err := c.generator()
	if err != nil {
		return err
	}
	defer done()
	return g.Run()
}

func candidatesStr() string { return strings.Join(icon.SourceCandidates(), `, `) }

func sizesStr() string {
	var sizes []string
	for _, size := range icon.TargetSizes() {
		sizes = append(sizes, strconv.Itoa(size))
	}
	return strings.Join(sizes, `, `)
}
