package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bnema/betterprompt-cli/internal/contracts/v1/fixprompt"
	"github.com/bnema/betterprompt-cli/internal/domain"
	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const renderWordWrap = 100

type fixOptions struct {
	copy   bool
	asJSON bool
	render bool
}

func newFixCmd(app *app) *cobra.Command {
	var opts fixOptions

	fixCmd := &cobra.Command{
		Use:   "fix [prompt...]",
		Short: "Improve a prompt once and print the result",
		Long:  "Improve a prompt once and print the result. The prompt is taken from the arguments, or from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.asJSON && opts.render {
				return errors.New("--json and --render cannot be combined")
			}
			return runFix(cmd, app, args, opts)
		},
	}

	fixCmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the improved prompt to the clipboard")
	fixCmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the result as JSON")
	fixCmd.Flags().BoolVar(&opts.render, "render", false, "Render the result as Markdown")

	return fixCmd
}

func runFix(cmd *cobra.Command, app *app, args []string, opts fixOptions) error {
	input, err := readPromptInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	controller := app.newController(app.logger)

	prompt, err := controller.BeginSubmit(input)
	if err != nil {
		return err
	}

	var improved string
	var sendErr error
	if !opts.asJSON && isTerminal(cmd.ErrOrStderr()) {
		improved, sendErr = sendWithProgress(cmd.Context(), cmd.ErrOrStderr(), controller, prompt)
	} else {
		improved, sendErr = controller.Send(cmd.Context(), prompt)
	}

	improved, err = controller.CompleteSubmit(improved, sendErr)
	if err != nil {
		return err
	}

	if err := writeFixResult(cmd.OutOrStdout(), improved, opts); err != nil {
		return err
	}

	if opts.copy {
		if _, err := controller.Copy(cmd.Context()); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), domain.LabelCopied)
	}

	return nil
}

func writeFixResult(out io.Writer, improved string, opts fixOptions) error {
	switch {
	case opts.asJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(fixprompt.Response{ImprovedPrompt: improved})
	case opts.render:
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(renderWordWrap),
		)
		if err != nil {
			return fmt.Errorf("create markdown renderer: %w", err)
		}
		rendered, err := renderer.Render(improved)
		if err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		_, err = io.WriteString(out, rendered)
		return err
	default:
		_, err := fmt.Fprintln(out, improved)
		return err
	}
}

// readPromptInput joins args, or reads stdin when there are none. Validation
// of the result is left to the controller.
func readPromptInput(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(io.LimitReader(stdin, int64(domain.MaxPromptLength)*4+1))
	if err != nil {
		return "", fmt.Errorf("read prompt from stdin: %w", err)
	}

	return string(data), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
