package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kilianp07/bhp/config"
	"github.com/kilianp07/bhp/core/form"
	"github.com/kilianp07/bhp/infra/terminal"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Fill the prediction form interactively",
	RunE:  runForm,
}

func init() {
	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, args []string) error {
	svc, err := loadService()
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)
	ctx := cmd.Context()
	svc.ServeMetrics(ctx)

	locations := &terminal.Options{}
	// A failed load leaves the list empty; the form stays usable with free text.
	_ = svc.Loader(locations, terminal.NewAlerter(cmd.ErrOrStderr())).Load(ctx)

	p := &prompter{
		in:        bufio.NewReader(cmd.InOrStdin()),
		out:       cmd.OutOrStdout(),
		choices:   categoryChoices(svc.Config.Form),
		locations: locations,
	}
	ctrl := svc.Controller(terminal.NewDisplay(cmd.OutOrStdout()))
	return p.loop(ctx, ctrl)
}

type prompter struct {
	in        *bufio.Reader
	out       io.Writer
	choices   map[string]*terminal.Options
	locations *terminal.Options
}

func categoryChoices(cfg config.FormConfig) map[string]*terminal.Options {
	build := func(values []string) *terminal.Options {
		o := &terminal.Options{}
		for _, v := range values {
			o.Append(v)
		}
		return o
	}
	return map[string]*terminal.Options{
		form.FieldAreaType:     build(cfg.AreaTypes),
		form.FieldAvailability: build(cfg.Availability),
		form.FieldNearbyMetro:  build(cfg.NearbyMetro),
		form.FieldAgeSegment:   build(cfg.AgeSegments),
	}
}

// loop collects and submits properties until the user stops or input ends.
func (p *prompter) loop(ctx context.Context, ctrl *form.Controller) error {
	if p.locations.Len() > 0 {
		p.printf("%d locations loaded, type ? at the location prompt to list them.\n", p.locations.Len())
	}
	for {
		values, err := p.collect()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		ctrl.HandleSubmit(ctx, values)
		again, err := p.ask("Submit another property? [y/N]: ")
		if err != nil || !strings.EqualFold(again, "y") {
			return nil
		}
	}
}

func (p *prompter) collect() (form.FormValues, error) {
	values := form.FormValues{}
	for _, f := range form.Fields {
		v, err := p.field(f)
		if err != nil {
			return nil, err
		}
		values[f] = v
	}
	return values, nil
}

func (p *prompter) field(name string) (string, error) {
	if name == form.FieldLocation {
		for {
			v, err := p.ask("location: ")
			if err != nil {
				return "", err
			}
			if v == "?" {
				if err := p.locations.Print(p.out); err != nil {
					return "", err
				}
				continue
			}
			return p.locations.Resolve(v), nil
		}
	}
	if opts, ok := p.choices[name]; ok && opts.Len() > 0 {
		p.printf("%s:\n", name)
		if err := opts.Print(p.out); err != nil {
			return "", err
		}
		v, err := p.ask("> ")
		if err != nil {
			return "", err
		}
		if v == "" {
			return "", nil
		}
		return opts.Resolve(v), nil
	}
	return p.ask(name + ": ")
}

// ask prints prompt and reads one trimmed line. A final line without newline
// is returned normally; io.EOF is only reported when nothing was typed.
func (p *prompter) ask(prompt string) (string, error) {
	p.printf("%s", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}
