package crossfile

import (
	"context"
	"fmt"
)

// Run builds each named check with the registry, runs it over the project and
// forwards the issues to saver. A *Collector saver keeps the key of the
// check that raised each issue. With no names, every registered check runs.
//
// Issues are forwarded only once every check has succeeded. The first
// failure is returned as a *ConstructionError and nothing is saved.
func Run(ctx context.Context, p *Project, saver IssueSaver, names ...string) error {
	if len(names) == 0 {
		names = Names()
	}

	buffer := &Collector{}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		buffer.forCheck(name)
		if err := runOne(ctx, name, p, buffer); err != nil {
			return &ConstructionError{Check: name, Err: err}
		}
	}

	if c, ok := saver.(*Collector); ok {
		c.add(buffer.Issues())
		return nil
	}
	for _, saved := range buffer.Issues() {
		saver.SaveIssue(saved.File, saved.Issue)
	}
	return nil
}

func runOne(ctx context.Context, name string, p *Project, saver IssueSaver) (err error) {
	def, ok := Lookup(name)
	if !ok {
		return ErrUnknownCheck
	}
	if def.New == nil {
		return fmt.Errorf("no factory registered")
	}

	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = fmt.Errorf("panic: %w", e)
			} else {
				err = fmt.Errorf("panic: %v", rec)
			}
		}
	}()

	check, err := def.New(saver)
	if err != nil {
		return err
	}
	return check.SaveIssues(ctx, p)
}
