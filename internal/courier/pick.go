package courier

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"go.followtheprocess.codes/courier/internal/endpoint"
)

// errNothingSelected is returned when an interactive pick ends without a selection.
var errNothingSelected = errors.New("no endpoints selected")

// pick asks the user to choose endpoints from file, returning the chosen names.
func (c Courier) pick(ctx context.Context, file endpoint.File) ([]string, error) {
	var selected []string

	field := huh.NewMultiSelect[string]().
		Title(fmt.Sprintf("Endpoints in %s", file.Name)).
		Options(huh.NewOptions(file.Names()...)...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(field)).
		WithInput(c.stdin).
		WithOutput(c.stderr)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("could not pick endpoints: %w", err)
	}

	if len(selected) == 0 {
		return nil, errNothingSelected
	}

	return selected, nil
}
