package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/chessboard/pkg/app"
	"tableflip.dev/chessboard/pkg/unit"
)

const unchanged = "unchanged"

var fieldTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} [unchanged] : ",
	Valid:   "{{ . | green }} [unchanged] : ",
	Invalid: "{{ . | red }} [unchanged] : ",
	Success: "{{ . | bold }} : ",
}

// EditForm asks for each bulk-edit field. Empty input leaves a field
// unchanged.
func (p *Prompter) EditForm(count int) (app.Patch, error) {
	if !p.Interactive() {
		return app.Patch{}, ErrNoTerminal
	}
	_, _ = fmt.Fprintf(p.stdout(), "Editing %d units.\n", count)

	statuses := []string{unchanged}
	for _, g := range unit.DefaultStatuses() {
		statuses = append(statuses, g.Noun)
	}
	sel := promptui.Select{
		HideHelp: true,
		Label:    "Status",
		Items:    statuses,
		Stdin:    p.stdin(),
		Stdout:   p.stdout(),
	}
	_, status, err := sel.Run()
	if err != nil {
		return app.Patch{}, err
	}

	area, err := p.field("Area", validFloat)
	if err != nil {
		return app.Patch{}, err
	}
	number, err := p.field("Number", validInt)
	if err != nil {
		return app.Patch{}, err
	}
	rooms, err := p.field("Rooms", validInt)
	if err != nil {
		return app.Patch{}, err
	}
	return ParsePatch(status, area, number, rooms)
}

func (p *Prompter) field(label string, validate promptui.ValidateFunc) (string, error) {
	pr := promptui.Prompt{
		Label:     label,
		Templates: fieldTemplates,
		Validate:  validate,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
	}
	return pr.Run()
}

func validFloat(in string) error {
	if strings.TrimSpace(in) == "" {
		return nil
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(in), 64)
	return err
}

func validInt(in string) error {
	if strings.TrimSpace(in) == "" {
		return nil
	}
	_, err := strconv.Atoi(strings.TrimSpace(in))
	return err
}

// ParsePatch turns raw form answers into a Patch. Empty answers and
// "unchanged" leave the field nil.
func ParsePatch(status, area, number, rooms string) (app.Patch, error) {
	var p app.Patch
	if s := strings.TrimSpace(status); s != "" && s != unchanged {
		st, err := unit.StatusForAlias(s)
		if err != nil {
			return app.Patch{}, err
		}
		p.Status = &st
	}
	if a := strings.TrimSpace(area); a != "" {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return app.Patch{}, fmt.Errorf("prompt: area %q: %w", a, err)
		}
		p.Area = &v
	}
	if n := strings.TrimSpace(number); n != "" {
		v, err := strconv.Atoi(n)
		if err != nil {
			return app.Patch{}, fmt.Errorf("prompt: number %q: %w", n, err)
		}
		num := unit.Number(v)
		p.Number = &num
	}
	if r := strings.TrimSpace(rooms); r != "" {
		v, err := strconv.Atoi(r)
		if err != nil {
			return app.Patch{}, fmt.Errorf("prompt: rooms %q: %w", r, err)
		}
		p.RoomCount = &v
	}
	return p, nil
}

// ParseAssignments reads "status=sold area=54.5 number=101 rooms=2". Every
// field is optional.
func ParseAssignments(text string) (app.Patch, error) {
	fields := map[string]string{}
	for _, tok := range strings.Fields(text) {
		k, v, ok := strings.Cut(tok, "=")
		if !ok {
			return app.Patch{}, fmt.Errorf("prompt: %q, want field=value", tok)
		}
		k = strings.ToLower(k)
		switch k {
		case "status", "area", "number", "rooms":
		default:
			return app.Patch{}, fmt.Errorf("prompt: unknown field %q", k)
		}
		fields[k] = v
	}
	return ParsePatch(fields["status"], fields["area"], fields["number"], fields["rooms"])
}
