package cli

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitcraft/internal/constants"
	"github.com/julianstephens/habitcraft/internal/logger"
	"github.com/julianstephens/habitcraft/internal/models"
	"github.com/julianstephens/habitcraft/internal/schema"
	"github.com/julianstephens/habitcraft/internal/validation"
)

type HabitCmd struct {
	New HabitNewCmd `cmd:"" help:"Compose a habit payload interactively."`
}

type HabitNewCmd struct {
	Accessible bool `help:"Use plain prompts instead of the full-screen form." env:"HABITCRAFT_ACCESSIBLE"`
}

func (c *HabitNewCmd) Run(ctx *Context) error {
	draft := newHabitDraft()
	if err := newHabitForm(&draft).WithAccessible(c.Accessible).Run(); err != nil {
		return fmt.Errorf("habit form: %w", err)
	}

	input, err := schema.ParseHabitInput(draft.raw())
	if err != nil {
		return err
	}
	logger.Debug("Composed habit payload", "name", input.Name, "frequency", input.Frequency)
	return ctx.printJSON(input)
}

// habitDraft holds form state before it is turned into a payload
type habitDraft struct {
	Name        string
	Description string
	Frequency   models.HabitFrequency
	TargetDays  []int
	Color       string
	Icon        string
}

func newHabitDraft() habitDraft {
	return habitDraft{
		Frequency: models.FrequencyDaily,
		Color:     constants.DefaultHabitColor,
		Icon:      constants.DefaultHabitIcon,
	}
}

// raw builds the payload. A blank description is left out entirely.
func (d habitDraft) raw() schema.Raw {
	days := append([]int{}, d.TargetDays...)
	sort.Ints(days)
	targetDays := make([]any, len(days))
	for i, day := range days {
		targetDays[i] = day
	}

	raw := schema.Raw{
		"name":        strings.TrimSpace(d.Name),
		"frequency":   string(d.Frequency),
		"target_days": targetDays,
		"color":       strings.TrimSpace(d.Color),
		"icon":        d.Icon,
	}
	if desc := strings.TrimSpace(d.Description); desc != "" {
		raw["description"] = desc
	}
	return raw
}

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func newHabitForm(d *habitDraft) *huh.Form {
	frequencyOptions := make([]huh.Option[models.HabitFrequency], 0, 3)
	for _, f := range models.HabitFrequencies() {
		frequencyOptions = append(frequencyOptions, huh.NewOption(strings.ToUpper(string(f[:1]))+string(f[1:]), f))
	}

	dayOptions := make([]huh.Option[int], len(weekdayNames))
	for i, name := range weekdayNames {
		dayOptions[i] = huh.NewOption(name, i)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				CharLimit(constants.HabitNameMaxLen).
				Value(&d.Name).
				Validate(validateHabitName),
			huh.NewText().
				Title("Description").
				Description("Optional").
				CharLimit(constants.HabitDescriptionMaxLen).
				Value(&d.Description),
			huh.NewSelect[models.HabitFrequency]().
				Title("Frequency").
				Options(frequencyOptions...).
				Value(&d.Frequency),
		),
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Target days").
				Options(dayOptions...).
				Value(&d.TargetDays),
			huh.NewInput().
				Title("Color (#RRGGBB)").
				Value(&d.Color).
				Validate(func(s string) error {
					return validation.CheckHexColor(strings.TrimSpace(s))
				}),
			huh.NewInput().
				Title("Icon").
				Value(&d.Icon),
		),
	).WithTheme(huh.ThemeDracula())
}

func validateHabitName(s string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	if n < constants.HabitNameMinLen {
		return fmt.Errorf("habit name cannot be empty")
	}
	if n > constants.HabitNameMaxLen {
		return fmt.Errorf("habit name must be at most %d characters", constants.HabitNameMaxLen)
	}
	return nil
}
