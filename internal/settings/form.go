package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"rocket/internal/config"
)

// Run launches an interactive form editing the config at path and saves
// the result on submit.
func Run(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	themeName := cfg.Theme
	tabWidth := strconv.Itoa(cfg.TabWidth)
	level := cfg.LogLevel
	logFile := cfg.LogFile
	create := cfg.CreateMissing

	// Light theme tweaks inspired by freeze/interactive.go
	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Blurred.SelectedOption = theme.Blurred.SelectedOption.Foreground(lipgloss.Color("243"))
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Edit "+path),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions()...).
				Height(8).
				Value(&themeName),
			huh.NewInput().
				Title("Tab width").
				Value(&tabWidth).
				Validate(validateTabWidth),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions(config.LogLevels...)...).
				Value(&level),
			huh.NewInput().
				Title("Log file").
				Placeholder("empty disables logging").
				Value(&logFile),
			huh.NewConfirm().
				Title("Create missing").
				Description("Open nonexistent paths as new files").
				Value(&create),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}

	cfg.Theme = themeName
	cfg.TabWidth, _ = strconv.Atoi(strings.TrimSpace(tabWidth))
	cfg.LogLevel = level
	cfg.LogFile = strings.TrimSpace(logFile)
	cfg.CreateMissing = create
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("\n✓ saved %s\n\n", path)
	return nil
}

// themeOptions lists the chroma styles available as themes.
func themeOptions() []huh.Option[string] {
	return huh.NewOptions(styles.Names()...)
}

func validateTabWidth(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("tab width must be a number")
	}
	if n < 1 || n > 16 {
		return fmt.Errorf("tab width must be between 1 and 16")
	}
	return nil
}
