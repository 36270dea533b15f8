package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .folio.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to folio! Let's set up your portfolio site.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Title = title

	namePrompt := promptui.Prompt{
		Label: "Your name",
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("owner name: %w", err)
	}
	cfg.Owner.Name = name

	locationPrompt := promptui.Prompt{
		Label: "Location (e.g. Berlin, Germany)",
	}
	location, err := locationPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("location: %w", err)
	}
	cfg.Owner.Location = location

	emailPrompt := promptui.Prompt{
		Label: "Contact email",
	}
	email, err := emailPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("email: %w", err)
	}
	cfg.Owner.Email = email

	githubPrompt := promptui.Prompt{
		Label: "GitHub profile URL (leave blank to skip)",
	}
	github, err := githubPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("github: %w", err)
	}
	cfg.Owner.GitHub = github

	linkedinPrompt := promptui.Prompt{
		Label: "LinkedIn profile URL (leave blank to skip)",
	}
	linkedin, err := linkedinPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("linkedin: %w", err)
	}
	cfg.Owner.LinkedIn = linkedin

	dataPrompt := promptui.Prompt{
		Label:   "Portfolio data file",
		Default: cfg.DataSource,
	}
	dataSource, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data source: %w", err)
	}
	cfg.DataSource = dataSource

	outputPrompt := promptui.Prompt{
		Label:   "Output directory",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	portPrompt := promptui.Prompt{
		Label:   "Dev server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			_, convErr := strconv.Atoi(s)
			return convErr
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	configPath := ".folio.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
